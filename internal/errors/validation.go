package errors

import (
	stderrors "errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"ecommerce-backend/internal/i18n"
)

// HandleValidationError writes a 400 response for a request binding failure.
// Validator errors are aggregated: every failed field gets its own localized
// message and the results are joined, matching the API's documented
// behavior. Anything else (malformed JSON) gets a generic bad-request body.
func HandleValidationError(c *gin.Context, err error) {
	loc := i18n.FromContext(c)

	var verrs validator.ValidationErrors
	if stderrors.As(err, &verrs) {
		messages := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			messages = append(messages, loc.Tf(validationKey(fe), fieldName(fe)))
		}
		c.JSON(http.StatusBadRequest, Response{
			Success: false,
			Message: strings.Join(messages, ", "),
		})
		return
	}

	c.JSON(http.StatusBadRequest, Response{
		Success: false,
		Message: loc.T("common:badRequest"),
		Error:   err.Error(),
	})
}

func validationKey(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "validation:any.required"
	case "email":
		return "validation:email"
	case "min":
		return "validation:string.min"
	case "oneof":
		return "validation:role.invalid"
	default:
		return "validation:invalid"
	}
}

func fieldName(fe validator.FieldError) string {
	return strings.ToLower(fe.Field())
}
