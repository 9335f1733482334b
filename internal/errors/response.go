package errors

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ecommerce-backend/internal/i18n"
)

// Response is the uniform JSON body for both success and failure.
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

var errorStatusMap = map[ErrorCode]int{
	// System errors (1000-1999)
	ErrInternal: http.StatusInternalServerError,
	ErrDatabase: http.StatusInternalServerError,
	ErrTimeout:  http.StatusRequestTimeout,

	// Authentication errors (2000-2999)
	ErrUnauthorized:       http.StatusUnauthorized,
	ErrForbidden:          http.StatusForbidden,
	ErrInvalidToken:       http.StatusUnauthorized,
	ErrTokenExpired:       http.StatusUnauthorized,
	ErrInvalidCredentials: http.StatusUnauthorized,

	// Request errors (3000-3999)
	ErrBadRequest:       http.StatusBadRequest,
	ErrValidation:       http.StatusBadRequest,
	ErrResourceNotFound: http.StatusNotFound,
	ErrResourceExists:   http.StatusConflict,

	// Business errors (4000-4999)
	ErrUserNotFound:    http.StatusNotFound,
	ErrEmailExists:     http.StatusConflict,
	ErrWeakPassword:    http.StatusBadRequest,
	ErrAddressNotFound: http.StatusNotFound,
}

// StatusOf maps an error code to its HTTP status.
func StatusOf(code ErrorCode) int {
	if status, ok := errorStatusMap[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// Debug controls whether 5xx responses carry the underlying error text.
// Set once at startup; production builds keep it false so internals stay
// hidden.
var Debug bool

// HandleError writes the error response for err. Message keys are resolved
// against the request's negotiated language. 5xx-class errors are also
// recorded on the gin context so the error monitor can forward them to the
// reporting sink; 4xx-class business failures are not.
func HandleError(c *gin.Context, err error) {
	appErr, ok := err.(*AppError)
	if !ok {
		appErr = Wrap(ErrInternal, "common:internalError", err)
	}

	status := StatusOf(appErr.Code)
	resp := Response{
		Success: false,
		Message: i18n.FromContext(c).T(appErr.MessageKey),
	}

	if status >= http.StatusInternalServerError {
		c.Error(appErr)
		if Debug && appErr.Err != nil {
			resp.Error = appErr.Err.Error()
		}
	} else if appErr.Err != nil {
		resp.Error = appErr.Err.Error()
	}

	c.JSON(status, resp)
}

// HandleSuccess writes a success response with the localized message for
// messageKey.
func HandleSuccess(c *gin.Context, status int, data interface{}, messageKey string) {
	c.JSON(status, Response{
		Success: true,
		Message: i18n.FromContext(c).T(messageKey),
		Data:    data,
	})
}
