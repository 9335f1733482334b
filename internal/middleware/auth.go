package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"ecommerce-backend/internal/errors"
	"ecommerce-backend/internal/model"
	"ecommerce-backend/internal/service"
)

// ContextUserID is the gin context key carrying the authenticated user id.
const ContextUserID = "user_id"

// AuthMiddleware authenticates requests with a bearer ACCESS token. Access
// tokens are stateless: signature and expiry are checked, no store lookup.
func AuthMiddleware(tokenService *service.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			errors.HandleError(c, errors.New(errors.ErrUnauthorized, "common:unauthorized"))
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if !(len(parts) == 2 && parts[0] == "Bearer") {
			errors.HandleError(c, errors.New(errors.ErrUnauthorized, "common:unauthorized"))
			c.Abort()
			return
		}

		claims, err := tokenService.Parse(parts[1], model.TokenTypeAccess)
		if err != nil {
			errors.HandleError(c, err)
			c.Abort()
			return
		}

		userID, err := claims.UserID()
		if err != nil {
			errors.HandleError(c, errors.Wrap(errors.ErrInvalidToken, "auth:token.invalid", err))
			c.Abort()
			return
		}

		c.Set(ContextUserID, userID)
		c.Next()
	}
}
