package middleware

import (
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"ecommerce-backend/internal/errors"
)

// RecoveryMiddleware converts panics into 500 responses with the stack
// logged, never leaked to the client.
func RecoveryMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				zap.L().Error("panic recovered",
					zap.Any("error", r),
					zap.String("stack", string(debug.Stack())))

				errors.HandleError(c, errors.New(errors.ErrInternal, "common:internalError"))
				c.Abort()
			}
		}()
		c.Next()
	}
}
