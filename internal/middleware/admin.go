package middleware

import (
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"ecommerce-backend/internal/errors"
	"ecommerce-backend/internal/model"
	"ecommerce-backend/internal/service"
)

// AdminMiddleware restricts a route group to admin users. Runs after
// AuthMiddleware.
func AdminMiddleware(userService service.UserServiceInterface) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := c.Get(ContextUserID)
		if !exists {
			errors.HandleError(c, errors.New(errors.ErrUnauthorized, "common:unauthorized"))
			c.Abort()
			return
		}

		user, err := userService.GetUserByID(c.Request.Context(), userID.(primitive.ObjectID))
		if err != nil || user.Role != model.RoleAdmin {
			zap.L().Warn("non-admin access attempt",
				zap.String("user_id", userID.(primitive.ObjectID).Hex()),
				zap.String("path", c.Request.URL.Path))
			errors.HandleError(c, errors.New(errors.ErrForbidden, "common:forbidden"))
			c.Abort()
			return
		}

		c.Next()
	}
}
