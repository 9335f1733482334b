package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"ecommerce-backend/internal/errors"
	"ecommerce-backend/internal/model"
	"ecommerce-backend/internal/service"
)

// stubUserService answers GetUserByID with a fixed result. The embedded
// interface satisfies the rest; the admin gate never calls anything else.
type stubUserService struct {
	service.UserServiceInterface
	user *model.User
	err  error
}

func (s stubUserService) GetUserByID(context.Context, primitive.ObjectID) (*model.User, error) {
	return s.user, s.err
}

func adminTestRouter(svc service.UserServiceInterface, userID interface{}) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/admin-only", func(c *gin.Context) {
		if userID != nil {
			c.Set(ContextUserID, userID)
		}
	}, AdminMiddleware(svc), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func adminRequest(r *gin.Engine) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/admin-only", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAdminMiddleware_AdminAllowed(t *testing.T) {
	userID := primitive.NewObjectID()
	svc := stubUserService{user: &model.User{ID: userID, Role: model.RoleAdmin}}

	w := adminRequest(adminTestRouter(svc, userID))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAdminMiddleware_NonAdminForbidden(t *testing.T) {
	userID := primitive.NewObjectID()
	svc := stubUserService{user: &model.User{ID: userID, Role: model.RoleUser}}

	w := adminRequest(adminTestRouter(svc, userID))
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAdminMiddleware_UnknownUserForbidden(t *testing.T) {
	userID := primitive.NewObjectID()
	svc := stubUserService{err: errors.New(errors.ErrUserNotFound, "user:notFound")}

	w := adminRequest(adminTestRouter(svc, userID))
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAdminMiddleware_NoAuthContext(t *testing.T) {
	svc := stubUserService{}

	w := adminRequest(adminTestRouter(svc, nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
