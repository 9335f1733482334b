package admin

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"ecommerce-backend/internal/errors"
	"ecommerce-backend/internal/service"
)

// AdminHandler handles user administration endpoints. All routes are behind
// the auth and admin middleware.
type AdminHandler struct {
	userService service.UserServiceInterface
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(userService service.UserServiceInterface) *AdminHandler {
	return &AdminHandler{userService}
}

func pathUserID(c *gin.Context) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		errors.HandleError(c, errors.Wrap(errors.ErrBadRequest, "common:badRequest", err))
		return primitive.NilObjectID, false
	}
	return id, true
}

// GetUsers handles GET /users with page/pageSize pagination.
func (h *AdminHandler) GetUsers(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "20"))

	users, total, err := h.userService.GetUsers(c.Request.Context(), page, pageSize)
	if err != nil {
		errors.HandleError(c, err)
		return
	}

	errors.HandleSuccess(c, http.StatusOK, gin.H{
		"users": users,
		"total": total,
		"page":  page,
	}, "")
}

// GetUser handles GET /users/:id.
func (h *AdminHandler) GetUser(c *gin.Context) {
	id, ok := pathUserID(c)
	if !ok {
		return
	}

	user, err := h.userService.GetUserByID(c.Request.Context(), id)
	if err != nil {
		errors.HandleError(c, err)
		return
	}

	errors.HandleSuccess(c, http.StatusOK, user, "")
}

// UpdateUserRole handles PUT /users/:id/role.
func (h *AdminHandler) UpdateUserRole(c *gin.Context) {
	id, ok := pathUserID(c)
	if !ok {
		return
	}

	var req struct {
		Role string `json:"role" binding:"required,oneof=user admin deliveryman"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		errors.HandleValidationError(c, err)
		return
	}

	if err := h.userService.UpdateUserRole(c.Request.Context(), id, req.Role); err != nil {
		errors.HandleError(c, err)
		return
	}

	errors.HandleSuccess(c, http.StatusOK, nil, "user:roleUpdated")
}

// DeleteUser handles DELETE /users/:id. Deletion is always soft; the email
// becomes available for registration again.
func (h *AdminHandler) DeleteUser(c *gin.Context) {
	id, ok := pathUserID(c)
	if !ok {
		return
	}

	if err := h.userService.SoftDeleteUser(c.Request.Context(), id); err != nil {
		errors.HandleError(c, err)
		return
	}

	errors.HandleSuccess(c, http.StatusOK, nil, "user:deleted")
}

// RestoreUser handles POST /users/:id/restore.
func (h *AdminHandler) RestoreUser(c *gin.Context) {
	id, ok := pathUserID(c)
	if !ok {
		return
	}

	if err := h.userService.RestoreUser(c.Request.Context(), id); err != nil {
		errors.HandleError(c, err)
		return
	}

	errors.HandleSuccess(c, http.StatusOK, nil, "user:restored")
}
