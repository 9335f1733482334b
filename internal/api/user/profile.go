package user

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"ecommerce-backend/internal/errors"
	"ecommerce-backend/internal/middleware"
	"ecommerce-backend/internal/service"
	"ecommerce-backend/internal/storage"
	"ecommerce-backend/internal/util"
)

// ProfileHandler handles the authenticated user's own profile.
type ProfileHandler struct {
	userService service.UserServiceInterface
	storage     storage.AvatarStorage
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(userService service.UserServiceInterface, storage storage.AvatarStorage) *ProfileHandler {
	return &ProfileHandler{userService, storage}
}

func currentUserID(c *gin.Context) primitive.ObjectID {
	return c.MustGet(middleware.ContextUserID).(primitive.ObjectID)
}

// GetProfile handles GET /profile.
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	user, err := h.userService.GetUserByID(c.Request.Context(), currentUserID(c))
	if err != nil {
		errors.HandleError(c, err)
		return
	}
	errors.HandleSuccess(c, http.StatusOK, user, "")
}

// UpdateProfile handles PUT /profile.
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	var req struct {
		Name  string `json:"name"`
		Phone string `json:"phone"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		errors.HandleValidationError(c, err)
		return
	}

	user, err := h.userService.UpdateProfile(c.Request.Context(), currentUserID(c), req.Name, req.Phone)
	if err != nil {
		errors.HandleError(c, err)
		return
	}

	errors.HandleSuccess(c, http.StatusOK, user, "user:updated")
}

// ChangePassword handles PUT /profile/password.
func (h *ProfileHandler) ChangePassword(c *gin.Context) {
	var req struct {
		OldPassword string `json:"oldPassword" binding:"required"`
		NewPassword string `json:"newPassword" binding:"required,min=6"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		errors.HandleValidationError(c, err)
		return
	}

	if err := h.userService.ChangePassword(c.Request.Context(), currentUserID(c), req.OldPassword, req.NewPassword); err != nil {
		errors.HandleError(c, err)
		return
	}

	errors.HandleSuccess(c, http.StatusOK, nil, "auth:resetPassword.success")
}

// UploadAvatar handles POST /profile/avatar.
func (h *ProfileHandler) UploadAvatar(c *gin.Context) {
	file, err := c.FormFile("avatar")
	if err != nil {
		errors.HandleError(c, errors.Wrap(errors.ErrBadRequest, "common:badRequest", err))
		return
	}

	path := "avatars/" + util.GenerateUniqueFilename(file.Filename)
	url, err := h.storage.UploadFile(c.Request.Context(), file, path)
	if err != nil {
		errors.HandleError(c, errors.Wrap(errors.ErrInternal, "common:internalError", err))
		return
	}

	user, err := h.userService.UpdateAvatar(c.Request.Context(), currentUserID(c), url)
	if err != nil {
		errors.HandleError(c, err)
		return
	}

	errors.HandleSuccess(c, http.StatusOK, user, "user:avatarUpdated")
}

// DeleteAccount handles DELETE /account. The account is soft-deleted and can
// be restored by an admin.
func (h *ProfileHandler) DeleteAccount(c *gin.Context) {
	if err := h.userService.SoftDeleteUser(c.Request.Context(), currentUserID(c)); err != nil {
		errors.HandleError(c, err)
		return
	}
	errors.HandleSuccess(c, http.StatusOK, nil, "user:deleted")
}
