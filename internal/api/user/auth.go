package user

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"ecommerce-backend/internal/errors"
	"ecommerce-backend/internal/service"
)

// AuthHandler handles registration, login and the token lifecycle endpoints.
type AuthHandler struct {
	userService service.UserServiceInterface
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(userService service.UserServiceInterface) *AuthHandler {
	return &AuthHandler{userService}
}

// Register handles POST /auth/register.
func (h *AuthHandler) Register(c *gin.Context) {
	var req struct {
		Name     string `json:"name" binding:"required"`
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required,min=6"`
		Role     string `json:"role" binding:"omitempty,oneof=user admin deliveryman"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		zap.L().Warn("invalid registration payload", zap.Error(err))
		errors.HandleValidationError(c, err)
		return
	}

	user, err := h.userService.Register(c.Request.Context(), req.Name, req.Email, req.Password, req.Role)
	if err != nil {
		errors.HandleError(c, err)
		return
	}

	errors.HandleSuccess(c, http.StatusCreated, user, "auth:register.success")
}

// Login handles POST /auth/login. Field-level failures use the same generic
// message as a credential mismatch so the endpoint leaks nothing about which
// part was wrong.
func (h *AuthHandler) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		errors.HandleError(c, errors.New(errors.ErrInvalidCredentials, "auth:login.failed"))
		return
	}

	user, tokens, err := h.userService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		errors.HandleError(c, err)
		return
	}

	errors.HandleSuccess(c, http.StatusOK, gin.H{
		"user":   user,
		"tokens": tokens,
	}, "auth:login.success")
}

// RefreshToken handles POST /auth/refresh-token. The presented refresh token
// is rotated: revoked and replaced by a fresh pair.
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	var req struct {
		RefreshToken string `json:"refreshToken" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		errors.HandleValidationError(c, err)
		return
	}

	tokens, err := h.userService.RefreshTokens(c.Request.Context(), req.RefreshToken)
	if err != nil {
		errors.HandleError(c, err)
		return
	}

	errors.HandleSuccess(c, http.StatusOK, gin.H{"tokens": tokens}, "auth:token.refreshed")
}

// Logout handles POST /auth/logout by blacklisting the refresh token.
func (h *AuthHandler) Logout(c *gin.Context) {
	var req struct {
		RefreshToken string `json:"refreshToken" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		errors.HandleValidationError(c, err)
		return
	}

	if err := h.userService.Logout(c.Request.Context(), req.RefreshToken); err != nil {
		errors.HandleError(c, err)
		return
	}

	errors.HandleSuccess(c, http.StatusOK, nil, "auth:logout.success")
}

// ForgotPassword handles POST /auth/forgot-password. The response is the
// same whether or not the email exists.
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req struct {
		Email string `json:"email" binding:"required,email"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		errors.HandleValidationError(c, err)
		return
	}

	if err := h.userService.RequestPasswordReset(c.Request.Context(), req.Email); err != nil {
		errors.HandleError(c, err)
		return
	}

	errors.HandleSuccess(c, http.StatusOK, nil, "auth:forgotPassword.sent")
}

// ResetPassword handles POST /auth/reset-password.
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req struct {
		Token    string `json:"token" binding:"required"`
		Password string `json:"password" binding:"required,min=6"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		errors.HandleValidationError(c, err)
		return
	}

	if err := h.userService.ResetPassword(c.Request.Context(), req.Token, req.Password); err != nil {
		errors.HandleError(c, err)
		return
	}

	errors.HandleSuccess(c, http.StatusOK, nil, "auth:resetPassword.success")
}
