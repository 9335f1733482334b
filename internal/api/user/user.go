package user

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"ecommerce-backend/internal/errors"
	"ecommerce-backend/internal/model"
	"ecommerce-backend/internal/service"
)

// UserHandler handles the authenticated user's address book and wishlist.
type UserHandler struct {
	userService service.UserServiceInterface
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService service.UserServiceInterface) *UserHandler {
	return &UserHandler{userService}
}

type addressRequest struct {
	ReceiverName  string `json:"receiverName" binding:"required"`
	ReceiverPhone string `json:"receiverPhone" binding:"required"`
	Street        string `json:"street" binding:"required"`
	City          string `json:"city" binding:"required"`
	Country       string `json:"country" binding:"required"`
	PostalCode    string `json:"postalCode" binding:"required"`
	IsDefault     bool   `json:"isDefault"`
}

func (r *addressRequest) toModel() model.Address {
	return model.Address{
		ReceiverName:  r.ReceiverName,
		ReceiverPhone: r.ReceiverPhone,
		Street:        r.Street,
		City:          r.City,
		Country:       r.Country,
		PostalCode:    r.PostalCode,
		IsDefault:     r.IsDefault,
	}
}

func pathObjectID(c *gin.Context, name string) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(c.Param(name))
	if err != nil {
		errors.HandleError(c, errors.Wrap(errors.ErrBadRequest, "common:badRequest", err))
		return primitive.NilObjectID, false
	}
	return id, true
}

// AddAddress handles POST /profile/addresses.
func (h *UserHandler) AddAddress(c *gin.Context) {
	var req addressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errors.HandleValidationError(c, err)
		return
	}

	user, err := h.userService.AddAddress(c.Request.Context(), currentUserID(c), req.toModel())
	if err != nil {
		errors.HandleError(c, err)
		return
	}

	errors.HandleSuccess(c, http.StatusCreated, user, "user:address.added")
}

// UpdateAddress handles PUT /profile/addresses/:addressId.
func (h *UserHandler) UpdateAddress(c *gin.Context) {
	addressID, ok := pathObjectID(c, "addressId")
	if !ok {
		return
	}

	var req addressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errors.HandleValidationError(c, err)
		return
	}

	user, err := h.userService.UpdateAddress(c.Request.Context(), currentUserID(c), addressID, req.toModel())
	if err != nil {
		errors.HandleError(c, err)
		return
	}

	errors.HandleSuccess(c, http.StatusOK, user, "user:address.updated")
}

// RemoveAddress handles DELETE /profile/addresses/:addressId.
func (h *UserHandler) RemoveAddress(c *gin.Context) {
	addressID, ok := pathObjectID(c, "addressId")
	if !ok {
		return
	}

	user, err := h.userService.RemoveAddress(c.Request.Context(), currentUserID(c), addressID)
	if err != nil {
		errors.HandleError(c, err)
		return
	}

	errors.HandleSuccess(c, http.StatusOK, user, "user:address.removed")
}

// SetDefaultAddress handles PUT /profile/addresses/:addressId/default.
func (h *UserHandler) SetDefaultAddress(c *gin.Context) {
	addressID, ok := pathObjectID(c, "addressId")
	if !ok {
		return
	}

	user, err := h.userService.SetDefaultAddress(c.Request.Context(), currentUserID(c), addressID)
	if err != nil {
		errors.HandleError(c, err)
		return
	}

	errors.HandleSuccess(c, http.StatusOK, user, "user:address.default")
}

// AddToWishlist handles POST /profile/wishlist/:productId.
func (h *UserHandler) AddToWishlist(c *gin.Context) {
	productID, ok := pathObjectID(c, "productId")
	if !ok {
		return
	}

	user, err := h.userService.AddToWishlist(c.Request.Context(), currentUserID(c), productID)
	if err != nil {
		errors.HandleError(c, err)
		return
	}

	errors.HandleSuccess(c, http.StatusOK, user, "user:wishlist.added")
}

// RemoveFromWishlist handles DELETE /profile/wishlist/:productId.
func (h *UserHandler) RemoveFromWishlist(c *gin.Context) {
	productID, ok := pathObjectID(c, "productId")
	if !ok {
		return
	}

	user, err := h.userService.RemoveFromWishlist(c.Request.Context(), currentUserID(c), productID)
	if err != nil {
		errors.HandleError(c, err)
		return
	}

	errors.HandleSuccess(c, http.StatusOK, user, "user:wishlist.removed")
}
