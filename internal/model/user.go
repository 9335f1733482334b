package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User roles.
const (
	RoleUser        = "user"
	RoleAdmin       = "admin"
	RoleDeliveryman = "deliveryman"
)

// ValidRole reports whether role is one of the known user roles.
func ValidRole(role string) bool {
	switch role {
	case RoleUser, RoleAdmin, RoleDeliveryman:
		return true
	}
	return false
}

const DefaultAvatarURL = "https://res.cloudinary.com/da06cl33e/image/upload/v1769907509/user_riubgs.jpg"

// User represents a user document. The password hash is never serialized
// into API responses.
type User struct {
	ID          primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Name        string               `bson:"name" json:"name"`
	Email       string               `bson:"email" json:"email"`
	Password    string               `bson:"password,omitempty" json:"-"`
	Phone       string               `bson:"phone,omitempty" json:"phone,omitempty"`
	Avatar      string               `bson:"avatar" json:"avatar"`
	Role        string               `bson:"role" json:"role"`
	IsActive    bool                 `bson:"isActive" json:"isActive"`
	IsVerified  bool                 `bson:"isVerified" json:"isVerified"`
	Addresses   []Address            `bson:"addresses" json:"addresses"`
	Wishlist    []primitive.ObjectID `bson:"wishlist" json:"wishlist"`
	LastLoginAt *time.Time           `bson:"lastLoginAt,omitempty" json:"lastLoginAt,omitempty"`
	CreatedAt   time.Time            `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time            `bson:"updatedAt" json:"updatedAt"`
	// DeletedAt marks soft deletion; nil means the user is active.
	DeletedAt *time.Time `bson:"deletedAt" json:"deletedAt,omitempty"`
}

// Address is a delivery address embedded in the user document. At most one
// address per user may have IsDefault set.
type Address struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ReceiverName  string             `bson:"receiverName" json:"receiverName"`
	ReceiverPhone string             `bson:"receiverPhone" json:"receiverPhone"`
	Street        string             `bson:"street" json:"street"`
	City          string             `bson:"city" json:"city"`
	Country       string             `bson:"country" json:"country"`
	PostalCode    string             `bson:"postalCode" json:"postalCode"`
	IsDefault     bool               `bson:"isDefault" json:"isDefault"`
}

// Sanitize clears the password hash before the user is serialized.
func (u *User) Sanitize() *User {
	u.Password = ""
	return u
}

// IsDeleted reports whether the user has been soft-deleted.
func (u *User) IsDeleted() bool {
	return u.DeletedAt != nil
}
