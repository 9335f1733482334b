package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TokenType enumerates the kinds of tokens the service issues.
type TokenType string

const (
	TokenTypeAccess        TokenType = "ACCESS"
	TokenTypeRefresh       TokenType = "REFRESH"
	TokenTypeResetPassword TokenType = "RESET_PASSWORD"
)

// Token is a persisted token document. Only REFRESH and RESET_PASSWORD
// tokens are stored; ACCESS tokens are stateless and verified by signature
// alone.
type Token struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Token       string             `bson:"token" json:"token"`
	UserID      primitive.ObjectID `bson:"user" json:"user"`
	ExpiresAt   time.Time          `bson:"expires" json:"expires"`
	Type        TokenType          `bson:"type" json:"type"`
	Blacklisted bool               `bson:"blacklisted" json:"blacklisted"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
}

// TokenInfo pairs a signed token string with its expiry, as returned to
// clients.
type TokenInfo struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires"`
}

// TokenPair is the access/refresh pair issued on login.
type TokenPair struct {
	Access  TokenInfo `json:"access"`
	Refresh TokenInfo `json:"refresh"`
}
