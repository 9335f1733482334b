package interfaces

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"ecommerce-backend/internal/model"
)

// TokenRepository defines persistence for refresh and password-reset tokens.
// Access tokens are never stored.
type TokenRepository interface {
	Save(ctx context.Context, token *model.Token) error
	// FindByToken returns nil without error when no matching token exists.
	FindByToken(ctx context.Context, tokenString string, tokenType model.TokenType) (*model.Token, error)
	Blacklist(ctx context.Context, tokenString string) error
	// DeleteByUser removes every token of the given type for a user, e.g.
	// all outstanding reset tokens once one of them has been used.
	DeleteByUser(ctx context.Context, userID primitive.ObjectID, tokenType model.TokenType) error
	DeleteExpired(ctx context.Context, before time.Time) (int64, error)
}
