package interfaces

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"ecommerce-backend/internal/model"
)

// ErrDuplicateEmail is returned by Create when the store's unique index
// rejects the email. The pre-check in the registration flow is best-effort
// only; a concurrent registration can race past it, and the index is the
// final authority.
var ErrDuplicateEmail = errors.New("email already in use")

// ErrNotFound is returned by mutations that matched no record.
var ErrNotFound = errors.New("record not found")

// UserRepository defines the persistence operations for users. Lookups
// exclude soft-deleted users unless includeDeleted is set; the caller's
// intent is always explicit, there is no implicit query rewriting.
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	FindByID(ctx context.Context, id primitive.ObjectID, includeDeleted bool) (*model.User, error)
	// FindByEmail fetches the password hash only when withPassword is set;
	// every other read path leaves it out of the projection.
	FindByEmail(ctx context.Context, email string, withPassword, includeDeleted bool) (*model.User, error)
	Update(ctx context.Context, user *model.User) error
	UpdatePassword(ctx context.Context, id primitive.ObjectID, passwordHash string) error
	UpdateLastLogin(ctx context.Context, id primitive.ObjectID, at time.Time) error
	SoftDelete(ctx context.Context, id primitive.ObjectID) error
	Restore(ctx context.Context, id primitive.ObjectID) error
	FindAll(ctx context.Context, page, pageSize int) ([]*model.User, error)
	Count(ctx context.Context) (int64, error)
}
