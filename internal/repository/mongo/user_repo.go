package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"ecommerce-backend/internal/model"
	"ecommerce-backend/internal/repository/interfaces"
)

// userRepository implements interfaces.UserRepository on a MongoDB
// collection.
type userRepository struct {
	users *mongo.Collection
}

// NewUserRepository creates a user repository backed by the "users"
// collection.
func NewUserRepository(db *mongo.Database) *userRepository {
	return &userRepository{users: db.Collection("users")}
}

// noPassword leaves the password hash out of query results. Only
// FindByEmail with withPassword set bypasses it.
var noPassword = bson.M{"password": 0}

func activeFilter(filter bson.M, includeDeleted bool) bson.M {
	if !includeDeleted {
		filter["deletedAt"] = nil
	}
	return filter
}

func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now

	res, err := r.users.InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return interfaces.ErrDuplicateEmail
		}
		zap.L().Error("failed to insert user", zap.Error(err))
		return err
	}
	user.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *userRepository) FindByID(ctx context.Context, id primitive.ObjectID, includeDeleted bool) (*model.User, error) {
	filter := activeFilter(bson.M{"_id": id}, includeDeleted)

	var user model.User
	err := r.users.FindOne(ctx, filter, options.FindOne().SetProjection(noPassword)).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string, withPassword, includeDeleted bool) (*model.User, error) {
	filter := activeFilter(bson.M{"email": email}, includeDeleted)

	opts := options.FindOne()
	if !withPassword {
		opts.SetProjection(noPassword)
	}

	var user model.User
	err := r.users.FindOne(ctx, filter, opts).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Update persists the mutable profile fields. The password hash has its own
// update path and is never touched here.
func (r *userRepository) Update(ctx context.Context, user *model.User) error {
	user.UpdatedAt = time.Now().UTC()

	update := bson.M{"$set": bson.M{
		"name":       user.Name,
		"email":      user.Email,
		"phone":      user.Phone,
		"avatar":     user.Avatar,
		"role":       user.Role,
		"isActive":   user.IsActive,
		"isVerified": user.IsVerified,
		"addresses":  user.Addresses,
		"wishlist":   user.Wishlist,
		"updatedAt":  user.UpdatedAt,
	}}

	_, err := r.users.UpdateOne(ctx, bson.M{"_id": user.ID}, update)
	if mongo.IsDuplicateKeyError(err) {
		return interfaces.ErrDuplicateEmail
	}
	return err
}

func (r *userRepository) UpdatePassword(ctx context.Context, id primitive.ObjectID, passwordHash string) error {
	_, err := r.users.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{
		"password":  passwordHash,
		"updatedAt": time.Now().UTC(),
	}})
	return err
}

func (r *userRepository) UpdateLastLogin(ctx context.Context, id primitive.ObjectID, at time.Time) error {
	_, err := r.users.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"lastLoginAt": at}})
	return err
}

func (r *userRepository) SoftDelete(ctx context.Context, id primitive.ObjectID) error {
	now := time.Now().UTC()
	res, err := r.users.UpdateOne(ctx, activeFilter(bson.M{"_id": id}, false), bson.M{"$set": bson.M{
		"deletedAt": now,
		"updatedAt": now,
	}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return interfaces.ErrNotFound
	}
	return nil
}

func (r *userRepository) Restore(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.users.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{
		"deletedAt": nil,
		"updatedAt": time.Now().UTC(),
	}})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return interfaces.ErrDuplicateEmail
		}
		return err
	}
	if res.MatchedCount == 0 {
		return interfaces.ErrNotFound
	}
	return nil
}

func (r *userRepository) FindAll(ctx context.Context, page, pageSize int) ([]*model.User, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}

	opts := options.Find().
		SetProjection(noPassword).
		SetSort(bson.M{"createdAt": -1}).
		SetSkip(int64((page - 1) * pageSize)).
		SetLimit(int64(pageSize))

	cursor, err := r.users.Find(ctx, activeFilter(bson.M{}, false), opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var users []*model.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepository) Count(ctx context.Context) (int64, error) {
	return r.users.CountDocuments(ctx, activeFilter(bson.M{}, false))
}
