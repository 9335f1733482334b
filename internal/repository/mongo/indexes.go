package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the indexes the repositories rely on. The partial
// unique index on email is the sole concurrency guard against duplicate
// registrations: it covers non-deleted users only, so a soft-deleted user's
// email can be registered again.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection("users").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "email", Value: 1}},
		Options: options.Index().
			SetName("unique_active_email_index").
			SetUnique(true).
			SetPartialFilterExpression(bson.M{"deletedAt": nil}),
	})
	if err != nil {
		return err
	}

	_, err = db.Collection("tokens").Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "token", Value: 1}}},
		{Keys: bson.D{{Key: "user", Value: 1}, {Key: "type", Value: 1}}},
		{Keys: bson.D{{Key: "expires", Value: 1}}},
	})
	return err
}
