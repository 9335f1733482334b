package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"ecommerce-backend/internal/model"
	"ecommerce-backend/internal/repository/interfaces"
)

// tokenRepository implements interfaces.TokenRepository on the "tokens"
// collection.
type tokenRepository struct {
	tokens *mongo.Collection
}

// NewTokenRepository creates a token repository backed by the "tokens"
// collection.
func NewTokenRepository(db *mongo.Database) *tokenRepository {
	return &tokenRepository{tokens: db.Collection("tokens")}
}

func (r *tokenRepository) Save(ctx context.Context, token *model.Token) error {
	token.CreatedAt = time.Now().UTC()
	res, err := r.tokens.InsertOne(ctx, token)
	if err != nil {
		return err
	}
	token.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *tokenRepository) FindByToken(ctx context.Context, tokenString string, tokenType model.TokenType) (*model.Token, error) {
	var token model.Token
	err := r.tokens.FindOne(ctx, bson.M{"token": tokenString, "type": tokenType}).Decode(&token)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &token, nil
}

func (r *tokenRepository) Blacklist(ctx context.Context, tokenString string) error {
	res, err := r.tokens.UpdateOne(ctx,
		bson.M{"token": tokenString},
		bson.M{"$set": bson.M{"blacklisted": true}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return interfaces.ErrNotFound
	}
	return nil
}

func (r *tokenRepository) DeleteByUser(ctx context.Context, userID primitive.ObjectID, tokenType model.TokenType) error {
	_, err := r.tokens.DeleteMany(ctx, bson.M{"user": userID, "type": tokenType})
	return err
}

func (r *tokenRepository) DeleteExpired(ctx context.Context, before time.Time) (int64, error) {
	res, err := r.tokens.DeleteMany(ctx, bson.M{"expires": bson.M{"$lt": before}})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
