package service

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"ecommerce-backend/config"
	"ecommerce-backend/internal/errors"
	"ecommerce-backend/internal/model"
	"ecommerce-backend/internal/repository/interfaces"
)

// TokenClaims is the JWT payload: subject (user id), issuance and expiry
// timestamps, and the token type.
type TokenClaims struct {
	Type model.TokenType `json:"type"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies signed tokens. ACCESS tokens are
// stateless; REFRESH and RESET_PASSWORD tokens are persisted so they can be
// revoked before their natural expiry.
type TokenService struct {
	secret        []byte
	accessExpiry  time.Duration
	refreshExpiry time.Duration
	resetExpiry   time.Duration
	tokenRepo     interfaces.TokenRepository
}

// NewTokenService wires the issuer to its signing secret and store. An empty
// secret is a configuration error and is rejected here, at startup, not per
// request.
func NewTokenService(cfg *config.Config, tokenRepo interfaces.TokenRepository) (*TokenService, error) {
	if cfg.JWTSecret == "" {
		return nil, stderrors.New("token service: signing secret is empty")
	}
	return &TokenService{
		secret:        []byte(cfg.JWTSecret),
		accessExpiry:  cfg.AccessExpiry(),
		refreshExpiry: cfg.RefreshExpiry(),
		resetExpiry:   cfg.ResetExpiry(),
		tokenRepo:     tokenRepo,
	}, nil
}

func (s *TokenService) sign(userID primitive.ObjectID, expiresAt time.Time, tokenType model.TokenType) (string, error) {
	claims := TokenClaims{
		Type: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.Hex(),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

func (s *TokenService) save(ctx context.Context, tokenString string, userID primitive.ObjectID, expiresAt time.Time, tokenType model.TokenType) error {
	return s.tokenRepo.Save(ctx, &model.Token{
		Token:       tokenString,
		UserID:      userID,
		ExpiresAt:   expiresAt,
		Type:        tokenType,
		Blacklisted: false,
	})
}

// IssueAccessToken creates a signed access token. It is not persisted.
func (s *TokenService) IssueAccessToken(userID primitive.ObjectID) (model.TokenInfo, error) {
	expiresAt := time.Now().Add(s.accessExpiry)
	token, err := s.sign(userID, expiresAt, model.TokenTypeAccess)
	if err != nil {
		return model.TokenInfo{}, err
	}
	return model.TokenInfo{Token: token, ExpiresAt: expiresAt}, nil
}

// IssueRefreshToken creates a signed refresh token and records it for later
// revocation checks.
func (s *TokenService) IssueRefreshToken(ctx context.Context, userID primitive.ObjectID) (model.TokenInfo, error) {
	expiresAt := time.Now().Add(s.refreshExpiry)
	token, err := s.sign(userID, expiresAt, model.TokenTypeRefresh)
	if err != nil {
		return model.TokenInfo{}, err
	}
	if err := s.save(ctx, token, userID, expiresAt, model.TokenTypeRefresh); err != nil {
		return model.TokenInfo{}, err
	}
	return model.TokenInfo{Token: token, ExpiresAt: expiresAt}, nil
}

// IssueResetToken creates a persisted password-reset token.
func (s *TokenService) IssueResetToken(ctx context.Context, userID primitive.ObjectID) (string, error) {
	expiresAt := time.Now().Add(s.resetExpiry)
	token, err := s.sign(userID, expiresAt, model.TokenTypeResetPassword)
	if err != nil {
		return "", err
	}
	if err := s.save(ctx, token, userID, expiresAt, model.TokenTypeResetPassword); err != nil {
		return "", err
	}
	return token, nil
}

// IssueAuthTokenPair composes access and refresh issuance for a login.
func (s *TokenService) IssueAuthTokenPair(ctx context.Context, userID primitive.ObjectID) (*model.TokenPair, error) {
	access, err := s.IssueAccessToken(userID)
	if err != nil {
		return nil, err
	}
	refresh, err := s.IssueRefreshToken(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &model.TokenPair{Access: access, Refresh: refresh}, nil
}

// Parse validates the signature and expiry of a token of the expected type
// and returns its claims. This alone is sufficient only for ACCESS tokens.
func (s *TokenService) Parse(tokenString string, expected model.TokenType) (*TokenClaims, error) {
	claims := &TokenClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, stderrors.New("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, errors.Wrap(errors.ErrInvalidToken, "auth:token.invalid", err)
	}
	if claims.Type != expected {
		return nil, errors.New(errors.ErrInvalidToken, "auth:token.invalid")
	}
	return claims, nil
}

// UserID extracts the user id the claims were issued for.
func (c *TokenClaims) UserID() (primitive.ObjectID, error) {
	return primitive.ObjectIDFromHex(c.Subject)
}

// VerifyPersisted validates a REFRESH or RESET_PASSWORD token: signature and
// expiry first, then the persisted record, which must exist and not be
// blacklisted. Signature validity alone is insufficient for these types.
func (s *TokenService) VerifyPersisted(ctx context.Context, tokenString string, tokenType model.TokenType) (*model.Token, error) {
	if _, err := s.Parse(tokenString, tokenType); err != nil {
		return nil, err
	}

	record, err := s.tokenRepo.FindByToken(ctx, tokenString, tokenType)
	if err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, "common:internalError", err)
	}
	if record == nil || record.Blacklisted {
		return nil, errors.New(errors.ErrInvalidToken, "auth:token.invalid")
	}
	return record, nil
}

// Blacklist revokes a persisted token before its natural expiry.
func (s *TokenService) Blacklist(ctx context.Context, tokenString string) error {
	return s.tokenRepo.Blacklist(ctx, tokenString)
}

// RevokeAll removes every persisted token of one type for a user.
func (s *TokenService) RevokeAll(ctx context.Context, userID primitive.ObjectID, tokenType model.TokenType) error {
	return s.tokenRepo.DeleteByUser(ctx, userID, tokenType)
}

// PurgeExpired deletes persisted tokens past their expiry. Called
// periodically so expired rows do not accumulate indefinitely.
func (s *TokenService) PurgeExpired(ctx context.Context) (int64, error) {
	deleted, err := s.tokenRepo.DeleteExpired(ctx, time.Now())
	if err != nil {
		return 0, err
	}
	if deleted > 0 {
		zap.L().Info("purged expired tokens", zap.Int64("count", deleted))
	}
	return deleted, nil
}
