package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"ecommerce-backend/config"
	"ecommerce-backend/internal/model"
)

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:           "test-secret",
		AccessExpiryMinutes: 30,
		RefreshExpiryDays:   30,
		ResetExpiryMinutes:  10,
	}
}

func TestNewTokenService_EmptySecret(t *testing.T) {
	cfg := testConfig()
	cfg.JWTSecret = ""

	_, err := NewTokenService(cfg, new(MockTokenRepository))
	assert.Error(t, err)
}

func TestIssueAccessToken(t *testing.T) {
	mockRepo := new(MockTokenRepository)
	svc, err := NewTokenService(testConfig(), mockRepo)
	require.NoError(t, err)

	userID := primitive.NewObjectID()
	before := time.Now()

	info, err := svc.IssueAccessToken(userID)
	require.NoError(t, err)
	assert.NotEmpty(t, info.Token)

	// Encoded expiry must be the configured access duration after issuance.
	assert.WithinDuration(t, before.Add(30*time.Minute), info.ExpiresAt, 2*time.Second)

	claims, err := svc.Parse(info.Token, model.TokenTypeAccess)
	require.NoError(t, err)
	assert.Equal(t, userID.Hex(), claims.Subject)
	assert.Equal(t, model.TokenTypeAccess, claims.Type)

	// Access tokens are stateless: nothing was persisted.
	mockRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestIssueRefreshToken_Persisted(t *testing.T) {
	mockRepo := new(MockTokenRepository)
	svc, err := NewTokenService(testConfig(), mockRepo)
	require.NoError(t, err)

	userID := primitive.NewObjectID()

	var saved *model.Token
	mockRepo.On("Save", mock.Anything, mock.AnythingOfType("*model.Token")).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).(*model.Token)
		}).Return(nil)

	info, err := svc.IssueRefreshToken(context.Background(), userID)
	require.NoError(t, err)

	require.NotNil(t, saved)
	assert.Equal(t, info.Token, saved.Token)
	assert.Equal(t, userID, saved.UserID)
	assert.Equal(t, model.TokenTypeRefresh, saved.Type)
	assert.False(t, saved.Blacklisted)
	assert.Equal(t, info.ExpiresAt, saved.ExpiresAt)
}

func TestIssueResetToken_TenMinuteExpiry(t *testing.T) {
	mockRepo := new(MockTokenRepository)
	svc, err := NewTokenService(testConfig(), mockRepo)
	require.NoError(t, err)

	var saved *model.Token
	mockRepo.On("Save", mock.Anything, mock.AnythingOfType("*model.Token")).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).(*model.Token)
		}).Return(nil)

	before := time.Now()
	token, err := svc.IssueResetToken(context.Background(), primitive.NewObjectID())
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	require.NotNil(t, saved)
	assert.Equal(t, model.TokenTypeResetPassword, saved.Type)
	assert.WithinDuration(t, before.Add(10*time.Minute), saved.ExpiresAt, 2*time.Second)
}

func TestIssueAuthTokenPair(t *testing.T) {
	mockRepo := new(MockTokenRepository)
	svc, err := NewTokenService(testConfig(), mockRepo)
	require.NoError(t, err)

	mockRepo.On("Save", mock.Anything, mock.AnythingOfType("*model.Token")).Return(nil)

	pair, err := svc.IssueAuthTokenPair(context.Background(), primitive.NewObjectID())
	require.NoError(t, err)

	assert.NotEmpty(t, pair.Access.Token)
	assert.NotEmpty(t, pair.Refresh.Token)
	assert.True(t, pair.Refresh.ExpiresAt.After(pair.Access.ExpiresAt))

	// Only the refresh token is persisted.
	mockRepo.AssertNumberOfCalls(t, "Save", 1)
}

func TestParse_RejectsWrongType(t *testing.T) {
	mockRepo := new(MockTokenRepository)
	svc, err := NewTokenService(testConfig(), mockRepo)
	require.NoError(t, err)

	info, err := svc.IssueAccessToken(primitive.NewObjectID())
	require.NoError(t, err)

	_, err = svc.Parse(info.Token, model.TokenTypeRefresh)
	assert.Error(t, err)
}

func TestParse_RejectsTamperedToken(t *testing.T) {
	mockRepo := new(MockTokenRepository)
	svc, err := NewTokenService(testConfig(), mockRepo)
	require.NoError(t, err)

	other, err := NewTokenService(&config.Config{
		JWTSecret:           "different-secret",
		AccessExpiryMinutes: 30,
	}, mockRepo)
	require.NoError(t, err)

	info, err := other.IssueAccessToken(primitive.NewObjectID())
	require.NoError(t, err)

	_, err = svc.Parse(info.Token, model.TokenTypeAccess)
	assert.Error(t, err)
}

func TestVerifyPersisted_BlacklistedRejected(t *testing.T) {
	mockRepo := new(MockTokenRepository)
	svc, err := NewTokenService(testConfig(), mockRepo)
	require.NoError(t, err)

	userID := primitive.NewObjectID()
	mockRepo.On("Save", mock.Anything, mock.AnythingOfType("*model.Token")).Return(nil)

	info, err := svc.IssueRefreshToken(context.Background(), userID)
	require.NoError(t, err)

	mockRepo.On("FindByToken", mock.Anything, info.Token, model.TokenTypeRefresh).
		Return(&model.Token{Token: info.Token, UserID: userID, Type: model.TokenTypeRefresh, Blacklisted: true}, nil)

	_, err = svc.VerifyPersisted(context.Background(), info.Token, model.TokenTypeRefresh)
	assert.Error(t, err)
}

func TestVerifyPersisted_MissingRecordRejected(t *testing.T) {
	mockRepo := new(MockTokenRepository)
	svc, err := NewTokenService(testConfig(), mockRepo)
	require.NoError(t, err)

	mockRepo.On("Save", mock.Anything, mock.AnythingOfType("*model.Token")).Return(nil)

	info, err := svc.IssueRefreshToken(context.Background(), primitive.NewObjectID())
	require.NoError(t, err)

	// Signature is valid but no persisted record exists; must be rejected.
	mockRepo.On("FindByToken", mock.Anything, info.Token, model.TokenTypeRefresh).Return(nil, nil)

	_, err = svc.VerifyPersisted(context.Background(), info.Token, model.TokenTypeRefresh)
	assert.Error(t, err)
}
