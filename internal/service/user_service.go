package service

import (
	"context"
	stderrors "errors"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"ecommerce-backend/internal/errors"
	"ecommerce-backend/internal/model"
	"ecommerce-backend/internal/repository/interfaces"
)

// EmailSender delivers transactional mail. Kept as an interface so the
// service can be tested without an SMTP server.
type EmailSender interface {
	SendPasswordResetEmail(to, name, resetToken string) error
}

// UserService orchestrates registration, authentication and profile
// management. Hashing and token issuance are explicit steps here, not
// hidden persistence hooks.
type UserService struct {
	userRepo     interfaces.UserRepository
	tokenService *TokenService
	hasher       *PasswordHasher
	emailSender  EmailSender
}

// NewUserService creates a UserService with its collaborators.
func NewUserService(userRepo interfaces.UserRepository, tokenService *TokenService, hasher *PasswordHasher, emailSender EmailSender) *UserService {
	return &UserService{
		userRepo:     userRepo,
		tokenService: tokenService,
		hasher:       hasher,
		emailSender:  emailSender,
	}
}

// NormalizeEmail lowercases and trims an email address before any lookup or
// persistence.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates a new user account. The email uniqueness pre-check is
// best-effort; a concurrent registration racing past it is caught by the
// store's unique index and reported as the same conflict.
func (s *UserService) Register(ctx context.Context, name, email, password, role string) (*model.User, error) {
	email = NormalizeEmail(email)

	if role == "" {
		role = model.RoleUser
	}
	if !model.ValidRole(role) {
		return nil, errors.New(errors.ErrValidation, "validation:role.invalid")
	}

	existing, err := s.userRepo.FindByEmail(ctx, email, false, false)
	if err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, "common:internalError", err)
	}
	if existing != nil {
		return nil, errors.New(errors.ErrEmailExists, "auth:register.emailExists")
	}

	hashed, err := s.hasher.Hash(password)
	if err != nil {
		return nil, errors.Wrap(errors.ErrInternal, "common:internalError", err)
	}

	user := &model.User{
		Name:       strings.TrimSpace(name),
		Email:      email,
		Password:   hashed,
		Avatar:     model.DefaultAvatarURL,
		Role:       role,
		IsActive:   true,
		IsVerified: false,
		Addresses:  []model.Address{},
		Wishlist:   []primitive.ObjectID{},
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if stderrors.Is(err, interfaces.ErrDuplicateEmail) {
			return nil, errors.New(errors.ErrEmailExists, "auth:register.emailExists")
		}
		return nil, errors.Wrap(errors.ErrDatabase, "common:internalError", err)
	}

	zap.L().Info("user registered", zap.String("user_id", user.ID.Hex()))
	return user.Sanitize(), nil
}

// Login verifies credentials and issues an access/refresh token pair. An
// unknown email and a wrong password yield the identical message key so the
// response cannot be used to enumerate accounts.
func (s *UserService) Login(ctx context.Context, email, password string) (*model.User, *model.TokenPair, error) {
	email = NormalizeEmail(email)

	user, err := s.userRepo.FindByEmail(ctx, email, true, false)
	if err != nil {
		return nil, nil, errors.Wrap(errors.ErrDatabase, "common:internalError", err)
	}
	if user == nil {
		return nil, nil, errors.New(errors.ErrInvalidCredentials, "auth:login.failed")
	}

	ok, err := s.hasher.Verify(password, user.Password)
	if err != nil {
		return nil, nil, errors.Wrap(errors.ErrInternal, "common:internalError", err)
	}
	if !ok {
		return nil, nil, errors.New(errors.ErrInvalidCredentials, "auth:login.failed")
	}

	// Best-effort login stamp; a failure here must not fail the login.
	if err := s.userRepo.UpdateLastLogin(ctx, user.ID, time.Now().UTC()); err != nil {
		zap.L().Warn("failed to update last login", zap.String("user_id", user.ID.Hex()), zap.Error(err))
	}

	tokens, err := s.tokenService.IssueAuthTokenPair(ctx, user.ID)
	if err != nil {
		return nil, nil, errors.Wrap(errors.ErrInternal, "common:internalError", err)
	}

	zap.L().Info("user logged in", zap.String("user_id", user.ID.Hex()))
	return user.Sanitize(), tokens, nil
}

// RefreshTokens rotates a refresh token: the presented token is revoked and
// a fresh pair is issued.
func (s *UserService) RefreshTokens(ctx context.Context, refreshToken string) (*model.TokenPair, error) {
	record, err := s.tokenService.VerifyPersisted(ctx, refreshToken, model.TokenTypeRefresh)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindByID(ctx, record.UserID, false)
	if err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, "common:internalError", err)
	}
	if user == nil {
		return nil, errors.New(errors.ErrInvalidToken, "auth:token.invalid")
	}

	if err := s.tokenService.Blacklist(ctx, refreshToken); err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, "common:internalError", err)
	}
	return s.tokenService.IssueAuthTokenPair(ctx, user.ID)
}

// Logout revokes the presented refresh token.
func (s *UserService) Logout(ctx context.Context, refreshToken string) error {
	if _, err := s.tokenService.VerifyPersisted(ctx, refreshToken, model.TokenTypeRefresh); err != nil {
		return err
	}
	if err := s.tokenService.Blacklist(ctx, refreshToken); err != nil {
		return errors.Wrap(errors.ErrDatabase, "common:internalError", err)
	}
	return nil
}

// RequestPasswordReset issues a reset token and emails it. An unknown email
// is not reported to the caller, for the same enumeration-resistance reason
// as Login.
func (s *UserService) RequestPasswordReset(ctx context.Context, email string) error {
	email = NormalizeEmail(email)

	user, err := s.userRepo.FindByEmail(ctx, email, false, false)
	if err != nil {
		return errors.Wrap(errors.ErrDatabase, "common:internalError", err)
	}
	if user == nil {
		zap.L().Info("password reset requested for unknown email")
		return nil
	}

	token, err := s.tokenService.IssueResetToken(ctx, user.ID)
	if err != nil {
		return errors.Wrap(errors.ErrInternal, "common:internalError", err)
	}

	if err := s.emailSender.SendPasswordResetEmail(user.Email, user.Name, token); err != nil {
		return errors.Wrap(errors.ErrInternal, "common:internalError", err)
	}
	return nil
}

// ResetPassword sets a new password for the owner of a valid reset token.
// All outstanding reset tokens for the user are removed afterwards, so each
// token is single-use.
func (s *UserService) ResetPassword(ctx context.Context, resetToken, newPassword string) error {
	record, err := s.tokenService.VerifyPersisted(ctx, resetToken, model.TokenTypeResetPassword)
	if err != nil {
		return err
	}

	hashed, err := s.hasher.Hash(newPassword)
	if err != nil {
		return errors.Wrap(errors.ErrInternal, "common:internalError", err)
	}

	if err := s.userRepo.UpdatePassword(ctx, record.UserID, hashed); err != nil {
		return errors.Wrap(errors.ErrDatabase, "common:internalError", err)
	}

	if err := s.tokenService.RevokeAll(ctx, record.UserID, model.TokenTypeResetPassword); err != nil {
		zap.L().Warn("failed to revoke reset tokens", zap.String("user_id", record.UserID.Hex()), zap.Error(err))
	}

	zap.L().Info("password reset", zap.String("user_id", record.UserID.Hex()))
	return nil
}

// ChangePassword verifies the current password before storing a new one.
func (s *UserService) ChangePassword(ctx context.Context, userID primitive.ObjectID, oldPassword, newPassword string) error {
	user, err := s.userRepo.FindByID(ctx, userID, false)
	if err != nil {
		return errors.Wrap(errors.ErrDatabase, "common:internalError", err)
	}
	if user == nil {
		return errors.New(errors.ErrUserNotFound, "user:notFound")
	}

	// The hash is hidden from normal reads; fetch it explicitly.
	withPassword, err := s.userRepo.FindByEmail(ctx, user.Email, true, false)
	if err != nil {
		return errors.Wrap(errors.ErrDatabase, "common:internalError", err)
	}
	if withPassword == nil {
		return errors.New(errors.ErrUserNotFound, "user:notFound")
	}

	ok, err := s.hasher.Verify(oldPassword, withPassword.Password)
	if err != nil {
		return errors.Wrap(errors.ErrInternal, "common:internalError", err)
	}
	if !ok {
		return errors.New(errors.ErrUnauthorized, "auth:password.wrong")
	}

	hashed, err := s.hasher.Hash(newPassword)
	if err != nil {
		return errors.Wrap(errors.ErrInternal, "common:internalError", err)
	}
	if err := s.userRepo.UpdatePassword(ctx, userID, hashed); err != nil {
		return errors.Wrap(errors.ErrDatabase, "common:internalError", err)
	}
	return nil
}

// GetUserByID fetches an active user.
func (s *UserService) GetUserByID(ctx context.Context, id primitive.ObjectID) (*model.User, error) {
	user, err := s.userRepo.FindByID(ctx, id, false)
	if err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, "common:internalError", err)
	}
	if user == nil {
		return nil, errors.New(errors.ErrUserNotFound, "user:notFound")
	}
	return user, nil
}

// GetUsers lists active users with pagination.
func (s *UserService) GetUsers(ctx context.Context, page, pageSize int) ([]*model.User, int64, error) {
	users, err := s.userRepo.FindAll(ctx, page, pageSize)
	if err != nil {
		return nil, 0, errors.Wrap(errors.ErrDatabase, "common:internalError", err)
	}
	total, err := s.userRepo.Count(ctx)
	if err != nil {
		return nil, 0, errors.Wrap(errors.ErrDatabase, "common:internalError", err)
	}
	return users, total, nil
}

// UpdateProfile updates the fields a user may change about themselves.
func (s *UserService) UpdateProfile(ctx context.Context, userID primitive.ObjectID, name, phone string) (*model.User, error) {
	user, err := s.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if name != "" {
		user.Name = strings.TrimSpace(name)
	}
	if phone != "" {
		user.Phone = strings.TrimSpace(phone)
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, "common:internalError", err)
	}
	return user, nil
}

// UpdateAvatar stores a new avatar URL for the user.
func (s *UserService) UpdateAvatar(ctx context.Context, userID primitive.ObjectID, avatarURL string) (*model.User, error) {
	user, err := s.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	user.Avatar = avatarURL
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, "common:internalError", err)
	}
	return user, nil
}

// UpdateUserRole changes a user's role. Admin only at the HTTP layer.
func (s *UserService) UpdateUserRole(ctx context.Context, userID primitive.ObjectID, role string) error {
	if !model.ValidRole(role) {
		return errors.New(errors.ErrValidation, "validation:role.invalid")
	}
	user, err := s.GetUserByID(ctx, userID)
	if err != nil {
		return err
	}
	user.Role = role
	if err := s.userRepo.Update(ctx, user); err != nil {
		return errors.Wrap(errors.ErrDatabase, "common:internalError", err)
	}
	return nil
}

// SoftDeleteUser marks an account deleted. The record stays in the store and
// its email becomes available for registration again.
func (s *UserService) SoftDeleteUser(ctx context.Context, userID primitive.ObjectID) error {
	if err := s.userRepo.SoftDelete(ctx, userID); err != nil {
		if stderrors.Is(err, interfaces.ErrNotFound) {
			return errors.New(errors.ErrUserNotFound, "user:notFound")
		}
		return errors.Wrap(errors.ErrDatabase, "common:internalError", err)
	}
	// Revoke outstanding sessions for the deleted account.
	if err := s.tokenService.RevokeAll(ctx, userID, model.TokenTypeRefresh); err != nil {
		zap.L().Warn("failed to revoke refresh tokens", zap.String("user_id", userID.Hex()), zap.Error(err))
	}
	return nil
}

// UserServiceInterface is what the HTTP handlers depend on; it exists so
// handler tests can substitute a mock.
type UserServiceInterface interface {
	Register(ctx context.Context, name, email, password, role string) (*model.User, error)
	Login(ctx context.Context, email, password string) (*model.User, *model.TokenPair, error)
	RefreshTokens(ctx context.Context, refreshToken string) (*model.TokenPair, error)
	Logout(ctx context.Context, refreshToken string) error
	RequestPasswordReset(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, resetToken, newPassword string) error
	ChangePassword(ctx context.Context, userID primitive.ObjectID, oldPassword, newPassword string) error
	GetUserByID(ctx context.Context, id primitive.ObjectID) (*model.User, error)
	GetUsers(ctx context.Context, page, pageSize int) ([]*model.User, int64, error)
	UpdateProfile(ctx context.Context, userID primitive.ObjectID, name, phone string) (*model.User, error)
	UpdateAvatar(ctx context.Context, userID primitive.ObjectID, avatarURL string) (*model.User, error)
	UpdateUserRole(ctx context.Context, userID primitive.ObjectID, role string) error
	SoftDeleteUser(ctx context.Context, userID primitive.ObjectID) error
	RestoreUser(ctx context.Context, userID primitive.ObjectID) error
	AddAddress(ctx context.Context, userID primitive.ObjectID, address model.Address) (*model.User, error)
	UpdateAddress(ctx context.Context, userID, addressID primitive.ObjectID, address model.Address) (*model.User, error)
	RemoveAddress(ctx context.Context, userID, addressID primitive.ObjectID) (*model.User, error)
	SetDefaultAddress(ctx context.Context, userID, addressID primitive.ObjectID) (*model.User, error)
	AddToWishlist(ctx context.Context, userID, productID primitive.ObjectID) (*model.User, error)
	RemoveFromWishlist(ctx context.Context, userID, productID primitive.ObjectID) (*model.User, error)
}

var _ UserServiceInterface = (*UserService)(nil)

// RestoreUser clears the soft-delete marker. Fails with a conflict when the
// email has been re-registered in the meantime.
func (s *UserService) RestoreUser(ctx context.Context, userID primitive.ObjectID) error {
	if err := s.userRepo.Restore(ctx, userID); err != nil {
		if stderrors.Is(err, interfaces.ErrNotFound) {
			return errors.New(errors.ErrUserNotFound, "user:notFound")
		}
		if stderrors.Is(err, interfaces.ErrDuplicateEmail) {
			return errors.New(errors.ErrEmailExists, "auth:register.emailExists")
		}
		return errors.Wrap(errors.ErrDatabase, "common:internalError", err)
	}
	return nil
}
