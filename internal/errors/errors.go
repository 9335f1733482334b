package errors

import "fmt"

// ErrorCode classifies application errors.
type ErrorCode int

// System errors (1000-1999)
const (
	ErrInternal ErrorCode = 1000 + iota
	ErrDatabase
	ErrTimeout
)

// Authentication errors (2000-2999)
const (
	ErrUnauthorized ErrorCode = 2000 + iota
	ErrForbidden
	ErrInvalidToken
	ErrTokenExpired
	ErrInvalidCredentials
)

// Request errors (3000-3999)
const (
	ErrBadRequest ErrorCode = 3000 + iota
	ErrValidation
	ErrResourceNotFound
	ErrResourceExists
)

// Business errors (4000-4999)
const (
	ErrUserNotFound ErrorCode = 4000 + iota
	ErrEmailExists
	ErrWeakPassword
	ErrAddressNotFound
)

// AppError is the application error type. MessageKey is an i18n message key
// (e.g. "auth:login.failed"), never prose; the HTTP boundary resolves it to
// localized text.
type AppError struct {
	Code       ErrorCode
	MessageKey string
	Err        error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%d] %s: %v", e.Code, e.MessageKey, e.Err)
	}
	return fmt.Sprintf("[%d] %s", e.Code, e.MessageKey)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates an application error from a code and message key.
func New(code ErrorCode, messageKey string) *AppError {
	return &AppError{
		Code:       code,
		MessageKey: messageKey,
	}
}

// Wrap attaches a code and message key to an underlying error.
func Wrap(code ErrorCode, messageKey string, err error) *AppError {
	return &AppError{
		Code:       code,
		MessageKey: messageKey,
		Err:        err,
	}
}

// Is reports whether err is an *AppError carrying the given code.
func Is(err error, code ErrorCode) bool {
	if appErr, ok := err.(*AppError); ok {
		return appErr.Code == code
	}
	return false
}
