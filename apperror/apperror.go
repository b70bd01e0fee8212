// Package apperror defines the application error taxonomy and its mapping
// to HTTP status codes. Services return *AppError values; the respond
// package turns them into the JSON envelope without leaking internals.
package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorType classifies an application error.
type ErrorType int

const (
	// UnknownError is for unspecified errors.
	UnknownError ErrorType = iota
	// DatabaseError represents an error originating from the database.
	DatabaseError
	// ConfigError represents an error related to application configuration.
	ConfigError
	// AuthError represents an invalid credential (bad login, bad token).
	AuthError
	// NoCredentialError represents a missing credential on a protected route.
	NoCredentialError
	// ForbiddenError represents a valid credential lacking permission.
	ForbiddenError
	// NotFoundError represents a resource not found.
	NotFoundError
	// ValidationError represents an input validation failure.
	ValidationError
	// ConflictError represents a uniqueness conflict (resource already exists).
	ConflictError
	// SelfDeletionError represents an admin attempting to delete their own account.
	SelfDeletionError
	// InternalError represents a generic internal server error.
	InternalError
)

// AppError is the application's error type. It carries a user-facing
// message and an optional underlying cause for logs.
type AppError struct {
	Type    ErrorType
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap exposes the underlying cause to errors.Is / errors.As.
func (e *AppError) Unwrap() error {
	return e.Err
}

// StatusCode returns the HTTP status code for the error type.
func (e *AppError) StatusCode() int {
	switch e.Type {
	case DatabaseError, ConfigError, InternalError:
		return http.StatusInternalServerError
	case AuthError:
		return http.StatusUnauthorized
	case NoCredentialError, ForbiddenError:
		// A missing credential is reported as 403, an invalid one as 401.
		return http.StatusForbidden
	case NotFoundError:
		return http.StatusNotFound
	case ValidationError, SelfDeletionError:
		return http.StatusBadRequest
	case ConflictError:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// NewAppError creates a new AppError with an arbitrary type.
func NewAppError(errType ErrorType, message string, underlying error) *AppError {
	return &AppError{Type: errType, Message: message, Err: underlying}
}

// NewDatabaseError creates a DatabaseError.
func NewDatabaseError(message string, underlying error) *AppError {
	return NewAppError(DatabaseError, message, underlying)
}

// NewConfigError creates a ConfigError.
func NewConfigError(message string, underlying error) *AppError {
	return NewAppError(ConfigError, message, underlying)
}

// NewAuthError creates an AuthError.
func NewAuthError(message string, underlying error) *AppError {
	return NewAppError(AuthError, message, underlying)
}

// NewNoCredentialError creates a NoCredentialError.
func NewNoCredentialError(message string, underlying error) *AppError {
	return NewAppError(NoCredentialError, message, underlying)
}

// NewForbiddenError creates a ForbiddenError.
func NewForbiddenError(message string, underlying error) *AppError {
	return NewAppError(ForbiddenError, message, underlying)
}

// NewNotFoundError creates a NotFoundError.
func NewNotFoundError(message string, underlying error) *AppError {
	return NewAppError(NotFoundError, message, underlying)
}

// NewValidationError creates a ValidationError.
func NewValidationError(message string, underlying error) *AppError {
	return NewAppError(ValidationError, message, underlying)
}

// NewConflictError creates a ConflictError.
func NewConflictError(message string, underlying error) *AppError {
	return NewAppError(ConflictError, message, underlying)
}

// NewSelfDeletionError creates a SelfDeletionError.
func NewSelfDeletionError(message string) *AppError {
	return NewAppError(SelfDeletionError, message, nil)
}

// NewInternalError creates an InternalError.
func NewInternalError(message string, underlying error) *AppError {
	return NewAppError(InternalError, message, underlying)
}

// FromError converts err to an *AppError if it is one (directly or wrapped).
func FromError(err error) (*AppError, bool) {
	if err == nil {
		return nil, false
	}
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// IsNotFound reports whether err is a NotFoundError.
func IsNotFound(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Type == NotFoundError
}

// IsAuthError reports whether err is an AuthError.
func IsAuthError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Type == AuthError
}

// IsForbidden reports whether err is a ForbiddenError.
func IsForbidden(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Type == ForbiddenError
}

// IsValidationError reports whether err is a ValidationError.
func IsValidationError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Type == ValidationError
}

// IsConflict reports whether err is a ConflictError.
func IsConflict(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Type == ConflictError
}
