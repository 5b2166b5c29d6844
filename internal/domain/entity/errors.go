package entity

import (
	"errors"
	"fmt"
)

// Sentinel errors forming the error taxonomy of the service. Repositories
// translate driver errors into these; the HTTP layer maps them to status
// codes at the operation boundary.
var (
	// ErrNotFound signals that the referenced id or slug does not exist,
	// or that the post is not visible to the caller.
	ErrNotFound = errors.New("not found")

	// ErrConflict signals a uniqueness violation (duplicate slug).
	ErrConflict = errors.New("already exists")

	// ErrUnauthorized signals an admin secret mismatch. The signal is
	// identical regardless of why the secret failed.
	ErrUnauthorized = errors.New("unauthorized")
)

// ValidationError reports caller input that failed required-field or shape
// checks. The message carries enough detail to correct the request but no
// internal store detail.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError builds a ValidationError with a formatted message.
func NewValidationError(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
