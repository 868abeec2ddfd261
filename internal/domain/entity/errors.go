package entity

import (
	"errors"
	"fmt"
)

// Sentinel errors for domain layer operations.
var (
	// ErrEmptyInput indicates that a text payload is empty after trimming
	// leading and trailing whitespace.
	ErrEmptyInput = errors.New("empty input")

	// ErrMissingField indicates that a required request field was absent.
	ErrMissingField = errors.New("missing field")
)

// ValidationError represents a validation error with detailed field information.
// Err, when set, is the sentinel that classifies the failure so callers can
// match it with errors.Is.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// Error returns a formatted error message for the validation error.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// Unwrap returns the classifying sentinel error, if any.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// IsValidationError reports whether err is, or wraps, a *ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
