package models

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when no patient matches the requested id.
var ErrNotFound = errors.New("record not found")

// ValidationError reports a rejected field so callers can tell a bad
// request apart from a persistence failure.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
