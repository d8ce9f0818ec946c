package services

import (
	"errors"
	"fmt"
)

// Sentinel errors shared by the service layer. Handlers map these onto
// HTTP statuses; callers test them with errors.Is.
var (
	// ErrNotFound is returned when the requested task or memory row does
	// not exist (or was soft-deleted).
	ErrNotFound = errors.New("entity not found")

	// ErrAlreadyExists is returned when a create loses a uniqueness race.
	ErrAlreadyExists = errors.New("entity already exists")

	// ErrInvalidInput is returned for operations that are well-formed but
	// illegal in the entity's current state, e.g. cancelling a task that
	// already reached a terminal status.
	ErrInvalidInput = errors.New("invalid input")
)

// ValidationError carries the offending request field alongside the message.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// NewValidationError creates a new validation error.
func NewValidationError(field, message string) error {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// IsValidationError reports whether err is (or wraps) a ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
