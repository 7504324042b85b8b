package services

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when an entity is not found
	ErrNotFound = errors.New("entity not found")

	// ErrAlreadyExists is returned when attempting to create a duplicate entity
	ErrAlreadyExists = errors.New("entity already exists")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")

	// ErrAccessDenied is returned when the user does not own the project
	ErrAccessDenied = errors.New("access denied")

	// ErrTransitionFailed is returned when a verified lifecycle write does not
	// stick: the read-back after the write disagreed with what was written.
	ErrTransitionFailed = errors.New("lifecycle transition failed verification")

	// ErrRollbackInProgress is returned when a rollback lease is already held
	// for the project.
	ErrRollbackInProgress = errors.New("rollback already in progress")
)

// ValidationError wraps field-specific validation errors
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// NewValidationError creates a new validation error
func NewValidationError(field, message string) error {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
