package model

import (
	"errors"
	"fmt"
)

// Common errors used across the application
var (
	// ErrNotFound is returned when a record does not exist
	ErrNotFound = errors.New("record not found")

	// ErrMissingID is returned when an update is attempted without an identifier
	ErrMissingID = errors.New("record has no identifier")

	// ErrStoreNotConfigured is returned by every store operation when the connection
	// parameters were never supplied. No network I/O is attempted.
	ErrStoreNotConfigured = errors.New("the specified database is not valid. Ensure the correct configurations have been specified")
)

// PersistenceError reports a store operation that reached the driver and failed.
// Message is safe to show to clients; Err is the underlying cause and is only logged.
type PersistenceError struct {
	Op      string
	Message string
	Err     error
}

func (e *PersistenceError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// ValidationError reports caller input that breaks a business rule
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError creates a ValidationError with the given message
func NewValidationError(message string) error {
	return &ValidationError{Message: message}
}
