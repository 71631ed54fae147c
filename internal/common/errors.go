// Package common provides shared utilities and types used across the application.
package common

import (
	"errors"
	"fmt"
)

// Validation errors raised at the input boundary before any state changes.
var (
	ErrInvalidAmount    = NewValidationError("invalid amount")
	ErrCategoryRequired = NewValidationError("category required")
	ErrNameRequired     = NewValidationError("name required")
)

// Common application errors.
var (
	// Storage errors.
	ErrNotFound       = errors.New("not found")
	ErrStorageClosed  = errors.New("storage closed")
	ErrNotInitialized = errors.New("store not initialized")
)

// ValidationError represents user input that failed a precondition. The
// operation is aborted before any mutation or persistence is attempted.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// NewValidationError creates a validation error with a user-facing reason.
func NewValidationError(reason string) error {
	return &ValidationError{Reason: reason}
}

// IsValidation reports whether err is (or wraps) a validation error.
func IsValidation(err error) bool {
	var verr *ValidationError
	return errors.As(err, &verr)
}

// PersistenceError wraps a failed read or write against the key-value
// adapter. The in-memory state is left at its previous consistent snapshot.
type PersistenceError struct {
	Op  string
	Key string
	Err error
}

func (e *PersistenceError) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("persistence %s %s: %v", e.Op, e.Key, e.Err)
	}
	return fmt.Sprintf("persistence %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// NewPersistenceError wraps err with the failed operation and key.
func NewPersistenceError(op, key string, err error) error {
	return &PersistenceError{Op: op, Key: key, Err: err}
}
