// Package storage provides the key-value persistence layer for the penny
// application.
package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Validation errors.
var (
	ErrNilContext = errors.New("context cannot be nil")
	ErrEmptyKey   = errors.New("key cannot be empty")
)

// validateContext ensures the context is not nil.
func validateContext(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	return nil
}

// validateKey ensures a storage key is not empty.
func validateKey(key string) error {
	if strings.TrimSpace(key) == "" {
		return ErrEmptyKey
	}
	return nil
}

// validateKeys ensures every key in a batch is valid.
func validateKeys(keys []string) error {
	for i, key := range keys {
		if err := validateKey(key); err != nil {
			return fmt.Errorf("key at index %d: %w", i, err)
		}
	}
	return nil
}
