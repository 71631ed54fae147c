package storage

import (
	"context"
	"sync"
)

// MemoryKV is an in-memory service.KVStore used in tests and by the TUI demo
// mode. FailWrites can be set to simulate an unavailable backend.
type MemoryKV struct {
	mu         sync.RWMutex
	values     map[string]string
	FailWrites error
}

// NewMemoryKV creates an empty in-memory store.
func NewMemoryKV() *MemoryKV {
	return &MemoryKV{values: make(map[string]string)}
}

// Get returns the value for key, or absent.
func (m *MemoryKV) Get(ctx context.Context, key string) (string, bool, error) {
	if err := validateContext(ctx); err != nil {
		return "", false, err
	}
	if err := validateKey(key); err != nil {
		return "", false, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	value, ok := m.values[key]
	return value, ok, nil
}

// Set stores value under key.
func (m *MemoryKV) Set(ctx context.Context, key, value string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateKey(key); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWrites != nil {
		return m.FailWrites
	}
	m.values[key] = value
	return nil
}

// RemoveMany deletes the given keys.
func (m *MemoryKV) RemoveMany(ctx context.Context, keys []string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateKeys(keys); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWrites != nil {
		return m.FailWrites
	}
	for _, key := range keys {
		delete(m.values, key)
	}
	return nil
}

// Close is a no-op for the in-memory store.
func (m *MemoryKV) Close() error {
	return nil
}
