package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

// SQLiteKV implements the service.KVStore interface on top of a single
// SQLite table. Each Set replaces the whole value for a key atomically.
type SQLiteKV struct {
	db     *sql.DB
	dbPath string
}

// NewSQLiteKV opens (creating if necessary) the key-value database at dbPath.
func NewSQLiteKV(dbPath string) (*SQLiteKV, error) {
	if err := validateKey(dbPath); err != nil {
		return nil, fmt.Errorf("dbPath: %w", err)
	}

	// Ensure directory exists
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite doesn't benefit from multiple connections
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	kv := &SQLiteKV{db: db, dbPath: dbPath}
	if err := kv.migrate(); err != nil {
		return nil, err
	}
	return kv, nil
}

func (s *SQLiteKV) migrate() error {
	query := `
		CREATE TABLE IF NOT EXISTS kv (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`
	if _, err := s.db.Exec(query); err != nil {
		return fmt.Errorf("failed to create kv table: %w", err)
	}
	return nil
}

// Get returns the value stored under key; the second result is false when
// the key is absent.
func (s *SQLiteKV) Get(ctx context.Context, key string) (string, bool, error) {
	if err := validateContext(ctx); err != nil {
		return "", false, err
	}
	if err := validateKey(key); err != nil {
		return "", false, err
	}

	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read key %q: %w", key, err)
	}
	return value, true, nil
}

// Set durably writes value under key, replacing any previous value.
func (s *SQLiteKV) Set(ctx context.Context, key, value string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateKey(key); err != nil {
		return err
	}

	query := `
		INSERT INTO kv (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`
	if _, err := s.db.ExecContext(ctx, query, key, value); err != nil {
		return fmt.Errorf("failed to write key %q: %w", key, err)
	}

	slog.Debug("persisted value", "key", key, "bytes", len(value))
	return nil
}

// RemoveMany deletes the given keys in one statement. Missing keys are not
// an error.
func (s *SQLiteKV) RemoveMany(ctx context.Context, keys []string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateKeys(keys); err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}

	query := `DELETE FROM kv WHERE key = ?`
	for _, key := range keys {
		if _, err := s.db.ExecContext(ctx, query, key); err != nil {
			return fmt.Errorf("failed to remove key %q: %w", key, err)
		}
	}

	slog.Debug("removed keys", "count", len(keys))
	return nil
}

// Close closes the database connection.
func (s *SQLiteKV) Close() error {
	return s.db.Close()
}
