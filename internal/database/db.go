// Package database handles the initialization and connection to the SQLite db
package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// Store owns the on-device database handle and exposes all list/item
// operations. A zero-value Store is not usable; construct one with New and
// call Init before invoking any other method.
type Store struct {
	db   *sql.DB
	path string
}

// New creates an uninitialized Store backed by the database file at path.
// An empty path selects the default location under ~/.grocer.
func New(path string) *Store {
	return &Store{path: path}
}

// DefaultPath returns the default database location, creating the
// ~/.grocer directory if needed.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	grocerDir := filepath.Join(home, ".grocer")
	if err := os.MkdirAll(grocerDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create directory: %w", err)
	}

	return filepath.Join(grocerDir, "grocer.db"), nil
}

// Init opens (creating if absent) the backing database, enables foreign key
// enforcement for the session, and creates the schema. Calling Init again
// closes the previous handle and opens a fresh one; schema creation is
// idempotent.
func (s *Store) Init(ctx context.Context) error {
	if s.db != nil {
		if err := s.db.Close(); err != nil {
			slog.Error("error closing previous db handle", "error", err)
		}
		s.db = nil
	}

	path := s.path
	if path == "" {
		var err error
		path, err = DefaultPath()
		if err != nil {
			return err
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	// Enable foreign key constraints (required for CASCADE deletions,
	// SQLite defaults to off)
	if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys = ON"); err != nil {
		slog.Error("Failed to enable foreign keys", "error", err)
		closeQuietly(db)
		return err
	}

	// Enable WAL mode for better concurrency
	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode = WAL"); err != nil {
		slog.Error("Failed to enable WAL mode", "error", err)
		closeQuietly(db)
		return err
	}

	// Set busy timeout to 5 seconds (SQLite will retry for this duration)
	if _, err := db.ExecContext(ctx, "PRAGMA busy_timeout = 5000"); err != nil {
		slog.Error("Failed to set busy timeout", "error", err)
		closeQuietly(db)
		return err
	}

	if err := db.PingContext(ctx); err != nil {
		closeQuietly(db)
		return fmt.Errorf("database ping failed: %w", err)
	}

	// SQLite benefits from a single writer connection
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := runMigrations(ctx, db); err != nil {
		closeQuietly(db)
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	s.db = db
	return nil
}

// Close releases the database handle. Safe to call on an uninitialized Store.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

// conn returns the live handle, or ErrNotInitialized if Init has not
// succeeded yet. Every operation goes through this guard before touching
// the store.
func (s *Store) conn() (*sql.DB, error) {
	if s.db == nil {
		return nil, ErrNotInitialized
	}
	return s.db, nil
}

func closeQuietly(db *sql.DB) {
	if err := db.Close(); err != nil {
		slog.Error("error closing db", "error", err)
	}
}
