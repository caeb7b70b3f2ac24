package database

import (
	"context"
	"os"
	"testing"

	_ "modernc.org/sqlite"
)

// ============================================================================
// DATABASE SETUP HELPERS
// ============================================================================

// setupTestStore creates an initialized in-memory store.
// This is the unified test setup used by all tests in this package.
func setupTestStore(t *testing.T) *Store {
	t.Helper()
	store := New(":memory:")
	if err := store.Init(context.Background()); err != nil {
		t.Fatalf("Failed to initialize test store: %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Errorf("Failed to close test store: %v", err)
		}
	})
	return store
}

// setupTestStoreFile creates a file-backed store for testing persistence
// across restarts
func setupTestStoreFile(t *testing.T) (*Store, string) {
	t.Helper()
	tmpfile, err := os.CreateTemp("", "grocer-test-*.db")
	if err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	tmpfile.Close()
	t.Cleanup(func() { os.Remove(tmpfile.Name()) })

	store := New(tmpfile.Name())
	if err := store.Init(context.Background()); err != nil {
		t.Fatalf("Failed to initialize test store: %v", err)
	}

	return store, tmpfile.Name()
}

// closeAndReopenStore simulates app restart by closing the store and
// initializing a fresh one against the same file
func closeAndReopenStore(t *testing.T, store *Store, dbPath string) *Store {
	t.Helper()
	if err := store.Close(); err != nil {
		t.Fatalf("Failed to close store: %v", err)
	}

	reopened := New(dbPath)
	if err := reopened.Init(context.Background()); err != nil {
		t.Fatalf("Failed to reopen store: %v", err)
	}
	return reopened
}
