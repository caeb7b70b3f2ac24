package database

import (
	"errors"
	"fmt"
	"log/slog"

	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// Store-level errors. Engine failures are wrapped so the underlying message
// survives intact; constraint violations additionally match ErrConstraint
// via errors.Is.
var (
	// ErrNotInitialized is returned by every operation invoked before Init
	// has succeeded.
	ErrNotInitialized = errors.New("store not initialized: call Init first")

	// ErrConstraint marks failures caused by a schema constraint
	// (foreign key, not-null).
	ErrConstraint = errors.New("constraint violation")
)

// wrapStoreErr logs and classifies an engine error without altering its
// message. SQLite extended result codes keep the primary code in the low byte.
func wrapStoreErr(op string, err error) error {
	if err == nil {
		return nil
	}
	slog.Error("store operation failed", "op", op, "error", err)
	var serr *sqlite.Error
	if errors.As(err, &serr) && serr.Code()&0xff == sqlite3.SQLITE_CONSTRAINT {
		return fmt.Errorf("%s: %w: %w", op, ErrConstraint, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}
