package database

import (
	"context"
	"database/sql"
)

// runMigrations creates the database schema if it does not exist yet
func runMigrations(ctx context.Context, db *sql.DB) error {
	// Create lists table
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS lists (
			id INTEGER PRIMARY KEY,
			name TEXT NOT NULL
		)
	`)
	if err != nil {
		return err
	}

	// Create items table with cascading foreign key, so deleting a list
	// removes its items in the same statement
	_, err = db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS items (
			id INTEGER PRIMARY KEY,
			list_id INTEGER,
			text TEXT NOT NULL,
			checked INTEGER DEFAULT 0,
			FOREIGN KEY (list_id) REFERENCES lists(id) ON DELETE CASCADE
		)
	`)
	if err != nil {
		return err
	}

	// Create index for efficient per-list queries
	_, err = db.ExecContext(ctx, `
		CREATE INDEX IF NOT EXISTS idx_items_list
		ON items(list_id)
	`)
	return err
}
