package database

import (
	"context"

	"github.com/multyp/grocer/internal/models"
)

// AddList inserts a new list and returns it with its store-assigned id.
// The store does not validate name emptiness; that is the caller's job.
func (s *Store) AddList(ctx context.Context, name string) (*models.List, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}

	result, err := db.ExecContext(ctx,
		`INSERT INTO lists (name) VALUES (?)`,
		name,
	)
	if err != nil {
		return nil, wrapStoreErr("add list", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, wrapStoreErr("add list", err)
	}

	return &models.List{ID: int(id), Name: name}, nil
}

// FetchLists retrieves all lists in insertion order
func (s *Store) FetchLists(ctx context.Context) ([]*models.List, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx,
		`SELECT id, name FROM lists ORDER BY id`,
	)
	if err != nil {
		return nil, wrapStoreErr("fetch lists", err)
	}
	defer rows.Close()

	var lists []*models.List
	for rows.Next() {
		list := &models.List{}
		if err := rows.Scan(&list.ID, &list.Name); err != nil {
			return nil, wrapStoreErr("fetch lists", err)
		}
		lists = append(lists, list)
	}

	if err := rows.Err(); err != nil {
		return nil, wrapStoreErr("fetch lists", err)
	}

	return lists, nil
}

// DeleteList deletes the list if present, cascading to all of its items in
// the same statement. Deleting a nonexistent id is a no-op.
func (s *Store) DeleteList(ctx context.Context, listID int) error {
	db, err := s.conn()
	if err != nil {
		return err
	}

	_, err = db.ExecContext(ctx, `DELETE FROM lists WHERE id = ?`, listID)
	return wrapStoreErr("delete list", err)
}
