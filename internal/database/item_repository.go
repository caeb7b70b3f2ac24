package database

import (
	"context"

	"github.com/multyp/grocer/internal/models"
)

// AddItem inserts a new unchecked item bound to listID. The store performs
// no existence check on listID; a dangling reference is rejected by the
// foreign key while enforcement is on.
func (s *Store) AddItem(ctx context.Context, listID int, text string) (*models.Item, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}

	result, err := db.ExecContext(ctx,
		`INSERT INTO items (list_id, text, checked) VALUES (?, ?, 0)`,
		listID, text,
	)
	if err != nil {
		return nil, wrapStoreErr("add item", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, wrapStoreErr("add item", err)
	}

	return &models.Item{ID: int(id), ListID: listID, Text: text, Checked: false}, nil
}

// UpdateItem sets the checked flag of an existing item. Updating a
// nonexistent id is a silent no-op.
func (s *Store) UpdateItem(ctx context.Context, id int, checked bool) error {
	db, err := s.conn()
	if err != nil {
		return err
	}

	_, err = db.ExecContext(ctx,
		`UPDATE items SET checked = ? WHERE id = ?`,
		boolToInt(checked), id,
	)
	return wrapStoreErr("update item", err)
}

// FetchItems retrieves all items of a list in insertion order. An unknown
// listID yields an empty result, not an error.
func (s *Store) FetchItems(ctx context.Context, listID int) ([]*models.Item, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx,
		`SELECT id, list_id, text, checked FROM items WHERE list_id = ? ORDER BY id`,
		listID,
	)
	if err != nil {
		return nil, wrapStoreErr("fetch items", err)
	}
	defer rows.Close()

	var items []*models.Item
	for rows.Next() {
		item := &models.Item{}
		var checked int
		if err := rows.Scan(&item.ID, &item.ListID, &item.Text, &checked); err != nil {
			return nil, wrapStoreErr("fetch items", err)
		}
		item.Checked = checked != 0
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, wrapStoreErr("fetch items", err)
	}

	return items, nil
}

// DeleteItem deletes the item if present; a nonexistent id is a no-op.
func (s *Store) DeleteItem(ctx context.Context, id int) error {
	db, err := s.conn()
	if err != nil {
		return err
	}

	_, err = db.ExecContext(ctx, `DELETE FROM items WHERE id = ?`, id)
	return wrapStoreErr("delete item", err)
}

// boolToInt maps the checked flag to its stored INTEGER form
func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
