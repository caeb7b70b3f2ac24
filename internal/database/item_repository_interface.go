package database

import (
	"context"

	"github.com/multyp/grocer/internal/models"
)

// ItemReader defines read operations for items.
type ItemReader interface {
	FetchItems(ctx context.Context, listID int) ([]*models.Item, error)
}

// ItemWriter defines write operations for items.
type ItemWriter interface {
	AddItem(ctx context.Context, listID int, text string) (*models.Item, error)
	UpdateItem(ctx context.Context, id int, checked bool) error
	DeleteItem(ctx context.Context, id int) error
}

// ItemRepository combines all item-related operations.
type ItemRepository interface {
	ItemReader
	ItemWriter
}
