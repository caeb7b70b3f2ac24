package database

import (
	"context"

	"github.com/multyp/grocer/internal/models"
)

// ListReader defines read operations for lists.
type ListReader interface {
	FetchLists(ctx context.Context) ([]*models.List, error)
}

// ListWriter defines write operations for lists.
type ListWriter interface {
	AddList(ctx context.Context, name string) (*models.List, error)
	DeleteList(ctx context.Context, listID int) error
}

// ListRepository combines all list-related operations.
type ListRepository interface {
	ListReader
	ListWriter
}
