// Package item holds the business operations on grocery items.
package item

import (
	"context"
	"strings"

	"github.com/multyp/grocer/internal/database"
	"github.com/multyp/grocer/internal/models"
)

const maxTextLen = 200

// Service defines all item-related business operations
type Service interface {
	GetItems(ctx context.Context, listID int) ([]*models.Item, error)
	CreateItem(ctx context.Context, listID int, text string) (*models.Item, error)
	SetChecked(ctx context.Context, id int, checked bool) error
	DeleteItem(ctx context.Context, id int) error
}

// service implements Service on top of the item repository
type service struct {
	repo database.ItemRepository
}

// NewService creates a new item service
func NewService(repo database.ItemRepository) Service {
	return &service{repo: repo}
}

// GetItems retrieves a list's items in insertion order
func (s *service) GetItems(ctx context.Context, listID int) ([]*models.Item, error) {
	if listID <= 0 {
		return nil, ErrInvalidListID
	}
	return s.repo.FetchItems(ctx, listID)
}

// CreateItem creates a new unchecked item after trimming and validating the
// text. The list's existence is left to the store's foreign key.
func (s *service) CreateItem(ctx context.Context, listID int, text string) (*models.Item, error) {
	if listID <= 0 {
		return nil, ErrInvalidListID
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyText
	}
	if len(text) > maxTextLen {
		return nil, ErrTextTooLong
	}
	return s.repo.AddItem(ctx, listID, text)
}

// SetChecked sets an item's checked flag
func (s *service) SetChecked(ctx context.Context, id int, checked bool) error {
	if id <= 0 {
		return ErrInvalidItemID
	}
	return s.repo.UpdateItem(ctx, id, checked)
}

// DeleteItem deletes a single item
func (s *service) DeleteItem(ctx context.Context, id int) error {
	if id <= 0 {
		return ErrInvalidItemID
	}
	return s.repo.DeleteItem(ctx, id)
}
