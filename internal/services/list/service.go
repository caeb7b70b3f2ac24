// Package list holds the business operations on grocery lists. The store
// itself is deliberately permissive about input; emptiness and id validation
// happen here, before any statement runs.
package list

import (
	"context"
	"strings"

	"github.com/multyp/grocer/internal/database"
	"github.com/multyp/grocer/internal/models"
)

// maxNameLen caps list names at a length that still renders on one line
const maxNameLen = 100

// Service defines all list-related business operations
type Service interface {
	GetLists(ctx context.Context) ([]*models.List, error)
	CreateList(ctx context.Context, name string) (*models.List, error)
	DeleteList(ctx context.Context, id int) error
}

// service implements Service on top of the list repository
type service struct {
	repo database.ListRepository
}

// NewService creates a new list service
func NewService(repo database.ListRepository) Service {
	return &service{repo: repo}
}

// GetLists retrieves all lists in insertion order
func (s *service) GetLists(ctx context.Context) ([]*models.List, error) {
	return s.repo.FetchLists(ctx)
}

// CreateList creates a new list after trimming and validating the name
func (s *service) CreateList(ctx context.Context, name string) (*models.List, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if len(name) > maxNameLen {
		return nil, ErrNameTooLong
	}
	return s.repo.AddList(ctx, name)
}

// DeleteList deletes a list and, through the store's cascade, all its items
func (s *service) DeleteList(ctx context.Context, id int) error {
	if id <= 0 {
		return ErrInvalidListID
	}
	return s.repo.DeleteList(ctx, id)
}
