package list

import "errors"

// List-related errors
var (
	// Validation errors
	ErrEmptyName     = errors.New("name cannot be empty")
	ErrNameTooLong   = errors.New("name cannot exceed 100 characters")
	ErrInvalidListID = errors.New("invalid list ID")
)
