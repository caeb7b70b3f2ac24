package item

import "errors"

// Item-related errors
var (
	// Validation errors
	ErrEmptyText     = errors.New("text cannot be empty")
	ErrTextTooLong   = errors.New("text cannot exceed 200 characters")
	ErrInvalidItemID = errors.New("invalid item ID")
	ErrInvalidListID = errors.New("invalid list ID")
)
