package models

// List represents a named grocery list
// Lists are the top-level organizational unit in grocer
type List struct {
	ID   int
	Name string
}
