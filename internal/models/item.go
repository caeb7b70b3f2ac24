package models

// Item represents a single checkable entry belonging to exactly one list
type Item struct {
	ID      int
	ListID  int
	Text    string
	Checked bool
}
