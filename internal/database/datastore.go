package database

// DataStore defines the unified interface for all data operations needed by
// the presentation layer. It is composed of smaller, domain-specific
// interfaces so consumers can depend on just the slice they use.
type DataStore interface {
	ListRepository
	ItemRepository
}

// Store satisfies the full DataStore surface
var _ DataStore = (*Store)(nil)
