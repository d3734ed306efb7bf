package catalog

import "context"

// Source provides read access to the catalog.
type Source interface {
	// Categories returns category names in display order.
	Categories(ctx context.Context) ([]string, error)
	// Items returns the items of one category ordered by position.
	// An unknown category yields an empty slice, not an error.
	Items(ctx context.Context, category string) ([]Item, error)
}
