package catalog

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// PostgresSource reads the catalog from the catalog_items table.
type PostgresSource struct {
	db *sqlx.DB
}

// NewPostgresSource wraps an existing connection pool.
func NewPostgresSource(db *sqlx.DB) *PostgresSource {
	return &PostgresSource{db: db}
}

// Categories returns distinct category names ordered by their first position.
func (s *PostgresSource) Categories(ctx context.Context) ([]string, error) {
	var categories []string
	err := s.db.SelectContext(ctx, &categories,
		`SELECT category FROM catalog_items GROUP BY category ORDER BY MIN(position), category`)
	if err != nil {
		return nil, fmt.Errorf("catalog: categories query failed: %w", err)
	}
	return categories, nil
}

// Items returns the items of one category ordered by position.
func (s *PostgresSource) Items(ctx context.Context, category string) ([]Item, error) {
	var items []Item
	err := s.db.SelectContext(ctx, &items,
		`SELECT category, position, name, price, description, photo
		 FROM catalog_items WHERE category = $1 ORDER BY position`, category)
	if err != nil {
		return nil, fmt.Errorf("catalog: items query failed: %w", err)
	}
	return items, nil
}
