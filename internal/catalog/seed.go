package catalog

import (
	"context"
	"fmt"
	"os"

	"github.com/jmoiron/sqlx"
	"gopkg.in/yaml.v3"

	"github.com/ridness/clubbot/core/logger"
	"log/slog"
)

type seedFile struct {
	Categories []seedCategory `yaml:"categories"`
}

type seedCategory struct {
	Name  string     `yaml:"name"`
	Items []seedItem `yaml:"items"`
}

type seedItem struct {
	Name        string `yaml:"name"`
	Price       string `yaml:"price"`
	Description string `yaml:"description"`
	Photo       string `yaml:"photo"`
}

// Seeder loads the catalog YAML file into the catalog_items table.
// Runs at bootstrap after migrations. Existing rows are replaced so the
// table always reflects the file.
type Seeder struct {
	Path string
}

// Seed parses the catalog file and upserts its items. A missing path is not
// an error: the bot starts with an empty catalog.
func (s Seeder) Seed(ctx context.Context, db *sqlx.DB) error {
	if s.Path == "" {
		return nil
	}
	data, err := os.ReadFile(s.Path)
	if os.IsNotExist(err) {
		logger.Warn(ctx, "db.seed", "catalog.file_missing",
			slog.String("path", s.Path),
		)
		return nil
	}
	if err != nil {
		return fmt.Errorf("catalog seed: read %s: %w", s.Path, err)
	}

	var file seedFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("catalog seed: parse %s: %w", s.Path, err)
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("catalog seed: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM catalog_items`); err != nil {
		return fmt.Errorf("catalog seed: clear table: %w", err)
	}

	total := 0
	for _, cat := range file.Categories {
		for pos, item := range cat.Items {
			_, err := tx.ExecContext(ctx,
				`INSERT INTO catalog_items (category, position, name, price, description, photo)
				 VALUES ($1, $2, $3, $4, $5, $6)`,
				cat.Name, pos, item.Name, item.Price, item.Description, item.Photo)
			if err != nil {
				return fmt.Errorf("catalog seed: upsert %s/%d: %w", cat.Name, pos, err)
			}
			total++
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("catalog seed: commit: %w", err)
	}

	logger.Info(ctx, "db.seed", "catalog.seeded",
		slog.Int("count", total),
		slog.Int("categories", len(file.Categories)),
	)
	return nil
}
