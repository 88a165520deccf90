package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"shopping-path-service/internal/domain"
)

// Initialize the SQLite database schema.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createProductLocationsQuery := `
	CREATE TABLE IF NOT EXISTS product_locations (
		ordinal INTEGER PRIMARY KEY,
		product TEXT NOT NULL,
		corridor TEXT NOT NULL,
		side TEXT NOT NULL,
		end_affinity TEXT NOT NULL,
		category TEXT NOT NULL,
		distance_from_start INTEGER NOT NULL,
		special INTEGER NOT NULL
	);
	`

	createIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_product_locations_corridor
    ON product_locations(corridor);
	`

	statements := []string{
		createProductLocationsQuery,
		createIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

// Populate the store with product locations from a layout artifact.
// Existing rows are replaced so the table always mirrors one artifact.
func SeedFromJSON(ctx context.Context, repo LayoutSeeder, jsonPath string, profile domain.StoreProfile) (int, error) {
	layout, err := LoadLayoutFile(jsonPath, profile.SpecialCorridor)
	if err != nil {
		return 0, fmt.Errorf("seed layout: %w", err)
	}

	entries := layout.Flatten(profile)
	if len(entries) == 0 {
		return 0, fmt.Errorf("seed layout: %q contains no products", jsonPath)
	}

	if err := repo.ReplaceProductLocations(ctx, entries); err != nil {
		return 0, fmt.Errorf("seed layout: %w", err)
	}

	return len(entries), nil
}

// LayoutSeeder is satisfied by the SQL-backed layout repositories.
type LayoutSeeder interface {
	ReplaceProductLocations(ctx context.Context, entries []domain.ProductLocation) error
}
