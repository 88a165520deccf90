package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"shopping-path-service/internal/domain"
)

// Postgres-backed implementation of the LayoutRepository port.
// The DB is expected to be opened with the pgx stdlib driver.
type PostgresLayoutRepository struct{ DB *sql.DB }

func NewPostgresLayoutRepository(db *sql.DB) *PostgresLayoutRepository {
	return &PostgresLayoutRepository{DB: db}
}

// Initialize the Postgres schema for product locations.
func InitPostgresSchema(ctx context.Context, db *sql.DB) error {
	if db == nil {
		return errors.New("init postgres schema: DB is nil")
	}

	q := `
	CREATE TABLE IF NOT EXISTS product_locations (
		ordinal INTEGER PRIMARY KEY,
		product TEXT NOT NULL,
		corridor TEXT NOT NULL,
		side TEXT NOT NULL,
		end_affinity TEXT NOT NULL,
		category TEXT NOT NULL,
		distance_from_start INTEGER NOT NULL,
		special BOOLEAN NOT NULL
	);
	`
	if _, err := db.ExecContext(ctx, q); err != nil {
		return fmt.Errorf("init postgres schema: create product_locations: %w", err)
	}

	return nil
}

// Return all product locations stored in the database, in layout order.
func (p *PostgresLayoutRepository) ListProductLocations(ctx context.Context) ([]domain.ProductLocation, error) {
	if p.DB == nil {
		return nil, errors.New("postgres layout repository: DB is nil")
	}

	q := `
	SELECT product, corridor, side, end_affinity, category, distance_from_start, special
    FROM product_locations
    ORDER BY ordinal;
	`

	rows, err := p.DB.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("list product locations: query product_locations table: %w", err)
	}
	defer rows.Close()

	return scanProductLocations(rows)
}

// Replace every stored product location with entries, keeping their order.
func (p *PostgresLayoutRepository) ReplaceProductLocations(ctx context.Context, entries []domain.ProductLocation) error {
	if p.DB == nil {
		return errors.New("postgres layout repository: DB is nil")
	}

	tx, err := p.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("replace product locations: db begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `TRUNCATE product_locations;`); err != nil {
		return fmt.Errorf("replace product locations: truncate: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
	INSERT INTO product_locations (ordinal, product, corridor, side, end_affinity, category, distance_from_start, special)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`)
	if err != nil {
		return fmt.Errorf("replace product locations: db prepare: %w", err)
	}
	defer stmt.Close()

	for i, e := range entries {
		l := e.Location
		if _, err := stmt.ExecContext(ctx, i, e.Product, l.Corridor, string(l.Side), string(l.End), l.Category, l.DistanceFromStart, l.Special); err != nil {
			return fmt.Errorf("replace product locations product=%q: %w", e.Product, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("replace product locations commit: %w", err)
	}

	return nil
}
