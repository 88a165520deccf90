package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"shopping-path-service/internal/domain"
)

// SQLite-backed implementation of the LayoutRepository port.
type SqliteLayoutRepository struct{ DB *sql.DB }

func NewSqliteLayoutRepository(db *sql.DB) *SqliteLayoutRepository {
	return &SqliteLayoutRepository{DB: db}
}

// Return all product locations stored in the database, in layout order.
func (s *SqliteLayoutRepository) ListProductLocations(ctx context.Context) ([]domain.ProductLocation, error) {
	if s.DB == nil {
		return nil, errors.New("sqlite layout repository: DB is nil")
	}

	query := `
	SELECT
		product,
		corridor,
		side,
		end_affinity,
		category,
		distance_from_start,
		special
	FROM product_locations
	ORDER BY ordinal;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list product locations: query product_locations table: %w", err)
	}
	defer rows.Close()

	return scanProductLocations(rows)
}

// Replace every stored product location with entries, keeping their order.
func (s *SqliteLayoutRepository) ReplaceProductLocations(ctx context.Context, entries []domain.ProductLocation) error {
	if s.DB == nil {
		return errors.New("sqlite layout repository: DB is nil")
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("replace product locations: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM product_locations;`); err != nil {
		return fmt.Errorf("replace product locations: clear table: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
	INSERT INTO product_locations (
		ordinal,
		product,
		corridor,
		side,
		end_affinity,
		category,
		distance_from_start,
		special
	)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?);
	`)
	if err != nil {
		return fmt.Errorf("replace product locations: prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, e := range entries {
		l := e.Location
		if _, err := stmt.ExecContext(ctx, i, e.Product, l.Corridor, string(l.Side), string(l.End), l.Category, l.DistanceFromStart, l.Special); err != nil {
			return fmt.Errorf("replace product locations: insert product=%q: %w", e.Product, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("replace product locations: commit tx: %w", err)
	}

	return nil
}

func scanProductLocations(rows *sql.Rows) ([]domain.ProductLocation, error) {
	out := make([]domain.ProductLocation, 0, 256)
	for rows.Next() {
		var (
			product, corridor, side, end, category string
			distance                               int
			special                                bool
		)
		if err := rows.Scan(&product, &corridor, &side, &end, &category, &distance, &special); err != nil {
			return nil, fmt.Errorf("list product locations: scan row: %w", err)
		}

		out = append(out, domain.ProductLocation{
			Product: product,
			Location: domain.Location{
				Corridor:          corridor,
				Side:              domain.Side(side),
				End:               domain.End(end),
				Category:          category,
				DistanceFromStart: distance,
				Special:           special,
			},
		})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list product locations: row iteration: %w", err)
	}

	return out, nil
}
