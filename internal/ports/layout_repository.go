package ports

import (
	"context"
	"shopping-path-service/internal/domain"
)

// Port: a boundary for retrieving the flattened store layout.
type LayoutRepository interface {
	// Return every product location in layout enumeration order.
	ListProductLocations(ctx context.Context) ([]domain.ProductLocation, error)
}

// Optional extension of LayoutRepository for stores that can be (re)seeded.
type LayoutWriter interface {
	LayoutRepository
	// Replace all stored product locations, keeping the given order.
	ReplaceProductLocations(ctx context.Context, entries []domain.ProductLocation) error
}
