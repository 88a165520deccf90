package ports

import (
	"context"
	"shopping-path-service/internal/domain"
)

// Contract for caching optimized paths by shopping list.
// Implementations must treat a miss as (nil, false, nil).
type PathCache interface {
	Get(ctx context.Context, key string) (*domain.OptimizedPath, bool, error)
	Put(ctx context.Context, key string, path *domain.OptimizedPath) error
}
