package services

import (
	"context"
	"fmt"
	"math/rand/v2"
	"shopping-path-service/internal/domain"
	"shopping-path-service/internal/platform/obs"
	"shopping-path-service/internal/ports"

	"github.com/cespare/xxhash/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// PathService serves optimized paths, optionally backed by a PathCache.
//
// Identical concurrent requests share one optimization. Cache failures are
// logged and never fail a request.
type PathService struct {
	optimizer *Optimizer
	cache     ports.PathCache
	logger    *zap.Logger
	flight    singleflight.Group
}

// NewPathService wires an optimizer with an optional cache (nil disables caching).
func NewPathService(optimizer *Optimizer, cache ports.PathCache, logger *zap.Logger) *PathService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PathService{
		optimizer: optimizer,
		cache:     cache,
		logger:    logger,
	}
}

// CacheKey derives the cache key of a shopping list for one index.
// Item order is part of the key: not-found order depends on it.
func CacheKey(fingerprint uint64, shoppingList []string) string {
	d := xxhash.New()
	for _, item := range shoppingList {
		_, _ = d.WriteString(item)
		_, _ = d.WriteString("\x00")
	}
	return fmt.Sprintf("%016x:%016x", fingerprint, d.Sum64())
}

// Plan returns the optimized path for a shopping list.
func (s *PathService) Plan(ctx context.Context, shoppingList []string) (_ *domain.OptimizedPath, err error) {
	defer obs.Time(ctx, s.logger, "paths.Plan")(&err)

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("plan path: %w", err)
	}

	if len(shoppingList) == 0 {
		return s.optimizer.Optimize(nil), nil
	}

	key := CacheKey(s.optimizer.Index().Fingerprint(), shoppingList)

	v, _, _ := s.flight.Do(key, func() (any, error) {
		if s.cache != nil {
			cached, ok, err := s.cache.Get(ctx, key)
			if err != nil {
				s.logger.Warn("path cache read failed", zap.String("key", key), zap.Error(err))
			} else if ok {
				return cached, nil
			}
		}

		path := s.optimizer.Optimize(shoppingList)

		if s.cache != nil {
			if err := s.cache.Put(ctx, key, path); err != nil {
				s.logger.Warn("path cache write failed", zap.String("key", key), zap.Error(err))
			}
		}
		return path, nil
	})

	return v.(*domain.OptimizedPath), nil
}

// RandomList samples count distinct product names for demos.
func (s *PathService) RandomList(count int, rng *rand.Rand) []string {
	return s.optimizer.Index().RandomSample(count, rng)
}

// Locate resolves a single product name.
func (s *PathService) Locate(name string) (domain.Location, bool) {
	return s.optimizer.Index().Resolve(name)
}
