package cache

import (
	"context"
	"errors"
	"fmt"
	"shopping-path-service/internal/domain"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const defaultKeyPrefix = "shopping-path:"

// RedisPathCache is a Redis-backed cache of optimized paths.
type RedisPathCache struct {
	client *redis.Client
	ttl    time.Duration
	prefix string
	logger *zap.Logger
}

// RedisPathCacheOption configures a RedisPathCache.
type RedisPathCacheOption func(*RedisPathCache)

// WithKeyPrefix namespaces cache keys.
func WithKeyPrefix(prefix string) RedisPathCacheOption {
	return func(c *RedisPathCache) {
		c.prefix = prefix
	}
}

// WithLogger sets the logger used for decode warnings.
func WithLogger(logger *zap.Logger) RedisPathCacheOption {
	return func(c *RedisPathCache) {
		c.logger = logger
	}
}

// NewRedisPathCache wraps an existing client. The caller owns the client.
// A zero ttl stores entries without expiry.
func NewRedisPathCache(client *redis.Client, ttl time.Duration, opts ...RedisPathCacheOption) *RedisPathCache {
	c := &RedisPathCache{
		client: client,
		ttl:    ttl,
		prefix: defaultKeyPrefix,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ConnectRedis opens a client and verifies the connection.
func ConnectRedis(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("connect redis %s: %w", addr, err)
	}

	return client, nil
}

// Fetch a cached path. A miss is not an error.
func (c *RedisPathCache) Get(ctx context.Context, key string) (*domain.OptimizedPath, bool, error) {
	if c.client == nil {
		return nil, false, errors.New("redis path cache: client is nil")
	}

	b, err := c.client.Get(ctx, c.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get path cache key=%q: %w", key, err)
	}

	p, err := decodePath(b)
	if err != nil {
		// A corrupt entry behaves like a miss; the next Put overwrites it.
		c.logger.Warn("dropping undecodable cached path", zap.String("key", key), zap.Error(err))
		return nil, false, nil
	}

	return p, true, nil
}

// Store a path under key.
func (c *RedisPathCache) Put(ctx context.Context, key string, path *domain.OptimizedPath) error {
	if c.client == nil {
		return errors.New("redis path cache: client is nil")
	}
	if path == nil {
		return errors.New("put path cache: path is nil")
	}

	b, err := encodePath(path)
	if err != nil {
		return fmt.Errorf("put path cache key=%q: %w", key, err)
	}

	if err := c.client.Set(ctx, c.prefix+key, b, c.ttl).Err(); err != nil {
		return fmt.Errorf("put path cache key=%q: %w", key, err)
	}

	return nil
}
