package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"shopping-path-service/internal/domain"
	"strings"
)

// SQLite backed cache of optimized paths.
// Keys are expected to already encode the layout fingerprint.
type SqlitePathCache struct {
	DB *sql.DB
}

func NewSqlitePathCache(db *sql.DB) *SqlitePathCache {
	return &SqlitePathCache{DB: db}
}

// InitSchema creates the path_cache table.
func (s *SqlitePathCache) InitSchema(ctx context.Context) error {
	if s.DB == nil {
		return errors.New("path cache: db is nil")
	}

	_, err := s.DB.ExecContext(ctx, `
	CREATE TABLE IF NOT EXISTS path_cache (
        cache_key TEXT PRIMARY KEY,
        payload BLOB NOT NULL
    );
	`)
	if err != nil {
		return fmt.Errorf("path cache: create table: %w", err)
	}
	return nil
}

// Fetch a cached path. A miss is not an error.
func (s *SqlitePathCache) Get(ctx context.Context, key string) (*domain.OptimizedPath, bool, error) {
	if s.DB == nil {
		return nil, false, errors.New("path cache: db is nil")
	}

	if strings.TrimSpace(key) == "" {
		return nil, false, errors.New("get path cache: key must not be empty")
	}

	var payload []byte
	err := s.DB.QueryRowContext(ctx, `
	SELECT payload
    FROM path_cache
    WHERE cache_key = ?;
	`, key).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get path cache: query path_cache table: %w", err)
	}

	p, err := decodePath(payload)
	if err != nil {
		return nil, false, fmt.Errorf("get path cache key=%q: %w", key, err)
	}

	return p, true, nil
}

// Store a path under key, replacing any previous entry.
func (s *SqlitePathCache) Put(ctx context.Context, key string, path *domain.OptimizedPath) error {
	if s.DB == nil {
		return errors.New("path cache: db is nil")
	}

	if strings.TrimSpace(key) == "" {
		return errors.New("insert path cache: key must not be empty")
	}
	if path == nil {
		return errors.New("insert path cache: path is nil")
	}

	payload, err := encodePath(path)
	if err != nil {
		return fmt.Errorf("insert path cache: %w", err)
	}

	_, err = s.DB.ExecContext(ctx, `
	INSERT OR REPLACE INTO path_cache (
        cache_key,
        payload
    )
    VALUES (?, ?);
	`, key, payload)
	if err != nil {
		return fmt.Errorf("insert path cache key=%q: %w", key, err)
	}

	return nil
}
