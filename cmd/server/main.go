package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"shopping-path-service/internal/adapters/cache"
	"shopping-path-service/internal/adapters/repositories"
	"shopping-path-service/internal/api"
	"shopping-path-service/internal/config"
	"shopping-path-service/internal/domain"
	"shopping-path-service/internal/platform/db"
	"shopping-path-service/internal/platform/logging"
	"shopping-path-service/internal/ports"
	"shopping-path-service/internal/services"
	"time"

	"go.uber.org/zap"
)

// main is the application composition root.
// It wires concrete adapters (layout source, path cache) behind ports and starts the HTTP server.
func main() {
	hasDotenv := config.LoadDotenv()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger := logging.New(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
	defer func() { _ = logger.Sync() }()
	zap.ReplaceGlobals(logger)

	if !hasDotenv {
		logger.Info("no .env file found (using environment variables)")
	}

	if err := run(context.Background(), cfg, logger); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

func run(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	profile, err := config.LoadProfile(cfg.ProfilePath)
	if err != nil {
		return err
	}

	// The local SQLite database backs the layout (unless another source is
	// configured) and the fallback path cache.
	sqliteDB, err := db.OpenSqlite(cfg.DBPath)
	if err != nil {
		return err
	}
	defer sqliteDB.Close()

	repo, closeRepo, err := layoutRepository(ctx, cfg, profile, sqliteDB, logger)
	if err != nil {
		return err
	}
	defer closeRepo()

	entries, err := repo.ListProductLocations(ctx)
	if err != nil {
		return fmt.Errorf("run: %w", err)
	}

	optimizer, err := services.NewOptimizer(entries, profile)
	if err != nil {
		return fmt.Errorf("run: %w", err)
	}
	logger.Info("layout loaded",
		zap.Int("products", optimizer.Index().Len()),
		zap.String("fingerprint", fmt.Sprintf("%016x", optimizer.Index().Fingerprint())),
	)

	pathCache, err := pathCache(ctx, cfg, sqliteDB, logger)
	if err != nil {
		return err
	}

	svc := services.NewPathService(optimizer, pathCache, logger)
	router := api.NewRouter(svc, logger)

	logger.Info("server listening", zap.String("addr", ":"+cfg.Port))
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	return srv.ListenAndServe()
}

// layoutRepository selects the layout source: a remote artifact, Postgres, or
// the local SQLite database seeded from the layout file.
func layoutRepository(
	ctx context.Context,
	cfg *config.Config,
	profile domain.StoreProfile,
	sqliteDB *sql.DB,
	logger *zap.Logger,
) (ports.LayoutRepository, func(), error) {
	noop := func() {}

	switch {
	case cfg.LayoutURL != "":
		logger.Info("layout source", zap.String("kind", "http"), zap.String("url", cfg.LayoutURL))
		repo, err := repositories.NewHTTPLayoutRepository(cfg.LayoutURL, profile)
		if err != nil {
			return nil, noop, err
		}
		return repo, noop, nil

	case cfg.DatabaseURL != "":
		logger.Info("layout source", zap.String("kind", "postgres"))
		pg, err := db.Open(cfg.DatabaseURL)
		if err != nil {
			return nil, noop, err
		}
		return repositories.NewPostgresLayoutRepository(pg), func() { _ = pg.Close() }, nil

	default:
		logger.Info("layout source", zap.String("kind", "sqlite"), zap.String("seed", cfg.LayoutPath))
		if err := repositories.InitSchema(sqliteDB); err != nil {
			return nil, noop, err
		}

		repo := repositories.NewSqliteLayoutRepository(sqliteDB)
		n, err := repositories.SeedFromJSON(ctx, repo, cfg.LayoutPath, profile)
		if err != nil {
			return nil, noop, err
		}
		logger.Info("layout seeded", zap.Int("products", n))
		return repo, noop, nil
	}
}

// pathCache prefers Redis when configured and falls back to SQLite.
func pathCache(ctx context.Context, cfg *config.Config, sqliteDB *sql.DB, logger *zap.Logger) (ports.PathCache, error) {
	if cfg.RedisAddr != "" {
		client, err := cache.ConnectRedis(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			return nil, err
		}
		logger.Info("path cache", zap.String("kind", "redis"), zap.String("addr", cfg.RedisAddr))
		return cache.NewRedisPathCache(client, cfg.CacheTTL, cache.WithLogger(logger)), nil
	}

	c := cache.NewSqlitePathCache(sqliteDB)
	if err := c.InitSchema(ctx); err != nil {
		return nil, err
	}
	logger.Info("path cache", zap.String("kind", "sqlite"))
	return c, nil
}
