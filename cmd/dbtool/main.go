package main

import (
	"context"
	"shopping-path-service/internal/adapters/repositories"
	"shopping-path-service/internal/config"
	"shopping-path-service/internal/platform/db"
	"shopping-path-service/internal/platform/logging"

	"go.uber.org/zap"
)

// dbtool initializes the Postgres schema and loads the layout artifact into it.
func main() {
	config.LoadDotenv()

	logger := logging.New(logging.Config{
		Level:  config.Get("LOG_LEVEL", "info"),
		Format: config.Get("LOG_FORMAT", "console"),
	})
	defer func() { _ = logger.Sync() }()

	databaseURL := config.Get("DATABASE_URL", "")
	if databaseURL == "" {
		logger.Fatal("DATABASE_URL is required")
	}

	pg, err := db.Open(databaseURL)
	if err != nil {
		logger.Fatal("open database failed", zap.Error(err))
	}
	defer pg.Close()

	profile, err := config.LoadProfile(config.Get("PROFILE_PATH", ""))
	if err != nil {
		logger.Fatal("load profile failed", zap.Error(err))
	}

	ctx := context.Background()

	logger.Info("initializing database schema")
	if err := repositories.InitPostgresSchema(ctx, pg); err != nil {
		logger.Fatal("schema initialization failed", zap.Error(err))
	}

	layoutPath := config.Get("LAYOUT_PATH", "data/merged_articles.json")
	logger.Info("seeding product locations", zap.String("layout", layoutPath))
	n, err := repositories.SeedFromJSON(ctx, repositories.NewPostgresLayoutRepository(pg), layoutPath, profile)
	if err != nil {
		logger.Fatal("seeding failed", zap.Error(err))
	}
	logger.Info("seeding complete", zap.Int("products", n))
}
