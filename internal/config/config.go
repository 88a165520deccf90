package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config is the runtime configuration shared by the binaries.
type Config struct {
	Port string

	// Layout source. LayoutURL wins over LayoutPath when set.
	LayoutPath  string
	LayoutURL   string
	ProfilePath string

	// Storage. DatabaseURL selects Postgres, otherwise SQLite at DBPath.
	DBPath      string
	DatabaseURL string

	RedisAddr     string
	RedisPassword string
	RedisDB       int
	CacheTTL      time.Duration

	LogLevel  string
	LogFormat string
}

// LoadDotenv reads .env files into the environment. A missing file is not an error.
func LoadDotenv(files ...string) bool {
	return godotenv.Load(files...) == nil
}

// Get returns the environment value for key, or fallback when unset or empty.
func Get(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

// Load reads the configuration from the environment.
func Load() (*Config, error) {
	cfg := &Config{
		Port:          Get("PORT", "8080"),
		LayoutPath:    Get("LAYOUT_PATH", "data/merged_articles.json"),
		LayoutURL:     Get("LAYOUT_URL", ""),
		ProfilePath:   Get("PROFILE_PATH", ""),
		DBPath:        Get("DB_PATH", "data/app.db"),
		DatabaseURL:   Get("DATABASE_URL", ""),
		RedisAddr:     Get("REDIS_ADDR", ""),
		RedisPassword: Get("REDIS_PASSWORD", ""),
		LogLevel:      Get("LOG_LEVEL", "info"),
		LogFormat:     Get("LOG_FORMAT", "console"),
	}

	redisDB, err := strconv.Atoi(Get("REDIS_DB", "0"))
	if err != nil || redisDB < 0 {
		return nil, fmt.Errorf("load config: REDIS_DB must be a non-negative integer, got %q", os.Getenv("REDIS_DB"))
	}
	cfg.RedisDB = redisDB

	ttl, err := time.ParseDuration(Get("CACHE_TTL", "1h"))
	if err != nil || ttl < 0 {
		return nil, fmt.Errorf("load config: CACHE_TTL must be a non-negative duration, got %q", os.Getenv("CACHE_TTL"))
	}
	cfg.CacheTTL = ttl

	if _, err := strconv.Atoi(cfg.Port); err != nil {
		return nil, fmt.Errorf("load config: PORT must be numeric, got %q", cfg.Port)
	}

	return cfg, nil
}
