package config

import (
	"os"
	"path/filepath"
	"shopping-path-service/internal/domain"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	t.Setenv("SHOPPING_PATH_TEST_KEY", "  value ")
	assert.Equal(t, "value", Get("SHOPPING_PATH_TEST_KEY", "fallback"))

	t.Setenv("SHOPPING_PATH_TEST_KEY", "")
	assert.Equal(t, "fallback", Get("SHOPPING_PATH_TEST_KEY", "fallback"))
}

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"PORT", "LAYOUT_PATH", "LAYOUT_URL", "DATABASE_URL", "REDIS_ADDR", "REDIS_DB", "CACHE_TTL"} {
		t.Setenv(k, "")
	}

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "data/merged_articles.json", cfg.LayoutPath)
	assert.Equal(t, time.Hour, cfg.CacheTTL)
	assert.Equal(t, 0, cfg.RedisDB)
	assert.Empty(t, cfg.DatabaseURL)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("REDIS_DB", "2")
	t.Setenv("CACHE_TTL", "15m")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, 2, cfg.RedisDB)
	assert.Equal(t, 15*time.Minute, cfg.CacheTTL)
}

func TestLoadRejectsBadValues(t *testing.T) {
	cases := map[string][2]string{
		"bad ttl":      {"CACHE_TTL", "soon"},
		"negative db":  {"REDIS_DB", "-1"},
		"port letters": {"PORT", "http"},
	}

	for name, kv := range cases {
		t.Run(name, func(t *testing.T) {
			t.Setenv(kv[0], kv[1])
			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestLoadProfileDefault(t *testing.T) {
	p, err := LoadProfile("")
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultStoreProfile(), p)
}

func TestLoadProfileFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.yaml")
	doc := `
special_corridor: Aktionsfläche
corridors:
  - name: Aktionsfläche
    distance: 1
  - name: Gang A
    distance: 2
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	p, err := LoadProfile(path)
	require.NoError(t, err)
	assert.Equal(t, "Aktionsfläche", p.SpecialCorridor)
	assert.Equal(t, 2, p.Distance("Gang A"))
	assert.Equal(t, 0, p.Distance("Gang B"))
}

func TestParseProfileErrors(t *testing.T) {
	cases := map[string]string{
		"missing special": "corridors: []\n",
		"unknown field":   "special_corridor: X\nfloors: 2\n",
		"duplicate":       "special_corridor: X\ncorridors:\n  - {name: A, distance: 1}\n  - {name: A, distance: 2}\n",
		"unnamed":         "special_corridor: X\ncorridors:\n  - {distance: 1}\n",
	}

	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseProfile([]byte(doc))
			assert.Error(t, err)
		})
	}
}

func TestDefaultProfileFileMatchesBuiltin(t *testing.T) {
	p, err := LoadProfile("../../data/store_profile.yaml")
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultStoreProfile(), p)
}
