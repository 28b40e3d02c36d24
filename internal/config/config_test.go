package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configKeys = []string{
	"PORT", "DB_PATH", "DATABASE_URL", "CACHE_BACKEND", "REDIS_ADDR", "REDIS_TTL",
	"SEED_PATH", "CATALOG_PATH", "ORS_API_KEY", "LOG_LEVEL", "LOG_FORMAT",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range configKeys {
		t.Setenv(k, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, Config{
		Port:         "8080",
		DBPath:       "data/app.db",
		CacheBackend: CacheSQLite,
		RedisAddr:    "localhost:6379",
		RedisTTL:     168 * time.Hour,
		SeedPath:     "data/seeds/profiles.json",
		LogLevel:     "info",
		LogFormat:    "console",
	}, cfg)
	assert.False(t, cfg.UsesPostgres())
}

func TestLoadPostgresDefaultsCache(t *testing.T) {
	clearEnv(t)
	t.Setenv("DATABASE_URL", "postgres://u:p@localhost:5432/jyotish")

	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.UsesPostgres())
	assert.Equal(t, CachePostgres, cfg.CacheBackend)
}

func TestLoadRedis(t *testing.T) {
	clearEnv(t)
	t.Setenv("CACHE_BACKEND", "Redis")
	t.Setenv("REDIS_ADDR", "cache:6379")
	t.Setenv("REDIS_TTL", "90m")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, CacheRedis, cfg.CacheBackend)
	assert.Equal(t, "cache:6379", cfg.RedisAddr)
	assert.Equal(t, 90*time.Minute, cfg.RedisTTL)
}

func TestLoadRejects(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"unknown backend", map[string]string{"CACHE_BACKEND": "memcached"}},
		{"postgres cache without url", map[string]string{"CACHE_BACKEND": "postgres"}},
		{"sqlite cache with url", map[string]string{"CACHE_BACKEND": "sqlite", "DATABASE_URL": "postgres://x"}},
		{"bad ttl", map[string]string{"REDIS_TTL": "soon"}},
		{"negative ttl", map[string]string{"REDIS_TTL": "-1h"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestGetTrimsBlank(t *testing.T) {
	t.Setenv("JYOTISH_TEST_KEY", "   ")
	assert.Equal(t, "fallback", Get("JYOTISH_TEST_KEY", "fallback"))

	t.Setenv("JYOTISH_TEST_KEY", "value")
	assert.Equal(t, "value", Get("JYOTISH_TEST_KEY", "fallback"))
}
