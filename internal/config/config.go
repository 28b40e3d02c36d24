// Package config reads service settings from the environment.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

const (
	CacheSQLite   = "sqlite"
	CachePostgres = "postgres"
	CacheRedis    = "redis"
	CacheNone     = "none"
)

// Config holds application configuration
type Config struct {
	Port         string
	DBPath       string // SQLite file, used when DatabaseURL is empty
	DatabaseURL  string // Postgres URL; switches storage to pgx
	CacheBackend string // "sqlite" | "postgres" | "redis" | "none"
	RedisAddr    string
	RedisTTL     time.Duration
	SeedPath     string
	CatalogPath  string // optional YAML override of the embedded catalog
	ORSAPIKey    string // optional; enables place geocoding
	LogLevel     string
	LogFormat    string // "console" | "json"
}

// Get returns the environment value for key, or fallback when unset or blank.
func Get(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

// Load reads the environment and checks the combination is usable.
func Load() (Config, error) {
	cfg := Config{
		Port:        Get("PORT", "8080"),
		DBPath:      Get("DB_PATH", "data/app.db"),
		DatabaseURL: Get("DATABASE_URL", ""),
		RedisAddr:   Get("REDIS_ADDR", "localhost:6379"),
		SeedPath:    Get("SEED_PATH", "data/seeds/profiles.json"),
		CatalogPath: Get("CATALOG_PATH", ""),
		ORSAPIKey:   Get("ORS_API_KEY", ""),
		LogLevel:    Get("LOG_LEVEL", "info"),
		LogFormat:   Get("LOG_FORMAT", "console"),
	}

	ttl, err := time.ParseDuration(Get("REDIS_TTL", "168h"))
	if err != nil || ttl < 0 {
		return Config{}, fmt.Errorf("config: REDIS_TTL %q must be a non-negative duration", os.Getenv("REDIS_TTL"))
	}
	cfg.RedisTTL = ttl

	defaultCache := CacheSQLite
	if cfg.UsesPostgres() {
		defaultCache = CachePostgres
	}
	cfg.CacheBackend = strings.ToLower(Get("CACHE_BACKEND", defaultCache))

	switch cfg.CacheBackend {
	case CacheSQLite:
		if cfg.UsesPostgres() {
			return Config{}, fmt.Errorf("config: CACHE_BACKEND=sqlite conflicts with DATABASE_URL")
		}
	case CachePostgres:
		if !cfg.UsesPostgres() {
			return Config{}, fmt.Errorf("config: CACHE_BACKEND=postgres requires DATABASE_URL")
		}
	case CacheRedis, CacheNone:
	default:
		return Config{}, fmt.Errorf("config: unknown CACHE_BACKEND %q", cfg.CacheBackend)
	}

	return cfg, nil
}

func (c Config) UsesPostgres() bool {
	return c.DatabaseURL != ""
}
