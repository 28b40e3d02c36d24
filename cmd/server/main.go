package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"jyotish-service/internal/adapters/cache"
	"jyotish-service/internal/adapters/geocode"
	"jyotish-service/internal/adapters/random"
	"jyotish-service/internal/adapters/repositories"
	"jyotish-service/internal/adapters/zones"
	"jyotish-service/internal/api"
	"jyotish-service/internal/catalog"
	"jyotish-service/internal/config"
	"jyotish-service/internal/platform/db"
	"jyotish-service/internal/platform/logging"
	"jyotish-service/internal/ports"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const shutdownTimeout = 15 * time.Second

// main is the application composition root.
// It wires concrete adapters (SQL, Redis, ORS) behind ports and starts the HTTP server.
func main() {
	envErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	if err := logging.Setup(cfg.LogLevel, cfg.LogFormat); err != nil {
		log.Fatal().Err(err).Msg("invalid logging configuration")
	}
	if envErr != nil {
		log.Info().Msg("no .env file found (using environment variables)")
	}

	conn, dialect, err := openDB(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open database")
	}
	defer conn.Close()

	// Initialize schema and seed demo profiles on startup for local runs.
	ctx := context.Background()
	if err := initAndSeed(ctx, conn, dialect, cfg.SeedPath); err != nil {
		log.Fatal().Err(err).Msg("failed to prepare database")
	}

	cat, err := catalog.Open(cfg.CatalogPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load catalog")
	}

	chartCache, closeCache, err := newChartCache(ctx, cfg, conn, dialect)
	if err != nil {
		log.Fatal().Err(err).Str("backend", cfg.CacheBackend).Msg("failed to initialize chart cache")
	}
	defer closeCache()

	// Place lookup is optional; without a key clients send coordinates.
	var geocoder ports.Geocoder
	if cfg.ORSAPIKey != "" {
		g, err := geocode.NewORSGeocoder(cfg.ORSAPIKey, cache.NewSQLPlaceCache(conn, dialect))
		if err != nil {
			log.Fatal().Err(err).Msg("failed to initialize geocoder")
		}
		geocoder = g
		log.Info().Msg("place geocoding enabled")
	}

	router := api.NewRouter(api.Dependencies{
		Profiles: repositories.NewSQLProfileRepository(conn, dialect),
		Zones:    zones.NewIANAResolver(),
		Cache:    chartCache,
		Geocoder: geocoder,
		Catalog:  cat,
		Picker:   random.NewPicker(uint64(time.Now().UnixNano())),
		Seeded:   func(seed uint64) ports.Picker { return random.NewPicker(seed) },
		DB:       conn,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Info().Str("addr", srv.Addr).Str("dialect", dialect.String()).Str("cache", cfg.CacheBackend).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("failed to serve")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}

	log.Info().Msg("server stopped")
}

func openDB(cfg config.Config) (*sql.DB, db.Dialect, error) {
	if cfg.UsesPostgres() {
		conn, err := db.Open(cfg.DatabaseURL)
		return conn, db.Postgres, err
	}
	conn, err := db.OpenSQLite(cfg.DBPath)
	return conn, db.SQLite, err
}

func initAndSeed(ctx context.Context, conn *sql.DB, dialect db.Dialect, seedPath string) error {
	if err := repositories.InitSchema(ctx, conn, dialect); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	n, err := repositories.SeedFromJSON(ctx, conn, dialect, seedPath)
	if err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}
	log.Info().Int("profiles", n).Str("seed_path", seedPath).Msg("profiles seeded")

	return nil
}

// newChartCache builds the configured chart cache. The returned close func
// is always safe to call.
func newChartCache(
	ctx context.Context,
	cfg config.Config,
	conn *sql.DB,
	dialect db.Dialect,
) (ports.ChartCache, func(), error) {
	noop := func() {}

	switch cfg.CacheBackend {
	case config.CacheSQLite, config.CachePostgres:
		return cache.NewSQLChartCache(conn, dialect), noop, nil
	case config.CacheRedis:
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})

		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := client.Ping(pingCtx).Err(); err != nil {
			client.Close()
			return nil, noop, fmt.Errorf("redis ping %s: %w", cfg.RedisAddr, err)
		}
		return cache.NewRedisChartCache(client, cfg.RedisTTL), func() { client.Close() }, nil
	default:
		log.Warn().Msg("chart cache disabled")
		return nil, noop, nil
	}
}
