package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"jyotish-service/internal/adapters/repositories"
	"jyotish-service/internal/config"
	"jyotish-service/internal/platform/db"
	"jyotish-service/internal/platform/logging"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// dbtool prepares a database: schema only with -init-only, schema plus
// profile seed otherwise. DATABASE_URL selects Postgres, else DB_PATH SQLite.
func main() {
	initOnly := flag.Bool("init-only", false, "create the schema without seeding profiles")
	flag.Parse()

	envErr := godotenv.Load()
	if err := logging.Setup(config.Get("LOG_LEVEL", "info"), config.Get("LOG_FORMAT", "console")); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if envErr != nil {
		log.Info().Msg("no .env file found (using environment variables)")
	}

	conn, dialect, err := open()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open database")
	}
	defer conn.Close()

	seedPath := config.Get("SEED_PATH", "data/seeds/profiles.json")
	if err := initAndSeed(context.Background(), conn, dialect, seedPath, !*initOnly); err != nil {
		log.Fatal().Err(err).Msg("database setup failed")
	}
}

func open() (*sql.DB, db.Dialect, error) {
	if url := config.Get("DATABASE_URL", ""); url != "" {
		conn, err := db.Open(url)
		return conn, db.Postgres, err
	}
	conn, err := db.OpenSQLite(config.Get("DB_PATH", "data/app.db"))
	return conn, db.SQLite, err
}

func initAndSeed(ctx context.Context, conn *sql.DB, dialect db.Dialect, seedPath string, seed bool) error {
	log.Info().Str("dialect", dialect.String()).Msg("initializing database schema...")
	if err := repositories.InitSchema(ctx, conn, dialect); err != nil {
		return fmt.Errorf("schema initialization failed: %w", err)
	}
	log.Info().Msg("schema ready")

	if !seed {
		return nil
	}

	log.Info().Str("seed_path", seedPath).Msg("seeding profiles...")
	n, err := repositories.SeedFromJSON(ctx, conn, dialect, seedPath)
	if err != nil {
		return fmt.Errorf("seeding failed: %w", err)
	}
	log.Info().Int("profiles", n).Msg("seeding complete")

	return nil
}
