package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"jyotish-service/internal/platform/db"
)

// InitSchema creates the profile and cache tables if they do not exist.
func InitSchema(ctx context.Context, conn *sql.DB, dialect db.Dialect) error {
	if conn == nil {
		return errors.New("init schema: DB is nil")
	}

	float, stamp := "REAL", "TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP"
	if dialect == db.Postgres {
		float, stamp = "DOUBLE PRECISION", "TIMESTAMPTZ NOT NULL DEFAULT now()"
	}

	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createProfilesQuery := fmt.Sprintf(`
	CREATE TABLE IF NOT EXISTS profiles (
		profile_id INTEGER PRIMARY KEY,
		name TEXT NOT NULL,
		birth_date TEXT NOT NULL,
		birth_time TEXT NOT NULL,
		timezone TEXT NOT NULL,
		latitude %[1]s NOT NULL,
		longitude %[1]s NOT NULL
	);
	`, float)

	createChartCacheQuery := fmt.Sprintf(`
	CREATE TABLE IF NOT EXISTS chart_cache (
		birth_key TEXT PRIMARY KEY,
		payload TEXT NOT NULL,
		created_at %s
	);
	`, stamp)

	createPlaceCacheQuery := fmt.Sprintf(`
	CREATE TABLE IF NOT EXISTS place_cache (
		place TEXT PRIMARY KEY,
		lon %[1]s NOT NULL,
		lat %[1]s NOT NULL
	);
	`, float)

	createIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_profiles_name
	ON profiles(name);
	`

	statements := []string{
		createProfilesQuery,
		createChartCacheQuery,
		createPlaceCacheQuery,
		createIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}
