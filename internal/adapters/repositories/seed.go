package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"jyotish-service/internal/domain"
	"jyotish-service/internal/platform/db"
	"os"
	"strings"
)

type ProfileSeed struct {
	ProfileID int     `json:"profile_id"`
	Name      string  `json:"name"`
	Date      string  `json:"date"`
	Time      string  `json:"time"`
	Timezone  string  `json:"timezone"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// SeedFromJSON upserts the profiles listed in a JSON file. Every record is
// validated before anything is written.
func SeedFromJSON(ctx context.Context, conn *sql.DB, dialect db.Dialect, jsonPath string) (int, error) {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return 0, fmt.Errorf("seed profiles: read %q: %w", jsonPath, err)
	}

	var data []ProfileSeed
	if err := json.Unmarshal(bytes, &data); err != nil {
		return 0, fmt.Errorf("seed profiles: parse json: %w", err)
	}

	profiles := make([]domain.Profile, 0, len(data))
	for i, item := range data {
		if item.ProfileID <= 0 {
			return 0, fmt.Errorf("seed profiles: invalid profile_id at index %d: %d", i+1, item.ProfileID)
		}

		name := strings.TrimSpace(item.Name)
		if name == "" {
			return 0, fmt.Errorf("seed profiles: item at index %d: name cannot be empty", i+1)
		}

		birth, err := domain.ParseBirthData(item.Date, item.Time, item.Timezone, item.Latitude, item.Longitude)
		if err != nil {
			return 0, fmt.Errorf("seed profiles: item at index %d: %w", i+1, err)
		}

		profiles = append(profiles, domain.Profile{ProfileID: item.ProfileID, Name: name, Birth: birth})
	}

	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("seed profiles: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := fmt.Sprintf(`
	INSERT INTO profiles (
		profile_id,
		name,
		birth_date,
		birth_time,
		timezone,
		latitude,
		longitude
	)
	VALUES (%s)
	ON CONFLICT (profile_id) DO UPDATE
	SET name = EXCLUDED.name,
		birth_date = EXCLUDED.birth_date,
		birth_time = EXCLUDED.birth_time,
		timezone = EXCLUDED.timezone,
		latitude = EXCLUDED.latitude,
		longitude = EXCLUDED.longitude;
	`, dialect.Placeholders(1, 7))

	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return 0, fmt.Errorf("seed profiles: prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, p := range profiles {
		b := p.Birth
		_, err := stmt.ExecContext(ctx,
			p.ProfileID,
			p.Name,
			b.DateString(),
			b.ClockString(),
			b.Zone,
			b.Coordinates.Lat,
			b.Coordinates.Lon,
		)
		if err != nil {
			return 0, fmt.Errorf("seed profiles: insert profile_id=%d: %w", p.ProfileID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("seed profiles: commit tx: %w", err)
	}

	return len(profiles), nil
}
