package repositories

import (
	"context"
	"database/sql"
	"errors"
	"jyotish-service/internal/domain"
	"jyotish-service/internal/platform/db"
	"os"
	"path/filepath"
	"testing"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := db.OpenSQLite(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := InitSchema(context.Background(), conn, db.SQLite); err != nil {
		t.Fatalf("init schema: %v", err)
	}
	return conn
}

func writeSeed(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "profiles.json")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write seed: %v", err)
	}
	return path
}

func TestSeedAndListProfiles(t *testing.T) {
	ctx := context.Background()
	conn := openTestDB(t)

	n, err := SeedFromJSON(ctx, conn, db.SQLite, filepath.Join("..", "..", "..", "data", "seeds", "profiles.json"))
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	if n != 5 {
		t.Fatalf("seeded %d profiles, want 5", n)
	}

	repo := NewSQLProfileRepository(conn, db.SQLite)
	profiles, err := repo.ListProfiles(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(profiles) != 5 {
		t.Fatalf("listed %d profiles, want 5", len(profiles))
	}
	for i, p := range profiles {
		if p.ProfileID != i+1 {
			t.Errorf("profiles[%d].ProfileID = %d, want ordered ids", i, p.ProfileID)
		}
	}

	p, err := repo.GetProfile(ctx, 2)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	want := domain.BirthData{
		Year: 1990, Month: 5, Day: 17, Hour: 18, Minute: 45,
		Zone:        "Asia/Kolkata",
		Coordinates: domain.Coordinates{Lat: 12.9716, Lon: 77.5946},
	}
	if p.Birth != want || p.Name != "Bengaluru evening" {
		t.Fatalf("got %+v", p)
	}
}

func TestSeedIsIdempotent(t *testing.T) {
	ctx := context.Background()
	conn := openTestDB(t)

	path := writeSeed(t, `[{"profile_id": 7, "name": "A", "date": "2001-02-03", "time": "04:05", "timezone": "UTC", "latitude": 1, "longitude": 2}]`)
	for i := 0; i < 2; i++ {
		if _, err := SeedFromJSON(ctx, conn, db.SQLite, path); err != nil {
			t.Fatalf("seed #%d: %v", i+1, err)
		}
	}

	renamed := writeSeed(t, `[{"profile_id": 7, "name": "B", "date": "2001-02-03", "time": "04:05", "timezone": "UTC", "latitude": 1, "longitude": 2}]`)
	if _, err := SeedFromJSON(ctx, conn, db.SQLite, renamed); err != nil {
		t.Fatalf("reseed: %v", err)
	}

	profiles, err := NewSQLProfileRepository(conn, db.SQLite).ListProfiles(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(profiles) != 1 || profiles[0].Name != "B" {
		t.Fatalf("profiles = %+v", profiles)
	}
}

func TestSeedRejectsInvalidRecords(t *testing.T) {
	ctx := context.Background()
	conn := openTestDB(t)

	bodies := map[string]string{
		"bad id":   `[{"profile_id": 0, "name": "A", "date": "2001-02-03", "time": "04:05", "timezone": "UTC"}]`,
		"no name":  `[{"profile_id": 1, "name": " ", "date": "2001-02-03", "time": "04:05", "timezone": "UTC"}]`,
		"bad date": `[{"profile_id": 1, "name": "A", "date": "2001-02-30", "time": "04:05", "timezone": "UTC"}]`,
		"bad json": `{"profile_id": 1}`,
	}

	for name, body := range bodies {
		t.Run(name, func(t *testing.T) {
			if _, err := SeedFromJSON(ctx, conn, db.SQLite, writeSeed(t, body)); err == nil {
				t.Fatal("expected error")
			}
		})
	}

	profiles, err := NewSQLProfileRepository(conn, db.SQLite).ListProfiles(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(profiles) != 0 {
		t.Fatalf("invalid seeds wrote %d rows", len(profiles))
	}
}

func TestGetProfileNotFound(t *testing.T) {
	repo := NewSQLProfileRepository(openTestDB(t), db.SQLite)

	_, err := repo.GetProfile(context.Background(), 99)
	if !errors.Is(err, domain.ErrProfileNotFound) {
		t.Fatalf("err = %v, want ErrProfileNotFound", err)
	}
}

func TestInitSchemaNilDB(t *testing.T) {
	if err := InitSchema(context.Background(), nil, db.SQLite); err == nil {
		t.Fatal("expected error for nil DB")
	}
}
