package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"jyotish-service/internal/domain"
	"jyotish-service/internal/platform/db"
	"jyotish-service/internal/platform/obs"
)

// SQL-backed implementation of the ProfileRepository port.
type SQLProfileRepository struct {
	DB      *sql.DB
	Dialect db.Dialect
}

func NewSQLProfileRepository(conn *sql.DB, dialect db.Dialect) *SQLProfileRepository {
	return &SQLProfileRepository{DB: conn, Dialect: dialect}
}

const profileColumns = `
		profile_id,
		name,
		birth_date,
		birth_time,
		timezone,
		latitude,
		longitude`

// Return all profiles stored in the database.
func (s *SQLProfileRepository) ListProfiles(ctx context.Context) (_ []*domain.Profile, err error) {
	defer obs.Time(ctx, "profiles.List")(&err)

	if s.DB == nil {
		return nil, errors.New("profile repository: DB is nil")
	}

	query := `
	SELECT` + profileColumns + `
	FROM profiles
	ORDER BY profile_id;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list profiles: query profiles table: %w", err)
	}
	defer rows.Close()

	profiles := make([]*domain.Profile, 0, 16)
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, fmt.Errorf("list profiles: %w", err)
		}
		profiles = append(profiles, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list profiles: row iteration: %w", err)
	}

	return profiles, nil
}

// Return the profile with the given id.
func (s *SQLProfileRepository) GetProfile(ctx context.Context, id int) (_ *domain.Profile, err error) {
	defer obs.Time(ctx, "profiles.Get")(&err)

	if s.DB == nil {
		return nil, errors.New("profile repository: DB is nil")
	}

	query := `
	SELECT` + profileColumns + `
	FROM profiles
	WHERE profile_id = ` + s.Dialect.Placeholder(1) + `;
	`
	p, err := scanProfile(s.DB.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get profile %d: %w", id, domain.ErrProfileNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get profile %d: %w", id, err)
	}

	return p, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProfile(row rowScanner) (*domain.Profile, error) {
	var (
		id                    int
		name, date, clock, tz string
		lat, lon              float64
	)
	if err := row.Scan(&id, &name, &date, &clock, &tz, &lat, &lon); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan row: %w", err)
	}

	birth, err := domain.ParseBirthData(date, clock, tz, lat, lon)
	if err != nil {
		return nil, fmt.Errorf("profile_id=%d: stored birth data: %w", id, err)
	}

	return &domain.Profile{ProfileID: id, Name: name, Birth: birth}, nil
}
