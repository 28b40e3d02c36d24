package cache

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"jyotish-service/internal/domain"
	"jyotish-service/internal/platform/db"
	"jyotish-service/internal/platform/obs"
	"strings"
)

// SQLChartCache stores charts as JSON in the chart_cache table, keyed by
// domain.BirthData.Key. It works on SQLite and Postgres.
type SQLChartCache struct {
	DB      *sql.DB
	Dialect db.Dialect
}

func NewSQLChartCache(conn *sql.DB, dialect db.Dialect) *SQLChartCache {
	return &SQLChartCache{DB: conn, Dialect: dialect}
}

// Fetch cached charts for the given birth keys.
func (s *SQLChartCache) GetMany(
	ctx context.Context,
	keys []string,
) (_ map[string]*domain.Chart, err error) {
	defer obs.Time(ctx, "chart.cache.GetMany")(&err)

	if s.DB == nil {
		return nil, errors.New("chart cache: db is nil")
	}

	uniq := uniqueKeys(keys)
	if len(uniq) == 0 {
		return map[string]*domain.Chart{}, nil
	}

	args := make([]any, 0, len(uniq))
	for _, k := range uniq {
		args = append(args, k)
	}

	// Only the placeholder structure is interpolated; all values remain parameterized.
	q := fmt.Sprintf(`
	SELECT birth_key, payload
	FROM chart_cache
	WHERE birth_key IN (%s);
	`, s.Dialect.Placeholders(1, len(uniq)))

	rows, err := s.DB.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("get chart cache: query chart_cache table: %w", err)
	}
	defer rows.Close()

	out := make(map[string]*domain.Chart, len(uniq))
	for rows.Next() {
		var key, payload string
		if err := rows.Scan(&key, &payload); err != nil {
			return nil, fmt.Errorf("get chart cache: scan rows: %w", err)
		}

		var c domain.Chart
		if err := json.Unmarshal([]byte(payload), &c); err != nil {
			return nil, fmt.Errorf("get chart cache: decode key=%q: %w", key, err)
		}
		out[key] = &c
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("get chart cache: row iteration: %w", err)
	}

	return out, nil
}

// Store birth key -> chart mappings in the cache.
func (s *SQLChartCache) PutMany(ctx context.Context, charts map[string]*domain.Chart) (err error) {
	defer obs.Time(ctx, "chart.cache.PutMany")(&err)

	if s.DB == nil {
		return errors.New("chart cache: db is nil")
	}

	if len(charts) == 0 {
		return nil
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("insert chart cache: db begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, fmt.Sprintf(`
	INSERT INTO chart_cache (birth_key, payload)
	VALUES (%s)
	ON CONFLICT (birth_key) DO UPDATE
	SET payload = EXCLUDED.payload;
	`, s.Dialect.Placeholders(1, 2)))
	if err != nil {
		return fmt.Errorf("insert chart cache: db prepare: %w", err)
	}
	defer stmt.Close()

	for key, c := range charts {
		if strings.TrimSpace(key) == "" {
			return errors.New("insert chart cache: empty birth key")
		}
		if c == nil {
			return fmt.Errorf("insert chart cache key=%q: nil chart", key)
		}

		payload, err := json.Marshal(c)
		if err != nil {
			return fmt.Errorf("insert chart cache key=%q: encode: %w", key, err)
		}

		if _, err := stmt.ExecContext(ctx, key, string(payload)); err != nil {
			return fmt.Errorf("insert chart cache key=%q: %w", key, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("insert chart cache commit: %w", err)
	}

	return nil
}

// uniqueKeys trims keys and drops blanks and duplicates, keeping first-seen order.
func uniqueKeys(keys []string) []string {
	seen := make(map[string]struct{}, len(keys))
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		k = strings.TrimSpace(k)
		if k == "" {
			continue
		}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	return out
}
