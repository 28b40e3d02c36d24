package services

import (
	"context"
	"fmt"
	"jyotish-service/internal/astro"
	"jyotish-service/internal/domain"
	"jyotish-service/internal/platform/metrics"
	"jyotish-service/internal/platform/obs"
	"jyotish-service/internal/ports"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// maxConcurrentCasts bounds zone resolution and chart computation per batch.
const maxConcurrentCasts = 5

// NormalizeInstant converts a local civil birth time to UTC using the zone's
// historical offset rules. Nonexistent or repeated local times (DST gaps and
// overlaps) resolve to whichever offset time.Date selects.
func NormalizeInstant(birth domain.BirthData, zones ports.ZoneResolver) (time.Time, error) {
	loc, err := zones.Resolve(birth.Zone)
	if err != nil {
		return time.Time{}, fmt.Errorf("normalize instant: %w", err)
	}

	local := time.Date(birth.Year, time.Month(birth.Month), birth.Day, birth.Hour, birth.Minute, 0, 0, loc)
	return local.UTC(), nil
}

// ChartAt computes the chart for birth at the UTC instant utc.
func ChartAt(birth domain.BirthData, utc time.Time) domain.Chart {
	utc = utc.UTC()

	// Whole minutes only: zones with second-level LMT offsets must not shift the day count.
	jd := astro.JulianDate(utc.Year(), int(utc.Month()), utc.Day(), utc.Hour(), utc.Minute(), 0)
	d := jd.DaysSinceJ2000()
	ayan := astro.Ayanamsa(jd)

	sun := astro.SunLongitude(d)
	moon := astro.MoonLongitude(d)
	asc := astro.Ascendant(jd, birth.Coordinates.Lat, birth.Coordinates.Lon)

	sidMoon := astro.Sidereal(moon, ayan)
	nak, pada := astro.Mansion(sidMoon)

	paksha := domain.Krishna
	if astro.Waxing(moon, sun) {
		paksha = domain.Shukla
	}

	return domain.Chart{
		Birth:      birth,
		UTC:        utc,
		JulianDay:  float64(jd),
		Ayanamsa:   ayan,
		Sun:        position(sun, ayan),
		Moon:       position(moon, ayan),
		Ascendant:  position(asc, ayan),
		Elongation: astro.Elongation(moon, sun),
		Nakshatra:  domain.Nakshatra(nak),
		Pada:       pada,
		Paksha:     paksha,
	}
}

func position(tropical, ayan float64) domain.Position {
	sid := astro.Sidereal(tropical, ayan)
	return domain.Position{
		Tropical: tropical,
		Sidereal: sid,
		Sign:     domain.Sign(astro.SignIndex(sid)),
	}
}

// CastChart validates birth and returns its chart, consulting cache when non-nil.
func CastChart(
	ctx context.Context,
	birth domain.BirthData,
	zones ports.ZoneResolver,
	cache ports.ChartCache,
) (*domain.Chart, error) {
	charts, err := CastCharts(ctx, []domain.BirthData{birth}, zones, cache)
	if err != nil {
		return nil, err
	}
	return charts[birth.Key()], nil
}

// CastCharts computes charts for many births, keyed by BirthData.Key.
// Duplicate births are computed once. Cache failures are logged and
// treated as misses; they never fail the batch.
func CastCharts(
	ctx context.Context,
	births []domain.BirthData,
	zones ports.ZoneResolver,
	cache ports.ChartCache,
) (_ map[string]*domain.Chart, err error) {
	defer obs.Time(ctx, "charts.CastCharts")(&err)

	uniq := make(map[string]domain.BirthData, len(births))
	keys := make([]string, 0, len(births))
	for i, b := range births {
		if err := b.Validate(); err != nil {
			return nil, fmt.Errorf("cast charts: birth #%d: %w", i+1, err)
		}
		k := b.Key()
		if _, ok := uniq[k]; ok {
			continue
		}
		uniq[k] = b
		keys = append(keys, k)
	}

	out := make(map[string]*domain.Chart, len(keys))
	if len(keys) == 0 {
		return out, nil
	}

	if cache != nil {
		hits, err := cache.GetMany(ctx, keys)
		if err != nil {
			log.Warn().Err(err).Str("req_id", obs.RequestID(ctx)).Msg("chart cache read failed")
		}
		for k, c := range hits {
			if _, ok := uniq[k]; ok && c != nil {
				out[k] = c
			}
		}
	}

	misses := make([]string, 0, len(keys)-len(out))
	for _, k := range keys {
		if _, ok := out[k]; !ok {
			misses = append(misses, k)
		}
	}

	computed := make([]*domain.Chart, len(misses))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentCasts)
	for i, k := range misses {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			b := uniq[k]
			utc, err := NormalizeInstant(b, zones)
			if err != nil {
				return fmt.Errorf("cast charts: birth %s: %w", k, err)
			}

			c := ChartAt(b, utc)
			computed[i] = &c
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	fresh := make(map[string]*domain.Chart, len(misses))
	for i, k := range misses {
		out[k] = computed[i]
		fresh[k] = computed[i]
	}

	metrics.RecordCharts(metrics.SourceCache, len(keys)-len(misses))
	metrics.RecordCharts(metrics.SourceComputed, len(misses))

	if cache != nil && len(fresh) > 0 {
		if err := cache.PutMany(ctx, fresh); err != nil {
			log.Warn().Err(err).Str("req_id", obs.RequestID(ctx)).Msg("chart cache write failed")
		}
	}

	return out, nil
}
