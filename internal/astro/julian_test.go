package astro

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJulianDateReference(t *testing.T) {
	tests := []struct {
		name                 string
		y, mo, d, h, mi, sec int
		want                 JulianDay
	}{
		{"j2000", 2000, 1, 1, 12, 0, 0, 2451545.0},
		{"sputnik", 1957, 10, 4, 19, 26, 24, 2436116.31},
		{"julian calendar", 333, 1, 27, 12, 0, 0, 1842713.0},
		{"last julian day", 1582, 10, 4, 0, 0, 0, 2299159.5},
		{"first gregorian day", 1582, 10, 15, 0, 0, 0, 2299160.5},
		{"leap day", 2024, 2, 29, 0, 0, 0, 2460369.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := JulianDate(tt.y, tt.mo, tt.d, tt.h, tt.mi, tt.sec)
			assert.InDelta(t, float64(tt.want), float64(got), 1e-6)
		})
	}
}

func TestJulianDateReformIsContiguous(t *testing.T) {
	before := JulianDate(1582, 10, 4, 12, 0, 0)
	after := JulianDate(1582, 10, 15, 12, 0, 0)
	assert.InDelta(t, 1.0, float64(after-before), 1e-9)
}

func TestJulianDateOfMatchesFields(t *testing.T) {
	ist := time.FixedZone("IST", 5*3600+30*60)
	local := time.Date(2000, 1, 1, 17, 30, 0, 0, ist)

	assert.InDelta(t, float64(J2000), float64(JulianDateOf(local)), 1e-9)
}

func TestJulianDateMonotonic(t *testing.T) {
	ranges := []struct {
		name       string
		start, end time.Time
	}{
		{"gregorian", time.Date(1582, 10, 15, 0, 0, 0, 0, time.UTC), time.Date(2400, 1, 1, 0, 0, 0, 0, time.UTC)},
		{"julian", time.Date(1000, 1, 1, 0, 0, 0, 0, time.UTC), time.Date(1582, 10, 4, 23, 59, 0, 0, time.UTC)},
	}

	step := 37*time.Hour + 13*time.Minute
	for _, r := range ranges {
		t.Run(r.name, func(t *testing.T) {
			prev := JulianDateOf(r.start)
			for ts := r.start.Add(step); ts.Before(r.end); ts = ts.Add(step) {
				cur := JulianDateOf(ts)
				require.Greater(t, float64(cur), float64(prev), "at %s", ts)
				prev = cur
			}
		})
	}
}

func TestCalendarDateRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))

	lo := time.Date(1900, 1, 1, 0, 0, 0, 0, time.UTC).Unix() / 60
	hi := time.Date(2100, 12, 31, 23, 59, 0, 0, time.UTC).Unix() / 60

	for i := 0; i < 5000; i++ {
		want := time.Unix((lo+rng.Int64N(hi-lo))*60, 0).UTC()
		got := TimeOf(JulianDateOf(want))
		require.True(t, want.Equal(got), "round trip %s -> %s", want, got)
	}
}

func TestCalendarDateRoundTripBeforeReform(t *testing.T) {
	dates := []time.Time{
		time.Date(333, 1, 27, 12, 0, 0, 0, time.UTC),
		time.Date(1000, 3, 1, 6, 45, 0, 0, time.UTC),
		time.Date(1400, 2, 28, 23, 59, 0, 0, time.UTC),
		time.Date(1582, 10, 4, 18, 0, 0, 0, time.UTC),
	}

	for _, want := range dates {
		got := TimeOf(JulianDateOf(want))
		assert.True(t, want.Equal(got), "round trip %s -> %s", want, got)
	}
}

func TestCalendarDateFraction(t *testing.T) {
	y, m, d, frac := CalendarDate(2436116.31)

	assert.Equal(t, 1957, y)
	assert.Equal(t, 10, m)
	assert.Equal(t, 4, d)
	assert.InDelta(t, 0.81, frac, 1e-6)
}
