package astro

import (
	"math"
	"time"
)

// JulianDay is a continuous count of days; the fraction carries the time of day.
type JulianDay float64

// J2000 is 2000-01-01 12:00 UTC.
const J2000 JulianDay = 2451545.0

// gregorianJDN is the day number of 1582-10-15, the first Gregorian day.
const gregorianJDN = 2299161

// DaysSinceJ2000 returns the signed day offset from J2000.
func (jd JulianDay) DaysSinceJ2000() float64 {
	return float64(jd - J2000)
}

// JulianDate converts a calendar date and time of day to a Julian Day.
//
// Dates before 1582-10-15 are read with the Julian leap-year rule, later
// dates with the Gregorian rule. Callers passing proleptic Gregorian dates
// from before the reform get a result ten days off, so the mapping is not
// monotonic across the cutover.
func JulianDate(year, month, day, hour, minute, second int) JulianDay {
	y, m := year, month
	if m == 1 || m == 2 {
		y--
		m += 12
	}

	b := 0.0
	if !beforeReform(year, month, day) {
		a := math.Floor(float64(y) / 100)
		b = 2 - a + math.Floor(a/4)
	}

	c := math.Floor(365.25 * float64(y+4716))
	d := math.Floor(30.6001 * float64(m+1))

	jd := b + float64(day) + c + d - 1524.5
	jd += (float64(hour) + float64(minute)/60 + float64(second)/3600) / 24

	return JulianDay(jd)
}

// JulianDateOf converts an instant to a Julian Day using its UTC fields.
func JulianDateOf(t time.Time) JulianDay {
	u := t.UTC()
	jd := JulianDate(u.Year(), int(u.Month()), u.Day(), u.Hour(), u.Minute(), u.Second())
	return jd + JulianDay(float64(u.Nanosecond())/(86400*1e9))
}

// CalendarDate is the inverse of JulianDate for positive day counts.
// frac is the elapsed fraction of the civil day starting at midnight.
func CalendarDate(jd JulianDay) (year, month, day int, frac float64) {
	z := math.Floor(float64(jd) + 0.5)
	frac = float64(jd) + 0.5 - z

	a := z
	if z >= gregorianJDN {
		alpha := math.Floor((z - 1867216.25) / 36524.25)
		a = z + 1 + alpha - math.Floor(alpha/4)
	}

	b := a + 1524
	c := math.Floor((b - 122.1) / 365.25)
	d := math.Floor(365.25 * c)
	e := math.Floor((b - d) / 30.6001)

	day = int(b - d - math.Floor(30.6001*e))
	if e < 14 {
		month = int(e) - 1
	} else {
		month = int(e) - 13
	}
	if month > 2 {
		year = int(c) - 4716
	} else {
		year = int(c) - 4715
	}

	return year, month, day, frac
}

// TimeOf converts a Julian Day back to a UTC instant rounded to the second.
// Dates before the reform come back with their Julian calendar labels, which
// matches what JulianDateOf read from them.
func TimeOf(jd JulianDay) time.Time {
	y, m, d, frac := CalendarDate(jd)
	secs := math.Round(frac * 86400)
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC).Add(time.Duration(secs) * time.Second)
}

func beforeReform(year, month, day int) bool {
	if year != 1582 {
		return year < 1582
	}
	if month != 10 {
		return month < 10
	}
	return day < 15
}
