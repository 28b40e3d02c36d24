package astro

import "math"

// SunLongitude returns the Sun's tropical ecliptic longitude in
// degrees for d days since J2000, from a single Kepler orbit. Accuracy is
// about a degree.
func SunLongitude(d float64) float64 {
	w := 282.9404 + 4.70935e-5*d
	e := 0.016709 - 1.151e-9*d
	m := Normalize(356.0470 + 0.9856002585*d)

	mr := rad(m)
	ea := m + deg(e*math.Sin(mr)*(1+e*math.Cos(mr)))

	er := rad(ea)
	xv := math.Cos(er) - e
	yv := math.Sin(er) * math.Sqrt(1-e*e)
	v := deg(math.Atan2(yv, xv))

	return Normalize(v + w)
}

// lunarTerm is one periodic correction in arcseconds. The argument is the
// integer combination of the fundamental arguments L0, M, M', F and D.
type lunarTerm struct {
	amp             float64
	l0, m, ms, f, d float64
}

var lunarTerms = [...]lunarTerm{
	{amp: 22640, m: 1},
	{amp: 769, m: 2},
	{amp: -4586, m: 1, d: -2},
	{amp: 2370, d: 2},
	{amp: -668, ms: 1},
	{amp: -412, f: 2},
	{amp: -125, d: 1},
	{amp: -212, m: 2, d: -2},
	{amp: -206, m: 1, ms: 1, d: -2},
	{amp: 192, m: 1, d: 2},
	{amp: -165, ms: 1, d: -2},
	{amp: 148, l0: 1, ms: -1},
	{amp: -110, m: 1, ms: 1},
	{amp: -55, f: 2, d: -2},
}

// MoonLongitude returns the Moon's tropical ecliptic longitude in degrees for
// d days since J2000: mean longitude plus the fourteen largest periodic terms.
func MoonLongitude(d float64) float64 {
	t := d / 36525
	t2 := t * t

	l0 := 218.31617 + 481267.88088*t - 4.06*t2/3600
	m := 134.96292 + 477198.86753*t + 33.25*t2/3600
	ms := 357.52543 + 35999.04944*t - 0.58*t2/3600
	f := 93.27283 + 483202.01873*t - 11.56*t2/3600
	dd := 297.85027 + 445267.11135*t - 5.15*t2/3600

	var sum float64
	for _, p := range lunarTerms {
		arg := p.l0*l0 + p.m*m + p.ms*ms + p.f*f + p.d*dd
		sum += p.amp * sinDeg(arg)
	}

	return Normalize(l0 + sum/3600)
}
