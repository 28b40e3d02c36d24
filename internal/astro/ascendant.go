package astro

import "math"

// Obliquity returns the mean obliquity of the ecliptic in degrees.
func Obliquity(d float64) float64 {
	return 23.439281 - 0.0000004*d
}

// GreenwichSiderealTime returns mean sidereal time at Greenwich in degrees.
func GreenwichSiderealTime(d float64) float64 {
	return Normalize(280.46061837 + 360.98564736629*d)
}

// LocalSiderealTime returns the sidereal angle used for the rising point.
// The extra 90 degrees turns the local meridian into the eastern horizon.
func LocalSiderealTime(d, lon float64) float64 {
	return Normalize(GreenwichSiderealTime(d) + lon + 90)
}

// Ascendant returns the tropical longitude of the ecliptic rising on the
// eastern horizon, in degrees. Latitude is north-positive, longitude
// east-positive. The result is continuous across the equator.
func Ascendant(jd JulianDay, lat, lon float64) float64 {
	d := jd.DaysSinceJ2000()

	lst := rad(LocalSiderealTime(d, lon))
	eps := rad(Obliquity(d))
	phi := rad(lat)

	y := math.Sin(lst)
	x := math.Cos(lst)*math.Cos(eps) - math.Sin(eps)*math.Tan(phi)

	return Normalize(deg(math.Atan2(y, x)))
}
