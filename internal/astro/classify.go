package astro

import "math"

const (
	SignSpan    = 30.0
	MansionSpan = 360.0 / 27
	PadaSpan    = 360.0 / 108

	Signs    = 12
	Mansions = 27
	Padas    = 4
)

// SignIndex returns the 0-based zodiac sign holding a longitude.
func SignIndex(lon float64) int {
	return clamp(int(math.Floor(Normalize(lon)/SignSpan)), 0, Signs-1)
}

// Mansion returns the 0-based lunar mansion and the 1-based quarter
// (pada) within it.
func Mansion(lon float64) (index, pada int) {
	lon = Normalize(lon)
	index = clamp(int(math.Floor(lon/MansionSpan)), 0, Mansions-1)
	rem := math.Mod(lon, MansionSpan)
	pada = clamp(int(math.Floor(rem/PadaSpan))+1, 1, Padas)
	return index, pada
}

// Elongation is the Moon's angular lead over the Sun in [0, 360).
func Elongation(moon, sun float64) float64 {
	return Normalize(moon - sun)
}

// Waxing reports whether the Moon is in the bright fortnight.
func Waxing(moon, sun float64) bool {
	return Elongation(moon, sun) < 180
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
