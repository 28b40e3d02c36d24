package astro

import "math"

// Normalize folds an angle in degrees into [0, 360).
// Non-finite input folds to 0.
func Normalize(deg float64) float64 {
	if math.IsNaN(deg) || math.IsInf(deg, 0) {
		return 0
	}

	r := math.Mod(deg, 360)
	if r < 0 {
		r += 360
	}
	// -1e-17 + 360 rounds up to 360.
	if r >= 360 {
		r = 0
	}
	return r
}

// Separation returns the shortest angular distance between two longitudes.
func Separation(a, b float64) float64 {
	d := Normalize(a - b)
	if d > 180 {
		d = 360 - d
	}
	return d
}

func rad(deg float64) float64 { return deg * math.Pi / 180 }

func deg(rad float64) float64 { return rad * 180 / math.Pi }

func sinDeg(x float64) float64 { return math.Sin(rad(x)) }
