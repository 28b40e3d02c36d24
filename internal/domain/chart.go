package domain

import "time"

// Position is one point's ecliptic longitude in both zodiacs, in degrees.
type Position struct {
	Tropical float64 `json:"tropical"`
	Sidereal float64 `json:"sidereal"`
	Sign     Sign    `json:"sign"`
}

// Chart is the computed sky for a birth: three sidereal positions, the
// Moon's mansion and quarter, and the fortnight. The sign of the Moon
// is the chart's rashi.
type Chart struct {
	Birth      BirthData `json:"birth"`
	UTC        time.Time `json:"utc"`
	JulianDay  float64   `json:"julian_day"`
	Ayanamsa   float64   `json:"ayanamsa"`
	Sun        Position  `json:"sun"`
	Moon       Position  `json:"moon"`
	Ascendant  Position  `json:"ascendant"`
	Elongation float64   `json:"elongation"`
	Nakshatra  Nakshatra `json:"nakshatra"`
	Pada       int       `json:"pada"`
	Paksha     Paksha    `json:"paksha"`
}
