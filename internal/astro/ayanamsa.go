package astro

const (
	ayanamsaAtJ2000 = 23.853  // degrees
	precessionRate  = 50.2719 // arcseconds per Julian year
	julianYear      = 365.25
)

// Ayanamsa returns the tropical-to-sidereal offset in degrees, growing
// linearly from its J2000 value.
func Ayanamsa(jd JulianDay) float64 {
	years := jd.DaysSinceJ2000() / julianYear
	return ayanamsaAtJ2000 + years*(precessionRate/3600)
}

// Sidereal subtracts the ayanamsa from a tropical longitude.
func Sidereal(tropical, ayanamsa float64) float64 {
	return Normalize(tropical - ayanamsa)
}
