package domain

// Profile is a stored, named birth record.
type Profile struct {
	ProfileID int
	Name      string
	Birth     BirthData
}
