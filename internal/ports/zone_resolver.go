package ports

import "time"

// Contract for turning an IANA zone name into a location with its historical offsets.
type ZoneResolver interface {
	// Return the named zone; unknown names wrap domain.ErrUnknownZone.
	Resolve(name string) (*time.Location, error)
}
