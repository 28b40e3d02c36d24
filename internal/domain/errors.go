package domain

import "errors"

var (
	ErrInvalidBirth       = errors.New("invalid birth data")
	ErrInvalidCoordinates = errors.New("invalid coordinates")
	ErrUnknownZone        = errors.New("unknown time zone")
	ErrProfileNotFound    = errors.New("profile not found")
	ErrPlaceNotFound      = errors.New("place not found")
)
