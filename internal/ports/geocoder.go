package ports

import (
	"context"
	"jyotish-service/internal/domain"
)

// Contract for resolving a free-text place name to coordinates.
type Geocoder interface {
	Geocode(ctx context.Context, place string) (domain.Coordinates, error)
}

// Port: cache of place name -> coordinates lookups.
type PlaceCache interface {
	GetMany(ctx context.Context, places []string) (map[string]domain.Coordinates, error)
	PutMany(ctx context.Context, results map[string]domain.Coordinates) error
}
