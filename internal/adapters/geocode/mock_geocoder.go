package geocode

import (
	"context"
	"fmt"
	"jyotish-service/internal/domain"
)

// MockGeocoder answers from a fixed table keyed by normalized place name.
type MockGeocoder struct {
	m map[string]domain.Coordinates
}

func NewMockGeocoder(places map[string]domain.Coordinates) *MockGeocoder {
	m := make(map[string]domain.Coordinates, len(places))
	for k, v := range places {
		m[normalize(k)] = v
	}
	return &MockGeocoder{m: m}
}

func (g *MockGeocoder) Geocode(ctx context.Context, place string) (domain.Coordinates, error) {
	c, ok := g.m[normalize(place)]
	if !ok {
		return domain.Coordinates{}, fmt.Errorf("geocode %q: %w", place, domain.ErrPlaceNotFound)
	}
	return c, nil
}
