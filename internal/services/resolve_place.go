package services

import (
	"context"
	"errors"
	"fmt"
	"jyotish-service/internal/domain"
	"jyotish-service/internal/ports"
	"strings"
)

// ResolvePlace turns a place name into validated birth coordinates.
func ResolvePlace(ctx context.Context, geocoder ports.Geocoder, place string) (domain.Coordinates, error) {
	if geocoder == nil {
		return domain.Coordinates{}, errors.New("resolve place: no geocoder configured")
	}
	if strings.TrimSpace(place) == "" {
		return domain.Coordinates{}, fmt.Errorf("resolve place: %w: empty place", domain.ErrPlaceNotFound)
	}

	c, err := geocoder.Geocode(ctx, place)
	if err != nil {
		return domain.Coordinates{}, fmt.Errorf("resolve place: %w", err)
	}
	if err := c.Validate(); err != nil {
		return domain.Coordinates{}, fmt.Errorf("resolve place %q: %w", place, err)
	}

	return c, nil
}
