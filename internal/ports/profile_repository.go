package ports

import (
	"context"
	"jyotish-service/internal/domain"
)

// Port: a boundary for retrieving stored birth profiles.
type ProfileRepository interface {
	// Retrieve all profiles ordered by id.
	ListProfiles(ctx context.Context) ([]*domain.Profile, error)
	// Retrieve one profile; a missing id wraps domain.ErrProfileNotFound.
	GetProfile(ctx context.Context, id int) (*domain.Profile, error)
}
