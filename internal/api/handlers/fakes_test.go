package handlers

import (
	"context"
	"errors"
	"jyotish-service/internal/adapters/random"
	"jyotish-service/internal/adapters/zones"
	"jyotish-service/internal/catalog"
	"jyotish-service/internal/domain"
	"testing"
)

type memProfileRepo struct {
	profiles []*domain.Profile
	err      error
}

func (r *memProfileRepo) ListProfiles(ctx context.Context) ([]*domain.Profile, error) {
	return r.profiles, r.err
}

func (r *memProfileRepo) GetProfile(ctx context.Context, id int) (*domain.Profile, error) {
	if r.err != nil {
		return nil, r.err
	}
	for _, p := range r.profiles {
		if p.ProfileID == id {
			return p, nil
		}
	}
	return nil, domain.ErrProfileNotFound
}

var errRepoDown = errors.New("repo down")

func testZones() *zones.FixedResolver {
	return zones.NewFixedResolver(map[string]int{
		"UTC":          0,
		"Asia/Kolkata": 5*3600 + 30*60,
	})
}

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.Default()
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}
	return cat
}

func j2000Profile() *domain.Profile {
	return &domain.Profile{
		ProfileID: 1,
		Name:      "J2000 Greenwich",
		Birth: domain.BirthData{
			Year: 2000, Month: 1, Day: 1, Hour: 12, Minute: 0,
			Zone: "UTC",
		},
	}
}

var fixedPicker = random.Fixed(0)
