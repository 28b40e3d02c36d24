package services

import (
	"context"
	"errors"
	"jyotish-service/internal/adapters/geocode"
	"jyotish-service/internal/adapters/zones"
	"jyotish-service/internal/domain"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileChartsKeepsOrder(t *testing.T) {
	ctx := context.Background()
	r := zones.NewFixedResolver(map[string]int{"UTC": 0})

	later := j2000Birth()
	later.Day = 15
	repo := &memProfileRepo{profiles: []*domain.Profile{
		{ProfileID: 1, Name: "first", Birth: j2000Birth()},
		{ProfileID: 2, Name: "second", Birth: later},
		{ProfileID: 3, Name: "twin", Birth: j2000Birth()},
	}}

	got, err := ProfileCharts(ctx, repo, r, newMemChartCache())
	require.NoError(t, err)
	require.Len(t, got, 3)

	for i, pc := range got {
		assert.Equal(t, repo.profiles[i], pc.Profile)
		require.NotNil(t, pc.Chart)
		assert.Equal(t, pc.Profile.Birth, pc.Chart.Birth)
	}
	assert.Same(t, got[0].Chart, got[2].Chart)
}

func TestProfileChartsRepoError(t *testing.T) {
	repo := &memProfileRepo{err: errors.New("db gone")}

	_, err := ProfileCharts(context.Background(), repo, zones.NewFixedResolver(nil), nil)
	assert.Error(t, err)
}

func TestProfileChartByID(t *testing.T) {
	ctx := context.Background()
	r := zones.NewFixedResolver(map[string]int{"UTC": 0})
	repo := &memProfileRepo{profiles: []*domain.Profile{{ProfileID: 4, Name: "x", Birth: j2000Birth()}}}

	pc, err := ProfileChartByID(ctx, 4, repo, r, nil)
	require.NoError(t, err)
	assert.Equal(t, domain.Tula, pc.Chart.Moon.Sign)

	_, err = ProfileChartByID(ctx, 5, repo, r, nil)
	assert.ErrorIs(t, err, domain.ErrProfileNotFound)
}

func TestResolvePlace(t *testing.T) {
	ctx := context.Background()
	g := geocode.NewMockGeocoder(map[string]domain.Coordinates{
		"Pune":   {Lat: 18.5204, Lon: 73.8567},
		"Broken": {Lat: 95, Lon: 0},
	})

	c, err := ResolvePlace(ctx, g, "Pune")
	require.NoError(t, err)
	assert.Equal(t, 18.5204, c.Lat)

	_, err = ResolvePlace(ctx, g, "Atlantis")
	assert.ErrorIs(t, err, domain.ErrPlaceNotFound)

	_, err = ResolvePlace(ctx, g, "Broken")
	assert.ErrorIs(t, err, domain.ErrInvalidCoordinates)

	_, err = ResolvePlace(ctx, g, " ")
	assert.ErrorIs(t, err, domain.ErrPlaceNotFound)

	_, err = ResolvePlace(ctx, nil, "Pune")
	assert.Error(t, err)
}
