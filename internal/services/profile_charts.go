package services

import (
	"context"
	"fmt"
	"jyotish-service/internal/domain"
	"jyotish-service/internal/platform/obs"
	"jyotish-service/internal/ports"
)

type ProfileChart struct {
	Profile *domain.Profile
	Chart   *domain.Chart
}

// ProfileCharts casts the chart of every stored profile, in profile order.
func ProfileCharts(
	ctx context.Context,
	repo ports.ProfileRepository,
	zones ports.ZoneResolver,
	cache ports.ChartCache,
) (_ []ProfileChart, err error) {
	defer obs.Time(ctx, "charts.ProfileCharts")(&err)

	profiles, err := repo.ListProfiles(ctx)
	if err != nil {
		return nil, fmt.Errorf("profile charts: list profiles: %w", err)
	}

	births := make([]domain.BirthData, 0, len(profiles))
	for _, p := range profiles {
		births = append(births, p.Birth)
	}

	charts, err := CastCharts(ctx, births, zones, cache)
	if err != nil {
		return nil, fmt.Errorf("profile charts: %w", err)
	}

	out := make([]ProfileChart, 0, len(profiles))
	for _, p := range profiles {
		out = append(out, ProfileChart{Profile: p, Chart: charts[p.Birth.Key()]})
	}

	return out, nil
}

// ProfileChartByID casts the chart of one stored profile.
func ProfileChartByID(
	ctx context.Context,
	id int,
	repo ports.ProfileRepository,
	zones ports.ZoneResolver,
	cache ports.ChartCache,
) (ProfileChart, error) {
	p, err := repo.GetProfile(ctx, id)
	if err != nil {
		return ProfileChart{}, fmt.Errorf("profile chart: %w", err)
	}

	c, err := CastChart(ctx, p.Birth, zones, cache)
	if err != nil {
		return ProfileChart{}, fmt.Errorf("profile chart %d: %w", id, err)
	}

	return ProfileChart{Profile: p, Chart: c}, nil
}
