package services

import (
	"context"
	"errors"
	"jyotish-service/internal/domain"
	"sync"
)

type memChartCache struct {
	mu     sync.Mutex
	m      map[string]*domain.Chart
	gets   int
	puts   int
	failOn string
}

func newMemChartCache() *memChartCache {
	return &memChartCache{m: map[string]*domain.Chart{}}
}

func (c *memChartCache) GetMany(ctx context.Context, keys []string) (map[string]*domain.Chart, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.gets++
	if c.failOn == "get" {
		return nil, errors.New("cache down")
	}

	out := map[string]*domain.Chart{}
	for _, k := range keys {
		if v, ok := c.m[k]; ok {
			out[k] = v
		}
	}
	return out, nil
}

func (c *memChartCache) PutMany(ctx context.Context, charts map[string]*domain.Chart) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.puts++
	if c.failOn == "put" {
		return errors.New("cache down")
	}

	for k, v := range charts {
		c.m[k] = v
	}
	return nil
}

type memProfileRepo struct {
	profiles []*domain.Profile
	err      error
}

func (r *memProfileRepo) ListProfiles(ctx context.Context) ([]*domain.Profile, error) {
	return r.profiles, r.err
}

func (r *memProfileRepo) GetProfile(ctx context.Context, id int) (*domain.Profile, error) {
	for _, p := range r.profiles {
		if p.ProfileID == id {
			return p, nil
		}
	}
	return nil, domain.ErrProfileNotFound
}
