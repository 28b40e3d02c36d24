package ports

import (
	"context"
	"jyotish-service/internal/domain"
)

// Port: persistent store of computed charts keyed by domain.BirthData.Key.
type ChartCache interface {
	// Return cached charts for the keys that are present; missing keys are omitted.
	GetMany(ctx context.Context, keys []string) (map[string]*domain.Chart, error)
	// Store charts under their keys, replacing existing entries.
	PutMany(ctx context.Context, charts map[string]*domain.Chart) error
}
