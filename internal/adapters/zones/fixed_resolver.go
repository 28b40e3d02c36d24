package zones

import (
	"fmt"
	"jyotish-service/internal/domain"
	"time"
)

// FixedResolver serves constant-offset zones from a table of name ->
// seconds east of UTC. Useful where the tz database is irrelevant.
type FixedResolver struct {
	offsets map[string]int
}

func NewFixedResolver(offsets map[string]int) *FixedResolver {
	m := make(map[string]int, len(offsets))
	for k, v := range offsets {
		m[k] = v
	}
	return &FixedResolver{offsets: m}
}

func (r *FixedResolver) Resolve(name string) (*time.Location, error) {
	off, ok := r.offsets[name]
	if !ok {
		return nil, fmt.Errorf("resolve zone %q: %w", name, domain.ErrUnknownZone)
	}
	return time.FixedZone(name, off), nil
}
