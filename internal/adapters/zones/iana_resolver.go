package zones

import (
	"fmt"
	"jyotish-service/internal/domain"
	"strings"
	"sync"
	"time"
	_ "time/tzdata"
)

// IANAResolver resolves zone names against the tz database, falling back to
// the copy embedded in the binary. Loaded locations are memoized.
type IANAResolver struct {
	mu   sync.RWMutex
	locs map[string]*time.Location
}

func NewIANAResolver() *IANAResolver {
	return &IANAResolver{locs: make(map[string]*time.Location)}
}

func (r *IANAResolver) Resolve(name string) (*time.Location, error) {
	name = strings.TrimSpace(name)
	// "" and "Local" would silently mean UTC or the server's own zone.
	if name == "" || name == "Local" {
		return nil, fmt.Errorf("resolve zone %q: %w", name, domain.ErrUnknownZone)
	}

	r.mu.RLock()
	loc, ok := r.locs[name]
	r.mu.RUnlock()
	if ok {
		return loc, nil
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("resolve zone %q: %w", name, domain.ErrUnknownZone)
	}

	r.mu.Lock()
	r.locs[name] = loc
	r.mu.Unlock()

	return loc, nil
}
