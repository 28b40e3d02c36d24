package geocode

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"jyotish-service/internal/domain"
	"jyotish-service/internal/platform/metrics"
	"jyotish-service/internal/platform/obs"
	"jyotish-service/internal/ports"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

// ORSGeocoder implements ports.Geocoder using the OpenRouteService
// /geocode/search endpoint, with an optional persistent place cache.
//
// The geocoder is safe for concurrent use.
type ORSGeocoder struct {
	session   *http.Client
	apiKey    string
	baseURL   string
	retryBase time.Duration
	cache     ports.PlaceCache
}

type Option func(*ORSGeocoder)

func WithBaseURL(u string) Option {
	return func(o *ORSGeocoder) { o.baseURL = strings.TrimRight(u, "/") }
}

func WithHTTPClient(c *http.Client) Option {
	return func(o *ORSGeocoder) { o.session = c }
}

// WithRetryBackoff sets the first retry delay; later delays double.
func WithRetryBackoff(d time.Duration) Option {
	return func(o *ORSGeocoder) { o.retryBase = d }
}

func NewORSGeocoder(apiKey string, cache ports.PlaceCache, opts ...Option) (*ORSGeocoder, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("ORS api key is empty")
	}

	g := &ORSGeocoder{
		session:   &http.Client{Timeout: 10 * time.Second},
		apiKey:    apiKey,
		baseURL:   "https://api.openrouteservice.org",
		retryBase: 200 * time.Millisecond,
		cache:     cache,
	}
	for _, opt := range opts {
		opt(g)
	}

	return g, nil
}

// normalize ensures consistent cache keys by collapsing whitespace.
func normalize(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

type geocodeResponse struct {
	Features []struct {
		Geometry struct {
			Coordinates []float64 `json:"coordinates"`
		} `json:"geometry"`
	} `json:"features"`
}

// Geocode resolves a place name to coordinates, consulting the cache first.
func (o *ORSGeocoder) Geocode(ctx context.Context, place string) (_ domain.Coordinates, err error) {
	defer obs.Time(ctx, "ors.Geocode")(&err)

	norm := normalize(place)
	if norm == "" {
		return domain.Coordinates{}, errors.New("geocode: place must be non-empty")
	}

	if o.cache != nil {
		hits, err := o.cache.GetMany(ctx, []string{norm})
		if err != nil {
			log.Warn().Err(err).Str("place", norm).Msg("place cache read failed")
		} else if c, ok := hits[norm]; ok {
			metrics.GeocodeLookupsTotal.WithLabelValues("cache_hit").Inc()
			return c, nil
		}
	}

	c, err := o.fetch(ctx, norm)
	if err != nil {
		metrics.GeocodeLookupsTotal.WithLabelValues("error").Inc()
		return domain.Coordinates{}, err
	}
	metrics.GeocodeLookupsTotal.WithLabelValues("fetched").Inc()

	if o.cache != nil {
		if err := o.cache.PutMany(ctx, map[string]domain.Coordinates{norm: c}); err != nil {
			log.Warn().Err(err).Str("place", norm).Msg("place cache write failed")
		}
	}

	return c, nil
}

func (o *ORSGeocoder) fetch(ctx context.Context, norm string) (domain.Coordinates, error) {
	endpoint := o.baseURL + "/geocode/search"

	resp, err := o.doWithRetry(ctx, func() (*http.Request, error) {
		req, err := o.newRequest(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return nil, err
		}
		q := req.URL.Query()
		q.Set("text", norm)
		q.Set("size", "1")
		req.URL.RawQuery = q.Encode()
		return req, nil
	})
	if err != nil {
		return domain.Coordinates{}, fmt.Errorf("geocode %q: execute request: %w", norm, err)
	}
	defer resp.Body.Close()

	var decoded geocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return domain.Coordinates{}, fmt.Errorf("geocode %q: decode response: %w", norm, err)
	}

	if len(decoded.Features) == 0 {
		return domain.Coordinates{}, fmt.Errorf("geocode %q: %w", norm, domain.ErrPlaceNotFound)
	}

	coords := decoded.Features[0].Geometry.Coordinates
	if len(coords) != 2 {
		return domain.Coordinates{}, fmt.Errorf("geocode %q: invalid coordinate format", norm)
	}

	c := domain.Coordinates{Lon: coords[0], Lat: coords[1]}
	if err := c.Validate(); err != nil {
		return domain.Coordinates{}, fmt.Errorf("geocode %q: %w", norm, err)
	}

	return c, nil
}
