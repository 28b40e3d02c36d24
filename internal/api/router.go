package api

import (
	"jyotish-service/internal/api/handlers"
	"jyotish-service/internal/catalog"
	"jyotish-service/internal/ports"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Dependencies are the ports the HTTP layer needs. Cache, Geocoder, Seeded
// and DB are optional.
type Dependencies struct {
	Profiles ports.ProfileRepository
	Zones    ports.ZoneResolver
	Cache    ports.ChartCache
	Geocoder ports.Geocoder
	Catalog  *catalog.Catalog
	Picker   ports.Picker
	Seeded   func(seed uint64) ports.Picker
	DB       handlers.Pinger
}

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(deps Dependencies) http.Handler {
	mux := http.NewServeMux()

	healthHandler := &handlers.HealthHandler{DB: deps.DB}
	chartHandler := &handlers.ChartHandler{
		Zones:    deps.Zones,
		Cache:    deps.Cache,
		Catalog:  deps.Catalog,
		Picker:   deps.Picker,
		Geocoder: deps.Geocoder,
		Seeded:   deps.Seeded,
	}
	profileHandler := &handlers.ProfileHandler{
		Repo:    deps.Profiles,
		Zones:   deps.Zones,
		Cache:   deps.Cache,
		Catalog: deps.Catalog,
		Picker:  deps.Picker,
	}
	refHandler := &handlers.ReferenceHandler{Catalog: deps.Catalog}

	mux.HandleFunc("/health", healthHandler.Health)
	mux.HandleFunc("/charts", chartHandler.Cast)
	mux.HandleFunc("/profiles", profileHandler.List)
	mux.HandleFunc("/profiles/charts", profileHandler.Charts)
	mux.HandleFunc("/reference", refHandler.Get)
	mux.Handle("/metrics", promhttp.Handler())

	return requestIDMiddleware(loggingMiddleware(mux))
}
