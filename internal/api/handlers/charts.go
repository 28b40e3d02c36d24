package handlers

import (
	"errors"
	"jyotish-service/internal/api/dto"
	"jyotish-service/internal/catalog"
	"jyotish-service/internal/domain"
	"jyotish-service/internal/ports"
	"jyotish-service/internal/render"
	"jyotish-service/internal/services"
	"net/http"
	"strings"
)

// ChartHandler casts a chart and its reading for a submitted birth.
type ChartHandler struct {
	Zones   ports.ZoneResolver
	Cache   ports.ChartCache
	Catalog *catalog.Catalog
	Picker  ports.Picker

	// Optional. Nil disables the "place" field.
	Geocoder ports.Geocoder
	// Optional. Builds a picker for requests that carry a seed.
	Seeded func(seed uint64) ports.Picker
}

func (h *ChartHandler) Cast(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}

	markdown, ok := wantsMarkdown(r)
	if !ok {
		writeError(w, r, http.StatusBadRequest, "format must be json or markdown")
		return
	}

	var req dto.ChartRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	var coords domain.Coordinates
	switch {
	case strings.TrimSpace(req.Place) != "":
		if h.Geocoder == nil {
			writeError(w, r, http.StatusBadRequest, "place lookup is not configured; send latitude and longitude")
			return
		}
		c, err := services.ResolvePlace(r.Context(), h.Geocoder, req.Place)
		if errors.Is(err, domain.ErrPlaceNotFound) {
			writeError(w, r, http.StatusNotFound, "place not found")
			return
		}
		if err != nil {
			logFailure(r, "resolve place failed", err)
			writeError(w, r, http.StatusBadGateway, "place lookup failed")
			return
		}
		coords = c
	case req.Latitude != nil && req.Longitude != nil:
		coords = domain.Coordinates{Lat: *req.Latitude, Lon: *req.Longitude}
	default:
		writeError(w, r, http.StatusBadRequest, "latitude and longitude (or place) are required")
		return
	}

	birth, err := domain.ParseBirthData(req.Date, req.Time, req.Timezone, coords.Lat, coords.Lon)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	chart, err := services.CastChart(r.Context(), birth, h.Zones, h.Cache)
	if err != nil {
		if status, msg, ok := clientError(err); ok {
			writeError(w, r, status, msg)
			return
		}
		logFailure(r, "cast chart failed", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	picker := h.Picker
	if req.Seed != nil && h.Seeded != nil {
		picker = h.Seeded(*req.Seed)
	}
	reading := services.Describe(*chart, h.Catalog, picker)

	if markdown {
		writeMarkdown(w, r, http.StatusOK, render.Snapshot(reading))
		return
	}

	writeJSON(w, r, http.StatusOK, dto.CastChartResponse{
		Chart:   toChartResponse(chart),
		Reading: toReadingResponse(reading),
	})
}

// clientError maps caller mistakes to a status and a safe message.
func clientError(err error) (int, string, bool) {
	switch {
	case errors.Is(err, domain.ErrUnknownZone):
		return http.StatusBadRequest, "unknown time zone", true
	case errors.Is(err, domain.ErrInvalidBirth), errors.Is(err, domain.ErrInvalidCoordinates):
		return http.StatusBadRequest, "invalid birth data", true
	case errors.Is(err, domain.ErrProfileNotFound):
		return http.StatusNotFound, "profile not found", true
	}
	return 0, "", false
}
