package handlers

import (
	"jyotish-service/internal/api/dto"
	"jyotish-service/internal/catalog"
	"jyotish-service/internal/ports"
	"jyotish-service/internal/services"
	"net/http"
	"strconv"
)

// ProfileHandler exposes stored birth profiles and their charts.
type ProfileHandler struct {
	Repo    ports.ProfileRepository
	Zones   ports.ZoneResolver
	Cache   ports.ChartCache
	Catalog *catalog.Catalog
	Picker  ports.Picker
}

func (h *ProfileHandler) List(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}

	profiles, err := h.Repo.ListProfiles(r.Context())
	if err != nil {
		logFailure(r, "list profiles failed", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListProfilesResponse{
		Profiles: make([]dto.ProfileResponse, 0, len(profiles)),
	}
	for _, p := range profiles {
		res.Profiles = append(res.Profiles, toProfileResponse(p))
	}

	writeJSON(w, r, http.StatusOK, res)
}

// Charts returns every profile's chart, or one profile's with ?id=.
func (h *ProfileHandler) Charts(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}

	var (
		charts []services.ProfileChart
		err    error
	)
	if raw := r.URL.Query().Get("id"); raw != "" {
		id, convErr := strconv.Atoi(raw)
		if convErr != nil || id < 1 {
			writeError(w, r, http.StatusBadRequest, "id must be a positive integer")
			return
		}
		var pc services.ProfileChart
		pc, err = services.ProfileChartByID(r.Context(), id, h.Repo, h.Zones, h.Cache)
		charts = []services.ProfileChart{pc}
	} else {
		charts, err = services.ProfileCharts(r.Context(), h.Repo, h.Zones, h.Cache)
	}
	if err != nil {
		if status, msg, ok := clientError(err); ok {
			writeError(w, r, status, msg)
			return
		}
		logFailure(r, "profile charts failed", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListProfileChartsResponse{
		Charts: make([]dto.ProfileChartResponse, 0, len(charts)),
	}
	for _, pc := range charts {
		reading := services.Describe(*pc.Chart, h.Catalog, h.Picker)
		res.Charts = append(res.Charts, dto.ProfileChartResponse{
			Profile: toProfileResponse(pc.Profile),
			Chart:   toChartResponse(pc.Chart),
			Reading: toReadingResponse(reading),
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}
