package handlers

import (
	"jyotish-service/internal/catalog"
	"jyotish-service/internal/render"
	"net/http"
)

// ReferenceHandler serves the static explanatory text: sign roles, birds
// and string types.
type ReferenceHandler struct {
	Catalog *catalog.Catalog
}

func (h *ReferenceHandler) Get(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}

	markdown, ok := wantsMarkdown(r)
	if !ok {
		writeError(w, r, http.StatusBadRequest, "format must be json or markdown")
		return
	}
	if markdown {
		writeMarkdown(w, r, http.StatusOK, render.Reference(h.Catalog))
		return
	}

	writeJSON(w, r, http.StatusOK, toReferenceResponse(h.Catalog))
}
