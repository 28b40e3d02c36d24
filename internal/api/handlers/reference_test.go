package handlers

import (
	"encoding/json"
	"jyotish-service/internal/api/dto"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReferenceHandlerJSON(t *testing.T) {
	h := &ReferenceHandler{Catalog: testCatalog(t)}

	rec := httptest.NewRecorder()
	h.Get(rec, httptest.NewRequest(http.MethodGet, "/reference", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var res dto.ReferenceResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&res))
	assert.Contains(t, res.Significance, `"Big Three"`)
	require.Len(t, res.Birds, 5)
	assert.Equal(t, "Vulture", res.Birds[0].Name)
	assert.NotEmpty(t, res.StringTypes)
	for _, st := range res.StringTypes {
		assert.NotEmpty(t, st.Description, st.Name)
	}
}

func TestReferenceHandlerMarkdown(t *testing.T) {
	h := &ReferenceHandler{Catalog: testCatalog(t)}

	rec := httptest.NewRecorder()
	h.Get(rec, httptest.NewRequest(http.MethodGet, "/reference?format=markdown", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, markdownContentType, rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), "## Meanings of All Birds in Pancha Pakshi Shastra")
}
