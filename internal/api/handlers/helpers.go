package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"jyotish-service/internal/platform/obs"
	"net/http"

	"github.com/rs/zerolog/log"
)

const markdownContentType = "text/markdown; charset=utf-8"

var (
	errBadJSON      = errors.New("invalid json body")
	errTrailingJSON = errors.New("body must contain only one JSON object")
)

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().
			Str("req_id", obs.RequestID(r.Context())).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Err(err).
			Msg("encode failed")
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, r, status, map[string]string{"error": msg})
}

func writeMarkdown(w http.ResponseWriter, r *http.Request, status int, body string) {
	w.Header().Set("Content-Type", markdownContentType)
	w.WriteHeader(status)
	if _, err := io.WriteString(w, body); err != nil {
		log.Error().
			Str("req_id", obs.RequestID(r.Context())).
			Str("path", r.URL.Path).
			Err(err).
			Msg("write failed")
	}
}

// allowMethod writes 405 and returns false unless r uses method.
func allowMethod(w http.ResponseWriter, r *http.Request, method string) bool {
	if r.Method == method {
		return true
	}
	w.Header().Set("Allow", method)
	writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
	return false
}

// decodeJSON reads exactly one JSON object with no unknown fields into v.
func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(v); err != nil {
		return errBadJSON
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return errTrailingJSON
	}
	return nil
}

// wantsMarkdown reports the ?format= choice; ok is false for unknown formats.
func wantsMarkdown(r *http.Request) (markdown bool, ok bool) {
	switch r.URL.Query().Get("format") {
	case "", "json":
		return false, true
	case "markdown", "md":
		return true, true
	default:
		return false, false
	}
}

func logFailure(r *http.Request, msg string, err error) {
	log.Error().
		Str("req_id", obs.RequestID(r.Context())).
		Str("path", r.URL.Path).
		Err(err).
		Msg(msg)
}
