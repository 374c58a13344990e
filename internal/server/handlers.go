// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/pdiddy/catalog-server/internal/programmes"
	"github.com/pdiddy/catalog-server/internal/scholarships"
	"github.com/pdiddy/catalog-server/internal/snapshot"
)

// Client-facing error bodies. Internal detail (paths, parse errors) is
// logged server-side only.
const (
	msgUnsupportedCountry = "Unsupported country"
	msgServerError        = "Server error"
)

const defaultPageSize = 10

// ----------------------------------------------------------------------------
// GET /api/courses
// ----------------------------------------------------------------------------

// handleCourses serves one page of programmes for a country. The country tag
// is validated against the manifest before any file is touched.
func (s *Server) handleCourses(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	country := r.URL.Query().Get("country")
	path, err := s.manifest.ProgrammePath(country)
	if err != nil {
		if errors.Is(err, snapshot.ErrUnsupportedOrigin) {
			writeJSONError(w, http.StatusBadRequest, msgUnsupportedCountry)
			return
		}
		s.logger.Error("resolving programme snapshot", "country", country, "error", err)
		writeJSONError(w, http.StatusInternalServerError, msgServerError)
		return
	}

	records, err := snapshot.Load(path)
	if err != nil {
		s.logger.Error("loading programme snapshot", "country", country, "error", err)
		writeJSONError(w, http.StatusInternalServerError, msgServerError)
		return
	}

	page, pageSize := pageParams(r)
	result := programmes.Query(country, records, r.URL.Query().Get("q"), page, pageSize)
	writeJSON(w, http.StatusOK, result)
}

// ----------------------------------------------------------------------------
// GET /api/scholarships
// ----------------------------------------------------------------------------

func (s *Server) handleScholarships(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	mainPath, stepsPath := s.manifest.ScholarshipPaths()
	main, details, err := snapshot.LoadPair(r.Context(), mainPath, stepsPath)
	if err != nil {
		s.logger.Error("loading scholarship snapshots", "error", err)
		writeJSONError(w, http.StatusInternalServerError, msgServerError)
		return
	}

	q := r.URL.Query()
	filters := scholarships.Filters{
		Country:  q.Get("country"),
		Level:    q.Get("level"),
		Deadline: q.Get("deadline"),
		Text:     q.Get("q"),
	}

	page, pageSize := pageParams(r)
	result := scholarships.Query(main, details, filters, page, pageSize)
	writeJSON(w, http.StatusOK, result)
}

// ----------------------------------------------------------------------------
// GET /api/health
// ----------------------------------------------------------------------------

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

// ----------------------------------------------------------------------------
// helpers
// ----------------------------------------------------------------------------

// pageParams reads page and pageSize. Absent or unparseable values fall back
// to page 1 and ten records; explicit out-of-range values (page=0,
// pageSize=1000) are clamped by the engines, never rejected.
func pageParams(r *http.Request) (page, pageSize int) {
	q := r.URL.Query()
	page = 1
	if v, err := strconv.Atoi(q.Get("page")); err == nil {
		page = v
	}
	pageSize = defaultPageSize
	if v, err := strconv.Atoi(q.Get("pageSize")); err == nil {
		pageSize = v
	}
	return page, pageSize
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// Status and headers are already on the wire; nothing left to do.
		_ = err
	}
}

func writeJSONError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
