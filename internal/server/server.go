// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package server exposes the catalogue query engines over HTTP.
//
// Every request re-reads its snapshot file(s) from disk: there is no cache
// and no shared mutable state, so concurrent requests are independent. The
// handlers return exactly three shapes: a page envelope, a 400 for an
// unsupported country, or a generic 500 whose detail stays in the server log.
package server

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/pdiddy/catalog-server/internal/snapshot"
	"github.com/pdiddy/catalog-server/pkg/types"
)

// Server serves the catalogue API and optional static assets.
type Server struct {
	cfg      types.ServerConfig
	manifest snapshot.Manifest
	logger   *slog.Logger
}

// New creates a Server. A nil logger falls back to slog.Default().
func New(cfg types.ServerConfig, manifest snapshot.Manifest, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.AllowedOrigin == "" {
		cfg.AllowedOrigin = "*"
	}
	if cfg.RateBurst <= 0 {
		cfg.RateBurst = 20
	}
	return &Server{cfg: cfg, manifest: manifest, logger: logger}
}

// Handler builds the full middleware-wrapped handler chain.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/courses", s.handleCourses)
	mux.HandleFunc("/api/scholarships", s.handleScholarships)
	mux.HandleFunc("/api/health", s.handleHealth)

	if s.cfg.PublicDir != "" {
		if info, err := os.Stat(s.cfg.PublicDir); err == nil && info.IsDir() {
			mux.Handle("/", http.FileServer(http.Dir(s.cfg.PublicDir)))
		}
	}

	var h http.Handler = mux
	if s.cfg.RateLimit > 0 {
		h = s.rateLimit(h)
	}
	h = s.cors(h)
	h = s.logRequests(h)
	return h
}

// ListenAndServe runs the server until the listener fails.
func (s *Server) ListenAndServe() error {
	s.logger.Info("catalogue server listening",
		"addr", s.cfg.Addr,
		"origins", s.manifest.Origins())
	return http.ListenAndServe(s.cfg.Addr, s.Handler())
}
