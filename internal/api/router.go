// ArtScout - Art Event and Artist Discovery
// Copyright 2026 ArtScout Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/artscout/artscout

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/artscout/artscout/internal/middleware"
)

// Routes assembles the chi router: public auth and health endpoints,
// the session-guarded site, and static assets.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   s.cfg.Security.CORSOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-ID"},
		AllowCredentials: true,
	}))
	r.Use(middleware.PrometheusMetrics)
	r.Use(httprate.LimitByIP(s.cfg.Security.RateLimitReqs, s.cfg.Security.RateLimitWindow))

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/discover", http.StatusFound)
	})
	r.Get("/welcome", s.handleWelcome)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())
	r.Handle("/resources/*", http.StripPrefix("/resources/", http.FileServer(http.FS(StaticFS()))))

	// Credential endpoints carry a tighter per-IP limit.
	r.Group(func(r chi.Router) {
		r.Use(httprate.LimitByIP(s.cfg.Security.LoginRateLimitReqs, s.cfg.Security.LoginRateLimitWindow))
		r.Get("/login", s.handleLoginPage)
		r.Post("/login", s.handleLogin)
		r.Get("/register", s.handleRegisterPage)
		r.Post("/register", s.handleRegister)
	})

	// Everything behind the session guard.
	r.Group(func(r chi.Router) {
		r.Use(s.sessions.RequireSession)
		r.Get("/logout", s.handleLogout)
		r.Get("/discover", s.handleDiscover)
		r.Get("/artworks", s.handleArtworks)
		r.Get("/events", s.handleEventsPage)
		r.Post("/events", s.handleEventsForLocation)
		r.Post("/addEvent", s.handleAddEvent)
		r.Get("/artists", s.handleArtists)
		r.Get("/artist/{artistID}", s.handleArtist)
		r.Post("/follow", s.handleFollow)
		r.Get("/profile", s.handleProfile)
	})

	return r
}
