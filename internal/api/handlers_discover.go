// ArtScout - Art Event and Artist Discovery
// Copyright 2026 ArtScout Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/artscout/artscout

package api

import (
	"net/http"

	"github.com/artscout/artscout/internal/logging"
	"github.com/artscout/artscout/internal/upstream"
)

const msgDiscoverError = "An error occurred while fetching data from the Artsy API."

type discoverPage struct {
	Fairs    []upstream.Fair
	Artworks []upstream.Artwork
	Artists  []upstream.TrendingArtist
	Message  string
}

// handleDiscover renders the landing page with fairs, artworks, and
// trending artists. Any upstream failure renders the page empty with a
// generic message rather than erroring.
func (s *Server) handleDiscover(w http.ResponseWriter, r *http.Request) {
	result, err := s.upstream.Discover(r.Context())
	if err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Msg("discover fetch failed")
		s.templates.Render(w, r, http.StatusOK, "discover", discoverPage{Message: msgDiscoverError})
		return
	}

	s.templates.Render(w, r, http.StatusOK, "discover", discoverPage{
		Fairs:    result.Fairs,
		Artworks: result.Artworks,
		Artists:  result.Artists,
	})
}

type artworksPage struct {
	Artworks []upstream.Artwork
}

// handleArtworks renders the standalone artwork gallery, a larger
// random sample than the discover page carries. On a fetch failure the
// visitor is sent back to discover.
func (s *Server) handleArtworks(w http.ResponseWriter, r *http.Request) {
	artworks, err := s.upstream.ArtworkGallery(r.Context())
	if err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Msg("artwork gallery fetch failed")
		http.Redirect(w, r, "/discover", http.StatusFound)
		return
	}

	s.templates.Render(w, r, http.StatusOK, "artworks", artworksPage{Artworks: artworks})
}

// handleWelcome is the public health endpoint.
func (s *Server) handleWelcome(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, map[string]string{
		"status":  "success",
		"message": "Welcome!",
	})
}
