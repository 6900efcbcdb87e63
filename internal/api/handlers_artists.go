// ArtScout - Art Event and Artist Discovery
// Copyright 2026 ArtScout Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/artscout/artscout

package api

import (
	"html/template"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/errgroup"

	"github.com/artscout/artscout/internal/auth"
	"github.com/artscout/artscout/internal/logging"
	"github.com/artscout/artscout/internal/models"
	"github.com/artscout/artscout/internal/validation"
)

const (
	msgArtistsError      = "Error generating web page. Please try again."
	msgArtistFetchError  = "Error generating web page. Please try again later."
	msgArtistWikiError   = "Error retrieving artist information."
	msgFollowSuccess     = "Follow successful"
	msgFollowError       = "An error occurred while attempting to follow."
	msgProfileFetchError = "An error occurred while fetching profile data."
)

type artistsPage struct {
	Artists []models.ArtistProfile
	Message string
}

type artistPage struct {
	Artist *models.ArtistProfile
	// Biography is the Wikipedia extract, which arrives as HTML.
	Biography template.HTML
	Message   string
}

type profilePage struct {
	Username        string
	FollowedArtists []models.ArtistProfile
	UserEvents      []models.Event
}

// handleArtists renders the artist directory. A keyword query redirects
// straight to that artist's page.
func (s *Server) handleArtists(w http.ResponseWriter, r *http.Request) {
	if keyword := r.URL.Query().Get("keyword"); keyword != "" {
		http.Redirect(w, r, "/artist/"+url.PathEscape(keyword), http.StatusFound)
		return
	}

	artists, err := s.upstream.ArtistDirectory(r.Context())
	if err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Msg("artist directory fetch failed")
		s.templates.Render(w, r, http.StatusOK, "artists", artistsPage{Message: msgArtistsError})
		return
	}

	s.templates.Render(w, r, http.StatusOK, "artists", artistsPage{Artists: artists})
}

// handleArtist renders one artist's detail page.
func (s *Server) handleArtist(w http.ResponseWriter, r *http.Request) {
	artistID := chi.URLParam(r, "artistID")

	profile, err := s.upstream.ArtistProfile(r.Context(), artistID)
	if err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Str("artist_id", artistID).Msg("artist fetch failed")
		s.templates.Render(w, r, http.StatusOK, "artist", artistPage{Message: msgArtistFetchError})
		return
	}
	if profile.Biography == "" && profile.Thumbnail == "" {
		s.templates.Render(w, r, http.StatusOK, "artist", artistPage{Message: msgArtistWikiError})
		return
	}

	s.templates.Render(w, r, http.StatusOK, "artist", artistPage{
		Artist:    profile,
		Biography: template.HTML(profile.Biography),
	})
}

// handleFollow records the authenticated user following an artist.
// Responses are JSON either way; a store failure is the 500 surface.
func (s *Server) handleFollow(w http.ResponseWriter, r *http.Request) {
	session, _ := auth.SessionFromContext(r.Context())

	var req followRequest
	if err := decodeRequest(r, &req, func(get func(string) string) {
		req.ArtistID = get("artistId")
	}); err != nil {
		writeJSON(w, r, http.StatusInternalServerError, map[string]string{"message": msgFollowError})
		return
	}
	if err := validation.ValidateStruct(req); err != nil {
		writeJSON(w, r, http.StatusInternalServerError, map[string]string{"message": msgFollowError})
		return
	}

	if err := s.store.FollowArtist(r.Context(), session.UserID, req.ArtistID); err != nil {
		logging.Ctx(r.Context()).Error().Err(err).
			Int64("user_id", session.UserID).
			Str("artist_id", req.ArtistID).
			Msg("follow insert failed")
		writeJSON(w, r, http.StatusInternalServerError, map[string]string{"message": msgFollowError})
		return
	}

	writeJSON(w, r, http.StatusOK, map[string]string{"message": msgFollowSuccess})
}

// handleProfile renders the user's followed artists and submitted
// events. Store failures are the one page that answers 500.
func (s *Server) handleProfile(w http.ResponseWriter, r *http.Request) {
	session, _ := auth.SessionFromContext(r.Context())

	artistIDs, err := s.store.ListFollowedArtistIDs(r.Context(), session.UserID)
	if err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Msg("followed artists lookup failed")
		http.Error(w, msgProfileFetchError, http.StatusInternalServerError)
		return
	}

	userEvents, err := s.store.ListEventsByUser(r.Context(), session.UserID)
	if err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Msg("user events lookup failed")
		http.Error(w, msgProfileFetchError, http.StatusInternalServerError)
		return
	}

	s.templates.Render(w, r, http.StatusOK, "profile", profilePage{
		Username:        session.Username,
		FollowedArtists: s.enrichFollowedArtists(r, artistIDs),
		UserEvents:      userEvents,
	})
}

// enrichFollowedArtists resolves followed artist IDs against the
// upstream APIs. Enrichment is best-effort: an ID whose lookup fails
// still appears on the profile, just without name or thumbnail.
func (s *Server) enrichFollowedArtists(r *http.Request, artistIDs []string) []models.ArtistProfile {
	profiles := make([]models.ArtistProfile, len(artistIDs))

	g, ctx := errgroup.WithContext(r.Context())
	g.SetLimit(4)
	for i, id := range artistIDs {
		g.Go(func() error {
			profile, err := s.upstream.ArtistProfile(ctx, id)
			if err != nil {
				logging.Ctx(ctx).Warn().Err(err).Str("artist_id", id).Msg("profile enrichment failed")
				profiles[i] = models.ArtistProfile{ID: id}
				return nil
			}
			profiles[i] = *profile
			return nil
		})
	}
	_ = g.Wait() // goroutines never return errors

	return profiles
}
