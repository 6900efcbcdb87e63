// ArtScout - Art Event and Artist Discovery
// Copyright 2026 ArtScout Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/artscout/artscout

// Package api is the HTTP surface of the site: the chi router, the
// page handlers, and the server-rendered templates.
package api

import (
	"context"
	"time"

	"github.com/artscout/artscout/internal/auth"
	"github.com/artscout/artscout/internal/config"
	"github.com/artscout/artscout/internal/events"
	"github.com/artscout/artscout/internal/models"
	"github.com/artscout/artscout/internal/upstream"
)

// Store is the persistence surface the handlers need. *database.DB
// implements it; tests substitute fakes.
type Store interface {
	CreateUser(ctx context.Context, username, passwordHash, email string) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	FollowArtist(ctx context.Context, userID int64, artistID string) error
	ListFollowedArtistIDs(ctx context.Context, userID int64) ([]string, error)
	CreateEvent(ctx context.Context, event *models.Event) error
	ListEvents(ctx context.Context) ([]models.Event, error)
	ListEventsByDate(ctx context.Context, date string) ([]models.Event, error)
	ListEventsByUser(ctx context.Context, userID int64) ([]models.Event, error)
}

// Upstream is the third-party API surface the handlers need.
// *upstream.Services implements it; tests substitute fakes.
type Upstream interface {
	Discover(ctx context.Context) (*upstream.DiscoverResult, error)
	ArtworkGallery(ctx context.Context) ([]upstream.Artwork, error)
	ArtistDirectory(ctx context.Context) ([]models.ArtistProfile, error)
	ArtistProfile(ctx context.Context, artistID string) (*models.ArtistProfile, error)
	WeekEvents(ctx context.Context, now time.Time) ([]events.FeedEvent, error)
	Geocode(ctx context.Context, address string) (lat, lng float64, err error)
}

// Server holds the handler dependencies.
type Server struct {
	cfg       *config.Config
	store     Store
	sessions  *auth.Manager
	upstream  Upstream
	templates *Templates

	// now is swappable in tests to pin the week window.
	now func() time.Time
}

// NewServer wires the HTTP handlers to their dependencies.
func NewServer(cfg *config.Config, store Store, sessions *auth.Manager, up Upstream) (*Server, error) {
	templates, err := NewTemplates()
	if err != nil {
		return nil, err
	}
	return &Server{
		cfg:       cfg,
		store:     store,
		sessions:  sessions,
		upstream:  up,
		templates: templates,
		now:       time.Now,
	}, nil
}
