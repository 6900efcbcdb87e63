// ArtScout - Art Event and Artist Discovery
// Copyright 2026 ArtScout Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/artscout/artscout

package upstream

import (
	"context"
	"time"

	"github.com/artscout/artscout/internal/config"
	"github.com/artscout/artscout/internal/events"
)

// Services bundles one client per upstream API.
type Services struct {
	Artsy        *ArtsyClient
	Artic        *ArticClient
	Wikipedia    *WikipediaClient
	Ticketmaster *TicketmasterClient
	Geocoder     *GeocodingClient
}

// NewServices builds all upstream clients from configuration.
func NewServices(cfg config.UpstreamConfig) *Services {
	return &Services{
		Artsy:        NewArtsyClient(cfg.ArtsyURL, cfg.ArtsyToken, cfg.Timeout, cfg.RequestsPerSecond),
		Artic:        NewArticClient(cfg.ArticURL, cfg.Timeout, cfg.RequestsPerSecond),
		Wikipedia:    NewWikipediaClient(cfg.WikipediaURL, cfg.Timeout, cfg.RequestsPerSecond),
		Ticketmaster: NewTicketmasterClient(cfg.TicketmasterURL, cfg.TicketmasterKey, cfg.Timeout, cfg.RequestsPerSecond),
		Geocoder:     NewGeocodingClient(cfg.GeocodingURL, cfg.GoogleMapsKey, cfg.Timeout, cfg.RequestsPerSecond),
	}
}

// ArtworkGallery proxies to the Artsy client.
func (s *Services) ArtworkGallery(ctx context.Context) ([]Artwork, error) {
	return s.Artsy.ArtworkGallery(ctx)
}

// WeekEvents proxies to the Ticketmaster client.
func (s *Services) WeekEvents(ctx context.Context, now time.Time) ([]events.FeedEvent, error) {
	return s.Ticketmaster.WeekEvents(ctx, now)
}

// Geocode proxies to the geocoding client.
func (s *Services) Geocode(ctx context.Context, address string) (lat, lng float64, err error) {
	return s.Geocoder.Geocode(ctx, address)
}
