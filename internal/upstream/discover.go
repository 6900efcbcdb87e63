// ArtScout - Art Event and Artist Discovery
// Copyright 2026 ArtScout Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/artscout/artscout

package upstream

import (
	"context"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/artscout/artscout/internal/models"
)

// enrichConcurrency bounds the parallel Wikipedia lookups when building
// the artist directory.
const enrichConcurrency = 8

// DiscoverResult is the Artsy content shown on the discover page.
type DiscoverResult struct {
	Fairs    []Fair
	Artworks []Artwork
	Artists  []TrendingArtist
}

// Discover fetches fairs, artworks, and trending artists concurrently.
// The join is all-or-nothing: if any fetch fails, the whole discover
// result is discarded so the page never shows a partial mix.
func (s *Services) Discover(ctx context.Context) (*DiscoverResult, error) {
	var result DiscoverResult

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		fairs, err := s.Artsy.Fairs(ctx)
		if err != nil {
			return err
		}
		result.Fairs = fairs
		return nil
	})
	g.Go(func() error {
		artworks, err := s.Artsy.Artworks(ctx)
		if err != nil {
			return err
		}
		result.Artworks = artworks
		return nil
	})
	g.Go(func() error {
		artists, err := s.Artsy.TrendingArtists(ctx)
		if err != nil {
			return err
		}
		result.Artists = artists
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &result, nil
}

// ArtistDirectory returns the Art Institute of Chicago artist listing,
// each entry enriched with a Wikipedia thumbnail and biography. A
// failure on any lookup fails the directory.
func (s *Services) ArtistDirectory(ctx context.Context) ([]models.ArtistProfile, error) {
	artists, err := s.Artic.SearchArtists(ctx)
	if err != nil {
		return nil, err
	}

	profiles := make([]models.ArtistProfile, len(artists))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(enrichConcurrency)
	for i, artist := range artists {
		g.Go(func() error {
			summary, err := s.Wikipedia.Summary(ctx, artist.Title)
			if err != nil {
				return err
			}
			profiles[i] = models.ArtistProfile{
				ID:        strconv.Itoa(artist.ID),
				Name:      artist.Title,
				Thumbnail: summary.Thumbnail,
				Biography: summary.Extract,
				BirthYear: artist.BirthDate,
				DeathYear: artist.DeathDate,
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return profiles, nil
}

// ArtistProfile returns one artist's detail enriched from Wikipedia.
func (s *Services) ArtistProfile(ctx context.Context, artistID string) (*models.ArtistProfile, error) {
	artist, err := s.Artic.Artist(ctx, artistID)
	if err != nil {
		return nil, err
	}

	summary, err := s.Wikipedia.Summary(ctx, artist.Title)
	if err != nil {
		return nil, err
	}

	return &models.ArtistProfile{
		ID:        strconv.Itoa(artist.ID),
		Name:      artist.Title,
		Thumbnail: summary.Thumbnail,
		Biography: summary.Extract,
		BirthYear: artist.BirthDate,
		DeathYear: artist.DeathDate,
	}, nil
}
