// ArtScout - Art Event and Artist Discovery
// Copyright 2026 ArtScout Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/artscout/artscout

package upstream

import (
	"context"
	"fmt"
	"math/rand/v2"
	"net/http"
	"net/url"
	"time"
)

// Artsy exposes roughly 20k artworks and 260k artists; random offsets
// within those bounds give each discover page a fresh sample.
const (
	artsyPageSize    = 4
	artsyGallerySize = 36
	maxArtworkOffset = 20000
	maxArtistOffset  = 200000
)

// Fair is a running or upcoming art fair from the Artsy API.
type Fair struct {
	Name    string `json:"name"`
	About   string `json:"about"`
	Summary string `json:"summary"`
	StartAt string `json:"start_at"`
	EndAt   string `json:"end_at"`
}

// Artwork is a single work from the Artsy artworks listing.
type Artwork struct {
	Title                 string `json:"title"`
	Medium                string `json:"medium"`
	Date                  string `json:"date"`
	CollectingInstitution string `json:"collecting_institution"`
	Links                 struct {
		Thumbnail struct {
			Href string `json:"href"`
		} `json:"thumbnail"`
	} `json:"_links"`
}

// ThumbnailURL returns the artwork's thumbnail image, or "" if Artsy
// provided none.
func (a Artwork) ThumbnailURL() string {
	return a.Links.Thumbnail.Href
}

// TrendingArtist is an entry from the Artsy trending artists listing.
type TrendingArtist struct {
	Name        string `json:"name"`
	Birthday    string `json:"birthday"`
	Deathday    string `json:"deathday"`
	Nationality string `json:"nationality"`
	Links       struct {
		Thumbnail struct {
			Href string `json:"href"`
		} `json:"thumbnail"`
	} `json:"_links"`
}

// ThumbnailURL returns the artist's thumbnail image, or "" if Artsy
// provided none.
func (a TrendingArtist) ThumbnailURL() string {
	return a.Links.Thumbnail.Href
}

// ArtsyClient talks to the Artsy hypermedia API. All requests carry the
// X-XAPP-Token header.
type ArtsyClient struct {
	baseURL   string
	xappToken string
	client    *client

	// randInt is swappable in tests to pin the sampling offsets.
	randInt func(n int) int
}

// NewArtsyClient creates an Artsy API client.
func NewArtsyClient(baseURL, xappToken string, timeout time.Duration, rps float64) *ArtsyClient {
	return &ArtsyClient{
		baseURL:   baseURL,
		xappToken: xappToken,
		client:    newClient("artsy", timeout, rps),
		randInt:   rand.IntN,
	}
}

func (c *ArtsyClient) header() http.Header {
	h := http.Header{}
	h.Set("X-XAPP-Token", c.xappToken)
	return h
}

func (c *ArtsyClient) get(ctx context.Context, path string, params url.Values, result interface{}) error {
	reqURL := fmt.Sprintf("%s%s?%s", c.baseURL, path, params.Encode())
	return c.client.getJSON(ctx, reqURL, c.header(), result)
}

// Fairs returns running and upcoming art fairs.
func (c *ArtsyClient) Fairs(ctx context.Context) ([]Fair, error) {
	params := url.Values{}
	params.Set("status", "running_and_upcoming")
	params.Set("size", fmt.Sprint(artsyPageSize))

	var resp struct {
		Embedded struct {
			Fairs []Fair `json:"fairs"`
		} `json:"_embedded"`
	}
	if err := c.get(ctx, "/fairs", params, &resp); err != nil {
		return nil, err
	}
	return resp.Embedded.Fairs, nil
}

// Artworks returns a random sample of artworks.
func (c *ArtsyClient) Artworks(ctx context.Context) ([]Artwork, error) {
	return c.artworkSample(ctx, artsyPageSize)
}

// ArtworkGallery returns the larger artwork sample backing the
// standalone gallery page.
func (c *ArtsyClient) ArtworkGallery(ctx context.Context) ([]Artwork, error) {
	return c.artworkSample(ctx, artsyGallerySize)
}

func (c *ArtsyClient) artworkSample(ctx context.Context, size int) ([]Artwork, error) {
	params := url.Values{}
	params.Set("size", fmt.Sprint(size))
	params.Set("offset", fmt.Sprint(c.randInt(maxArtworkOffset)))

	var resp struct {
		Embedded struct {
			Artworks []Artwork `json:"artworks"`
		} `json:"_embedded"`
	}
	if err := c.get(ctx, "/artworks", params, &resp); err != nil {
		return nil, err
	}
	return resp.Embedded.Artworks, nil
}

// TrendingArtists returns a random sample of artists ordered by
// descending trending score.
func (c *ArtsyClient) TrendingArtists(ctx context.Context) ([]TrendingArtist, error) {
	params := url.Values{}
	params.Set("size", fmt.Sprint(artsyPageSize))
	params.Set("sort", "-trending")
	params.Set("offset", fmt.Sprint(c.randInt(maxArtistOffset)))

	var resp struct {
		Embedded struct {
			Artists []TrendingArtist `json:"artists"`
		} `json:"_embedded"`
	}
	if err := c.get(ctx, "/artists", params, &resp); err != nil {
		return nil, err
	}
	return resp.Embedded.Artists, nil
}
