// ArtScout - Art Event and Artist Discovery
// Copyright 2026 ArtScout Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/artscout/artscout

package upstream

import (
	"context"
	"fmt"
	"net/url"
	"time"
)

// articSearchLimit caps the artist directory at one page of results.
const articSearchLimit = 100

// ArticArtist is an artist record from the Art Institute of Chicago
// API. Title carries the artist's name; BirthDate and DeathDate are
// years.
type ArticArtist struct {
	ID        int    `json:"id"`
	Title     string `json:"title"`
	BirthDate int    `json:"birth_date"`
	DeathDate int    `json:"death_date"`
}

// ArticClient talks to the Art Institute of Chicago public API.
type ArticClient struct {
	baseURL string
	client  *client
}

// NewArticClient creates an Art Institute of Chicago API client.
func NewArticClient(baseURL string, timeout time.Duration, rps float64) *ArticClient {
	return &ArticClient{
		baseURL: baseURL,
		client:  newClient("artic", timeout, rps),
	}
}

// SearchArtists returns the first page of the artist directory.
func (c *ArticClient) SearchArtists(ctx context.Context) ([]ArticArtist, error) {
	params := url.Values{}
	params.Set("q", "*")
	params.Set("limit", fmt.Sprint(articSearchLimit))
	params.Set("page", "1")

	var resp struct {
		Data []ArticArtist `json:"data"`
	}
	reqURL := fmt.Sprintf("%s/artists/search?%s", c.baseURL, params.Encode())
	if err := c.client.getJSON(ctx, reqURL, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// Artist returns a single artist record by ID.
func (c *ArticClient) Artist(ctx context.Context, artistID string) (*ArticArtist, error) {
	var resp struct {
		Data ArticArtist `json:"data"`
	}
	reqURL := fmt.Sprintf("%s/artists/%s", c.baseURL, url.PathEscape(artistID))
	if err := c.client.getJSON(ctx, reqURL, nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}
