// ArtScout - Art Event and Artist Discovery
// Copyright 2026 ArtScout Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/artscout/artscout

package upstream

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"
)

// ErrPageNotFound is returned when Wikipedia has no page for a title.
var ErrPageNotFound = errors.New("wikipedia page not found")

// wikiThumbnailSize is the pixel width requested for page thumbnails.
const wikiThumbnailSize = 100

// PageSummary is the thumbnail and extract of a Wikipedia page.
type PageSummary struct {
	Thumbnail string
	Extract   string
}

// WikipediaClient fetches page summaries from the MediaWiki API.
type WikipediaClient struct {
	baseURL string
	client  *client
}

// NewWikipediaClient creates a MediaWiki API client.
func NewWikipediaClient(baseURL string, timeout time.Duration, rps float64) *WikipediaClient {
	return &WikipediaClient{
		baseURL: baseURL,
		client:  newClient("wikipedia", timeout, rps),
	}
}

// Summary returns the thumbnail URL and extract for the page with the
// given title. The thumbnail may be empty when the page carries no
// image.
func (c *WikipediaClient) Summary(ctx context.Context, title string) (*PageSummary, error) {
	params := url.Values{}
	params.Set("action", "query")
	params.Set("format", "json")
	params.Set("prop", "pageimages|extracts")
	params.Set("titles", title)
	params.Set("origin", "*")
	params.Set("pithumbsize", fmt.Sprint(wikiThumbnailSize))

	var resp struct {
		Query struct {
			Pages map[string]struct {
				Thumbnail *struct {
					Source string `json:"source"`
				} `json:"thumbnail"`
				Extract string `json:"extract"`
			} `json:"pages"`
		} `json:"query"`
	}
	reqURL := fmt.Sprintf("%s?%s", c.baseURL, params.Encode())
	if err := c.client.getJSON(ctx, reqURL, nil, &resp); err != nil {
		return nil, err
	}

	// MediaWiki keys the result by page ID; there is at most one page
	// for a single-title query.
	for _, page := range resp.Query.Pages {
		summary := &PageSummary{Extract: page.Extract}
		if page.Thumbnail != nil {
			summary.Thumbnail = page.Thumbnail.Source
		}
		return summary, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrPageNotFound, title)
}
