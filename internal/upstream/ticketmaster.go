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

	"github.com/artscout/artscout/internal/events"
)

// ticketmasterTimeFormat is the second-precision UTC stamp the
// Discovery API requires (fractional seconds are rejected).
const ticketmasterTimeFormat = "2006-01-02T15:04:05Z"

// feedWindow is the span of the week feed.
const feedWindow = 7 * 24 * time.Hour

// TicketmasterClient fetches fine-art events from the Ticketmaster
// Discovery API.
type TicketmasterClient struct {
	baseURL string
	apiKey  string
	client  *client
}

// NewTicketmasterClient creates a Ticketmaster Discovery API client.
func NewTicketmasterClient(baseURL, apiKey string, timeout time.Duration, rps float64) *TicketmasterClient {
	return &TicketmasterClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  newClient("ticketmaster", timeout, rps),
	}
}

// WeekEvents returns the raw fine-art events starting within seven days
// of now. Missing images and venues are filled with placeholders; the
// result is not yet deduplicated (see events.Normalize).
func (c *TicketmasterClient) WeekEvents(ctx context.Context, now time.Time) ([]events.FeedEvent, error) {
	params := url.Values{}
	params.Set("apikey", c.apiKey)
	params.Set("startDateTime", now.UTC().Format(ticketmasterTimeFormat))
	params.Set("endDateTime", now.UTC().Add(feedWindow).Format(ticketmasterTimeFormat))
	params.Set("classificationName", "fine-art")
	params.Set("sort", "random")

	var resp struct {
		Embedded struct {
			Events []struct {
				Name  string `json:"name"`
				Info  string `json:"info"`
				URL   string `json:"url"`
				Dates struct {
					Start struct {
						LocalDate string `json:"localDate"`
					} `json:"start"`
				} `json:"dates"`
				Images []struct {
					URL string `json:"url"`
				} `json:"images"`
				Embedded struct {
					Venues []struct {
						Name string `json:"name"`
					} `json:"venues"`
				} `json:"_embedded"`
			} `json:"events"`
		} `json:"_embedded"`
	}

	reqURL := fmt.Sprintf("%s/events.json?%s", c.baseURL, params.Encode())
	if err := c.client.getJSON(ctx, reqURL, nil, &resp); err != nil {
		return nil, err
	}

	// The _embedded wrapper is omitted entirely when the window has no
	// events; that is an empty feed, not an error.
	feed := make([]events.FeedEvent, 0, len(resp.Embedded.Events))
	for _, e := range resp.Embedded.Events {
		fe := events.FeedEvent{
			Name:        e.Name,
			Description: e.Info,
			Link:        e.URL,
			Date:        e.Dates.Start.LocalDate,
			Venue:       events.PlaceholderVenue,
			ImageURL:    events.PlaceholderImageURL,
		}
		if len(e.Images) > 0 && e.Images[0].URL != "" {
			fe.ImageURL = e.Images[0].URL
		}
		if len(e.Embedded.Venues) > 0 && e.Embedded.Venues[0].Name != "" {
			fe.Venue = e.Embedded.Venues[0].Name
		}
		feed = append(feed, fe)
	}
	return feed, nil
}
