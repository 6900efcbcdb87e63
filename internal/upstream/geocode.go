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

// ErrNoGeocodeResult is returned when the geocoder resolves an address
// to nothing.
var ErrNoGeocodeResult = errors.New("address could not be geocoded")

// GeocodingClient resolves street addresses to coordinates via the
// Google Geocoding API.
type GeocodingClient struct {
	baseURL string
	apiKey  string
	client  *client
}

// NewGeocodingClient creates a Google Geocoding API client.
func NewGeocodingClient(baseURL, apiKey string, timeout time.Duration, rps float64) *GeocodingClient {
	return &GeocodingClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  newClient("geocoding", timeout, rps),
	}
}

// Geocode resolves a free-form address to latitude and longitude,
// taking the first candidate when the geocoder returns several.
func (c *GeocodingClient) Geocode(ctx context.Context, address string) (lat, lng float64, err error) {
	params := url.Values{}
	params.Set("key", c.apiKey)
	params.Set("address", address)

	var resp struct {
		Status  string `json:"status"`
		Results []struct {
			Geometry struct {
				Location struct {
					Lat float64 `json:"lat"`
					Lng float64 `json:"lng"`
				} `json:"location"`
			} `json:"geometry"`
		} `json:"results"`
	}

	// baseURL is the full endpoint, including the /json output format.
	reqURL := fmt.Sprintf("%s?%s", c.baseURL, params.Encode())
	if err := c.client.getJSON(ctx, reqURL, nil, &resp); err != nil {
		return 0, 0, err
	}

	if resp.Status != "OK" || len(resp.Results) == 0 {
		return 0, 0, fmt.Errorf("%w: status %s", ErrNoGeocodeResult, resp.Status)
	}

	loc := resp.Results[0].Geometry.Location
	return loc.Lat, loc.Lng, nil
}
