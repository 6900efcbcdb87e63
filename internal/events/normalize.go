// ArtScout - Art Event and Artist Discovery
// Copyright 2026 ArtScout Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/artscout/artscout

// Package events normalizes raw third-party event feeds into the
// de-duplicated, date-sorted list shown on the weekly events page.
package events

import "sort"

// Placeholder values substituted when the upstream feed omits a field.
const (
	PlaceholderImageURL = "https://via.placeholder.com/150"
	PlaceholderVenue    = "Location not available"
)

// FeedEvent is one upcoming event from an external ticketing feed.
// Date is an ISO YYYY-MM-DD string, so lexicographic comparison is
// chronological comparison.
type FeedEvent struct {
	Name        string
	Description string
	Link        string
	Date        string
	Venue       string
	ImageURL    string
}

// Normalize fills placeholder values, removes duplicate names keeping the
// latest-dated occurrence per name, and sorts the result ascending by
// date. Input order only breaks ties between equal-dated duplicates (the
// first seen wins).
func Normalize(raw []FeedEvent) []FeedEvent {
	byName := make(map[string]int, len(raw))
	out := make([]FeedEvent, 0, len(raw))

	for _, ev := range raw {
		if ev.ImageURL == "" {
			ev.ImageURL = PlaceholderImageURL
		}
		if ev.Venue == "" {
			ev.Venue = PlaceholderVenue
		}

		idx, seen := byName[ev.Name]
		if !seen {
			byName[ev.Name] = len(out)
			out = append(out, ev)
			continue
		}
		if ev.Date > out[idx].Date {
			out[idx] = ev
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date < out[j].Date
	})

	return out
}
