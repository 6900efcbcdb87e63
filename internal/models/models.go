// ArtScout - Art Event and Artist Discovery
// Copyright 2026 ArtScout Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/artscout/artscout

// Package models defines the persisted entities and view models shared
// between the database layer and the HTTP handlers.
package models

import "time"

// User is an account row in the users table. Password holds the bcrypt
// hash, never plaintext.
type User struct {
	ID        int64     `json:"user_id"`
	Username  string    `json:"username"`
	Password  string    `json:"-"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// Event is a user-submitted local event row in the events table.
// Latitude/Longitude are resolved from the submitted street address via
// geocoding at creation time.
type Event struct {
	ID          int64     `json:"event_id"`
	Name        string    `json:"event_name"`
	Description string    `json:"event_description"`
	Date        time.Time `json:"event_date"`
	Location    string    `json:"event_location"`
	Latitude    float64   `json:"event_latitude"`
	Longitude   float64   `json:"event_longitude"`
	UserID      int64     `json:"user_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// DateOnly returns the event date formatted as YYYY-MM-DD for weekly
// bucket rendering.
func (e *Event) DateOnly() string {
	return e.Date.Format("2006-01-02")
}

// Follow is a user's subscription relationship to an artist. ArtistID is
// the external catalog identifier; artist metadata is fetched live and
// never persisted beyond this relation.
type Follow struct {
	UserID   int64  `json:"user_id"`
	ArtistID string `json:"artist_id"`
}

// ArtistProfile is the view model for an artist page, composed from the
// art catalog record and the Wikipedia thumbnail/extract lookup.
type ArtistProfile struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Thumbnail string `json:"thumbnail,omitempty"`
	Biography string `json:"biography,omitempty"`
	BirthYear int    `json:"birth_year,omitempty"`
	DeathYear int    `json:"death_year,omitempty"`
}
