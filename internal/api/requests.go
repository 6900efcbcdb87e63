// ArtScout - Art Event and Artist Discovery
// Copyright 2026 ArtScout Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/artscout/artscout

package api

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/goccy/go-json"
)

// Request bodies arrive either as urlencoded form posts (the site's own
// pages) or as JSON (API callers and the follow button). Each request
// struct carries both json tags and validate tags.

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type registerRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
	Email    string `json:"email" validate:"omitempty,email"`
}

type visitorLocationRequest struct {
	Latitude  string `json:"latitude" validate:"required,latitude"`
	Longitude string `json:"longitude" validate:"required,longitude"`
}

type addEventRequest struct {
	EventName     string `json:"eventName" validate:"required"`
	Description   string `json:"description"`
	EventDate     string `json:"eventDate" validate:"required,iso8601date"`
	StreetAddress string `json:"streetAddress" validate:"required"`
	City          string `json:"city" validate:"required"`
	State         string `json:"state" validate:"required"`
	PostalCode    string `json:"postalCode" validate:"required"`
}

// Address assembles the free-form geocoding query from the form fields.
func (r addEventRequest) Address() string {
	return fmt.Sprintf("%s %s %s %s", r.StreetAddress, r.City, r.State, r.PostalCode)
}

type followRequest struct {
	ArtistID string `json:"artistId" validate:"required"`
}

// decodeRequest fills dst from a JSON body, or calls fromForm with a
// field getter for urlencoded posts.
func decodeRequest(r *http.Request, dst interface{}, fromForm func(get func(string) string)) error {
	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
			return fmt.Errorf("decode JSON body: %w", err)
		}
		return nil
	}

	if err := r.ParseForm(); err != nil {
		return fmt.Errorf("parse form: %w", err)
	}
	fromForm(r.PostFormValue)
	return nil
}
