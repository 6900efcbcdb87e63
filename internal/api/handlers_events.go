// ArtScout - Art Event and Artist Discovery
// Copyright 2026 ArtScout Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/artscout/artscout

package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/artscout/artscout/internal/auth"
	"github.com/artscout/artscout/internal/calendar"
	"github.com/artscout/artscout/internal/events"
	"github.com/artscout/artscout/internal/geo"
	"github.com/artscout/artscout/internal/logging"
	"github.com/artscout/artscout/internal/models"
	"github.com/artscout/artscout/internal/validation"
)

const (
	msgEventsFeedError  = "An error occurred while fetching this week's events. Please try again."
	msgEventsStoreError = "An error occurred while loading community events. Please try again."
	msgBadLocation      = "We could not read your location. Please try again."
	msgAddEventError    = "The event could not be added. Please check the address and try again."
)

type eventsPage struct {
	// Located is false on the initial GET, before the visitor has
	// shared coordinates.
	Located bool
	Message string

	Latitude  float64
	Longitude float64

	Feed         []events.FeedEvent
	NearbyEvents []models.Event
	DaysOfWeek   []string
	DatesForWeek []string
	EventsByDay  [calendar.DaysPerWeek][]models.Event
}

// handleEventsPage renders the pre-location events page.
func (s *Server) handleEventsPage(w http.ResponseWriter, r *http.Request) {
	s.templates.Render(w, r, http.StatusOK, "events", eventsPage{})
}

// handleEventsForLocation builds the located events page: the
// deduplicated Ticketmaster week feed, community events within the
// nearby radius of the visitor, and the seven-day calendar buckets.
func (s *Server) handleEventsForLocation(w http.ResponseWriter, r *http.Request) {
	var req visitorLocationRequest
	if err := decodeRequest(r, &req, func(get func(string) string) {
		req.Latitude = get("latitude")
		req.Longitude = get("longitude")
	}); err != nil {
		s.templates.Render(w, r, http.StatusOK, "events", eventsPage{Message: msgBadLocation})
		return
	}
	if err := validation.ValidateStruct(req); err != nil {
		s.templates.Render(w, r, http.StatusOK, "events", eventsPage{Message: msgBadLocation})
		return
	}

	// Validated as latitude/longitude strings above.
	lat, _ := strconv.ParseFloat(req.Latitude, 64)
	lng, _ := strconv.ParseFloat(req.Longitude, 64)

	now := s.now()
	page := eventsPage{
		Located:      true,
		Latitude:     lat,
		Longitude:    lng,
		DaysOfWeek:   calendar.WeekdayNames(now),
		DatesForWeek: calendar.WeekDates(now),
	}

	feed, err := s.upstream.WeekEvents(r.Context(), now)
	if err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Msg("week feed fetch failed")
		page.Message = msgEventsFeedError
	} else {
		page.Feed = events.Normalize(feed)
	}

	all, err := s.store.ListEvents(r.Context())
	if err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Msg("event listing failed")
		page.Message = msgEventsStoreError
	}
	for _, event := range all {
		if geo.IsNearby(lat, lng, event.Latitude, event.Longitude) {
			page.NearbyEvents = append(page.NearbyEvents, event)
		}
	}

	for i, date := range page.DatesForWeek {
		dayEvents, err := s.store.ListEventsByDate(r.Context(), date)
		if err != nil {
			logging.Ctx(r.Context()).Error().Err(err).Str("date", date).Msg("per-day event listing failed")
			continue
		}
		page.EventsByDay[i] = dayEvents
	}

	s.templates.Render(w, r, http.StatusOK, "events", page)
}

// handleAddEvent geocodes the submitted address, persists the event
// under the authenticated user, and returns to the events page.
func (s *Server) handleAddEvent(w http.ResponseWriter, r *http.Request) {
	session, _ := auth.SessionFromContext(r.Context())

	var req addEventRequest
	if err := decodeRequest(r, &req, func(get func(string) string) {
		req.EventName = get("eventName")
		req.Description = get("description")
		req.EventDate = get("eventDate")
		req.StreetAddress = get("streetAddress")
		req.City = get("city")
		req.State = get("state")
		req.PostalCode = get("postalCode")
	}); err != nil {
		s.templates.Render(w, r, http.StatusOK, "events", eventsPage{Message: msgAddEventError})
		return
	}
	if err := validation.ValidateStruct(req); err != nil {
		s.templates.Render(w, r, http.StatusOK, "events", eventsPage{Message: msgAddEventError})
		return
	}

	lat, lng, err := s.upstream.Geocode(r.Context(), req.Address())
	if err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Str("address", req.Address()).Msg("geocoding failed")
		s.templates.Render(w, r, http.StatusOK, "events", eventsPage{Message: msgAddEventError})
		return
	}

	date, err := time.Parse(calendar.ISODateFormat, req.EventDate)
	if err != nil {
		s.templates.Render(w, r, http.StatusOK, "events", eventsPage{Message: msgAddEventError})
		return
	}

	event := &models.Event{
		Name:        req.EventName,
		Description: req.Description,
		Date:        date,
		Location:    req.Address(),
		Latitude:    lat,
		Longitude:   lng,
		UserID:      session.UserID,
	}
	if err := s.store.CreateEvent(r.Context(), event); err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Msg("event insert failed")
		s.templates.Render(w, r, http.StatusOK, "events", eventsPage{Message: msgAddEventError})
		return
	}

	logging.Ctx(r.Context()).Info().
		Str("event", req.EventName).
		Int64("user_id", session.UserID).
		Msg("event added")
	http.Redirect(w, r, "/events", http.StatusFound)
}
