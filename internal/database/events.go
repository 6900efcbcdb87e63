// ArtScout - Art Event and Artist Discovery
// Copyright 2026 ArtScout Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/artscout/artscout

package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/artscout/artscout/internal/metrics"
	"github.com/artscout/artscout/internal/models"
)

const eventColumns = `event_id, event_name, event_description, event_date,
	event_location, event_latitude, event_longitude, COALESCE(user_id, 0), created_at`

// CreateEvent inserts a user-submitted event and fills in its generated
// id and creation time.
func (db *DB) CreateEvent(ctx context.Context, event *models.Event) error {
	query := `INSERT INTO events
	          (event_name, event_description, event_date, event_location,
	           event_latitude, event_longitude, user_id)
	          VALUES ($1, $2, $3, $4, $5, $6, $7)
	          RETURNING event_id, created_at`

	var userID sql.NullInt64
	if event.UserID != 0 {
		userID = sql.NullInt64{Int64: event.UserID, Valid: true}
	}

	start := time.Now()
	err := db.conn.QueryRowContext(ctx, query,
		event.Name, event.Description, event.Date, event.Location,
		event.Latitude, event.Longitude, userID).
		Scan(&event.ID, &event.CreatedAt)
	metrics.RecordDBQuery("insert", "events", time.Since(start), err)

	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// ListEvents returns all persisted events ordered by date ascending.
// Callers filter by proximity; the full set is small enough to scan.
func (db *DB) ListEvents(ctx context.Context) ([]models.Event, error) {
	query := `SELECT ` + eventColumns + `
	          FROM events
	          ORDER BY event_date ASC`

	start := time.Now()
	rows, err := db.conn.QueryContext(ctx, query)
	metrics.RecordDBQuery("select", "events", time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	return scanEvents(rows)
}

// ListEventsByDate returns the events on one calendar day, for weekly
// bucket rendering (one query per bucket).
func (db *DB) ListEventsByDate(ctx context.Context, date string) ([]models.Event, error) {
	query := `SELECT ` + eventColumns + `
	          FROM events
	          WHERE event_date = $1
	          ORDER BY event_name`

	start := time.Now()
	rows, err := db.conn.QueryContext(ctx, query, date)
	metrics.RecordDBQuery("select", "events", time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	return scanEvents(rows)
}

// ListEventsByUser returns the events submitted by one user, date
// ascending.
func (db *DB) ListEventsByUser(ctx context.Context, userID int64) ([]models.Event, error) {
	query := `SELECT ` + eventColumns + `
	          FROM events
	          WHERE user_id = $1
	          ORDER BY event_date ASC`

	start := time.Now()
	rows, err := db.conn.QueryContext(ctx, query, userID)
	metrics.RecordDBQuery("select", "events", time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	return scanEvents(rows)
}

func scanEvents(rows *sql.Rows) ([]models.Event, error) {
	var events []models.Event
	for rows.Next() {
		var ev models.Event
		if err := rows.Scan(&ev.ID, &ev.Name, &ev.Description, &ev.Date,
			&ev.Location, &ev.Latitude, &ev.Longitude, &ev.UserID, &ev.CreatedAt); err != nil {
			return nil, fmt.Errorf("db scan error: %w", err)
		}
		events = append(events, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db rows error: %w", err)
	}
	return events, nil
}
