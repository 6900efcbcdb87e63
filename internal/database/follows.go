// ArtScout - Art Event and Artist Discovery
// Copyright 2026 ArtScout Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/artscout/artscout

package database

import (
	"context"
	"fmt"
	"time"

	"github.com/artscout/artscout/internal/metrics"
)

// FollowArtist records that the user follows the artist. A duplicate
// follow is a no-op: the composite primary key plus ON CONFLICT keeps
// the relation unique.
func (db *DB) FollowArtist(ctx context.Context, userID int64, artistID string) error {
	query := `INSERT INTO user_artists (user_id, artist_id)
	          VALUES ($1, $2)
	          ON CONFLICT (user_id, artist_id) DO NOTHING`

	start := time.Now()
	_, err := db.conn.ExecContext(ctx, query, userID, artistID)
	metrics.RecordDBQuery("insert", "user_artists", time.Since(start), err)

	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// ListFollowedArtistIDs returns the external artist ids the user
// follows, in follow-insertion order by artist id.
func (db *DB) ListFollowedArtistIDs(ctx context.Context, userID int64) ([]string, error) {
	query := `SELECT artist_id
	          FROM user_artists
	          WHERE user_id = $1
	          ORDER BY artist_id`

	start := time.Now()
	rows, err := db.conn.QueryContext(ctx, query, userID)
	metrics.RecordDBQuery("select", "user_artists", time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("db scan error: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db rows error: %w", err)
	}

	return ids, nil
}
