// ArtScout - Art Event and Artist Discovery
// Copyright 2026 ArtScout Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/artscout/artscout

package database

import (
	"context"
	"errors"

	"github.com/artscout/artscout/internal/logging"
)

// SeedDemoUser inserts the demo account used by tests and local
// development if it does not already exist. passwordHash must be the
// bcrypt hash of the demo password.
func (db *DB) SeedDemoUser(ctx context.Context, username, passwordHash, email string) error {
	_, err := db.GetUserByUsername(ctx, username)
	if err == nil {
		return nil // already seeded
	}
	if !errors.Is(err, ErrNotFound) {
		return err
	}

	if _, err := db.CreateUser(ctx, username, passwordHash, email); err != nil {
		// A concurrent seeder may have won the race.
		if errors.Is(err, ErrUsernameTaken) {
			return nil
		}
		return err
	}

	logging.Info().Str("username", username).Msg("demo user seeded")
	return nil
}
