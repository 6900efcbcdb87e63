// ArtScout - Art Event and Artist Discovery
// Copyright 2026 ArtScout Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/artscout/artscout

package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/artscout/artscout/internal/metrics"
	"github.com/artscout/artscout/internal/models"
)

// uniqueViolation is the Postgres error code for unique constraint hits.
const uniqueViolation = "23505"

// CreateUser inserts a new account row. The password must already be a
// bcrypt hash. Returns ErrUsernameTaken when the username is in use.
func (db *DB) CreateUser(ctx context.Context, username, passwordHash, email string) (*models.User, error) {
	query := `INSERT INTO users (username, password, email)
	          VALUES ($1, $2, $3)
	          RETURNING user_id, created_at`

	start := time.Now()
	user := &models.User{Username: username, Password: passwordHash, Email: email}
	err := db.conn.QueryRowContext(ctx, query, username, passwordHash, email).
		Scan(&user.ID, &user.CreatedAt)
	metrics.RecordDBQuery("insert", "users", time.Since(start), err)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, ErrUsernameTaken
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return user, nil
}

// GetUserByUsername looks up an account by username. Returns ErrNotFound
// when no such user exists.
func (db *DB) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	query := `SELECT user_id, username, password, email, created_at
	          FROM users
	          WHERE username = $1`

	start := time.Now()
	user := &models.User{}
	err := db.conn.QueryRowContext(ctx, query, username).
		Scan(&user.ID, &user.Username, &user.Password, &user.Email, &user.CreatedAt)
	metrics.RecordDBQuery("select", "users", time.Since(start), err)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return user, nil
}
