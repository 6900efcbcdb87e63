// ArtScout - Art Event and Artist Discovery
// Copyright 2026 ArtScout Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/artscout/artscout

// Package database provides Postgres persistence for users, follows, and
// user-submitted events, with goose-managed schema migrations embedded
// in the binary.
package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx database/sql driver
	"github.com/pressly/goose/v3"

	"github.com/artscout/artscout/internal/database/migrations"
	"github.com/artscout/artscout/internal/logging"
)

// Sentinel errors returned by store methods.
var (
	// ErrNotFound is returned when a requested row does not exist.
	ErrNotFound = errors.New("not found")

	// ErrUsernameTaken is returned when registration collides with an
	// existing username.
	ErrUsernameTaken = errors.New("username already exists")
)

// DB wraps the SQL connection pool with the application's queries.
type DB struct {
	conn *sql.DB
}

// Open connects to Postgres using the pgx stdlib driver and verifies
// the connection with a ping.
func Open(ctx context.Context, dsn string) (*DB, error) {
	conn, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	conn.SetMaxOpenConns(10)
	conn.SetMaxIdleConns(5)
	conn.SetConnMaxLifetime(time.Hour)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := conn.PingContext(pingCtx); err != nil {
		//nolint:errcheck // close on the failure path, nothing to report
		conn.Close()
		return nil, fmt.Errorf("db ping error: %w", err)
	}

	return &DB{conn: conn}, nil
}

// RunMigrations applies all pending goose migrations from the embedded
// migration set.
func (db *DB) RunMigrations(ctx context.Context) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}
	if err := goose.UpContext(ctx, db.conn, "."); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	logging.Info().Str("component", "database").Msg("migrations applied")
	return nil
}

// Conn exposes the underlying pool for health checks.
func (db *DB) Conn() *sql.DB {
	return db.conn
}

// Close releases the connection pool.
func (db *DB) Close() error {
	return db.conn.Close()
}
