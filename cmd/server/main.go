// ArtScout - Art Event and Artist Discovery
// Copyright 2026 ArtScout Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/artscout/artscout

// Package main is the entry point for the ArtScout server.
//
// ArtScout is a server-rendered web application for discovering art
// events and artists. It aggregates Artsy fairs, artworks, and trending
// artists, the Art Institute of Chicago artist catalog enriched with
// Wikipedia summaries, and Ticketmaster fine-art events near the
// visitor, alongside community events submitted by users.
//
// The server initializes components in the following order:
//
//  1. Configuration: Koanf v2 layered sources (defaults, config file,
//     environment variables)
//  2. Logging: zerolog, configured from the loaded settings
//  3. Database: PostgreSQL via pgx, with embedded goose migrations
//  4. Sessions: in-memory or BadgerDB store with periodic cleanup
//  5. Upstream clients: per-service circuit breakers and rate limiters
//  6. HTTP server: chi router with graceful shutdown on SIGINT/SIGTERM
//
// Required environment for the full feature set: POSTGRES_DB,
// POSTGRES_USER, POSTGRES_PASSWORD, X_XAPP_TOKEN, TICKET_API_KEY,
// GOOGLE_MAPS_API_KEY. See internal/config for the complete mapping.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/artscout/artscout/internal/api"
	"github.com/artscout/artscout/internal/auth"
	"github.com/artscout/artscout/internal/config"
	"github.com/artscout/artscout/internal/database"
	"github.com/artscout/artscout/internal/logging"
	"github.com/artscout/artscout/internal/upstream"
)

// Demo account used by integration tests and local development.
const (
	demoUsername = "abc"
	demoPassword = "1234"
	demoEmail    = "abc@example.com"
)

const (
	shutdownTimeout        = 10 * time.Second
	sessionCleanupInterval = 15 * time.Minute
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		// Config is not available yet; the default logger applies.
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().
		Str("addr", cfg.Server.Addr()).
		Str("session_store", cfg.Security.SessionStore).
		Msg("Starting ArtScout")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := database.Open(ctx, cfg.Database.DSN())
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to open database")
	}
	defer func() {
		if err := db.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing database")
		}
	}()

	if err := db.RunMigrations(ctx); err != nil {
		logging.Fatal().Err(err).Msg("Failed to run migrations")
	}
	logging.Info().Msg("Database ready")

	if cfg.Security.SeedDemoUser {
		hash, err := auth.HashPassword(demoPassword, cfg.Security.BcryptCost)
		if err != nil {
			logging.Fatal().Err(err).Msg("Failed to hash demo password")
		}
		if err := db.SeedDemoUser(ctx, demoUsername, hash, demoEmail); err != nil {
			logging.Fatal().Err(err).Msg("Failed to seed demo user")
		}
	}

	sessionStore, err := auth.NewSessionStore(cfg.Security)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to open session store")
	}
	defer func() {
		if err := sessionStore.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing session store")
		}
	}()

	cleanupDone := auth.StartCleanupRoutine(sessionStore, sessionCleanupInterval)
	defer close(cleanupDone)

	sessions := auth.NewManager(sessionStore, cfg.Security.SessionTimeout)
	services := upstream.NewServices(cfg.Upstream)

	server, err := api.NewServer(cfg, db, sessions, services)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to build HTTP server")
	}

	httpServer := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      server.Routes(),
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		logging.Info().Str("addr", httpServer.Addr).Msg("HTTP server listening")
		serverErr <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Error().Err(err).Msg("HTTP server failed")
			os.Exit(1)
		}
	case <-ctx.Done():
		logging.Info().Msg("Shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logging.Error().Err(err).Msg("Graceful shutdown failed")
	} else {
		logging.Info().Msg("Server stopped")
	}
}
