// ArtScout - Art Event and Artist Discovery
// Copyright 2026 ArtScout Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/artscout/artscout

// Package config loads application configuration with layered sources:
// built-in defaults, an optional YAML config file, and environment
// variables (highest priority).
package config

import (
	"fmt"
	"time"
)

// Config is the root configuration for the ArtScout server.
type Config struct {
	Server   ServerConfig   `koanf:"server"`
	Database DatabaseConfig `koanf:"database"`
	Security SecurityConfig `koanf:"security"`
	Upstream UpstreamConfig `koanf:"upstream"`
	Logging  LoggingConfig  `koanf:"logging"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host    string        `koanf:"host"`
	Port    int           `koanf:"port"`
	Timeout time.Duration `koanf:"timeout"`
}

// Addr returns the listen address in host:port form.
func (c ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// DatabaseConfig holds Postgres connection settings.
type DatabaseConfig struct {
	Host     string `koanf:"host"`
	Port     int    `koanf:"port"`
	Name     string `koanf:"name"`
	User     string `koanf:"user"`
	Password string `koanf:"password"`
	SSLMode  string `koanf:"ssl_mode"`
}

// DSN returns the connection string for the pgx stdlib driver.
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.Name, c.SSLMode)
}

// SecurityConfig holds authentication, session, and rate limit settings.
type SecurityConfig struct {
	// SessionTimeout is how long a session lives after login.
	SessionTimeout time.Duration `koanf:"session_timeout"`

	// SessionStore selects the session backend: "memory" or "badger".
	SessionStore string `koanf:"session_store"`

	// SessionStorePath is the BadgerDB directory (badger store only).
	SessionStorePath string `koanf:"session_store_path"`

	// BcryptCost is the bcrypt work factor for password hashing.
	BcryptCost int `koanf:"bcrypt_cost"`

	// RateLimitReqs/RateLimitWindow bound requests per client IP.
	RateLimitReqs   int           `koanf:"rate_limit_reqs"`
	RateLimitWindow time.Duration `koanf:"rate_limit_window"`

	// LoginRateLimitReqs/LoginRateLimitWindow bound credential attempts
	// per client IP (brute force prevention).
	LoginRateLimitReqs   int           `koanf:"login_rate_limit_reqs"`
	LoginRateLimitWindow time.Duration `koanf:"login_rate_limit_window"`

	// CORSOrigins lists allowed cross-origin request origins.
	CORSOrigins []string `koanf:"cors_origins"`

	// SeedDemoUser inserts the demo account (abc/1234) at startup if it
	// does not exist. Intended for test and development databases.
	SeedDemoUser bool `koanf:"seed_demo_user"`
}

// UpstreamConfig holds third-party API settings.
type UpstreamConfig struct {
	ArtsyURL        string `koanf:"artsy_url"`
	ArtsyToken      string `koanf:"artsy_token"`
	ArticURL        string `koanf:"artic_url"`
	WikipediaURL    string `koanf:"wikipedia_url"`
	TicketmasterURL string `koanf:"ticketmaster_url"`
	TicketmasterKey string `koanf:"ticketmaster_key"`
	GeocodingURL    string `koanf:"geocoding_url"`
	GoogleMapsKey   string `koanf:"google_maps_key"`

	// Timeout bounds each outbound API call.
	Timeout time.Duration `koanf:"timeout"`

	// RequestsPerSecond throttles outbound calls per upstream service.
	RequestsPerSecond float64 `koanf:"requests_per_second"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// defaultConfig returns a Config with all default values. Defaults are
// applied first, then overridden by config file and env vars.
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:    "0.0.0.0",
			Port:    3000,
			Timeout: 30 * time.Second,
		},
		Database: DatabaseConfig{
			Host:    "localhost",
			Port:    5432,
			Name:    "artscout",
			User:    "artscout",
			SSLMode: "disable",
		},
		Security: SecurityConfig{
			SessionTimeout:       24 * time.Hour,
			SessionStore:         "memory",
			SessionStorePath:     "/data/sessions",
			BcryptCost:           10,
			RateLimitReqs:        100,
			RateLimitWindow:      time.Minute,
			LoginRateLimitReqs:   5,
			LoginRateLimitWindow: 5 * time.Minute,
			CORSOrigins:          []string{"*"},
			SeedDemoUser:         false,
		},
		Upstream: UpstreamConfig{
			ArtsyURL:          "https://api.artsy.net/api",
			ArticURL:          "https://api.artic.edu/api/v1",
			WikipediaURL:      "https://en.wikipedia.org/w/api.php",
			TicketmasterURL:   "https://app.ticketmaster.com/discovery/v2",
			GeocodingURL:      "https://maps.googleapis.com/maps/api/geocode/json",
			Timeout:           10 * time.Second,
			RequestsPerSecond: 5,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
	}
}
