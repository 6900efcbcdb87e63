// ArtScout - Art Event and Artist Discovery
// Copyright 2026 ArtScout Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/artscout/artscout

package config

import (
	"testing"
	"time"
)

func TestDefaultConfig_IsValid(t *testing.T) {
	cfg := defaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default configuration should validate, got: %v", err)
	}
}

func TestLoad_EnvOverridesDefaults(t *testing.T) {
	t.Setenv("HTTP_PORT", "8081")
	t.Setenv("POSTGRES_DB", "artscout_test")
	t.Setenv("X_XAPP_TOKEN", "xapp-token-123")
	t.Setenv("TICKET_API_KEY", "tm-key")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("SESSION_TIMEOUT", "2h")
	t.Setenv("SEED_DEMO_USER", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Server.Port != 8081 {
		t.Errorf("server.port = %d, want 8081", cfg.Server.Port)
	}
	if cfg.Database.Name != "artscout_test" {
		t.Errorf("database.name = %q, want artscout_test", cfg.Database.Name)
	}
	if cfg.Upstream.ArtsyToken != "xapp-token-123" {
		t.Errorf("upstream.artsy_token = %q, want xapp-token-123", cfg.Upstream.ArtsyToken)
	}
	if cfg.Upstream.TicketmasterKey != "tm-key" {
		t.Errorf("upstream.ticketmaster_key = %q, want tm-key", cfg.Upstream.TicketmasterKey)
	}
	if len(cfg.Security.CORSOrigins) != 2 || cfg.Security.CORSOrigins[1] != "https://b.example" {
		t.Errorf("security.cors_origins = %v, want two trimmed origins", cfg.Security.CORSOrigins)
	}
	if cfg.Security.SessionTimeout != 2*time.Hour {
		t.Errorf("security.session_timeout = %s, want 2h", cfg.Security.SessionTimeout)
	}
	if !cfg.Security.SeedDemoUser {
		t.Error("security.seed_demo_user = false, want true")
	}
}

func TestLoad_UnmappedEnvVarsIgnored(t *testing.T) {
	t.Setenv("PATH_SOMETHING_RANDOM", "x")
	t.Setenv("SERVER", "not-a-config")

	if _, err := Load(); err != nil {
		t.Fatalf("Load() should ignore unmapped env vars, got: %v", err)
	}
}

func TestValidate_Failures(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"bad port", func(c *Config) { c.Server.Port = 0 }},
		{"missing db name", func(c *Config) { c.Database.Name = "" }},
		{"missing db user", func(c *Config) { c.Database.User = "" }},
		{"unknown session store", func(c *Config) { c.Security.SessionStore = "redis" }},
		{"badger without path", func(c *Config) {
			c.Security.SessionStore = "badger"
			c.Security.SessionStorePath = ""
		}},
		{"zero session timeout", func(c *Config) { c.Security.SessionTimeout = 0 }},
		{"bcrypt cost out of range", func(c *Config) { c.Security.BcryptCost = 99 }},
		{"zero upstream timeout", func(c *Config) { c.Upstream.Timeout = 0 }},
		{"bad log format", func(c *Config) { c.Logging.Format = "xml" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Validate() = nil, want error")
			}
		})
	}
}

func TestDatabaseDSN(t *testing.T) {
	c := DatabaseConfig{
		Host: "db", Port: 5432, Name: "artscout",
		User: "app", Password: "secret", SSLMode: "disable",
	}
	want := "postgres://app:secret@db:5432/artscout?sslmode=disable"
	if got := c.DSN(); got != want {
		t.Errorf("DSN() = %q, want %q", got, want)
	}
}
