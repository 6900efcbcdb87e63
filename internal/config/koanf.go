// ArtScout - Art Event and Artist Discovery
// Copyright 2026 ArtScout Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/artscout/artscout

package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists the paths where config files are searched in
// order of priority. The first file found wins.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/artscout/config.yaml",
	"/etc/artscout/config.yml",
}

// ConfigPathEnvVar overrides the config file path.
const ConfigPathEnvVar = "CONFIG_PATH"

// Load loads configuration using Koanf v2 with layered sources:
//  1. Defaults: built-in sensible defaults
//  2. Config file: optional YAML config file (if it exists)
//  3. Environment variables: override any setting
func Load() (*Config, error) {
	k := koanf.New(".")

	// Layer 1: defaults from struct
	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// Layer 2: optional config file
	if configPath := findConfigFile(); configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	// Layer 3: environment variables (highest priority)
	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	// Env vars arrive as strings; split known slice fields on commas.
	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// findConfigFile returns the first existing config file path, or "".
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}

	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// sliceConfigPaths defines which config paths are parsed as
// comma-separated slices when sourced from env vars.
var sliceConfigPaths = []string{
	"security.cors_origins",
}

func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		val := k.Get(path)
		if val == nil {
			continue
		}

		// Already a slice (from the YAML file).
		if _, ok := val.([]interface{}); ok {
			continue
		}
		if _, ok := val.([]string); ok {
			continue
		}

		strVal, ok := val.(string)
		if !ok || strVal == "" {
			continue
		}

		parts := strings.Split(strVal, ",")
		trimmed := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				trimmed = append(trimmed, p)
			}
		}
		if len(trimmed) > 0 {
			if err := k.Set(path, trimmed); err != nil {
				return fmt.Errorf("failed to set %s: %w", path, err)
			}
		}
	}
	return nil
}

// envTransformFunc maps environment variable names to koanf config
// paths. Unmapped variables are skipped so that unrelated environment
// variables do not pollute the configuration.
//
// Examples:
//   - HTTP_PORT -> server.port
//   - POSTGRES_DB -> database.name
//   - X_XAPP_TOKEN -> upstream.artsy_token
func envTransformFunc(key string) string {
	key = strings.ToLower(key)

	envMappings := map[string]string{
		// Server mappings
		"http_host":    "server.host",
		"http_port":    "server.port",
		"http_timeout": "server.timeout",

		// Database mappings (POSTGRES_* kept for docker-compose setups)
		"database_host":     "database.host",
		"database_port":     "database.port",
		"database_name":     "database.name",
		"database_user":     "database.user",
		"database_password": "database.password",
		"database_ssl_mode": "database.ssl_mode",
		"postgres_host":     "database.host",
		"postgres_db":       "database.name",
		"postgres_user":     "database.user",
		"postgres_password": "database.password",

		// Security mappings
		"session_timeout":         "security.session_timeout",
		"session_store":           "security.session_store",
		"session_store_path":      "security.session_store_path",
		"bcrypt_cost":             "security.bcrypt_cost",
		"rate_limit_requests":     "security.rate_limit_reqs",
		"rate_limit_window":       "security.rate_limit_window",
		"login_rate_limit":        "security.login_rate_limit_reqs",
		"login_rate_limit_window": "security.login_rate_limit_window",
		"cors_origins":            "security.cors_origins",
		"seed_demo_user":          "security.seed_demo_user",

		// Upstream mappings (X_XAPP_TOKEN, TICKET_API_KEY, and
		// GOOGLE_MAPS_API_KEY match the names the upstream vendors use
		// in their own docs)
		"artsy_url":            "upstream.artsy_url",
		"artsy_token":          "upstream.artsy_token",
		"x_xapp_token":         "upstream.artsy_token",
		"artic_url":            "upstream.artic_url",
		"wikipedia_url":        "upstream.wikipedia_url",
		"ticketmaster_url":     "upstream.ticketmaster_url",
		"ticketmaster_key":     "upstream.ticketmaster_key",
		"ticket_api_key":       "upstream.ticketmaster_key",
		"geocoding_url":        "upstream.geocoding_url",
		"google_maps_api_key":  "upstream.google_maps_key",
		"upstream_timeout":     "upstream.timeout",
		"upstream_rate_limit":  "upstream.requests_per_second",

		// Logging mappings
		"log_level":  "logging.level",
		"log_format": "logging.format",
		"log_caller": "logging.caller",
	}

	if mapped, ok := envMappings[key]; ok {
		return mapped
	}
	return ""
}
