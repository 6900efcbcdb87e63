// ArtScout - Art Event and Artist Discovery
// Copyright 2026 ArtScout Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/artscout/artscout

package auth

import (
	"fmt"

	"github.com/artscout/artscout/internal/config"
)

// NewSessionStore builds the session store backend selected by the
// configuration.
func NewSessionStore(cfg config.SecurityConfig) (SessionStore, error) {
	switch cfg.SessionStore {
	case "memory":
		return NewMemorySessionStore(), nil
	case "badger":
		return OpenBadgerSessionStore(cfg.SessionStorePath)
	default:
		return nil, fmt.Errorf("unknown session store %q", cfg.SessionStore)
	}
}
