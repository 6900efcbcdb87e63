// ArtScout - Art Event and Artist Discovery
// Copyright 2026 ArtScout Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/artscout/artscout

package auth

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"sync"
	"time"

	"github.com/artscout/artscout/internal/metrics"
)

// Session-related errors
var (
	// ErrSessionNotFound is returned when a session is not in the store.
	ErrSessionNotFound = errors.New("session not found")

	// ErrSessionExpired is returned when a session exists but has expired.
	ErrSessionExpired = errors.New("session expired")
)

// Session is an authenticated user's server-side state, keyed by an
// opaque ID carried in the session cookie. It holds a snapshot of the
// user identity taken at login.
type Session struct {
	// ID is the opaque session identifier.
	ID string `json:"id"`

	// UserID is the authenticated user's database id.
	UserID int64 `json:"user_id"`

	// Username is the authenticated user's username.
	Username string `json:"username"`

	// Email is the authenticated user's email address.
	Email string `json:"email"`

	// CreatedAt is when the session was created.
	CreatedAt time.Time `json:"created_at"`

	// ExpiresAt is when the session expires.
	ExpiresAt time.Time `json:"expires_at"`
}

// IsExpired returns true if the session has expired.
func (s *Session) IsExpired() bool {
	return time.Now().After(s.ExpiresAt)
}

// NewSession creates a session for the given user with the given TTL.
func NewSession(userID int64, username, email string, ttl time.Duration) *Session {
	now := time.Now()
	return &Session{
		ID:        generateSessionID(),
		UserID:    userID,
		Username:  username,
		Email:     email,
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}
}

// generateSessionID generates a cryptographically secure session ID.
func generateSessionID() string {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		// Fallback to a still-random but weaker ID.
		return hex.EncodeToString([]byte(time.Now().String()))
	}
	return hex.EncodeToString(bytes)
}

// SessionStore is the interface for session storage backends.
type SessionStore interface {
	// Create stores a new session.
	Create(ctx context.Context, session *Session) error

	// Get retrieves a session by ID. Returns ErrSessionNotFound if
	// absent and ErrSessionExpired if present but expired.
	Get(ctx context.Context, id string) (*Session, error)

	// Delete removes a session by ID. Deleting an absent session is
	// not an error.
	Delete(ctx context.Context, id string) error

	// CleanupExpired removes all expired sessions and returns the
	// count removed.
	CleanupExpired(ctx context.Context) (int, error)

	// Close releases store resources.
	Close() error
}

// MemorySessionStore is an in-memory SessionStore. Suitable for
// development and tests; sessions do not survive restarts.
type MemorySessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewMemorySessionStore creates a new in-memory session store.
func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{
		sessions: make(map[string]*Session),
	}
}

// Create stores a new session.
func (s *MemorySessionStore) Create(ctx context.Context, session *Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := *session
	s.sessions[session.ID] = &stored
	return nil
}

// Get retrieves a session by ID.
func (s *MemorySessionStore) Get(ctx context.Context, id string) (*Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	if session.IsExpired() {
		return nil, ErrSessionExpired
	}

	copied := *session
	return &copied, nil
}

// Delete removes a session by ID.
func (s *MemorySessionStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, id)
	return nil
}

// CleanupExpired removes all expired sessions.
func (s *MemorySessionStore) CleanupExpired(ctx context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for id, session := range s.sessions {
		if session.IsExpired() {
			delete(s.sessions, id)
			count++
		}
	}
	return count, nil
}

// Close implements SessionStore; the memory store has nothing to release.
func (s *MemorySessionStore) Close() error {
	return nil
}

// reapExpired removes expired sessions and keeps the live-session
// gauge in step with the store, since expired sessions never pass
// through Logout.
func reapExpired(ctx context.Context, store SessionStore) (int, error) {
	count, err := store.CleanupExpired(ctx)
	if count > 0 {
		metrics.SessionsActive.Sub(float64(count))
	}
	return count, err
}

// StartCleanupRoutine starts a goroutine that periodically removes
// expired sessions from the store until the returned channel is closed.
func StartCleanupRoutine(store SessionStore, interval time.Duration) chan struct{} {
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				//nolint:errcheck // background cleanup, errors are non-critical
				reapExpired(context.Background(), store)
			case <-done:
				return
			}
		}
	}()
	return done
}
