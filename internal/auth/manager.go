// ArtScout - Art Event and Artist Discovery
// Copyright 2026 ArtScout Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/artscout/artscout

package auth

import (
	"context"
	"net/http"
	"time"

	"github.com/artscout/artscout/internal/logging"
	"github.com/artscout/artscout/internal/metrics"
	"github.com/artscout/artscout/internal/models"
)

// SessionCookieName is the cookie carrying the opaque session ID.
const SessionCookieName = "artscout_session"

type sessionContextKey struct{}

// Manager couples a SessionStore with cookie handling and the session
// TTL. It is the single entry point handlers use for login, logout, and
// session lookup.
type Manager struct {
	store SessionStore
	ttl   time.Duration
}

// NewManager creates a session manager over the given store.
func NewManager(store SessionStore, ttl time.Duration) *Manager {
	return &Manager{store: store, ttl: ttl}
}

// Login creates a session holding a snapshot of the user and sets the
// session cookie on the response.
func (m *Manager) Login(ctx context.Context, w http.ResponseWriter, user *models.User) (*Session, error) {
	session := NewSession(user.ID, user.Username, user.Email, m.ttl)
	if err := m.store.Create(ctx, session); err != nil {
		return nil, err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    session.ID,
		Path:     "/",
		Expires:  session.ExpiresAt,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	metrics.SessionsActive.Inc()
	return session, nil
}

// Logout destroys the request's session (if any) and clears the cookie.
func (m *Manager) Logout(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	cookie, err := r.Cookie(SessionCookieName)
	if err == nil && cookie.Value != "" {
		if err := m.store.Delete(ctx, cookie.Value); err != nil {
			return err
		}
		metrics.SessionsActive.Dec()
	}

	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// SessionFromRequest resolves the request's session cookie against the
// store. Returns ErrSessionNotFound when no valid cookie is present.
func (m *Manager) SessionFromRequest(ctx context.Context, r *http.Request) (*Session, error) {
	cookie, err := r.Cookie(SessionCookieName)
	if err != nil || cookie.Value == "" {
		return nil, ErrSessionNotFound
	}
	return m.store.Get(ctx, cookie.Value)
}

// RequireSession is the route guard for authenticated pages: requests
// without a live session are redirected to the login entry point.
func (m *Manager) RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, err := m.SessionFromRequest(r.Context(), r)
		if err != nil {
			logging.Ctx(r.Context()).Debug().
				Str("path", r.URL.Path).
				Msg("unauthenticated request redirected to login")
			http.Redirect(w, r, "/login", http.StatusFound)
			return
		}

		ctx := context.WithValue(r.Context(), sessionContextKey{}, session)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// SessionFromContext returns the session the guard attached to the
// request context.
func SessionFromContext(ctx context.Context) (*Session, bool) {
	session, ok := ctx.Value(sessionContextKey{}).(*Session)
	return session, ok
}
