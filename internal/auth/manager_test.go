// ArtScout - Art Event and Artist Discovery
// Copyright 2026 ArtScout Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/artscout/artscout

package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/artscout/artscout/internal/metrics"
	"github.com/artscout/artscout/internal/models"
)

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	store := NewMemorySessionStore()
	t.Cleanup(func() { store.Close() })
	return NewManager(store, time.Hour)
}

func TestLoginSetsCookie(t *testing.T) {
	mgr := newTestManager(t)
	rec := httptest.NewRecorder()

	session, err := mgr.Login(t.Context(), rec, &models.User{
		ID:       1,
		Username: "abc",
		Email:    "abc@example.com",
	})
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}

	cookies := rec.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("expected 1 cookie, got %d", len(cookies))
	}
	cookie := cookies[0]
	if cookie.Name != SessionCookieName {
		t.Errorf("expected cookie %q, got %q", SessionCookieName, cookie.Name)
	}
	if cookie.Value != session.ID {
		t.Error("cookie value should carry the session ID")
	}
	if !cookie.HttpOnly {
		t.Error("session cookie must be HttpOnly")
	}
}

func TestLogoutClearsSession(t *testing.T) {
	mgr := newTestManager(t)

	loginRec := httptest.NewRecorder()
	session, err := mgr.Login(t.Context(), loginRec, &models.User{ID: 1, Username: "abc"})
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/logout", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: session.ID})
	rec := httptest.NewRecorder()

	if err := mgr.Logout(t.Context(), rec, req); err != nil {
		t.Fatalf("Logout failed: %v", err)
	}

	if _, err := mgr.store.Get(t.Context(), session.ID); err == nil {
		t.Error("session should be gone after logout")
	}

	cookies := rec.Result().Cookies()
	if len(cookies) != 1 || cookies[0].MaxAge != -1 {
		t.Error("logout should expire the session cookie")
	}
}

func TestRequireSessionRedirectsWithoutCookie(t *testing.T) {
	mgr := newTestManager(t)

	handler := mgr.RequireSession(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler must not run for unauthenticated requests")
	}))

	req := httptest.NewRequest(http.MethodGet, "/discover", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusFound {
		t.Errorf("expected status %d, got %d", http.StatusFound, rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/login" {
		t.Errorf("expected redirect to /login, got %q", loc)
	}
}

func TestRequireSessionRedirectsWhenExpired(t *testing.T) {
	store := NewMemorySessionStore()
	t.Cleanup(func() { store.Close() })
	mgr := NewManager(store, -time.Minute)

	rec := httptest.NewRecorder()
	session, err := mgr.Login(t.Context(), rec, &models.User{ID: 1, Username: "abc"})
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/discover", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: session.ID})
	guardRec := httptest.NewRecorder()

	mgr.RequireSession(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler must not run for expired sessions")
	})).ServeHTTP(guardRec, req)

	if guardRec.Code != http.StatusFound {
		t.Errorf("expected status %d, got %d", http.StatusFound, guardRec.Code)
	}
}

func TestRequireSessionPassesThrough(t *testing.T) {
	mgr := newTestManager(t)

	rec := httptest.NewRecorder()
	session, err := mgr.Login(t.Context(), rec, &models.User{
		ID:       9,
		Username: "abc",
		Email:    "abc@example.com",
	})
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}

	var seen *Session
	handler := mgr.RequireSession(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s, ok := SessionFromContext(r.Context())
		if !ok {
			t.Fatal("expected session in request context")
		}
		seen = s
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/discover", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: session.ID})
	guardRec := httptest.NewRecorder()
	handler.ServeHTTP(guardRec, req)

	if guardRec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, guardRec.Code)
	}
	if seen == nil || seen.UserID != 9 || seen.Username != "abc" {
		t.Errorf("unexpected session in context: %+v", seen)
	}
}

func TestReapExpiredAdjustsSessionGauge(t *testing.T) {
	store := NewMemorySessionStore()
	t.Cleanup(func() { store.Close() })

	live := NewManager(store, time.Hour)
	stale := NewManager(store, -time.Minute)
	user := &models.User{ID: 1, Username: "abc", Email: "abc@example.com"}

	before := testutil.ToFloat64(metrics.SessionsActive)
	if _, err := live.Login(t.Context(), httptest.NewRecorder(), user); err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if _, err := stale.Login(t.Context(), httptest.NewRecorder(), user); err != nil {
		t.Fatalf("Login failed: %v", err)
	}

	count, err := reapExpired(t.Context(), store)
	if err != nil {
		t.Fatalf("reapExpired failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 reaped session, got %d", count)
	}

	// Only the live session remains counted.
	if got := testutil.ToFloat64(metrics.SessionsActive); got != before+1 {
		t.Errorf("expected gauge %v, got %v", before+1, got)
	}
}
