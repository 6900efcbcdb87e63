// ArtScout - Art Event and Artist Discovery
// Copyright 2026 ArtScout Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/artscout/artscout

package auth

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("1234", DefaultBcryptCost)
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	if hash == "1234" {
		t.Fatal("hash must not equal the plaintext password")
	}

	if !VerifyPassword(hash, "1234") {
		t.Error("expected correct password to verify")
	}
	if VerifyPassword(hash, "wrong") {
		t.Error("expected wrong password to fail verification")
	}
}

func TestHashPasswordZeroCost(t *testing.T) {
	hash, err := HashPassword("secret", 0)
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	if !VerifyPassword(hash, "secret") {
		t.Error("hash produced with default cost should verify")
	}
}

func TestNewSession(t *testing.T) {
	session := NewSession(42, "abc", "abc@example.com", time.Hour)

	if session.ID == "" {
		t.Error("expected a non-empty session ID")
	}
	if len(session.ID) != 64 {
		t.Errorf("expected 64 hex chars, got %d", len(session.ID))
	}
	if session.UserID != 42 {
		t.Errorf("expected user ID 42, got %d", session.UserID)
	}
	if session.IsExpired() {
		t.Error("fresh session must not be expired")
	}

	other := NewSession(42, "abc", "abc@example.com", time.Hour)
	if other.ID == session.ID {
		t.Error("session IDs must be unique")
	}
}

func TestMemoryStoreLifecycle(t *testing.T) {
	ctx := context.Background()
	store := NewMemorySessionStore()
	defer store.Close()

	session := NewSession(1, "abc", "abc@example.com", time.Hour)
	if err := store.Create(ctx, session); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	got, err := store.Get(ctx, session.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.Username != "abc" || got.UserID != 1 {
		t.Errorf("unexpected session contents: %+v", got)
	}

	if err := store.Delete(ctx, session.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := store.Get(ctx, session.ID); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("expected ErrSessionNotFound after delete, got %v", err)
	}

	// Deleting an absent session is not an error.
	if err := store.Delete(ctx, "missing"); err != nil {
		t.Errorf("Delete of absent session returned %v", err)
	}
}

func TestMemoryStoreExpiry(t *testing.T) {
	ctx := context.Background()
	store := NewMemorySessionStore()
	defer store.Close()

	expired := NewSession(1, "abc", "abc@example.com", -time.Minute)
	live := NewSession(2, "def", "def@example.com", time.Hour)
	for _, s := range []*Session{expired, live} {
		if err := store.Create(ctx, s); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
	}

	if _, err := store.Get(ctx, expired.ID); !errors.Is(err, ErrSessionExpired) {
		t.Errorf("expected ErrSessionExpired, got %v", err)
	}

	removed, err := store.CleanupExpired(ctx)
	if err != nil {
		t.Fatalf("CleanupExpired failed: %v", err)
	}
	if removed != 1 {
		t.Errorf("expected 1 removed session, got %d", removed)
	}
	if _, err := store.Get(ctx, live.ID); err != nil {
		t.Errorf("live session should survive cleanup, got %v", err)
	}
}

func TestBadgerStoreLifecycle(t *testing.T) {
	ctx := context.Background()
	store, err := OpenBadgerSessionStore(t.TempDir())
	if err != nil {
		t.Fatalf("OpenBadgerSessionStore failed: %v", err)
	}
	defer store.Close()

	session := NewSession(7, "ghi", "ghi@example.com", time.Hour)
	if err := store.Create(ctx, session); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	got, err := store.Get(ctx, session.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.UserID != 7 || got.Username != "ghi" {
		t.Errorf("unexpected session contents: %+v", got)
	}

	if err := store.Delete(ctx, session.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := store.Get(ctx, session.ID); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("expected ErrSessionNotFound after delete, got %v", err)
	}
}

func TestBadgerStoreCleanupExpired(t *testing.T) {
	ctx := context.Background()
	store, err := OpenBadgerSessionStore(t.TempDir())
	if err != nil {
		t.Fatalf("OpenBadgerSessionStore failed: %v", err)
	}
	defer store.Close()

	expired := NewSession(1, "abc", "abc@example.com", -time.Minute)
	live := NewSession(2, "def", "def@example.com", time.Hour)
	for _, s := range []*Session{expired, live} {
		if err := store.Create(ctx, s); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
	}

	removed, err := store.CleanupExpired(ctx)
	if err != nil {
		t.Fatalf("CleanupExpired failed: %v", err)
	}
	if removed != 1 {
		t.Errorf("expected 1 removed session, got %d", removed)
	}
	if _, err := store.Get(ctx, live.ID); err != nil {
		t.Errorf("live session should survive cleanup, got %v", err)
	}
}
