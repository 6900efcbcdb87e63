// ArtScout - Art Event and Artist Discovery
// Copyright 2026 ArtScout Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/artscout/artscout

package upstream

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestDiscoverAllOrNothing(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/fairs":
			_, _ = w.Write([]byte(`{"_embedded":{"fairs":[{"name":"Frieze"}]}}`))
		case "/artworks":
			http.Error(w, "upstream down", http.StatusBadGateway)
		case "/artists":
			_, _ = w.Write([]byte(`{"_embedded":{"artists":[{"name":"Someone"}]}}`))
		default:
			t.Errorf("unexpected path %q", r.URL.Path)
		}
	}))
	defer server.Close()

	services := &Services{Artsy: NewArtsyClient(server.URL, "tok", testTimeout, 100)}
	if _, err := services.Discover(t.Context()); err == nil {
		t.Fatal("a single failed fetch must fail the whole discover result")
	}
}

func TestDiscoverSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/fairs":
			_, _ = w.Write([]byte(`{"_embedded":{"fairs":[{"name":"Frieze"}]}}`))
		case "/artworks":
			_, _ = w.Write([]byte(`{"_embedded":{"artworks":[{"title":"Water Lilies"}]}}`))
		case "/artists":
			_, _ = w.Write([]byte(`{"_embedded":{"artists":[{"name":"Claude Monet"}]}}`))
		}
	}))
	defer server.Close()

	services := &Services{Artsy: NewArtsyClient(server.URL, "tok", testTimeout, 100)}
	result, err := services.Discover(t.Context())
	if err != nil {
		t.Fatalf("Discover failed: %v", err)
	}
	if len(result.Fairs) != 1 || len(result.Artworks) != 1 || len(result.Artists) != 1 {
		t.Errorf("unexpected result: %+v", result)
	}
}

func TestArtistDirectoryEnrichment(t *testing.T) {
	wiki := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"query":{"pages":{"1":{"thumbnail":{"source":"https://img.example/t.jpg"},"extract":"A painter."}}}}`))
	}))
	defer wiki.Close()

	artic := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data":[
			{"id":1,"title":"First Artist","birth_date":1900,"death_date":1980},
			{"id":2,"title":"Second Artist","birth_date":1950}
		]}`))
	}))
	defer artic.Close()

	services := &Services{
		Artic:     NewArticClient(artic.URL, testTimeout, 100),
		Wikipedia: NewWikipediaClient(wiki.URL, testTimeout, 100),
	}

	profiles, err := services.ArtistDirectory(t.Context())
	if err != nil {
		t.Fatalf("ArtistDirectory failed: %v", err)
	}
	if len(profiles) != 2 {
		t.Fatalf("expected 2 profiles, got %d", len(profiles))
	}
	if profiles[0].ID != "1" || profiles[0].Name != "First Artist" {
		t.Errorf("unexpected first profile: %+v", profiles[0])
	}
	if profiles[0].Biography != "A painter." || profiles[0].Thumbnail == "" {
		t.Errorf("expected wikipedia enrichment, got %+v", profiles[0])
	}
	if profiles[1].BirthYear != 1950 || profiles[1].DeathYear != 0 {
		t.Errorf("unexpected years: %+v", profiles[1])
	}
}

func TestArtistProfile(t *testing.T) {
	wiki := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"query":{"pages":{"9":{"extract":"Impressionist."}}}}`))
	}))
	defer wiki.Close()

	artic := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data":{"id":35809,"title":"Claude Monet","birth_date":1840,"death_date":1926}}`))
	}))
	defer artic.Close()

	services := &Services{
		Artic:     NewArticClient(artic.URL, testTimeout, 100),
		Wikipedia: NewWikipediaClient(wiki.URL, testTimeout, 100),
	}

	profile, err := services.ArtistProfile(t.Context(), "35809")
	if err != nil {
		t.Fatalf("ArtistProfile failed: %v", err)
	}
	if profile.Name != "Claude Monet" || profile.BirthYear != 1840 || profile.DeathYear != 1926 {
		t.Errorf("unexpected profile: %+v", profile)
	}
	if profile.Biography != "Impressionist." {
		t.Errorf("unexpected biography %q", profile.Biography)
	}
}
