// ArtScout - Art Event and Artist Discovery
// Copyright 2026 ArtScout Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/artscout/artscout

package api

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"

	"github.com/artscout/artscout/internal/logging"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// pageNames lists every renderable page. Each page is parsed together
// with the shared layout into its own template set.
var pageNames = []string{
	"login", "register", "logout",
	"discover", "artworks", "events",
	"artists", "artist", "profile",
}

// Templates holds the parsed page templates.
type Templates struct {
	pages map[string]*template.Template
}

// NewTemplates parses all embedded page templates. Called once at
// startup; a parse error here is a build defect.
func NewTemplates() (*Templates, error) {
	pages := make(map[string]*template.Template, len(pageNames))
	for _, name := range pageNames {
		tmpl, err := template.ParseFS(templateFS, "templates/layout.html", "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}
		pages[name] = tmpl
	}
	return &Templates{pages: pages}, nil
}

// Render writes the named page with the given status code. The page is
// rendered to a buffer first so a template error never produces a
// half-written response.
func (t *Templates) Render(w http.ResponseWriter, r *http.Request, status int, name string, data interface{}) {
	tmpl, ok := t.pages[name]
	if !ok {
		logging.Ctx(r.Context()).Error().Str("template", name).Msg("unknown template")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout.html", data); err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Str("template", name).Msg("template execution failed")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

// StaticFS returns the embedded static assets rooted at the static
// directory, for serving under /resources/.
func StaticFS() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		// The static directory is embedded at compile time.
		panic(err)
	}
	return sub
}
