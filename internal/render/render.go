// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package render provides HTML template rendering for the public wiki
// pages. Every page template is paired with the base layout, which loads
// the click-routing script and the site stylesheet.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"wikimark/internal/models"
)

//go:embed templates/*.html
var templateFS embed.FS

// PageData holds all data passed to page templates.
type PageData struct {
	Title     string            // Page title for the <title> tag
	SiteName  string            // Site name shown in the header
	Slug      string            // Document slug ("" on the index)
	Body      string            // Pre-rendered HTML body
	UpdatedAt time.Time         // Last modification of the document
	Documents []models.Document // Document listing for the index
}

// Renderer handles template parsing and execution for wiki pages.
type Renderer struct {
	templates map[string]*template.Template
	siteName  string
}

// New creates a Renderer by parsing all page templates from the embedded
// filesystem. Each page template is paired with the base layout.
// When devMode is true, the layout pulls TailwindCSS from the CDN; when
// false, it references the compiled local stylesheet.
func New(siteName string, devMode bool) (*Renderer, error) {
	r := &Renderer{
		templates: make(map[string]*template.Template),
		siteName:  siteName,
	}

	funcMap := template.FuncMap{
		// safeHTML marks pre-rendered document HTML as trusted. The
		// markdown engine escapes all author input before building it.
		"safeHTML": func(s string) template.HTML {
			return template.HTML(s)
		},
		"isDev": func() bool {
			return devMode
		},
	}

	entries, err := templateFS.ReadDir("templates")
	if err != nil {
		return nil, fmt.Errorf("read embedded templates: %w", err)
	}

	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || name == "base.html" {
			continue
		}

		tmpl, err := template.New("base.html").Funcs(funcMap).ParseFS(
			templateFS, "templates/base.html", "templates/"+name,
		)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}

		// Strip .html extension for the template name.
		r.templates[name[:len(name)-len(".html")]] = tmpl
	}

	return r, nil
}

// HTML renders the named page template into a byte slice. Rendering to
// bytes first lets callers store complete pages in the Valkey cache and
// avoids writing partial output on template errors.
func (rn *Renderer) HTML(name string, data *PageData) ([]byte, error) {
	tmpl, ok := rn.templates[name]
	if !ok {
		return nil, fmt.Errorf("template %q not found", name)
	}

	if data.SiteName == "" {
		data.SiteName = rn.siteName
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "base.html", data); err != nil {
		return nil, fmt.Errorf("execute template %s: %w", name, err)
	}
	return buf.Bytes(), nil
}

// Page renders a full wiki page directly into w using the named template.
func (rn *Renderer) Page(w http.ResponseWriter, name string, data *PageData) {
	out, err := rn.HTML(name, data)
	if err != nil {
		http.Error(w, "template error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(out)
}
