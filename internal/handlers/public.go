// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"wikimark/internal/cache"
	"wikimark/internal/markdown"
	"wikimark/internal/models"
	"wikimark/internal/render"
	"wikimark/internal/store"
)

// Public groups handlers for the public-facing wiki pages. It checks the
// Valkey page cache before invoking the markdown engine, and stores
// rendered results on miss. Only the default desktop view is cached;
// mobile and slideshow variants render on every request.
type Public struct {
	renderer  *render.Renderer
	documents *store.DocumentStore
	pageCache *cache.PageCache
	siteHost  string
}

// NewPublic creates a new Public handler group.
func NewPublic(renderer *render.Renderer, documents *store.DocumentStore, pageCache *cache.PageCache, siteHost string) *Public {
	return &Public{
		renderer:  renderer,
		documents: documents,
		pageCache: pageCache,
		siteHost:  siteHost,
	}
}

// Index renders the document listing.
func (p *Public) Index(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if cached, ok := p.pageCache.Get(ctx, cache.IndexKey()); ok {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write(cached)
		return
	}

	docs, err := p.documents.List()
	if err != nil {
		slog.Error("list documents failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	out, err := p.renderer.HTML("index", &render.PageData{Documents: docs})
	if err != nil {
		slog.Error("render index failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	p.pageCache.Set(ctx, cache.IndexKey(), out)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(out)
}

// Page renders a wiki document by its slug.
func (p *Public) Page(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	slugParam := chi.URLParam(r, "slug")

	opts := p.renderOptions(r)
	cacheable := !opts.Mobile && !opts.Slideshow

	if cacheable {
		if cached, ok := p.pageCache.Get(ctx, cache.SlugKey(slugParam)); ok {
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			w.Write(cached)
			return
		}
	}

	doc, err := p.findDocument(w, slugParam)
	if doc == nil || err != nil {
		return
	}

	body := markdown.Render(doc.Body, opts)
	out, err := p.renderer.HTML("page", &render.PageData{
		Title:     doc.Title,
		Slug:      doc.Slug,
		Body:      body,
		UpdatedAt: doc.UpdatedAt,
	})
	if err != nil {
		slog.Error("render page failed", "error", err, "slug", slugParam)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	if cacheable {
		p.pageCache.Set(ctx, cache.SlugKey(slugParam), out)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(out)
}

// Raw serves the unrendered markdown source of a document.
func (p *Public) Raw(w http.ResponseWriter, r *http.Request) {
	slugParam := chi.URLParam(r, "slug")

	doc, err := p.findDocument(w, slugParam)
	if doc == nil || err != nil {
		return
	}

	w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
	w.Write([]byte(doc.Body))
}

// findDocument looks up a document by slug, writing the error response
// itself. It returns nil when the caller should stop.
func (p *Public) findDocument(w http.ResponseWriter, slugParam string) (*models.Document, error) {
	doc, err := p.documents.FindBySlug(slugParam)
	if err != nil {
		slog.Error("find document failed", "error", err, "slug", slugParam)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return nil, err
	}
	if doc == nil {
		http.Error(w, "Not Found", http.StatusNotFound)
		return nil, nil
	}
	return doc, nil
}

// renderOptions derives markdown options from the request. Mobile layout
// follows the User-Agent; slideshow mode is opt-in via query parameter.
func (p *Public) renderOptions(r *http.Request) markdown.Options {
	return markdown.Options{
		Mobile:    strings.Contains(r.UserAgent(), "Mobile"),
		Slideshow: r.URL.Query().Get("view") == "slides",
		Host:      p.siteHost,
	}
}
