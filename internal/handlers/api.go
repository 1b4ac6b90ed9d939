// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"database/sql"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"wikimark/internal/cache"
	"wikimark/internal/linkroute"
	"wikimark/internal/markdown"
	"wikimark/internal/store"
)

// API groups the JSON endpoints: standalone markdown rendering, link
// classification for the client-side click router, and document mutation.
type API struct {
	documents *store.DocumentStore
	pageCache *cache.PageCache
	db        *sql.DB
	siteHost  string
}

// NewAPI creates a new API handler group.
func NewAPI(documents *store.DocumentStore, pageCache *cache.PageCache, db *sql.DB, siteHost string) *API {
	return &API{
		documents: documents,
		pageCache: pageCache,
		db:        db,
		siteHost:  siteHost,
	}
}

type renderRequest struct {
	Text      string `json:"text"`
	Mobile    bool   `json:"mobile"`
	Slideshow bool   `json:"slideshow"`
}

type renderResponse struct {
	HTML string `json:"html"`
}

// Render converts a markdown document to HTML without persisting it.
func (a *API) Render(w http.ResponseWriter, r *http.Request) {
	var req renderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON body"})
		return
	}

	if msg := validateBody(req.Text); msg != "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: msg})
		return
	}

	out := markdown.Render(req.Text, markdown.Options{
		Mobile:    req.Mobile,
		Slideshow: req.Slideshow,
		Host:      a.siteHost,
	})

	writeJSON(w, http.StatusOK, renderResponse{HTML: out})
}

type routeRequest struct {
	Href       string `json:"href"`
	Anchor     bool   `json:"anchor"`
	NewContext bool   `json:"new_context"`
}

// Route classifies a clicked link and returns the action the client
// should take. Wiki targets come back already normalized.
func (a *API) Route(w http.ResponseWriter, r *http.Request) {
	var req routeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON body"})
		return
	}

	writeJSON(w, http.StatusOK, linkroute.Classify(req.Href, req.Anchor, req.NewContext))
}

type documentRequest struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// DocumentPut creates or replaces the document at the slug in the URL,
// then drops the stale cache entries for the page and the index.
func (a *API) DocumentPut(w http.ResponseWriter, r *http.Request) {
	slugParam := chi.URLParam(r, "slug")

	var req documentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON body"})
		return
	}

	if msg := validateDocument(slugParam, req.Title, req.Body); msg != "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: msg})
		return
	}

	doc, err := a.documents.Upsert(slugParam, req.Title, req.Body)
	if err != nil {
		slog.Error("upsert document failed", "error", err, "slug", slugParam)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "failed to save document"})
		return
	}

	a.pageCache.InvalidatePage(r.Context(), slugParam)
	a.pageCache.InvalidateIndex(r.Context())

	writeJSON(w, http.StatusOK, doc)
}

// DocumentDelete removes a document and its cached page.
func (a *API) DocumentDelete(w http.ResponseWriter, r *http.Request) {
	slugParam := chi.URLParam(r, "slug")

	if err := a.documents.Delete(slugParam); err != nil {
		slog.Error("delete document failed", "error", err, "slug", slugParam)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "failed to delete document"})
		return
	}

	a.pageCache.InvalidatePage(r.Context(), slugParam)
	a.pageCache.InvalidateIndex(r.Context())

	w.WriteHeader(http.StatusNoContent)
}

// Health reports process and database liveness.
func (a *API) Health(w http.ResponseWriter, r *http.Request) {
	status := "ok"
	code := http.StatusOK

	if a.db != nil {
		if err := a.db.PingContext(r.Context()); err != nil {
			status = "degraded"
			code = http.StatusServiceUnavailable
		}
	}

	writeJSON(w, code, map[string]string{"status": status})
}

type errorResponse struct {
	Error string `json:"error"`
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
