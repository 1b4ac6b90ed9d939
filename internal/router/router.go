// Package router sets up all HTTP routes and middleware chains for the
// wikimark server. It organizes routes into public pages, a JSON API,
// and embedded static assets.
package router

import (
	"io/fs"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"wikimark/internal/handlers"
	"wikimark/internal/middleware"
	"wikimark/web"
)

// New creates and returns the configured Chi router with all middleware
// and route groups wired up. editTokenHash guards the mutating document
// endpoints.
func New(public *handlers.Public, api *handlers.API, editTokenHash string) chi.Router {
	r := chi.NewRouter()

	// Global middleware applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.SecureHeaders)

	// Health check.
	r.Get("/health", api.Health)

	// JSON API.
	r.Route("/api", func(r chi.Router) {
		renderLimiter := middleware.NewRateLimiter(60, time.Minute)
		r.With(renderLimiter.Middleware).Post("/render", api.Render)
		r.Post("/route", api.Route)

		r.Route("/documents", func(r chi.Router) {
			r.Use(middleware.RequireEditToken(editTokenHash))
			r.Put("/{slug}", api.DocumentPut)
			r.Delete("/{slug}", api.DocumentDelete)
		})
	})

	// Embedded static assets (click router script, stylesheet).
	staticFS, err := fs.Sub(web.StaticFS, "static")
	if err == nil {
		r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(staticFS))))
	}

	// Public wiki pages.
	r.Get("/", public.Index)
	r.Get("/{slug}", public.Page)
	r.Get("/{slug}/raw", public.Raw)

	return r
}
