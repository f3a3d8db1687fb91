// Package router sets up all HTTP routes and middleware chains for the
// SmartSite server. It organizes routes into the editor API and the
// public serving group with appropriate middleware stacks.
package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"smartsite/internal/handlers"
	"smartsite/internal/middleware"
	"smartsite/internal/store"
)

// New creates and returns the configured Chi router with all middleware
// and route groups wired up.
func New(sites *store.SiteStore, editor *handlers.Editor, public *handlers.Public) chi.Router {
	r := chi.NewRouter()

	// Global middleware — applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.SecureHeaders)

	// Health check — no auth.
	r.Get("/health", healthHandler)

	// Theme preset catalog — static, unauthenticated.
	r.Get("/api/themes", handlers.ListThemes)

	// Site creation is unauthenticated (it mints the editor token) but
	// rate-limited so the wizard cannot be scripted into a flood.
	createLimiter := middleware.NewRateLimiter(10, time.Minute)
	r.With(createLimiter.Middleware).Post("/api/sites", editor.CreateSite)

	// Editor API — every route below requires the site's bearer token.
	r.Route("/api/sites/{siteID}", func(r chi.Router) {
		r.Use(middleware.RequireSiteToken(sites))

		r.Get("/", editor.GetSite)
		r.Patch("/", editor.UpdateSite)

		r.Get("/theme", editor.GetTheme)
		r.Patch("/theme", editor.UpdateTheme)

		r.Route("/pages", func(r chi.Router) {
			r.Get("/", editor.ListPages)
			r.Post("/", editor.CreatePage)
			r.Patch("/{pageID}", editor.UpdatePage)
			r.Delete("/{pageID}", editor.DeletePage)
			r.Post("/{pageID}/home", editor.SetHomePage)
			r.Post("/{pageID}/reorder", editor.ReorderPages)
			r.Get("/{pageID}/sections", editor.ListSections)
			r.Post("/{pageID}/sections", editor.CreateSection)
			r.Get("/{pageID}/preview", editor.PreviewPage)
		})

		r.Route("/sections/{sectionID}", func(r chi.Router) {
			r.Put("/blocks", editor.UpdateBlocks)
			r.Patch("/styles", editor.UpdateStyles)
			r.Post("/reorder", editor.ReorderSections)
			r.Delete("/", editor.DeleteSection)
		})

		r.Route("/media", func(r chi.Router) {
			r.Get("/", editor.ListMedia)
			r.Post("/", editor.UploadMedia)
			r.Delete("/{mediaID}", editor.DeleteMedia)
		})

		r.Post("/publish", editor.Publish)
		r.Delete("/publish", editor.Unpublish)
	})

	// Public routes — published snapshots only, rate-limited per IP.
	publicLimiter := middleware.NewRateLimiter(120, time.Minute)
	r.Group(func(r chi.Router) {
		r.Use(publicLimiter.Middleware)
		r.Get("/s/{siteSlug}", public.GetSite)
		r.Get("/s/{siteSlug}/{pageSlug}", public.GetPage)
	})

	return r
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
