package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/bradandersonjr/fusion-notion-notes/internal/addin"
	"github.com/bradandersonjr/fusion-notion-notes/internal/api/handlers"
)

// NewRouter creates the HTTP router the settings palette and the host-side
// toolbar shim talk to. Everything lives under /api; the palette HTML
// itself ships inside the host add-in, not here.
func NewRouter(a *addin.Addin) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware.
	r.Use(RequestLogger)
	r.Use(Recovery)
	r.Use(CORS)

	r.Route("/api", func(api chi.Router) {
		api.Get("/status", handlers.Status(a))

		api.Get("/config", handlers.GetConfig(a))
		api.Put("/config", handlers.UpdateConfig(a))

		api.Post("/activate", handlers.Activate(a))
		api.Post("/quicknote", handlers.QuickNote(a))
		api.Post("/open", handlers.OpenLink(a))
	})

	return r
}
