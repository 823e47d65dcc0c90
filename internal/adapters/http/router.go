// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/guessgame/completionrate/internal/adapters/http/handlers"
)

// NewRouter creates an HTTP handler with all application routes registered.
// Middleware is applied globally in the order given.
func NewRouter(
	analyticsHandler *handlers.AnalyticsHandler,
	healthHandler *handlers.HealthHandler,
	middlewares ...func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	// Health endpoints (outside /api/v1 prefix).
	r.Get("/health/live", healthHandler.Liveness)
	r.Get("/health/ready", healthHandler.Readiness)

	r.Route("/api/v1", func(r chi.Router) {
		// Pure calculation, no downstream call.
		r.Get("/completion-rate", analyticsHandler.CompletionRate)

		// Task analytics backed by the task API.
		r.Get("/analytics", analyticsHandler.Overview)
		r.Post("/analytics/batch", analyticsHandler.Batch)
		r.Get("/users/{id}/analytics", analyticsHandler.UserOverview)
	})

	return r
}
