package handlers

import (
	"net/http"

	"github.com/guessgame/completionrate/internal/adapters/http/dto"
	"github.com/guessgame/completionrate/internal/ports"
)

// HealthHandler serves the liveness and readiness endpoints.
type HealthHandler struct {
	registry ports.HealthRegistry
}

// NewHealthHandler returns a HealthHandler reading dependency health from
// registry.
func NewHealthHandler(registry ports.HealthRegistry) *HealthHandler {
	return &HealthHandler{registry: registry}
}

// Liveness handles GET /health/live. The process answering is enough.
func (h *HealthHandler) Liveness(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, map[string]string{"status": dto.DependencyOK})
}

// Readiness handles GET /health/ready. It answers 503 while any dependency
// is failing, which for the task API means its circuit breaker is open, and
// lists every dependency with its breaker state either way.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	resp := dto.ToReadinessResponse(h.registry.CheckAll(r.Context()))

	code := http.StatusOK
	if resp.Status != dto.StatusReady {
		code = http.StatusServiceUnavailable
	}
	writeJSON(w, r, code, resp)
}
