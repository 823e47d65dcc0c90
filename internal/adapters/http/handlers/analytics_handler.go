package handlers

import (
	"net/http"

	"github.com/guessgame/completionrate/internal/adapters/http/dto"
	"github.com/guessgame/completionrate/internal/ports"
)

// AnalyticsHandler exposes completion-rate analytics over HTTP.
type AnalyticsHandler struct {
	svc ports.AnalyticsService
}

// NewAnalyticsHandler returns an AnalyticsHandler backed by svc.
func NewAnalyticsHandler(svc ports.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{svc: svc}
}

// CompletionRate handles GET /api/v1/completion-rate?completed=&total=.
// A 400 lists both parameters when both are bad.
func (h *AnalyticsHandler) CompletionRate(w http.ResponseWriter, r *http.Request) {
	in := readInputs(r)
	completed, total := in.count("completed"), in.count("total")
	if err := in.err(); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	summary := h.svc.CompletionRate(r.Context(), completed, total)
	writeJSON(w, r, http.StatusOK, dto.ToCompletionRateResponse(summary))
}

// Overview handles GET /api/v1/analytics.
func (h *AnalyticsHandler) Overview(w http.ResponseWriter, r *http.Request) {
	summary, err := h.svc.Overview(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, dto.ToCompletionRateResponse(summary))
}

// UserOverview handles GET /api/v1/users/{id}/analytics.
func (h *AnalyticsHandler) UserOverview(w http.ResponseWriter, r *http.Request) {
	in := readInputs(r)
	userID := in.userID()
	if err := in.err(); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	summary, err := h.svc.UserOverview(r.Context(), userID)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, dto.ToUserCompletionRateResponse(userID, summary))
}

// Batch handles POST /api/v1/analytics/batch. Users whose tasks could not be
// fetched appear in the body's errors array; the request still succeeds.
func (h *AnalyticsHandler) Batch(w http.ResponseWriter, r *http.Request) {
	req, ok := readBatch(w, r)
	if !ok {
		return
	}

	result, err := h.svc.BatchUserOverview(r.Context(), req.UserIDs)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, dto.ToBatchAnalyticsResponse(result))
}
