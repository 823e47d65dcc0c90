// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import (
	"github.com/guessgame/completionrate/internal/domain/rate"
	"github.com/guessgame/completionrate/internal/ports"
)

// CompletionRateResponse is the analytics screen's counters as JSON.
type CompletionRateResponse struct {
	Total          int32  `json:"total"`
	Completed      int32  `json:"completed"`
	Remaining      int32  `json:"remaining"`
	CompletionRate int32  `json:"completion_rate"`
	Label          string `json:"label"`
}

// ToCompletionRateResponse converts a domain Summary to an HTTP response DTO.
func ToCompletionRateResponse(s rate.Summary) CompletionRateResponse {
	return CompletionRateResponse{
		Total:          s.Total,
		Completed:      s.Completed,
		Remaining:      s.Remaining,
		CompletionRate: s.Rate,
		Label:          s.Label(),
	}
}

// UserCompletionRateResponse is a per-user summary. The counters are inlined
// next to user_id.
type UserCompletionRateResponse struct {
	UserID int64 `json:"user_id"`
	CompletionRateResponse
}

// ToUserCompletionRateResponse converts a user's Summary to a response DTO.
func ToUserCompletionRateResponse(userID int64, s rate.Summary) UserCompletionRateResponse {
	return UserCompletionRateResponse{
		UserID:                 userID,
		CompletionRateResponse: ToCompletionRateResponse(s),
	}
}

// BatchAnalyticsResponse reports a batch overview. Both lists follow the
// order of the request's user_ids.
type BatchAnalyticsResponse struct {
	Results   []UserCompletionRateResponse `json:"results"`
	Errors    []BatchErrorItem             `json:"errors"`
	Total     int                          `json:"total"`
	Succeeded int                          `json:"succeeded"`
	Failed    int                          `json:"failed"`
}

// BatchErrorItem is a single failed user within a batch. Status is the HTTP
// status the failure would have produced on the single-user endpoint.
type BatchErrorItem struct {
	UserID  int64  `json:"user_id"`
	Status  int    `json:"status"`
	Message string `json:"message"`
}

// ToBatchAnalyticsResponse converts a ports.BatchResult to an HTTP response
// DTO. Empty lists encode as [] rather than null.
func ToBatchAnalyticsResponse(result *ports.BatchResult) BatchAnalyticsResponse {
	results := make([]UserCompletionRateResponse, len(result.Summaries))
	for i, s := range result.Summaries {
		results[i] = ToUserCompletionRateResponse(s.UserID, s.Summary)
	}

	errs := make([]BatchErrorItem, len(result.Errors))
	for i, e := range result.Errors {
		errs[i] = BatchErrorItem{
			UserID:  e.UserID,
			Status:  StatusFor(e.Err),
			Message: e.Err.Error(),
		}
	}

	return BatchAnalyticsResponse{
		Results:   results,
		Errors:    errs,
		Total:     len(results) + len(errs),
		Succeeded: len(results),
		Failed:    len(errs),
	}
}

// Readiness statuses.
const (
	StatusReady    = "ready"
	StatusNotReady = "not_ready"
)

// Dependency statuses.
const (
	DependencyOK       = "ok"
	DependencyDegraded = "degraded"
	DependencyFailing  = "failing"
)

// ReadinessResponse is the /health/ready body.
type ReadinessResponse struct {
	Status       string             `json:"status"`
	Dependencies []DependencyStatus `json:"dependencies"`
}

// DependencyStatus is one dependency inside a ReadinessResponse.
type DependencyStatus struct {
	Name    string `json:"name"`
	Breaker string `json:"breaker,omitempty"`
	Status  string `json:"status"`
	Error   string `json:"error,omitempty"`
}

// ToReadinessResponse reports not_ready when any dependency is failing. A
// degraded dependency keeps the service ready.
func ToReadinessResponse(reports []ports.DependencyHealth) ReadinessResponse {
	resp := ReadinessResponse{
		Status:       StatusReady,
		Dependencies: make([]DependencyStatus, 0, len(reports)),
	}
	for _, r := range reports {
		dep := DependencyStatus{Name: r.Name, Breaker: r.Breaker, Status: DependencyOK}
		switch {
		case r.Err != nil:
			dep.Status, dep.Error = DependencyFailing, r.Err.Error()
			resp.Status = StatusNotReady
		case r.Degraded:
			dep.Status = DependencyDegraded
		}
		resp.Dependencies = append(resp.Dependencies, dep)
	}
	return resp
}
