package ports

import (
	"context"

	"github.com/guessgame/completionrate/internal/domain/rate"
)

// AnalyticsService defines the service port for completion analytics.
// Implemented by the application layer; called by inbound adapters.
type AnalyticsService interface {
	// CompletionRate summarizes two raw counters. It never fails: a
	// non-positive total yields a zero rate.
	CompletionRate(ctx context.Context, completed, total int32) rate.Summary

	// Overview summarizes every task visible to the service.
	// Returns domain.ErrUnavailable if the task API cannot be reached.
	Overview(ctx context.Context) (rate.Summary, error)

	// UserOverview summarizes the tasks of one user.
	// Returns domain.ErrValidation if userID is not positive.
	UserOverview(ctx context.Context, userID int64) (rate.Summary, error)

	// BatchUserOverview summarizes several users concurrently with partial
	// success semantics. Returns a hard error only for request-level
	// failures (empty, oversized or duplicate input). Per-user failures are
	// collected in BatchResult.Errors.
	BatchUserOverview(ctx context.Context, userIDs []int64) (*BatchResult, error)
}

// UserSummary pairs a user ID with that user's completion summary.
type UserSummary struct {
	UserID  int64
	Summary rate.Summary
}

// UserError records a single failed user lookup within a batch.
type UserError struct {
	UserID int64
	Err    error
}

// BatchResult holds the outcomes of a batch overview in input order.
type BatchResult struct {
	Summaries []UserSummary
	Errors    []UserError
}
