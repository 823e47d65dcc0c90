// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/guessgame/completionrate/internal/app/fanout"
	"github.com/guessgame/completionrate/internal/domain"
	"github.com/guessgame/completionrate/internal/domain/rate"
	"github.com/guessgame/completionrate/internal/domain/task"
	"github.com/guessgame/completionrate/internal/platform/config"
	"github.com/guessgame/completionrate/internal/platform/telemetry"
	"github.com/guessgame/completionrate/internal/ports"
)

// Compile-time check that AnalyticsService implements ports.AnalyticsService.
var _ ports.AnalyticsService = (*AnalyticsService)(nil)

// Metric scopes recorded with each completion rate.
const (
	scopeDirect   = "direct"
	scopeOverview = "overview"
	scopeUser     = "user"
)

// AnalyticsService implements ports.AnalyticsService. It fetches tasks through
// the TaskClient port and reduces them to completion summaries with the same
// calculation the JNI library exports.
type AnalyticsService struct {
	tasks   ports.TaskClient
	limits  config.AnalyticsConfig
	metrics *telemetry.Metrics
	logger  *slog.Logger
}

// NewAnalyticsService creates an AnalyticsService. limits bounds the batch
// endpoint. metrics may be nil, in which case nothing is recorded. A nil
// logger discards output.
func NewAnalyticsService(client ports.TaskClient, limits config.AnalyticsConfig, metrics *telemetry.Metrics, logger *slog.Logger) *AnalyticsService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &AnalyticsService{
		tasks:   client,
		limits:  limits,
		metrics: metrics,
		logger:  logger,
	}
}

// CompletionRate summarizes two raw counters without touching the task API.
func (s *AnalyticsService) CompletionRate(ctx context.Context, completed, total int32) rate.Summary {
	summary := rate.Summarize(completed, total)

	s.logger.DebugContext(ctx, "completion rate calculated",
		slog.Int("completed", int(completed)),
		slog.Int("total", int(total)),
		slog.Int("completion_rate", int(summary.Rate)),
	)
	s.record(ctx, scopeDirect, summary)

	return summary
}

// Overview summarizes every task visible to the configured API token.
func (s *AnalyticsService) Overview(ctx context.Context) (rate.Summary, error) {
	s.logger.InfoContext(ctx, "computing task overview")

	tasks, err := s.tasks.ListTasks(ctx, task.Filter{})
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list tasks",
			slog.String("operation", "Overview"),
			slog.Any("error", err),
		)
		return rate.Summary{}, err
	}

	summary := task.Summarize(tasks)
	s.record(ctx, scopeOverview, summary)
	return summary, nil
}

// UserOverview summarizes the tasks of one user.
func (s *AnalyticsService) UserOverview(ctx context.Context, userID int64) (rate.Summary, error) {
	s.logger.InfoContext(ctx, "computing user overview", slog.Int64("user_id", userID))

	if userID <= 0 {
		return rate.Summary{}, domain.NewValidationError("user_id", domain.MsgMustBePositive)
	}

	return s.userSummary(ctx, userID)
}

// BatchUserOverview summarizes several users concurrently. The whole request
// is rejected when the ID list is empty, too long, or holds non-positive or
// duplicate IDs. Otherwise every user is attempted and per-user failures are
// reported alongside the successes, both in input order.
func (s *AnalyticsService) BatchUserOverview(ctx context.Context, userIDs []int64) (*ports.BatchResult, error) {
	s.logger.InfoContext(ctx, "computing batch user overview", slog.Int("count", len(userIDs)))

	if err := s.validateBatch(userIDs); err != nil {
		return nil, err
	}

	results := fanout.Run(ctx, s.limits.MaxConcurrency, userIDs, s.userSummary)

	out := &ports.BatchResult{
		Summaries: make([]ports.UserSummary, 0, len(userIDs)),
	}
	for i, r := range results {
		if r.Err != nil {
			out.Errors = append(out.Errors, ports.UserError{UserID: userIDs[i], Err: r.Err})
			continue
		}
		out.Summaries = append(out.Summaries, ports.UserSummary{UserID: userIDs[i], Summary: r.Value})
	}

	if len(out.Errors) > 0 {
		s.logger.WarnContext(ctx, "batch user overview partially failed",
			slog.String("operation", "BatchUserOverview"),
			slog.Int("succeeded", len(out.Summaries)),
			slog.Int("failed", len(out.Errors)),
		)
	}

	return out, nil
}

// userSummary fetches and summarizes one user's tasks. The ID is assumed
// to be validated.
func (s *AnalyticsService) userSummary(ctx context.Context, userID int64) (rate.Summary, error) {
	tasks, err := s.tasks.ListTasks(ctx, task.ForUser(userID))
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list user tasks",
			slog.String("operation", "UserOverview"),
			slog.Int64("user_id", userID),
			slog.Any("error", err),
		)
		return rate.Summary{}, err
	}

	summary := task.Summarize(tasks)
	s.record(ctx, scopeUser, summary)
	return summary, nil
}

func (s *AnalyticsService) validateBatch(userIDs []int64) error {
	if len(userIDs) == 0 {
		return domain.NewValidationError("user_ids", domain.MsgRequired)
	}
	if limit := s.limits.MaxBatchSize; limit > 0 && len(userIDs) > limit {
		return domain.NewValidationError("user_ids", fmt.Sprintf("must contain at most %d entries", limit))
	}

	var verr domain.ValidationError
	seen := make(map[int64]int, len(userIDs))
	for i, id := range userIDs {
		key := fmt.Sprintf("user_ids[%d]", i)
		if id <= 0 {
			verr.Add(key, domain.MsgMustBePositive)
			continue
		}
		if first, dup := seen[id]; dup {
			verr.Add(key, fmt.Sprintf("duplicates user_ids[%d]", first))
			continue
		}
		seen[id] = i
	}
	return verr.Err()
}

// record counts a calculation and its value.
func (s *AnalyticsService) record(ctx context.Context, scope string, summary rate.Summary) {
	s.metrics.RecordCompletion(ctx, scope, summary.Rate)
}
