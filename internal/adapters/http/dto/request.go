package dto

import "github.com/guessgame/completionrate/internal/domain"

// BatchAnalyticsRequest is the body of POST /api/v1/analytics/batch.
type BatchAnalyticsRequest struct {
	UserIDs []int64 `json:"user_ids"`
}

// Validate checks the request shape. Limits, positivity and duplicates are
// enforced by the analytics service.
func (r *BatchAnalyticsRequest) Validate() error {
	if len(r.UserIDs) == 0 {
		return domain.NewValidationError("user_ids", domain.MsgRequired)
	}
	return nil
}
