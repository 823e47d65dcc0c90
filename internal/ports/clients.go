package ports

import (
	"context"

	"github.com/guessgame/completionrate/internal/domain/task"
)

// TaskClient defines the client port for the downstream task API.
// Implemented by the ACL adapter; called by the application layer.
type TaskClient interface {
	// ListTasks returns the tasks matching the filter. Pass a zero-value
	// Filter to list every task visible to the configured API token.
	ListTasks(ctx context.Context, filter task.Filter) ([]task.Task, error)
}
