package acl

import (
	"context"
	"log/slog"
	"net/url"
	"strconv"

	acltask "github.com/guessgame/completionrate/internal/adapters/clients/acl/task"
	"github.com/guessgame/completionrate/internal/domain/task"
	"github.com/guessgame/completionrate/internal/platform/httpclient"
	"github.com/guessgame/completionrate/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.TaskClient    = (*TaskClient)(nil)
	_ ports.HealthChecker = (*TaskClient)(nil)
)

// TaskClient is the outbound adapter for the downstream task API. It
// implements [ports.TaskClient] and [ports.HealthChecker].
//
// The underlying [httpclient.Client] supplies the bearer token, circuit
// breaking, retry with exponential backoff, and OpenTelemetry tracing for
// every outbound call.
type TaskClient struct {
	req    *Requester
	logger *slog.Logger
}

// NewTaskClient creates a TaskClient that sends requests through the given
// [httpclient.Client]. The client's BaseURL should point to the task API
// root (e.g. "https://tasks.example.com").
func NewTaskClient(client *httpclient.Client, logger *slog.Logger) *TaskClient {
	return &TaskClient{
		req:    NewRequester(client, logger),
		logger: logger,
	}
}

// ListTasks fetches GET /tasks, adding ?userId=N when the filter names a
// user. The API answers with a bare JSON array.
func (c *TaskClient) ListTasks(ctx context.Context, filter task.Filter) ([]task.Task, error) {
	var dtos []acltask.TaskDTO
	if err := c.req.GetJSON(ctx, "/tasks", filterQuery(filter), &dtos); err != nil {
		return nil, err
	}

	tasks := acltask.ToDomainTaskList(dtos)
	c.logger.DebugContext(ctx, "tasks fetched",
		slog.Int("count", len(tasks)),
		slog.Bool("user_scoped", filter.UserID != nil),
	)
	return tasks, nil
}

// filterQuery converts a [task.Filter] to query parameters. Returns nil if
// no filters are set.
func filterQuery(f task.Filter) url.Values {
	if f.UserID == nil {
		return nil
	}
	return url.Values{"userId": []string{strconv.FormatInt(*f.UserID, 10)}}
}
