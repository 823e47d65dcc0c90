package acl_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"go.uber.org/goleak"

	"github.com/guessgame/completionrate/internal/adapters/clients/acl"
	"github.com/guessgame/completionrate/internal/domain"
	"github.com/guessgame/completionrate/internal/domain/task"
	"github.com/guessgame/completionrate/internal/platform/config"
	"github.com/guessgame/completionrate/internal/platform/httpclient"
	"github.com/guessgame/completionrate/internal/platform/logging"
	"github.com/guessgame/completionrate/internal/ports"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m,
		goleak.IgnoreTopFunction("internal/poll.runtime_pollWait"),
		goleak.IgnoreTopFunction("net/http.(*persistConn).writeLoop"),
		goleak.IgnoreTopFunction("net/http.(*persistConn).readLoop"),
	)
}

const tasksPayload = `[
	{"id":1,"userId":3,"title":"Write report","description":"","completed":true,"priority":"high","deadline":"2024-05-01T10:00:00Z","createdAt":"2024-04-01T10:00:00Z"},
	{"id":2,"userId":3,"title":"Call bank","description":"","completed":false,"priority":"low","deadline":"2024-05-02 12:00","createdAt":"2024-04-02T10:00:00Z"}
]`

func newTaskClient(t *testing.T, handler http.HandlerFunc, mutate ...func(*config.ClientConfig)) *acl.TaskClient {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := &config.ClientConfig{
		BaseURL:  srv.URL,
		APIToken: "test-token",
		Timeout:  5 * time.Second,
		Retry: config.RetryConfig{
			MaxAttempts:     2,
			InitialInterval: time.Millisecond,
			MaxInterval:     5 * time.Millisecond,
			Multiplier:      2.0,
		},
		CircuitBreaker: config.CircuitBreakerConfig{
			MaxFailures:   5,
			Timeout:       time.Second,
			HalfOpenLimit: 1,
		},
	}
	for _, m := range mutate {
		m(cfg)
	}

	logger := logging.Discard()
	return acl.NewTaskClient(httpclient.New(cfg, httpclient.WithLogger(logger)), logger)
}

func TestListTasks_Success(t *testing.T) {
	t.Parallel()

	var gotAuth, gotQuery, gotPath string
	client := newTaskClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(tasksPayload))
	})

	got, err := client.ListTasks(context.Background(), task.Filter{})
	if err != nil {
		t.Fatalf("ListTasks() error = %v", err)
	}

	if gotPath != "/tasks" {
		t.Errorf("path = %q, want /tasks", gotPath)
	}
	if gotQuery != "" {
		t.Errorf("query = %q, want empty for zero filter", gotQuery)
	}
	if gotAuth != "Bearer test-token" {
		t.Errorf("Authorization = %q, want bearer token", gotAuth)
	}

	want := []task.Task{
		{
			ID:        1,
			UserID:    3,
			Title:     "Write report",
			Completed: true,
			Priority:  "high",
			Deadline:  time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
			CreatedAt: time.Date(2024, 4, 1, 10, 0, 0, 0, time.UTC),
		},
		{
			ID:        2,
			UserID:    3,
			Title:     "Call bank",
			Priority:  "low",
			Deadline:  time.Date(2024, 5, 2, 12, 0, 0, 0, time.UTC),
			CreatedAt: time.Date(2024, 4, 2, 10, 0, 0, 0, time.UTC),
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ListTasks() mismatch (-want +got):\n%s", diff)
	}
}

func TestListTasks_UserFilter(t *testing.T) {
	t.Parallel()

	var gotUserID string
	client := newTaskClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotUserID = r.URL.Query().Get("userId")
		_, _ = w.Write([]byte("[]"))
	})

	got, err := client.ListTasks(context.Background(), task.ForUser(42))
	if err != nil {
		t.Fatalf("ListTasks() error = %v", err)
	}
	if gotUserID != "42" {
		t.Errorf("userId query = %q, want %q", gotUserID, "42")
	}
	if len(got) != 0 {
		t.Errorf("len = %d, want 0", len(got))
	}
}

func TestListTasks_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		handler http.HandlerFunc
		wantErr error
	}{
		{
			name: "unauthorized maps to forbidden",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				_, _ = w.Write([]byte(`{"error":"invalid token"}`))
			},
			wantErr: domain.ErrForbidden,
		},
		{
			name: "not found",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusNotFound)
			},
			wantErr: domain.ErrNotFound,
		},
		{
			name: "server error after retries",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
			wantErr: domain.ErrUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			client := newTaskClient(t, tt.handler)

			_, err := client.ListTasks(context.Background(), task.Filter{})
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ListTasks() error = %v, want errors.Is %v", err, tt.wantErr)
			}
		})
	}
}

func TestListTasks_MalformedBody(t *testing.T) {
	t.Parallel()

	client := newTaskClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"tasks":`))
	})

	_, err := client.ListTasks(context.Background(), task.Filter{})
	if err == nil {
		t.Fatal("ListTasks() error = nil, want decode error")
	}
	if !strings.Contains(err.Error(), "decoding GET /tasks") {
		t.Errorf("error = %q, want decode context", err)
	}
}

func TestListTasks_UnreachableIsUnavailable(t *testing.T) {
	t.Parallel()

	logger := logging.Discard()
	cfg := &config.ClientConfig{
		// Port 1 on loopback refuses connections.
		BaseURL: "http://127.0.0.1:1",
		Timeout: time.Second,
		Retry:   config.RetryConfig{MaxAttempts: 1, InitialInterval: time.Millisecond, MaxInterval: time.Millisecond, Multiplier: 1},
		CircuitBreaker: config.CircuitBreakerConfig{
			MaxFailures:   5,
			Timeout:       time.Second,
			HalfOpenLimit: 1,
		},
	}
	client := acl.NewTaskClient(httpclient.New(cfg, httpclient.WithLogger(logger)), logger)

	_, err := client.ListTasks(context.Background(), task.Filter{})
	if !errors.Is(err, domain.ErrUnavailable) {
		t.Errorf("ListTasks() error = %v, want ErrUnavailable", err)
	}
}

func TestListTasks_CanceledContext(t *testing.T) {
	t.Parallel()

	client := newTaskClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("[]"))
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.ListTasks(ctx, task.Filter{})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("ListTasks() error = %v, want context.Canceled", err)
	}
	if errors.Is(err, domain.ErrUnavailable) {
		t.Errorf("ListTasks() error = %v, cancellation must not read as unavailable", err)
	}
}

func TestTaskClient_Health(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	client := newTaskClient(t, func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}, func(cfg *config.ClientConfig) {
		cfg.Retry.MaxAttempts = 1
		cfg.CircuitBreaker.MaxFailures = 1
		cfg.CircuitBreaker.Timeout = 100 * time.Millisecond
	})
	ctx := context.Background()

	if got := client.Name(); got != "task-api" {
		t.Errorf("Name() = %q, want %q", got, "task-api")
	}
	if diff := cmp.Diff(ports.DependencyHealth{Name: "task-api", Breaker: "closed"}, client.HealthCheck(ctx), cmpopts.EquateErrors()); diff != "" {
		t.Fatalf("HealthCheck() on fresh client mismatch (-want +got):\n%s", diff)
	}

	_, _ = client.ListTasks(ctx, task.Filter{})

	open := client.HealthCheck(ctx)
	if open.Breaker != "open" || open.Degraded || open.Err == nil {
		t.Fatalf("HealthCheck() after failure = %+v, want failing open breaker", open)
	}
	if want := "task-api: circuit breaker open"; open.Err.Error() != want {
		t.Errorf("HealthCheck() error = %q, want %q", open.Err, want)
	}

	time.Sleep(150 * time.Millisecond)

	halfOpen := client.HealthCheck(ctx)
	if diff := cmp.Diff(ports.DependencyHealth{Name: "task-api", Breaker: "half-open", Degraded: true}, halfOpen, cmpopts.EquateErrors()); diff != "" {
		t.Errorf("HealthCheck() after breaker timeout mismatch (-want +got):\n%s", diff)
	}
	if calls.Load() != 1 {
		t.Errorf("downstream calls = %d, want 1 (health checks make no requests)", calls.Load())
	}
}
