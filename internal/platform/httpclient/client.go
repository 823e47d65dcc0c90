// Package httpclient is the outbound client for the task API. Every call is a
// JSON GET that passes, in order, through
//
//	circuit breaker -> rate limiter -> client span -> retry -> net/http
//
// and carries the caller's request and correlation IDs, the W3C trace
// context and, when configured, the API token as a bearer credential.
//
//	client := httpclient.New(&cfg.Client, httpclient.WithMetrics(m), httpclient.WithLogger(logger))
//	resp, err := client.Get(ctx, "/tasks", url.Values{"userId": {"7"}})
package httpclient

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	semconv "go.opentelemetry.io/otel/semconv/v1.39.0"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/time/rate"

	"github.com/guessgame/completionrate/internal/platform/config"
	"github.com/guessgame/completionrate/internal/platform/logging"
	"github.com/guessgame/completionrate/internal/platform/telemetry"
)

// DefaultName identifies the task API in spans, metrics and health reports
// unless WithName overrides it.
const DefaultName = "task-api"

const tracerName = "github.com/guessgame/completionrate/internal/platform/httpclient"

// ErrThrottled marks a call abandoned while waiting on the client's rate
// limit. It does not count against the circuit breaker.
var ErrThrottled = errors.New("rate limit wait abandoned")

// errAbandoned marks failures caused by the caller's context ending. Like
// ErrThrottled they say nothing about the task API's health.
var errAbandoned = errors.New("caller abandoned request")

// Option customizes a Client.
type Option func(*Client)

// WithName sets the downstream name used in spans, metrics and logs.
func WithName(name string) Option {
	return func(c *Client) { c.name = name }
}

// WithMetrics records every call in m.
func WithMetrics(m *telemetry.Metrics) Option {
	return func(c *Client) { c.metrics = m }
}

// WithLogger sets the logger for breaker state changes.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

// Client issues GET requests against the task API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
	name       string
	breaker    *gobreaker.CircuitBreaker[*http.Response]
	limiter    *rate.Limiter
	retry      config.RetryConfig
	metrics    *telemetry.Metrics
	logger     *slog.Logger
}

// New builds a Client from cfg. A zero RateLimit disables rate limiting.
func New(cfg *config.ClientConfig, opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		token:      cfg.APIToken,
		name:       DefaultName,
		retry:      cfg.Retry,
		logger:     logging.Discard(),
	}
	for _, opt := range opts {
		opt(c)
	}

	if rl := cfg.RateLimit; rl.RequestsPerSecond > 0 {
		c.limiter = rate.NewLimiter(rate.Limit(rl.RequestsPerSecond), rl.BurstSize)
	}

	cb := cfg.CircuitBreaker
	c.breaker = gobreaker.NewCircuitBreaker[*http.Response](gobreaker.Settings{
		Name:        c.name,
		MaxRequests: uint32(max(cb.HalfOpenLimit, 0)),
		Timeout:     cb.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return int(counts.ConsecutiveFailures) >= cb.MaxFailures
		},
		IsExcluded: func(err error) bool {
			return errors.Is(err, errAbandoned) || errors.Is(err, ErrThrottled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			c.logger.Warn("task api circuit breaker changed state",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	})
	return c
}

// Name returns the downstream name.
func (c *Client) Name() string {
	return c.name
}

// CircuitBreakerState reports "closed", "half-open" or "open" without
// touching the network.
func (c *Client) CircuitBreakerState() string {
	return c.breaker.State().String()
}

// Get requests base URL + path with query and Accept: application/json.
//
// A non-retryable status returns the response and a nil error. When retries
// run out on 429 or 5xx the last response comes back together with an error;
// its body is unread. Breaker rejections, throttling and transport failures
// return a nil response. The caller closes any returned body.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*http.Response, error) {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	start := time.Now()
	resp, err := c.breaker.Execute(func() (*http.Response, error) {
		if c.limiter != nil {
			if err := c.limiter.Wait(ctx); err != nil {
				return nil, fmt.Errorf("%w: %w", ErrThrottled, err)
			}
		}

		spanCtx, span := otel.Tracer(tracerName).Start(ctx, "GET "+c.name,
			trace.WithSpanKind(trace.SpanKindClient),
			trace.WithAttributes(
				semconv.HTTPRequestMethodKey.String(http.MethodGet),
				semconv.URLFull(target),
				telemetry.AttrPeerService.String(c.name),
			),
		)
		defer span.End()

		resp, err := c.getWithRetry(spanCtx, target)
		if err != nil && ctx.Err() != nil {
			err = fmt.Errorf("%w: %w", errAbandoned, err)
		}
		if resp != nil {
			span.SetAttributes(semconv.HTTPResponseStatusCode(resp.StatusCode))
		}
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		return resp, err
	})

	c.record(ctx, resp, err, time.Since(start))
	return resp, err
}

// newRequest builds one attempt's request. Each retry gets a fresh request
// so headers and trace context are never reused.
func (c *Client) newRequest(ctx context.Context, target string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("building %s request: %w", c.name, err)
	}

	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	if id := requestID(ctx); id != "" {
		req.Header.Set(HeaderRequestID, id)
	}
	if id := correlationID(ctx); id != "" {
		req.Header.Set(HeaderCorrelationID, id)
	}
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))
	return req, nil
}

func (c *Client) record(ctx context.Context, resp *http.Response, err error, elapsed time.Duration) {
	var status int
	result := telemetry.ResultError
	switch {
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		result = telemetry.ResultCircuitOpen
	case resp != nil:
		status = resp.StatusCode
		if err == nil && status < http.StatusBadRequest {
			result = telemetry.ResultSuccess
		}
	}
	c.metrics.RecordClient(ctx, c.name, http.MethodGet, status, result, elapsed)
}
