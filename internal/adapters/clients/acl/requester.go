package acl

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/guessgame/completionrate/internal/domain"
	"github.com/guessgame/completionrate/internal/platform/httpclient"
)

// maxResponseBodySize caps how much of a task API answer is decoded.
const maxResponseBodySize = 16 << 20 // 16 MB

// Requester turns task API answers into decoded values or domain errors.
type Requester struct {
	client *httpclient.Client
	logger *slog.Logger
}

// NewRequester wraps client.
func NewRequester(client *httpclient.Client, logger *slog.Logger) *Requester {
	return &Requester{client: client, logger: logger}
}

// Name returns the downstream name of the underlying client.
func (r *Requester) Name() string {
	return r.client.Name()
}

// CircuitBreakerState returns the underlying client's breaker state.
func (r *Requester) CircuitBreakerState() string {
	return r.client.CircuitBreakerState()
}

// GetJSON decodes a 200 answer to GET path?query into out. Any other status
// goes through TranslateHTTPError, including the last answer of an exhausted
// retry. Transport failures and breaker rejections wrap
// domain.ErrUnavailable; an ended caller context is returned unwrapped.
func (r *Requester) GetJSON(ctx context.Context, path string, query url.Values, out any) error {
	resp, err := r.client.Get(ctx, path, query)
	if resp != nil {
		defer r.closeBody(ctx, resp)
	}

	switch {
	case resp != nil && resp.StatusCode != http.StatusOK:
		r.logger.ErrorContext(ctx, "unexpected task api status",
			slog.String("path", path),
			slog.Int("status", resp.StatusCode),
		)
		return TranslateHTTPError(resp)
	case err != nil:
		r.logger.ErrorContext(ctx, "task api request failed",
			slog.String("path", path),
			slog.Any("error", err),
		)
		if ctx.Err() != nil {
			return fmt.Errorf("GET %s: %w", path, err)
		}
		return fmt.Errorf("GET %s: %w: %w", path, domain.ErrUnavailable, err)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBodySize)).Decode(out); err != nil {
		return fmt.Errorf("decoding GET %s: %w", path, err)
	}
	return nil
}

func (r *Requester) closeBody(ctx context.Context, resp *http.Response) {
	if err := resp.Body.Close(); err != nil {
		r.logger.WarnContext(ctx, "closing task api response body", slog.Any("error", err))
	}
}
