package httpclient

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/cenkalti/backoff/v5"

	"github.com/guessgame/completionrate/internal/platform/logging"
)

// jitter spreads each delay over ±25% of the exponential interval.
const jitter = 0.25

// getWithRetry runs up to retry.MaxAttempts GETs with exponential backoff.
// 429 and 5xx answers are retried, as is any transport error (client
// timeouts included) unless the caller's context has ended. A 429 or 503
// carrying Retry-After in seconds waits that long instead, capped at
// retry.MaxInterval.
func (c *Client) getWithRetry(ctx context.Context, target string) (*http.Response, error) {
	attempts := uint(max(c.retry.MaxAttempts, 1))
	var attempt uint

	return backoff.Retry(ctx, func() (*http.Response, error) {
		attempt++

		req, err := c.newRequest(ctx, target)
		if err != nil {
			return nil, backoff.Permanent(err)
		}
		resp, err := c.httpClient.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return nil, backoff.Permanent(err)
			}
			return nil, err
		}
		if !retryableStatus(resp.StatusCode) {
			return resp, nil
		}

		statusErr := fmt.Errorf("%s answered %d", c.name, resp.StatusCode)
		if attempt == attempts {
			return resp, statusErr
		}

		wait := retryAfter(resp, c.retry.MaxInterval)
		discard(resp)
		if wait > 0 {
			return nil, fmt.Errorf("%w (%w)", statusErr, &backoff.RetryAfterError{Duration: wait})
		}
		return nil, statusErr
	},
		backoff.WithBackOff(&backoff.ExponentialBackOff{
			InitialInterval:     c.retry.InitialInterval,
			RandomizationFactor: jitter,
			Multiplier:          c.retry.Multiplier,
			MaxInterval:         c.retry.MaxInterval,
		}),
		backoff.WithMaxTries(attempts),
		backoff.WithMaxElapsedTime(0),
		backoff.WithNotify(func(err error, next time.Duration) {
			logging.FromContext(ctx).WarnContext(ctx, "retrying task api request",
				slog.String("peer_service", c.name),
				slog.String("url", target),
				slog.Uint64("attempt", uint64(attempt)),
				slog.Uint64("max_attempts", uint64(attempts)),
				slog.Duration("backoff", next),
				slog.Any("error", err),
			)
		}),
	)
}

func retryableStatus(status int) bool {
	return status == http.StatusTooManyRequests || status >= http.StatusInternalServerError
}

// retryAfter returns the delay a 429 or 503 asks for, or 0 when the answer
// carries no usable Retry-After. HTTP-date values are ignored.
func retryAfter(resp *http.Response, ceiling time.Duration) time.Duration {
	if resp.StatusCode != http.StatusTooManyRequests && resp.StatusCode != http.StatusServiceUnavailable {
		return 0
	}
	secs, err := strconv.Atoi(resp.Header.Get("Retry-After"))
	if err != nil || secs <= 0 {
		return 0
	}
	wait := time.Duration(secs) * time.Second
	if ceiling > 0 {
		wait = min(wait, ceiling)
	}
	return wait
}

// discard drains and closes a response that will be retried so its
// connection can be reused.
func discard(resp *http.Response) {
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
}
