package middleware

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"maps"
	"net/http"
	"sync"
	"time"

	"github.com/guessgame/completionrate/internal/adapters/http/dto"
)

// Timeout bounds a request to limit. The handler runs on its own goroutine
// against a buffered response and sees the deadline in its context, so task
// API calls stop with it. If the deadline wins, the client gets a 504 problem
// and the handler's later writes fail with http.ErrHandlerTimeout. A client
// that goes away first gets nothing. A handler panic is re-raised on the
// serving goroutine for Recovery to handle.
func Timeout(limit time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), limit)
			defer cancel()

			resp := &pendingResponse{header: make(http.Header)}
			finished := make(chan struct{})
			panicked := make(chan any, 1)
			go func() {
				defer func() {
					if v := recover(); v != nil {
						panicked <- v
						return
					}
					close(finished)
				}()
				next.ServeHTTP(resp, r.WithContext(ctx))
			}()

			select {
			case <-finished:
				resp.commit(w)
			case v := <-panicked:
				panic(v)
			case <-ctx.Done():
				resp.abandon()
				if errors.Is(ctx.Err(), context.DeadlineExceeded) {
					dto.WriteErrorResponse(w, r, fmt.Errorf("request exceeded %s: %w", limit, ctx.Err()))
				}
			}
		})
	}
}

// pendingResponse holds a handler's response until Timeout decides whether
// it reaches the client.
type pendingResponse struct {
	header http.Header

	mu        sync.Mutex
	status    int
	body      bytes.Buffer
	abandoned bool
}

func (p *pendingResponse) Header() http.Header { return p.header }

func (p *pendingResponse) WriteHeader(status int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.status == 0 && !p.abandoned {
		p.status = status
	}
}

func (p *pendingResponse) Write(b []byte) (int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.abandoned {
		return 0, http.ErrHandlerTimeout
	}
	if p.status == 0 {
		p.status = http.StatusOK
	}
	return p.body.Write(b)
}

func (p *pendingResponse) abandon() {
	p.mu.Lock()
	p.abandoned = true
	p.mu.Unlock()
}

// commit copies the response to w. The handler has returned, so nothing
// writes concurrently.
func (p *pendingResponse) commit(w http.ResponseWriter) {
	maps.Copy(w.Header(), p.header)
	if p.status != 0 {
		w.WriteHeader(p.status)
	}
	_, _ = p.body.WriteTo(w)
}
