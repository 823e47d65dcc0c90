// Package middleware holds the inbound HTTP middleware of the analytics
// service. Stack assembles them in the order the server runs them.
package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/guessgame/completionrate/internal/platform/telemetry"
)

// Stack returns the server middleware, outermost first. Recovery wraps
// everything so a panic anywhere below still produces a problem response,
// and Timeout sits innermost so the logged status includes a 504.
func Stack(logger *slog.Logger, metrics *telemetry.Metrics, timeout time.Duration) chi.Middlewares {
	return chi.Chain(
		Recovery(logger),
		RequestID(),
		CorrelationID(),
		OpenTelemetry(metrics),
		Logging(logger),
		Timeout(timeout),
	)
}

// wrap returns w as a chi WrapResponseWriter, reusing an existing wrapper so
// nested middleware observe the same status and byte count.
func wrap(w http.ResponseWriter, r *http.Request) chimw.WrapResponseWriter {
	if ww, ok := w.(chimw.WrapResponseWriter); ok {
		return ww
	}
	return chimw.NewWrapResponseWriter(w, r.ProtoMajor)
}

// statusOf reports the status a handler sent. net/http answers 200 for a
// handler that never wrote, so an untouched writer counts as 200.
func statusOf(ww chimw.WrapResponseWriter) int {
	if s := ww.Status(); s != 0 {
		return s
	}
	return http.StatusOK
}
