package telemetry

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// instrumentationScope names the meter that owns every instrument below.
const instrumentationScope = "github.com/guessgame/completionrate"

// Attribute keys recorded on the instruments.
var (
	AttrHTTPMethod  = attribute.Key("http.method")
	AttrHTTPRoute   = attribute.Key("http.route")
	AttrHTTPStatus  = attribute.Key("http.status_code")
	AttrPeerService = attribute.Key("peer.service")
	AttrResult      = attribute.Key("result")
	AttrScope       = attribute.Key("completion.scope")
	AttrService     = attribute.Key("service.name")
)

// Outcomes recorded under AttrResult for task API calls.
const (
	ResultSuccess     = "success"
	ResultError       = "error"
	ResultCircuitOpen = "circuit_open"
)

// Metrics records the service's inbound traffic, its task API calls and the
// completion rates it computes. A nil *Metrics records nothing.
type Metrics struct {
	service attribute.KeyValue

	serverDuration metric.Float64Histogram
	serverTotal    metric.Int64Counter
	clientDuration metric.Float64Histogram
	clientTotal    metric.Int64Counter
	calculations   metric.Int64Counter
	rates          metric.Int64Histogram
}

// NewMetrics registers the instruments on mp. serviceName is attached to
// every recording as service.name.
func NewMetrics(mp metric.MeterProvider, serviceName string) (*Metrics, error) {
	meter := mp.Meter(instrumentationScope)
	m := &Metrics{service: AttrService.String(serviceName)}

	var errs []error
	track := func(name string, err error) {
		if err != nil {
			errs = append(errs, fmt.Errorf("creating %s: %w", name, err))
		}
	}

	var err error
	m.serverDuration, err = meter.Float64Histogram("http.server.request.duration",
		metric.WithDescription("Duration of incoming HTTP requests"), metric.WithUnit("s"))
	track("http.server.request.duration", err)

	m.serverTotal, err = meter.Int64Counter("http.server.request.total",
		metric.WithDescription("Incoming HTTP requests"), metric.WithUnit("{request}"))
	track("http.server.request.total", err)

	m.clientDuration, err = meter.Float64Histogram("http.client.request.duration",
		metric.WithDescription("Duration of task API calls, retries included"), metric.WithUnit("s"))
	track("http.client.request.duration", err)

	m.clientTotal, err = meter.Int64Counter("http.client.request.total",
		metric.WithDescription("Task API calls by outcome"), metric.WithUnit("{request}"))
	track("http.client.request.total", err)

	m.calculations, err = meter.Int64Counter("completion_rate.calculations",
		metric.WithDescription("Completion rates computed, by scope"), metric.WithUnit("{calculation}"))
	track("completion_rate.calculations", err)

	m.rates, err = meter.Int64Histogram("completion_rate.value",
		metric.WithDescription("Distribution of computed completion rates"), metric.WithUnit("%"),
		metric.WithExplicitBucketBoundaries(0, 10, 25, 50, 75, 90, 100))
	track("completion_rate.value", err)

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return m, nil
}

// RecordServer records one served request under its route pattern.
func (m *Metrics) RecordServer(ctx context.Context, method, route string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	result := ResultSuccess
	if status >= http.StatusBadRequest {
		result = ResultError
	}
	attrs := metric.WithAttributes(
		m.service,
		AttrHTTPMethod.String(method),
		AttrHTTPRoute.String(route),
		AttrHTTPStatus.Int(status),
		AttrResult.String(result),
	)
	m.serverDuration.Record(ctx, elapsed.Seconds(), attrs)
	m.serverTotal.Add(ctx, 1, attrs)
}

// RecordClient records one task API call. status is 0 when no response
// arrived.
func (m *Metrics) RecordClient(ctx context.Context, peer, method string, status int, result string, elapsed time.Duration) {
	if m == nil {
		return
	}
	attrs := metric.WithAttributes(
		m.service,
		AttrPeerService.String(peer),
		AttrHTTPMethod.String(method),
		AttrHTTPStatus.Int(status),
		AttrResult.String(result),
	)
	m.clientDuration.Record(ctx, elapsed.Seconds(), attrs)
	m.clientTotal.Add(ctx, 1, attrs)
}

// RecordCompletion counts one computed rate and records its value under
// scope (direct, overview or user).
func (m *Metrics) RecordCompletion(ctx context.Context, scope string, rate int32) {
	if m == nil {
		return
	}
	attrs := metric.WithAttributes(m.service, AttrScope.String(scope))
	m.calculations.Add(ctx, 1, attrs)
	m.rates.Record(ctx, int64(rate), attrs)
}
