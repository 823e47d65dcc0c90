package acl

import (
	"context"
	"fmt"

	"github.com/guessgame/completionrate/internal/ports"
)

// Name is the dependency name reported to the health registry. It matches
// the name the underlying client uses in spans and metrics.
func (c *TaskClient) Name() string {
	return c.req.Name()
}

// HealthCheck reports the task API from its circuit breaker without calling
// it. A closed breaker is healthy. Half-open is degraded: trial calls are
// passing through and the service still answers. Open, or a state the
// breaker should never report, fails the check.
func (c *TaskClient) HealthCheck(_ context.Context) ports.DependencyHealth {
	state := c.req.CircuitBreakerState()
	report := ports.DependencyHealth{Name: c.Name(), Breaker: state}

	switch state {
	case "closed":
	case "half-open":
		report.Degraded = true
	default:
		report.Err = fmt.Errorf("%s: circuit breaker %s", report.Name, state)
	}
	return report
}
