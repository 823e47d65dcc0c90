package ports

import "context"

// DependencyHealth is one dependency's state as /health/ready reports it.
type DependencyHealth struct {
	// Name identifies the dependency, e.g. "task-api".
	Name string
	// Breaker is the circuit breaker state guarding calls to the dependency,
	// empty when there is none.
	Breaker string
	// Degraded marks a dependency that still takes traffic but has not
	// proven itself since its last outage.
	Degraded bool
	// Err is set when the dependency cannot currently serve requests.
	Err error
}

// HealthChecker is implemented by a dependency that can report its health.
// Implementations should answer promptly and respect ctx.
type HealthChecker interface {
	HealthCheck(ctx context.Context) DependencyHealth
}

// HealthRegistry runs every dependency check for the readiness endpoint.
type HealthRegistry interface {
	// CheckAll returns one report per dependency, sorted by name.
	CheckAll(ctx context.Context) []DependencyHealth
}
