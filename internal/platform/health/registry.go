// Package health aggregates dependency health for the readiness endpoint.
package health

import (
	"context"
	"slices"
	"strings"
	"sync"

	"github.com/guessgame/completionrate/internal/ports"
)

var _ ports.HealthRegistry = (*Registry)(nil)

// Registry is a fixed set of checkers, run together on each readiness call.
type Registry struct {
	checkers []ports.HealthChecker
}

// New returns a Registry over checkers.
func New(checkers ...ports.HealthChecker) *Registry {
	return &Registry{checkers: slices.Clone(checkers)}
}

// CheckAll runs every checker concurrently and returns the reports sorted by
// dependency name. It never returns nil.
func (r *Registry) CheckAll(ctx context.Context) []ports.DependencyHealth {
	reports := make([]ports.DependencyHealth, len(r.checkers))

	var wg sync.WaitGroup
	for i, c := range r.checkers {
		wg.Go(func() { reports[i] = c.HealthCheck(ctx) })
	}
	wg.Wait()

	slices.SortStableFunc(reports, func(a, b ports.DependencyHealth) int {
		return strings.Compare(a.Name, b.Name)
	})
	return reports
}
