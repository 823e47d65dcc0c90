package config

import (
	"errors"
	"fmt"
	"net/url"
	"slices"
)

var (
	logLevels  = []string{"debug", "info", "warn", "error"}
	logFormats = []string{"json", "text"}
	exporters  = []string{"stdout", "otlp"}
)

// problems accumulates every violated rule so one Validate call reports
// them all.
type problems []error

func (p *problems) require(ok bool, format string, args ...any) {
	if !ok {
		*p = append(*p, fmt.Errorf(format, args...))
	}
}

// Validate reports every invalid setting as one joined error.
func (c *Config) Validate() error {
	var p problems

	srv := c.Server
	p.require(srv.Port >= 1 && srv.Port <= 65535, "server.port must be between 1 and 65535, got %d", srv.Port)
	p.require(srv.ReadTimeout > 0, "server.read_timeout must be positive, got %s", srv.ReadTimeout)
	p.require(srv.WriteTimeout > 0, "server.write_timeout must be positive, got %s", srv.WriteTimeout)
	p.require(srv.ShutdownTimeout > 0, "server.shutdown_timeout must be positive, got %s", srv.ShutdownTimeout)

	p.require(slices.Contains(logLevels, c.Log.Level), "log.level must be one of %v, got %q", logLevels, c.Log.Level)
	p.require(slices.Contains(logFormats, c.Log.Format), "log.format must be one of %v, got %q", logFormats, c.Log.Format)

	c.Client.check(&p)

	if tel := c.Telemetry; tel.Enabled {
		p.require(slices.Contains(exporters, tel.Exporter),
			"telemetry.exporter must be one of %v, got %q", exporters, tel.Exporter)
		p.require(tel.Exporter != "otlp" || tel.Endpoint != "",
			"telemetry.endpoint is required for the otlp exporter")
		p.require(tel.ServiceName != "", "telemetry.service_name is required when telemetry is enabled")
	}

	a := c.Analytics
	p.require(a.MaxConcurrency >= 1, "analytics.max_concurrency must be >= 1, got %d", a.MaxConcurrency)
	p.require(a.MaxBatchSize >= 1, "analytics.max_batch_size must be >= 1, got %d", a.MaxBatchSize)

	return errors.Join(p...)
}

func (cl ClientConfig) check(p *problems) {
	base, err := url.Parse(cl.BaseURL)
	p.require(err == nil && (base.Scheme == "http" || base.Scheme == "https") && base.Host != "",
		"client.base_url must be an absolute http(s) URL, got %q", cl.BaseURL)
	p.require(cl.Timeout > 0, "client.timeout must be positive, got %s", cl.Timeout)

	p.require(cl.Retry.MaxAttempts >= 1, "client.retry.max_attempts must be >= 1, got %d", cl.Retry.MaxAttempts)
	p.require(cl.Retry.Multiplier > 0, "client.retry.multiplier must be positive, got %g", cl.Retry.Multiplier)

	p.require(cl.CircuitBreaker.MaxFailures >= 1,
		"client.circuit_breaker.max_failures must be >= 1, got %d", cl.CircuitBreaker.MaxFailures)

	rl := cl.RateLimit
	p.require(rl.RequestsPerSecond >= 0,
		"client.rate_limit.requests_per_second must not be negative, got %g", rl.RequestsPerSecond)
	p.require(rl.RequestsPerSecond == 0 || rl.BurstSize >= 1,
		"client.rate_limit.burst_size must be >= 1 when rate limiting is enabled, got %d", rl.BurstSize)
}
