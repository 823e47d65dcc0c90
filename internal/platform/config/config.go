// Package config loads the completion-rate service settings.
//
// Values are layered, later layers winning: the typed Default, then
// configs/base.yaml, then configs/<profile>.yaml, then APP_* environment
// variables naming a known key (APP_CLIENT_RETRY_MAX_ATTEMPTS sets
// client.retry.max_attempts).
package config

import (
	"net"
	"strconv"
	"time"
)

// Config is the root of the service settings tree.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Log       LogConfig       `koanf:"log"`
	Client    ClientConfig    `koanf:"client"`
	Telemetry TelemetryConfig `koanf:"telemetry"`
	Analytics AnalyticsConfig `koanf:"analytics"`
}

// ServerConfig controls the analytics HTTP listener.
type ServerConfig struct {
	Host string `koanf:"host"`
	Port int    `koanf:"port"`

	ReadTimeout time.Duration `koanf:"read_timeout"`
	// WriteTimeout also bounds each request through the timeout middleware.
	WriteTimeout time.Duration `koanf:"write_timeout"`
	IdleTimeout  time.Duration `koanf:"idle_timeout"`
	// ShutdownTimeout caps how long in-flight requests may drain.
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// Addr is the host:port the listener binds.
func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// LogConfig selects the slog level and handler.
type LogConfig struct {
	Level  string `koanf:"level"`  // debug, info, warn or error
	Format string `koanf:"format"` // json or text
}

// ClientConfig describes how the service reaches the task API.
type ClientConfig struct {
	BaseURL  string        `koanf:"base_url"`
	APIToken string        `koanf:"api_token"`
	Timeout  time.Duration `koanf:"timeout"`

	Retry          RetryConfig          `koanf:"retry"`
	CircuitBreaker CircuitBreakerConfig `koanf:"circuit_breaker"`
	RateLimit      RateLimitConfig      `koanf:"rate_limit"`
}

// RetryConfig shapes the exponential backoff between task API attempts.
// MaxAttempts counts the first try.
type RetryConfig struct {
	MaxAttempts     int           `koanf:"max_attempts"`
	InitialInterval time.Duration `koanf:"initial_interval"`
	MaxInterval     time.Duration `koanf:"max_interval"`
	Multiplier      float64       `koanf:"multiplier"`
}

// CircuitBreakerConfig trips the task API breaker after MaxFailures
// consecutive failures and keeps it open for Timeout.
type CircuitBreakerConfig struct {
	MaxFailures   int           `koanf:"max_failures"`
	Timeout       time.Duration `koanf:"timeout"`
	HalfOpenLimit int           `koanf:"half_open_limit"`
}

// RateLimitConfig is the outbound token bucket. Zero RequestsPerSecond
// leaves calls unthrottled.
type RateLimitConfig struct {
	RequestsPerSecond float64 `koanf:"requests_per_second"`
	BurstSize         int     `koanf:"burst_size"`
}

// TelemetryConfig picks the OpenTelemetry exporter.
type TelemetryConfig struct {
	Enabled     bool   `koanf:"enabled"`
	Exporter    string `koanf:"exporter"` // stdout or otlp
	Endpoint    string `koanf:"endpoint"` // OTLP/HTTP collector URL
	ServiceName string `koanf:"service_name"`
}

// AnalyticsConfig bounds the batch completion-rate endpoint.
type AnalyticsConfig struct {
	MaxConcurrency int `koanf:"max_concurrency"`
	MaxBatchSize   int `koanf:"max_batch_size"`
}
