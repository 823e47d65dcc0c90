package http

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/guessgame/completionrate/internal/platform/config"
)

// Server serves the analytics API until its context ends and then drains
// in-flight requests for at most the configured shutdown timeout.
type Server struct {
	http   *http.Server
	drain  time.Duration
	logger *slog.Logger

	ready chan struct{}
	bound atomic.Pointer[string]
}

// NewServer prepares a listener on cfg.Addr. A nil logger discards.
func NewServer(cfg config.ServerConfig, handler http.Handler, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Server{
		http: &http.Server{
			Addr:              cfg.Addr(),
			Handler:           handler,
			ReadTimeout:       cfg.ReadTimeout,
			ReadHeaderTimeout: cfg.ReadTimeout,
			WriteTimeout:      cfg.WriteTimeout,
			IdleTimeout:       cfg.IdleTimeout,
			ErrorLog:          slog.NewLogLogger(logger.Handler(), slog.LevelWarn),
		},
		drain:  cmp.Or(cfg.ShutdownTimeout, 10*time.Second),
		logger: logger,
		ready:  make(chan struct{}),
	}
}

// Run binds the listener and serves until ctx is done or Shutdown is
// called. Cancellation is not an error: Run drains and returns nil unless
// the drain itself fails.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.http.Addr)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", s.http.Addr, err)
	}
	addr := ln.Addr().String()
	s.bound.Store(&addr)
	close(s.ready)

	s.logger.Info("analytics API listening", slog.String("addr", addr))

	served := make(chan error, 1)
	go func() { served <- s.http.Serve(ln) }()

	select {
	case err := <-served:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serving on %s: %w", addr, err)
	case <-ctx.Done():
	}

	drainCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.drain)
	defer cancel()

	err = s.Shutdown(drainCtx)
	<-served
	return err
}

// Ready is closed once Run has bound its listener.
func (s *Server) Ready() <-chan struct{} {
	return s.ready
}

// Shutdown stops accepting connections and waits for in-flight requests
// until ctx ends.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("draining analytics API", slog.Duration("limit", s.drain))
	if err := s.http.Shutdown(ctx); err != nil {
		return fmt.Errorf("draining %s: %w", s.Addr(), err)
	}
	return nil
}

// Addr is the bound address once Run listens and the configured one before.
// With port 0 it carries the port the kernel picked.
func (s *Server) Addr() string {
	if addr := s.bound.Load(); addr != nil {
		return *addr
	}
	return s.http.Addr
}
