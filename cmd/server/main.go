// Command server runs the completion-rate analytics API.
//
// APP_PROFILE selects configs/<profile>.yaml. SIGINT or SIGTERM drains
// in-flight requests and flushes telemetry before exit.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/samber/do/v2"

	"github.com/guessgame/completionrate/internal/adapters/clients/acl"
	adapthttp "github.com/guessgame/completionrate/internal/adapters/http"
	"github.com/guessgame/completionrate/internal/adapters/http/handlers"
	"github.com/guessgame/completionrate/internal/adapters/http/middleware"
	"github.com/guessgame/completionrate/internal/app"
	"github.com/guessgame/completionrate/internal/platform/config"
	"github.com/guessgame/completionrate/internal/platform/health"
	"github.com/guessgame/completionrate/internal/platform/httpclient"
	"github.com/guessgame/completionrate/internal/platform/logging"
	"github.com/guessgame/completionrate/internal/platform/telemetry"
	"github.com/guessgame/completionrate/internal/ports"
)

const flushTimeout = 5 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Getenv("APP_PROFILE")); err != nil {
		fmt.Fprintf(os.Stderr, "completion-rate: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, profile string) error {
	if profile == "" {
		return errors.New("APP_PROFILE must name a config profile such as local, dev or prod")
	}

	cfg, err := config.Load(profile)
	if err != nil {
		return err
	}
	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)

	injector := do.New()
	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	provide(ctx, injector)

	// Services are torn down dependents first, so the server drains before
	// the telemetry provider flushes.
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), flushTimeout)
		defer cancel()
		if report := injector.ShutdownWithContext(flushCtx); !report.Succeed {
			logger.Error("shutdown incomplete", slog.String("error", report.Error()))
		}
	}()

	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("wiring server: %w", err)
	}

	logger.Info("completion-rate service starting",
		slog.String("profile", profile),
		slog.String("task_api", cfg.Client.BaseURL),
		slog.Bool("task_api_token_set", cfg.Client.APIToken != ""),
		slog.Bool("telemetry", cfg.Telemetry.Enabled),
	)

	if err := server.Run(ctx); err != nil {
		return err
	}
	logger.Info("completion-rate service stopped")
	return nil
}

// provide registers the lazy service graph rooted at *adapthttp.Server.
func provide(ctx context.Context, injector do.Injector) {
	do.Provide(injector, func(i do.Injector) (*telemetry.Provider, error) {
		return telemetry.Setup(ctx, do.MustInvoke[*config.Config](i).Telemetry)
	})
	do.Provide(injector, func(i do.Injector) (*telemetry.Metrics, error) {
		return do.MustInvoke[*telemetry.Provider](i).Metrics, nil
	})

	do.Provide(injector, func(i do.Injector) (*acl.TaskClient, error) {
		cfg := do.MustInvoke[*config.Config](i)
		logger := do.MustInvoke[*slog.Logger](i)
		client := httpclient.New(&cfg.Client,
			httpclient.WithMetrics(do.MustInvoke[*telemetry.Metrics](i)),
			httpclient.WithLogger(logger),
		)
		return acl.NewTaskClient(client, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.AnalyticsService, error) {
		return app.NewAnalyticsService(
			do.MustInvoke[*acl.TaskClient](i),
			do.MustInvoke[*config.Config](i).Analytics,
			do.MustInvoke[*telemetry.Metrics](i),
			do.MustInvoke[*slog.Logger](i),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		cfg := do.MustInvoke[*config.Config](i)
		tasks := do.MustInvoke[*acl.TaskClient](i)
		return adapthttp.NewRouter(
			handlers.NewAnalyticsHandler(do.MustInvoke[ports.AnalyticsService](i)),
			handlers.NewHealthHandler(health.New(tasks)),
			middleware.Stack(
				do.MustInvoke[*slog.Logger](i),
				do.MustInvoke[*telemetry.Metrics](i),
				cfg.Server.WriteTimeout,
			)...,
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		return adapthttp.NewServer(
			do.MustInvoke[*config.Config](i).Server,
			do.MustInvoke[nethttp.Handler](i),
			do.MustInvoke[*slog.Logger](i),
		), nil
	})
}
