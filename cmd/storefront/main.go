// Command storefront is a terminal client for the food delivery storefront.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/dwikikusuma/storefront/internal/api"
	"github.com/dwikikusuma/storefront/pkg/config"
	"github.com/dwikikusuma/storefront/pkg/logger"
	"github.com/dwikikusuma/storefront/pkg/shutdown"
	"github.com/dwikikusuma/storefront/pkg/telemetry"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	cfg := config.Load()
	log := logger.New(logger.Options{
		Service: "storefront",
		Env:     cfg.AppEnv,
		Level:   cfg.LogLevel,
		Output:  stderr,
	})

	stopTracing, err := telemetry.Setup(telemetry.Options{Service: "storefront", Env: cfg.AppEnv, Exporter: cfg.TraceExporter})
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitFailure
	}

	ctx, cancel := shutdown.WithSignals(context.Background())
	defer cancel()

	sessions, closeSessions, err := openSessions(ctx, cfg)
	if err != nil {
		log.Error("session store unavailable", slog.String("store", cfg.SessionStore), slog.Any("err", err))
		fmt.Fprintln(stderr, "Could not open the saved session.")
		return exitFailure
	}

	client := api.New(api.Options{
		BaseURL:   cfg.APIBaseURL,
		Timeout:   cfg.APITimeout,
		UserAgent: "storefront-cli",
		Logger:    log,
	})
	code := newApp(cfg, client, sessions, log, stdout, stderr).exec(ctx, args)

	err = shutdown.Run(5*time.Second,
		shutdown.Hook{Name: "tracing", Fn: stopTracing},
		shutdown.Hook{Name: "sessions", Fn: closeSessions},
	)
	if err != nil {
		log.Warn("shutdown", slog.Any("err", err))
	}
	return code
}
