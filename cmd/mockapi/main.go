package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/dwikikusuma/storefront/internal/mockapi"
	"github.com/dwikikusuma/storefront/pkg/config"
	"github.com/dwikikusuma/storefront/pkg/logger"
	"github.com/dwikikusuma/storefront/pkg/shutdown"
	"github.com/dwikikusuma/storefront/pkg/telemetry"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

func main() {
	// Amounts are rendered as JSON numbers, like the production backend.
	decimal.MarshalJSONWithoutQuotes = true

	cfg := config.Load()
	log := logger.New(logger.Options{
		Service:   "mockapi",
		Env:       cfg.AppEnv,
		Level:     cfg.LogLevel,
		AddSource: true,
	})

	stopTracing, err := telemetry.Setup(telemetry.Options{Service: "mockapi", Env: cfg.AppEnv, Exporter: cfg.TraceExporter})
	if err != nil {
		log.Error("telemetry setup failed", slog.Any("err", err))
		os.Exit(1)
	}

	ctx, cancel := shutdown.WithSignals(context.Background())
	defer cancel()

	store := mockapi.NewStore()
	store.Seed()
	api := mockapi.New(store, log)

	addr := fmt.Sprintf(":%d", cfg.HTTPPort)
	server := &http.Server{
		Addr:              addr,
		Handler:           otelhttp.NewHandler(api.Handler(), "mockapi"),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		log.Info("mock backend listening", slog.String("addr", addr), slog.String("base", "/api"))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("http server error", slog.Any("err", err))
			cancel()
		}
	}()

	<-ctx.Done()
	log.Info("shutdown requested")

	err = shutdown.Run(10*time.Second,
		shutdown.Hook{Name: "tracing", Fn: stopTracing},
		shutdown.Hook{Name: "http", Fn: server.Shutdown},
	)
	if err != nil {
		log.Error("shutdown error", slog.Any("err", err))
	}

	wg.Wait()
	log.Info("bye")
}
