// Command gridpathd serves gridpath grid sessions over HTTP.
//
// Configuration comes from an optional .env file and the environment (see
// package config). Metrics are exposed at /metrics, the API under
// {GRIDPATH_BASE_URL}/v1.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/katalvlaran/gridpath/api"
	gridsapi "github.com/katalvlaran/gridpath/api/grids"
	"github.com/katalvlaran/gridpath/api/i"
	"github.com/katalvlaran/gridpath/config"
	"github.com/katalvlaran/gridpath/engine"
	"github.com/katalvlaran/gridpath/metrics"
	"github.com/katalvlaran/gridpath/service"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		slog.Error("gridpathd_exit", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)
	gin.SetMode(cfg.GinMode)

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	recorder, err := metrics.New(registry)
	if err != nil {
		return err
	}

	sessions := service.NewSessionManager(service.Config{
		MaxDimension: cfg.MaxDimension,
		Logger:       logger,
		EngineOptions: []engine.Option{
			engine.WithLogger(logger),
			engine.WithRecorder(recorder),
		},
	})

	router := api.NewRouter(api.Config{
		Addr:        cfg.Addr,
		BaseURL:     cfg.BaseURL,
		Controllers: []i.Controller{gridsapi.NewController(sessions, cfg.DefaultDimension)},
		Metrics:     promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		Logger:      logger,
	})
	srv := router.Server()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server_start",
			slog.String("addr", cfg.Addr),
			slog.String("base_url", cfg.BaseURL),
		)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err = <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("server_shutdown")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
