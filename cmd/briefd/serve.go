package main

import (
	"net/http"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/fyrsmithlabs/briefd/internal/briefing"
	"github.com/fyrsmithlabs/briefd/internal/config"
	"github.com/fyrsmithlabs/briefd/internal/metrics"
	"github.com/fyrsmithlabs/briefd/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the briefing HTTP server",
	Long: `Start the briefd HTTP server.

Endpoints:
  GET /health               liveness probe
  GET /metrics              Prometheus metrics
  GET /api/v1/briefing      full daily briefing
  GET /api/v1/greeting      greeting and mood
  GET /api/v1/focus-score   focus score widget value`,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.close()

	// Config changes adjust the log level without a restart. A missing
	// config directory just disables watching.
	if err := config.Watch(ctx, configPath, a.logger, a.applyConfig); err != nil {
		a.logger.Warn("config watching unavailable", zap.Error(err))
	}

	m := metrics.New(prometheus.DefaultRegisterer)
	gen := a.generator(briefing.WithMetrics(m))

	srv := server.New(a.cfg.Server, gen, a.logger)
	if err := srv.Start(ctx); err != nil && err != http.ErrServerClosed {
		a.logger.Error("server failed", zap.Error(err))
		return err
	}

	a.logger.Info("shutdown complete")
	return nil
}
