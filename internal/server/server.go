// Package server provides the briefd HTTP API.
//
// The server exposes the briefing endpoints on an Echo router with graceful
// context-aware shutdown and Prometheus metrics at /metrics.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/fyrsmithlabs/briefd/internal/briefing"
	"github.com/fyrsmithlabs/briefd/internal/config"
)

// BriefingService is the briefing surface the HTTP handlers call.
type BriefingService interface {
	Generate(ctx context.Context) *briefing.DailyBriefing
	Greeting(b *briefing.DailyBriefing) string
	FocusScore(ctx context.Context) int
}

// Server is the briefd HTTP server.
type Server struct {
	config  config.ServerConfig
	echo    *echo.Echo
	service BriefingService
	logger  *zap.Logger
}

// HealthResponse is the JSON response for the /health endpoint.
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

// GreetingResponse is the JSON response for the greeting endpoint.
type GreetingResponse struct {
	Greeting string `json:"greeting"`
	Mood     string `json:"mood"`
}

// FocusResponse is the JSON response for the focus score endpoint.
type FocusResponse struct {
	Score int `json:"score"`
}

// New creates the HTTP server over a briefing service.
func New(cfg config.ServerConfig, service BriefingService, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(requestLogger(logger))

	s := &Server{
		config:  cfg,
		echo:    e,
		service: service,
		logger:  logger.Named("server"),
	}
	s.registerRoutes()
	return s
}

// requestLogger logs one line per request through zap.
func requestLogger(logger *zap.Logger) echo.MiddlewareFunc {
	logger = logger.Named("http")
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus:  true,
		LogURI:     true,
		LogMethod:  true,
		LogLatency: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			logger.Info("request",
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency))
			return nil
		},
	})
}

func (s *Server) registerRoutes() {
	s.echo.GET("/health", s.handleHealth)
	s.echo.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := s.echo.Group("/api/v1")
	api.GET("/briefing", s.handleBriefing)
	api.GET("/greeting", s.handleGreeting)
	api.GET("/focus-score", s.handleFocusScore)
}

func (s *Server) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, HealthResponse{Status: "ok", Service: "briefd"})
}

// handleBriefing generates a full briefing. Failed integrations degrade to
// empty sections, so this always returns 200 with integrationStatus flagging
// what was unavailable.
func (s *Server) handleBriefing(c echo.Context) error {
	b := s.service.Generate(c.Request().Context())
	return c.JSON(http.StatusOK, b)
}

func (s *Server) handleGreeting(c echo.Context) error {
	b := s.service.Generate(c.Request().Context())
	return c.JSON(http.StatusOK, GreetingResponse{
		Greeting: s.service.Greeting(b),
		Mood:     string(b.Summary.OverallMood),
	})
}

func (s *Server) handleFocusScore(c echo.Context) error {
	return c.JSON(http.StatusOK, FocusResponse{
		Score: s.service.FocusScore(c.Request().Context()),
	})
}

// Echo returns the underlying Echo instance. Used in tests.
func (s *Server) Echo() *echo.Echo {
	return s.echo
}

// Start starts the HTTP server and blocks until the context is cancelled.
// Returns http.ErrServerClosed after a graceful shutdown.
func (s *Server) Start(ctx context.Context) error {
	addr := fmt.Sprintf(":%d", s.config.Port)

	errCh := make(chan error, 1)
	go func() {
		if err := s.echo.Start(addr); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("server start: %w", err)
		}
	}()

	s.logger.Info("listening", zap.String("addr", addr))

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		timeout := s.config.ShutdownTimeout.Duration()
		if timeout <= 0 {
			timeout = 10 * time.Second
		}
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		if err := s.echo.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown: %w", err)
		}
		return http.ErrServerClosed
	}
}
