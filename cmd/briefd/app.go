package main

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/fyrsmithlabs/briefd/internal/briefing"
	"github.com/fyrsmithlabs/briefd/internal/calendar"
	"github.com/fyrsmithlabs/briefd/internal/codehost"
	"github.com/fyrsmithlabs/briefd/internal/config"
	"github.com/fyrsmithlabs/briefd/internal/habits"
	"github.com/fyrsmithlabs/briefd/internal/logging"
	"github.com/fyrsmithlabs/briefd/internal/source"
	"github.com/fyrsmithlabs/briefd/internal/timeblock"
	"github.com/fyrsmithlabs/briefd/internal/todoist"
	"github.com/fyrsmithlabs/briefd/internal/weather"
)

// app holds everything a command needs after wiring.
type app struct {
	cfg       *config.Config
	logger    *zap.Logger
	logLevel  zap.AtomicLevel
	providers source.Providers
	store     *habits.Store
}

// newApp loads config, builds the logger, and wires every integration that
// has credentials configured. Integrations without credentials are left nil;
// the gather layer reports them as unavailable instead of failing.
func newApp(ctx context.Context) (*app, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	logger, logLevel, err := logging.New(cfg.Logging)
	if err != nil {
		return nil, err
	}

	a := &app{cfg: cfg, logger: logger, logLevel: logLevel}

	var weatherOpts []weather.Option
	if cfg.Weather.City != "" {
		weatherOpts = append(weatherOpts, weather.WithCity(cfg.Weather.City))
	} else {
		weatherOpts = append(weatherOpts, weather.WithCoordinates(cfg.Weather.Latitude, cfg.Weather.Longitude))
	}
	a.providers.Weather = weather.NewClient(weatherOpts...)

	if cfg.Todoist.Token.IsSet() {
		client, err := todoist.NewClient(cfg.Todoist.Token)
		if err != nil {
			return nil, fmt.Errorf("todoist: %w", err)
		}
		a.providers.Tasks = client
	} else {
		logger.Info("todoist not configured, skipping")
	}

	if cfg.Calendar.Token.IsSet() {
		client, err := calendar.NewClient(ctx, cfg.Calendar.Token.Value(), cfg.Calendar.CalendarID)
		if err != nil {
			return nil, fmt.Errorf("calendar: %w", err)
		}
		a.providers.Events = client
	} else {
		logger.Info("calendar not configured, skipping")
	}

	if cfg.GitHub.Token.IsSet() {
		client, err := codehost.NewClient(ctx, cfg.GitHub.Token, cfg.GitHub.Username)
		if err != nil {
			return nil, fmt.Errorf("github: %w", err)
		}
		a.providers.Activity = client
	} else {
		logger.Info("github not configured, skipping")
	}

	if cfg.Habits.DBPath != "" {
		store, err := habits.Open(cfg.Habits.DBPath)
		if err != nil {
			return nil, fmt.Errorf("habits: %w", err)
		}
		a.store = store
		a.providers.Habits = store
	}

	return a, nil
}

// applyConfig applies the reloadable subset of a changed config. Only the
// log level takes effect without a restart.
func (a *app) applyConfig(cfg *config.Config) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Logging.Level)); err != nil {
		return
	}
	if a.logLevel.Level() != level {
		a.logLevel.SetLevel(level)
		a.logger.Info("log level changed", zap.String("level", cfg.Logging.Level))
	}
}

// habitStore returns the configured habit store.
func (a *app) habitStore() (*habits.Store, error) {
	if a.store != nil {
		return a.store, nil
	}
	return nil, fmt.Errorf("habit tracking not configured: set habits.db_path")
}

// generator builds the briefing generator from the wired providers.
func (a *app) generator(opts ...briefing.Option) *briefing.Generator {
	window := timeblock.Window{
		StartHour: a.cfg.Planner.DayStartHour,
		EndHour:   a.cfg.Planner.DayEndHour,
	}
	all := []briefing.Option{briefing.WithWindow(window)}
	if a.cfg.Profile.Name != "" {
		all = append(all, briefing.WithName(a.cfg.Profile.Name))
	}
	all = append(all, opts...)
	return briefing.NewGenerator(a.providers, a.logger, all...)
}

// close releases resources and flushes the logger.
func (a *app) close() {
	if a.store != nil {
		_ = a.store.Close()
	}
	_ = logging.Sync(a.logger)
}
