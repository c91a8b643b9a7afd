// Package config provides configuration loading for briefd.
//
// Configuration is loaded from a YAML file with environment variable
// overrides. Integration tokens are Secret values that redact themselves in
// logs and serialized output.
package config

import (
	"errors"
	"fmt"
	"time"
)

// Config holds the complete briefd configuration.
type Config struct {
	Server   ServerConfig   `koanf:"server"`
	Logging  LoggingConfig  `koanf:"logging"`
	Profile  ProfileConfig  `koanf:"profile"`
	Weather  WeatherConfig  `koanf:"weather"`
	Todoist  TodoistConfig  `koanf:"todoist"`
	Calendar CalendarConfig `koanf:"calendar"`
	GitHub   GitHubConfig   `koanf:"github"`
	Habits   HabitsConfig   `koanf:"habits"`
	Planner  PlannerConfig  `koanf:"planner"`
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port            int      `koanf:"http_port"`
	ShutdownTimeout Duration `koanf:"shutdown_timeout"`
}

// LoggingConfig holds logger configuration.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// ProfileConfig holds details about the person being briefed.
type ProfileConfig struct {
	Name string `koanf:"name"`
}

// WeatherConfig holds the Open-Meteo query settings. The API needs no key.
type WeatherConfig struct {
	Latitude  float64 `koanf:"latitude"`
	Longitude float64 `koanf:"longitude"`
	City      string  `koanf:"city"`
}

// TodoistConfig holds Todoist API credentials.
type TodoistConfig struct {
	Token Secret `koanf:"token"`
}

// CalendarConfig holds Google Calendar API credentials.
type CalendarConfig struct {
	Token      Secret `koanf:"token"`
	CalendarID string `koanf:"calendar_id"`
}

// GitHubConfig holds GitHub API credentials.
type GitHubConfig struct {
	Token    Secret `koanf:"token"`
	Username string `koanf:"username"`
}

// HabitsConfig holds the habit tracker's storage settings.
type HabitsConfig struct {
	DBPath string `koanf:"db_path"`
}

// PlannerConfig bounds the time-blocking day window.
type PlannerConfig struct {
	DayStartHour int `koanf:"day_start_hour"`
	DayEndHour   int `koanf:"day_end_hour"`
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d (must be 1-65535)", c.Server.Port)
	}
	if c.Server.ShutdownTimeout.Duration() <= 0 {
		return errors.New("shutdown timeout must be positive")
	}

	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid logging level: %q", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("invalid logging format: %q", c.Logging.Format)
	}

	if c.Weather.Latitude < -90 || c.Weather.Latitude > 90 {
		return fmt.Errorf("invalid latitude: %v", c.Weather.Latitude)
	}
	if c.Weather.Longitude < -180 || c.Weather.Longitude > 180 {
		return fmt.Errorf("invalid longitude: %v", c.Weather.Longitude)
	}

	if c.GitHub.Token.IsSet() && c.GitHub.Username == "" {
		return errors.New("github username required when github token is set")
	}

	if c.Planner.DayStartHour < 0 || c.Planner.DayStartHour > 23 {
		return fmt.Errorf("invalid day start hour: %d", c.Planner.DayStartHour)
	}
	if c.Planner.DayEndHour < 1 || c.Planner.DayEndHour > 24 {
		return fmt.Errorf("invalid day end hour: %d", c.Planner.DayEndHour)
	}
	if c.Planner.DayEndHour <= c.Planner.DayStartHour {
		return errors.New("day end hour must be after day start hour")
	}

	return nil
}

// applyDefaults sets default values for missing configuration fields.
func applyDefaults(cfg *Config) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8787
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = Duration(10 * time.Second)
	}

	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "console"
	}

	// San Francisco, matching the weather client's default coordinates.
	if cfg.Weather.Latitude == 0 && cfg.Weather.Longitude == 0 && cfg.Weather.City == "" {
		cfg.Weather.Latitude = 37.7749
		cfg.Weather.Longitude = -122.4194
	}

	if cfg.Calendar.CalendarID == "" {
		cfg.Calendar.CalendarID = "primary"
	}

	if cfg.Planner.DayStartHour == 0 && cfg.Planner.DayEndHour == 0 {
		cfg.Planner.DayStartHour = 8
		cfg.Planner.DayEndHour = 22
	}
}
