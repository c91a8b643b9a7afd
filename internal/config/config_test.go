package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, ""))
	require.NoError(t, err)

	assert.Equal(t, 8787, cfg.Server.Port)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout.Duration())
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.Equal(t, 37.7749, cfg.Weather.Latitude)
	assert.Equal(t, "primary", cfg.Calendar.CalendarID)
	assert.Equal(t, 8, cfg.Planner.DayStartHour)
	assert.Equal(t, 22, cfg.Planner.DayEndHour)
	assert.False(t, cfg.Todoist.Token.IsSet())
}

func TestLoadYAML(t *testing.T) {
	cfg, err := Load(writeConfig(t, `
server:
  http_port: 9000
  shutdown_timeout: 30s
logging:
  level: debug
  format: json
profile:
  name: Sam
weather:
  city: Berlin
todoist:
  token: td-secret
github:
  token: gh-secret
  username: octocat
planner:
  day_start_hour: 7
  day_end_hour: 20
`))
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, 30*time.Second, cfg.Server.ShutdownTimeout.Duration())
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "Sam", cfg.Profile.Name)
	assert.Equal(t, "Berlin", cfg.Weather.City)
	assert.Equal(t, "td-secret", cfg.Todoist.Token.Value())
	assert.Equal(t, "octocat", cfg.GitHub.Username)
	assert.Equal(t, 7, cfg.Planner.DayStartHour)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("BRIEFD_SERVER_HTTP_PORT", "9999")
	t.Setenv("BRIEFD_TODOIST_TOKEN", "env-secret")
	t.Setenv("BRIEFD_LOGGING_LEVEL", "warn")

	cfg, err := Load(writeConfig(t, `
server:
  http_port: 9000
todoist:
  token: file-secret
`))
	require.NoError(t, err)

	assert.Equal(t, 9999, cfg.Server.Port, "env beats file")
	assert.Equal(t, "env-secret", cfg.Todoist.Token.Value())
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	require.NoError(t, err)
	assert.Equal(t, 8787, cfg.Server.Port)
}

func TestLoadValidation(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{"bad level", "logging:\n  level: loud\n", "invalid logging level"},
		{"bad format", "logging:\n  format: xml\n", "invalid logging format"},
		{"bad latitude", "weather:\n  latitude: 120\n  longitude: 10\n", "invalid latitude"},
		{"github without username", "github:\n  token: tok\n", "github username required"},
		{"inverted planner window", "planner:\n  day_start_hour: 20\n  day_end_hour: 9\n", "day end hour must be after"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.yaml))
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestSecretRedaction(t *testing.T) {
	s := Secret("hunter2")
	assert.Equal(t, "[REDACTED]", s.String())
	assert.Equal(t, "hunter2", s.Value())
	assert.True(t, s.IsSet())

	out, err := s.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"[REDACTED]"`, string(out))

	var empty Secret
	assert.Equal(t, "", empty.String())
	assert.False(t, empty.IsSet())
}

func TestDurationParsing(t *testing.T) {
	var d Duration
	require.NoError(t, d.UnmarshalText([]byte("90s")))
	assert.Equal(t, 90*time.Second, d.Duration())

	assert.Error(t, d.UnmarshalText([]byte("-5s")))
	assert.Error(t, d.UnmarshalText([]byte("soon")))

	text, err := Duration(time.Minute).MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "1m0s", string(text))
}
