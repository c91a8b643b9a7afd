// Package logging builds the zap logger used across briefd.
package logging

import (
	"errors"
	"fmt"
	"os"
	"syscall"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/fyrsmithlabs/briefd/internal/config"
)

// New creates a logger from config. Format is "console" or "json"; level is
// one of debug, info, warn, error. The returned AtomicLevel adjusts the
// logger's level at runtime, e.g. on a config reload.
func New(cfg config.LoggingConfig) (*zap.Logger, zap.AtomicLevel, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		return nil, zap.AtomicLevel{}, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}
	atom := zap.NewAtomicLevelAt(level)

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "ts"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	var encoder zapcore.Encoder
	switch cfg.Format {
	case "console":
		encoderCfg.EncodeLevel = zapcore.CapitalLevelEncoder
		encoder = zapcore.NewConsoleEncoder(encoderCfg)
	case "json":
		encoder = zapcore.NewJSONEncoder(encoderCfg)
	default:
		return nil, zap.AtomicLevel{}, fmt.Errorf("invalid log format %q (want console or json)", cfg.Format)
	}

	core := zapcore.NewCore(encoder, zapcore.Lock(os.Stderr), atom)
	return zap.New(core, zap.AddStacktrace(zapcore.ErrorLevel)), atom, nil
}

// Sync flushes buffered entries, ignoring the harmless EINVAL/ENOTTY errors
// Linux returns when syncing a terminal.
func Sync(logger *zap.Logger) error {
	err := logger.Sync()
	if err == nil {
		return nil
	}
	var errno syscall.Errno
	if errors.As(err, &errno) && (errno == syscall.EINVAL || errno == syscall.ENOTTY) {
		return nil
	}
	return err
}
