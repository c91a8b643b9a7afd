package config

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// watchDebounce coalesces the burst of filesystem events editors emit per
// save into a single reload.
const watchDebounce = 200 * time.Millisecond

// Watch reloads the config file whenever it changes and passes each valid
// reload to onChange. Reloads that fail to parse or validate are logged and
// skipped, keeping the last good configuration in effect.
//
// The parent directory is watched rather than the file itself, so editors
// that replace the file via rename keep being tracked. Watch returns once
// the watcher is installed; the watch goroutine stops when ctx is cancelled.
func Watch(ctx context.Context, configPath string, logger *zap.Logger, onChange func(*Config)) error {
	path, err := resolvePath(configPath)
	if err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	dir := filepath.Dir(path)
	if err := watcher.Add(dir); err != nil {
		_ = watcher.Close()
		return fmt.Errorf("watch %s: %w", dir, err)
	}

	go func() {
		defer watcher.Close()

		var timer *time.Timer
		var pending <-chan time.Time
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != filepath.Clean(path) {
					continue
				}
				if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
					continue
				}
				if timer == nil {
					timer = time.NewTimer(watchDebounce)
					pending = timer.C
				} else {
					timer.Reset(watchDebounce)
				}
			case <-pending:
				timer = nil
				pending = nil
				cfg, err := Load(path)
				if err != nil {
					logger.Warn("config reload failed", zap.Error(err))
					continue
				}
				logger.Info("config reloaded", zap.String("path", path))
				onChange(cfg)
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logger.Warn("config watcher error", zap.Error(err))
			}
		}
	}()

	return nil
}
