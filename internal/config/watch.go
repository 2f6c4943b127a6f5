package config

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
)

// reloadDebounce coalesces the burst of events editors produce when
// saving (truncate, write, chmod, or rename-over).
const reloadDebounce = 100 * time.Millisecond

// Watch observes the configuration file at path and sends every revision
// that parses cleanly on the returned channel. Revisions that fail to
// parse are logged and skipped, so the last good configuration stays in
// effect. The channel is closed when ctx is done.
//
// The parent directory is watched rather than the file itself so that
// editors which replace the file on save, and a file that does not exist
// yet, are both handled.
func Watch(ctx context.Context, path string, logger *log.Logger) (<-chan Config, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}
	if err := fsw.Add(filepath.Dir(absPath)); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watching %s: %w", filepath.Dir(absPath), err)
	}

	if logger == nil {
		logger = log.New(io.Discard)
	}

	out := make(chan Config, 1)
	go watchLoop(ctx, fsw, absPath, logger, out)
	return out, nil
}

func watchLoop(ctx context.Context, fsw *fsnotify.Watcher, path string, logger *log.Logger, out chan<- Config) {
	defer close(out)
	defer fsw.Close()

	var (
		timer   *time.Timer
		pending <-chan time.Time
	)

	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return

		case ev, ok := <-fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != path {
				continue
			}
			if !ev.Op.Has(fsnotify.Write) && !ev.Op.Has(fsnotify.Create) && !ev.Op.Has(fsnotify.Rename) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(reloadDebounce)
			} else {
				timer.Reset(reloadDebounce)
			}
			pending = timer.C

		case err, ok := <-fsw.Errors:
			if !ok {
				return
			}
			logger.Warn("config watch error", "err", err)

		case <-pending:
			pending = nil
			cfg, err := Load(path)
			if err != nil {
				logger.Warn("config reload failed", "path", path, "err", err)
				continue
			}
			logger.Debug("config reloaded", "path", path)
			select {
			case out <- cfg:
			case <-ctx.Done():
				return
			}
		}
	}
}
