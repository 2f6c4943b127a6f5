// Package logging builds the structured loggers used across termwin.
//
// The terminal belongs to the UI while it runs, so logs never go to
// stdout or stderr during a session: they are written to a file, or
// discarded.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/dshills/termwin/internal/config"
)

// Disabled is the log file setting that turns logging off.
const Disabled = "-"

// Config configures the logger.
type Config struct {
	// Level is the minimum level written.
	Level log.Level
	// Output is where logs are written. Nil discards everything.
	Output io.Writer
	// Prefix is prepended to every line.
	Prefix string
}

// DefaultConfig returns the default logger configuration.
func DefaultConfig() Config {
	return Config{
		Level:  log.InfoLevel,
		Output: io.Discard,
		Prefix: "termwin",
	}
}

// New creates a logger with the given configuration.
func New(cfg Config) *log.Logger {
	out := cfg.Output
	if out == nil {
		out = io.Discard
	}
	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          cfg.Prefix,
		Level:           cfg.Level,
	})
	return logger
}

// Nop returns a logger that discards everything.
func Nop() *log.Logger {
	return New(Config{Level: log.FatalLevel})
}

// WithComponent returns a child logger tagged with the component name.
func WithComponent(logger *log.Logger, component string) *log.Logger {
	if logger == nil {
		logger = Nop()
	}
	return logger.With("component", component)
}

// Open creates the logger described by the [log] section of cfg. The
// returned closer releases the log file and must be called on shutdown.
func Open(cfg config.LogConfig) (*log.Logger, io.Closer, error) {
	level, err := log.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil {
		level = log.InfoLevel
	}

	if cfg.File == Disabled {
		return New(Config{Level: level, Prefix: "termwin"}), nopCloser{}, nil
	}

	path := cfg.File
	if path == "" {
		path, err = config.DefaultLogPath()
		if err != nil {
			return nil, nil, err
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("creating log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file %s: %w", path, err)
	}

	return New(Config{Level: level, Output: f, Prefix: "termwin"}), f, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
