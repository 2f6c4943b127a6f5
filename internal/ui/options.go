package ui

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/dshills/termwin/internal/config"
	"github.com/dshills/termwin/internal/input/key"
	"github.com/dshills/termwin/internal/input/mouse"
	"github.com/dshills/termwin/internal/logging"
)

// Options configures a Screen.
type Options struct {
	// Cursor is the cursor visibility, 0 to 2.
	Cursor int

	// Mouse enables mouse reporting.
	Mouse bool

	// PollInterval is slept between run-loop iterations.
	PollInterval time.Duration

	// FocusKey is the token that moves focus to the next text field;
	// key.None disables focus cycling.
	FocusKey key.Code

	// DoubleClick is the longest gap between the clicks of a double click.
	DoubleClick time.Duration

	// Logger receives debug output. Nil discards it.
	Logger *log.Logger
}

// DefaultOptions returns the options matching config.Default.
func DefaultOptions() Options {
	return OptionsFromConfig(config.Default().Screen)
}

// OptionsFromConfig converts the [screen] configuration section.
func OptionsFromConfig(cfg config.ScreenConfig) Options {
	focus, _ := cfg.FocusCode()
	return Options{
		Cursor:       cfg.Cursor,
		Mouse:        cfg.Mouse,
		PollInterval: cfg.PollInterval.Std(),
		FocusKey:     focus,
		DoubleClick:  cfg.DoubleClick.Std(),
	}
}

// apply pushes the terminal-facing options to the terminal.
func (s *Screen) apply(opts Options) {
	if opts.Logger == nil {
		opts.Logger = s.opts.Logger
	}
	if opts.Logger == nil {
		opts.Logger = logging.Nop()
	}
	s.opts = opts
	s.logger = logging.WithComponent(opts.Logger, "ui")

	s.term.SetCursor(opts.Cursor)
	s.term.SetMouse(opts.Mouse)
	s.term.Decoder().SetConfig(mouse.Config{
		DoubleClickTime:     opts.DoubleClick,
		DoubleClickDistance: mouse.DefaultConfig().DoubleClickDistance,
	})
}
