package ui

import (
	"fmt"
	"slices"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"

	"github.com/dshills/termwin/internal/config"
	"github.com/dshills/termwin/internal/input/key"
	"github.com/dshills/termwin/internal/renderer/backend"
	"github.com/dshills/termwin/internal/renderer/region"
)

// Screen owns the terminal, the window registry, focus and the run loop.
type Screen struct {
	term   *region.Terminal
	opts   Options
	logger *log.Logger

	windows []*Window
	focused *Window

	exit  atomic.Bool
	ended bool

	updateFn func(*Screen)
	reloads  <-chan config.Config
}

// NewScreen initializes the backend and applies opts.
func NewScreen(be backend.Backend, opts Options) (*Screen, error) {
	term := region.NewTerminal(be)
	if err := term.Init(); err != nil {
		return nil, fmt.Errorf("initializing terminal: %w", err)
	}

	s := &Screen{term: term}
	s.apply(opts)
	s.logger.Debug("screen initialized")
	return s, nil
}

// Terminal returns the underlying terminal manager.
func (s *Screen) Terminal() *region.Terminal {
	return s.term
}

// Logger returns the screen's logger.
func (s *Screen) Logger() *log.Logger {
	return s.logger
}

// Options returns the options in effect.
func (s *Screen) Options() Options {
	return s.opts
}

// SetCursor sets the cursor visibility, clamped to [0, 2], and returns the
// previous setting.
func (s *Screen) SetCursor(visibility int) int {
	prev := s.term.SetCursor(visibility)
	s.opts.Cursor = s.term.Cursor()
	return prev
}

// SetMouse enables or disables mouse reporting.
func (s *Screen) SetMouse(enabled bool) {
	s.term.SetMouse(enabled)
	s.opts.Mouse = enabled
}

// Print writes text at (y, x) of the root surface. It shows up at the next
// Refresh.
func (s *Screen) Print(y, x int, text string) error {
	return s.term.Stdscr().PrintAt(y, x, text)
}

// Refresh shows the root surface.
func (s *Screen) Refresh() {
	s.term.Stdscr().Refresh()
}

// Clear blanks the root surface.
func (s *Screen) Clear() {
	s.term.Stdscr().Clear()
}

// AddWindow appends win to the registry and gives it focus. Windows add
// themselves on creation; adding a registered window again only moves
// focus to it.
func (s *Screen) AddWindow(win *Window) {
	if win == nil {
		return
	}
	if !slices.Contains(s.windows, win) {
		s.windows = append(s.windows, win)
	}
	s.SetFocus(win)
}

// RemoveWindow drops win from the registry. Removing an absent window is a
// no-op.
func (s *Screen) RemoveWindow(win *Window) {
	s.windows = slices.DeleteFunc(s.windows, func(w *Window) bool { return w == win })
	if s.focused == win {
		s.focused = nil
	}
}

// Windows returns a snapshot of the registry in registration order.
func (s *Screen) Windows() []*Window {
	return slices.Clone(s.windows)
}

// WindowByID returns the registered window with the given ID, or nil.
func (s *Screen) WindowByID(id string) *Window {
	for _, w := range s.windows {
		if w.id == id {
			return w
		}
	}
	return nil
}

// Focused returns the window holding focus, or nil.
func (s *Screen) Focused() *Window {
	return s.focused
}

// SetFocus gives win input focus and takes it from every other window.
// Each window whose focus changes is marked dirty so its border is redrawn
// at its next update. A nil win clears focus; an unregistered win is
// ignored.
func (s *Screen) SetFocus(win *Window) {
	if win != nil && !slices.Contains(s.windows, win) {
		return
	}
	for _, w := range s.windows {
		if want := w == win; w.focus != want {
			w.SetFocus(want)
		}
	}
	if s.focused != win {
		s.logger.Debug("focus", "from", windowID(s.focused), "to", windowID(win))
	}
	s.focused = win
}

// SetFocusNext moves focus to the first text field after win in
// registration order, wrapping around; win itself is considered last. If
// win is not registered the scan starts at the first window. When no text
// field is registered focus is left unchanged and ErrNoTextField is
// returned.
func (s *Screen) SetFocusNext(win *Window) error {
	n := len(s.windows)
	start := slices.Index(s.windows, win)
	for i := 1; i <= n; i++ {
		cand := s.windows[(start+i)%n]
		if cand.textField {
			s.SetFocus(cand)
			return nil
		}
	}
	return ErrNoTextField
}

func (s *Screen) isFocusKey(tok key.Code) bool {
	return s.opts.FocusKey != key.None && tok == s.opts.FocusKey
}

// SetUpdateFunc sets the routine run by Update when no windows are
// registered.
func (s *Screen) SetUpdateFunc(fn func(*Screen)) {
	s.updateFn = fn
}

// WatchConfig makes the run loop apply configurations received on ch. The
// channel is drained without blocking at the start of each iteration.
func (s *Screen) WatchConfig(ch <-chan config.Config) {
	s.reloads = ch
}

// ApplyConfig applies a [screen] configuration section.
func (s *Screen) ApplyConfig(cfg config.ScreenConfig) {
	opts := OptionsFromConfig(cfg)
	opts.Logger = s.opts.Logger
	s.apply(opts)
	s.logger.Debug("config applied", "cursor", opts.Cursor, "mouse", opts.Mouse,
		"poll", opts.PollInterval, "focus_key", opts.FocusKey)
}

func (s *Screen) drainReloads() {
	for s.reloads != nil {
		select {
		case cfg, ok := <-s.reloads:
			if !ok {
				s.reloads = nil
				return
			}
			s.ApplyConfig(cfg.Screen)
		default:
			return
		}
	}
}

// Update runs one iteration of the run loop: every registered window is
// updated in registration order, or the fallback routine runs if there are
// none. Windows created by handlers during the pass are first updated on
// the next pass; windows destroyed during it are skipped.
func (s *Screen) Update() {
	s.drainReloads()

	if len(s.windows) == 0 {
		if s.updateFn != nil {
			s.updateFn(s)
		}
		return
	}
	for _, w := range slices.Clone(s.windows) {
		w.Update()
	}
}

// Mainloop calls Update until Exit is called.
func (s *Screen) Mainloop() {
	s.logger.Debug("mainloop start")
	for !s.exit.Load() {
		s.Update()
		if s.opts.PollInterval > 0 {
			time.Sleep(s.opts.PollInterval)
		}
	}
	s.logger.Debug("mainloop exit")
}

// Exit asks Mainloop to return once the current iteration completes. It
// may be called from any goroutine.
func (s *Screen) Exit() {
	s.exit.Store(true)
}

// ShouldExit reports whether Exit has been called.
func (s *Screen) ShouldExit() bool {
	return s.exit.Load()
}

// End destroys every registered window in registration order and then
// releases the terminal. Further calls do nothing.
func (s *Screen) End() {
	if s.ended {
		return
	}
	for _, w := range slices.Clone(s.windows) {
		w.Destroy()
	}
	s.term.Shutdown()
	s.ended = true
	s.logger.Debug("screen ended")
}

func windowID(w *Window) string {
	if w == nil {
		return ""
	}
	return w.id
}
