package ui

import (
	"testing"

	"github.com/dshills/termwin/internal/renderer/backend"
)

func newTestScreen(t *testing.T) (*Screen, *backend.NullBackend) {
	t.Helper()
	opts := DefaultOptions()
	opts.PollInterval = 0
	return newTestScreenWith(t, opts)
}

func newTestScreenWith(t *testing.T, opts Options) (*Screen, *backend.NullBackend) {
	t.Helper()
	be := backend.NewNullBackend(80, 24)
	s, err := NewScreen(be, opts)
	if err != nil {
		t.Fatalf("NewScreen failed: %v", err)
	}
	t.Cleanup(s.End)
	return s, be
}

func mustWindow(t *testing.T, win *Window) *Window {
	t.Helper()
	if win == nil {
		t.Fatal("window creation failed")
	}
	return win
}

// feed posts events and runs one update of win per event.
func feed(win *Window, be *backend.NullBackend, events ...backend.Event) {
	for _, ev := range events {
		be.PostEvent(ev)
		win.Update()
	}
}

func typeString(win *Window, be *backend.NullBackend, s string) {
	for _, r := range s {
		if r == '\n' {
			feed(win, be, backend.KeyEvent(backend.KeyEnter))
			continue
		}
		feed(win, be, backend.RuneEvent(r))
	}
}

// screenRunes returns n cells of backend row y starting at column x.
func screenRunes(be *backend.NullBackend, y, x, n int) string {
	return string([]rune(be.Line(y))[x : x+n])
}
