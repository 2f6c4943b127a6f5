package ui

import (
	"errors"
	"testing"

	"github.com/dshills/termwin/internal/input/key"
	"github.com/dshills/termwin/internal/input/mouse"
	"github.com/dshills/termwin/internal/renderer/backend"
)

func TestTypeAndBackspaceInChild(t *testing.T) {
	s, be := newTestScreen(t)
	parent := mustWindow(t, s.CreateWindow(20, 60, 1, 1, true, false))
	child := mustWindow(t, s.CreateChildWindow(parent, 5, 50, 10, 5, true, true))

	typeString(child, be, "abc")

	if got := child.Text()[0]; got != "abc" {
		t.Fatalf("expected abc, got %q", got)
	}
	y, x := child.Cursor()
	if y != 1 || x != 4 {
		t.Fatalf("expected cursor (1,4) after abc, got (%d,%d)", y, x)
	}
	if got := screenRunes(be, 12, 7, 3); got != "abc" {
		t.Errorf("expected abc on screen, got %q", got)
	}

	feed(child, be, backend.KeyEvent(backend.KeyBackspace))

	if got := child.Text()[0]; got != "ab" {
		t.Errorf("expected ab, got %q", got)
	}
	if y, x := child.Cursor(); y != 1 || x != 3 {
		t.Errorf("expected cursor (1,3) after backspace, got (%d,%d)", y, x)
	}
	if got := screenRunes(be, 12, 7, 3); got != "ab " {
		t.Errorf("expected ab on screen, got %q", got)
	}
}

func TestTermHandlerSeesEditedKeys(t *testing.T) {
	s, be := newTestScreen(t)
	win := mustWindow(t, s.CreateWindow(3, 20, 0, 0, true, true))

	var got []key.Code
	win.On(EventTerm, func(ev Event) error {
		if ev.Window != win {
			t.Error("event should carry its window")
		}
		got = append(got, ev.Key)
		return nil
	})

	typeString(win, be, "hi")
	feed(win, be, backend.KeyEvent(backend.KeyBackspace))

	want := []key.Code{'h', 'i', key.Backspace}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("event %d: expected %v, got %v", i, want[i], got[i])
		}
	}
	if text := win.Text()[0]; text != "h" {
		t.Errorf("editing should happen alongside the handler, got %q", text)
	}
}

func TestHandlerErrorIgnored(t *testing.T) {
	s, be := newTestScreen(t)
	win := mustWindow(t, s.CreateWindow(3, 20, 0, 0, true, true))
	win.On(EventTerm, func(Event) error { return errors.New("boom") })

	typeString(win, be, "ok")

	if text := win.Text()[0]; text != "ok" {
		t.Errorf("expected ok, got %q", text)
	}
}

func TestUpArrowWithoutHandler(t *testing.T) {
	s, be := newTestScreen(t)
	win := mustWindow(t, s.CreateWindow(6, 20, 0, 0, true, true))
	win.MoveCursor(3, 5)

	feed(win, be, backend.KeyEvent(backend.KeyUp))
	if y, x := win.Cursor(); y != 2 || x != 5 {
		t.Errorf("expected (2,5), got (%d,%d)", y, x)
	}

	feed(win, be, backend.KeyEvent(backend.KeyUp), backend.KeyEvent(backend.KeyUp))
	if y, _ := win.Cursor(); y != 1 {
		t.Errorf("expected cursor clamped at row 1, got %d", y)
	}
	if text := win.Text()[0]; text != "" {
		t.Errorf("movement keys should not edit, got %q", text)
	}
}

func TestKeyHandlerReplacesMovement(t *testing.T) {
	s, be := newTestScreen(t)
	win := mustWindow(t, s.CreateWindow(6, 20, 0, 0, true, true))
	win.MoveCursor(3, 5)

	var got []key.Code
	win.On(EventKey, func(ev Event) error {
		got = append(got, ev.Key)
		return nil
	})

	feed(win, be, backend.KeyEvent(backend.KeyUp), backend.KeyEvent(backend.KeyF4))

	if len(got) != 2 || got[0] != key.Up || got[1] != key.F(4) {
		t.Errorf("expected [Up F4], got %v", got)
	}
	if y, x := win.Cursor(); y != 3 || x != 5 {
		t.Errorf("handler should own movement, cursor moved to (%d,%d)", y, x)
	}

	win.Off(EventKey)
	feed(win, be, backend.KeyEvent(backend.KeyLeft))
	if _, x := win.Cursor(); x != 4 {
		t.Errorf("expected default movement after Off, got column %d", x)
	}
}

func TestPlainWindowIgnoresKeys(t *testing.T) {
	s, be := newTestScreen(t)
	win := mustWindow(t, s.CreateWindow(6, 20, 0, 0, true, false))

	called := false
	win.On(EventKey, func(Event) error { called = true; return nil })
	win.On(EventTerm, func(Event) error { called = true; return nil })

	feed(win, be, backend.RuneEvent('x'), backend.KeyEvent(backend.KeyUp))

	if called {
		t.Error("keys should not be classified for a plain window")
	}
}

func TestUnfocusedWindowReadsNothing(t *testing.T) {
	s, be := newTestScreen(t)
	a := mustWindow(t, s.CreateWindow(3, 20, 0, 0, true, true))
	b := mustWindow(t, s.CreateWindow(3, 20, 4, 0, true, true))

	typeString(a, be, "x")

	if text := a.Text()[0]; text != "" {
		t.Errorf("unfocused window should not read input, got %q", text)
	}

	b.Update()
	if text := b.Text()[0]; text != "x" {
		t.Errorf("queued input should reach the focused window, got %q", text)
	}
}

func TestLineFeedInBorderedField(t *testing.T) {
	s, be := newTestScreen(t)
	win := mustWindow(t, s.CreateWindow(4, 10, 0, 0, true, true))

	typeString(win, be, "ab\ncd")

	text := win.Text()
	if text[0] != "ab" || text[1] != "cd" {
		t.Errorf("expected [ab cd], got %q", text)
	}
	if y, x := win.Cursor(); y != 2 || x != 3 {
		t.Errorf("expected cursor (2,3), got (%d,%d)", y, x)
	}
	if got := screenRunes(be, 1, 9, 1); got != "│" {
		t.Errorf("line feed should leave the right border intact, got %q", got)
	}

	// a line feed on the last row holds the row
	typeString(win, be, "\n")
	if y, _ := win.Cursor(); y != 2 {
		t.Errorf("expected cursor to stay on row 2, got %d", y)
	}
}

func TestWrapAtRightEdge(t *testing.T) {
	s, be := newTestScreen(t)
	win := mustWindow(t, s.CreateWindow(4, 5, 0, 0, true, true))

	typeString(win, be, "abcd")

	text := win.Text()
	if text[0] != "abc" || text[1] != "d" {
		t.Errorf("expected [abc d], got %q", text)
	}
	if y, x := win.Cursor(); y != 2 || x != 2 {
		t.Errorf("expected cursor (2,2), got (%d,%d)", y, x)
	}
}

func TestWrapAtLastRow(t *testing.T) {
	s, be := newTestScreen(t)
	win := mustWindow(t, s.CreateWindow(3, 5, 0, 0, true, true))

	typeString(win, be, "abcd")

	if text := win.Text()[0]; text != "abd" {
		t.Errorf("expected abd, got %q", text)
	}
	if y, x := win.Cursor(); y != 1 || x != 3 {
		t.Errorf("expected cursor held at (1,3), got (%d,%d)", y, x)
	}
	if got := screenRunes(be, 1, 1, 4); got != "abd│" {
		t.Errorf("expected abd inside the border, got %q", got)
	}
}

func TestBackspaceWrapsToPreviousRow(t *testing.T) {
	s, be := newTestScreen(t)
	win := mustWindow(t, s.CreateWindow(4, 5, 0, 0, true, true))

	typeString(win, be, "abcd")
	feed(win, be,
		backend.KeyEvent(backend.KeyBackspace),
		backend.KeyEvent(backend.KeyBackspace))

	if y, x := win.Cursor(); y != 1 || x != 3 {
		t.Errorf("expected cursor (1,3), got (%d,%d)", y, x)
	}
	if got := screenRunes(be, 2, 1, 1); got != " " {
		t.Errorf("expected d erased, got %q", got)
	}
	if got := screenRunes(be, 1, 3, 1); got != " " {
		t.Errorf("expected c erased, got %q", got)
	}
}

func TestBackspaceAtOriginIsHarmless(t *testing.T) {
	s, be := newTestScreen(t)
	win := mustWindow(t, s.CreateWindow(3, 10, 0, 0, true, true))

	feed(win, be, backend.KeyEvent(backend.KeyBackspace))

	if y, x := win.Cursor(); y != 1 || x != 1 {
		t.Errorf("expected cursor (1,1), got (%d,%d)", y, x)
	}
	if got := screenRunes(be, 1, 0, 1); got != "│" {
		t.Errorf("backspace should not erase the border, got %q", got)
	}
}

func TestUnborderedFieldEditing(t *testing.T) {
	s, be := newTestScreen(t)
	win := mustWindow(t, s.CreateWindow(2, 4, 0, 0, false, true))

	typeString(win, be, "abcde")

	text := win.Text()
	if text[0] != "abcd" || text[1] != "e" {
		t.Errorf("expected [abcd e], got %q", text)
	}
	if y, x := win.Cursor(); y != 1 || x != 1 {
		t.Errorf("expected cursor (1,1), got (%d,%d)", y, x)
	}

	feed(win, be,
		backend.KeyEvent(backend.KeyBackspace),
		backend.KeyEvent(backend.KeyBackspace))

	if y, x := win.Cursor(); y != 0 || x != 3 {
		t.Errorf("expected cursor (0,3), got (%d,%d)", y, x)
	}
	if got := screenRunes(be, 0, 0, 4); got != "abc " {
		t.Errorf("expected abc, got %q", got)
	}
}

func TestMouseEventDelivered(t *testing.T) {
	s, be := newTestScreen(t)
	target := mustWindow(t, s.CreateWindow(5, 20, 10, 10, true, true))
	win := mustWindow(t, s.CreateWindow(5, 20, 0, 0, true, true))

	var got []mouse.Event
	win.On(EventMouse, func(ev Event) error {
		got = append(got, ev.Mouse)
		if !ev.Mouse.Buttons.Has(mouse.Button1Clicked) {
			return nil
		}
		for _, w := range s.Windows() {
			if w.Enclose(ev.Mouse.Y, ev.Mouse.X) {
				s.SetFocus(w)
			}
		}
		return nil
	})

	feed(win, be,
		backend.MouseEvent(12, 11, backend.MouseLeft),
		backend.MouseEvent(12, 11, backend.MouseNone))

	if len(got) != 2 {
		t.Fatalf("expected press and release, got %d events", len(got))
	}
	if got[0].Y != 11 || got[0].X != 12 {
		t.Errorf("expected event at (11,12), got (%d,%d)", got[0].Y, got[0].X)
	}
	if s.Focused() != target {
		t.Error("click inside target should focus it")
	}
}

func TestMotionIsNotDelivered(t *testing.T) {
	s, be := newTestScreen(t)
	win := mustWindow(t, s.CreateWindow(5, 20, 0, 0, true, true))

	called := false
	win.On(EventMouse, func(Event) error { called = true; return nil })
	feed(win, be, backend.MouseEvent(3, 3, backend.MouseNone))

	if called {
		t.Error("motion without buttons should not reach the handler")
	}
}

func TestResizeNotDeliveredWithoutPending(t *testing.T) {
	s, be := newTestScreen(t)
	win := mustWindow(t, s.CreateWindow(5, 20, 0, 0, true, true))

	called := false
	win.On(EventResize, func(Event) error { called = true; return nil })

	be.Resize(100, 40)
	win.Update()

	if called {
		t.Error("resize should need a pending confirmation")
	}
	if h, w := s.Terminal().Size(); h != 40 || w != 100 {
		t.Errorf("terminal should record the new size, got %dx%d", h, w)
	}

	win.wasResized = true
	win.resizeDim = Size{H: 40, W: 100}
	var got Size
	win.On(EventResize, func(ev Event) error { got = ev.Size; return nil })
	be.Resize(100, 40)
	win.Update()

	if got != (Size{H: 40, W: 100}) {
		t.Errorf("expected pending size delivered, got %+v", got)
	}
}

func TestUpdateFuncOverride(t *testing.T) {
	s, be := newTestScreen(t)
	win := mustWindow(t, s.CreateWindow(3, 20, 0, 0, true, true))

	calls := 0
	win.SetUpdateFunc(func(w *Window) { calls++ })
	typeString(win, be, "a")

	if calls != 1 {
		t.Errorf("expected custom update once, got %d", calls)
	}
	if text := win.Text()[0]; text != "" {
		t.Errorf("custom update should replace input handling, got %q", text)
	}

	win.SetUpdateFunc(nil)
	win.Update()
	if text := win.Text()[0]; text != "a" {
		t.Errorf("default update should be restored, got %q", text)
	}

	win.ClearUpdateFunc()
	typeString(win, be, "b")
	if text := win.Text()[0]; text != "a" {
		t.Errorf("cleared update should read nothing, got %q", text)
	}
}

func TestHandlerDestroysWindow(t *testing.T) {
	s, be := newTestScreen(t)
	win := mustWindow(t, s.CreateWindow(3, 20, 0, 0, true, true))
	win.On(EventKey, func(ev Event) error {
		ev.Window.Destroy()
		return nil
	})

	feed(win, be, backend.KeyEvent(backend.KeyF10))

	if !win.Destroyed() {
		t.Fatal("handler should have destroyed the window")
	}
	if len(s.Windows()) != 0 {
		t.Error("destroyed window should leave the registry")
	}
	if got := screenRunes(be, 0, 0, 3); got != "   " {
		t.Errorf("destroyed window should be cleared, got %q", got)
	}
}

func TestCaretFormKeepsBorder(t *testing.T) {
	s, be := newTestScreen(t)
	win := mustWindow(t, s.CreateWindow(4, 8, 0, 0, true, true))

	feed(win, be, backend.KeyEvent(backend.KeyEscape))
	if y, x := win.Cursor(); y != 1 || x != 3 {
		t.Fatalf("expected cursor (1,3) after escape, got (%d,%d)", y, x)
	}

	typeString(win, be, "abcdef")

	if got := screenRunes(be, 1, 0, 8); got != "│^[abcd│" {
		t.Errorf("expected text inside the border, got %q", got)
	}
	if got := screenRunes(be, 2, 0, 4); got != "│ef " {
		t.Errorf("expected ef on the next row, got %q", got)
	}
	if y, x := win.Cursor(); y != 2 || x != 3 {
		t.Errorf("expected cursor (2,3), got (%d,%d)", y, x)
	}
}

func TestCaretFormAtRightEdgeRestoresBorder(t *testing.T) {
	s, be := newTestScreen(t)
	win := mustWindow(t, s.CreateWindow(4, 5, 0, 0, true, true))

	typeString(win, be, "ab")
	feed(win, be, backend.KeyEvent(backend.KeyEscape))

	if got := screenRunes(be, 1, 0, 5); got != "│ab^│" {
		t.Errorf("expected border restored, got %q", got)
	}
	if y, x := win.Cursor(); y != 2 || x != 1 {
		t.Errorf("expected cursor (2,1), got (%d,%d)", y, x)
	}
}
