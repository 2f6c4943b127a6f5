package script

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/termwin/internal/renderer/backend"
	"github.com/dshills/termwin/internal/ui"
)

func newTestEngine(t *testing.T) (*Engine, *ui.Screen, *backend.NullBackend) {
	t.Helper()
	be := backend.NewNullBackend(80, 24)
	opts := ui.DefaultOptions()
	opts.PollInterval = 0
	s, err := ui.NewScreen(be, opts)
	if err != nil {
		t.Fatalf("NewScreen failed: %v", err)
	}
	e := New(s, nil)
	t.Cleanup(func() {
		e.Close()
		s.End()
	})
	return e, s, be
}

func mustWindow(t *testing.T, s *ui.Screen, h, w, y, x int) *ui.Window {
	t.Helper()
	win, err := s.NewWindow(h, w, y, x, true, true)
	if err != nil {
		t.Fatalf("NewWindow failed: %v", err)
	}
	return win
}

func feed(win *ui.Window, be *backend.NullBackend, events ...backend.Event) {
	for _, ev := range events {
		be.PostEvent(ev)
		win.Update()
	}
}

func TestSandboxedLibraries(t *testing.T) {
	e, _, _ := newTestEngine(t)

	for _, name := range []string{"io", "os", "debug", "package", "dofile", "loadfile", "load", "require"} {
		if v := e.L.GetGlobal(name); v != lua.LNil {
			t.Errorf("expected %s to be unavailable, got %s", name, v.Type())
		}
	}
	for _, name := range []string{"string", "table", "math", "pairs", "termwin"} {
		if v := e.L.GetGlobal(name); v == lua.LNil {
			t.Errorf("expected %s to be available", name)
		}
	}
}

func TestLoadStringError(t *testing.T) {
	e, _, _ := newTestEngine(t)

	if err := e.LoadString("this is not lua"); err == nil {
		t.Error("expected syntax error")
	}
	if err := e.LoadString(`error("boom")`); err == nil {
		t.Error("expected runtime error")
	}
}

func TestLoadFile(t *testing.T) {
	e, _, _ := newTestEngine(t)
	path := filepath.Join(t.TempDir(), "handlers.lua")
	if err := os.WriteFile(path, []byte("loaded = termwin.KEY_F4"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := e.Load(path); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if v, ok := e.L.GetGlobal("loaded").(lua.LNumber); !ok || v == 0 {
		t.Errorf("expected KEY_F4 constant, got %v", e.L.GetGlobal("loaded"))
	}

	if err := e.Load(filepath.Join(t.TempDir(), "missing.lua")); err == nil {
		t.Error("expected error for a missing file")
	}
}

func TestBindWithoutHandlers(t *testing.T) {
	e, s, _ := newTestEngine(t)
	win := mustWindow(t, s, 3, 10, 0, 0)

	if err := e.LoadString("x = 1"); err != nil {
		t.Fatal(err)
	}
	if err := e.Bind(win); !errors.Is(err, ErrNoHandlers) {
		t.Errorf("expected ErrNoHandlers, got %v", err)
	}
}

func TestKeyHandler(t *testing.T) {
	e, s, be := newTestEngine(t)
	win := mustWindow(t, s, 6, 20, 0, 0)
	win.MoveCursor(3, 3)

	err := e.LoadString(`
		function on_key(id, code)
			if code == termwin.KEY_UP then termwin.move_cursor(id, -1, 0) end
			if code == termwin.KEY_RIGHT then termwin.move_cursor(id, 0, 2) end
			if code == termwin.KEY_F4 then termwin.exit() end
		end
	`)
	if err != nil {
		t.Fatal(err)
	}
	if err := e.Bind(win); err != nil {
		t.Fatalf("Bind failed: %v", err)
	}

	feed(win, be, backend.KeyEvent(backend.KeyUp), backend.KeyEvent(backend.KeyRight))
	if y, x := win.Cursor(); y != 2 || x != 5 {
		t.Errorf("expected cursor (2,5), got (%d,%d)", y, x)
	}

	feed(win, be, backend.KeyEvent(backend.KeyF4))
	if !s.ShouldExit() {
		t.Error("F4 should request exit")
	}
}

func TestTermHandlerSeesText(t *testing.T) {
	e, s, be := newTestEngine(t)
	win := mustWindow(t, s, 3, 20, 0, 0)

	err := e.LoadString(`
		count = 0
		function on_term(id, code)
			count = count + 1
			last = termwin.text(id)[1]
		end
	`)
	if err != nil {
		t.Fatal(err)
	}
	if err := e.Bind(win); err != nil {
		t.Fatal(err)
	}

	feed(win, be, backend.RuneEvent('o'), backend.RuneEvent('k'))

	if v := e.L.GetGlobal("count"); v != lua.LNumber(2) {
		t.Errorf("expected 2 calls, got %v", v)
	}
	if v := e.L.GetGlobal("last"); v != lua.LString("ok") {
		t.Errorf("expected handler to see edited text, got %v", v)
	}
}

func TestMouseHandlerFocusesWindow(t *testing.T) {
	e, s, be := newTestEngine(t)
	target := mustWindow(t, s, 5, 20, 10, 10)
	win := mustWindow(t, s, 5, 20, 0, 0)

	err := e.LoadString(`
		function on_mouse(id, ev)
			if termwin.has(ev.buttons, termwin.BUTTON1_CLICKED) then
				picked = termwin.focus_at(ev.y, ev.x)
			end
		end
	`)
	if err != nil {
		t.Fatal(err)
	}
	if err := e.Bind(win); err != nil {
		t.Fatal(err)
	}

	feed(win, be,
		backend.MouseEvent(15, 12, backend.MouseLeft),
		backend.MouseEvent(15, 12, backend.MouseNone))

	if s.Focused() != target {
		t.Error("click should focus the enclosing window")
	}
	if v := e.L.GetGlobal("picked"); v != lua.LString(target.ID()) {
		t.Errorf("expected focus_at to return %s, got %v", target.ID(), v)
	}
}

func TestHandlerErrorIsReturned(t *testing.T) {
	e, s, _ := newTestEngine(t)
	win := mustWindow(t, s, 3, 20, 0, 0)

	err := e.LoadString(`
		function on_key(id, code)
			termwin.print("no-such-window", 0, 0, "x")
		end
	`)
	if err != nil {
		t.Fatal(err)
	}
	fn := e.L.GetGlobal("on_key").(*lua.LFunction)
	h := e.handler("on_key", fn)

	if err := h(ui.Event{Kind: ui.EventKey, Window: win}); err == nil {
		t.Error("expected an error for an unknown window")
	}
}

func TestFocusNextFromLua(t *testing.T) {
	e, s, _ := newTestEngine(t)
	a := mustWindow(t, s, 3, 10, 0, 0)
	b := mustWindow(t, s, 3, 10, 4, 0)

	src := `ok = termwin.focus_next("` + b.ID() + `")
		current = termwin.focused()`
	if err := e.LoadString(src); err != nil {
		t.Fatal(err)
	}

	if e.L.GetGlobal("ok") != lua.LTrue {
		t.Error("expected focus_next to succeed")
	}
	if e.L.GetGlobal("current") != lua.LString(a.ID()) {
		t.Error("expected focus to wrap to a")
	}
}

func TestPrintAndCursorFromLua(t *testing.T) {
	e, s, be := newTestEngine(t)
	win, err := s.NewWindow(3, 10, 0, 0, true, false)
	if err != nil {
		t.Fatal(err)
	}

	src := `termwin.print("` + win.ID() + `", 0, 0, "hi")
		termwin.set_cursor("` + win.ID() + `", 1, 4)
		cy, cx = termwin.cursor("` + win.ID() + `")`
	if err := e.LoadString(src); err != nil {
		t.Fatal(err)
	}
	win.Update()

	if got := string([]rune(be.Line(1))[1:3]); got != "hi" {
		t.Errorf("expected hi, got %q", got)
	}
	if e.L.GetGlobal("cy") != lua.LNumber(1) || e.L.GetGlobal("cx") != lua.LNumber(4) {
		t.Errorf("expected cursor (1,4), got (%v,%v)", e.L.GetGlobal("cy"), e.L.GetGlobal("cx"))
	}
	if err := e.LoadString(`termwin.reset_text("` + win.ID() + `")`); err == nil {
		t.Error("reset_text on a plain window should fail")
	}
}

func TestClosedEngine(t *testing.T) {
	e, s, _ := newTestEngine(t)
	win := mustWindow(t, s, 3, 10, 0, 0)

	if err := e.LoadString("function on_key() end"); err != nil {
		t.Fatal(err)
	}
	if err := e.Bind(win); err != nil {
		t.Fatal(err)
	}
	e.Close()
	e.Close()

	if err := e.LoadString("x = 1"); !errors.Is(err, ErrClosed) {
		t.Errorf("expected ErrClosed, got %v", err)
	}
	if err := e.Bind(win); !errors.Is(err, ErrClosed) {
		t.Errorf("expected ErrClosed from Bind, got %v", err)
	}
}
