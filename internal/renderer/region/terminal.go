package region

import (
	"github.com/dshills/termwin/internal/input/key"
	"github.com/dshills/termwin/internal/input/mouse"
	"github.com/dshills/termwin/internal/renderer/backend"
)

// Cursor visibility levels accepted by SetCursor.
const (
	CursorInvisible = 0
	CursorNormal    = 1
	CursorVisible   = 2
)

// Terminal manages a backend on behalf of the regions drawn on it.
type Terminal struct {
	backend backend.Backend
	decoder *mouse.Decoder

	stdscr *Region

	cursor int
	mouse  bool

	pending    mouse.Event
	hasPending bool

	width, height int
}

// NewTerminal creates a terminal manager for the given backend. The
// backend is not initialized until Init is called.
func NewTerminal(be backend.Backend) *Terminal {
	return &Terminal{
		backend: be,
		decoder: mouse.NewDecoder(mouse.DefaultConfig()),
	}
}

// Init initializes the backend, hides the cursor and creates the
// full-screen root region.
func (t *Terminal) Init() error {
	if err := t.backend.Init(); err != nil {
		return err
	}
	t.width, t.height = t.backend.Size()
	t.cursor = CursorInvisible
	t.backend.HideCursor()
	t.stdscr = newRoot(t, t.height, t.width, 0, 0)
	return nil
}

// Shutdown releases the backend.
func (t *Terminal) Shutdown() {
	t.backend.Shutdown()
}

// Backend returns the underlying backend.
func (t *Terminal) Backend() backend.Backend {
	return t.backend
}

// Decoder returns the mouse decoder, so callers can adjust its clock or
// click settings.
func (t *Terminal) Decoder() *mouse.Decoder {
	return t.decoder
}

// Stdscr returns the full-screen root region created by Init.
func (t *Terminal) Stdscr() *Region {
	return t.stdscr
}

// Size returns the terminal size as last reported by the backend.
func (t *Terminal) Size() (height, width int) {
	return t.height, t.width
}

// SetCursor sets the cursor visibility, clamped to [CursorInvisible,
// CursorVisible], and returns the previous setting. The new setting takes
// effect at the next Refresh.
func (t *Terminal) SetCursor(visibility int) int {
	if visibility < CursorInvisible {
		visibility = CursorInvisible
	} else if visibility > CursorVisible {
		visibility = CursorVisible
	}
	prev := t.cursor
	t.cursor = visibility
	switch visibility {
	case CursorNormal:
		t.backend.SetCursorStyle(backend.CursorUnderline)
	case CursorVisible:
		t.backend.SetCursorStyle(backend.CursorBlock)
	default:
		t.backend.HideCursor()
	}
	return prev
}

// Cursor returns the current cursor visibility.
func (t *Terminal) Cursor() int {
	return t.cursor
}

// SetMouse enables or disables mouse reporting.
func (t *Terminal) SetMouse(enabled bool) {
	if enabled == t.mouse {
		return
	}
	t.mouse = enabled
	if enabled {
		t.backend.EnableMouse()
	} else {
		t.backend.DisableMouse()
	}
}

// MouseEnabled reports whether mouse reporting is on.
func (t *Terminal) MouseEnabled() bool {
	return t.mouse
}

// Beep rings the terminal bell.
func (t *Terminal) Beep() {
	t.backend.Beep()
}

// ReadToken returns the next input token without blocking. It returns
// key.None when no input is pending or when the pending event carries
// nothing a caller can act on (pointer motion, non-ASCII runes).
func (t *Terminal) ReadToken() key.Code {
	ev := t.backend.PollEvent()
	switch ev.Type {
	case backend.EventKey:
		return convertKey(ev)

	case backend.EventMouse:
		mev, ok := t.decoder.Decode(ev.MouseY, ev.MouseX, convertButton(ev.MouseButton))
		if !ok {
			return key.None
		}
		t.pending = mev
		t.hasPending = true
		return key.Mouse

	case backend.EventResize:
		t.width, t.height = ev.Width, ev.Height
		return key.Resize
	}
	return key.None
}

// GetMouse returns the mouse event decoded by the last ReadToken call that
// returned key.Mouse. The event is consumed; a second call returns false.
func (t *Terminal) GetMouse() (mouse.Event, bool) {
	if !t.hasPending {
		return mouse.Event{}, false
	}
	ev := t.pending
	t.pending = mouse.Event{}
	t.hasPending = false
	return ev, true
}

func convertKey(ev backend.Event) key.Code {
	switch ev.Key {
	case backend.KeyRune:
		if ev.Rune >= 0 && ev.Rune <= 127 {
			return key.Code(ev.Rune)
		}
		return key.None
	case backend.KeyEnter:
		return key.LineFeed
	case backend.KeyTab:
		if ev.Mod.Has(backend.ModShift) {
			return key.BackTab
		}
		return key.Tab
	case backend.KeyEscape:
		return key.Escape
	case backend.KeyBackspace:
		return key.Backspace
	case backend.KeyDelete:
		return key.DeleteKey
	case backend.KeyInsert:
		return key.Insert
	case backend.KeyHome:
		return key.Home
	case backend.KeyEnd:
		return key.End
	case backend.KeyPageUp:
		return key.PageUp
	case backend.KeyPageDown:
		return key.PageDown
	case backend.KeyUp:
		return key.Up
	case backend.KeyDown:
		return key.Down
	case backend.KeyLeft:
		return key.Left
	case backend.KeyRight:
		return key.Right
	}
	if ev.Key >= backend.KeyF1 && ev.Key <= backend.KeyF12 {
		return key.F(int(ev.Key-backend.KeyF1) + 1 + functionKeyShift(ev.Mod))
	}
	return key.None
}

// functionKeyShift returns the offset a modifier adds to a function key
// number, following xterm's terminfo: Shift+F1 is F13, Ctrl+F1 is F25,
// Ctrl+Shift+F1 is F37 and Alt+F1 is F49.
func functionKeyShift(mod backend.ModMask) int {
	switch {
	case mod.Has(backend.ModAlt), mod.Has(backend.ModMeta):
		return 48
	case mod.Has(backend.ModCtrl) && mod.Has(backend.ModShift):
		return 36
	case mod.Has(backend.ModCtrl):
		return 24
	case mod.Has(backend.ModShift):
		return 12
	}
	return 0
}

func convertButton(b backend.MouseButton) mouse.Button {
	switch b {
	case backend.MouseLeft:
		return mouse.Button1
	case backend.MouseMiddle:
		return mouse.Button2
	case backend.MouseRight:
		return mouse.Button3
	case backend.MouseWheelUp:
		return mouse.Button4
	case backend.MouseWheelDown:
		return mouse.Button5
	}
	return mouse.ButtonNone
}
