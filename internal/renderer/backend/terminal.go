package backend

import (
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/termwin/internal/renderer/core"
)

// eventQueueSize bounds the events buffered between the tcell poller and
// the non-blocking PollEvent.
const eventQueueSize = 256

// Terminal implements Backend using tcell for terminal output.
type Terminal struct {
	screen tcell.Screen
	events chan Event
	quit   chan struct{}
	mu     sync.Mutex
}

// NewTerminal creates a new terminal backend.
func NewTerminal() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return &Terminal{screen: screen}, nil
}

func (t *Terminal) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.screen.Init(); err != nil {
		return err
	}

	t.events = make(chan Event, eventQueueSize)
	t.quit = make(chan struct{})
	go t.pump()

	return nil
}

// pump moves tcell's blocking event stream into the buffered queue read by
// PollEvent. It exits when the screen is finalized.
func (t *Terminal) pump() {
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return
		}
		e := convertEvent(ev)
		if e.Type == EventNone {
			continue
		}
		select {
		case t.events <- e:
		case <-t.quit:
			return
		}
	}
}

func (t *Terminal) Shutdown() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.quit != nil {
		close(t.quit)
		t.quit = nil
	}
	t.screen.Fini()
}

func (t *Terminal) Size() (int, int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.screen.Size()
}

func (t *Terminal) SetCell(x, y int, cell core.Cell) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.SetContent(x, y, cell.Rune, nil, convertStyle(cell.Style))
}

func (t *Terminal) GetCell(x, y int) core.Cell {
	t.mu.Lock()
	defer t.mu.Unlock()

	mainc, _, style, _ := t.screen.GetContent(x, y) //nolint:staticcheck // GetContent is the correct API
	return core.NewStyledCell(mainc, convertTcellStyle(style))
}

func (t *Terminal) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.Clear()
}

func (t *Terminal) Show() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.Show()
}

func (t *Terminal) ShowCursor(x, y int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.ShowCursor(x, y)
}

func (t *Terminal) HideCursor() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.HideCursor()
}

func (t *Terminal) SetCursorStyle(style CursorStyle) {
	t.mu.Lock()
	defer t.mu.Unlock()

	var tcellStyle tcell.CursorStyle
	switch style {
	case CursorBlock:
		tcellStyle = tcell.CursorStyleSteadyBlock
	case CursorUnderline:
		tcellStyle = tcell.CursorStyleSteadyUnderline
	case CursorBar:
		tcellStyle = tcell.CursorStyleSteadyBar
	case CursorHidden:
		t.screen.HideCursor()
		return
	}
	t.screen.SetCursorStyle(tcellStyle)
}

func (t *Terminal) PollEvent() Event {
	select {
	case ev := <-t.events:
		return ev
	default:
		return Event{Type: EventNone}
	}
}

func (t *Terminal) PostEvent(event Event) {
	select {
	case t.events <- event:
	default:
		// queue full; synthetic events are best-effort
	}
}

func (t *Terminal) EnableMouse() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.EnableMouse()
}

func (t *Terminal) DisableMouse() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.DisableMouse()
}

func (t *Terminal) Beep() {
	t.mu.Lock()
	defer t.mu.Unlock()

	_ = t.screen.Beep() // best-effort; terminal may not support beep
}

// convertStyle converts our Style to tcell.Style.
func convertStyle(s core.Style) tcell.Style {
	style := tcell.StyleDefault

	if s.Attributes.Has(core.AttrBold) {
		style = style.Bold(true)
	}
	if s.Attributes.Has(core.AttrDim) {
		style = style.Dim(true)
	}
	if s.Attributes.Has(core.AttrUnderline) {
		style = style.Underline(true)
	}
	if s.Attributes.Has(core.AttrReverse) {
		style = style.Reverse(true)
	}

	return style
}

// convertTcellStyle converts tcell.Style back to our Style.
func convertTcellStyle(ts tcell.Style) core.Style {
	_, _, attrs := ts.Decompose()

	var s core.Style
	if attrs&tcell.AttrBold != 0 {
		s.Attributes |= core.AttrBold
	}
	if attrs&tcell.AttrDim != 0 {
		s.Attributes |= core.AttrDim
	}
	if attrs&tcell.AttrUnderline != 0 {
		s.Attributes |= core.AttrUnderline
	}
	if attrs&tcell.AttrReverse != 0 {
		s.Attributes |= core.AttrReverse
	}
	return s
}

// convertEvent converts tcell events to our Event type.
func convertEvent(ev tcell.Event) Event {
	switch e := ev.(type) {
	case *tcell.EventKey:
		k, r := convertKey(e.Key(), e.Rune())
		return Event{
			Type: EventKey,
			Key:  k,
			Rune: r,
			Mod:  convertMod(e.Modifiers()),
		}

	case *tcell.EventMouse:
		x, y := e.Position()
		return Event{
			Type:        EventMouse,
			MouseX:      x,
			MouseY:      y,
			MouseButton: convertMouseButton(e.Buttons()),
			Mod:         convertMod(e.Modifiers()),
		}

	case *tcell.EventResize:
		w, h := e.Size()
		return Event{
			Type:   EventResize,
			Width:  w,
			Height: h,
		}

	default:
		return Event{Type: EventNone}
	}
}

// convertKey converts a tcell key to our Key type. Control keys without a
// dedicated Key become KeyRune carrying the ASCII control code.
func convertKey(k tcell.Key, r rune) (Key, rune) {
	switch k {
	case tcell.KeyRune:
		return KeyRune, r
	case tcell.KeyEscape:
		return KeyEscape, 0
	case tcell.KeyEnter:
		return KeyEnter, 0
	case tcell.KeyTab:
		return KeyTab, 0
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return KeyBackspace, 0
	case tcell.KeyDelete:
		return KeyDelete, 0
	case tcell.KeyInsert:
		return KeyInsert, 0
	case tcell.KeyHome:
		return KeyHome, 0
	case tcell.KeyEnd:
		return KeyEnd, 0
	case tcell.KeyPgUp:
		return KeyPageUp, 0
	case tcell.KeyPgDn:
		return KeyPageDown, 0
	case tcell.KeyUp:
		return KeyUp, 0
	case tcell.KeyDown:
		return KeyDown, 0
	case tcell.KeyLeft:
		return KeyLeft, 0
	case tcell.KeyRight:
		return KeyRight, 0
	}

	if k >= tcell.KeyF1 && k <= tcell.KeyF12 {
		return KeyF1 + Key(k-tcell.KeyF1), 0
	}
	if k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
		return KeyRune, rune(k-tcell.KeyCtrlA) + 1
	}
	return KeyNone, 0
}

// convertMod converts tcell modifier mask to our ModMask.
func convertMod(m tcell.ModMask) ModMask {
	var result ModMask
	if m&tcell.ModShift != 0 {
		result |= ModShift
	}
	if m&tcell.ModCtrl != 0 {
		result |= ModCtrl
	}
	if m&tcell.ModAlt != 0 {
		result |= ModAlt
	}
	if m&tcell.ModMeta != 0 {
		result |= ModMeta
	}
	return result
}

// convertMouseButton converts tcell button mask to our MouseButton.
func convertMouseButton(b tcell.ButtonMask) MouseButton {
	switch {
	case b&tcell.Button1 != 0:
		return MouseLeft
	case b&tcell.Button2 != 0:
		return MouseMiddle
	case b&tcell.Button3 != 0:
		return MouseRight
	case b&tcell.WheelUp != 0:
		return MouseWheelUp
	case b&tcell.WheelDown != 0:
		return MouseWheelDown
	default:
		return MouseNone
	}
}
