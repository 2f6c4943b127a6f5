// Package backend provides the terminal capability surface consumed by the
// region layer: a cell grid, a cursor, and a non-blocking event source.
package backend

import "github.com/dshills/termwin/internal/renderer/core"

// CursorStyle defines how the cursor appears.
type CursorStyle int

const (
	CursorBlock CursorStyle = iota
	CursorUnderline
	CursorBar
	CursorHidden
)

// EventType identifies the type of terminal event.
type EventType int

const (
	EventNone EventType = iota
	EventKey
	EventMouse
	EventResize
)

// Event represents a terminal event.
type Event struct {
	Type EventType

	// Key event fields
	Key  Key
	Rune rune
	Mod  ModMask

	// Mouse event fields. MouseButton is MouseNone when every button is up.
	MouseX, MouseY int
	MouseButton    MouseButton

	// Resize event fields
	Width, Height int
}

// KeyEvent builds a key event for a special key.
func KeyEvent(k Key) Event {
	return Event{Type: EventKey, Key: k}
}

// RuneEvent builds a key event for a character.
func RuneEvent(r rune) Event {
	return Event{Type: EventKey, Key: KeyRune, Rune: r}
}

// MouseEvent builds a mouse event at the given screen cell.
func MouseEvent(x, y int, button MouseButton) Event {
	return Event{Type: EventMouse, MouseX: x, MouseY: y, MouseButton: button}
}

// Key represents a keyboard key.
type Key int

// Key constants for special keys. Control characters arrive as KeyRune
// with the control code in Rune.
const (
	KeyNone Key = iota
	KeyRune     // Regular character (use Rune field)
	KeyEscape
	KeyEnter
	KeyTab
	KeyBackspace
	KeyDelete
	KeyInsert
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
)

// ModMask represents modifier key state.
type ModMask int

const (
	ModNone  ModMask = 0
	ModShift ModMask = 1 << iota
	ModCtrl
	ModAlt
	ModMeta
)

// Has returns true if the mask contains the given modifier.
func (m ModMask) Has(mod ModMask) bool {
	return m&mod != 0
}

// MouseButton represents mouse button state.
type MouseButton int

const (
	MouseNone MouseButton = iota
	MouseLeft
	MouseMiddle
	MouseRight
	MouseWheelUp
	MouseWheelDown
)

// Backend defines the interface for terminal/display backends.
// Implementations handle actual drawing to the terminal or other display surfaces.
type Backend interface {
	// Init initializes the backend for use.
	// Must be called before any other methods.
	Init() error

	// Shutdown releases backend resources and restores terminal state.
	Shutdown()

	// Size returns the current terminal dimensions.
	Size() (width, height int)

	// SetCell sets a single cell at the given position.
	// Positions outside the terminal are silently ignored.
	SetCell(x, y int, cell core.Cell)

	// GetCell returns the cell at the given position.
	// Returns an empty cell for positions outside the terminal.
	GetCell(x, y int) core.Cell

	// Clear clears the entire screen with the default style.
	Clear()

	// Show synchronizes the internal buffer with the actual display.
	Show()

	// ShowCursor positions and displays the cursor.
	ShowCursor(x, y int)

	// HideCursor hides the cursor.
	HideCursor()

	// SetCursorStyle changes the cursor appearance.
	SetCursorStyle(style CursorStyle)

	// PollEvent returns the next pending event without blocking.
	// An event of type EventNone means no input is available.
	PollEvent() Event

	// PostEvent posts a synthetic event to the event queue.
	PostEvent(event Event)

	// EnableMouse enables mouse event reporting.
	EnableMouse()

	// DisableMouse disables mouse event reporting.
	DisableMouse()

	// Beep produces an audible or visual bell.
	Beep()
}

// NullBackend is an in-memory backend for testing.
type NullBackend struct {
	width, height int
	cells         [][]core.Cell
	cursorX       int
	cursorY       int
	cursorVisible bool
	cursorStyle   CursorStyle
	mouse         bool
	shows         int
	beeps         int
	events        chan Event
}

// NewNullBackend creates a null backend with the given dimensions.
func NewNullBackend(width, height int) *NullBackend {
	return &NullBackend{
		width:  width,
		height: height,
		events: make(chan Event, 256),
	}
}

func (b *NullBackend) Init() error {
	b.allocate()
	return nil
}

func (b *NullBackend) allocate() {
	b.cells = make([][]core.Cell, b.height)
	for i := range b.cells {
		b.cells[i] = make([]core.Cell, b.width)
		for j := range b.cells[i] {
			b.cells[i][j] = core.EmptyCell()
		}
	}
}

func (b *NullBackend) Shutdown() {}

func (b *NullBackend) Size() (int, int) {
	return b.width, b.height
}

func (b *NullBackend) SetCell(x, y int, cell core.Cell) {
	if x >= 0 && x < b.width && y >= 0 && y < b.height {
		b.cells[y][x] = cell
	}
}

func (b *NullBackend) GetCell(x, y int) core.Cell {
	if x >= 0 && x < b.width && y >= 0 && y < b.height {
		return b.cells[y][x]
	}
	return core.EmptyCell()
}

func (b *NullBackend) Clear() {
	empty := core.EmptyCell()
	for y := range b.cells {
		for x := range b.cells[y] {
			b.cells[y][x] = empty
		}
	}
}

func (b *NullBackend) Show() { b.shows++ }

func (b *NullBackend) ShowCursor(x, y int) {
	b.cursorX = x
	b.cursorY = y
	b.cursorVisible = true
}

func (b *NullBackend) HideCursor() {
	b.cursorVisible = false
}

func (b *NullBackend) SetCursorStyle(style CursorStyle) {
	b.cursorStyle = style
}

func (b *NullBackend) PollEvent() Event {
	select {
	case ev := <-b.events:
		return ev
	default:
		return Event{Type: EventNone}
	}
}

func (b *NullBackend) PostEvent(event Event) {
	select {
	case b.events <- event:
	default:
		// Event dropped if queue is full (non-blocking for testing)
	}
}

func (b *NullBackend) EnableMouse()  { b.mouse = true }
func (b *NullBackend) DisableMouse() { b.mouse = false }
func (b *NullBackend) Beep()         { b.beeps++ }

// CursorPosition returns the current cursor position for testing.
func (b *NullBackend) CursorPosition() (x, y int, visible bool) {
	return b.cursorX, b.cursorY, b.cursorVisible
}

// CursorStyleValue returns the current cursor style for testing.
func (b *NullBackend) CursorStyleValue() CursorStyle {
	return b.cursorStyle
}

// MouseEnabled reports whether mouse reporting is on.
func (b *NullBackend) MouseEnabled() bool {
	return b.mouse
}

// ShowCount returns how many times Show was called.
func (b *NullBackend) ShowCount() int {
	return b.shows
}

// Line returns row y as a string, for assertions in tests.
func (b *NullBackend) Line(y int) string {
	if y < 0 || y >= b.height {
		return ""
	}
	runes := make([]rune, b.width)
	for x, c := range b.cells[y] {
		runes[x] = c.Rune
	}
	return string(runes)
}

// Resize simulates a terminal resize and queues the matching event.
func (b *NullBackend) Resize(width, height int) {
	b.width = width
	b.height = height
	b.allocate()
	b.PostEvent(Event{Type: EventResize, Width: width, Height: height})
}
