package ui

import (
	"slices"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/dshills/termwin/internal/renderer/region"
	"github.com/dshills/termwin/internal/textbuf"
)

// Window is a rectangular screen region with its own event table, display
// cursor and, for text fields, an editable field buffer.
//
// The parent link and the child list are memberships only. Whoever created
// a window owns it and must Destroy it; destroying a parent does not
// destroy its children.
type Window struct {
	id     string
	screen *Screen
	region *region.Region
	logger *log.Logger

	parent   *Window
	children []*Window

	// h, w are the interior dimensions; y, x the requested origin.
	h, w int
	y, x int

	// display cursor, independent of the field buffer's logical cursor
	cy, cx int

	bordered   bool
	textField  bool
	dirty      bool
	focus      bool
	wasResized bool
	destroyed  bool

	field     *textbuf.FieldBuffer
	resizeDim Size

	updateFn func(*Window)
	events   EventTable
}

// NewWindow creates a top-level window of h rows and w columns at screen
// cell (y, x).
func (s *Screen) NewWindow(h, w, y, x int, bordered, textField bool) (*Window, error) {
	return s.newWindow(nil, h, w, y, x, bordered, textField)
}

// NewChildWindow creates a window at (y, x) relative to parent, sharing the
// parent's cells.
func (s *Screen) NewChildWindow(parent *Window, h, w, y, x int, bordered, textField bool) (*Window, error) {
	if parent == nil || parent.destroyed {
		return nil, newWindowError("derive", h, w, y, x, ErrInvalidParent)
	}
	return s.newWindow(parent, h, w, y, x, bordered, textField)
}

// CreateWindow is NewWindow for callers that treat failure as "no window":
// it logs the error and returns nil.
func (s *Screen) CreateWindow(h, w, y, x int, bordered, textField bool) *Window {
	win, err := s.NewWindow(h, w, y, x, bordered, textField)
	if err != nil {
		s.logger.Warn("window not created", "err", err)
		return nil
	}
	return win
}

// CreateChildWindow is NewChildWindow returning nil on failure.
func (s *Screen) CreateChildWindow(parent *Window, h, w, y, x int, bordered, textField bool) *Window {
	win, err := s.NewChildWindow(parent, h, w, y, x, bordered, textField)
	if err != nil {
		s.logger.Warn("child window not created", "err", err)
		return nil
	}
	return win
}

func (s *Screen) newWindow(parent *Window, h, w, y, x int, bordered, textField bool) (*Window, error) {
	op := "create"
	if parent != nil {
		op = "derive"
	}
	if bordered && (h < 3 || w < 3) {
		return nil, newWindowError(op, h, w, y, x, ErrTooSmall)
	}

	var (
		reg *region.Region
		err error
	)
	if parent != nil {
		reg, err = region.Derive(parent.region, h, w, y, x)
	} else {
		reg, err = s.term.NewRegion(h, w, y, x)
	}
	if err != nil {
		return nil, newWindowError(op, h, w, y, x, err)
	}

	win := &Window{
		id:        uuid.New().String(),
		screen:    s,
		region:    reg,
		parent:    parent,
		h:         h,
		w:         w,
		y:         y,
		x:         x,
		bordered:  bordered,
		textField: textField,
		updateFn:  (*Window).HandleEvent,
	}
	win.logger = s.logger.With("window", win.id)

	if bordered {
		win.h -= 2
		win.w -= 2
	}
	if textField {
		win.field = textbuf.NewFieldBuffer(win.h, win.w)
	}

	win.Clear()
	if bordered {
		win.Box()
	}

	if parent != nil {
		parent.addChild(win)
	}
	s.AddWindow(win)

	win.logger.Debug("window created",
		"size", Size{H: h, W: w}, "origin", [2]int{y, x},
		"bordered", bordered, "textfield", textField)
	return win, nil
}

// Destroy clears the window from the terminal, leaves its parent's child
// list and the screen registry, and releases its region. It is safe to
// call on a nil or already destroyed window.
func (w *Window) Destroy() {
	if w == nil || w.destroyed {
		return
	}
	w.region.Clear()
	w.region.Refresh()

	w.field = nil
	if w.parent != nil {
		w.parent.removeChild(w)
	}
	w.screen.RemoveWindow(w)
	w.region.Delete()
	w.destroyed = true

	w.logger.Debug("window destroyed")
}

func (w *Window) addChild(child *Window) {
	w.children = append(w.children, child)
}

func (w *Window) removeChild(child *Window) {
	w.children = slices.DeleteFunc(w.children, func(c *Window) bool { return c == child })
}

// ID returns the window's unique identifier.
func (w *Window) ID() string {
	return w.id
}

// Screen returns the screen the window is registered with.
func (w *Window) Screen() *Screen {
	return w.screen
}

// Parent returns the parent window, or nil for a top-level window.
func (w *Window) Parent() *Window {
	return w.parent
}

// Children returns a snapshot of the child windows.
func (w *Window) Children() []*Window {
	return slices.Clone(w.children)
}

// Size returns the interior height and width.
func (w *Window) Size() (int, int) {
	return w.h, w.w
}

// Origin returns the window's origin, relative to its parent for child
// windows.
func (w *Window) Origin() (y, x int) {
	return w.y, w.x
}

// IsBordered reports whether the window has a border.
func (w *Window) IsBordered() bool {
	return w.bordered
}

// IsTextField reports whether the window is an interactive text field.
func (w *Window) IsTextField() bool {
	return w.textField
}

// Destroyed reports whether Destroy has been called.
func (w *Window) Destroyed() bool {
	return w.destroyed
}

// Dirty reports whether the window is waiting to be redrawn.
func (w *Window) Dirty() bool {
	return w.dirty
}

// MarkDirty requests a redraw at the next Update.
func (w *Window) MarkDirty() {
	w.dirty = true
}

// Focused reports whether the window holds input focus.
func (w *Window) Focused() bool {
	return w.focus
}

// SetFocus sets the focus flag and marks the window dirty. A bordered
// window redraws its border so the focus change is visible. Screen.SetFocus
// is the usual way to move focus; this only updates the window itself.
func (w *Window) SetFocus(focus bool) {
	w.focus = focus
	if w.bordered {
		w.Box()
	}
	w.dirty = true
}

// Field returns the window's field buffer, or nil for plain windows.
func (w *Window) Field() *textbuf.FieldBuffer {
	return w.field
}

// Text returns the rows of a text field's buffer.
func (w *Window) Text() []string {
	if w.field == nil {
		return nil
	}
	return w.field.Lines()
}

// ResetText empties a text field's buffer, blanks the window and homes the
// display cursor.
func (w *Window) ResetText() error {
	if w.field == nil {
		return ErrNotTextField
	}
	w.field.Reset()
	w.Clear()
	w.Box()
	return nil
}

// On registers h for events of the given kind.
func (w *Window) On(kind EventKind, h HandlerFunc) {
	w.events.On(kind, h)
}

// Off removes the handler for kind.
func (w *Window) Off(kind EventKind) {
	w.events.Off(kind)
}

// SetUpdateFunc replaces the routine Update runs while the window has
// focus. Passing nil restores the default, HandleEvent.
func (w *Window) SetUpdateFunc(fn func(*Window)) {
	if fn == nil {
		fn = (*Window).HandleEvent
	}
	w.updateFn = fn
}

// ClearUpdateFunc removes the update routine; the focused window then
// reads no input at all.
func (w *Window) ClearUpdateFunc() {
	w.updateFn = nil
}

// Enclose reports whether screen cell (y, x) lies within the window.
func (w *Window) Enclose(y, x int) bool {
	if w.destroyed {
		return false
	}
	return w.region.Enclose(y, x)
}

// Update runs the update routine if the window has focus, then redraws
// the window if it is dirty.
func (w *Window) Update() {
	if w.destroyed {
		return
	}
	if w.focus && w.updateFn != nil {
		w.updateFn(w)
		if w.destroyed {
			return
		}
	}
	if w.dirty {
		w.Draw()
	}
}

// Draw clears the dirty flag, marks the parent's region for repaint and
// refreshes this window's region.
func (w *Window) Draw() {
	w.dirty = false
	if w.parent != nil && !w.parent.destroyed {
		w.parent.region.Touch()
	}
	w.region.Refresh()
}
