package ui

import (
	"github.com/dshills/termwin/internal/input/key"
	"github.com/dshills/termwin/internal/renderer/core"
)

// margin is the first interior row and column.
func (w *Window) margin() int {
	if w.bordered {
		return 1
	}
	return 0
}

func (w *Window) clampCursor() {
	lo := w.margin()
	w.cy = max(w.cy, lo)
	w.cx = max(w.cx, lo)
	w.cy = min(w.cy, w.h)
	w.cx = min(w.cx, w.w)
}

// MoveCursor places the display cursor at (y, x), clamped to the interior.
func (w *Window) MoveCursor(y, x int) {
	w.cy, w.cx = y, x
	w.clampCursor()
	// the right clamp edge of an unbordered window lies outside its region
	_ = w.region.Move(w.cy, w.cx)
	w.dirty = true
}

// MoveCursorRelative moves the display cursor by (dy, dx), clamped to the
// interior.
func (w *Window) MoveCursorRelative(dy, dx int) {
	w.MoveCursor(w.cy+dy, w.cx+dx)
}

// Cursor returns the display cursor.
func (w *Window) Cursor() (y, x int) {
	return w.cy, w.cx
}

// Clear blanks the window, border included, and homes the display cursor.
func (w *Window) Clear() {
	w.region.Clear()
	m := w.margin()
	w.MoveCursor(m, m)
}

// Box draws the border, in reverse video while the window has focus. It
// does nothing for unbordered windows.
func (w *Window) Box() {
	if !w.bordered {
		return
	}
	style := core.DefaultStyle()
	if w.focus {
		style = style.Reverse()
	}
	w.region.Box(style)
	w.dirty = true
}

// AddChar writes c at the display cursor and advances the cursor by the
// cells the region used, two for a control character in caret form. For
// unbordered windows the cursor follows the region's own wrapping.
func (w *Window) AddChar(c byte) error {
	w.dirty = true
	by, bx := w.region.Cursor()
	err := w.region.AddChar(rune(c))
	if !w.bordered {
		w.cy, w.cx = w.region.Cursor()
		return err
	}
	if c == byte(key.LineFeed) {
		w.cx++
		return err
	}
	ay, ax := w.region.Cursor()
	_, rw := w.region.Size()
	w.cx += (ay-by)*rw + ax - bx
	if w.cx < 1 {
		// a backspace character stepped onto the border
		w.MoveCursor(w.cy, 1)
	}
	return err
}

// Print writes text starting at interior position (y, x). Text fields are
// not printable. An unbordered window writes the text in one piece with
// region wrapping; a bordered window wraps it across interior rows,
// starting later rows at the left margin, and drops what does not fit.
func (w *Window) Print(y, x int, text string) {
	if w.textField {
		return
	}
	defer func() { w.dirty = true }()

	if !w.bordered {
		_ = w.region.PrintAt(y, x, text)
		return
	}

	rest := []rune(text)
	y++
	x++
	for first := true; len(rest) > 0 && y <= w.h; first = false {
		if !first {
			x = 1
		}
		count := w.w - (x - 1)
		if count <= 0 {
			return
		}
		count = min(count, len(rest))
		_ = w.region.PrintAt(y, x, string(rest[:count]))
		rest = rest[count:]
		y++
	}
}

// Move moves a top-level window so its corner is at screen cell (y, x).
// Child windows cannot be moved and return region.ErrDerivedMove.
func (w *Window) Move(y, x int) error {
	if err := w.region.MoveTo(y, x); err != nil {
		return err
	}
	w.y, w.x = y, x
	w.dirty = true
	return nil
}
