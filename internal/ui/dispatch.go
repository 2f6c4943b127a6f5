package ui

import (
	"github.com/dshills/termwin/internal/input/key"
)

// HandleEvent is the default update routine: it reads one input token,
// classifies it, applies text-field editing and calls the matching
// handler.
func (w *Window) HandleEvent() {
	tok := w.region.ReadToken()
	if tok == key.None {
		return
	}

	ev := Event{Kind: EventNone, Window: w, Key: tok}

	switch {
	case w.screen.isFocusKey(tok):
		if err := w.screen.SetFocusNext(w); err != nil {
			w.logger.Debug("focus cycle", "err", err)
		}
		return

	case tok == key.Mouse:
		if m, ok := w.region.GetMouse(); ok {
			ev.Kind = EventMouse
			ev.Mouse = m
		}

	case tok == key.Resize:
		// delivered only once a resize has been confirmed as pending
		if w.wasResized {
			ev.Kind = EventResize
			ev.Size = w.resizeDim
		}

	case w.textField:
		ev.Kind = w.edit(tok)
	}

	w.dispatch(ev)
}

// edit applies a token to a text field and returns the event kind it
// produces.
func (w *Window) edit(tok key.Code) EventKind {
	switch {
	case tok == key.Backspace:
		w.backspace()
		return EventTerm

	case tok.IsPrintable():
		w.insert(byte(tok))
		return EventTerm

	case tok.IsMovement():
		return EventKey
	}
	return EventNone
}

// insert appends c to the display and the field buffer, then keeps a
// bordered window's display cursor inside the interior.
func (w *Window) insert(c byte) {
	_ = w.AddChar(c)
	if c == byte(key.LineFeed) {
		w.field.Newline()
	} else {
		w.field.Put(c)
	}

	if !w.bordered {
		return
	}

	switch {
	case c == byte(key.LineFeed):
		if w.cy < w.h {
			w.MoveCursor(w.cy+1, 1)
		} else {
			w.MoveCursor(w.cy, w.cx-1)
		}
		// the line feed cleared the right border
		w.Box()

	case w.cx > w.w:
		if w.cx > w.w+1 {
			// a caret pair straddled the right border
			w.Box()
		}
		if w.cy < w.h {
			w.MoveCursor(w.cy+1, 1)
		} else {
			// hold the bottom-right cell; the field column follows it
			// back from the slot past the end
			w.MoveCursor(w.h, w.w)
			w.field.MoveCol(w.cx - 1)
		}
	}
}

// backspace erases the character before the display cursor, wrapping to
// the end of the previous row at the left margin, and deletes the
// character before the field buffer's cursor.
func (w *Window) backspace() {
	m := w.margin()
	lastCol := w.w
	if !w.bordered {
		lastCol = w.w - 1
	}

	switch {
	case w.cx > m:
		w.cx--
		w.blankAtCursor()
	case w.cy > m:
		w.cy--
		w.cx = lastCol
		w.blankAtCursor()
	}

	if w.field != nil {
		w.field.Backspace()
	}
}

func (w *Window) blankAtCursor() {
	if w.region.Move(w.cy, w.cx) == nil {
		_ = w.region.AddChar(' ')
		_ = w.region.Move(w.cy, w.cx)
	}
	w.dirty = true
}

// dispatch calls the handler registered for ev.Kind. Arrow keys without a
// handler move the display cursor.
func (w *Window) dispatch(ev Event) {
	if ev.Kind == EventNone {
		return
	}

	h := w.events.Lookup(ev.Kind)
	if h == nil {
		if ev.Kind == EventKey {
			w.moveByKey(ev.Key)
		}
		return
	}

	w.logger.Debug("dispatch", "kind", ev.Kind, "key", ev.Key)
	if err := h(ev); err != nil {
		w.logger.Debug("handler error", "kind", ev.Kind, "err", err)
	}
}

func (w *Window) moveByKey(k key.Code) {
	switch k {
	case key.Up:
		w.MoveCursorRelative(-1, 0)
	case key.Down:
		w.MoveCursorRelative(1, 0)
	case key.Left:
		w.MoveCursorRelative(0, -1)
	case key.Right:
		w.MoveCursorRelative(0, 1)
	}
}
