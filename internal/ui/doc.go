// Package ui implements windows, per-window event dispatch, and the screen
// that owns them.
//
// # Screen
//
// A Screen owns the terminal, the ordered registry of windows, the focus
// pointer and the run loop. It is created explicitly with NewScreen and torn
// down with End, which destroys every remaining window before releasing the
// terminal.
//
//	scr, err := ui.NewScreen(be, ui.DefaultOptions())
//	if err != nil {
//	    return err
//	}
//	defer scr.End()
//
// # Windows
//
// Windows are rectangular regions, optionally bordered and optionally text
// fields backed by a textbuf.FieldBuffer. CreateWindow and CreateChildWindow
// return nil when the region cannot be allocated; NewWindow and
// NewChildWindow return the error instead. A new window registers itself
// with the screen, joins its parent's child list and receives focus.
//
// A bordered window's interior is two rows and two columns smaller than
// requested and its display cursor stays within [1,h]x[1,w]; an unbordered
// window's cursor stays within [0,h]x[0,w].
//
// # Dispatch
//
// On every Update the focused window reads one input token and classifies
// it:
//
//   - the focus key moves focus to the next text field
//   - a mouse token becomes an EventMouse carrying the decoded mouse.Event
//   - a resize token becomes an EventResize only if a resize was pending
//   - for text fields, backspace and printable characters edit the field and
//     become EventTerm, and navigation keys become EventKey
//
// The handler registered with On for the resulting kind is then called.
// Editing side effects happen whether or not a handler is registered. Arrow
// keys move the display cursor when no EventKey handler is registered.
//
// # Concurrency
//
// The package is single-threaded: the run loop, Update and every handler run
// on the goroutine that calls Mainloop. Exit is the one method safe to call
// from other goroutines.
package ui
