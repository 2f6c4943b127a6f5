package ui

import (
	"github.com/dshills/termwin/internal/input/key"
	"github.com/dshills/termwin/internal/input/mouse"
)

// EventKind classifies a dispatched event.
type EventKind int

const (
	// EventNone means the token produced nothing to dispatch.
	EventNone EventKind = iota
	// EventKey is a navigation or function key.
	EventKey
	// EventTerm is a printable character or backspace typed into a text
	// field.
	EventTerm
	// EventMouse is a decoded mouse event.
	EventMouse
	// EventResize is a confirmed resize.
	EventResize

	eventKindCount
)

// String returns the event kind name.
func (k EventKind) String() string {
	switch k {
	case EventNone:
		return "none"
	case EventKey:
		return "key"
	case EventTerm:
		return "term"
	case EventMouse:
		return "mouse"
	case EventResize:
		return "resize"
	default:
		return "unknown"
	}
}

// Size is a height and width in cells.
type Size struct {
	H, W int
}

// Event is passed to handlers. Which payload field is meaningful depends on
// Kind: Key for EventKey and EventTerm, Mouse for EventMouse, Size for
// EventResize.
type Event struct {
	Kind   EventKind
	Window *Window

	Key   key.Code
	Mouse mouse.Event
	Size  Size
}

// HandlerFunc handles one dispatched event. Any context it needs is
// captured by the closure. A returned error is logged and otherwise
// ignored.
type HandlerFunc func(Event) error

// EventTable maps each event kind to at most one handler.
type EventTable struct {
	handlers [eventKindCount]HandlerFunc
}

// On registers h for kind, replacing any previous handler. EventNone and
// unknown kinds are ignored.
func (t *EventTable) On(kind EventKind, h HandlerFunc) {
	if kind <= EventNone || kind >= eventKindCount {
		return
	}
	t.handlers[kind] = h
}

// Off removes the handler for kind.
func (t *EventTable) Off(kind EventKind) {
	if kind <= EventNone || kind >= eventKindCount {
		return
	}
	t.handlers[kind] = nil
}

// Lookup returns the handler for kind, or nil.
func (t *EventTable) Lookup(kind EventKind) HandlerFunc {
	if kind <= EventNone || kind >= eventKindCount {
		return nil
	}
	return t.handlers[kind]
}
