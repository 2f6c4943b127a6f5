package script

import "errors"

var (
	// ErrClosed is returned when using an engine after Close.
	ErrClosed = errors.New("script engine is closed")

	// ErrNoHandlers is returned by Bind when the script defines none of
	// the handler functions.
	ErrNoHandlers = errors.New("script defines no event handlers")

	// ErrUnknownWindow is raised in Lua when an ID names no registered
	// window.
	ErrUnknownWindow = errors.New("unknown window")
)
