package ui

import (
	"errors"
	"fmt"
)

var (
	// ErrNoTextField indicates that focus cycling found no text field in
	// the registry.
	ErrNoTextField = errors.New("no text field window registered")

	// ErrInvalidParent indicates a child window requested under a nil or
	// destroyed parent.
	ErrInvalidParent = errors.New("invalid parent window")

	// ErrTooSmall indicates a bordered window without room for an interior.
	ErrTooSmall = errors.New("window too small for border")

	// ErrNotTextField indicates a text-field operation on a plain window.
	ErrNotTextField = errors.New("window is not a text field")
)

// WindowError reports a failed window operation.
type WindowError struct {
	Op     string // "create" or "derive"
	Target string // requested geometry, e.g. "5x50@10,5"
	Err    error
}

func newWindowError(op string, h, w, y, x int, err error) *WindowError {
	return &WindowError{
		Op:     op,
		Target: fmt.Sprintf("%dx%d@%d,%d", h, w, y, x),
		Err:    err,
	}
}

func (e *WindowError) Error() string {
	if e == nil {
		return ""
	}
	msg := "window " + e.Op
	if e.Target != "" {
		msg += " " + e.Target
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *WindowError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
