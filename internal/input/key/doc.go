// Package key defines the raw input tokens read by windows.
//
// A token is a Code: printable 7-bit characters are their own value, and
// navigation, function, mouse, and resize notifications use the classic
// curses numbering:
//
//   - None: no input pending (non-blocking read came back empty)
//   - Tab: focus cycling
//   - Backspace, and ASCII 0-127: text field editing
//   - Down..F63 and friends: movement keys, delivered as key events
//   - Mouse / Resize: pointer and terminal size notifications
package key
