package textbuf

import "strings"

// LineBuffer is a single line of editable text with room for a fixed
// number of characters.
type LineBuffer struct {
	str []byte
	idx int
}

// NewLineBuffer creates a line buffer with n character slots. A
// non-positive n is raised to 1 so the buffer always has a writable slot.
func NewLineBuffer(n int) *LineBuffer {
	if n < 1 {
		n = 1
	}
	return &LineBuffer{str: make([]byte, n)}
}

// Cap returns the number of character slots.
func (l *LineBuffer) Cap() int {
	return len(l.str)
}

// Index returns the insertion index.
func (l *LineBuffer) Index() int {
	return l.idx
}

// MoveTo sets the insertion index to n if 0 <= n < Cap.
func (l *LineBuffer) MoveTo(n int) {
	if n >= 0 && n < len(l.str) {
		l.idx = n
	}
}

// MoveRelative moves the insertion index by offset if the result stays in
// range.
func (l *LineBuffer) MoveRelative(offset int) {
	l.MoveTo(l.idx + offset)
}

// Put writes c at the insertion index and advances it. It returns false
// when the write landed in the last slot; the index then stays on that
// slot and the next Put overwrites it.
func (l *LineBuffer) Put(c byte) bool {
	l.str[l.idx] = c
	if l.idx < len(l.str)-1 {
		l.idx++
		return true
	}
	return false
}

// Backspace clears the character before the insertion index and moves
// the index back onto it. It does nothing at index 0.
func (l *LineBuffer) Backspace() {
	if l.idx > 0 {
		l.idx--
		l.str[l.idx] = 0
	}
}

// At returns the character in slot i, or 0 when i is out of range.
func (l *LineBuffer) At(i int) byte {
	if i < 0 || i >= len(l.str) {
		return 0
	}
	return l.str[i]
}

// String returns the text up to the first NUL.
func (l *LineBuffer) String() string {
	s := string(l.str)
	if i := strings.IndexByte(s, 0); i >= 0 {
		return s[:i]
	}
	return s
}
