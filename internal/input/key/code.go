package key

import "fmt"

// Code is a raw input token as read from a region: an ASCII value in
// [0,127], one of the special key codes below, or None when no input is
// pending. The special codes keep the curses numbering so that movement
// and function keys form one contiguous range below Mouse.
type Code int

// ASCII tokens with special meaning to text fields.
const (
	Tab      Code = 9
	LineFeed Code = 10
	Escape   Code = 27
	DelChar  Code = 127
)

// Special key tokens.
const (
	// None means no input was available.
	None Code = -1

	Down      Code = 0402
	Up        Code = 0403
	Left      Code = 0404
	Right     Code = 0405
	Home      Code = 0406
	Backspace Code = 0407
	F0        Code = 0410
	DeleteKey Code = 0512
	Insert    Code = 0513
	PageDown  Code = 0522
	PageUp    Code = 0523
	BackTab   Code = 0541
	End       Code = 0550

	// Mouse means a mouse event is pending on the terminal.
	Mouse Code = 0631
	// Resize means the terminal was resized.
	Resize Code = 0632
)

// maxFunctionKey is the highest function key number with its own code.
const maxFunctionKey = 63

// F returns the code of function key n (F(1) is F1). Out-of-range n
// returns None.
func F(n int) Code {
	if n < 0 || n > maxFunctionKey {
		return None
	}
	return F0 + Code(n)
}

// IsASCII reports whether c is a 7-bit character token.
func (c Code) IsASCII() bool {
	return c >= 0 && c <= 127
}

// IsPrintable reports whether c is a character a text field accepts:
// any 7-bit value except the focus-cycling Tab.
func (c Code) IsPrintable() bool {
	return c.IsASCII() && c != Tab
}

// IsMovement reports whether c lies in the navigation/function key range,
// which runs from Down up to (but excluding) Mouse.
func (c Code) IsMovement() bool {
	return c >= Down && c < Mouse
}

// IsFunction reports whether c is a function key, returning its number.
func (c Code) IsFunction() (int, bool) {
	if c >= F0 && c <= F0+maxFunctionKey {
		return int(c - F0), true
	}
	return 0, false
}

// String returns a human-readable name for the code.
func (c Code) String() string {
	switch c {
	case None:
		return "None"
	case Tab:
		return "Tab"
	case LineFeed:
		return "LineFeed"
	case Escape:
		return "Escape"
	case DelChar:
		return "Del"
	case Down:
		return "Down"
	case Up:
		return "Up"
	case Left:
		return "Left"
	case Right:
		return "Right"
	case Home:
		return "Home"
	case Backspace:
		return "Backspace"
	case DeleteKey:
		return "Delete"
	case Insert:
		return "Insert"
	case PageDown:
		return "PageDown"
	case PageUp:
		return "PageUp"
	case BackTab:
		return "BackTab"
	case End:
		return "End"
	case Mouse:
		return "Mouse"
	case Resize:
		return "Resize"
	}
	if n, ok := c.IsFunction(); ok {
		return fmt.Sprintf("F%d", n)
	}
	if c >= 32 && c < 127 {
		return string(rune(c))
	}
	if c >= 0 && c < 32 {
		return fmt.Sprintf("Ctrl+%c", rune(c)+'@')
	}
	return fmt.Sprintf("Code(%d)", int(c))
}

// ByName maps the names used in configuration files and scripts to codes.
var ByName = map[string]Code{
	"none":      None,
	"tab":       Tab,
	"enter":     LineFeed,
	"escape":    Escape,
	"up":        Up,
	"down":      Down,
	"left":      Left,
	"right":     Right,
	"home":      Home,
	"end":       End,
	"pageup":    PageUp,
	"pagedown":  PageDown,
	"insert":    Insert,
	"delete":    DeleteKey,
	"backspace": Backspace,
	"backtab":   BackTab,
}

// Parse resolves a key name such as "tab", "up", or "f4".
func Parse(name string) (Code, error) {
	if c, ok := ByName[name]; ok {
		return c, nil
	}
	var n int
	if _, err := fmt.Sscanf(name, "f%d", &n); err == nil {
		if c := F(n); c != None {
			return c, nil
		}
	}
	if len(name) == 1 && name[0] < 128 {
		return Code(name[0]), nil
	}
	return None, fmt.Errorf("unknown key name %q", name)
}
