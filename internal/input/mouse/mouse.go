package mouse

import (
	"strings"
	"time"
)

// Button identifies a physical mouse button.
type Button uint8

const (
	// ButtonNone indicates no button.
	ButtonNone Button = iota
	// Button1 is the primary (left) mouse button.
	Button1
	// Button2 is the middle mouse button.
	Button2
	// Button3 is the secondary (right) mouse button.
	Button3
	// Button4 is scroll wheel up.
	Button4
	// Button5 is scroll wheel down.
	Button5
)

// ButtonMask is the state bitmask reported with a mouse event. Each of
// buttons 1-5 owns five bits: released, pressed, clicked, double clicked,
// and triple clicked.
type ButtonMask uint32

const bitsPerButton = 5

const (
	maskReleased ButtonMask = 1 << iota
	maskPressed
	maskClicked
	maskDoubleClicked
	maskTripleClicked
)

func buttonBits(b Button, m ButtonMask) ButtonMask {
	if b == ButtonNone {
		return 0
	}
	return m << (bitsPerButton * (uint(b) - 1))
}

// Per-button masks.
var (
	Button1Released      = buttonBits(Button1, maskReleased)
	Button1Pressed       = buttonBits(Button1, maskPressed)
	Button1Clicked       = buttonBits(Button1, maskClicked)
	Button1DoubleClicked = buttonBits(Button1, maskDoubleClicked)
	Button1TripleClicked = buttonBits(Button1, maskTripleClicked)

	Button2Released = buttonBits(Button2, maskReleased)
	Button2Pressed  = buttonBits(Button2, maskPressed)
	Button2Clicked  = buttonBits(Button2, maskClicked)

	Button3Released = buttonBits(Button3, maskReleased)
	Button3Pressed  = buttonBits(Button3, maskPressed)
	Button3Clicked  = buttonBits(Button3, maskClicked)

	Button4Pressed = buttonBits(Button4, maskPressed)
	Button5Pressed = buttonBits(Button5, maskPressed)
)

// Has returns true if every bit of m is set in the mask.
func (b ButtonMask) Has(m ButtonMask) bool {
	return m != 0 && b&m == m
}

// String lists the set bits, e.g. "button1-released|button1-clicked".
func (b ButtonMask) String() string {
	if b == 0 {
		return "none"
	}
	names := []string{"released", "pressed", "clicked", "double-clicked", "triple-clicked"}
	var parts []string
	for btn := Button1; btn <= Button5; btn++ {
		for i, name := range names {
			if b.Has(buttonBits(btn, 1<<i)) {
				parts = append(parts, "button"+string(rune('0'+btn))+"-"+name)
			}
		}
	}
	return strings.Join(parts, "|")
}

// Position represents a screen coordinate.
type Position struct {
	X int
	Y int
}

// Distance returns the Manhattan distance (|dx| + |dy|) between two positions.
func (p Position) Distance(other Position) int {
	dx := p.X - other.X
	if dx < 0 {
		dx = -dx
	}
	dy := p.Y - other.Y
	if dy < 0 {
		dy = -dy
	}
	return dx + dy
}

// Event is the decoded mouse event record handed to mouse handlers:
// the screen cell of the pointer and the button state mask.
type Event struct {
	Y, X    int
	Buttons ButtonMask
}

// Config configures click detection.
type Config struct {
	// DoubleClickTime is the maximum time between clicks for a double-click.
	DoubleClickTime time.Duration

	// DoubleClickDistance is the maximum distance between clicks for a double-click.
	DoubleClickDistance int
}

// DefaultConfig returns the default click detection settings.
func DefaultConfig() Config {
	return Config{
		DoubleClickTime:     400 * time.Millisecond,
		DoubleClickDistance: 0,
	}
}

// Decoder turns the raw button-state stream of a terminal (a button is
// down, or every button is up) into pressed/released/clicked masks.
type Decoder struct {
	click *clickTracker
	now   func() time.Time

	down    Button
	downPos Position
}

// NewDecoder creates a decoder with the given click settings.
func NewDecoder(config Config) *Decoder {
	return &Decoder{
		click: newClickTracker(config.DoubleClickTime, config.DoubleClickDistance),
		now:   time.Now,
	}
}

// SetConfig replaces the click detection settings and forgets any click
// sequence in progress.
func (d *Decoder) SetConfig(config Config) {
	d.click = newClickTracker(config.DoubleClickTime, config.DoubleClickDistance)
}

// SetClock replaces the time source used for multi-click detection.
func (d *Decoder) SetClock(now func() time.Time) {
	d.now = now
}

// Decode converts one raw report into an Event. It returns false for
// reports that carry no button transition, such as pointer motion or a
// drag with the same button held, which callers treat as no input. A
// switch from one held button to another reports the release of the
// first together with the press of the second.
func (d *Decoder) Decode(y, x int, held Button) (Event, bool) {
	pos := Position{X: x, Y: y}
	ev := Event{Y: y, X: x}

	switch {
	case held == Button4 || held == Button5:
		// wheel reports are momentary; they never start a press
		ev.Buttons = buttonBits(held, maskPressed)
		return ev, true

	case held == d.down:
		// drag with the same button still down
		return Event{}, false

	case held != ButtonNone:
		if d.down != ButtonNone {
			// switched buttons without an all-up report in between
			ev.Buttons = buttonBits(d.down, maskReleased)
			d.click.reset()
		}
		d.down = held
		d.downPos = pos
		ev.Buttons |= buttonBits(held, maskPressed)
		return ev, true

	case d.down != ButtonNone:
		btn := d.down
		ev.Buttons = buttonBits(btn, maskReleased)
		if pos == d.downPos {
			switch d.click.recordClick(pos, d.now()) {
			case ClickDouble:
				ev.Buttons |= buttonBits(btn, maskDoubleClicked)
			case ClickTriple:
				ev.Buttons |= buttonBits(btn, maskTripleClicked)
			default:
				ev.Buttons |= buttonBits(btn, maskClicked)
			}
		} else {
			d.click.reset()
		}
		d.down = ButtonNone
		return ev, true
	}

	return Event{}, false
}
