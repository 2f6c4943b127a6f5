package mouse

import "time"

// clickTracker tracks click patterns for double/triple click detection.
type clickTracker struct {
	maxTime     time.Duration
	maxDistance int

	lastPos   Position
	lastTime  time.Time
	lastCount int
}

func newClickTracker(maxTime time.Duration, maxDistance int) *clickTracker {
	return &clickTracker{
		maxTime:     maxTime,
		maxDistance: maxDistance,
	}
}

// recordClick records a click and returns its type. The count wraps back
// to a single click after three.
func (t *clickTracker) recordClick(pos Position, timestamp time.Time) ClickType {
	if t.isPartOfSequence(pos, timestamp) {
		t.lastCount++
		if t.lastCount > 3 {
			t.lastCount = 1
		}
	} else {
		t.lastCount = 1
	}

	t.lastPos = pos
	t.lastTime = timestamp

	return ClickType(t.lastCount)
}

func (t *clickTracker) isPartOfSequence(pos Position, timestamp time.Time) bool {
	if t.lastCount == 0 || t.lastTime.IsZero() {
		return false
	}

	// Handle clock skew: if elapsed time is negative, treat as new sequence
	elapsed := timestamp.Sub(t.lastTime)
	if elapsed < 0 || elapsed > t.maxTime {
		return false
	}

	return pos.Distance(t.lastPos) <= t.maxDistance
}

func (t *clickTracker) reset() {
	t.lastCount = 0
	t.lastTime = time.Time{}
	t.lastPos = Position{}
}

// ClickType represents the type of click detected.
type ClickType uint8

const (
	// ClickSingle is a single click.
	ClickSingle ClickType = 1
	// ClickDouble is a double click.
	ClickDouble ClickType = 2
	// ClickTriple is a triple click.
	ClickTriple ClickType = 3
)

// String returns a string representation of the click type.
func (c ClickType) String() string {
	switch c {
	case ClickSingle:
		return "single"
	case ClickDouble:
		return "double"
	case ClickTriple:
		return "triple"
	default:
		return "unknown"
	}
}
