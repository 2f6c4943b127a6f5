package textbuf

import "testing"

func TestLineBufferPut(t *testing.T) {
	l := NewLineBuffer(4)

	for i, c := range []byte("abc") {
		if !l.Put(c) {
			t.Fatalf("Put %d: expected room", i)
		}
	}
	if l.Put('d') {
		t.Error("Put into last slot should report full")
	}
	if l.Index() != 3 {
		t.Errorf("expected index 3, got %d", l.Index())
	}
	if got := l.String(); got != "abcd" {
		t.Errorf("expected %q, got %q", "abcd", got)
	}
}

func TestLineBufferSaturation(t *testing.T) {
	for n := 1; n <= 8; n++ {
		l := NewLineBuffer(n)
		for i := 0; i < n; i++ {
			l.Put('x')
		}
		if l.Put('y') {
			t.Errorf("n=%d: put past capacity should report full", n)
		}
		if l.Index() != n-1 {
			t.Errorf("n=%d: expected index %d, got %d", n, n-1, l.Index())
		}
		if len(l.String()) != n {
			t.Errorf("n=%d: expected %d characters, got %d", n, n, len(l.String()))
		}
		if l.At(n-1) != 'y' {
			t.Errorf("n=%d: expected last slot overwritten, got %q", n, l.At(n-1))
		}
	}
}

func TestLineBufferBackspace(t *testing.T) {
	l := NewLineBuffer(5)
	l.Backspace()
	if l.Index() != 0 {
		t.Errorf("backspace at 0 should be a no-op, got index %d", l.Index())
	}

	l.Put('a')
	l.Put('b')
	l.Backspace()

	if got := l.String(); got != "a" {
		t.Errorf("expected %q, got %q", "a", got)
	}
	if l.Index() != 1 {
		t.Errorf("expected index 1, got %d", l.Index())
	}
}

func TestLineBufferBackspaceInvertsPut(t *testing.T) {
	for n := 2; n <= 6; n++ {
		for fill := 1; fill < n; fill++ {
			l := NewLineBuffer(n)
			for i := 0; i < fill; i++ {
				l.Put(byte('a' + i))
			}
			before, idx := l.String(), l.Index()
			last := l.At(idx - 1)

			l.Backspace()
			l.Put(last)

			if l.String() != before || l.Index() != idx {
				t.Errorf("n=%d fill=%d: expected %q@%d, got %q@%d",
					n, fill, before, idx, l.String(), l.Index())
			}
		}
	}
}

func TestLineBufferMove(t *testing.T) {
	l := NewLineBuffer(5)

	tests := []struct {
		name string
		move func()
		want int
	}{
		{"to 3", func() { l.MoveTo(3) }, 3},
		{"to 5 ignored", func() { l.MoveTo(5) }, 3},
		{"to -1 ignored", func() { l.MoveTo(-1) }, 3},
		{"relative -2", func() { l.MoveRelative(-2) }, 1},
		{"relative -2 ignored", func() { l.MoveRelative(-2) }, 1},
		{"relative +3", func() { l.MoveRelative(3) }, 4},
		{"relative +1 ignored", func() { l.MoveRelative(1) }, 4},
	}

	for _, tt := range tests {
		tt.move()
		if l.Index() != tt.want {
			t.Errorf("%s: expected index %d, got %d", tt.name, tt.want, l.Index())
		}
	}
}

func TestNewLineBufferMinimumCapacity(t *testing.T) {
	l := NewLineBuffer(0)
	if l.Cap() != 1 {
		t.Errorf("expected capacity 1, got %d", l.Cap())
	}
	if l.Put('a') {
		t.Error("single-slot buffer should be full after one put")
	}
}
