package ui

import "testing"

func TestEventKindString(t *testing.T) {
	tests := []struct {
		kind EventKind
		want string
	}{
		{EventNone, "none"},
		{EventKey, "key"},
		{EventTerm, "term"},
		{EventMouse, "mouse"},
		{EventResize, "resize"},
		{EventKind(42), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("EventKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestEventTable(t *testing.T) {
	var table EventTable

	if table.Lookup(EventKey) != nil {
		t.Error("empty table should have no handlers")
	}

	called := 0
	table.On(EventKey, func(Event) error { called++; return nil })
	h := table.Lookup(EventKey)
	if h == nil {
		t.Fatal("expected registered handler")
	}
	h(Event{})
	if called != 1 {
		t.Errorf("expected handler to run once, got %d", called)
	}

	table.On(EventKey, func(Event) error { called += 10; return nil })
	table.Lookup(EventKey)(Event{})
	if called != 11 {
		t.Errorf("expected replacement handler, got count %d", called)
	}

	table.Off(EventKey)
	if table.Lookup(EventKey) != nil {
		t.Error("expected handler removed")
	}
}

func TestEventTableIgnoresInvalidKinds(t *testing.T) {
	var table EventTable
	h := func(Event) error { return nil }

	table.On(EventNone, h)
	table.On(EventKind(-1), h)
	table.On(EventKind(99), h)
	table.Off(EventKind(99))

	for _, k := range []EventKind{EventNone, EventKind(-1), EventKind(99)} {
		if table.Lookup(k) != nil {
			t.Errorf("kind %v should never have a handler", k)
		}
	}
}
