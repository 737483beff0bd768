package models

import "testing"

func TestEventType_StringParseRoundTrip(t *testing.T) {
	types := []EventType{EventGame, EventDeadline, EventWindow, EventMilestone, EventDraftDay}
	for _, typ := range types {
		s := typ.String()
		parsed, ok := ParseEventType(s)
		if !ok {
			t.Fatalf("ParseEventType(%q) ok = false", s)
		}
		if parsed != typ {
			t.Errorf("round trip for %v produced %v", typ, parsed)
		}
	}
}

func TestParseEventType_UnknownReturnsFalse(t *testing.T) {
	if _, ok := ParseEventType("NOT_A_TYPE"); ok {
		t.Errorf("ParseEventType(unknown) ok = true, want false")
	}
}

func TestEvent_IsExecuted(t *testing.T) {
	e := &Event{}
	if e.IsExecuted() {
		t.Errorf("fresh event IsExecuted() = true, want false")
	}
	e.Executed = true
	if !e.IsExecuted() {
		t.Errorf("executed event IsExecuted() = false, want true")
	}
}
