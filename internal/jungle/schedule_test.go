package jungle

import (
	"testing"
	"time"
)

func TestScheduleDue(t *testing.T) {
	var s Schedule
	s.Add(300*time.Millisecond, EventCompleteLevel)
	s.Add(100*time.Millisecond, EventClearHighlight)
	s.Add(100*time.Millisecond, EventCompleteLevel)

	if due := s.Due(50 * time.Millisecond); len(due) != 0 {
		t.Fatalf("Due(50ms) = %v, expected nothing", due)
	}

	due := s.Due(300 * time.Millisecond)
	want := []EventKind{EventClearHighlight, EventCompleteLevel, EventCompleteLevel}
	if len(due) != len(want) {
		t.Fatalf("Due(300ms) returned %d events, expected %d", len(due), len(want))
	}
	for i, ev := range due {
		if ev.Kind != want[i] {
			t.Errorf("event %d = %v, expected %v", i, ev.Kind, want[i])
		}
	}
	if s.Len() != 0 {
		t.Errorf("Len = %d after draining", s.Len())
	}
}

func TestSchedulePendingAndReset(t *testing.T) {
	var s Schedule
	if s.Pending(EventCompleteLevel) {
		t.Fatal("empty schedule reports pending")
	}
	s.Add(time.Second, EventCompleteLevel)
	if !s.Pending(EventCompleteLevel) || s.Pending(EventClearHighlight) {
		t.Error("Pending reports the wrong kinds")
	}
	s.Reset()
	if s.Len() != 0 || s.Pending(EventCompleteLevel) {
		t.Error("Reset left events behind")
	}
}
