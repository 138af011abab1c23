package jungle

import (
	"sort"
	"time"
)

// EventKind identifies a deferred effect.
type EventKind int

const (
	EventClearHighlight EventKind = iota + 1
	EventCompleteLevel
)

// ScheduledEvent fires once the session clock reaches At.
type ScheduledEvent struct {
	At   time.Duration
	Kind EventKind
}

// Schedule is a list of deferred effects polled once per frame.
type Schedule struct {
	events []ScheduledEvent
}

// Add queues an event to fire at session time at.
func (s *Schedule) Add(at time.Duration, kind EventKind) {
	s.events = append(s.events, ScheduledEvent{At: at, Kind: kind})
}

// Pending reports whether an event of the given kind is queued.
func (s *Schedule) Pending(kind EventKind) bool {
	for _, e := range s.events {
		if e.Kind == kind {
			return true
		}
	}
	return false
}

// Due removes and returns the events whose time has come, earliest first.
// Events due at the same time keep the order they were added in.
func (s *Schedule) Due(now time.Duration) []ScheduledEvent {
	var due []ScheduledEvent
	kept := s.events[:0]
	for _, e := range s.events {
		if e.At <= now {
			due = append(due, e)
		} else {
			kept = append(kept, e)
		}
	}
	s.events = kept
	sort.SliceStable(due, func(i, j int) bool { return due[i].At < due[j].At })
	return due
}

// Len returns the number of queued events.
func (s *Schedule) Len() int {
	return len(s.events)
}

// Reset drops every queued event.
func (s *Schedule) Reset() {
	s.events = s.events[:0]
}

func ms(n int) time.Duration {
	return time.Duration(n) * time.Millisecond
}
