package components

import (
	"fmt"

	"github.com/alexisbeaulieu97/elevate/internal/touch"
)

// Event is one finished touch.
type Event struct {
	Control string
	Outcome touch.Outcome
	// Distance is the press-to-release travel; zero for cancellations.
	Distance float64
}

func (e Event) String() string {
	if e.Outcome == touch.OutcomeCancelled {
		return fmt.Sprintf("%s %s %s", OutcomeIcon(e.Outcome), e.Control, e.Outcome)
	}
	return fmt.Sprintf("%s %s %s (%.0f units)", OutcomeIcon(e.Outcome), e.Control, e.Outcome, e.Distance)
}

// EventLog keeps the most recent events, newest last.
type EventLog struct {
	entries []Event
	limit   int
}

// NewEventLog creates a log holding at most limit events.
func NewEventLog(limit int) *EventLog {
	if limit < 1 {
		limit = 1
	}
	return &EventLog{limit: limit}
}

// Add appends an event, dropping the oldest when full.
func (l *EventLog) Add(e Event) {
	l.entries = append(l.entries, e)
	if over := len(l.entries) - l.limit; over > 0 {
		l.entries = append(l.entries[:0], l.entries[over:]...)
	}
}

// Entries returns the events in order.
func (l *EventLog) Entries() []Event {
	clone := make([]Event, len(l.entries))
	copy(clone, l.entries)
	return clone
}

// Last returns the newest event.
func (l *EventLog) Last() (Event, bool) {
	if len(l.entries) == 0 {
		return Event{}, false
	}
	return l.entries[len(l.entries)-1], true
}
