package resolver

import (
	"sync"

	"github.com/tachyon-beep/tidebreak/internal/output"
)

// EventLog is a thread-safe, append-only buffer of events, drained by
// TakeEvents. Both the Combat resolver's internal WeaponFired log and
// the Event resolver's general log share this shape.
type EventLog struct {
	mu     sync.Mutex
	events []output.Output
}

// NewEventLog creates an empty log.
func NewEventLog() *EventLog {
	return &EventLog{}
}

// Append records an event.
func (l *EventLog) Append(e output.Output) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.events = append(l.events, e)
}

// TakeEvents returns every buffered event and clears the log.
func (l *EventLog) TakeEvents() []output.Output {
	l.mu.Lock()
	defer l.mu.Unlock()
	taken := l.events
	l.events = nil
	return taken
}

// Len reports the number of buffered events.
func (l *EventLog) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.events)
}
