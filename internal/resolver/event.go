package resolver

import (
	"github.com/tachyon-beep/tidebreak/internal/arena"
	"github.com/tachyon-beep/tidebreak/internal/output"
)

// EventResolver clones every event envelope it sees into a drainable
// log. It never mutates arena state.
type EventResolver struct {
	log *EventLog
}

// NewEventResolver creates an EventResolver with an empty log.
func NewEventResolver() *EventResolver {
	return &EventResolver{log: NewEventLog()}
}

// HandledKinds implements Resolver.
func (r *EventResolver) HandledKinds() []output.Kind {
	return []output.Kind{output.KindEvent}
}

// Resolve implements Resolver.
func (r *EventResolver) Resolve(envelopes []output.Envelope, current, next *arena.Arena) {
	for _, env := range envelopes {
		r.log.Append(env.Output)
	}
}

// TakeEvents drains and returns every event recorded since the last
// call.
func (r *EventResolver) TakeEvents() []output.Output {
	return r.log.TakeEvents()
}
