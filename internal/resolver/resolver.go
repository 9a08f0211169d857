// Package resolver implements the resolve phase of the tick loop:
// deterministic, declared-kind handlers that read the frozen `current`
// arena and write state changes into the in-progress `next` arena.
package resolver

import (
	"github.com/tachyon-beep/tidebreak/internal/arena"
	"github.com/tachyon-beep/tidebreak/internal/output"
)

// Resolver consumes the sorted envelopes of the kinds it declares and
// applies their effect to next. It must only read from current.
type Resolver interface {
	HandledKinds() []output.Kind
	Resolve(envelopes []output.Envelope, current, next *arena.Arena)
}

// Filter returns the envelopes whose Output.Kind() is handled by r, in
// their original relative order.
func Filter(r Resolver, envelopes []output.Envelope) []output.Envelope {
	handled := make(map[output.Kind]bool, len(r.HandledKinds()))
	for _, k := range r.HandledKinds() {
		handled[k] = true
	}
	var out []output.Envelope
	for _, env := range envelopes {
		if handled[env.Output.Kind()] {
			out = append(out, env)
		}
	}
	return out
}

// Run filters envelopes to each resolver's declared kinds and resolves
// them in resolver-list order, the RESOLVE phase's core loop.
func Run(resolvers []Resolver, envelopes []output.Envelope, current, next *arena.Arena) {
	for _, r := range resolvers {
		r.Resolve(Filter(r, envelopes), current, next)
	}
}
