package resolver

import (
	"github.com/tachyon-beep/tidebreak/internal/arena"
	"github.com/tachyon-beep/tidebreak/internal/output"
)

const defaultTickRate = 1.0 / 60.0

// PhysicsResolver applies SetVelocity and SetHeading commands, then
// integrates every entity with a Physics component by its fixed
// timestep. It ignores FireWeapon and SpawnProjectile.
type PhysicsResolver struct {
	dt float32
}

// NewPhysicsResolver creates a PhysicsResolver at the standard 1/60s
// fixed timestep.
func NewPhysicsResolver() *PhysicsResolver {
	return &PhysicsResolver{dt: defaultTickRate}
}

// NewPhysicsResolverWithDT creates a PhysicsResolver at a custom
// timestep, for tests or non-standard tick rates.
func NewPhysicsResolverWithDT(dt float32) *PhysicsResolver {
	return &PhysicsResolver{dt: dt}
}

// DT returns the timestep used for physics integration.
func (r *PhysicsResolver) DT() float32 { return r.dt }

// HandledKinds implements Resolver.
func (r *PhysicsResolver) HandledKinds() []output.Kind {
	return []output.Kind{output.KindCommand}
}

// Resolve implements Resolver. Envelopes arrive pre-sorted by the
// scheduler, so applying SetVelocity/SetHeading in order is last-write-
// wins.
func (r *PhysicsResolver) Resolve(envelopes []output.Envelope, current, next *arena.Arena) {
	for _, env := range envelopes {
		switch cmd := env.Output.(type) {
		case output.SetVelocity:
			e, ok := next.Get(cmd.Target)
			if !ok {
				continue
			}
			p, ok := e.Physics()
			if !ok {
				continue
			}
			p.Velocity = cmd.Velocity
			e.SetPhysics(p)
		case output.SetHeading:
			e, ok := next.Get(cmd.Target)
			if !ok {
				continue
			}
			t := e.Transform()
			t.Heading = cmd.Heading
			e.SetTransform(t)
		}
	}

	for _, id := range next.EntitiesSorted() {
		e, ok := next.Get(id)
		if !ok {
			continue
		}
		p, ok := e.Physics()
		if !ok || p.Velocity.IsZero() {
			continue
		}
		t := e.Transform()
		t.Position = t.Position.Add(p.Velocity.Scale(r.dt))
		e.SetTransform(t)
		next.UpdateSpatial(id)
	}
}
