package resolver

import (
	"testing"

	"github.com/tachyon-beep/tidebreak/internal/arena"
	"github.com/tachyon-beep/tidebreak/internal/entity"
	"github.com/tachyon-beep/tidebreak/internal/geometry"
	"github.com/tachyon-beep/tidebreak/internal/output"
)

func envelope(out output.Output, eid entity.Id, plugin output.PluginId, seq int) output.Envelope {
	return output.NewEnvelope(out, output.PluginInstanceId{EntityID: eid, PluginID: plugin}, 0, 0, seq)
}

func TestPhysicsResolverIntegratesPositionAndResyncsSpatialIndex(t *testing.T) {
	a := arena.New()
	id := a.Spawn(entity.TagShip, entity.NewShipInner(entity.ShipComponents{
		Transform: entity.TransformState{Position: geometry.NewVec2(0, 0)},
		Physics:   entity.PhysicsState{MaxSpeed: 100},
	}))
	next := a.Clone()

	envelopes := []output.Envelope{
		envelope(output.SetVelocity{Target: id, Velocity: geometry.NewVec2(60, 0)}, id, "movement", 0),
		envelope(output.SetHeading{Target: id, Heading: 1.5}, id, "movement", 1),
	}

	r := NewPhysicsResolver()
	r.Resolve(envelopes, a, next)

	e, ok := next.Get(id)
	if !ok {
		t.Fatalf("expected entity to survive resolution")
	}
	transform := e.Transform()
	if transform.Heading != 1.5 {
		t.Fatalf("expected heading 1.5, got %v", transform.Heading)
	}
	wantX := float32(60) * defaultTickRate
	if transform.Position.X != wantX {
		t.Fatalf("expected position.X %v after one tick of integration, got %v", wantX, transform.Position.X)
	}

	moved := next.Spatial().QueryRadius(transform.Position, 0.001)
	if len(moved) != 1 || moved[0] != id {
		t.Fatalf("expected spatial index resynced to new position, got %v", moved)
	}
}

func TestPhysicsResolverIgnoresFireWeaponAndSpawnProjectile(t *testing.T) {
	a := arena.New()
	id := a.Spawn(entity.TagShip, entity.NewShipInner(entity.ShipComponents{}))
	next := a.Clone()

	envelopes := []output.Envelope{
		envelope(output.FireWeapon{Source: id, Target: id, Slot: 0}, id, "weapon", 0),
		envelope(output.SpawnProjectile{Source: id}, id, "weapon", 1),
	}

	r := NewPhysicsResolver()
	r.Resolve(envelopes, a, next)

	e, _ := next.Get(id)
	if e.Transform().Position != (geometry.Vec2{}) {
		t.Fatalf("expected no position change from ignored command kinds")
	}
}

func TestCombatResolverAppliesDamageAndSetsDestroyedFlagAtZeroHP(t *testing.T) {
	a := arena.New()
	id := a.Spawn(entity.TagShip, entity.NewShipInner(entity.ShipComponents{
		Combat: entity.CombatState{HP: 10, MaxHP: 100},
	}))
	next := a.Clone()

	envelopes := []output.Envelope{
		envelope(output.ApplyDamage{Target: id, Amount: 25}, id, "combat", 0),
	}

	r := NewCombatResolver()
	r.Resolve(envelopes, a, next)

	e, _ := next.Get(id)
	c, _ := e.Combat()
	if c.HP != 0 {
		t.Fatalf("expected HP clamped to 0, got %v", c.HP)
	}
	if !c.StatusFlags.Contains(entity.StatusDead) {
		t.Fatalf("expected dead flag set once HP reached 0")
	}
}

func TestCombatResolverClampsHealingToMaxHP(t *testing.T) {
	a := arena.New()
	id := a.Spawn(entity.TagShip, entity.NewShipInner(entity.ShipComponents{
		Combat: entity.CombatState{HP: 90, MaxHP: 100},
	}))
	next := a.Clone()

	envelopes := []output.Envelope{
		envelope(output.ApplyHealing{Target: id, Amount: 50}, id, "combat", 0),
	}

	r := NewCombatResolver()
	r.Resolve(envelopes, a, next)

	e, _ := next.Get(id)
	c, _ := e.Combat()
	if c.HP != 100 {
		t.Fatalf("expected HP clamped to MaxHP 100, got %v", c.HP)
	}
}

func TestCombatResolverIgnoresModifiersOnEntitiesWithoutCombatState(t *testing.T) {
	a := arena.New()
	id := a.Spawn(entity.TagPlatform, entity.NewPlatformInner(entity.PlatformComponents{}))
	next := a.Clone()

	envelopes := []output.Envelope{
		envelope(output.ApplyDamage{Target: id, Amount: 999}, id, "combat", 0),
	}

	r := NewCombatResolver()
	r.Resolve(envelopes, a, next) // must not panic
}

func TestCombatResolverLogsWeaponFiredFromFireWeaponCommand(t *testing.T) {
	a := arena.New()
	source := a.Spawn(entity.TagShip, entity.NewShipInner(entity.ShipComponents{}))
	target := a.Spawn(entity.TagShip, entity.NewShipInner(entity.ShipComponents{}))
	next := a.Clone()

	envelopes := []output.Envelope{
		envelope(output.FireWeapon{Source: source, Target: target, Slot: 2}, source, "weapon", 0),
	}

	r := NewCombatResolver()
	r.Resolve(envelopes, a, next)

	events := r.WeaponFiredEvents().TakeEvents()
	if len(events) != 1 {
		t.Fatalf("expected exactly one WeaponFired event, got %d", len(events))
	}
	fired, ok := events[0].(output.WeaponFired)
	if !ok || fired.Source != source || fired.Slot != 2 {
		t.Fatalf("unexpected weapon fired event %+v", events[0])
	}
}

func TestEventResolverLogsAndDrains(t *testing.T) {
	id := entity.Id(1)
	envelopes := []output.Envelope{
		envelope(output.DamageDealt{Source: id, Target: id, Amount: 5}, id, "combat", 0),
		envelope(output.EntityDestroyed{Entity: id}, id, "combat", 1),
	}

	r := NewEventResolver()
	r.Resolve(envelopes, nil, nil)

	events := r.TakeEvents()
	if len(events) != 2 {
		t.Fatalf("expected 2 logged events, got %d", len(events))
	}
	if drained := r.TakeEvents(); len(drained) != 0 {
		t.Fatalf("expected log to be empty after draining, got %v", drained)
	}
}

func TestFilterSelectsOnlyHandledKinds(t *testing.T) {
	id := entity.Id(1)
	envelopes := []output.Envelope{
		envelope(output.SetVelocity{Target: id}, id, "movement", 0),
		envelope(output.ApplyDamage{Target: id}, id, "combat", 0),
		envelope(output.WeaponFired{Source: id}, id, "weapon", 0),
	}

	physics := NewPhysicsResolver()
	filtered := Filter(physics, envelopes)
	if len(filtered) != 1 {
		t.Fatalf("expected physics resolver to see only the Command envelope, got %d", len(filtered))
	}
	if _, ok := filtered[0].Output.(output.SetVelocity); !ok {
		t.Fatalf("expected filtered envelope to be the SetVelocity command")
	}
}
