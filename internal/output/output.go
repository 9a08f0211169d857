// Package output defines the proposals plugins emit during the tick
// loop's plugin phase: Commands, Modifiers, and Events, each wrapped in an
// OutputEnvelope carrying causal-chain metadata for the resolve phase.
package output

import (
	"sort"

	"github.com/tachyon-beep/tidebreak/internal/entity"
	"github.com/tachyon-beep/tidebreak/internal/geometry"
)

// Kind categorizes an Output for resolver routing.
type Kind int

const (
	KindCommand Kind = iota
	KindModifier
	KindEvent
)

// Output is a plugin's proposal for a state change: a Command, Modifier,
// or Event. It is a closed sum realized as concrete structs implementing
// this interface, not an open interface — see the Command/Modifier/Event
// groups below for the full variant list.
type Output interface {
	Kind() Kind
}

// PluginId names a registered plugin.
type PluginId string

// PluginInstanceId identifies a specific plugin running on a specific
// entity: the unit of work the scheduler parallelizes over.
type PluginInstanceId struct {
	EntityID entity.Id
	PluginID PluginId
}

// TraceId is a deterministic per-work-item identifier, derived by the
// scheduler from the master seed, tick, entity id, and plugin index.
type TraceId uint64

// StatId names a numeric stat that ModifyStat can target. Declared for
// interface completeness; no resolver currently acts on it (SPEC_FULL.md
// §4.10/§9 — kept unimplemented per the reference's own open question).
type StatId int

const (
	StatMaxSpeed StatId = iota
	StatRadarRange
)

// --- Commands: direct state-change requests, handled by the Physics and
// Combat resolvers. ---

type SetVelocity struct {
	Target   entity.Id
	Velocity geometry.Vec2
}

func (SetVelocity) Kind() Kind { return KindCommand }

type SetHeading struct {
	Target  entity.Id
	Heading float32
}

func (SetHeading) Kind() Kind { return KindCommand }

type FireWeapon struct {
	Source entity.Id
	Target entity.Id
	Slot   int
}

func (FireWeapon) Kind() Kind { return KindCommand }

type SpawnProjectile struct {
	Source     entity.Id
	WeaponSlot int
	TargetPos  geometry.Vec2
}

func (SpawnProjectile) Kind() Kind { return KindCommand }

// --- Modifiers: value modifications, handled by the Combat resolver. ---

type ApplyDamage struct {
	Target entity.Id
	Amount float32
}

func (ApplyDamage) Kind() Kind { return KindModifier }

type ApplyHealing struct {
	Target entity.Id
	Amount float32
}

func (ApplyHealing) Kind() Kind { return KindModifier }

type SetStatusFlag struct {
	Target entity.Id
	Flag   entity.StatusFlags
	Value  bool
}

func (SetStatusFlag) Kind() Kind { return KindModifier }

type ModifyStat struct {
	Target entity.Id
	StatID StatId
	Delta  float32
}

func (ModifyStat) Kind() Kind { return KindModifier }

// --- Events: notifications of things that happened, handled by the Event
// resolver (and, for WeaponFired, emitted directly by the Combat
// resolver). ---

type WeaponFired struct {
	Source entity.Id
	Slot   int
}

func (WeaponFired) Kind() Kind { return KindEvent }

type DamageDealt struct {
	Source entity.Id
	Target entity.Id
	Amount float32
}

func (DamageDealt) Kind() Kind { return KindEvent }

type EntityDestroyed struct {
	Entity    entity.Id
	Destroyer *entity.Id
}

func (EntityDestroyed) Kind() Kind { return KindEvent }

type ContactDetected struct {
	Observer entity.Id
	Target   entity.Id
	Quality  entity.TrackQuality
}

func (ContactDetected) Kind() Kind { return KindEvent }

// Envelope wraps an Output with the causal-chain metadata the resolve
// phase needs to sort and route it deterministically.
type Envelope struct {
	Output   Output
	Source   PluginInstanceId
	Cause    *uint64
	TraceID  TraceId
	Tick     uint64
	Sequence int
}

// NewEnvelope builds an envelope with no causing event.
func NewEnvelope(out Output, source PluginInstanceId, traceID TraceId, tick uint64, sequence int) Envelope {
	return Envelope{Output: out, Source: source, TraceID: traceID, Tick: tick, Sequence: sequence}
}

// SortEnvelopes orders envelopes by (source entity id, source plugin id
// lexicographically, sequence) — the resolve phase's determinism
// invariant (SPEC_FULL.md §4.11). Sorts in place.
func SortEnvelopes(envelopes []Envelope) {
	sort.SliceStable(envelopes, func(i, j int) bool {
		a, b := envelopes[i], envelopes[j]
		if a.Source.EntityID != b.Source.EntityID {
			return a.Source.EntityID < b.Source.EntityID
		}
		if a.Source.PluginID != b.Source.PluginID {
			return a.Source.PluginID < b.Source.PluginID
		}
		return a.Sequence < b.Sequence
	})
}
