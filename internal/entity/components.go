package entity

import "github.com/tachyon-beep/tidebreak/internal/geometry"

// TransformState is an entity's position and heading.
type TransformState struct {
	Position geometry.Vec2
	Heading  float32
}

// PhysicsState is an entity's velocity and movement limits.
type PhysicsState struct {
	Velocity geometry.Vec2
	MaxSpeed float32
}

// StatusFlags is a bitmask of an entity's combat status conditions.
type StatusFlags uint32

const (
	StatusDisabled StatusFlags = 1 << iota
	StatusOnFire
	StatusFlooding
	StatusDead
)

// Contains reports whether every bit of other is set in f.
func (f StatusFlags) Contains(other StatusFlags) bool {
	return f&other == other
}

// Insert returns f with other's bits set.
func (f StatusFlags) Insert(other StatusFlags) StatusFlags {
	return f | other
}

// Remove returns f with other's bits cleared.
func (f StatusFlags) Remove(other StatusFlags) StatusFlags {
	return f &^ other
}

// Weapon is one weapon mount aboard a combat-capable entity.
type Weapon struct {
	Slot              int
	CooldownRemaining float32
	Operational       bool
}

// IsReady reports whether the weapon can fire: operational and off
// cooldown.
func (w Weapon) IsReady() bool {
	return w.Operational && w.CooldownRemaining <= 0
}

// CombatState is an entity's health, weapons, and status flags.
type CombatState struct {
	HP          float32
	MaxHP       float32
	Weapons     []Weapon
	StatusFlags StatusFlags
}

// TrackQuality ranks the confidence of a sensor contact.
type TrackQuality int

const (
	TrackTentative TrackQuality = iota
	TrackConfirmed
	TrackHighConfidence
)

// TrackEntry is one contact in a sensor's track table.
type TrackEntry struct {
	TargetID Id
	Quality  TrackQuality
}

// SensorState is an entity's detection envelope and current contacts.
type SensorState struct {
	RadarRange float32
	TrackTable []TrackEntry
}

// InventoryState is an entity's consumable stores.
type InventoryState struct {
	Fuel         float32
	FuelCapacity float32
	Ammunition   map[string]int
}

// ShipComponents is the full component set carried by a naval vessel.
type ShipComponents struct {
	Transform TransformState
	Physics   PhysicsState
	Combat    CombatState
	Sensor    SensorState
	Inventory InventoryState
}

// PlatformComponents is the component set carried by a static or
// semi-static installation: position and sensing, no propulsion.
type PlatformComponents struct {
	Transform TransformState
	Sensor    SensorState
}

// ProjectileComponents is the component set carried by an in-flight
// weapon: position and motion, nothing else.
type ProjectileComponents struct {
	Transform TransformState
	Physics   PhysicsState
}

// SquadronComponents is the component set carried by a grouped formation
// of aircraft or small craft.
type SquadronComponents struct {
	Transform TransformState
	Physics   PhysicsState
	Combat    CombatState
}
