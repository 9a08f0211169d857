package entity

// Inner is type-safe storage for an entity's tag-specific components. It
// is a closed sum over the four component sets: exactly one of the
// pointer fields is non-nil, matching whichever tag the entity carries.
// The constructors (NewShipInner etc.) are the only way to build a valid
// Inner, so the invariant holds by construction.
type Inner struct {
	kind       Tag
	ship       *ShipComponents
	platform   *PlatformComponents
	projectile *ProjectileComponents
	squadron   *SquadronComponents
}

// NewShipInner wraps ship components.
func NewShipInner(c ShipComponents) Inner {
	return Inner{kind: TagShip, ship: &c}
}

// NewPlatformInner wraps platform components.
func NewPlatformInner(c PlatformComponents) Inner {
	return Inner{kind: TagPlatform, platform: &c}
}

// NewProjectileInner wraps projectile components.
func NewProjectileInner(c ProjectileComponents) Inner {
	return Inner{kind: TagProjectile, projectile: &c}
}

// NewSquadronInner wraps squadron components.
func NewSquadronInner(c SquadronComponents) Inner {
	return Inner{kind: TagSquadron, squadron: &c}
}

// Tag returns the EntityTag corresponding to this Inner's variant.
func (in Inner) Tag() Tag { return in.kind }

// AsShip returns the ship components and true if in holds a ship.
func (in Inner) AsShip() (*ShipComponents, bool) { return in.ship, in.kind == TagShip }

// AsPlatform returns the platform components and true if in holds a
// platform.
func (in Inner) AsPlatform() (*PlatformComponents, bool) { return in.platform, in.kind == TagPlatform }

// AsProjectile returns the projectile components and true if in holds a
// projectile.
func (in Inner) AsProjectile() (*ProjectileComponents, bool) {
	return in.projectile, in.kind == TagProjectile
}

// AsSquadron returns the squadron components and true if in holds a
// squadron.
func (in Inner) AsSquadron() (*SquadronComponents, bool) { return in.squadron, in.kind == TagSquadron }

// Entity is a complete simulated actor: a unique id, a tag that selects
// which plugins run on it, and its tag-specific component storage.
//
// The caller is responsible for keeping Tag and Inner consistent; the
// convenience constructors (NewShip, NewPlatform, ...) guarantee it.
type Entity struct {
	id    Id
	tag   Tag
	inner Inner
}

// New builds an entity from explicit id, tag, and inner storage.
func New(id Id, tag Tag, inner Inner) Entity {
	return Entity{id: id, tag: tag, inner: inner}
}

// NewShip builds a ship entity with zero-valued default components.
func NewShip(id Id) Entity {
	return New(id, TagShip, NewShipInner(ShipComponents{}))
}

// NewPlatform builds a platform entity with zero-valued default
// components.
func NewPlatform(id Id) Entity {
	return New(id, TagPlatform, NewPlatformInner(PlatformComponents{}))
}

// NewProjectile builds a projectile entity with zero-valued default
// components.
func NewProjectile(id Id) Entity {
	return New(id, TagProjectile, NewProjectileInner(ProjectileComponents{}))
}

// NewSquadron builds a squadron entity with zero-valued default
// components.
func NewSquadron(id Id) Entity {
	return New(id, TagSquadron, NewSquadronInner(SquadronComponents{}))
}

// ID returns the entity's unique identifier.
func (e Entity) ID() Id { return e.id }

// Tag returns the entity's type tag.
func (e Entity) Tag() Tag { return e.tag }

// Inner returns the entity's component storage.
func (e Entity) Inner() Inner { return e.inner }

// SetInner replaces the entity's component storage.
func (e *Entity) SetInner(inner Inner) { e.inner = inner }

// IsShip reports whether the entity is a ship.
func (e Entity) IsShip() bool { return e.tag == TagShip }

// IsPlatform reports whether the entity is a platform.
func (e Entity) IsPlatform() bool { return e.tag == TagPlatform }

// IsProjectile reports whether the entity is a projectile.
func (e Entity) IsProjectile() bool { return e.tag == TagProjectile }

// IsSquadron reports whether the entity is a squadron.
func (e Entity) IsSquadron() bool { return e.tag == TagSquadron }

// AsShip returns the entity's ship components, if it is a ship.
func (e Entity) AsShip() (*ShipComponents, bool) { return e.inner.AsShip() }

// AsPlatform returns the entity's platform components, if it is a
// platform.
func (e Entity) AsPlatform() (*PlatformComponents, bool) { return e.inner.AsPlatform() }

// AsProjectile returns the entity's projectile components, if it is a
// projectile.
func (e Entity) AsProjectile() (*ProjectileComponents, bool) { return e.inner.AsProjectile() }

// AsSquadron returns the entity's squadron components, if it is a
// squadron.
func (e Entity) AsSquadron() (*SquadronComponents, bool) { return e.inner.AsSquadron() }

// Transform returns the entity's transform state, common to all tags.
func (e Entity) Transform() TransformState {
	switch e.tag {
	case TagShip:
		return e.inner.ship.Transform
	case TagPlatform:
		return e.inner.platform.Transform
	case TagProjectile:
		return e.inner.projectile.Transform
	case TagSquadron:
		return e.inner.squadron.Transform
	default:
		return TransformState{}
	}
}

// SetTransform overwrites the entity's transform state.
func (e *Entity) SetTransform(t TransformState) {
	switch e.tag {
	case TagShip:
		e.inner.ship.Transform = t
	case TagPlatform:
		e.inner.platform.Transform = t
	case TagProjectile:
		e.inner.projectile.Transform = t
	case TagSquadron:
		e.inner.squadron.Transform = t
	}
}

// Physics returns the entity's physics state and whether it carries one
// (platforms do not).
func (e Entity) Physics() (PhysicsState, bool) {
	switch e.tag {
	case TagShip:
		return e.inner.ship.Physics, true
	case TagProjectile:
		return e.inner.projectile.Physics, true
	case TagSquadron:
		return e.inner.squadron.Physics, true
	default:
		return PhysicsState{}, false
	}
}

// SetPhysics overwrites the entity's physics state, if it carries one.
func (e *Entity) SetPhysics(p PhysicsState) {
	switch e.tag {
	case TagShip:
		e.inner.ship.Physics = p
	case TagProjectile:
		e.inner.projectile.Physics = p
	case TagSquadron:
		e.inner.squadron.Physics = p
	}
}

// Combat returns the entity's combat state and whether it carries one
// (platforms and projectiles do not).
func (e Entity) Combat() (CombatState, bool) {
	switch e.tag {
	case TagShip:
		return e.inner.ship.Combat, true
	case TagSquadron:
		return e.inner.squadron.Combat, true
	default:
		return CombatState{}, false
	}
}

// SetCombat overwrites the entity's combat state, if it carries one.
func (e *Entity) SetCombat(c CombatState) {
	switch e.tag {
	case TagShip:
		e.inner.ship.Combat = c
	case TagSquadron:
		e.inner.squadron.Combat = c
	}
}

// Sensor returns the entity's sensor state and whether it carries one
// (projectiles and squadrons do not).
func (e Entity) Sensor() (SensorState, bool) {
	switch e.tag {
	case TagShip:
		return e.inner.ship.Sensor, true
	case TagPlatform:
		return e.inner.platform.Sensor, true
	default:
		return SensorState{}, false
	}
}

// SetSensor overwrites the entity's sensor state, if it carries one.
func (e *Entity) SetSensor(s SensorState) {
	switch e.tag {
	case TagShip:
		e.inner.ship.Sensor = s
	case TagPlatform:
		e.inner.platform.Sensor = s
	}
}

// Inventory returns the entity's inventory state and whether it carries
// one (only ships do).
func (e Entity) Inventory() (InventoryState, bool) {
	if e.tag == TagShip {
		return e.inner.ship.Inventory, true
	}
	return InventoryState{}, false
}

// SetInventory overwrites the entity's inventory state, if it carries
// one.
func (e *Entity) SetInventory(inv InventoryState) {
	if e.tag == TagShip {
		e.inner.ship.Inventory = inv
	}
}
