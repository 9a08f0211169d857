package plugin

import (
	"fmt"

	"github.com/tachyon-beep/tidebreak/internal/arena"
	"github.com/tachyon-beep/tidebreak/internal/entity"
	"github.com/tachyon-beep/tidebreak/internal/geometry"
)

// DebugAccessChecks controls whether WorldView panics on an undeclared
// component read (the reference's debug-build behavior) or silently
// returns absent (its release-build behavior). Go has no build-time
// debug/release distinction, so this is a package variable instead; it
// defaults on, matching test and development builds.
var DebugAccessChecks = true

// WorldView is a scoped, read-only projection of an Arena for one plugin
// instance: component reads are restricted to what the plugin's
// Declaration lists, while spatial and tag queries are unrestricted since
// every plugin needs them to find work.
type WorldView struct {
	arena *arena.Arena
	decl  Declaration
	tick  uint64
}

// ForPlugin builds the WorldView a plugin instance runs against.
func ForPlugin(a *arena.Arena, decl Declaration, tick uint64) *WorldView {
	return &WorldView{arena: a, decl: decl, tick: tick}
}

// Tick returns the tick this view was built for.
func (v *WorldView) Tick() uint64 { return v.tick }

func (v *WorldView) checkAccess(kind ComponentKind) bool {
	for _, k := range v.decl.Reads {
		if k == kind {
			return true
		}
	}
	if DebugAccessChecks {
		panic(fmt.Sprintf("plugin %s attempted undeclared read of component %v", v.decl.ID, kind))
	}
	return false
}

// Transform returns id's transform state, if id exists and the plugin
// declared Transform as a read.
func (v *WorldView) Transform(id entity.Id) (entity.TransformState, bool) {
	if !v.checkAccess(ComponentTransform) {
		return entity.TransformState{}, false
	}
	e, ok := v.arena.Get(id)
	if !ok {
		return entity.TransformState{}, false
	}
	return e.Transform(), true
}

// Physics returns id's physics state, if id exists, carries one, and the
// plugin declared Physics as a read.
func (v *WorldView) Physics(id entity.Id) (entity.PhysicsState, bool) {
	if !v.checkAccess(ComponentPhysics) {
		return entity.PhysicsState{}, false
	}
	e, ok := v.arena.Get(id)
	if !ok {
		return entity.PhysicsState{}, false
	}
	return e.Physics()
}

// Combat returns id's combat state, if id exists, carries one, and the
// plugin declared Combat as a read.
func (v *WorldView) Combat(id entity.Id) (entity.CombatState, bool) {
	if !v.checkAccess(ComponentCombat) {
		return entity.CombatState{}, false
	}
	e, ok := v.arena.Get(id)
	if !ok {
		return entity.CombatState{}, false
	}
	return e.Combat()
}

// Sensor returns id's sensor state, if id exists, carries one, and the
// plugin declared Sensor as a read.
func (v *WorldView) Sensor(id entity.Id) (entity.SensorState, bool) {
	if !v.checkAccess(ComponentSensor) {
		return entity.SensorState{}, false
	}
	e, ok := v.arena.Get(id)
	if !ok {
		return entity.SensorState{}, false
	}
	return e.Sensor()
}

// Inventory returns id's inventory state, if id exists, carries one, and
// the plugin declared Inventory as a read.
func (v *WorldView) Inventory(id entity.Id) (entity.InventoryState, bool) {
	if !v.checkAccess(ComponentInventory) {
		return entity.InventoryState{}, false
	}
	e, ok := v.arena.Get(id)
	if !ok {
		return entity.InventoryState{}, false
	}
	return e.Inventory()
}

// QueryInRadius returns every entity id within radius of center, in
// ascending id order. Unrestricted by Declaration.Reads: every plugin
// needs spatial lookups to find work.
func (v *WorldView) QueryInRadius(center geometry.Vec2, radius float32) []entity.Id {
	return v.arena.Spatial().QueryRadius(center, radius)
}

// QueryByTag returns every entity id carrying tag, in ascending id order.
// Unrestricted by Declaration.Reads.
func (v *WorldView) QueryByTag(tag entity.Tag) []entity.Id {
	var out []entity.Id
	for _, id := range v.arena.EntitiesSorted() {
		e, ok := v.arena.Get(id)
		if ok && e.Tag() == tag {
			out = append(out, id)
		}
	}
	return out
}
