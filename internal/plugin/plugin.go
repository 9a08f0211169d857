// Package plugin defines the read-only plugin contract: a declaration of
// which entity tags, components, and output kinds a plugin touches, a
// pure run function over a scoped WorldView, and a registry that bundles
// plugins by entity tag.
package plugin

import (
	"github.com/tachyon-beep/tidebreak/internal/entity"
	"github.com/tachyon-beep/tidebreak/internal/output"
)

// ComponentKind names a component group a plugin may declare it reads,
// scoping what its WorldView grants access to.
type ComponentKind int

const (
	ComponentTransform ComponentKind = iota
	ComponentPhysics
	ComponentCombat
	ComponentSensor
	ComponentInventory
)

// Declaration is a plugin's static manifest: its identity, which entity
// tags it runs on, which components it reads, and which output kinds it
// emits.
type Declaration struct {
	ID           output.PluginId
	RequiredTags []entity.Tag
	Reads        []ComponentKind
	Emits        []output.Kind
}

// RunsOn reports whether the plugin is eligible to run on entities with
// the given tag.
func (d Declaration) RunsOn(tag entity.Tag) bool {
	for _, t := range d.RequiredTags {
		if t == tag {
			return true
		}
	}
	return false
}

// Context carries the per-work-item identity a plugin's run function
// needs: which entity it is running on, the current tick, and this
// work item's deterministic trace id.
type Context struct {
	EntityID entity.Id
	Tick     uint64
	TraceID  output.TraceId
}

// Plugin is a pure, read-only producer of Output proposals.
type Plugin interface {
	Declaration() Declaration
	Run(ctx Context, view *WorldView) []output.Output
}

// Registry bundles plugins by the entity tag they run on.
type Registry struct {
	byTag map[entity.Tag][]Plugin
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{byTag: make(map[entity.Tag][]Plugin)}
}

// Register adds plugin to tag's bundle, in registration order.
func (r *Registry) Register(tag entity.Tag, p Plugin) {
	r.byTag[tag] = append(r.byTag[tag], p)
}

// PluginsFor returns the plugins registered for tag, in registration
// order.
func (r *Registry) PluginsFor(tag entity.Tag) []Plugin {
	return r.byTag[tag]
}

// DefaultBundles builds the reference default plugin registry: Ship runs
// Movement, Weapon, and Sensor; Platform runs Sensor; Projectile runs
// Projectile; Squadron runs Movement and Weapon.
func DefaultBundles() *Registry {
	r := NewRegistry()
	movement := NewMovementPlugin()
	weapon := NewWeaponPlugin()
	sensor := NewSensorPlugin()
	projectile := NewProjectilePlugin()

	r.Register(entity.TagShip, movement)
	r.Register(entity.TagShip, weapon)
	r.Register(entity.TagShip, sensor)

	r.Register(entity.TagPlatform, sensor)

	r.Register(entity.TagProjectile, projectile)

	r.Register(entity.TagSquadron, movement)
	r.Register(entity.TagSquadron, weapon)

	return r
}
