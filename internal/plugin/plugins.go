package plugin

import (
	"github.com/tachyon-beep/tidebreak/internal/entity"
	"github.com/tachyon-beep/tidebreak/internal/output"
)

// MovementPlugin is the movement plugin for ships and squadrons. It
// declares Transform and Physics reads and Command output, but its Run
// emits nothing, so entities keep their current velocity.
type MovementPlugin struct{}

// NewMovementPlugin constructs a MovementPlugin.
func NewMovementPlugin() *MovementPlugin { return &MovementPlugin{} }

// Declaration implements Plugin.
func (MovementPlugin) Declaration() Declaration {
	return Declaration{
		ID:           "movement",
		RequiredTags: []entity.Tag{entity.TagShip, entity.TagSquadron},
		Reads:        []ComponentKind{ComponentTransform, ComponentPhysics},
		Emits:        []output.Kind{output.KindCommand},
	}
}

// Run implements Plugin. Placeholder: emits no outputs.
func (MovementPlugin) Run(ctx Context, view *WorldView) []output.Output {
	return nil
}

// SensorPlugin reports every entity within radar range as a contact.
type SensorPlugin struct{}

// NewSensorPlugin constructs a SensorPlugin.
func NewSensorPlugin() *SensorPlugin { return &SensorPlugin{} }

// Declaration implements Plugin.
func (SensorPlugin) Declaration() Declaration {
	return Declaration{
		ID:           "sensor",
		RequiredTags: []entity.Tag{entity.TagShip, entity.TagPlatform},
		Reads:        []ComponentKind{ComponentTransform, ComponentSensor},
		Emits:        []output.Kind{output.KindEvent},
	}
}

// Run implements Plugin: emits a ContactDetected event, at tentative
// quality, for every entity within radar range other than self.
func (p SensorPlugin) Run(ctx Context, view *WorldView) []output.Output {
	self := ctx.EntityID
	transform, ok := view.Transform(self)
	if !ok {
		return nil
	}
	sensor, ok := view.Sensor(self)
	if !ok || sensor.RadarRange <= 0 {
		return nil
	}

	var outputs []output.Output
	for _, other := range view.QueryInRadius(transform.Position, sensor.RadarRange) {
		if other == self {
			continue
		}
		outputs = append(outputs, output.ContactDetected{
			Observer: self,
			Target:   other,
			Quality:  entity.TrackTentative,
		})
	}
	return outputs
}

// WeaponPlugin fires every ready weapon at the first tracked contact.
type WeaponPlugin struct{}

// NewWeaponPlugin constructs a WeaponPlugin.
func NewWeaponPlugin() *WeaponPlugin { return &WeaponPlugin{} }

// Declaration implements Plugin.
func (WeaponPlugin) Declaration() Declaration {
	return Declaration{
		ID:           "weapon",
		RequiredTags: []entity.Tag{entity.TagShip, entity.TagSquadron},
		Reads:        []ComponentKind{ComponentTransform, ComponentCombat, ComponentSensor},
		Emits:        []output.Kind{output.KindCommand, output.KindEvent},
	}
}

// Run implements Plugin: for every ready weapon, fires at the first track
// in the entity's own track table, if any.
func (p WeaponPlugin) Run(ctx Context, view *WorldView) []output.Output {
	self := ctx.EntityID
	combat, ok := view.Combat(self)
	if !ok {
		return nil
	}
	sensor, ok := view.Sensor(self)
	if !ok || len(sensor.TrackTable) == 0 {
		return nil
	}
	target := sensor.TrackTable[0].TargetID

	var outputs []output.Output
	for _, w := range combat.Weapons {
		if w.IsReady() {
			outputs = append(outputs, output.FireWeapon{
				Source: self,
				Target: target,
				Slot:   w.Slot,
			})
		}
	}
	return outputs
}

// ProjectilePlugin is the plugin for in-flight projectiles. It declares
// Transform and Physics reads and Command output, but its Run emits
// nothing; projectile motion comes only from the Physics resolver.
type ProjectilePlugin struct{}

// NewProjectilePlugin constructs a ProjectilePlugin.
func NewProjectilePlugin() *ProjectilePlugin { return &ProjectilePlugin{} }

// Declaration implements Plugin.
func (ProjectilePlugin) Declaration() Declaration {
	return Declaration{
		ID:           "projectile",
		RequiredTags: []entity.Tag{entity.TagProjectile},
		Reads:        []ComponentKind{ComponentTransform, ComponentPhysics},
		Emits:        []output.Kind{output.KindCommand},
	}
}

// Run implements Plugin. Placeholder: emits no outputs.
func (ProjectilePlugin) Run(ctx Context, view *WorldView) []output.Output {
	return nil
}
