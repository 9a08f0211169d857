// Package entity defines the Entity-Plugin-Resolver architecture's core
// entity types: EntityId, EntityTag, the per-tag component structs, and
// the Entity container that pairs a tag with its type-specific storage.
package entity

import "fmt"

// Id is an entity's unique, immutable identifier. Ids are ordered by
// numeric value, which is what the scheduler uses to produce a
// deterministic iteration order across all entities.
type Id uint64

// String renders the id in its canonical decimal form.
func (id Id) String() string {
	return fmt.Sprintf("%d", uint64(id))
}

// Tag classifies an entity for plugin-bundle selection, decoupled from its
// concrete component storage.
type Tag int

const (
	TagShip Tag = iota
	TagPlatform
	TagProjectile
	TagSquadron
)

func (t Tag) String() string {
	switch t {
	case TagShip:
		return "Ship"
	case TagPlatform:
		return "Platform"
	case TagProjectile:
		return "Projectile"
	case TagSquadron:
		return "Squadron"
	default:
		return "Unknown"
	}
}
