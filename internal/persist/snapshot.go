// Package persist implements the optional serialized snapshot form of a
// Universe and an Arena described in SPEC_FULL.md §6.3: a stable,
// bit-exact-preserving round trip guarded by an advisory file lock, so a
// concurrent writer fails loudly instead of corrupting the file.
package persist

import (
	"github.com/tachyon-beep/tidebreak/internal/entity"
	"github.com/tachyon-beep/tidebreak/internal/field"
	"github.com/tachyon-beep/tidebreak/internal/geometry"
	"github.com/tachyon-beep/tidebreak/internal/octree"
)

// nodeSnapshot mirrors one octree.Node, recursively, in a gob-friendly
// shape (Node's kind-specific fields are unexported, so the snapshot
// copies out of the accessor surface rather than the struct itself).
type nodeSnapshot struct {
	Bounds   geometry.Bounds
	Depth    int
	Kind     octree.Kind
	Values   field.Values
	Children [8]*nodeSnapshot
}

func snapshotNode(n *octree.Node) *nodeSnapshot {
	if n == nil {
		return nil
	}
	s := &nodeSnapshot{Bounds: n.Bounds, Depth: n.Depth, Kind: n.Kind}
	switch n.Kind {
	case octree.KindLeaf:
		s.Values = n.Values()
	case octree.KindInternal:
		for i := 0; i < 8; i++ {
			s.Children[i] = snapshotNode(n.Child(i))
		}
	}
	return s
}

func (s *nodeSnapshot) restore() *octree.Node {
	if s == nil {
		return nil
	}
	var children [8]*octree.Node
	if s.Kind == octree.KindInternal {
		for i := 0; i < 8; i++ {
			children[i] = s.Children[i].restore()
		}
	}
	return octree.RestoreNode(s.Bounds, s.Depth, s.Kind, s.Values, children)
}

// UniverseSnapshot is the serializable form of a field.Universe: its
// configuration, simulation clock, optional seed, and complete octree
// contents.
type UniverseSnapshot struct {
	Config  octree.Config
	Tick    uint64
	SimTime float32
	Seed    uint64
	HasSeed bool
	Root    *nodeSnapshot
}

// entitySnapshot is the serializable form of an entity.Entity: the tag
// selects which of the four component pointers is populated.
type entitySnapshot struct {
	ID         entity.Id
	Tag        entity.Tag
	Ship       *entity.ShipComponents
	Platform   *entity.PlatformComponents
	Projectile *entity.ProjectileComponents
	Squadron   *entity.SquadronComponents
}

func snapshotEntity(e *entity.Entity) entitySnapshot {
	s := entitySnapshot{ID: e.ID(), Tag: e.Tag()}
	switch e.Tag() {
	case entity.TagShip:
		c, _ := e.AsShip()
		cp := *c
		s.Ship = &cp
	case entity.TagPlatform:
		c, _ := e.AsPlatform()
		cp := *c
		s.Platform = &cp
	case entity.TagProjectile:
		c, _ := e.AsProjectile()
		cp := *c
		s.Projectile = &cp
	case entity.TagSquadron:
		c, _ := e.AsSquadron()
		cp := *c
		s.Squadron = &cp
	}
	return s
}

func (s entitySnapshot) restore() entity.Entity {
	var inner entity.Inner
	switch s.Tag {
	case entity.TagShip:
		inner = entity.NewShipInner(*s.Ship)
	case entity.TagPlatform:
		inner = entity.NewPlatformInner(*s.Platform)
	case entity.TagProjectile:
		inner = entity.NewProjectileInner(*s.Projectile)
	case entity.TagSquadron:
		inner = entity.NewSquadronInner(*s.Squadron)
	}
	return entity.New(s.ID, s.Tag, inner)
}

// ArenaSnapshot is the serializable form of an arena.Arena: every entity,
// in spawn order, plus the next id to be assigned. The spatial index is
// not persisted; it is rebuilt deterministically from entity positions
// on load.
type ArenaSnapshot struct {
	Entities []entitySnapshot
	NextID   entity.Id
}
