// Package arena is the container for all entities in a simulation: it
// provides entity storage with deterministic iteration order, a spatial
// index for proximity queries, and spawn/despawn lifecycle management.
package arena

import (
	"github.com/tachyon-beep/tidebreak/internal/entity"
)

// Arena stores every entity in a simulation, keyed by its monotonically
// increasing id. Go has no ordered-map type, so order is maintained by a
// parallel id slice: since ids are only ever assigned by the arena's own
// incrementing counter, appending on spawn keeps that slice sorted
// without needing to re-sort on every insert.
type Arena struct {
	entities map[entity.Id]*entity.Entity
	order    []entity.Id
	nextID   entity.Id
	spatial  *SpatialIndex
}

// New creates an empty arena.
func New() *Arena {
	return &Arena{
		entities: make(map[entity.Id]*entity.Entity),
		spatial:  NewSpatialIndex(),
	}
}

// Spawn creates a new entity with the given tag and component storage,
// assigns it the next monotonic id, and indexes its initial position.
func (a *Arena) Spawn(tag entity.Tag, inner entity.Inner) entity.Id {
	id := a.nextID
	a.nextID++

	e := entity.New(id, tag, inner)
	a.entities[id] = &e
	a.order = append(a.order, id)
	a.spatial.Update(id, e.Transform().Position)
	return id
}

// Despawn removes an entity and its spatial-index entry. Returns false if
// id was not present.
func (a *Arena) Despawn(id entity.Id) bool {
	if _, ok := a.entities[id]; !ok {
		return false
	}
	delete(a.entities, id)
	a.spatial.Remove(id)
	for i, existing := range a.order {
		if existing == id {
			a.order = append(a.order[:i], a.order[i+1:]...)
			break
		}
	}
	return true
}

// Get returns the entity with the given id, if present.
func (a *Arena) Get(id entity.Id) (*entity.Entity, bool) {
	e, ok := a.entities[id]
	return e, ok
}

// UpdateSpatial resyncs the spatial index with id's current Transform
// position. Must be called after any position change made through a
// pointer returned by Get, other than spawn/despawn which sync
// automatically.
func (a *Arena) UpdateSpatial(id entity.Id) {
	e, ok := a.entities[id]
	if !ok {
		return
	}
	a.spatial.Update(id, e.Transform().Position)
}

// Spatial returns the arena's spatial index.
func (a *Arena) Spatial() *SpatialIndex { return a.spatial }

// EntitiesSorted returns every entity id in ascending order.
func (a *Arena) EntitiesSorted() []entity.Id {
	out := make([]entity.Id, len(a.order))
	copy(out, a.order)
	return out
}

// Len returns the number of entities currently in the arena.
func (a *Arena) Len() int { return len(a.entities) }

// NextID returns the id that will be assigned to the next spawned entity.
func (a *Arena) NextID() entity.Id { return a.nextID }

// Restore rebuilds an arena from a list of already-constructed entities
// (in ascending id order) and the next id to assign, reindexing the
// spatial index from each entity's current position. Used by
// internal/persist to reconstruct an arena from a serialized snapshot.
func Restore(entities []*entity.Entity, nextID entity.Id) *Arena {
	a := New()
	a.nextID = nextID
	for _, e := range entities {
		id := e.ID()
		a.entities[id] = e
		a.order = append(a.order, id)
		a.spatial.Update(id, e.Transform().Position)
	}
	return a
}

// Clone returns a copy of the arena with independent entity storage, id
// order, and spatial index: each entity's component struct is copied, so
// setting a component on a cloned entity never affects the original.
// Slice and map fields inside components (weapons, track table,
// ammunition) still share their backing storage with the original. Used
// by the scheduler to build the resolve phase's `next` snapshot from
// `current`.
func (a *Arena) Clone() *Arena {
	clone := &Arena{
		entities: make(map[entity.Id]*entity.Entity, len(a.entities)),
		order:    make([]entity.Id, len(a.order)),
		nextID:   a.nextID,
		spatial:  NewSpatialIndex(),
	}
	copy(clone.order, a.order)
	for id, e := range a.entities {
		copied := *e
		switch inner := e.Inner(); inner.Tag() {
		case entity.TagShip:
			c, _ := inner.AsShip()
			copied.SetInner(entity.NewShipInner(*c))
		case entity.TagPlatform:
			c, _ := inner.AsPlatform()
			copied.SetInner(entity.NewPlatformInner(*c))
		case entity.TagProjectile:
			c, _ := inner.AsProjectile()
			copied.SetInner(entity.NewProjectileInner(*c))
		case entity.TagSquadron:
			c, _ := inner.AsSquadron()
			copied.SetInner(entity.NewSquadronInner(*c))
		}
		clone.entities[id] = &copied
		clone.spatial.Update(id, copied.Transform().Position)
	}
	return clone
}
