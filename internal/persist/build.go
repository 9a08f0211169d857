package persist

import (
	"github.com/tachyon-beep/tidebreak/internal/arena"
	"github.com/tachyon-beep/tidebreak/internal/entity"
	"github.com/tachyon-beep/tidebreak/internal/octree"
)

// BuildUniverseSnapshot captures a complete, serializable snapshot of an
// octree and the simulation clock/seed that accompany it in a
// field.Universe.
func BuildUniverseSnapshot(tree *octree.Octree, tick uint64, simTime float32, seed uint64, hasSeed bool) UniverseSnapshot {
	return UniverseSnapshot{
		Config:  tree.Config(),
		Tick:    tick,
		SimTime: simTime,
		Seed:    seed,
		HasSeed: hasSeed,
		Root:    snapshotNode(tree.Root()),
	}
}

// RestoreTree rebuilds a live *octree.Octree from a UniverseSnapshot.
func RestoreTree(s UniverseSnapshot) *octree.Octree {
	return octree.NewFromRoot(s.Root.restore(), s.Config)
}

// BuildArenaSnapshot captures a complete, serializable snapshot of an
// arena: every entity in ascending id order plus the next id to assign.
func BuildArenaSnapshot(a *arena.Arena) ArenaSnapshot {
	ids := a.EntitiesSorted()
	snapshot := ArenaSnapshot{
		Entities: make([]entitySnapshot, 0, len(ids)),
		NextID:   a.NextID(),
	}
	for _, id := range ids {
		e, ok := a.Get(id)
		if !ok {
			continue
		}
		snapshot.Entities = append(snapshot.Entities, snapshotEntity(e))
	}
	return snapshot
}

// RestoreArena rebuilds a live *arena.Arena from an ArenaSnapshot.
func RestoreArena(s ArenaSnapshot) *arena.Arena {
	entities := make([]*entity.Entity, len(s.Entities))
	for i, es := range s.Entities {
		e := es.restore()
		entities[i] = &e
	}
	return arena.Restore(entities, s.NextID)
}
