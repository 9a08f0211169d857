package arena

import (
	"sort"

	"github.com/tachyon-beep/tidebreak/internal/entity"
	"github.com/tachyon-beep/tidebreak/internal/geometry"
)

// SpatialIndex is a flat proximity index over entity positions. It is not
// automatically kept in sync with an entity's Transform: spawning and
// despawning update it, but any other position change requires an
// explicit Arena.UpdateSpatial call. This lets callers batch many
// position edits and resync once before querying.
type SpatialIndex struct {
	positions map[entity.Id]geometry.Vec2
}

// NewSpatialIndex creates an empty index.
func NewSpatialIndex() *SpatialIndex {
	return &SpatialIndex{positions: make(map[entity.Id]geometry.Vec2)}
}

// Update records id's current position.
func (s *SpatialIndex) Update(id entity.Id, position geometry.Vec2) {
	s.positions[id] = position
}

// Remove drops id from the index.
func (s *SpatialIndex) Remove(id entity.Id) {
	delete(s.positions, id)
}

// QueryRadius returns every indexed entity within radius of center,
// ordered by ascending entity id for determinism.
func (s *SpatialIndex) QueryRadius(center geometry.Vec2, radius float32) []entity.Id {
	r2 := radius * radius
	var out []entity.Id
	for id, pos := range s.positions {
		if pos.DistanceSquared(center) <= r2 {
			out = append(out, id)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Len returns the number of indexed entities.
func (s *SpatialIndex) Len() int { return len(s.positions) }
