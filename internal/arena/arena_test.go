package arena

import (
	"testing"

	"github.com/tachyon-beep/tidebreak/internal/entity"
	"github.com/tachyon-beep/tidebreak/internal/geometry"
)

func TestSpawnAssignsMonotonicIds(t *testing.T) {
	a := New()
	id1 := a.Spawn(entity.TagShip, entity.NewShipInner(entity.ShipComponents{}))
	id2 := a.Spawn(entity.TagShip, entity.NewShipInner(entity.ShipComponents{}))
	if !(id1 < id2) {
		t.Fatalf("expected ids to be assigned in increasing order, got %v then %v", id1, id2)
	}
	if a.Len() != 2 {
		t.Fatalf("expected 2 entities, got %d", a.Len())
	}
}

func TestDespawnRemovesFromArenaAndSpatialIndex(t *testing.T) {
	a := New()
	id := a.Spawn(entity.TagShip, entity.NewShipInner(entity.ShipComponents{}))

	if !a.Despawn(id) {
		t.Fatalf("expected despawn of a live id to succeed")
	}
	if _, ok := a.Get(id); ok {
		t.Fatalf("expected entity to be gone after despawn")
	}
	if a.Despawn(id) {
		t.Fatalf("expected despawn of an already-gone id to report false")
	}
}

func TestEntitiesSortedIsDeterministic(t *testing.T) {
	a := New()
	var ids []entity.Id
	for i := 0; i < 5; i++ {
		ids = append(ids, a.Spawn(entity.TagShip, entity.NewShipInner(entity.ShipComponents{})))
	}
	sorted := a.EntitiesSorted()
	if len(sorted) != len(ids) {
		t.Fatalf("expected %d entities, got %d", len(ids), len(sorted))
	}
	for i := 1; i < len(sorted); i++ {
		if !(sorted[i-1] < sorted[i]) {
			t.Fatalf("expected ascending order, got %v", sorted)
		}
	}
}

func TestUpdateSpatialRequiredAfterManualPositionChange(t *testing.T) {
	a := New()
	id := a.Spawn(entity.TagShip, entity.NewShipInner(entity.ShipComponents{}))

	e, ok := a.Get(id)
	if !ok {
		t.Fatalf("expected spawned entity to be present")
	}
	e.SetTransform(entity.TransformState{Position: geometry.NewVec2(100, 100)})

	// Without UpdateSpatial, the index still reflects the stale position.
	stale := a.Spatial().QueryRadius(geometry.NewVec2(0, 0), 1)
	if len(stale) != 1 {
		t.Fatalf("expected the index to still report the stale position, got %v", stale)
	}

	a.UpdateSpatial(id)
	moved := a.Spatial().QueryRadius(geometry.NewVec2(100, 100), 1)
	if len(moved) != 1 || moved[0] != id {
		t.Fatalf("expected the index to reflect the new position after UpdateSpatial, got %v", moved)
	}
}

func TestCloneIsIndependentOfOriginal(t *testing.T) {
	a := New()
	id := a.Spawn(entity.TagShip, entity.NewShipInner(entity.ShipComponents{
		Transform: entity.TransformState{Position: geometry.NewVec2(1, 1)},
	}))

	clone := a.Clone()
	e, _ := clone.Get(id)
	e.SetTransform(entity.TransformState{Position: geometry.NewVec2(9, 9)})
	clone.UpdateSpatial(id)

	original, _ := a.Get(id)
	if original.Transform().Position != geometry.NewVec2(1, 1) {
		t.Fatalf("expected original entity unaffected by clone mutation, got %+v", original.Transform())
	}
	if len(a.Spatial().QueryRadius(geometry.NewVec2(9, 9), 1)) != 0 {
		t.Fatalf("expected original spatial index unaffected by clone's reindex")
	}
	if len(clone.Spatial().QueryRadius(geometry.NewVec2(9, 9), 1)) != 1 {
		t.Fatalf("expected clone's spatial index to reflect its own mutation")
	}
}

func TestRestoreRebuildsArenaAndSpatialIndex(t *testing.T) {
	a := New()
	a.Spawn(entity.TagShip, entity.NewShipInner(entity.ShipComponents{
		Transform: entity.TransformState{Position: geometry.NewVec2(5, 5)},
	}))
	a.Spawn(entity.TagPlatform, entity.NewPlatformInner(entity.PlatformComponents{}))

	entities := make([]*entity.Entity, 0, a.Len())
	for _, id := range a.EntitiesSorted() {
		e, _ := a.Get(id)
		entities = append(entities, e)
	}

	restored := Restore(entities, a.NextID())
	if restored.Len() != a.Len() {
		t.Fatalf("expected %d entities, got %d", a.Len(), restored.Len())
	}
	if restored.NextID() != a.NextID() {
		t.Fatalf("expected next id %d, got %d", a.NextID(), restored.NextID())
	}
	found := restored.Spatial().QueryRadius(geometry.NewVec2(5, 5), 1)
	if len(found) != 1 {
		t.Fatalf("expected the spatial index to be rebuilt from entity positions, got %v", found)
	}
}

func TestQueryRadiusOrderedByID(t *testing.T) {
	s := NewSpatialIndex()
	s.Update(entity.Id(3), geometry.NewVec2(0, 0))
	s.Update(entity.Id(1), geometry.NewVec2(0, 0))
	s.Update(entity.Id(2), geometry.NewVec2(0, 0))

	got := s.QueryRadius(geometry.NewVec2(0, 0), 1)
	want := []entity.Id{1, 2, 3}
	if len(got) != len(want) {
		t.Fatalf("expected %d results, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected ordered ids %v, got %v", want, got)
		}
	}
}
