package field

import (
	"testing"

	"github.com/tachyon-beep/tidebreak/internal/field"
	"github.com/tachyon-beep/tidebreak/internal/geometry"
	"github.com/tachyon-beep/tidebreak/internal/octree"
)

func configWithBounds(width, height, depth, baseResolution float32) octree.Config {
	bounds := geometry.NewBounds(width, height, depth)
	cfg := octree.Config{
		Bounds:         bounds,
		BaseResolution: baseResolution,
		MergeThreshold: 0.02,
		SplitThreshold: 0.1,
	}
	cfg.MaxDepth = octree.CalculateMaxDepth(bounds, baseResolution)
	return cfg
}

func TestUniverseFireStampRaisesTemperatureAndSmokeNearOrigin(t *testing.T) {
	u := NewUniverse(configWithBounds(100, 100, 100, 1.0))

	u.Stamp(octree.FireStamp(geometry.NewVec3(0, 0, 0), 10))

	result := u.QueryVolume(geometry.NewVec3(0, 0, 0), 15, octree.Fine())
	means := result.Stats.Means()
	if means.Get(field.Temperature) <= 293 {
		t.Fatalf("expected elevated temperature near the stamp, got %v", means.Get(field.Temperature))
	}
	if means.Get(field.Smoke) <= 0 {
		t.Fatalf("expected nonzero smoke near the stamp, got %v", means.Get(field.Smoke))
	}

	edge := u.QueryPoint(geometry.NewVec3(50, 0, 0))
	defaults := field.DefaultValues(field.DefaultConfigs())
	if edge.Values != defaults {
		t.Fatalf("expected defaults on the +x face untouched by the stamp, got %+v", edge.Values)
	}
}

func TestUniverseCoolsOverTimeAfterTemperatureStamp(t *testing.T) {
	u := NewUniverse(configWithBounds(64, 64, 32, 8))

	u.Stamp(octree.Stamp{
		Shape:         octree.Sphere{Center: geometry.NewVec3(0, 0, 0), Radius: 15},
		Modifications: []octree.FieldMod{octree.SetMod(field.Temperature, 800)},
		Falloff:       false,
	})

	baseline := u.QueryPoint(geometry.NewVec3(0, 0, 0))
	t0 := baseline.Values.Get(field.Temperature)
	if t0 <= 500 {
		t.Fatalf("expected baseline temperature > 500, got %v", t0)
	}

	for i := 0; i < 10; i++ {
		u.Step(0.5)
	}

	cooled := u.QueryPoint(geometry.NewVec3(0, 0, 0)).Values.Get(field.Temperature)
	if cooled >= t0 {
		t.Fatalf("expected temperature at origin to have cooled below %v, got %v", t0, cooled)
	}

	diffused := u.QueryPoint(geometry.NewVec3(10, 0, 0)).Values.Get(field.Temperature)
	delta := diffused - t0
	if delta < 0 {
		delta = -delta
	}
	if delta <= 1 {
		t.Fatalf("expected temperature at (10,0,0) to differ from baseline by more than 1K, got delta %v", delta)
	}
}

func buildDeterminismUniverse() *Universe {
	cfg := configWithBounds(100, 100, 50, 1.0)
	u := NewUniverseSeeded(cfg, 12345)
	u.Stamp(octree.ExplosionStamp(geometry.NewVec3(10, 20, 5), 15))
	u.Stamp(octree.FireStamp(geometry.NewVec3(-5, 0, 0), 8))
	return u
}

func TestUniverseStateHashMatchesAcrossIdenticalUniverses(t *testing.T) {
	a := buildDeterminismUniverse()
	b := buildDeterminismUniverse()

	for i := 0; i < 10; i++ {
		a.Step(0.1)
		b.Step(0.1)
	}

	if a.StateHash() != b.StateHash() {
		t.Fatalf("expected equal state hashes, got %d vs %d", a.StateHash(), b.StateHash())
	}
}

func TestUniverseResetRestoresInitialStateHash(t *testing.T) {
	cfg := configWithBounds(100, 100, 50, 1.0)
	u := NewUniverseSeeded(cfg, 99)
	initial := u.StateHash()

	u.Stamp(octree.FireStamp(geometry.NewVec3(0, 0, 0), 10))
	u.Step(0.1)
	if u.StateHash() == initial {
		t.Fatalf("expected state hash to change after stamping and stepping")
	}

	u.Reset()
	if u.StateHash() != initial {
		t.Fatalf("expected reset to restore the initial state hash")
	}
	if u.Tick() != 0 {
		t.Fatalf("expected tick to be reset to 0, got %d", u.Tick())
	}
}
