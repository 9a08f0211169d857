package octree

import (
	"math"
	"testing"

	"github.com/tachyon-beep/tidebreak/internal/field"
	"github.com/tachyon-beep/tidebreak/internal/geometry"
)

func geometryOrigin() geometry.Vec3 {
	return geometry.NewVec3(0, 0, 0)
}

func TestApplyDecayRelaxesTowardDefault(t *testing.T) {
	got := applyDecay(100, 0, 1.0, 1.0)
	want := float32(100 * math.Exp(-1))
	if d := got - want; d > 1e-3 || d < -1e-3 {
		t.Errorf("got %v want %v", got, want)
	}
}

func TestApplyDecayAtZeroRateIsNoOp(t *testing.T) {
	got := applyDecay(50, 0, 0, 1.0)
	if got != 50 {
		t.Errorf("expected zero decay rate to leave the value unchanged, got %v", got)
	}
}

func TestApplyDiffusionEqualNeighborsIsNoOp(t *testing.T) {
	neighbors := []float32{10, 10, 10, 10}
	got := applyDiffusion(10, neighbors, 0.5, 1.0)
	if got != 10 {
		t.Errorf("expected uniform neighbors to leave the value unchanged, got %v", got)
	}
}

func TestApplyDiffusionMovesTowardNeighborAverage(t *testing.T) {
	neighbors := []float32{20, 20, 20, 20}
	got := applyDiffusion(0, neighbors, 0.1, 1.0)
	if got <= 0 || got >= 20 {
		t.Errorf("expected diffusion to move partway toward the neighbor average, got %v", got)
	}
}

func TestStepDecaysNoiseTowardDefault(t *testing.T) {
	tr := NewWithConfig(smallConfig())
	tr.ApplyStamp(ExplosionStamp(geometryOrigin(), 2))

	before := tr.QueryPoint(geometryOrigin()).Get(field.Noise)

	for i := 0; i < 5; i++ {
		tr.Step(1.0)
	}
	after := tr.QueryPoint(geometryOrigin()).Get(field.Noise)

	if after >= before {
		t.Errorf("expected decaying field noise to fall after stepping, before=%v after=%v", before, after)
	}
}

func TestStepLeavesNonPropagatingFieldsUnchanged(t *testing.T) {
	tr := NewWithConfig(smallConfig())
	var values field.Values
	values.Set(field.Occupancy, 1)
	tr.SetPoint(geometryOrigin(), values)

	tr.Step(1.0)
	got := tr.QueryPoint(geometryOrigin()).Get(field.Occupancy)
	if got != 1 {
		t.Errorf("expected occupancy (no propagation rule) to remain unchanged, got %v", got)
	}
}
