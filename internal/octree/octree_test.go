package octree

import (
	"testing"

	"github.com/tachyon-beep/tidebreak/internal/field"
	"github.com/tachyon-beep/tidebreak/internal/geometry"
)

func smallConfig() Config {
	bounds := geometry.NewBounds(16, 16, 16)
	cfg := Config{
		Bounds:         bounds,
		BaseResolution: 1.0,
		MergeThreshold: 0.001,
		SplitThreshold: 0.1,
	}
	cfg.MaxDepth = CalculateMaxDepth(bounds, cfg.BaseResolution)
	return cfg
}

func TestNewOctreeRootIsEmpty(t *testing.T) {
	tr := NewWithConfig(smallConfig())
	if !tr.Root().IsEmpty() {
		t.Fatalf("expected fresh octree root to be Empty")
	}
	stats := tr.Stats()
	if stats.NodeCount != 1 || stats.LeafCount != 0 {
		t.Fatalf("expected 1 node / 0 leaves, got %+v", stats)
	}
}

func TestQueryPointOnEmptyTreeReturnsDefaults(t *testing.T) {
	tr := NewWithConfig(smallConfig())
	values := tr.QueryPoint(geometry.NewVec3(0, 0, 0))
	want := field.DefaultConfigFor(field.Temperature).Default
	if values.Get(field.Temperature) != want {
		t.Fatalf("expected default temperature %v, got %v", want, values.Get(field.Temperature))
	}
}

func TestSetPointThenQueryPointRoundTrips(t *testing.T) {
	tr := NewWithConfig(smallConfig())
	var values field.Values
	values.Set(field.Temperature, 500)
	point := geometry.NewVec3(1, 1, 1)

	tr.SetPoint(point, values)
	got := tr.QueryPoint(point)
	if got.Get(field.Temperature) != 500 {
		t.Fatalf("expected temperature 500 after SetPoint, got %v", got.Get(field.Temperature))
	}

	stats := tr.Stats()
	if stats.LeafCount == 0 {
		t.Fatalf("expected at least one leaf after SetPoint")
	}
}

func TestApplyStampRaisesTemperatureNearCenter(t *testing.T) {
	tr := NewWithConfig(smallConfig())
	stamp := ExplosionStamp(geometry.NewVec3(0, 0, 0), 4)
	tr.ApplyStamp(stamp)

	center := tr.QueryPoint(geometry.NewVec3(0, 0, 0))
	if center.Get(field.Temperature) <= field.DefaultConfigFor(field.Temperature).Default {
		t.Fatalf("expected explosion stamp to raise temperature at its center, got %v", center.Get(field.Temperature))
	}

	far := tr.QueryPoint(geometry.NewVec3(7, 7, 7))
	if far.Get(field.Temperature) != field.DefaultConfigFor(field.Temperature).Default {
		t.Fatalf("expected temperature far outside the stamp to remain default, got %v", far.Get(field.Temperature))
	}
}

func TestApplyStampOutsideBoundsIsNoOp(t *testing.T) {
	tr := NewWithConfig(smallConfig())
	stamp := ExplosionStamp(geometry.NewVec3(1000, 1000, 1000), 2)
	tr.ApplyStamp(stamp)

	if !tr.Root().IsEmpty() {
		t.Fatalf("expected stamp entirely outside bounds to leave the tree empty")
	}
}

func TestCollectLeavesOrderedAndNonOverlapping(t *testing.T) {
	tr := NewWithConfig(smallConfig())
	tr.ApplyStamp(ExplosionStamp(geometry.NewVec3(0, 0, 0), 3))

	leaves := tr.CollectLeaves()
	if len(leaves) == 0 {
		t.Fatalf("expected at least one leaf after a stamp")
	}
	for _, leaf := range leaves {
		if !leaf.IsLeaf() {
			t.Fatalf("CollectLeaves returned a non-leaf node")
		}
	}
}

func TestQueryVolumeAggregatesStampedRegion(t *testing.T) {
	tr := NewWithConfig(smallConfig())
	tr.ApplyStamp(ExplosionStamp(geometry.NewVec3(0, 0, 0), 4))

	result := tr.QueryVolume(VolumeQuery{
		Shape:      Sphere{Center: geometry.NewVec3(0, 0, 0), Radius: 4},
		Resolution: Full(),
	})
	if result.NodesVisited == 0 {
		t.Fatalf("expected QueryVolume to visit at least one node")
	}
	if result.Stats.Get(field.Temperature).Max <= field.DefaultConfigFor(field.Temperature).Default {
		t.Fatalf("expected stamped region's max temperature to exceed default")
	}
}

func TestFindNeighborStepsByCellSize(t *testing.T) {
	tr := NewWithConfig(smallConfig())
	tr.SetPoint(geometry.NewVec3(0, 0, 0), field.Values{})

	n := tr.FindNeighbor(geometry.NewVec3(0, 0, 0), DirPosX)
	if n == nil {
		t.Fatalf("expected a neighbor within bounds")
	}
}

func TestFindNeighborOutsideBoundsIsNil(t *testing.T) {
	tr := NewWithConfig(smallConfig())
	far := geometry.NewVec3(7.9, 0, 0)
	tr.SetPoint(far, field.Values{})

	n := tr.FindNeighbor(far, DirPosX)
	if n != nil {
		t.Fatalf("expected neighbor past the tree's bounds to be nil")
	}
}
