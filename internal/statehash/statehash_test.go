package statehash

import (
	"testing"

	"github.com/tachyon-beep/tidebreak/internal/geometry"
	"github.com/tachyon-beep/tidebreak/internal/octree"
)

func TestHashUniverseIsDeterministic(t *testing.T) {
	root1 := octree.NewNode(geometry.DefaultBounds(), 0)
	root2 := octree.NewNode(geometry.DefaultBounds(), 0)

	h1 := HashUniverse(5, 1.5, 42, true, root1)
	h2 := HashUniverse(5, 1.5, 42, true, root2)
	if h1 != h2 {
		t.Fatalf("expected identical inputs to hash identically, got %d and %d", h1, h2)
	}
}

func TestHashUniverseDiffersOnSeed(t *testing.T) {
	root := octree.NewNode(geometry.DefaultBounds(), 0)
	h1 := HashUniverse(5, 1.5, 42, true, root)
	h2 := HashUniverse(5, 1.5, 43, true, root)
	if h1 == h2 {
		t.Fatalf("expected different seeds to hash differently")
	}
}

func TestHashUniverseDiffersOnTick(t *testing.T) {
	root := octree.NewNode(geometry.DefaultBounds(), 0)
	h1 := HashUniverse(5, 1.5, 42, true, root)
	h2 := HashUniverse(6, 1.5, 42, true, root)
	if h1 == h2 {
		t.Fatalf("expected different ticks to hash differently")
	}
}

func TestHashUniverseChangesAfterStamp(t *testing.T) {
	tr := octree.NewWithConfig(octree.DefaultConfig())
	before := HashUniverse(0, 0, 42, true, tr.Root())

	tr.ApplyStamp(octree.ExplosionStamp(geometry.NewVec3(0, 0, 0), 10))
	after := HashUniverse(0, 0, 42, true, tr.Root())

	if before == after {
		t.Fatalf("expected stamping the octree to change its hash")
	}
}

func TestHashTraceIsDeterministicAndSensitiveToEachInput(t *testing.T) {
	base := HashTrace(1, 2, 3, 4)
	if HashTrace(1, 2, 3, 4) != base {
		t.Fatalf("expected identical inputs to produce identical trace ids")
	}
	if HashTrace(9, 2, 3, 4) == base {
		t.Fatalf("expected a different seed to change the trace id")
	}
	if HashTrace(1, 9, 3, 4) == base {
		t.Fatalf("expected a different tick to change the trace id")
	}
	if HashTrace(1, 2, 9, 4) == base {
		t.Fatalf("expected a different entity id to change the trace id")
	}
	if HashTrace(1, 2, 3, 9) == base {
		t.Fatalf("expected a different plugin index to change the trace id")
	}
}
