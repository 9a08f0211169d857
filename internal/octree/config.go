package octree

import (
	"math"

	"github.com/tachyon-beep/tidebreak/internal/geometry"
)

// Config is the octree's structural configuration: its world bounds, the
// finest cell size, the derived maximum depth, and the split/merge
// variance thresholds.
type Config struct {
	Bounds         geometry.Bounds
	BaseResolution float32
	MaxDepth       int
	MergeThreshold float32
	SplitThreshold float32
}

// DefaultConfig is the reference implementation's default OctreeConfig:
// 1024x1024x256 bounds, base resolution 1.0, merge threshold 0.02, split
// threshold 0.1, with MaxDepth derived by CalculateMaxDepth.
func DefaultConfig() Config {
	bounds := geometry.NewBounds(1024, 1024, 256)
	cfg := Config{
		Bounds:         bounds,
		BaseResolution: 1.0,
		MergeThreshold: 0.02,
		SplitThreshold: 0.1,
	}
	cfg.MaxDepth = CalculateMaxDepth(bounds, cfg.BaseResolution)
	return cfg
}

// CalculateMaxDepth derives the maximum octree depth from the world bounds
// and the finest desired cell size: min(16, ceil(log2(maxDim /
// baseResolution))).
func CalculateMaxDepth(bounds geometry.Bounds, baseResolution float32) int {
	size := bounds.Size()
	maxDim := size.X
	if size.Y > maxDim {
		maxDim = size.Y
	}
	if size.Z > maxDim {
		maxDim = size.Z
	}
	ratio := float64(maxDim) / float64(baseResolution)
	depth := int(math.Ceil(math.Log2(ratio)))
	if depth > 16 {
		depth = 16
	}
	if depth < 0 {
		depth = 0
	}
	return depth
}
