package octree

import "github.com/tachyon-beep/tidebreak/internal/geometry"

// Direction is one of the four cardinal XY-plane unit vectors used by
// find_neighbor and the diffusion propagation rule. There is no third
// dimension or diagonal direction in this contract (SPEC_FULL.md §4.1).
type Direction geometry.Vec3

// The four cardinal XY-plane directions.
var (
	DirPosX = Direction(geometry.NewVec3(1, 0, 0))
	DirNegX = Direction(geometry.NewVec3(-1, 0, 0))
	DirPosY = Direction(geometry.NewVec3(0, 1, 0))
	DirNegY = Direction(geometry.NewVec3(0, -1, 0))
)

// XYDirections returns the four cardinal XY-plane directions in a fixed,
// deterministic order.
func XYDirections() [4]Direction {
	return [4]Direction{DirPosX, DirNegX, DirPosY, DirNegY}
}

// Offset returns direction * scale as a Vec3.
func (d Direction) Offset(scale float32) geometry.Vec3 {
	return geometry.Vec3(d).Scale(scale)
}
