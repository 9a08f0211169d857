package geometry

import "math"

// Bounds is an axis-aligned bounding box in 3-D, stored by minimum and
// maximum corners. Bounds are immutable once constructed.
type Bounds struct {
	Min Vec3
	Max Vec3
}

// NewBounds creates bounds of the given width/height/depth, centered at the
// origin.
func NewBounds(width, height, depth float32) Bounds {
	return Bounds{
		Min: NewVec3(-width/2, -height/2, -depth/2),
		Max: NewVec3(width/2, height/2, depth/2),
	}
}

// BoundsFromMinMax builds bounds directly from corners.
func BoundsFromMinMax(min, max Vec3) Bounds {
	return Bounds{Min: min, Max: max}
}

// DefaultBounds is the 100x100x100 centered default.
func DefaultBounds() Bounds {
	return NewBounds(100, 100, 100)
}

// Center returns the midpoint of the bounds.
func (b Bounds) Center() Vec3 {
	return b.Min.Add(b.Max).Scale(0.5)
}

// Size returns the extent of the bounds along each axis.
func (b Bounds) Size() Vec3 {
	return b.Max.Sub(b.Min)
}

// Contains reports whether point lies within the bounds, inclusive of all
// faces.
func (b Bounds) Contains(point Vec3) bool {
	return point.X >= b.Min.X && point.X <= b.Max.X &&
		point.Y >= b.Min.Y && point.Y <= b.Max.Y &&
		point.Z >= b.Min.Z && point.Z <= b.Max.Z
}

// IntersectsSphere reports whether the sphere at center with the given
// radius touches or overlaps the bounds.
func (b Bounds) IntersectsSphere(center Vec3, radius float32) bool {
	closest := NewVec3(
		clamp(center.X, b.Min.X, b.Max.X),
		clamp(center.Y, b.Min.Y, b.Max.Y),
		clamp(center.Z, b.Min.Z, b.Max.Z),
	)
	return center.DistanceSquared(closest) <= radius*radius
}

// IsFullyInsideSphere reports whether every corner of the bounds lies
// within the sphere at center with the given radius.
func (b Bounds) IsFullyInsideSphere(center Vec3, radius float32) bool {
	r2 := radius * radius
	corners := [8]Vec3{
		{b.Min.X, b.Min.Y, b.Min.Z},
		{b.Max.X, b.Min.Y, b.Min.Z},
		{b.Min.X, b.Max.Y, b.Min.Z},
		{b.Max.X, b.Max.Y, b.Min.Z},
		{b.Min.X, b.Min.Y, b.Max.Z},
		{b.Max.X, b.Min.Y, b.Max.Z},
		{b.Min.X, b.Max.Y, b.Max.Z},
		{b.Max.X, b.Max.Y, b.Max.Z},
	}
	for _, c := range corners {
		if center.DistanceSquared(c) > r2 {
			return false
		}
	}
	return true
}

// OctantIndex returns the octant index (0-7) of point relative to the
// bounds' center. Bit layout: bit 0 = +x, bit 1 = +y, bit 2 = +z.
func (b Bounds) OctantIndex(point Vec3) int {
	center := b.Center()
	index := 0
	if point.X >= center.X {
		index |= 1
	}
	if point.Y >= center.Y {
		index |= 2
	}
	if point.Z >= center.Z {
		index |= 4
	}
	return index
}

// ChildBounds returns the bounds of the given child octant (0-7), split at
// the center.
func (b Bounds) ChildBounds(octant int) Bounds {
	center := b.Center()
	min := NewVec3(
		pick(octant&1 == 0, b.Min.X, center.X),
		pick(octant&2 == 0, b.Min.Y, center.Y),
		pick(octant&4 == 0, b.Min.Z, center.Z),
	)
	max := NewVec3(
		pick(octant&1 == 0, center.X, b.Max.X),
		pick(octant&2 == 0, center.Y, b.Max.Y),
		pick(octant&4 == 0, center.Z, b.Max.Z),
	)
	return Bounds{Min: min, Max: max}
}

func clamp(v, lo, hi float32) float32 {
	return float32(math.Min(float64(hi), math.Max(float64(lo), float64(v))))
}

func pick(cond bool, a, b float32) float32 {
	if cond {
		return a
	}
	return b
}
