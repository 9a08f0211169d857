package octree

import (
	"github.com/tachyon-beep/tidebreak/internal/field"
	"github.com/tachyon-beep/tidebreak/internal/geometry"
)

// BlendOp selects how a stamp's value combines with a field's current
// value.
type BlendOp int

const (
	BlendSet BlendOp = iota
	BlendAdd
	BlendSubtract
	BlendMultiply
	BlendMax
	BlendMin
	BlendLerp
)

// Apply combines current with value according to op. factor only matters
// for BlendLerp.
func (op BlendOp) Apply(current, value, factor float32) float32 {
	switch op {
	case BlendAdd:
		return current + value
	case BlendSubtract:
		return current - value
	case BlendMultiply:
		return current * value
	case BlendMax:
		if value > current {
			return value
		}
		return current
	case BlendMin:
		if value < current {
			return value
		}
		return current
	case BlendLerp:
		return current + (value-current)*factor
	default: // BlendSet
		return value
	}
}

// FieldMod is one field's modification within a stamp.
type FieldMod struct {
	Field  field.Field
	Op     BlendOp
	Value  float32
	Factor float32
}

// SetMod is shorthand for an overwrite modification.
func SetMod(f field.Field, value float32) FieldMod {
	return FieldMod{Field: f, Op: BlendSet, Value: value}
}

// AddMod is shorthand for an additive modification.
func AddMod(f field.Field, value float32) FieldMod {
	return FieldMod{Field: f, Op: BlendAdd, Value: value}
}

// LerpMod is shorthand for a lerp-toward-value modification.
func LerpMod(f field.Field, value, factor float32) FieldMod {
	return FieldMod{Field: f, Op: BlendLerp, Value: value, Factor: factor}
}

// Shape is a stamp's spatial footprint: sphere, box, or capsule.
type Shape interface {
	// Contains reports whether point lies within the shape.
	Contains(point geometry.Vec3) bool
	// Bounds returns the shape's axis-aligned bounding box.
	Bounds() geometry.Bounds
	// Intersects reports whether the shape overlaps the given bounds, used
	// to prune octree traversal.
	Intersects(b geometry.Bounds) bool
	// IntensityAt returns the stamp's strength at point in [0,1]: 1 at the
	// shape's core, fading toward 0 at its edge when falloff is enabled.
	IntensityAt(point geometry.Vec3, falloff bool) float32
	// FullyContains reports whether every point of b is guaranteed to lie
	// within the shape, letting volumetric queries stop descending early.
	FullyContains(b geometry.Bounds) bool
}

// cornersInside is the generic (conservative but always correct)
// FullyContains test: every corner of b must lie in the shape.
func cornersInside(s Shape, b geometry.Bounds) bool {
	corners := [8]geometry.Vec3{
		{X: b.Min.X, Y: b.Min.Y, Z: b.Min.Z},
		{X: b.Max.X, Y: b.Min.Y, Z: b.Min.Z},
		{X: b.Min.X, Y: b.Max.Y, Z: b.Min.Z},
		{X: b.Max.X, Y: b.Max.Y, Z: b.Min.Z},
		{X: b.Min.X, Y: b.Min.Y, Z: b.Max.Z},
		{X: b.Max.X, Y: b.Min.Y, Z: b.Max.Z},
		{X: b.Min.X, Y: b.Max.Y, Z: b.Max.Z},
		{X: b.Max.X, Y: b.Max.Y, Z: b.Max.Z},
	}
	for _, c := range corners {
		if !s.Contains(c) {
			return false
		}
	}
	return true
}

// Sphere is a spherical stamp shape.
type Sphere struct {
	Center geometry.Vec3
	Radius float32
}

func (s Sphere) Contains(point geometry.Vec3) bool {
	return point.DistanceSquared(s.Center) <= s.Radius*s.Radius
}

func (s Sphere) Bounds() geometry.Bounds {
	r := geometry.NewVec3(s.Radius, s.Radius, s.Radius)
	return geometry.BoundsFromMinMax(s.Center.Sub(r), s.Center.Add(r))
}

func (s Sphere) Intersects(b geometry.Bounds) bool {
	return b.IntersectsSphere(s.Center, s.Radius)
}

func (s Sphere) FullyContains(b geometry.Bounds) bool {
	return b.IsFullyInsideSphere(s.Center, s.Radius)
}

func (s Sphere) IntensityAt(point geometry.Vec3, falloff bool) float32 {
	dist := point.Distance(s.Center)
	if dist >= s.Radius {
		return 0
	}
	if !falloff {
		return 1
	}
	intensity := 1 - dist/s.Radius
	return clampUnit(intensity)
}

// Box is an axis-aligned box stamp shape. Box falloff is always binary:
// the reference implementation never fades a box stamp.
type Box struct {
	Extent geometry.Bounds
}

func (b Box) Contains(point geometry.Vec3) bool {
	return b.Extent.Contains(point)
}

func (b Box) Bounds() geometry.Bounds { return b.Extent }

func (b Box) Intersects(other geometry.Bounds) bool {
	return boundsOverlap(b.Extent, other)
}

func (b Box) FullyContains(other geometry.Bounds) bool {
	return cornersInside(b, other)
}

func (b Box) IntensityAt(point geometry.Vec3, _ bool) float32 {
	if b.Contains(point) {
		return 1
	}
	return 0
}

// Capsule is a stamp shape formed by sweeping a sphere along a segment.
type Capsule struct {
	P0, P1 geometry.Vec3
	Radius float32
}

func (c Capsule) Contains(point geometry.Vec3) bool {
	closest := closestPointOnSegment(point, c.P0, c.P1)
	return point.DistanceSquared(closest) <= c.Radius*c.Radius
}

func (c Capsule) Bounds() geometry.Bounds {
	r := geometry.NewVec3(c.Radius, c.Radius, c.Radius)
	min := geometry.NewVec3(
		minOf(c.P0.X, c.P1.X), minOf(c.P0.Y, c.P1.Y), minOf(c.P0.Z, c.P1.Z),
	).Sub(r)
	max := geometry.NewVec3(
		maxOf(c.P0.X, c.P1.X), maxOf(c.P0.Y, c.P1.Y), maxOf(c.P0.Z, c.P1.Z),
	).Add(r)
	return geometry.BoundsFromMinMax(min, max)
}

func (c Capsule) Intersects(b geometry.Bounds) bool {
	return boundsOverlap(c.Bounds(), b)
}

func (c Capsule) FullyContains(b geometry.Bounds) bool {
	return cornersInside(c, b)
}

func (c Capsule) IntensityAt(point geometry.Vec3, falloff bool) float32 {
	closest := closestPointOnSegment(point, c.P0, c.P1)
	dist := point.Distance(closest)
	if dist >= c.Radius {
		return 0
	}
	if !falloff {
		return 1
	}
	return clampUnit(1 - dist/c.Radius)
}

func closestPointOnSegment(point, p0, p1 geometry.Vec3) geometry.Vec3 {
	axis := p1.Sub(p0)
	denom := axis.Dot(axis)
	if denom == 0 {
		return p0
	}
	t := point.Sub(p0).Dot(axis) / denom
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	return p0.Add(axis.Scale(t))
}

func boundsOverlap(a, b geometry.Bounds) bool {
	return a.Min.X <= b.Max.X && a.Max.X >= b.Min.X &&
		a.Min.Y <= b.Max.Y && a.Max.Y >= b.Min.Y &&
		a.Min.Z <= b.Max.Z && a.Max.Z >= b.Min.Z
}

func clampUnit(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func minOf(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func maxOf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

// Stamp is a localized mutation applied to the field store: a shape, the
// field modifications to apply within it, and whether those modifications
// fade with distance from the shape's core.
type Stamp struct {
	Shape         Shape
	Modifications []FieldMod
	Falloff       bool
}

// Apply returns the values a single sample point would have after this
// stamp, given its current values. A point outside the shape is returned
// unchanged. Modifications are applied in order; for a falloff stamp,
// every modification, Set included, is faded by the shape's intensity at
// the point, moving the value only that fraction of the way from its
// current value to the modified one.
func (s Stamp) Apply(point geometry.Vec3, current field.Values) field.Values {
	if !s.Shape.Contains(point) {
		return current
	}
	intensity := s.Shape.IntensityAt(point, s.Falloff)
	result := current
	for _, mod := range s.Modifications {
		before := result.Get(mod.Field)
		after := mod.Op.Apply(before, mod.Value, mod.Factor)
		if s.Falloff && intensity < 1 {
			after = before + (after-before)*intensity
		}
		result.Set(mod.Field, after)
	}
	return result
}

// ExplosionStamp is the preset used for a weapon detonation: it overwrites
// occupancy, damages integrity, spikes temperature and noise, and leaves a
// smoke deposit, all with radial falloff.
func ExplosionStamp(center geometry.Vec3, radius float32) Stamp {
	return Stamp{
		Shape: Sphere{Center: center, Radius: radius},
		Modifications: []FieldMod{
			SetMod(field.Occupancy, 1.0),
			AddMod(field.Integrity, -0.8),
			SetMod(field.Temperature, 3000.0),
			SetMod(field.Noise, 180.0),
			AddMod(field.Smoke, 0.9),
		},
		Falloff: true,
	}
}

// FireStamp is the preset for a sustained fire: elevated temperature and a
// steady smoke deposit, with falloff.
func FireStamp(center geometry.Vec3, radius float32) Stamp {
	return Stamp{
		Shape: Sphere{Center: center, Radius: radius},
		Modifications: []FieldMod{
			SetMod(field.Temperature, 1200.0),
			AddMod(field.Smoke, 0.4),
		},
		Falloff: true,
	}
}

// SonarPingStamp is the preset for an active sonar emission: a sharp,
// non-fading signal and sonar-return deposit.
func SonarPingStamp(center geometry.Vec3, radius float32) Stamp {
	return Stamp{
		Shape: Sphere{Center: center, Radius: radius},
		Modifications: []FieldMod{
			SetMod(field.SonarReturn, 1.0),
			SetMod(field.Signal, 1.0),
		},
		Falloff: false,
	}
}
