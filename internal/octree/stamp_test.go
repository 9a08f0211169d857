package octree

import (
	"testing"

	"github.com/tachyon-beep/tidebreak/internal/field"
	"github.com/tachyon-beep/tidebreak/internal/geometry"
)

func TestBlendOpApply(t *testing.T) {
	cases := []struct {
		op      BlendOp
		current float32
		value   float32
		factor  float32
		want    float32
	}{
		{BlendSet, 1, 5, 0, 5},
		{BlendAdd, 1, 5, 0, 6},
		{BlendSubtract, 10, 3, 0, 7},
		{BlendMultiply, 2, 3, 0, 6},
		{BlendMax, 2, 9, 0, 9},
		{BlendMax, 9, 2, 0, 9},
		{BlendMin, 2, 9, 0, 2},
		{BlendLerp, 0, 10, 0.5, 5},
	}
	for _, c := range cases {
		got := c.op.Apply(c.current, c.value, c.factor)
		if got != c.want {
			t.Errorf("op %v: got %v want %v", c.op, got, c.want)
		}
	}
}

func TestSphereContainsAndIntensity(t *testing.T) {
	s := Sphere{Center: geometry.NewVec3(0, 0, 0), Radius: 5}
	if !s.Contains(geometry.NewVec3(3, 0, 0)) {
		t.Errorf("expected point inside radius to be contained")
	}
	if s.Contains(geometry.NewVec3(6, 0, 0)) {
		t.Errorf("expected point outside radius to not be contained")
	}
	if s.IntensityAt(geometry.NewVec3(0, 0, 0), true) != 1 {
		t.Errorf("expected full intensity at center")
	}
	mid := s.IntensityAt(geometry.NewVec3(2.5, 0, 0), true)
	if mid <= 0 || mid >= 1 {
		t.Errorf("expected partial falloff intensity at half radius, got %v", mid)
	}
	if s.IntensityAt(geometry.NewVec3(2.5, 0, 0), false) != 1 {
		t.Errorf("expected no falloff to report full intensity anywhere inside")
	}
}

func TestBoxContainsAndBinaryIntensity(t *testing.T) {
	b := Box{Extent: geometry.BoundsFromMinMax(geometry.NewVec3(-1, -1, -1), geometry.NewVec3(1, 1, 1))}
	if !b.Contains(geometry.NewVec3(0.5, 0.5, 0.5)) {
		t.Errorf("expected point inside box to be contained")
	}
	if b.IntensityAt(geometry.NewVec3(0.5, 0.5, 0.5), true) != 1 {
		t.Errorf("expected box intensity to always be binary, got non-1 inside")
	}
	if b.IntensityAt(geometry.NewVec3(5, 5, 5), true) != 0 {
		t.Errorf("expected box intensity outside to be 0")
	}
}

func TestCapsuleContainsAlongSegment(t *testing.T) {
	c := Capsule{P0: geometry.NewVec3(-5, 0, 0), P1: geometry.NewVec3(5, 0, 0), Radius: 1}
	if !c.Contains(geometry.NewVec3(0, 0.5, 0)) {
		t.Errorf("expected point near the segment's midpoint to be contained")
	}
	if c.Contains(geometry.NewVec3(0, 2, 0)) {
		t.Errorf("expected point far from the segment to not be contained")
	}
	if !c.Contains(geometry.NewVec3(-5, 0.9, 0)) {
		t.Errorf("expected point near an endpoint to be contained")
	}
}

func TestStampApplyRespectsShapeBoundary(t *testing.T) {
	stamp := Stamp{
		Shape:         Sphere{Center: geometry.NewVec3(0, 0, 0), Radius: 2},
		Modifications: []FieldMod{SetMod(field.Temperature, 1000)},
		Falloff:       false,
	}
	var current field.Values
	current.Set(field.Temperature, 293)

	inside := stamp.Apply(geometry.NewVec3(1, 0, 0), current)
	if inside.Get(field.Temperature) != 1000 {
		t.Errorf("expected stamp to set temperature inside its shape, got %v", inside.Get(field.Temperature))
	}

	outside := stamp.Apply(geometry.NewVec3(5, 0, 0), current)
	if outside.Get(field.Temperature) != 293 {
		t.Errorf("expected stamp to leave values outside its shape untouched, got %v", outside.Get(field.Temperature))
	}
}

func TestExplosionStampPresetShape(t *testing.T) {
	stamp := ExplosionStamp(geometry.NewVec3(0, 0, 0), 10)
	if !stamp.Falloff {
		t.Errorf("expected explosion stamp to use falloff")
	}
	if len(stamp.Modifications) == 0 {
		t.Errorf("expected explosion stamp to modify at least one field")
	}
}
