// Package field defines the twelve scalar channels sampled over the field
// store's volume, their per-field configuration, and the statistical
// summaries cached at octree nodes.
package field

// Field identifies one of the scalar channels carried at every octree leaf.
// Field indices are stable and must not be renumbered: they are part of the
// state-hash and wire-format contract.
type Field int

// The twelve scalar channels, in their fixed, binding order.
const (
	Occupancy Field = iota
	Material
	Integrity
	Temperature
	Smoke
	Noise
	Signal
	CurrentX
	CurrentY
	Depth
	Salinity
	SonarReturn

	// Count is the number of fields.
	Count
)

var fieldNames = [Count]string{
	Occupancy:   "occupancy",
	Material:    "material",
	Integrity:   "integrity",
	Temperature: "temperature",
	Smoke:       "smoke",
	Noise:       "noise",
	Signal:      "signal",
	CurrentX:    "current_x",
	CurrentY:    "current_y",
	Depth:       "depth",
	Salinity:    "salinity",
	SonarReturn: "sonar_return",
}

// String returns the field's canonical lowercase name.
func (f Field) String() string {
	if f < 0 || int(f) >= int(Count) {
		return "unknown"
	}
	return fieldNames[f]
}

// All returns the fields in their fixed index order.
func All() []Field {
	fields := make([]Field, Count)
	for i := range fields {
		fields[i] = Field(i)
	}
	return fields
}

// Aggregation names how a field's values are summarized across a region.
type Aggregation int

const (
	AggregationMean Aggregation = iota
	AggregationMax
	AggregationMin
	AggregationMode
)

// PropagationKind names which time-evolution rule a field follows.
type PropagationKind int

const (
	PropagationNone PropagationKind = iota
	PropagationDiffusion
	PropagationDecay
	PropagationDiffusionDecay
)

// Propagation is a field's time-evolution rule and its rate parameter(s).
type Propagation struct {
	Kind          PropagationKind
	DiffusionRate float32
	DecayRate     float32
}

// None is the no-op propagation rule.
func None() Propagation {
	return Propagation{Kind: PropagationNone}
}

// Diffusion builds a pure-diffusion propagation rule.
func Diffusion(rate float32) Propagation {
	return Propagation{Kind: PropagationDiffusion, DiffusionRate: rate}
}

// Decay builds a pure-decay propagation rule.
func Decay(rate float32) Propagation {
	return Propagation{Kind: PropagationDecay, DecayRate: rate}
}

// DiffusionDecay builds a combined diffusion-then-decay propagation rule.
func DiffusionDecay(diffusionRate, decayRate float32) Propagation {
	return Propagation{Kind: PropagationDiffusionDecay, DiffusionRate: diffusionRate, DecayRate: decayRate}
}
