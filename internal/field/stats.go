package field

import "math"

// ScalarStats is a running statistical summary of a scalar field over some
// region: mean, variance, min, max, and how many samples contributed.
type ScalarStats struct {
	Mean        float32
	Variance    float32
	Min         float32
	Max         float32
	SampleCount uint32
}

// EmptyScalarStats is the identity element for Merge.
func EmptyScalarStats() ScalarStats {
	return ScalarStats{
		Mean:        0,
		Variance:    0,
		Min:         float32(math.Inf(1)),
		Max:         float32(math.Inf(-1)),
		SampleCount: 0,
	}
}

// ScalarStatsFromValue builds a single-sample summary.
func ScalarStatsFromValue(v float32) ScalarStats {
	return ScalarStats{Mean: v, Variance: 0, Min: v, Max: v, SampleCount: 1}
}

// MergeScalarStats combines two summaries using Chan et al.'s parallel
// variance formula. Empty operands are the identity.
func MergeScalarStats(a, b ScalarStats) ScalarStats {
	if a.SampleCount == 0 {
		return b
	}
	if b.SampleCount == 0 {
		return a
	}
	nA := float32(a.SampleCount)
	nB := float32(b.SampleCount)
	nTotal := nA + nB
	delta := b.Mean - a.Mean
	mean := a.Mean + delta*(nB/nTotal)
	variance := (a.Variance*nA + b.Variance*nB + delta*delta*nA*nB/nTotal) / nTotal
	return ScalarStats{
		Mean:        mean,
		Variance:    variance,
		Min:         minFloat32(a.Min, b.Min),
		Max:         maxFloat32(a.Max, b.Max),
		SampleCount: a.SampleCount + b.SampleCount,
	}
}

// MergeManyScalarStats folds Merge over a sequence of summaries, starting
// from the empty identity.
func MergeManyScalarStats(stats []ScalarStats) ScalarStats {
	acc := EmptyScalarStats()
	for _, s := range stats {
		acc = MergeScalarStats(acc, s)
	}
	return acc
}

// StdDev returns the standard deviation implied by Variance.
func (s ScalarStats) StdDev() float32 {
	return float32(math.Sqrt(float64(s.Variance)))
}

// IsUniform reports whether the summarized region is effectively constant:
// variance below threshold.
func (s ScalarStats) IsUniform(threshold float32) bool {
	return s.Variance < threshold
}

// materialDistinctBins is the width of the top-k material distribution.
const materialDistinctBins = 4

// MaterialBin is one entry of a MaterialStats top-k distribution.
type MaterialBin struct {
	Value uint8
	Count uint32
}

// MaterialStats summarizes the material channel, whose aggregation is mode
// rather than mean: the most common value, how often it occurred, and a
// small top-k distribution.
type MaterialStats struct {
	Mode         uint8
	ModeCount    uint32
	SampleCount  uint32
	Distribution [materialDistinctBins]MaterialBin
}

// MaterialStatsFromValue builds a single-sample summary.
func MaterialStatsFromValue(value uint8) MaterialStats {
	var dist [materialDistinctBins]MaterialBin
	dist[0] = MaterialBin{Value: value, Count: 1}
	return MaterialStats{Mode: value, ModeCount: 1, SampleCount: 1, Distribution: dist}
}

// ModeFraction returns the fraction of samples that took the mode value.
func (m MaterialStats) ModeFraction() float32 {
	if m.SampleCount == 0 {
		return 0
	}
	return float32(m.ModeCount) / float32(m.SampleCount)
}

// IsUniform reports whether the mode fraction meets or exceeds threshold.
// This is MaterialStats' own uniformity test, independent of the scalar
// variance-based test used elsewhere.
func (m MaterialStats) IsUniform(threshold float32) bool {
	return m.ModeFraction() >= threshold
}

// mergeMaterialStats combines two material summaries. The mode and
// distribution are carried from whichever side has the larger mode count;
// this mirrors the reference implementation's own simplified merge (a true
// merged top-k is not reconstructable from two independent top-4s without
// the full underlying multiset).
func mergeMaterialStats(a, b MaterialStats) MaterialStats {
	winner := a
	if b.ModeCount > a.ModeCount {
		winner = b
	}
	return MaterialStats{
		Mode:         winner.Mode,
		ModeCount:    winner.ModeCount,
		SampleCount:  a.SampleCount + b.SampleCount,
		Distribution: winner.Distribution,
	}
}

// FieldStats is the full per-node cached summary: one ScalarStats per
// field, plus the material channel's MaterialStats.
type FieldStats struct {
	Scalars  [Count]ScalarStats
	Material MaterialStats
}

// FieldStatsFromValues builds a single-sample summary of every field.
func FieldStatsFromValues(values Values) FieldStats {
	var fs FieldStats
	for _, f := range All() {
		fs.Scalars[f] = ScalarStatsFromValue(values.Get(f))
	}
	fs.Material = MaterialStatsFromValue(uint8(values.Get(Material)))
	return fs
}

// Get returns the scalar summary for f.
func (fs FieldStats) Get(f Field) ScalarStats {
	return fs.Scalars[f]
}

// MergeFieldStats merges each scalar field and combines the material
// summaries.
func MergeFieldStats(a, b FieldStats) FieldStats {
	var merged FieldStats
	for _, f := range All() {
		merged.Scalars[f] = MergeScalarStats(a.Scalars[f], b.Scalars[f])
	}
	merged.Material = mergeMaterialStats(a.Material, b.Material)
	return merged
}

// MergeManyFieldStats folds MergeFieldStats over a sequence, starting from
// an empty summary whose scalars are all EmptyScalarStats and whose
// material summary has a zero sample count.
func MergeManyFieldStats(stats []FieldStats) FieldStats {
	var acc FieldStats
	for i := range acc.Scalars {
		acc.Scalars[i] = EmptyScalarStats()
	}
	for _, s := range stats {
		acc = MergeFieldStats(acc, s)
	}
	return acc
}

// IsUniform reports whether every scalar field's variance, the material
// scalar's included, is below threshold. The mode-based material test
// (MaterialStats.IsUniform) is not consulted.
func (fs FieldStats) IsUniform(threshold float32) bool {
	for _, s := range fs.Scalars {
		if !s.IsUniform(threshold) {
			return false
		}
	}
	return true
}

// Means returns a Values vector of each scalar field's mean, used when
// collapsing a merged FieldStats back into leaf values (e.g. on octree
// merge or on an absent-child point query).
func (fs FieldStats) Means() Values {
	var v Values
	for _, f := range All() {
		v.Set(f, fs.Scalars[f].Mean)
	}
	return v
}

func minFloat32(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func maxFloat32(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
