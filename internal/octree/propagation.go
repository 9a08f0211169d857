package octree

import (
	"math"

	"github.com/tachyon-beep/tidebreak/internal/field"
	"github.com/tachyon-beep/tidebreak/internal/geometry"
)

// Step advances every field with a propagation rule by dt seconds,
// applying diffusion and decay. All leaves are sampled against the tree's
// state at the start of the step (collect), the new values are computed
// (compute), and only then written back (apply); this double-buffering
// keeps propagation order-independent within a single step.
func (t *Octree) Step(dt float32) {
	leaves := t.CollectLeaves()
	if len(leaves) == 0 {
		return
	}

	cfgs := field.DefaultConfigs()
	next := make([]field.Values, len(leaves))
	for i, leaf := range leaves {
		next[i] = t.computeNextValues(leaf, cfgs, dt)
	}
	for i, leaf := range leaves {
		leaf.values = next[i]
	}

	t.tryMergeRecursive(t.root)
	t.recount()
}

func (t *Octree) computeNextValues(leaf *Node, cfgs [field.Count]field.Config, dt float32) field.Values {
	center := leaf.Bounds.Center()
	result := leaf.values
	for _, f := range field.All() {
		cfg := cfgs[f]
		current := leaf.values.Get(f)
		switch cfg.Propagation.Kind {
		case field.PropagationDecay:
			result.Set(f, cfg.Clamp(applyDecay(current, cfg.Default, cfg.Propagation.DecayRate, dt)))
		case field.PropagationDiffusion:
			neighbors := t.sampleNeighbors(center, f)
			result.Set(f, cfg.Clamp(applyDiffusion(current, neighbors, cfg.Propagation.DiffusionRate, dt)))
		case field.PropagationDiffusionDecay:
			neighbors := t.sampleNeighbors(center, f)
			diffused := applyDiffusion(current, neighbors, cfg.Propagation.DiffusionRate, dt)
			result.Set(f, cfg.Clamp(applyDecay(diffused, cfg.Default, cfg.Propagation.DecayRate, dt)))
		}
	}
	return result
}

// sampleNeighbors reads a field's value from the four cardinal XY
// neighbors of center, substituting the field's configured default for
// any neighbor outside the tree's bounds.
func (t *Octree) sampleNeighbors(center geometry.Vec3, f field.Field) []float32 {
	out := make([]float32, 0, 4)
	cfg := field.DefaultConfigFor(f)
	for _, dir := range XYDirections() {
		n := t.FindNeighbor(center, dir)
		if n == nil || n.IsEmpty() {
			out = append(out, cfg.Default)
			continue
		}
		out = append(out, n.Stats().Get(f).Mean)
	}
	return out
}

func (t *Octree) tryMergeRecursive(n *Node) {
	if n.Kind != KindInternal {
		return
	}
	for _, c := range n.children {
		if c != nil {
			t.tryMergeRecursive(c)
		}
	}
	n.UpdateStats()
	n.TryMerge(t.config.MergeThreshold)
}

// applyDecay relaxes a value exponentially toward its field default:
// default + (old-default)*exp(-rate*dt).
func applyDecay(old, defaultValue, rate, dt float32) float32 {
	factor := float32(math.Exp(float64(-rate * dt)))
	return defaultValue + (old-defaultValue)*factor
}

// applyDiffusion applies one discrete-Laplacian diffusion step over the
// given neighbor values: old + rate*dt*(sum(neighbors) - n*old).
func applyDiffusion(old float32, neighbors []float32, rate, dt float32) float32 {
	var sum float32
	for _, v := range neighbors {
		sum += v
	}
	n := float32(len(neighbors))
	return old + rate*dt*(sum-n*old)
}
