package octree

import (
	"github.com/tachyon-beep/tidebreak/internal/field"
	"github.com/tachyon-beep/tidebreak/internal/geometry"
)

// Octree is the sparse hierarchical field store: a single root node whose
// cached node/leaf counts are kept consistent by a full-subtree recount
// after every mutating operation. Incremental delta-tracking during
// recursive stamp application was considered and rejected in favor of this
// simpler, always-correct approach (see DESIGN.md).
type Octree struct {
	root   *Node
	config Config

	nodeCount int
	leafCount int
}

// Stats summarizes an octree's current shape.
type Stats struct {
	NodeCount int
	LeafCount int
	MaxDepth  int
}

// New creates an empty octree with the default configuration.
func New() *Octree {
	return NewWithConfig(DefaultConfig())
}

// NewWithConfig creates an empty octree using the given configuration.
func NewWithConfig(cfg Config) *Octree {
	t := &Octree{
		root:   NewNode(cfg.Bounds, 0),
		config: cfg,
	}
	t.recount()
	return t
}

// NewFromRoot builds an Octree around an already-constructed root node
// (typically produced by RestoreNode while loading a persisted snapshot)
// and a matching configuration.
func NewFromRoot(root *Node, cfg Config) *Octree {
	t := &Octree{root: root, config: cfg}
	t.recount()
	return t
}

// Config returns the octree's structural configuration.
func (t *Octree) Config() Config { return t.config }

// Root returns the root node.
func (t *Octree) Root() *Node { return t.root }

// Stats returns the octree's current node/leaf counts and configured max
// depth.
func (t *Octree) Stats() Stats {
	return Stats{NodeCount: t.nodeCount, LeafCount: t.leafCount, MaxDepth: t.config.MaxDepth}
}

func (t *Octree) recount() {
	t.nodeCount = t.root.CountNodes()
	t.leafCount = t.root.CountLeaves()
}

// ApplyStamp applies a shape-bounded mutation to every cell the stamp's
// shape touches, splitting nodes as deep as the stamp's bounds require and
// attempting to merge afterward wherever the stamp left a subtree uniform.
func (t *Octree) ApplyStamp(stamp Stamp) {
	if !stamp.Shape.Intersects(t.root.Bounds) {
		return
	}
	t.applyStampRecursive(t.root, stamp)
	t.recount()
}

func (t *Octree) applyStampRecursive(n *Node, stamp Stamp) {
	if !stamp.Shape.Intersects(n.Bounds) {
		return
	}

	atMaxDepth := n.Depth >= t.config.MaxDepth
	fullyCovered := stamp.Shape.FullyContains(n.Bounds)

	switch n.Kind {
	case KindEmpty:
		n.MakeLeaf(field.DefaultValues(field.DefaultConfigs()))
		t.applyStampRecursive(n, stamp)
		return

	case KindLeaf:
		if !atMaxDepth && !fullyCovered {
			n.Split()
			t.applyStampRecursive(n, stamp)
			return
		}
		n.values = stamp.Apply(n.Bounds.Center(), n.values)
		t.clampLeafValues(n)
		return

	case KindInternal:
		for octant := 0; octant < 8; octant++ {
			if n.children[octant] == nil {
				n.children[octant] = NewNode(n.Bounds.ChildBounds(octant), n.Depth+1)
			}
			t.applyStampRecursive(n.children[octant], stamp)
		}
		n.UpdateStats()
		n.TryMerge(t.config.MergeThreshold)
	}
}

func (t *Octree) clampLeafValues(n *Node) {
	cfgs := field.DefaultConfigs()
	var clamped field.Values
	for _, f := range field.All() {
		clamped.Set(f, cfgs[f].Clamp(n.values.Get(f)))
	}
	n.values = clamped
}

// QueryPoint reads a single point's field values, resolving through
// whatever depth of the tree is actually materialized at that location.
func (t *Octree) QueryPoint(position geometry.Vec3) field.Values {
	return t.queryPointRecursive(t.root, position)
}

func (t *Octree) queryPointRecursive(n *Node, position geometry.Vec3) field.Values {
	switch n.Kind {
	case KindEmpty:
		return field.DefaultValues(field.DefaultConfigs())
	case KindLeaf:
		return n.values
	default: // KindInternal
		octant := n.Bounds.OctantIndex(position)
		child := n.children[octant]
		if child == nil {
			return n.Stats().Means()
		}
		return t.queryPointRecursive(child, position)
	}
}

// SetPoint forces the exact leaf containing position to the given values,
// splitting down to max depth as needed and refreshing cached stats on the
// way back up. A position outside the root bounds is a no-op.
func (t *Octree) SetPoint(position geometry.Vec3, values field.Values) {
	if !t.root.Bounds.Contains(position) {
		return
	}
	t.setPointRecursive(t.root, position, values)
	t.recount()
}

func (t *Octree) setPointRecursive(n *Node, position geometry.Vec3, values field.Values) {
	if n.Kind == KindEmpty {
		n.MakeLeaf(field.DefaultValues(field.DefaultConfigs()))
	}
	if n.Kind == KindLeaf {
		if n.Depth >= t.config.MaxDepth {
			n.values = values
			return
		}
		n.Split()
	}
	octant := n.Bounds.OctantIndex(position)
	if n.children[octant] == nil {
		n.children[octant] = NewNode(n.Bounds.ChildBounds(octant), n.Depth+1)
	}
	t.setPointRecursive(n.children[octant], position, values)
	n.UpdateStats()
}

// CollectLeaves returns every Leaf node in depth-first, octant order.
func (t *Octree) CollectLeaves() []*Node {
	var out []*Node
	collectLeavesRecursive(t.root, &out)
	return out
}

func collectLeavesRecursive(n *Node, out *[]*Node) {
	switch n.Kind {
	case KindLeaf:
		*out = append(*out, n)
	case KindInternal:
		for _, c := range n.children {
			if c != nil {
				collectLeavesRecursive(c, out)
			}
		}
	}
}

// FindNeighbor returns the node adjacent to position in the given
// cardinal direction, stepping by the finest cell size at position's
// current depth. Returns nil if the neighbor falls outside the tree's
// bounds.
func (t *Octree) FindNeighbor(position geometry.Vec3, dir Direction) *Node {
	n := t.leafContaining(t.root, position)
	if n == nil {
		return nil
	}
	neighborPoint := position.Add(dir.Offset(n.CellSize()))
	if !t.root.Bounds.Contains(neighborPoint) {
		return nil
	}
	return t.leafContaining(t.root, neighborPoint)
}

func (t *Octree) leafContaining(n *Node, position geometry.Vec3) *Node {
	switch n.Kind {
	case KindLeaf, KindEmpty:
		return n
	default: // KindInternal
		octant := n.Bounds.OctantIndex(position)
		child := n.children[octant]
		if child == nil {
			return n
		}
		return t.leafContaining(child, position)
	}
}
