// Package octree implements the sparse hierarchical field store: a
// variance-cached adaptive octree, shape-bounded stamps, volumetric and
// foveated queries, and diffusion/decay propagation.
package octree

import (
	"github.com/tachyon-beep/tidebreak/internal/field"
	"github.com/tachyon-beep/tidebreak/internal/geometry"
)

// Kind is the discriminant of an OctreeNode's state.
type Kind int

const (
	// KindEmpty marks a node that has never been materialized; it reads
	// as its fields' defaults.
	KindEmpty Kind = iota
	// KindLeaf marks a node that stores concrete field values.
	KindLeaf
	// KindInternal marks a node with up to eight children and a cached
	// FieldStats summary.
	KindInternal
)

// Node is one node of the octree: an Empty placeholder, a Leaf carrying
// concrete values, or an Internal node owning up to eight children plus a
// cached statistical summary.
type Node struct {
	Bounds geometry.Bounds
	Depth  int
	Kind   Kind

	values   field.Values
	children [8]*Node
	stats    field.FieldStats
}

// NewNode creates an Empty node with the given bounds and depth.
func NewNode(bounds geometry.Bounds, depth int) *Node {
	return &Node{Bounds: bounds, Depth: depth, Kind: KindEmpty}
}

// IsEmpty reports whether the node is Empty.
func (n *Node) IsEmpty() bool { return n.Kind == KindEmpty }

// IsLeaf reports whether the node is a Leaf.
func (n *Node) IsLeaf() bool { return n.Kind == KindLeaf }

// IsInternal reports whether the node is Internal.
func (n *Node) IsInternal() bool { return n.Kind == KindInternal }

// Values returns the leaf's stored values. Only meaningful when IsLeaf.
func (n *Node) Values() field.Values { return n.values }

// Child returns the child at the given octant, or nil if absent.
func (n *Node) Child(octant int) *Node { return n.children[octant] }

// MakeLeaf transitions the node to Leaf with the given values.
func (n *Node) MakeLeaf(values field.Values) {
	n.Kind = KindLeaf
	n.values = values
	n.children = [8]*Node{}
	n.stats = field.FieldStats{}
}

// CellSize returns the node's cell size, assuming a cubic cell.
func (n *Node) CellSize() float32 {
	return n.Bounds.Size().X
}

// Stats returns the node's cached FieldStats: a single-sample summary for
// a Leaf, the cached summary for Internal, or an all-empty summary for
// Empty.
func (n *Node) Stats() field.FieldStats {
	switch n.Kind {
	case KindLeaf:
		return field.FieldStatsFromValues(n.values)
	case KindInternal:
		return n.stats
	default:
		var fs field.FieldStats
		for i := range fs.Scalars {
			fs.Scalars[i] = field.EmptyScalarStats()
		}
		return fs
	}
}

// Split converts a Leaf node into an Internal node with eight children,
// each seeded with the leaf's current values, and computes the cached
// stats from those children.
func (n *Node) Split() {
	values := n.values
	n.Kind = KindInternal
	n.values = field.Values{}
	for octant := 0; octant < 8; octant++ {
		child := NewNode(n.Bounds.ChildBounds(octant), n.Depth+1)
		child.MakeLeaf(values)
		n.children[octant] = child
	}
	n.updateStatsFromChildren()
}

// UpdateStats recomputes the cached stats of an Internal node from its
// current children's stats.
func (n *Node) UpdateStats() {
	if n.Kind != KindInternal {
		return
	}
	n.updateStatsFromChildren()
}

func (n *Node) updateStatsFromChildren() {
	var present []field.FieldStats
	for _, c := range n.children {
		if c != nil && !c.IsEmpty() {
			present = append(present, c.Stats())
		}
	}
	n.stats = field.MergeManyFieldStats(present)
}

// TryMerge attempts to collapse an Internal node into a Leaf (or an Empty
// node, if all children are empty) when every field's cached variance is
// below threshold. Returns true if a transition occurred.
func (n *Node) TryMerge(threshold float32) bool {
	if n.Kind != KindInternal {
		return false
	}
	var present []field.FieldStats
	for _, c := range n.children {
		if c != nil && !c.IsEmpty() {
			present = append(present, c.Stats())
		}
	}
	if len(present) == 0 {
		n.Kind = KindEmpty
		n.children = [8]*Node{}
		n.stats = field.FieldStats{}
		return true
	}
	merged := field.MergeManyFieldStats(present)
	if merged.IsUniform(threshold) {
		n.MakeLeaf(merged.Means())
		return true
	}
	n.stats = merged
	return false
}

// CountNodes returns the number of nodes (of any kind) in the subtree
// rooted at n, including n itself.
func (n *Node) CountNodes() int {
	count := 1
	if n.Kind == KindInternal {
		for _, c := range n.children {
			if c != nil {
				count += c.CountNodes()
			}
		}
	}
	return count
}

// RestoreNode reconstructs a node directly from persisted snapshot fields,
// without re-deriving structure through stamps or splits. Internal nodes
// get their cached stats recomputed from the given children, matching what
// UpdateStats would have produced had the tree been built normally. Used
// by internal/persist to rebuild a tree from a serialized snapshot.
func RestoreNode(bounds geometry.Bounds, depth int, kind Kind, values field.Values, children [8]*Node) *Node {
	n := &Node{Bounds: bounds, Depth: depth, Kind: kind}
	switch kind {
	case KindLeaf:
		n.values = values
	case KindInternal:
		n.children = children
		n.updateStatsFromChildren()
	}
	return n
}

// CountLeaves returns the number of Leaf nodes in the subtree rooted at n.
func (n *Node) CountLeaves() int {
	switch n.Kind {
	case KindLeaf:
		return 1
	case KindInternal:
		count := 0
		for _, c := range n.children {
			if c != nil {
				count += c.CountLeaves()
			}
		}
		return count
	default:
		return 0
	}
}
