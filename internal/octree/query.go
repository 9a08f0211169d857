package octree

import (
	"math"

	"github.com/tachyon-beep/tidebreak/internal/field"
	"github.com/tachyon-beep/tidebreak/internal/geometry"
)

// resolutionKind is the discriminant of a QueryResolution.
type resolutionKind int

const (
	resCoarse resolutionKind = iota
	resMedium
	resFine
	resFull
	resDepth
	resVariance
)

// QueryResolution controls how deep a volumetric query descends before
// settling for a node's cached aggregate rather than its children's.
type QueryResolution struct {
	kind              resolutionKind
	depth             int
	varianceThreshold float32
}

// Coarse stops at depth 3, clamped to the tree's configured max depth.
func Coarse() QueryResolution { return QueryResolution{kind: resCoarse} }

// Medium stops at depth 5, clamped to the tree's configured max depth.
func Medium() QueryResolution { return QueryResolution{kind: resMedium} }

// Fine stops at depth 7, clamped to the tree's configured max depth.
func Fine() QueryResolution { return QueryResolution{kind: resFine} }

// Full descends to the tree's configured max depth.
func Full() QueryResolution { return QueryResolution{kind: resFull} }

// AtDepth stops at a caller-chosen absolute depth.
func AtDepth(depth int) QueryResolution { return QueryResolution{kind: resDepth, depth: depth} }

// AtVariance stops as soon as a node's cached stats are uniform under
// threshold, regardless of depth.
func AtVariance(threshold float32) QueryResolution {
	return QueryResolution{kind: resVariance, varianceThreshold: threshold}
}

// MaxDepth resolves the resolution against a tree's configured max depth.
func (r QueryResolution) MaxDepth(treeMaxDepth int) int {
	switch r.kind {
	case resCoarse:
		return AtDepth(3).MaxDepth(treeMaxDepth)
	case resMedium:
		return AtDepth(5).MaxDepth(treeMaxDepth)
	case resFine:
		return AtDepth(7).MaxDepth(treeMaxDepth)
	case resDepth:
		if r.depth > treeMaxDepth {
			return treeMaxDepth
		}
		return r.depth
	default: // resFull, resVariance
		return treeMaxDepth
	}
}

// VarianceThreshold returns the stop threshold for an AtVariance
// resolution; undefined for other kinds.
func (r QueryResolution) VarianceThreshold() float32 { return r.varianceThreshold }

// VolumeQuery asks for the aggregate field statistics of every cell a
// shape touches, descended to the given resolution.
type VolumeQuery struct {
	Shape      Shape
	Resolution QueryResolution
}

// QueryResult is a volumetric query's answer: the merged statistics over
// every visited region, plus traversal bookkeeping.
type QueryResult struct {
	Stats           field.FieldStats
	NodesVisited    int
	MaxDepthReached int
}

// QueryVolume answers a VolumeQuery by descending the tree, stopping at
// whichever comes first: the resolution's max depth, a node the shape
// fully contains, a leaf or empty node, or (for AtVariance) a node whose
// cached stats are already uniform.
func (t *Octree) QueryVolume(q VolumeQuery) QueryResult {
	if !q.Shape.Intersects(t.root.Bounds) {
		return QueryResult{}
	}
	visited := 0
	maxDepthReached := 0
	resMaxDepth := q.Resolution.MaxDepth(t.config.MaxDepth)
	stats, _ := t.walkVolume(t.root, q, resMaxDepth, &visited, &maxDepthReached)
	return QueryResult{Stats: stats, NodesVisited: visited, MaxDepthReached: maxDepthReached}
}

func (t *Octree) walkVolume(n *Node, q VolumeQuery, resMaxDepth int, visited, maxDepthReached *int) (field.FieldStats, bool) {
	if !q.Shape.Intersects(n.Bounds) {
		return field.FieldStats{}, false
	}
	*visited++
	if n.Depth > *maxDepthReached {
		*maxDepthReached = n.Depth
	}

	stop := n.Kind != KindInternal ||
		n.Depth >= resMaxDepth ||
		q.Shape.FullyContains(n.Bounds) ||
		(q.Resolution.kind == resVariance && n.Stats().IsUniform(q.Resolution.varianceThreshold))
	if stop {
		return n.Stats(), true
	}

	var children []field.FieldStats
	for _, c := range n.children {
		if c == nil {
			continue
		}
		s, ok := t.walkVolume(c, q, resMaxDepth, visited, maxDepthReached)
		if ok {
			children = append(children, s)
		}
	}
	if len(children) == 0 {
		return n.Stats(), true
	}
	return field.MergeManyFieldStats(children), true
}

// PointQuery asks for a single point's field values. Interpolate is not
// consulted: QueryPointDetailed never interpolates between cells.
type PointQuery struct {
	Position    geometry.Vec3
	Interpolate bool
}

// PointResult is a point query's answer.
type PointResult struct {
	Values       field.Values
	Depth        int
	Interpolated bool
}

// QueryPointDetailed answers a PointQuery, reporting the depth actually
// resolved. A point read from a Leaf reports Interpolated false. A point
// outside the root bounds (defaults at depth 0), inside an Empty node
// (defaults), or under an Internal node whose expected child is absent
// (that node's cached means) reports Interpolated true. No interpolation
// between neighbor cells is performed.
func (t *Octree) QueryPointDetailed(q PointQuery) PointResult {
	if !t.root.Bounds.Contains(q.Position) {
		return PointResult{Values: field.DefaultValues(field.DefaultConfigs()), Depth: 0, Interpolated: true}
	}
	n, depth := t.leafOrDeepestContaining(t.root, q.Position)
	switch n.Kind {
	case KindEmpty:
		return PointResult{Values: field.DefaultValues(field.DefaultConfigs()), Depth: depth, Interpolated: true}
	case KindLeaf:
		return PointResult{Values: n.values, Depth: depth}
	default:
		return PointResult{Values: n.Stats().Means(), Depth: depth, Interpolated: true}
	}
}

func (t *Octree) leafOrDeepestContaining(n *Node, position geometry.Vec3) (*Node, int) {
	switch n.Kind {
	case KindLeaf, KindEmpty:
		return n, n.Depth
	default:
		octant := n.Bounds.OctantIndex(position)
		child := n.children[octant]
		if child == nil {
			return n, n.Depth
		}
		return t.leafOrDeepestContaining(child, position)
	}
}

// FoveatedShell is one ring of a foveated observation: an annulus around
// the observer, divided into angular sectors, each queried at its own
// resolution.
type FoveatedShell struct {
	InnerRadius float32
	OuterRadius float32
	Sectors     int
	Resolution  QueryResolution
}

// DefaultFoveatedShells is the reference three-shell perception preset:
// a fine near ring, a medium middle ring, and a coarse far ring.
func DefaultFoveatedShells() []FoveatedShell {
	return []FoveatedShell{
		{InnerRadius: 0, OuterRadius: 10, Sectors: 16, Resolution: Fine()},
		{InnerRadius: 10, OuterRadius: 50, Sectors: 8, Resolution: Medium()},
		{InnerRadius: 50, OuterRadius: 200, Sectors: 4, Resolution: Coarse()},
	}
}

// DefaultFoveatedFields is the reference default perception field set.
func DefaultFoveatedFields() []field.Field {
	return []field.Field{field.Temperature, field.Noise, field.Occupancy, field.SonarReturn}
}

// FoveatedQuery asks for a multi-shell, multi-sector perception snapshot
// centered on an observer.
type FoveatedQuery struct {
	Center geometry.Vec3
	Shells []FoveatedShell
	Fields []field.Field
}

// DefaultFoveatedQuery builds a FoveatedQuery centered on position using
// the reference default shells and fields.
func DefaultFoveatedQuery(center geometry.Vec3) FoveatedQuery {
	return FoveatedQuery{Center: center, Shells: DefaultFoveatedShells(), Fields: DefaultFoveatedFields()}
}

// FoveatedResult is a foveated query's answer: per-shell, per-sector field
// statistics, in shell then sector order.
type FoveatedResult struct {
	ShellStats   [][]field.FieldStats
	NodesVisited int
}

// QueryFoveated answers a FoveatedQuery by running one VolumeQuery per
// sector of every shell against an angular-sector shape.
func (t *Octree) QueryFoveated(q FoveatedQuery) FoveatedResult {
	shellStats := make([][]field.FieldStats, len(q.Shells))
	visited := 0
	for i, shell := range q.Shells {
		sectors := make([]field.FieldStats, shell.Sectors)
		for sec := 0; sec < shell.Sectors; sec++ {
			shape := Sector{
				Center:       q.Center,
				InnerRadius:  shell.InnerRadius,
				OuterRadius:  shell.OuterRadius,
				SectorIndex:  sec,
				TotalSectors: shell.Sectors,
			}
			result := t.QueryVolume(VolumeQuery{Shape: shape, Resolution: shell.Resolution})
			sectors[sec] = result.Stats
			visited += result.NodesVisited
		}
		shellStats[i] = sectors
	}
	return FoveatedResult{ShellStats: shellStats, NodesVisited: visited}
}

// Sector is an angular wedge of an annulus in the XY plane, used by
// foveated queries. It is query-only: never used as a stamp shape.
type Sector struct {
	Center                    geometry.Vec3
	InnerRadius, OuterRadius  float32
	SectorIndex, TotalSectors int
}

func (s Sector) Contains(point geometry.Vec3) bool {
	dx := float64(point.X - s.Center.X)
	dy := float64(point.Y - s.Center.Y)
	dist := math.Hypot(dx, dy)
	if dist < float64(s.InnerRadius) || dist > float64(s.OuterRadius) {
		return false
	}
	lo, hi := s.angleRange()
	angle := math.Atan2(dy, dx)
	if angle < 0 {
		angle += 2 * math.Pi
	}
	if lo <= hi {
		return angle >= lo && angle < hi
	}
	return angle >= lo || angle < hi
}

func (s Sector) angleRange() (lo, hi float64) {
	width := 2 * math.Pi / float64(s.TotalSectors)
	lo = width * float64(s.SectorIndex)
	hi = lo + width
	return lo, hi
}

func (s Sector) Bounds() geometry.Bounds {
	r := geometry.NewVec3(s.OuterRadius, s.OuterRadius, s.OuterRadius)
	return geometry.BoundsFromMinMax(s.Center.Sub(r), s.Center.Add(r))
}

func (s Sector) Intersects(b geometry.Bounds) bool {
	return boundsOverlap(s.Bounds(), b)
}

// FullyContains is conservatively false: a sector's curved, wedge-shaped
// boundary is never guaranteed to fully cover an axis-aligned box, so
// queries against it never stop early on containment: they descend until
// the resolution's max depth or a leaf or empty node.
func (s Sector) FullyContains(geometry.Bounds) bool { return false }

func (s Sector) IntensityAt(point geometry.Vec3, _ bool) float32 {
	if s.Contains(point) {
		return 1
	}
	return 0
}
