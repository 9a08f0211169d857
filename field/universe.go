// Package field is the top-level Field Store façade: a Universe wraps a
// sparse octree and exposes stamping, direct writes, volumetric and
// foveated queries, propagation stepping, and a deterministic state
// hash, per SPEC_FULL.md §6.1.
package field

import (
	"github.com/google/uuid"

	"github.com/tachyon-beep/tidebreak/internal/field"
	"github.com/tachyon-beep/tidebreak/internal/geometry"
	"github.com/tachyon-beep/tidebreak/internal/octree"
	"github.com/tachyon-beep/tidebreak/internal/persist"
	"github.com/tachyon-beep/tidebreak/internal/statehash"
)

// Universe owns a single octree and its simulation clock.
type Universe struct {
	tree    *octree.Octree
	config  octree.Config
	tick    uint64
	simTime float32
	seed    uint64
	hasSeed bool
	runID   uuid.UUID
}

// NewUniverse creates a Universe with the given octree configuration,
// unseeded.
func NewUniverse(config octree.Config) *Universe {
	return &Universe{
		tree:   octree.NewWithConfig(config),
		config: config,
		runID:  uuid.New(),
	}
}

// NewUniverseSeeded creates a Universe whose Reset recreates the octree
// and records seed for reproducibility tracking. The octree's own
// traversal is deterministic regardless of seed; seed is threaded
// through for callers layering seeded stamping/spawn decisions on top.
func NewUniverseSeeded(config octree.Config, seed uint64) *Universe {
	u := NewUniverse(config)
	u.seed = seed
	u.hasSeed = true
	return u
}

// RunID returns the universe's run identifier.
func (u *Universe) RunID() uuid.UUID { return u.runID }

// Tick returns the number of propagation steps taken so far.
func (u *Universe) Tick() uint64 { return u.tick }

// SimTime returns the accumulated simulated time.
func (u *Universe) SimTime() float32 { return u.simTime }

// Stamp applies a single shape-bounded mutation.
func (u *Universe) Stamp(stamp octree.Stamp) {
	u.tree.ApplyStamp(stamp)
}

// StampMany applies a sequence of stamps in order.
func (u *Universe) StampMany(stamps []octree.Stamp) {
	for _, s := range stamps {
		u.tree.ApplyStamp(s)
	}
}

// SetPoint directly overwrites the values at position, bypassing blend
// semantics.
func (u *Universe) SetPoint(position geometry.Vec3, values field.Values) {
	u.tree.SetPoint(position, values)
}

// QueryPoint returns the field values at position, with resolution and
// interpolation metadata.
func (u *Universe) QueryPoint(position geometry.Vec3) octree.PointResult {
	return u.tree.QueryPointDetailed(octree.PointQuery{Position: position})
}

// QueryVolume returns the aggregate statistics of every cell a sphere of
// the given center and radius touches, descended to resolution.
func (u *Universe) QueryVolume(center geometry.Vec3, radius float32, resolution octree.QueryResolution) octree.QueryResult {
	shape := octree.Sphere{Center: center, Radius: radius}
	return u.tree.QueryVolume(octree.VolumeQuery{Shape: shape, Resolution: resolution})
}

// ObserveFoveated returns a multi-shell, multi-sector perception snapshot
// centered on an observer.
func (u *Universe) ObserveFoveated(query octree.FoveatedQuery) octree.FoveatedResult {
	return u.tree.QueryFoveated(query)
}

// Step advances propagation by dt and advances the tick counter.
func (u *Universe) Step(dt float32) {
	u.tree.Step(dt)
	u.tick++
	u.simTime += dt
}

// Reset re-creates the octree with the universe's original
// configuration, discarding all stamped and propagated state.
func (u *Universe) Reset() {
	u.tree = octree.NewWithConfig(u.config)
	u.tick = 0
	u.simTime = 0
}

// StateHash computes a deterministic 64-bit hash of the universe's
// current tick, simulated time, seed, and octree contents.
func (u *Universe) StateHash() uint64 {
	return statehash.HashUniverse(u.tick, u.simTime, u.seed, u.hasSeed, u.tree.Root())
}

// Tree returns the universe's underlying octree, for callers that need
// direct structural access (tests, persistence).
func (u *Universe) Tree() *octree.Octree { return u.tree }

// Snapshot captures a complete, serializable snapshot of the universe for
// use with internal/persist's SaveUniverse.
func (u *Universe) Snapshot() persist.UniverseSnapshot {
	return persist.BuildUniverseSnapshot(u.tree, u.tick, u.simTime, u.seed, u.hasSeed)
}

// RestoreUniverse rebuilds a live Universe from a snapshot previously
// produced by Snapshot (round-tripped through internal/persist).
func RestoreUniverse(snapshot persist.UniverseSnapshot) *Universe {
	return &Universe{
		tree:    persist.RestoreTree(snapshot),
		config:  snapshot.Config,
		tick:    snapshot.Tick,
		simTime: snapshot.SimTime,
		seed:    snapshot.Seed,
		hasSeed: snapshot.HasSeed,
		runID:   uuid.New(),
	}
}
