// Package statehash computes deterministic 64-bit mixes of universe state
// and scheduler trace ids, both built on the same xxhash primitive over a
// canonical byte encoding of their inputs.
package statehash

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"

	"github.com/tachyon-beep/tidebreak/internal/field"
	"github.com/tachyon-beep/tidebreak/internal/geometry"
	"github.com/tachyon-beep/tidebreak/internal/octree"
)

// HashUniverse computes a deterministic hash of a universe's full state:
// tick, simulation time, seed, and the octree's structure and values.
// Two universes fed identical operations from the same seed produce
// identical hashes.
func HashUniverse(tick uint64, simTime float32, seed uint64, hasSeed bool, root *octree.Node) uint64 {
	h := xxhash.New()
	writeUint64(h, tick)
	writeUint32(h, math.Float32bits(simTime))
	writeBool(h, hasSeed)
	if hasSeed {
		writeUint64(h, seed)
	}
	hashNode(h, root)
	return h.Sum64()
}

// HashTrace computes the scheduler's deterministic per-work-item trace id:
// H(master_seed, tick, entity_id, plugin_index). Only same-platform
// reproducibility is required here, unlike HashUniverse's cross-platform
// goal, but both are built on the same xxhash primitive.
func HashTrace(masterSeed uint64, tick uint64, entityID uint64, pluginIndex uint32) uint64 {
	h := xxhash.New()
	writeUint64(h, masterSeed)
	writeUint64(h, tick)
	writeUint64(h, entityID)
	writeUint32(h, pluginIndex)
	return h.Sum64()
}

func hashNode(h *xxhash.Digest, n *octree.Node) {
	writeUint64(h, uint64(n.Depth))
	hashBounds(h, n.Bounds)

	switch n.Kind {
	case octree.KindEmpty:
		writeUint8(h, 0)
	case octree.KindLeaf:
		writeUint8(h, 1)
		hashValues(h, n.Values())
	case octree.KindInternal:
		writeUint8(h, 2)
		hashStats(h, n.Stats())
		for i := 0; i < 8; i++ {
			writeUint64(h, uint64(i))
			child := n.Child(i)
			if child != nil {
				writeBool(h, true)
				hashNode(h, child)
			} else {
				writeBool(h, false)
			}
		}
	}
}

func hashBounds(h *xxhash.Digest, b geometry.Bounds) {
	writeFloat32(h, b.Min.X)
	writeFloat32(h, b.Min.Y)
	writeFloat32(h, b.Min.Z)
	writeFloat32(h, b.Max.X)
	writeFloat32(h, b.Max.Y)
	writeFloat32(h, b.Max.Z)
}

func hashValues(h *xxhash.Digest, values field.Values) {
	for _, f := range field.All() {
		writeFloat32(h, values.Get(f))
	}
}

func hashStats(h *xxhash.Digest, stats field.FieldStats) {
	for _, f := range field.All() {
		s := stats.Get(f)
		writeFloat32(h, s.Mean)
		writeFloat32(h, s.Variance)
		writeFloat32(h, s.Min)
		writeFloat32(h, s.Max)
		writeUint32(h, s.SampleCount)
	}
	writeUint8(h, stats.Material.Mode)
	writeUint32(h, stats.Material.ModeCount)
	writeUint32(h, stats.Material.SampleCount)
	for _, bin := range stats.Material.Distribution {
		writeUint8(h, bin.Value)
		writeUint32(h, bin.Count)
	}
}

func writeUint64(h *xxhash.Digest, v uint64) {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], v)
	h.Write(b[:])
}

func writeUint32(h *xxhash.Digest, v uint32) {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], v)
	h.Write(b[:])
}

func writeFloat32(h *xxhash.Digest, f float32) {
	writeUint32(h, math.Float32bits(f))
}

func writeUint8(h *xxhash.Digest, v uint8) {
	h.Write([]byte{v})
}

func writeBool(h *xxhash.Digest, v bool) {
	if v {
		writeUint8(h, 1)
		return
	}
	writeUint8(h, 0)
}
