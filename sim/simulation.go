// Package sim is the top-level Simulation façade: it owns an Arena, a
// plugin registry, and a resolver chain, and drives the deterministic
// four-phase tick loop (snapshot, plugin, resolve, apply) described in
// SPEC_FULL.md §4.11.
package sim

import (
	"github.com/google/uuid"

	"github.com/tachyon-beep/tidebreak/internal/arena"
	"github.com/tachyon-beep/tidebreak/internal/entity"
	"github.com/tachyon-beep/tidebreak/internal/output"
	"github.com/tachyon-beep/tidebreak/internal/parallel"
	"github.com/tachyon-beep/tidebreak/internal/persist"
	"github.com/tachyon-beep/tidebreak/internal/plugin"
	"github.com/tachyon-beep/tidebreak/internal/resolver"
	"github.com/tachyon-beep/tidebreak/internal/statehash"
)

// defaultWorkerCount bounds the plugin phase's concurrency when the
// caller does not specify one.
const defaultWorkerCount = 8

// Simulation owns an Arena, a plugin registry, and a resolver chain, and
// advances them one tick at a time.
type Simulation struct {
	arena       *arena.Arena
	registry    *plugin.Registry
	resolvers   []resolver.Resolver
	tick        uint64
	masterSeed  uint64
	workerCount int
	runID       uuid.UUID
}

// Option configures a Simulation at construction time.
type Option func(*Simulation)

// WithWorkerCount overrides the plugin phase's concurrency cap.
func WithWorkerCount(n int) Option {
	return func(s *Simulation) {
		if n > 0 {
			s.workerCount = n
		}
	}
}

// WithRunID pins the simulation's run identifier instead of generating a
// random one.
func WithRunID(id uuid.UUID) Option {
	return func(s *Simulation) { s.runID = id }
}

// NewSimulation creates a Simulation seeded with masterSeed, using the
// default plugin bundles and the reference resolver chain (Physics,
// Combat, Event, in that order).
func NewSimulation(masterSeed uint64, opts ...Option) *Simulation {
	s := &Simulation{
		arena:       arena.New(),
		registry:    plugin.DefaultBundles(),
		masterSeed:  masterSeed,
		workerCount: defaultWorkerCount,
		runID:       uuid.New(),
	}
	physics := resolver.NewPhysicsResolver()
	combat := resolver.NewCombatResolver()
	events := resolver.NewEventResolver()
	s.resolvers = []resolver.Resolver{physics, combat, events}

	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewEmptySimulation creates a Simulation with no registered plugins and
// no resolvers, for callers that want to wire up an exact, minimal
// subset rather than the default bundles and resolver chain.
func NewEmptySimulation(masterSeed uint64, opts ...Option) *Simulation {
	s := &Simulation{
		arena:       arena.New(),
		registry:    plugin.NewRegistry(),
		masterSeed:  masterSeed,
		workerCount: defaultWorkerCount,
		runID:       uuid.New(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// RunID returns the simulation's run identifier.
func (s *Simulation) RunID() uuid.UUID { return s.runID }

// Tick returns the current tick number.
func (s *Simulation) Tick() uint64 { return s.tick }

// Arena returns the simulation's current entity storage.
func (s *Simulation) Arena() *arena.Arena { return s.arena }

// ArenaMut returns the same arena as Arena, for callers that need to
// mutate entities directly during setup. Go has no mutability
// distinction at the type level, so this is an alias kept for parity
// with the reference's separate accessor names — callers must still
// avoid structural mutation (spawn/despawn) between Step calls from
// another goroutine.
func (s *Simulation) ArenaMut() *arena.Arena { return s.arena }

// Spawn creates a new entity and returns its id.
func (s *Simulation) Spawn(tag entity.Tag, inner entity.Inner) entity.Id {
	return s.arena.Spawn(tag, inner)
}

// Despawn removes an entity.
func (s *Simulation) Despawn(id entity.Id) bool {
	return s.arena.Despawn(id)
}

// Get returns an entity by id.
func (s *Simulation) Get(id entity.Id) (*entity.Entity, bool) {
	return s.arena.Get(id)
}

// RegisterPlugin adds a plugin to tag's bundle, on top of the default
// bundles built at construction time.
func (s *Simulation) RegisterPlugin(tag entity.Tag, p plugin.Plugin) {
	s.registry.Register(tag, p)
}

// AddResolver appends a resolver to the resolve-phase chain.
func (s *Simulation) AddResolver(r resolver.Resolver) {
	s.resolvers = append(s.resolvers, r)
}

// CombatResolver returns the default combat resolver if it is still
// present in the chain, so callers can drain its WeaponFired log.
func (s *Simulation) CombatResolver() *resolver.CombatResolver {
	for _, r := range s.resolvers {
		if c, ok := r.(*resolver.CombatResolver); ok {
			return c
		}
	}
	return nil
}

// EventResolver returns the default event resolver if it is still
// present in the chain, so callers can drain the event log.
func (s *Simulation) EventResolver() *resolver.EventResolver {
	for _, r := range s.resolvers {
		if e, ok := r.(*resolver.EventResolver); ok {
			return e
		}
	}
	return nil
}

// Snapshot captures a complete, serializable snapshot of the simulation's
// current arena for use with internal/persist's SaveArena. The plugin
// registry and resolver chain are configuration, not state, and are not
// part of the snapshot.
func (s *Simulation) Snapshot() persist.ArenaSnapshot {
	return persist.BuildArenaSnapshot(s.arena)
}

// RestoreArena replaces the simulation's current arena with one rebuilt
// from a snapshot previously produced by Snapshot.
func (s *Simulation) RestoreArena(snapshot persist.ArenaSnapshot) {
	s.arena = persist.RestoreArena(snapshot)
}

// workItem is one (entity, plugin) pair to run during the plugin phase.
type workItem struct {
	entityID    entity.Id
	pluginIndex uint32
	p           plugin.Plugin
}

// buildWorkList walks entities in ascending id order and, within each
// entity, plugins in registration order for its tag — the scheduler's
// deterministic iteration order (SPEC_FULL.md §4.11).
func (s *Simulation) buildWorkList() []workItem {
	var items []workItem
	for _, id := range s.arena.EntitiesSorted() {
		e, ok := s.arena.Get(id)
		if !ok {
			continue
		}
		for idx, p := range s.registry.PluginsFor(e.Tag()) {
			items = append(items, workItem{entityID: id, pluginIndex: uint32(idx), p: p})
		}
	}
	return items
}

// Step executes one tick: PLUGIN (parallel, read-only), RESOLVE (clone,
// sort, route to resolvers), APPLY (swap buffers, advance tick).
func (s *Simulation) Step() {
	items := s.buildWorkList()
	envelopes := s.runPluginPhase(items)

	next := s.arena.Clone()
	output.SortEnvelopes(envelopes)
	resolver.Run(s.resolvers, envelopes, s.arena, next)

	s.arena = next
	s.tick++
}

// runPluginPhase executes every work item under the bounded worker pool
// and returns all produced envelopes, indexed by item so ordering within
// an item's own emissions is preserved regardless of goroutine
// scheduling.
func (s *Simulation) runPluginPhase(items []workItem) []output.Envelope {
	envelopesByItem := make([][]output.Envelope, len(items))

	indexed := make([]int, len(items))
	for i := range items {
		indexed[i] = i
	}

	parallel.Execute(indexed, s.workerCount, func(i int) error {
		item := items[i]
		traceID := output.TraceId(statehash.HashTrace(s.masterSeed, s.tick, uint64(item.entityID), item.pluginIndex))
		ctx := plugin.Context{EntityID: item.entityID, Tick: s.tick, TraceID: traceID}
		view := plugin.ForPlugin(s.arena, item.p.Declaration(), s.tick)
		proposals := item.p.Run(ctx, view)

		source := output.PluginInstanceId{EntityID: item.entityID, PluginID: item.p.Declaration().ID}
		envs := make([]output.Envelope, len(proposals))
		for seq, o := range proposals {
			envs[seq] = output.NewEnvelope(o, source, traceID, s.tick, seq)
		}
		envelopesByItem[i] = envs
		return nil
	})

	var envelopes []output.Envelope
	for _, envs := range envelopesByItem {
		envelopes = append(envelopes, envs...)
	}
	return envelopes
}
