package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// SimulationConfig is the TOML-manifest form of a sim.Simulation's
// construction parameters.
type SimulationConfig struct {
	MasterSeed  uint64 `toml:"master_seed"`
	WorkerCount int    `toml:"worker_count"`
}

// LoadSimulationConfig reads and parses a simulation manifest. Unlike
// LoadUniverseConfig, a missing file is not an error: simulations have
// sensible defaults without one, so callers get (nil, nil) and fall back
// to sim.NewSimulation's own defaults.
func LoadSimulationConfig(path string) (*SimulationConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading simulation config %s: %w", path, err)
	}

	var cfg SimulationConfig
	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return nil, fmt.Errorf("parsing simulation config %s: %w", path, err)
	}
	return &cfg, nil
}
