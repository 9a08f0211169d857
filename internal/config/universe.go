package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/tachyon-beep/tidebreak/internal/geometry"
	"github.com/tachyon-beep/tidebreak/internal/octree"
)

// UniverseConfig is the TOML-manifest form of an octree.Config: the shape
// and thresholds that determine how a field.Universe's octree splits,
// merges, and resolves queries.
type UniverseConfig struct {
	Bounds struct {
		Width  float32 `toml:"width"`
		Height float32 `toml:"height"`
		Depth  float32 `toml:"depth"`
	} `toml:"bounds"`

	BaseResolution float32 `toml:"base_resolution"`
	MergeThreshold float32 `toml:"merge_threshold"`
	SplitThreshold float32 `toml:"split_threshold"`
}

// ToOctreeConfig converts the manifest form into an octree.Config, deriving
// MaxDepth from the declared bounds and base resolution the same way
// DefaultConfig does.
func (c UniverseConfig) ToOctreeConfig() octree.Config {
	bounds := geometry.NewBounds(c.Bounds.Width, c.Bounds.Height, c.Bounds.Depth)
	cfg := octree.Config{
		Bounds:         bounds,
		BaseResolution: c.BaseResolution,
		MergeThreshold: c.MergeThreshold,
		SplitThreshold: c.SplitThreshold,
	}
	cfg.MaxDepth = octree.CalculateMaxDepth(bounds, c.BaseResolution)
	return cfg
}

// LoadUniverseConfig reads and parses a universe manifest from an explicit
// path; unlike LoadSimulationConfig, there is no implicit default path, so
// a missing file is reported rather than silently tolerated.
func LoadUniverseConfig(path string) (*UniverseConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("universe config %s: %w", path, os.ErrNotExist)
		}
		return nil, fmt.Errorf("reading universe config %s: %w", path, err)
	}

	var cfg UniverseConfig
	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return nil, fmt.Errorf("parsing universe config %s: %w", path, err)
	}
	return &cfg, nil
}
