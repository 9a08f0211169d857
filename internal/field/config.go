package field

// Config is a field's valid range, aggregation rule, propagation rule, and
// default value.
type Config struct {
	Min         float32
	Max         float32
	Aggregation Aggregation
	Propagation Propagation
	Default     float32
}

// Clamp restricts value to the field's configured range.
func (c Config) Clamp(value float32) float32 {
	if value < c.Min {
		return c.Min
	}
	if value > c.Max {
		return c.Max
	}
	return value
}

// DefaultConfigFor returns the binding per-field default configuration
// (SPEC_FULL.md §3.1), ported from the reference implementation's
// FieldConfig::default_for.
func DefaultConfigFor(f Field) Config {
	switch f {
	case Occupancy:
		return Config{Min: 0, Max: 1, Aggregation: AggregationMax, Propagation: None(), Default: 0.0}
	case Material:
		return Config{Min: 0, Max: 255, Aggregation: AggregationMode, Propagation: None(), Default: 0.0}
	case Integrity:
		return Config{Min: 0, Max: 1, Aggregation: AggregationMean, Propagation: None(), Default: 1.0}
	case Temperature:
		return Config{Min: 0, Max: 10000, Aggregation: AggregationMean, Propagation: Diffusion(0.05), Default: 293.0}
	case Smoke:
		return Config{Min: 0, Max: 1, Aggregation: AggregationMean, Propagation: DiffusionDecay(0.1, 0.02), Default: 0.0}
	case Noise:
		return Config{Min: 0, Max: 200, Aggregation: AggregationMax, Propagation: Decay(0.3), Default: 0.0}
	case Signal:
		return Config{Min: 0, Max: 1, Aggregation: AggregationMax, Propagation: Decay(0.1), Default: 0.0}
	case CurrentX:
		return Config{Min: -10, Max: 10, Aggregation: AggregationMean, Propagation: None(), Default: 0.0}
	case CurrentY:
		return Config{Min: -10, Max: 10, Aggregation: AggregationMean, Propagation: None(), Default: 0.0}
	case Depth:
		return Config{Min: 0, Max: 10000, Aggregation: AggregationMean, Propagation: None(), Default: 100.0}
	case Salinity:
		return Config{Min: 0, Max: 50, Aggregation: AggregationMean, Propagation: Diffusion(0.001), Default: 35.0}
	case SonarReturn:
		return Config{Min: 0, Max: 1, Aggregation: AggregationMax, Propagation: Decay(0.5), Default: 0.0}
	default:
		return Config{Min: 0, Max: 1, Aggregation: AggregationMean, Propagation: None(), Default: 0.0}
	}
}

// DefaultConfigs returns the full binding per-field default configuration
// array, in field-index order.
func DefaultConfigs() [Count]Config {
	var cfgs [Count]Config
	for _, f := range All() {
		cfgs[f] = DefaultConfigFor(f)
	}
	return cfgs
}
