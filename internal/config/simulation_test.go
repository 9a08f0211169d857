package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadSimulationConfigParsesDeclaredValues(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "simulation.toml")
	content := `master_seed = 12345
worker_count = 4
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadSimulationConfig(path)
	if err != nil {
		t.Fatalf("LoadSimulationConfig: %v", err)
	}
	if cfg.MasterSeed != 12345 || cfg.WorkerCount != 4 {
		t.Fatalf("unexpected config: %+v", cfg)
	}
}

func TestLoadSimulationConfigMissingFileReturnsNilNil(t *testing.T) {
	t.Parallel()

	cfg, err := LoadSimulationConfig(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("expected no error for a missing optional config, got %v", err)
	}
	if cfg != nil {
		t.Fatalf("expected nil config for a missing file, got %+v", cfg)
	}
}
