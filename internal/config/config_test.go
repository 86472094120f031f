package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/arcadelab/ballpit/internal/sim"
)

func TestDefaultConfigConversions(t *testing.T) {
	cfg := DefaultSimConfig()

	arena, err := cfg.ToArena()
	if err != nil {
		t.Fatalf("ToArena failed: %v", err)
	}
	if arena.Radius != 200 {
		t.Errorf("arena radius = %v, want 200", arena.Radius)
	}
	wantGap := 30 * math.Pi / 180
	if math.Abs(arena.GapWidth-wantGap) > 1e-9 {
		t.Errorf("gap width = %v, want %v", arena.GapWidth, wantGap)
	}

	p := cfg.ToParams(42)
	if p.Variant != sim.VariantArcade {
		t.Errorf("variant = %v, want arcade", p.Variant)
	}
	if math.Abs(p.Step-1.0/120) > 1e-12 {
		t.Errorf("step = %v, want 1/120", p.Step)
	}
	if p.HistoryCap != 5000 {
		t.Errorf("history capacity = %d, want 5000", p.HistoryCap)
	}
	wantMin := 15 * math.Pi / 180
	if math.Abs(p.Arcade.MinAngle-wantMin) > 1e-9 {
		t.Errorf("arcade min angle = %v, want %v", p.Arcade.MinAngle, wantMin)
	}
}

func TestLoadSimEmbeddedDefault(t *testing.T) {
	// With no custom path and no config files on disk, the embedded
	// default must load cleanly.
	cfg, err := LoadSim("")
	if err != nil {
		t.Fatalf("LoadSim failed: %v", err)
	}
	if cfg.Arena.Radius <= 0 {
		t.Error("embedded default should define a positive arena radius")
	}
	if cfg.Spawn.Count <= 0 {
		t.Error("embedded default should define an initial spawn count")
	}
}

func TestLoadSimCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sim.yaml")
	body := []byte("arena:\n  radius: 99\nengine:\n  name: realistic\ncollisions: false\n")
	if err := os.WriteFile(path, body, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadSim(path)
	if err != nil {
		t.Fatalf("LoadSim(%s) failed: %v", path, err)
	}
	if cfg.Arena.Radius != 99 {
		t.Errorf("radius = %v, want 99", cfg.Arena.Radius)
	}
	if sim.ParseVariant(cfg.Engine.Name) != sim.VariantRealistic {
		t.Errorf("engine name %q should parse as realistic", cfg.Engine.Name)
	}
	if cfg.Collisions {
		t.Error("collisions should be disabled by the custom file")
	}

	if _, err := LoadSim(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("a missing explicit config path should be an error")
	}
}

func TestApplyPreset(t *testing.T) {
	cfg := DefaultSimConfig()
	ApplyPreset(&cfg, PresetBouncy)
	if cfg.Engine.Realistic.Elasticity != 0.95 {
		t.Errorf("bouncy preset elasticity = %v, want 0.95", cfg.Engine.Realistic.Elasticity)
	}

	cfg = DefaultSimConfig()
	before := cfg.Engine.Realistic
	ApplyPreset(&cfg, PhysicsPreset("bogus"))
	if cfg.Engine.Realistic != before {
		t.Error("unknown preset should leave the config unchanged")
	}
}
