// Package config provides YAML-based configuration loading and physics
// presets for the ballpit simulator.
package config

import (
	"math"

	"github.com/arcadelab/ballpit/internal/sim"
)

// SimConfig is the full on-disk configuration of a simulation run.
type SimConfig struct {
	Arena      ArenaConfig   `yaml:"arena"`
	Engine     EngineConfig  `yaml:"engine"`
	Spawn      SpawnConfig   `yaml:"spawn"`
	Stepper    StepperConfig `yaml:"stepper"`
	History    HistoryConfig `yaml:"history"`
	Collisions bool          `yaml:"collisions"`
}

// ArenaConfig describes the circular boundary. Angles are degrees in
// the file and converted to radians for the simulation.
type ArenaConfig struct {
	Radius      float64 `yaml:"radius"`
	GapAngleDeg float64 `yaml:"gap_angle_deg"`
	GapWidthDeg float64 `yaml:"gap_width_deg"`
}

// EngineConfig selects and tunes the physics variant.
type EngineConfig struct {
	Name      string          `yaml:"name"` // arcade | arcadeSimple | realistic
	Arcade    ArcadeConfig    `yaml:"arcade"`
	Realistic RealisticConfig `yaml:"realistic"`
}

// ArcadeConfig bounds wall-reflection angles, in degrees from the
// inward surface normal.
type ArcadeConfig struct {
	MinAngleDeg float64 `yaml:"min_angle_deg"`
	MaxAngleDeg float64 `yaml:"max_angle_deg"`
}

// RealisticConfig tunes the energy-lossy variant.
type RealisticConfig struct {
	Gravity       float64 `yaml:"gravity"`
	Elasticity    float64 `yaml:"elasticity"`
	AirResistance float64 `yaml:"air_resistance"`
	MinVelocity   float64 `yaml:"min_velocity"`
	GroundLevel   float64 `yaml:"ground_level"`
}

// SpawnConfig controls the initial population and randomized fields of
// spawned balls.
type SpawnConfig struct {
	Count     int      `yaml:"count"`
	MinRadius float64  `yaml:"min_radius"`
	MaxRadius float64  `yaml:"max_radius"`
	MinSpeed  float64  `yaml:"min_speed"`
	MaxSpeed  float64  `yaml:"max_speed"`
	Colors    []string `yaml:"colors"`
}

// StepperConfig tunes the fixed-timestep driver.
type StepperConfig struct {
	StepHz     int     `yaml:"step_hz"`      // Physics ticks per second
	MaxFrameDt float64 `yaml:"max_frame_dt"` // Cap on one external advance, seconds
}

// HistoryConfig bounds the time-travel snapshot store.
type HistoryConfig struct {
	Capacity int `yaml:"capacity"`
}

// ToArena converts the arena section into simulation geometry centered
// at the origin.
func (c SimConfig) ToArena() (sim.Arena, error) {
	return sim.NewArena(
		0, 0,
		c.Arena.Radius,
		c.Arena.GapAngleDeg*math.Pi/180,
		c.Arena.GapWidthDeg*math.Pi/180,
	)
}

// ToParams converts the configuration into simulation parameters.
func (c SimConfig) ToParams(seed int64) sim.Params {
	p := sim.DefaultParams()
	p.Seed = seed
	p.Variant = sim.ParseVariant(c.Engine.Name)
	p.Collisions = c.Collisions

	if c.Stepper.StepHz > 0 {
		p.Step = 1.0 / float64(c.Stepper.StepHz)
	}
	if c.Stepper.MaxFrameDt > 0 {
		p.MaxFrameDt = c.Stepper.MaxFrameDt
	}
	if c.History.Capacity > 0 {
		p.HistoryCap = c.History.Capacity
	}
	if c.Engine.Arcade.MinAngleDeg > 0 {
		p.Arcade.MinAngle = c.Engine.Arcade.MinAngleDeg * math.Pi / 180
	}
	if c.Engine.Arcade.MaxAngleDeg > 0 {
		p.Arcade.MaxAngle = c.Engine.Arcade.MaxAngleDeg * math.Pi / 180
	}
	if c.Engine.Realistic.Gravity != 0 {
		p.Realistic.Gravity = c.Engine.Realistic.Gravity
	}
	if c.Engine.Realistic.Elasticity > 0 {
		p.Realistic.Elasticity = c.Engine.Realistic.Elasticity
	}
	if c.Engine.Realistic.AirResistance > 0 {
		p.Realistic.AirResistance = c.Engine.Realistic.AirResistance
	}
	if c.Engine.Realistic.MinVelocity > 0 {
		p.Realistic.MinVelocity = c.Engine.Realistic.MinVelocity
	}
	if c.Engine.Realistic.GroundLevel > 0 {
		p.Realistic.GroundLevel = c.Engine.Realistic.GroundLevel
	}
	if c.Spawn.MinRadius > 0 {
		p.Spawn.MinRadius = c.Spawn.MinRadius
	}
	if c.Spawn.MaxRadius > 0 {
		p.Spawn.MaxRadius = c.Spawn.MaxRadius
	}
	if c.Spawn.MinSpeed > 0 {
		p.Spawn.MinSpeed = c.Spawn.MinSpeed
	}
	if c.Spawn.MaxSpeed > 0 {
		p.Spawn.MaxSpeed = c.Spawn.MaxSpeed
	}
	if len(c.Spawn.Colors) > 0 {
		p.Spawn.Colors = c.Spawn.Colors
	}
	return p
}

// PhysicsPreset represents a named physics tuning.
type PhysicsPreset string

const (
	PresetStandard PhysicsPreset = "standard"
	PresetBouncy   PhysicsPreset = "bouncy"
	PresetFloaty   PhysicsPreset = "floaty"
)

// ApplyPreset adjusts the configuration for a named preset. Unknown
// preset names leave the configuration unchanged.
func ApplyPreset(cfg *SimConfig, preset PhysicsPreset) {
	switch preset {
	case PresetBouncy:
		cfg.Engine.Realistic.Elasticity = 0.95
		cfg.Engine.Realistic.AirResistance = 0.999
		cfg.Spawn.MinSpeed = 120
		cfg.Spawn.MaxSpeed = 220
	case PresetFloaty:
		cfg.Engine.Realistic.Gravity = 120
		cfg.Engine.Realistic.Elasticity = 0.7
		cfg.Spawn.MinSpeed = 30
		cfg.Spawn.MaxSpeed = 80
	case PresetStandard:
		// Stock tuning.
	}
}
