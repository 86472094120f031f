package config

import (
	_ "embed"
)

//go:embed defaults/sim.yaml
var defaultSimYAML []byte

// DefaultSimConfig returns the hard-coded default configuration, used
// as the last fallback if even the embedded YAML fails to parse.
func DefaultSimConfig() SimConfig {
	return SimConfig{
		Arena: ArenaConfig{
			Radius:      200,
			GapAngleDeg: 0,
			GapWidthDeg: 30,
		},
		Engine: EngineConfig{
			Name: "arcade",
			Arcade: ArcadeConfig{
				MinAngleDeg: 15,
				MaxAngleDeg: 165,
			},
			Realistic: RealisticConfig{
				Gravity:       350,
				Elasticity:    0.8,
				AirResistance: 0.995,
				MinVelocity:   20,
				GroundLevel:   0.9,
			},
		},
		Spawn: SpawnConfig{
			Count:     8,
			MinRadius: 6,
			MaxRadius: 14,
			MinSpeed:  60,
			MaxSpeed:  140,
			Colors: []string{
				"#ff5f5f", "#5fff87", "#5fafff", "#ffd75f",
				"#ff87d7", "#5fffd7", "#d78700",
			},
		},
		Stepper: StepperConfig{
			StepHz:     120,
			MaxFrameDt: 0.25,
		},
		History: HistoryConfig{
			Capacity: 5000,
		},
		Collisions: true,
	}
}
