package sim

import "math"

// Default stepper and history settings.
const (
	DefaultStep            = 1.0 / 120 // Fixed physics step in seconds
	DefaultMaxFrameDt      = 0.25      // Cap on a single external time advance
	DefaultHistoryCapacity = 5000      // Frames retained for time travel
)

// ArcadeParams bounds the outgoing angle of a wall bounce, measured
// from the inward surface normal. Angles are radians.
type ArcadeParams struct {
	MinAngle float64 // Shallowest allowed reflection (default 15°)
	MaxAngle float64 // Most reversed allowed reflection (default 165°)
}

// RealisticParams tunes the energy-lossy physics variant.
type RealisticParams struct {
	Gravity       float64 // Downward acceleration, units/s²
	Elasticity    float64 // Fraction of speed kept per collision, <= 1
	AirResistance float64 // Per-step velocity retention factor, <= 1
	MinVelocity   float64 // Below this speed near the boundary a ball settles
	GroundLevel   float64 // Fraction of arena radius counting as "near boundary"
}

// SpawnParams controls randomized fields of newly spawned balls.
type SpawnParams struct {
	MinRadius float64
	MaxRadius float64
	MinSpeed  float64
	MaxSpeed  float64
	Colors    []string
}

// Params collects every tunable of the simulation.
type Params struct {
	Step       float64 // Fixed physics timestep in seconds
	MaxFrameDt float64 // Largest external advance accepted at once
	HistoryCap int     // Snapshot ring capacity
	Variant    Variant // Initial physics variant
	Collisions bool    // Ball-ball collisions enabled
	Seed       int64   // RNG seed; 0 is replaced at reset time by the caller
	Arcade     ArcadeParams
	Realistic  RealisticParams
	Spawn      SpawnParams
}

// DefaultParams returns the stock simulation tuning.
func DefaultParams() Params {
	return Params{
		Step:       DefaultStep,
		MaxFrameDt: DefaultMaxFrameDt,
		HistoryCap: DefaultHistoryCapacity,
		Variant:    VariantArcade,
		Collisions: true,
		Seed:       1,
		Arcade: ArcadeParams{
			MinAngle: 15 * math.Pi / 180,
			MaxAngle: 165 * math.Pi / 180,
		},
		Realistic: RealisticParams{
			Gravity:       350,
			Elasticity:    0.8,
			AirResistance: 0.995,
			MinVelocity:   20,
			GroundLevel:   0.9,
		},
		Spawn: SpawnParams{
			MinRadius: 6,
			MaxRadius: 14,
			MinSpeed:  60,
			MaxSpeed:  140,
			Colors: []string{
				"#ff5f5f", "#5fff87", "#5fafff", "#ffd75f",
				"#ff87d7", "#5fffd7", "#d78700",
			},
		},
	}
}

// sanitize fills zero-valued fields with defaults so a partially
// populated Params is still usable.
func (p *Params) sanitize() {
	def := DefaultParams()
	if p.Step <= 0 {
		p.Step = def.Step
	}
	if p.MaxFrameDt <= 0 {
		p.MaxFrameDt = def.MaxFrameDt
	}
	if p.HistoryCap <= 0 {
		p.HistoryCap = def.HistoryCap
	}
	if p.Arcade.MinAngle <= 0 {
		p.Arcade.MinAngle = def.Arcade.MinAngle
	}
	if p.Arcade.MaxAngle <= 0 {
		p.Arcade.MaxAngle = def.Arcade.MaxAngle
	}
	if p.Realistic.Elasticity <= 0 {
		p.Realistic.Elasticity = def.Realistic.Elasticity
	}
	if p.Realistic.AirResistance <= 0 {
		p.Realistic.AirResistance = def.Realistic.AirResistance
	}
	if p.Realistic.GroundLevel <= 0 {
		p.Realistic.GroundLevel = def.Realistic.GroundLevel
	}
	if p.Spawn.MinRadius <= 0 {
		p.Spawn.MinRadius = def.Spawn.MinRadius
	}
	if p.Spawn.MaxRadius < p.Spawn.MinRadius {
		p.Spawn.MaxRadius = p.Spawn.MinRadius
	}
	if p.Spawn.MaxSpeed < p.Spawn.MinSpeed {
		p.Spawn.MaxSpeed = p.Spawn.MinSpeed
	}
	if len(p.Spawn.Colors) == 0 {
		p.Spawn.Colors = def.Spawn.Colors
	}
}
