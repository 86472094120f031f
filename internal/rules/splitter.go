package rules

import (
	"github.com/arcadelab/ballpit/internal/registry"
	"github.com/arcadelab/ballpit/internal/sim"
)

const (
	splitMinRadius  = 8  // Balls smaller than this never split
	splitPopulation = 64 // Stop splitting once the arena is this full
	splitShrink     = 0.7
)

// splitter breaks the larger ball of a colliding pair into two smaller
// copies flying apart, until the arena fills up.
type splitter struct{}

func (splitter) ID() string    { return "splitter" }
func (splitter) Title() string { return "Mitosis" }
func (splitter) Describe() string {
	return "Collisions split the larger ball in two"
}

func (splitter) Install(script *sim.Script) {
	script.OnBallCollision(func(env *sim.Env, a, b *sim.BallHandle) {
		if env.BallCount() >= splitPopulation {
			return
		}
		big := a
		if b.Radius() > a.Radius() {
			big = b
		}
		if big.Radius() < splitMinRadius {
			return
		}

		big.SetRadius(big.Radius() * splitShrink)
		twin := big.Duplicate()
		// Send the twin the opposite way so the pair separates.
		twin.SetVelocity(-big.VX(), -big.VY())
	})
}

func init() {
	registry.Register("splitter", func() registry.Rule { return splitter{} })
}
