package rules

import (
	"github.com/arcadelab/ballpit/internal/registry"
	"github.com/arcadelab/ballpit/internal/sim"
)

const (
	growthStep      = 1.5
	growthMaxRadius = 28
	growthPopCap    = 48
)

// growth fattens both balls of every collision until they are too big
// to miss each other; oversized balls burst into a shower of minims.
type growth struct{}

func (growth) ID() string    { return "growth" }
func (growth) Title() string { return "Katamari" }
func (growth) Describe() string {
	return "Collisions grow balls; oversized balls burst"
}

func (growth) Install(script *sim.Script) {
	burst := func(env *sim.Env, b *sim.BallHandle) {
		x, y := b.X(), b.Y()
		b.Destroy()
		if env.BallCount() >= growthPopCap {
			return
		}
		small := 4.0
		for range 3 {
			env.Spawn(1, sim.SpawnOptions{X: &x, Y: &y, Radius: &small})
		}
	}

	script.OnBallCollision(func(env *sim.Env, a, b *sim.BallHandle) {
		a.SetRadius(a.Radius() + growthStep)
		b.SetRadius(b.Radius() + growthStep)
		if a.Radius() > growthMaxRadius {
			burst(env, a)
		}
		if b.Radius() > growthMaxRadius {
			burst(env, b)
		}
	})
}

func init() {
	registry.Register("growth", func() registry.Rule { return growth{} })
}
