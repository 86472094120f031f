package rules

import (
	"github.com/arcadelab/ballpit/internal/registry"
	"github.com/arcadelab/ballpit/internal/sim"
)

// Points awarded per escape, scaled down by ball size so small nimble
// balls are worth more.
const (
	exitBasePoints  = 10
	exitSmallBonus  = 5
	exitSmallRadius = 8
)

// scoreExit awards points each time a ball escapes through the gap and
// replaces the escapee with a fresh ball so the population is stable.
type scoreExit struct{}

func (scoreExit) ID() string    { return "score-exit" }
func (scoreExit) Title() string { return "Escape Scoring" }
func (scoreExit) Describe() string {
	return "Score points per gap escape; escapees are replaced"
}

func (scoreExit) Install(script *sim.Script) {
	script.OnExit(func(env *sim.Env, b *sim.BallHandle) {
		points := exitBasePoints
		if b.Radius() < exitSmallRadius {
			points += exitSmallBonus
		}
		env.AddScore(points)

		// The escapee re-enters at the center; replace it with a fresh
		// randomized ball and drop the old one.
		b.Destroy()
		env.Spawn(1, sim.SpawnOptions{})
	})
}

func init() {
	registry.Register("score-exit", func() registry.Rule { return scoreExit{} })
}
