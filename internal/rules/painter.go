package rules

import (
	"github.com/arcadelab/ballpit/internal/registry"
	"github.com/arcadelab/ballpit/internal/sim"
)

// heatPalette orders colors from cold to hot; each wall hit advances a
// ball one step and a gap escape of a fully heated ball scores extra.
var heatPalette = []string{
	"#5fafff", "#5fffd7", "#5fff87", "#ffd75f", "#d78700", "#ff5f5f",
}

// painter recolors balls as they bounce, tracking per-ball heat in the
// data bag.
type painter struct{}

func (painter) ID() string    { return "painter" }
func (painter) Title() string { return "Heat Painter" }
func (painter) Describe() string {
	return "Wall hits heat balls through a color ramp; hot escapes score big"
}

func (painter) Install(script *sim.Script) {
	script.OnSpawn(func(env *sim.Env, b *sim.BallHandle) {
		b.Data()["heat"] = 0
		b.SetColor(heatPalette[0])
	})

	script.OnWallHit(func(env *sim.Env, b *sim.BallHandle) {
		heat, _ := b.Data()["heat"].(int)
		if heat < len(heatPalette)-1 {
			heat++
		}
		b.Data()["heat"] = heat
		b.SetColor(heatPalette[heat])
	})

	script.OnExit(func(env *sim.Env, b *sim.BallHandle) {
		heat, _ := b.Data()["heat"].(int)
		env.AddScore(1 + heat*2)
		// Escaping quenches the ball.
		b.Data()["heat"] = 0
		b.SetColor(heatPalette[0])
	})
}

func init() {
	registry.Register("painter", func() registry.Rule { return painter{} })
}
