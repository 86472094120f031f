package sim

import (
	"io"
	"math"

	"github.com/charmbracelet/log"
)

// Sim owns the simulation state and drives it with a fixed timestep.
// It is single-threaded: every operation runs to completion before the
// next begins, and snapshots are never interleaved with ticks.
type Sim struct {
	arena   Arena
	params  Params
	state   *State
	script  *Script
	history *History
	logger  *log.Logger

	frame int     // Ordinal index of the next tick
	acc   float64 // Unconsumed external time
}

// New creates a simulation over the given arena. Zero-valued Params
// fields are replaced with defaults. A nil logger silences the sim.
func New(arena Arena, p Params, logger *log.Logger) *Sim {
	p.sanitize()
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Sim{
		arena:   arena,
		params:  p,
		state:   NewState(p.Variant, p.Collisions, p.Seed),
		script:  NewScript(logger),
		history: NewHistory(p.HistoryCap),
		logger:  logger,
	}
}

func (s *Sim) env() *Env                  { return &Env{sim: s} }
func (s *Sim) handle(b *Ball) *BallHandle { return &BallHandle{sim: s, ball: b} }

// Script returns the event registration surface.
func (s *Sim) Script() *Script { return s.script }

// Arena returns the arena geometry.
func (s *Sim) Arena() Arena { return s.arena }

// Frame returns the index of the next tick to execute.
func (s *Sim) Frame() int { return s.frame }

// Elapsed returns accumulated simulation time in seconds.
func (s *Sim) Elapsed() float64 { return s.state.Elapsed }

// Score returns the score accumulator.
func (s *Sim) Score() int { return s.state.Score }

// Escaped returns how many balls have left through the gap.
func (s *Sim) Escaped() int { return s.state.Escaped }

// BallCount returns the number of live balls.
func (s *Sim) BallCount() int { return s.state.LiveCount() }

// Balls returns the live collection for read-only inspection (the
// viewer renders from this). Callers must not mutate through it.
func (s *Sim) Balls() []*Ball { return s.state.Balls }

// Variant returns the active physics variant.
func (s *Sim) Variant() Variant { return s.state.Variant }

// SetVariant switches the physics variant. Switching never retroactively
// alters motion already applied.
func (s *Sim) SetVariant(v Variant) { s.state.Variant = v }

// CollisionsEnabled reports whether ball-ball collisions are resolved.
func (s *Sim) CollisionsEnabled() bool { return s.state.CollisionsEnabled }

// SetCollisions toggles ball-ball collision resolution.
func (s *Sim) SetCollisions(on bool) { s.state.CollisionsEnabled = on }

// Advance feeds external elapsed time into the fixed-timestep driver
// and returns how many ticks were executed. A pathologically large
// frameDt is capped so a stall cannot trigger a tick avalanche.
func (s *Sim) Advance(frameDt float64) int {
	s.acc += math.Min(frameDt, s.params.MaxFrameDt)
	ticks := 0
	for s.acc >= s.params.Step {
		s.StepOnce()
		s.acc -= s.params.Step
		ticks++
	}
	return ticks
}

// StepOnce saves a pre-tick snapshot at the current frame, executes
// exactly one physics tick, and increments the frame counter.
func (s *Sim) StepOnce() {
	s.history.Save(s.frame, s.state)
	s.tick(s.params.Step)
	s.frame++
}

// tick runs one fixed-duration physics update: the tick event, per-ball
// integration and wall reflection in stable collection order, pairwise
// collision resolution, then removal of balls marked dead.
func (s *Sim) tick(dt float64) {
	s.script.emitTick(s.env(), dt)

	// Balls spawned by handlers during this tick join the collection
	// after the captured slice and are first processed next tick.
	balls := s.state.Balls
	for _, b := range balls {
		if !b.Alive {
			continue
		}
		s.updateBall(b, dt)
		if b.Alive {
			s.reflectWall(b)
		}
	}

	if s.state.CollisionsEnabled {
		s.resolveCollisions()
	}

	s.state.prune()
	s.state.Elapsed += dt
}

// Spawn creates count balls outside of any handler context.
func (s *Sim) Spawn(count int, opts SpawnOptions) []*BallHandle {
	return s.spawn(count, opts)
}

// spawn creates balls, randomizing unspecified fields from the seeded
// generator, and fires the spawn event for each.
func (s *Sim) spawn(count int, opts SpawnOptions) []*BallHandle {
	handles := make([]*BallHandle, 0, count)
	for range count {
		b := s.newRandomBall(opts)
		s.state.Balls = append(s.state.Balls, b)
		h := s.handle(b)
		s.script.emitSpawn(s.env(), h)
		handles = append(handles, h)
	}
	return handles
}

func (s *Sim) newRandomBall(opts SpawnOptions) *Ball {
	rng := &s.state.RNG
	sp := s.params.Spawn

	radius := rng.Range(sp.MinRadius, sp.MaxRadius)
	if opts.Radius != nil {
		radius = math.Max(*opts.Radius, MinBallRadius)
	}

	// Random placement inside the boundary with the radius as margin.
	margin := s.arena.Radius - radius - 1
	if margin < 0 {
		margin = 0
	}
	posAngle := rng.Range(-math.Pi, math.Pi)
	posDist := rng.Range(0, margin)
	x := s.arena.CX + math.Cos(posAngle)*posDist
	y := s.arena.CY + math.Sin(posAngle)*posDist
	if opts.X != nil {
		x = *opts.X
	}
	if opts.Y != nil {
		y = *opts.Y
	}

	speed := rng.Range(sp.MinSpeed, sp.MaxSpeed)
	if s.state.Variant == VariantRealistic {
		// Lossy physics: launch gentler so balls don't slam the wall
		// on the first few ticks.
		speed *= 0.5
	}
	velAngle := rng.Range(-math.Pi, math.Pi)
	vx := math.Cos(velAngle) * speed
	vy := math.Sin(velAngle) * speed
	if opts.VX != nil {
		vx = *opts.VX
	}
	if opts.VY != nil {
		vy = *opts.VY
	}

	color := sp.Colors[rng.Intn(len(sp.Colors))]
	if opts.Color != nil {
		color = *opts.Color
	}

	b := &Ball{
		ID:     s.state.NextID,
		X:      x,
		Y:      y,
		VX:     vx,
		VY:     vy,
		Radius: radius,
		Color:  color,
		Alive:  true,
		Data:   make(map[string]any),
	}
	s.state.NextID++
	return b
}

// SaveState snapshots the current state at the current frame, outside
// the normal pre-tick save (the stepping UI uses this before jumping).
func (s *Sim) SaveState() {
	s.history.Save(s.frame, s.state)
}

// RestoreState replaces the simulation state with the snapshot stored
// for the exact frame. On a miss nothing changes and the sentinel
// error is returned; the sim never fabricates state.
func (s *Sim) RestoreState(frame int) error {
	st, err := s.history.Restore(frame)
	if err != nil {
		return err
	}
	s.state = st
	s.frame = frame
	s.acc = 0
	return nil
}

// ClosestFrame returns the stored frame nearest to the requested one.
// Substituting it for the requested frame is the caller's explicit
// decision, never an automatic fallback.
func (s *Sim) ClosestFrame(frame int) (int, bool) {
	return s.history.Closest(frame)
}

// HistoryStats reports snapshot bookkeeping for diagnostics and the UI.
func (s *Sim) HistoryStats() HistoryStats {
	return s.history.Stats()
}

// ClearHistory drops all snapshots and resets frame bookkeeping.
func (s *Sim) ClearHistory() {
	s.history.Clear()
}

// Reset discards all state and history and reseeds the generator.
// Registered handlers survive a reset; balls do not.
func (s *Sim) Reset(seed int64) {
	s.state = NewState(s.state.Variant, s.state.CollisionsEnabled, seed)
	s.history.Clear()
	s.frame = 0
	s.acc = 0
}
