package sim

import (
	"fmt"
	"math"
)

// Env is the world surface exposed to event handlers. It lives only for
// the duration of one handler invocation.
type Env struct {
	sim *Sim
}

// Arena returns the arena geometry.
func (e *Env) Arena() Arena { return e.sim.arena }

// Frame returns the current frame counter.
func (e *Env) Frame() int { return e.sim.frame }

// Elapsed returns the accumulated simulation time in seconds.
func (e *Env) Elapsed() float64 { return e.sim.state.Elapsed }

// Score returns the current score accumulator.
func (e *Env) Score() int { return e.sim.state.Score }

// AddScore adds n (may be negative) to the score accumulator.
func (e *Env) AddScore(n int) { e.sim.state.Score += n }

// BallCount returns the number of live balls.
func (e *Env) BallCount() int { return e.sim.state.LiveCount() }

// Rand exposes the simulation's seeded generator so handler-driven
// randomness stays deterministic and snapshot-safe.
func (e *Env) Rand() *RNG { return &e.sim.state.RNG }

// Spawn creates count balls, randomizing any field not fixed by opts,
// and fires the spawn event for each.
func (e *Env) Spawn(count int, opts SpawnOptions) []*BallHandle {
	return e.sim.spawn(count, opts)
}

// SpawnOptions pins individual fields of spawned balls. Nil fields are
// randomized from the seeded generator.
type SpawnOptions struct {
	Radius *float64
	X      *float64
	Y      *float64
	VX     *float64
	VY     *float64
	Color  *string
}

// BallHandle is the mutation-safe proxy through which event handlers
// read and write one ball. Mutators enforce invariants (radius floor);
// handlers never hold the ball's storage directly.
type BallHandle struct {
	sim  *Sim
	ball *Ball
}

// ID returns the ball's unique id.
func (h *BallHandle) ID() int { return h.ball.ID }

// Alive reports whether the ball is still live.
func (h *BallHandle) Alive() bool { return h.ball.Alive }

// X returns the ball's horizontal position.
func (h *BallHandle) X() float64 { return h.ball.X }

// SetX moves the ball horizontally.
func (h *BallHandle) SetX(x float64) { h.ball.X = x }

// Y returns the ball's vertical position.
func (h *BallHandle) Y() float64 { return h.ball.Y }

// SetY moves the ball vertically.
func (h *BallHandle) SetY(y float64) { h.ball.Y = y }

// VX returns the horizontal velocity component.
func (h *BallHandle) VX() float64 { return h.ball.VX }

// SetVX sets the horizontal velocity component.
func (h *BallHandle) SetVX(vx float64) { h.ball.VX = vx }

// VY returns the vertical velocity component.
func (h *BallHandle) VY() float64 { return h.ball.VY }

// SetVY sets the vertical velocity component.
func (h *BallHandle) SetVY(vy float64) { h.ball.VY = vy }

// Radius returns the ball's radius.
func (h *BallHandle) Radius() float64 { return h.ball.Radius }

// SetRadius sets the radius, clamped to the minimum of 1.
func (h *BallHandle) SetRadius(r float64) {
	h.ball.Radius = math.Max(r, MinBallRadius)
}

// Color returns the ball's color string.
func (h *BallHandle) Color() string { return h.ball.Color }

// SetColor sets the ball's color. Any value is coerced to text.
func (h *BallHandle) SetColor(c any) {
	h.ball.Color = fmt.Sprint(c)
}

// Data returns the per-ball key-value bag by reference.
func (h *BallHandle) Data() map[string]any { return h.ball.Data }

// SetVelocity sets both velocity components at once.
func (h *BallHandle) SetVelocity(vx, vy float64) {
	h.ball.VX = vx
	h.ball.VY = vy
}

// ScaleSpeed multiplies both velocity components by factor.
func (h *BallHandle) ScaleSpeed(factor float64) {
	h.ball.VX *= factor
	h.ball.VY *= factor
}

// Destroy marks the ball dead. Physical removal happens at the end of
// the current tick so iteration order stays stable.
func (h *BallHandle) Destroy() {
	h.ball.Alive = false
}

// Duplicate creates a live copy of the ball with a fresh id and its own
// data bag, and fires the spawn event for the copy.
func (h *BallHandle) Duplicate() *BallHandle {
	s := h.sim
	c := h.ball.Clone()
	c.ID = s.state.NextID
	s.state.NextID++
	c.Alive = true
	s.state.Balls = append(s.state.Balls, c)

	nh := s.handle(c)
	s.script.emitSpawn(s.env(), nh)
	return nh
}
