package sim

import "math"

// MinBallRadius is the lower bound a ball radius is clamped to on mutation.
const MinBallRadius = 1.0

// Ball is a single circular body in the arena.
// Fields are mutated by the engine, the collision resolver, and (through
// a BallHandle) by rule handlers. External code outside this package
// should go through BallHandle instead of holding a *Ball.
type Ball struct {
	ID     int     // Unique, monotonic, never reused
	X, Y   float64 // Center position
	VX, VY float64 // Velocity
	Radius float64 // Always >= MinBallRadius
	Color  string  // Opaque color string (hex or terminal palette code)
	Alive  bool    // False once destroyed; removed at end of tick

	// Data is the per-ball key-value bag owned exclusively by this
	// ball. It is cleared when the ball is removed from the arena.
	Data map[string]any
}

// Speed returns the magnitude of the ball's velocity.
func (b *Ball) Speed() float64 {
	return math.Hypot(b.VX, b.VY)
}

// Clone returns a deep copy of the ball. The data bag is copied into a
// fresh map (values are shared, keys are not aliased) so a snapshot
// never aliases live state.
func (b *Ball) Clone() *Ball {
	c := *b
	c.Data = make(map[string]any, len(b.Data))
	for k, v := range b.Data {
		c.Data[k] = v
	}
	return &c
}
