package sim

import "math"

// separationNudge is the speed added along the contact normal when a
// rule handler leaves a pair overlapping after the collision event, to
// keep the pair from re-colliding on the very next tick.
const separationNudge = 5.0

// resolveCollisions processes every distinct unordered pair of live
// balls once, in stable (i, j) order with i < j by collection index.
// Balls spawned by handlers during resolution join the collection after
// the captured length and are first considered next tick.
func (s *Sim) resolveCollisions() {
	balls := s.state.Balls
	n := len(balls)
	for i := 0; i < n; i++ {
		a := balls[i]
		if !a.Alive {
			continue
		}
		for j := i + 1; j < n; j++ {
			b := balls[j]
			if !b.Alive {
				continue
			}
			s.resolvePair(a, b)
			if !a.Alive {
				break
			}
		}
	}
}

// resolvePair detects and resolves contact between two balls, fires the
// collision event, and re-separates the pair if the handler mutated
// radii or positions back into overlap.
func (s *Sim) resolvePair(a, b *Ball) {
	dx := b.X - a.X
	dy := b.Y - a.Y
	dist := math.Hypot(dx, dy)
	sum := a.Radius + b.Radius
	if dist >= sum || dist <= contactEps {
		return
	}

	nx := dx / dist
	ny := dy / dist
	separate(a, b, nx, ny, sum-dist)

	if s.state.Variant == VariantArcadeSimple {
		// Pure direction bounce: reflect each velocity about the normal
		// and keep each ball's pre-collision speed. No momentum transfer.
		bounceKeepSpeed(a, nx, ny)
		bounceKeepSpeed(b, nx, ny)
	} else {
		// Equal-mass elastic exchange of the normal velocity components.
		va := a.VX*nx + a.VY*ny
		vb := b.VX*nx + b.VY*ny
		diff := vb - va
		a.VX += nx * diff
		a.VY += ny * diff
		b.VX -= nx * diff
		b.VY -= ny * diff
		if s.state.Variant == VariantRealistic {
			e := s.params.Realistic.Elasticity
			a.VX *= e
			a.VY *= e
			b.VX *= e
			b.VY *= e
		}
	}

	s.script.emitBallCollision(s.env(), s.handle(a), s.handle(b))

	// The handler may have changed radii or positions; re-check with the
	// updated values and apply a corrective pass if still overlapping.
	dx = b.X - a.X
	dy = b.Y - a.Y
	dist = math.Hypot(dx, dy)
	sum = a.Radius + b.Radius
	if dist > contactEps && dist < sum {
		nx = dx / dist
		ny = dy / dist
		separate(a, b, nx, ny, sum-dist)
		a.VX -= nx * separationNudge
		a.VY -= ny * separationNudge
		b.VX += nx * separationNudge
		b.VY += ny * separationNudge
	}
}

// separate pushes the pair apart along the normal until the overlap is
// fully resolved. Each ball moves in proportion to the other ball's
// share of the combined radius, so the larger ball moves less.
func separate(a, b *Ball, nx, ny, overlap float64) {
	sum := a.Radius + b.Radius
	if sum <= 0 {
		return
	}
	shareA := b.Radius / sum
	shareB := a.Radius / sum
	a.X -= nx * overlap * shareA
	a.Y -= ny * overlap * shareA
	b.X += nx * overlap * shareB
	b.Y += ny * overlap * shareB
}

// bounceKeepSpeed reflects a ball's velocity about the contact normal
// and rescales the result to the ball's pre-collision speed.
func bounceKeepSpeed(b *Ball, nx, ny float64) {
	before := b.Speed()
	dot := b.VX*nx + b.VY*ny
	b.VX -= 2 * dot * nx
	b.VY -= 2 * dot * ny
	after := b.Speed()
	if after > contactEps {
		scale := before / after
		b.VX *= scale
		b.VY *= scale
	}
}
