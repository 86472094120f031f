package sim

import "math"

// Variant selects one of the interchangeable physics models.
type Variant int

const (
	// VariantArcade is lossless kinematics with angle-clamped wall
	// reflections and momentum transfer on ball contact.
	VariantArcade Variant = iota
	// VariantArcadeSimple shares Arcade's wall physics but resolves
	// ball contact as a pure direction bounce with no momentum transfer.
	VariantArcadeSimple
	// VariantRealistic adds gravity, air resistance and elasticity.
	VariantRealistic
)

// String returns the variant's configuration name.
func (v Variant) String() string {
	switch v {
	case VariantArcadeSimple:
		return "arcadeSimple"
	case VariantRealistic:
		return "realistic"
	default:
		return "arcade"
	}
}

// ParseVariant maps a configuration name to a variant. Unrecognized
// names fall back to Arcade rather than failing.
func ParseVariant(name string) Variant {
	switch name {
	case "arcadeSimple", "arcade-simple", "simple":
		return VariantArcadeSimple
	case "realistic":
		return VariantRealistic
	default:
		return VariantArcade
	}
}

const (
	// contactEps guards divisions by near-zero separation distances.
	contactEps = 1e-6
	// settleEps is the per-component velocity threshold below which a
	// realistic-variant ball is considered at rest.
	settleEps = 0.01
)

// updateBall integrates one ball's motion over dt according to the
// active variant. Wall contact is handled separately by reflectWall.
func (s *Sim) updateBall(b *Ball, dt float64) {
	if s.state.Variant == VariantRealistic {
		p := s.params.Realistic
		b.VY += p.Gravity * dt
		b.VX *= p.AirResistance
		b.VY *= p.AirResistance

		// Settle slow balls resting against the boundary, and kill
		// residual jitter once both components are negligible.
		dist := math.Hypot(b.X-s.arena.CX, b.Y-s.arena.CY)
		nearBoundary := dist > p.GroundLevel*s.arena.Radius
		if (b.Speed() < p.MinVelocity && nearBoundary) ||
			(math.Abs(b.VX) < settleEps && math.Abs(b.VY) < settleEps) {
			b.VX = 0
			b.VY = 0
		}
	}
	b.X += b.VX * dt
	b.Y += b.VY * dt
}

// reflectWall resolves contact between one ball and the arena boundary.
// Returns true if a wall bounce or a gap exit occurred.
func (s *Sim) reflectWall(b *Ball) bool {
	dx := b.X - s.arena.CX
	dy := b.Y - s.arena.CY
	dist := math.Hypot(dx, dy)
	if dist+b.Radius <= s.arena.Radius {
		return false
	}
	if dist < contactEps {
		// Degenerate contact normal; skip this effect, continue the tick.
		return false
	}

	if s.arena.InGap(math.Atan2(dy, dx)) {
		// Gap passage: the ball escapes and re-enters at the center.
		s.state.Escaped++
		s.script.emitExit(s.env(), s.handle(b))
		b.X = s.arena.CX
		b.Y = s.arena.CY
		return true
	}

	// Outward contact normal.
	nx := dx / dist
	ny := dy / dist

	// Reposition onto the boundary, removing the overlap.
	b.X = s.arena.CX + nx*(s.arena.Radius-b.Radius)
	b.Y = s.arena.CY + ny*(s.arena.Radius-b.Radius)

	// Mirror-reflect velocity about the contact normal.
	dot := b.VX*nx + b.VY*ny
	rvx := b.VX - 2*dot*nx
	rvy := b.VY - 2*dot*ny

	if s.state.Variant == VariantRealistic {
		e := s.params.Realistic.Elasticity
		b.VX = rvx * e
		b.VY = rvy * e
	} else {
		b.VX, b.VY = clampReflection(rvx, rvy, nx, ny, s.params.Arcade)
	}

	s.script.emitWallHit(s.env(), s.handle(b))
	return true
}

// clampReflection bounds the reflected velocity's angle relative to the
// inward normal: near-tangential bounces are pushed out to MinAngle and
// near-reversals pulled in to MaxAngle, in the same angular direction.
// Speed is preserved exactly; only direction changes.
func clampReflection(vx, vy, nx, ny float64, p ArcadeParams) (float64, float64) {
	speed := math.Hypot(vx, vy)
	if speed < contactEps {
		return vx, vy
	}

	// Inward normal.
	ix := -nx
	iy := -ny

	// Signed angle from the inward normal to the reflected velocity.
	dot := vx*ix + vy*iy
	cross := ix*vy - iy*vx
	theta := math.Atan2(cross, dot)

	mag := math.Abs(theta)
	switch {
	case mag < p.MinAngle:
		mag = p.MinAngle
	case mag > p.MaxAngle:
		mag = p.MaxAngle
	default:
		return vx, vy
	}
	if theta < 0 {
		mag = -mag
	}

	// Rebuild the velocity by rotating the inward normal by the
	// clamped angle, keeping the original speed.
	sin, cos := math.Sincos(mag)
	return speed * (ix*cos - iy*sin), speed * (ix*sin + iy*cos)
}
