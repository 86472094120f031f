// Package sim implements the ball arena simulation: a population of
// circular bodies confined to a circular boundary with a single escape
// gap, advanced under interchangeable physics variants with deterministic
// snapshot/restore history. It contains no UI dependencies so the whole
// simulation stays pure and testable.
package sim

import (
	"fmt"
	"math"
)

// Arena is the static circular boundary containing all balls.
// It is immutable after construction.
type Arena struct {
	CX, CY   float64 // Center position
	Radius   float64 // Boundary radius
	GapAngle float64 // Direction of the escape opening, radians
	GapWidth float64 // Angular width of the opening, radians
}

// NewArena creates an arena and validates its geometry.
// A non-positive radius or a gap spanning the full circle is rejected.
func NewArena(cx, cy, radius, gapAngle, gapWidth float64) (Arena, error) {
	if radius <= 0 {
		return Arena{}, fmt.Errorf("sim: arena radius must be positive, got %v", radius)
	}
	if gapWidth < 0 || gapWidth >= 2*math.Pi {
		return Arena{}, fmt.Errorf("sim: gap width must be in [0, 2π), got %v", gapWidth)
	}
	return Arena{
		CX:       cx,
		CY:       cy,
		Radius:   radius,
		GapAngle: normalizeAngle(gapAngle),
		GapWidth: gapWidth,
	}, nil
}

// InGap reports whether the given angular position falls inside the
// escape opening, using the shortest angular difference to the gap
// direction. A zero-width gap never matches.
func (a Arena) InGap(angle float64) bool {
	if a.GapWidth <= 0 {
		return false
	}
	return math.Abs(angleDiff(angle, a.GapAngle)) <= a.GapWidth/2
}

// normalizeAngle wraps an angle into (-π, π].
func normalizeAngle(a float64) float64 {
	for a > math.Pi {
		a -= 2 * math.Pi
	}
	for a <= -math.Pi {
		a += 2 * math.Pi
	}
	return a
}

// angleDiff returns the shortest signed angular difference a-b in (-π, π].
func angleDiff(a, b float64) float64 {
	return normalizeAngle(a - b)
}
