package tui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/arcadelab/ballpit/internal/core"
	"github.com/arcadelab/ballpit/internal/sim"
)

// Terminal cells are roughly twice as tall as wide; the projection
// stretches x by this factor so circles look round.
const cellAspect = 2.0

const wallColor = "245"

// projectScene draws the arena boundary and all live balls into the
// screen buffer. World coordinates are centered on the arena; the
// projection fits the full boundary into the buffer.
func projectScene(screen *core.Screen, s *sim.Sim) {
	screen.Clear()

	arena := s.Arena()
	w := float64(screen.Width())
	h := float64(screen.Height())
	if w < 4 || h < 4 {
		return
	}

	// Scale so the boundary fits both axes, with a one-cell margin.
	scaleY := (h - 2) / (2 * arena.Radius)
	scaleX := scaleY * cellAspect
	if maxX := (w - 2) / (2 * arena.Radius); scaleX > maxX {
		scaleX = maxX
		scaleY = scaleX / cellAspect
	}

	cx := w / 2
	cy := h / 2

	toCell := func(x, y float64) (int, int) {
		sx := cx + (x-arena.CX)*scaleX
		sy := cy + (y-arena.CY)*scaleY
		return int(math.Round(sx)), int(math.Round(sy))
	}

	// Boundary: sample the circle densely, leaving the gap open.
	steps := int(4 * math.Pi * arena.Radius * scaleX)
	if steps < 64 {
		steps = 64
	}
	for i := 0; i < steps; i++ {
		angle := -math.Pi + 2*math.Pi*float64(i)/float64(steps)
		if arena.InGap(angle) {
			continue
		}
		x := arena.CX + math.Cos(angle)*arena.Radius
		y := arena.CY + math.Sin(angle)*arena.Radius
		px, py := toCell(x, y)
		screen.SetCell(px, py, core.Cell{Rune: '·', Color: wallColor})
	}

	// Balls: filled discs, always at least the center cell.
	for _, b := range s.Balls() {
		if !b.Alive {
			continue
		}
		drawBall(screen, b, toCell, scaleX, scaleY)
	}
}

func drawBall(screen *core.Screen, b *sim.Ball, toCell func(x, y float64) (int, int), scaleX, scaleY float64) {
	px, py := toCell(b.X, b.Y)
	rx := int(b.Radius * scaleX)
	ry := int(b.Radius * scaleY)

	if rx < 1 || ry < 1 {
		screen.SetCell(px, py, core.Cell{Rune: '•', Color: b.Color})
		return
	}

	for dy := -ry; dy <= ry; dy++ {
		for dx := -rx; dx <= rx; dx++ {
			// Inside the projected ellipse?
			nx := float64(dx) / float64(rx)
			ny := float64(dy) / float64(ry)
			if nx*nx+ny*ny <= 1.0 {
				screen.SetCell(px+dx, py+dy, core.Cell{Rune: '●', Color: b.Color})
			}
		}
	}
}

// styleCache memoizes lipgloss styles per color string so rendering
// doesn't rebuild them every frame.
var styleCache = map[string]lipgloss.Style{
	"": lipgloss.NewStyle(),
}

func styleFor(color string) lipgloss.Style {
	if s, ok := styleCache[color]; ok {
		return s
	}
	s := lipgloss.NewStyle().Foreground(lipgloss.Color(color))
	styleCache[color] = s
	return s
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startColor := cell.Color

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			if startColor == "" {
				sb.WriteString(run.String())
			} else {
				sb.WriteString(styleFor(startColor).Render(run.String()))
			}
		}
	}
	return sb.String()
}
