// Package tui provides the Bubble Tea integration for the ballpit
// simulator. It handles the terminal UI loop, input mapping, and the
// live viewer around the simulation core.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FrameMsg is sent to trigger a render frame. The viewer feeds the
// frame interval into the simulation's fixed-timestep driver.
type FrameMsg time.Time

// frameCmd returns a Bubble Tea command that sends frame messages at
// the specified rate.
func frameCmd(fps int) tea.Cmd {
	interval := time.Second / time.Duration(fps)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}
