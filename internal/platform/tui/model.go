package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/arcadelab/ballpit/internal/config"
	"github.com/arcadelab/ballpit/internal/core"
	"github.com/arcadelab/ballpit/internal/registry"
	"github.com/arcadelab/ballpit/internal/sim"
	"github.com/arcadelab/ballpit/internal/storage"
)

// Rows reserved below the arena for the status bar and help line.
const chromeRows = 2

// How many frames a shift-rewind jumps at once.
const jumpFrames = 60

// defaultSpawnCount is used when the config doesn't set one.
const defaultSpawnCount = 12

// Options bundles everything the viewer needs to run a simulation.
type Options struct {
	SimConfig config.SimConfig
	Rule      registry.Rule  // nil runs without handlers
	Store     *storage.Store // nil disables run persistence
	Runtime   core.RuntimeConfig
	Logger    *log.Logger // nil silences handler fault reports
}

// Model is the Bubble Tea model for the live simulation viewer.
type Model struct {
	sim    *sim.Sim
	opts   Options
	screen *core.Screen
	keys   KeyMap
	help   help.Model

	ruleID   string
	seed     int64
	paused   bool
	quitting bool
	saved    bool // Whether the run has been persisted
}

// NewModel creates a viewer model, building the simulation from the
// given options. A zero seed is replaced with the current time.
func NewModel(opts Options) (Model, error) {
	if opts.Runtime.Seed == 0 {
		opts.Runtime.Seed = time.Now().UnixNano()
	}
	if opts.Runtime.FPS <= 0 {
		opts.Runtime.FPS = core.DefaultConfig().FPS
	}

	arena, err := opts.SimConfig.ToArena()
	if err != nil {
		return Model{}, err
	}

	s := sim.New(arena, opts.SimConfig.ToParams(opts.Runtime.Seed), opts.Logger)

	ruleID := "none"
	if opts.Rule != nil {
		ruleID = opts.Rule.ID()
		opts.Rule.Install(s.Script())
	}

	count := opts.SimConfig.Spawn.Count
	if count <= 0 {
		count = defaultSpawnCount
	}
	s.Spawn(count, sim.SpawnOptions{})

	h := help.New()
	h.ShowAll = false

	return Model{
		sim:    s,
		opts:   opts,
		screen: core.NewScreen(opts.Runtime.ScreenW, core.Max(opts.Runtime.ScreenH-chromeRows, 4)),
		keys:   DefaultKeyMap(),
		help:   h,
		ruleID: ruleID,
		seed:   opts.Runtime.Seed,
	}, nil
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return frameCmd(m.opts.Runtime.FPS)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.opts.Runtime.ScreenW = msg.Width
		m.opts.Runtime.ScreenH = msg.Height
		m.screen.Resize(msg.Width, core.Max(msg.Height-chromeRows, 4))
		m.help.Width = msg.Width
		return m, nil

	case FrameMsg:
		if !m.paused {
			m.sim.Advance(1.0 / float64(m.opts.Runtime.FPS))
		}
		return m, frameCmd(m.opts.Runtime.FPS)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.saveRun()
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Pause):
		m.paused = !m.paused

	case key.Matches(msg, m.keys.StepBack):
		m.paused = true
		m.rewind(1)

	case key.Matches(msg, m.keys.JumpBack):
		m.paused = true
		m.rewind(jumpFrames)

	case key.Matches(msg, m.keys.StepForward):
		if m.paused {
			m.sim.StepOnce()
		}

	case key.Matches(msg, m.keys.Engine):
		m.sim.SetVariant(nextVariant(m.sim.Variant()))

	case key.Matches(msg, m.keys.Collisions):
		m.sim.SetCollisions(!m.sim.CollisionsEnabled())

	case key.Matches(msg, m.keys.Spawn):
		m.sim.Spawn(1, sim.SpawnOptions{})

	case key.Matches(msg, m.keys.Reset):
		m.saveRun()
		m.seed = time.Now().UnixNano()
		m.sim.Reset(m.seed)
		count := m.opts.SimConfig.Spawn.Count
		if count <= 0 {
			count = defaultSpawnCount
		}
		m.sim.Spawn(count, sim.SpawnOptions{})
		m.saved = false
		m.paused = false

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}

	return m, nil
}

// rewind jumps the simulation back by frames, falling back to the
// nearest stored snapshot when the exact frame was evicted.
func (m *Model) rewind(frames int) {
	target := m.sim.Frame() - frames
	if target < 0 {
		target = 0
	}
	if err := m.sim.RestoreState(target); err != nil {
		if f, ok := m.sim.ClosestFrame(target); ok {
			//nolint:errcheck // Closest came from the store, it cannot miss
			m.sim.RestoreState(f)
		}
	}
}

// nextVariant cycles through the physics variants.
func nextVariant(v sim.Variant) sim.Variant {
	switch v {
	case sim.VariantArcade:
		return sim.VariantArcadeSimple
	case sim.VariantArcadeSimple:
		return sim.VariantRealistic
	default:
		return sim.VariantArcade
	}
}

// saveRun persists the run outcome once. Empty runs are not recorded.
func (m *Model) saveRun() {
	if m.saved || m.opts.Store == nil {
		return
	}
	if m.sim.Score() == 0 && m.sim.Escaped() == 0 {
		return
	}
	//nolint:errcheck // Best-effort save, the UI continues regardless
	m.opts.Store.SaveRun(storage.RunEntry{
		RuleID:  m.ruleID,
		Engine:  m.sim.Variant().String(),
		Seed:    m.seed,
		Score:   m.sim.Score(),
		Escaped: m.sim.Escaped(),
		Frames:  m.sim.Frame(),
	})
	m.saved = true
}

var (
	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("236")).
			Padding(0, 1)
	pausedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("203"))
	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	projectScene(m.screen, m.sim)
	if m.paused {
		m.screen.DrawTextCentered(1, "[ PAUSED ]")
	}

	var b strings.Builder
	b.WriteString(RenderScreen(m.screen))
	b.WriteString("\n")
	b.WriteString(statusStyle.Render(m.statusLine()))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// statusLine summarizes the run in a single bar.
func (m Model) statusLine() string {
	status := fmt.Sprintf("rule %s │ engine %s │ frame %d │ score %d │ escaped %d │ balls %d",
		m.ruleID,
		m.sim.Variant(),
		m.sim.Frame(),
		m.sim.Score(),
		m.sim.Escaped(),
		m.sim.BallCount(),
	)
	if !m.sim.CollisionsEnabled() {
		status += " │ collisions off"
	}
	if m.paused {
		status += " │ " + pausedStyle.Render("PAUSED")
	}
	return status
}

// Run starts the Bubble Tea program for the viewer.
func Run(opts Options) error {
	model, err := NewModel(opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err = p.Run()
	return err
}
