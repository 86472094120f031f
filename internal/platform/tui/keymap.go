package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings for the viewer.
type KeyMap struct {
	Pause       key.Binding
	StepBack    key.Binding
	JumpBack    key.Binding
	StepForward key.Binding
	Engine      key.Binding
	Collisions  key.Binding
	Spawn       key.Binding
	Reset       key.Binding
	Help        key.Binding
	Quit        key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Pause, k.StepBack, k.StepForward, k.Engine, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Pause, k.StepBack, k.JumpBack, k.StepForward},
		{k.Engine, k.Collisions, k.Spawn, k.Reset},
		{k.Help, k.Quit},
	}
}

// DefaultKeyMap returns the default viewer bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Pause: key.NewBinding(
			key.WithKeys(" ", "p"),
			key.WithHelp("space", "pause"),
		),
		StepBack: key.NewBinding(
			key.WithKeys("left", "["),
			key.WithHelp("←/[", "step back"),
		),
		JumpBack: key.NewBinding(
			key.WithKeys("shift+left", "{"),
			key.WithHelp("S-←/{", "jump back 60"),
		),
		StepForward: key.NewBinding(
			key.WithKeys("right", "]"),
			key.WithHelp("→/]", "step forward"),
		),
		Engine: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "cycle engine"),
		),
		Collisions: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "toggle collisions"),
		),
		Spawn: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "spawn ball"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
