// Package rules ships the built-in rule sets: closed bundles of event
// handlers that mutate balls mid-simulation. Each rule registers itself
// with the registry in an init() function.
package rules

import (
	"github.com/arcadelab/ballpit/internal/registry"
	"github.com/arcadelab/ballpit/internal/sim"
)

// none is the empty rule set: pure physics, no handlers.
type none struct{}

func (none) ID() string       { return "none" }
func (none) Title() string    { return "Pure Physics" }
func (none) Describe() string { return "No rules, just balls bouncing" }

func (none) Install(*sim.Script) {}

func init() {
	registry.Register("none", func() registry.Rule { return none{} })
}
