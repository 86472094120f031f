// Package registry provides a global registry for rule-set factories.
// Rule sets register themselves in init() functions, allowing the
// platform to discover and install them without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/arcadelab/ballpit/internal/sim"
)

// Rule is the interface every installable rule set implements. A rule
// set is the compiled counterpart of a user-authored program: a closed
// bundle of event handlers that the simulation invokes.
type Rule interface {
	// ID returns a unique identifier for this rule set (e.g., "splitter").
	// Used for CLI commands and run storage.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Describe returns a one-line summary of what the rule does.
	Describe() string

	// Install registers the rule's handlers on the script host.
	// Called once per run, before the first tick.
	Install(script *sim.Script)
}

// RuleInfo contains metadata about a registered rule set.
type RuleInfo struct {
	ID          string
	Title       string
	Description string
}

// Factory is a function that creates a new instance of a rule set.
type Factory func() Rule

var (
	factories = make(map[string]Factory)
	infos     = make(map[string]RuleInfo)
	mu        sync.RWMutex
)

// Register adds a rule factory to the registry.
// Typically called from a rule's init() function.
// Panics if a rule with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: rule %q already registered", id))
	}

	factories[id] = f

	r := f()
	infos[id] = RuleInfo{ID: id, Title: r.Title(), Description: r.Describe()}
}

// List returns information about all registered rules, sorted by ID.
func List() []RuleInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]RuleInfo, 0, len(factories))
	for id := range factories {
		result = append(result, infos[id])
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new rule set by its ID.
// Returns an error if the rule ID is not registered.
func Create(id string) (Rule, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown rule %q", id)
	}

	return f(), nil
}

// Exists checks if a rule with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
