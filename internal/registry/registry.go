// Package registry provides a global registry for demo factories.
// Demos register themselves in init() functions, allowing the platform
// to discover and instantiate them without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-engine/internal/config"
	"github.com/vovakirdan/tui-engine/internal/input"
	"github.com/vovakirdan/tui-engine/internal/stage"
)

// Demo is the interface all runnable demos implement. A demo owns its
// screens and registers them on the stage during Install; the platform
// handles input mapping, timing, and rendering.
type Demo interface {
	// ID returns a unique identifier for this demo (e.g., "bounce").
	// Used for CLI commands and score storage.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Install registers the demo's screens on the stage and returns the
	// state the stage should switch to first. The input frame is shared:
	// the platform writes actions into it each tick and the demo's
	// screens read from it.
	Install(st *stage.Stage, cfg config.RuntimeConfig, in *input.Frame) (stage.State, error)

	// Score returns the demo's current score.
	Score() int
}

// PointerHandler is implemented by demos that consume pointer input.
// The platform checks for it after normalizing a host mouse event.
type PointerHandler interface {
	HandlePointer(p *input.Pointer)
}

// DemoInfo contains metadata about a registered demo.
type DemoInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new instance of a demo.
type Factory func() Demo

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a demo factory to the registry.
// Typically called from a demo's init() function.
// Panics if a demo with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: demo %q already registered", id))
	}

	factories[id] = f

	// Get title by creating a temporary instance
	d := f()
	titles[id] = d.Title()
}

// List returns information about all registered demos, sorted by ID.
func List() []DemoInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]DemoInfo, 0, len(factories))
	for id := range factories {
		result = append(result, DemoInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new demo by its ID.
// Returns an error if the demo ID is not registered.
func Create(id string) (Demo, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown demo %q", id)
	}

	return f(), nil
}

// Exists checks if a demo with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
