// Package registry provides a global registry for game factories.
// Variants register themselves in init() functions, allowing the platform
// to discover and instantiate them without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Game is what the platform drives each frame.
// Games contain pure logic with no Bubble Tea dependency.
// The platform handles input mapping, timing, and presenting the window.
type Game interface {
	// ID returns the variant identifier (e.g., "breakout").
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Initialize builds the game objects. Called once by the factory.
	Initialize() error

	// Update advances the simulation by dt seconds of wall-clock time.
	Update(dt float64) error

	// Render draws the current frame into the game's window.
	Render() error

	// State returns the current game state (score, lives, terminal flags).
	State() core.GameState
}

// Env is everything a factory needs to build a game.
type Env struct {
	Runtime core.RuntimeConfig
	Config  config.BreakoutConfig
	Window  *core.Window
	Input   core.InputSource
	Logger  *log.Logger
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory builds and initializes a game.
type Factory func(env Env) (Game, error)

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a game factory to the registry.
// Typically called from a game's init() function.
// Panics if a game with the same ID is already registered.
func Register(id, title string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f
	titles[id] = title
}

// List returns information about all registered games, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create builds a game by its ID.
// Returns an error if the ID is not registered or the factory fails.
func Create(id string, env Env) (Game, error) {
	mu.RLock()
	f, ok := factories[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}

	g, err := f(env)
	if err != nil {
		return nil, fmt.Errorf("registry: create %q: %w", id, err)
	}
	return g, nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
