// Package registry is where game modes announce themselves. Modes register
// in init(), and the platform finds them by ID without importing them
// directly.
package registry

import (
	"fmt"
	"slices"
	"sync"

	"github.com/vovakirdan/math-heroes/internal/core"
)

// Game is the interface every playable mode implements.
// Games contain pure logic with no terminal dependencies (especially no Bubble Tea).
// The platform handles input mapping, timing, and drawing the screen buffer.
type Game interface {
	// ID returns a unique identifier for this mode (e.g., "counting").
	// Used for CLI commands and score storage.
	ID() string

	// Title returns a human-readable name for display (e.g., "Math Heroes: Counting").
	Title() string

	// Reset starts a fresh run with the given screen size, tick rate and seed.
	Reset(cfg core.RuntimeConfig)

	// Step applies one frame of input and advances one fixed tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into dst.
	Render(dst *core.Screen)

	// State returns the platform-facing summary (score, level, game over, paused, exit).
	State() core.GameState
}

// GameInfo describes a registered mode.
type GameInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new instance of a game.
type Factory func() Game

type entry struct {
	info    GameInfo
	factory Factory
}

var (
	mu      sync.RWMutex
	entries []entry // registration order
)

// Register adds a mode. It panics on an empty or duplicate ID.
func Register(info GameInfo, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if info.ID == "" {
		panic("registry: empty game id")
	}
	if indexOf(info.ID) >= 0 {
		panic(fmt.Sprintf("registry: game %q already registered", info.ID))
	}
	entries = append(entries, entry{info: info, factory: f})
}

// indexOf returns the position of id, or -1. Callers hold mu.
func indexOf(id string) int {
	return slices.IndexFunc(entries, func(e entry) bool { return e.info.ID == id })
}

// List returns every registered mode in registration order.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, len(entries))
	for i, e := range entries {
		result[i] = e.info
	}
	return result
}

// Lookup returns the info for id.
func Lookup(id string) (GameInfo, bool) {
	mu.RLock()
	defer mu.RUnlock()

	if i := indexOf(id); i >= 0 {
		return entries[i].info, true
	}
	return GameInfo{}, false
}

// Create instantiates a new game by its ID.
func Create(id string) (Game, error) {
	mu.RLock()
	i := indexOf(id)
	var f Factory
	if i >= 0 {
		f = entries[i].factory
	}
	mu.RUnlock()

	if f == nil {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return f(), nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	_, ok := Lookup(id)
	return ok
}
