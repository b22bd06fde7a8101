// Package registry maps game IDs to factories. Games register themselves in
// init(), so front ends can list and create them without importing each one
// by name.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/ztapz/internal/core"
)

// Game is the contract between a game and the front ends that host it.
// Games are pure logic: the platform owns timing, input mapping and output.
type Game interface {
	// ID returns a unique identifier, used on the command line and for scores.
	ID() string

	// Title returns a human-readable name.
	Title() string

	// Reset puts the game back to its idle state for the given screen and seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances the game by one frame. The platform calls it
	// cfg.TickRate times per second.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into dst.
	Render(dst *core.Screen)

	// State returns the current status.
	State() core.GameState
}

// GameInfo describes a registered game.
type GameInfo struct {
	ID          string
	Title       string
	Description string
}

// Factory creates a new instance of a game.
type Factory func() Game

type entry struct {
	info    GameInfo
	factory Factory
}

var (
	entries = make(map[string]entry)
	mu      sync.RWMutex
)

// Register adds a game factory under id with a short description.
// Panics if id is already taken.
func Register(id, description string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := entries[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	entries[id] = entry{
		info: GameInfo{
			ID:          id,
			Title:       f().Title(),
			Description: description,
		},
		factory: f,
	}
}

// List returns all registered games sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(entries))
	for _, e := range entries {
		result = append(result, e.info)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Lookup returns the metadata for id.
func Lookup(id string) (GameInfo, bool) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := entries[id]
	return e.info, ok
}

// Create instantiates a game by ID.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := entries[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}

	return e.factory(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	_, ok := Lookup(id)
	return ok
}
