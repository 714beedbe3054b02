// Package registry maps game codes to their bindings. Each game package
// registers itself from init(), so importing internal/games/all makes
// every game available without the front ends naming them.
package registry

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/vovakirdan/math-arcade/internal/puzzle"
)

// Game binds a game code to its puzzle generator and presentation text.
// The session engine, timing and scoring are shared; a game only decides
// what questions look like.
type Game interface {
	// ID returns the game code used by the tier store and the ledger
	// (e.g., "calculator", "magic_triangle").
	ID() string
	Title() string
	// Instructions is shown on the tutorial screen.
	Instructions() string

	puzzle.Generator
}

// GameInfo describes a registered game without instantiating it.
type GameInfo struct {
	ID           string
	Title        string
	Instructions string
}

// Factory builds a fresh binding.
type Factory func() Game

type entry struct {
	info    GameInfo
	factory Factory
}

var (
	mu      sync.RWMutex
	entries = map[string]entry{}
)

// Register adds a game under id. Registering the same id twice is a
// programming error and panics.
func Register(id string, f Factory) {
	g := f()
	if g.ID() != id {
		panic(fmt.Sprintf("registry: factory for %q builds %q", id, g.ID()))
	}

	mu.Lock()
	defer mu.Unlock()
	if _, dup := entries[id]; dup {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	entries[id] = entry{
		info:    GameInfo{ID: id, Title: g.Title(), Instructions: g.Instructions()},
		factory: f,
	}
}

// List returns every registered game ordered by code.
func List() []GameInfo {
	mu.RLock()
	out := make([]GameInfo, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.info)
	}
	mu.RUnlock()

	slices.SortFunc(out, func(a, b GameInfo) int { return strings.Compare(a.ID, b.ID) })
	return out
}

// Create builds the game registered under id.
func Create(id string) (Game, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return e.factory(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()
	_, ok := entries[id]
	return ok
}
