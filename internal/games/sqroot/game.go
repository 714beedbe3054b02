// Package sqroot implements the square-root multiple-choice game.
package sqroot

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/math-arcade/internal/puzzle"
	"github.com/vovakirdan/math-arcade/internal/registry"
)

// maxRoot keeps squares at four digits.
const maxRoot = 99

// Game asks for the root of a perfect square.
type Game struct{}

// New creates a square-root game.
func New() *Game { return &Game{} }

func init() {
	registry.Register("square_root", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string { return "square_root" }

// Title returns the display name.
func (g *Game) Title() string { return "Square Root" }

// Instructions describes how to play.
func (g *Game) Instructions() string {
	return "Choose the square root of the number shown."
}

// Generate picks a root in [lo, hi] and offers four distinct roots.
func (g *Game) Generate(rng *rand.Rand, lo, hi int) puzzle.Instance {
	lo, hi = puzzle.Bounds(lo, hi, 1, 1)
	hi = min(hi, maxRoot)
	lo = min(lo, hi)

	n := puzzle.Intn(rng, lo, hi)
	options, _ := puzzle.Choices(rng, n, 4, 3, 1)
	return puzzle.Instance{
		Kind:     puzzle.KindChoice,
		Prompt:   fmt.Sprintf("√%d = ?", n*n),
		Options:  options,
		Target:   n * n,
		Solution: []int{n},
	}
}
