// Package calculator implements the typed-answer arithmetic game.
package calculator

import (
	"math/rand"

	"github.com/vovakirdan/math-arcade/internal/puzzle"
	"github.com/vovakirdan/math-arcade/internal/registry"
)

// Game asks for the result of a single operation.
type Game struct{}

// New creates a calculator game.
func New() *Game { return &Game{} }

func init() {
	registry.Register("calculator", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string { return "calculator" }

// Title returns the display name.
func (g *Game) Title() string { return "Calculator" }

// Instructions describes how to play.
func (g *Game) Instructions() string {
	return "Solve each equation and type the result before the timer runs out.\n" +
		"Every wrong answer or timeout costs a heart."
}

// Generate builds "a op b = ?" with operands from [lo, hi].
func (g *Game) Generate(rng *rand.Rand, lo, hi int) puzzle.Instance {
	lo, hi = puzzle.Bounds(lo, hi, 1, 1)
	op := puzzle.Operators[rng.Intn(len(puzzle.Operators))]
	a, b := puzzle.Operands(rng, op, lo, hi)

	return puzzle.Instance{
		Kind:     puzzle.KindInput,
		Prompt:   puzzle.Display(a, op, b) + " = ?",
		Solution: []int{puzzle.MustEval(puzzle.Expr(a, op, b))},
	}
}
