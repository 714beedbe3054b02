// Package fastcalc implements the speed arithmetic game. It runs on a
// session-wide clock that grows with every correct answer.
package fastcalc

import (
	"math/rand"

	"github.com/vovakirdan/math-arcade/internal/puzzle"
	"github.com/vovakirdan/math-arcade/internal/registry"
)

var ops = []puzzle.Operator{puzzle.OpAdd, puzzle.OpSub, puzzle.OpAdd, puzzle.OpMul}

// Game asks quick additions, subtractions and small products.
type Game struct{}

// New creates a fast-calc game.
func New() *Game { return &Game{} }

func init() {
	registry.Register("fast_calc", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string { return "fast_calc" }

// Title returns the display name.
func (g *Game) Title() string { return "Fast Calc" }

// Instructions describes how to play.
func (g *Game) Instructions() string {
	return "Answer as many sums as you can before time runs out.\n" +
		"Each correct answer adds a little time back to the clock."
}

// Generate builds a quick "a op b = ?" question.
func (g *Game) Generate(rng *rand.Rand, lo, hi int) puzzle.Instance {
	lo, hi = puzzle.Bounds(lo, hi, 1, 1)
	op := ops[rng.Intn(len(ops))]
	a, b := puzzle.Operands(rng, op, lo, hi)

	return puzzle.Instance{
		Kind:     puzzle.KindInput,
		Prompt:   puzzle.Display(a, op, b) + " = ?",
		Solution: []int{puzzle.MustEval(puzzle.Expr(a, op, b))},
	}
}
