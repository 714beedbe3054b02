// Package missingnumber implements the hidden-operand multiple-choice game.
package missingnumber

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/math-arcade/internal/puzzle"
	"github.com/vovakirdan/math-arcade/internal/registry"
)

var ops = []puzzle.Operator{puzzle.OpAdd, puzzle.OpSub, puzzle.OpMul}

// Game hides one operand of "a op b = c".
type Game struct{}

// New creates a missing-number game.
func New() *Game { return &Game{} }

func init() {
	registry.Register("missing_number", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string { return "missing_number" }

// Title returns the display name.
func (g *Game) Title() string { return "Missing Number" }

// Instructions describes how to play.
func (g *Game) Instructions() string {
	return "One number is missing from the equation. Choose it from the four options."
}

// Generate hides a or b and offers four distinct candidates.
func (g *Game) Generate(rng *rand.Rand, lo, hi int) puzzle.Instance {
	lo, hi = puzzle.Bounds(lo, hi, 1, 1)
	op := ops[rng.Intn(len(ops))]
	a, b := puzzle.Operands(rng, op, lo, hi)
	c := puzzle.MustEval(puzzle.Expr(a, op, b))

	var prompt string
	hidden := a
	if rng.Intn(2) == 0 {
		prompt = fmt.Sprintf("? %s %d = %d", op.Symbol(), b, c)
	} else {
		hidden = b
		prompt = fmt.Sprintf("%d %s ? = %d", a, op.Symbol(), c)
	}

	options, _ := puzzle.Choices(rng, hidden, 4, max(3, hidden/5), 0)
	return puzzle.Instance{
		Kind:     puzzle.KindChoice,
		Prompt:   prompt,
		Options:  options,
		Target:   c,
		Solution: []int{hidden},
	}
}
