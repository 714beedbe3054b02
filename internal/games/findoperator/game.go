// Package findoperator implements the hidden-operator game.
package findoperator

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/math-arcade/internal/puzzle"
	"github.com/vovakirdan/math-arcade/internal/registry"
)

const maxAttempts = 64

// Game hides the operator of "a ? b = c".
type Game struct{}

// New creates a find-operator game.
func New() *Game { return &Game{} }

func init() {
	registry.Register("find_operator", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string { return "find_operator" }

// Title returns the display name.
func (g *Game) Title() string { return "Find the Operator" }

// Instructions describes how to play.
func (g *Game) Instructions() string {
	return "Pick the operator that makes the equation true: + - × or ÷."
}

// Generate draws equations until exactly one operator satisfies them, so
// the four options hold a single correct answer.
func (g *Game) Generate(rng *rand.Rand, lo, hi int) puzzle.Instance {
	lo, hi = puzzle.Bounds(lo, hi, 1, 1)

	a, b, op := 3, 2, puzzle.OpAdd
	for i := 0; i < maxAttempts; i++ {
		cand := puzzle.Operators[rng.Intn(len(puzzle.Operators))]
		x, y := puzzle.Operands(rng, cand, lo, hi)
		c, _ := cand.Apply(x, y)
		if len(matching(x, y, c)) == 1 {
			a, b, op = x, y, cand
			break
		}
	}
	c, _ := op.Apply(a, b)

	labels := make([]string, len(puzzle.Operators))
	options := make([]int, len(puzzle.Operators))
	for i, o := range puzzle.Operators {
		options[i] = int(o)
		labels[i] = o.Symbol()
	}

	return puzzle.Instance{
		Kind:     puzzle.KindChoice,
		Prompt:   fmt.Sprintf("%d ? %d = %d", a, b, c),
		Options:  options,
		Labels:   labels,
		Target:   c,
		Solution: []int{int(op)},
		Validate: func(answer []int) bool {
			if len(answer) != 1 || answer[0] < 0 || answer[0] >= len(puzzle.Operators) {
				return false
			}
			got, ok := puzzle.Operator(answer[0]).Apply(a, b)
			return ok && got == c
		},
	}
}

func matching(a, b, c int) []puzzle.Operator {
	var out []puzzle.Operator
	for _, o := range puzzle.Operators {
		if v, ok := o.Apply(a, b); ok && v == c {
			out = append(out, o)
		}
	}
	return out
}
