// Package picture implements the picture-equation game: a small system of
// equations over fruit symbols followed by a question combining them.
package picture

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/vovakirdan/math-arcade/internal/puzzle"
	"github.com/vovakirdan/math-arcade/internal/registry"
)

// maxValue keeps symbol values small enough to solve mentally.
const maxValue = 20

// Symbols are the faces standing for the three unknowns.
var Symbols = []string{"🍎", "🍌", "🍇"}

// Game shows the equations and asks for the final line.
type Game struct{}

// New creates a picture-equation game.
func New() *Game { return &Game{} }

func init() {
	registry.Register("picture_equation", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string { return "picture_equation" }

// Title returns the display name.
func (g *Game) Title() string { return "Picture Equations" }

// Instructions describes how to play.
func (g *Game) Instructions() string {
	return "Each picture stands for a number. Work them out from the first\n" +
		"three lines, then solve the last one. Multiplication comes first."
}

// Generate picks a value per symbol and derives a solvable chain:
// the first line fixes the apple, each next line adds one unknown.
func (g *Game) Generate(rng *rand.Rand, lo, hi int) puzzle.Instance {
	lo, hi = puzzle.Bounds(lo, hi, 1, 1)
	hi = min(hi, maxValue)
	lo = min(lo, hi)

	a, b, c := puzzle.Intn(rng, lo, hi), puzzle.Intn(rng, lo, hi), puzzle.Intn(rng, lo, hi)
	apple, banana, grape := Symbols[0], Symbols[1], Symbols[2]

	lines := []string{
		fmt.Sprintf("%s + %s + %s = %d", apple, apple, apple, puzzle.MustEval(fmt.Sprintf("%d + %d + %d", a, a, a))),
		fmt.Sprintf("%s + %s + %s = %d", apple, banana, banana, puzzle.MustEval(fmt.Sprintf("%d + %d + %d", a, b, b))),
		fmt.Sprintf("%s + %s + %s = %d", banana, grape, grape, puzzle.MustEval(fmt.Sprintf("%d + %d + %d", b, c, c))),
		fmt.Sprintf("%s + %s × %s = ?", apple, banana, grape),
	}

	return puzzle.Instance{
		Kind:     puzzle.KindInput,
		Prompt:   strings.Join(lines, "\n"),
		Labels:   Symbols,
		Solution: []int{puzzle.MustEval(fmt.Sprintf("%d + %d * %d", a, b, c))},
	}
}
