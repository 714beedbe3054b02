// Package mathgrid implements the subset-sum grid game.
package mathgrid

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/vovakirdan/math-arcade/internal/puzzle"
	"github.com/vovakirdan/math-arcade/internal/registry"
)

// Size is the number of grid cells (3x3).
const Size = 9

// Game shows a 3x3 grid and a target sum.
type Game struct{}

// New creates a math-grid game.
func New() *Game { return &Game{} }

func init() {
	registry.Register("math_grid", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string { return "math_grid" }

// Title returns the display name.
func (g *Game) Title() string { return "Math Grid" }

// Instructions describes how to play.
func (g *Game) Instructions() string {
	return "Select grid cells whose numbers add up to the target.\n" +
		"Cells are numbered 1-9 from the top left; any correct selection counts."
}

// Generate fills the grid and derives the target from a random subset of
// two or three cells, so at least one selection always works.
func (g *Game) Generate(rng *rand.Rand, lo, hi int) puzzle.Instance {
	lo, hi = puzzle.Bounds(lo, hi, 1, 1)
	cells := make([]int, Size)
	for i := range cells {
		cells[i] = puzzle.Intn(rng, lo, hi)
	}

	pick := rng.Perm(Size)[:2+rng.Intn(2)]
	sort.Ints(pick)
	target := 0
	for _, i := range pick {
		target += cells[i]
	}

	return puzzle.Instance{
		Kind:     puzzle.KindSelect,
		Prompt:   fmt.Sprintf("Select numbers that add up to %d", target),
		Cells:    cells,
		Target:   target,
		Solution: pick,
		Validate: func(answer []int) bool { return validSelection(cells, target, answer) },
	}
}

func validSelection(cells []int, target int, answer []int) bool {
	if len(answer) == 0 {
		return false
	}
	seen := make(map[int]bool, len(answer))
	sum := 0
	for _, i := range answer {
		if i < 0 || i >= len(cells) || seen[i] {
			return false
		}
		seen[i] = true
		sum += cells[i]
	}
	return sum == target
}
