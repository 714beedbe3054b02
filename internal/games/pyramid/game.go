// Package pyramid implements the number-pyramid completion game.
//
// A four-row pyramid is stored bottom-up in a flat slice:
//
//	      9
//	    7   8
//	  4   5   6
//	0   1   2   3
//
// Every cell above the base equals the sum of the two cells beneath it.
package pyramid

import (
	"math/rand"
	"sort"

	"github.com/vovakirdan/math-arcade/internal/puzzle"
	"github.com/vovakirdan/math-arcade/internal/registry"
)

const (
	// Base is the width of the bottom row.
	Base = 4
	// Cells is the total number of cells.
	Cells = Base * (Base + 1) / 2

	minHidden = 3
	maxHidden = 4
)

// RowOffsets holds the index of the first cell of each row, bottom-up.
var RowOffsets = []int{0, 4, 7, 9}

// Game asks the player to fill hidden cells.
type Game struct{}

// New creates a number-pyramid game.
func New() *Game { return &Game{} }

func init() {
	registry.Register("number_pyramid", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string { return "number_pyramid" }

// Title returns the display name.
func (g *Game) Title() string { return "Number Pyramid" }

// Instructions describes how to play.
func (g *Game) Instructions() string {
	return "Each block is the sum of the two blocks below it.\n" +
		"Fill in the missing blocks, from the bottom left, row by row."
}

// Generate builds a full pyramid from a random base and hides some
// cells. The built pyramid is itself a valid completion.
func (g *Game) Generate(rng *rand.Rand, lo, hi int) puzzle.Instance {
	lo, hi = puzzle.Bounds(lo, hi, 1, 1)

	cells := make([]int, Cells)
	for i := 0; i < Base; i++ {
		cells[i] = puzzle.Intn(rng, lo, hi)
	}
	for row := 1; row < Base; row++ {
		for i := 0; i < Base-row; i++ {
			below := RowOffsets[row-1] + i
			cells[RowOffsets[row]+i] = cells[below] + cells[below+1]
		}
	}

	hidden := rng.Perm(Cells)[:puzzle.Intn(rng, minHidden, maxHidden)]
	sort.Ints(hidden)
	solution := make([]int, len(hidden))
	shown := append([]int(nil), cells...)
	for i, idx := range hidden {
		solution[i] = cells[idx]
		shown[idx] = 0
	}

	return puzzle.Instance{
		Kind:     puzzle.KindFill,
		Prompt:   "Fill in the missing blocks",
		Cells:    shown,
		Hidden:   hidden,
		Target:   cells[Cells-1],
		Solution: solution,
		Validate: func(answer []int) bool { return Valid(shown, hidden, answer) },
	}
}

// Valid fills the hidden cells with answer and checks every sum.
func Valid(cells, hidden, answer []int) bool {
	if len(answer) != len(hidden) || len(cells) != Cells {
		return false
	}
	full := append([]int(nil), cells...)
	for i, idx := range hidden {
		full[idx] = answer[i]
	}
	for row := 1; row < Base; row++ {
		for i := 0; i < Base-row; i++ {
			below := RowOffsets[row-1] + i
			if full[RowOffsets[row]+i] != full[below]+full[below+1] {
				return false
			}
		}
	}
	return true
}
