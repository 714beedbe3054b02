// Package triangle implements the magic-triangle placement game.
//
// Six numbers go on the corners and edge midpoints of a triangle so that
// all three sides add up to the same target. Slots are numbered
// clockwise from the top corner:
//
//	      0
//	    5   1
//	  4   3   2
package triangle

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/vovakirdan/math-arcade/internal/puzzle"
	"github.com/vovakirdan/math-arcade/internal/registry"
)

// Slots is the number of positions on the triangle.
const Slots = 6

const maxAttempts = 200

// Sides lists the slot triples that must share the target sum.
var Sides = [3][3]int{{0, 1, 2}, {2, 3, 4}, {4, 5, 0}}

// Game asks the player to place six numbers.
type Game struct{}

// New creates a magic-triangle game.
func New() *Game { return &Game{} }

func init() {
	registry.Register("magic_triangle", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string { return "magic_triangle" }

// Title returns the display name.
func (g *Game) Title() string { return "Magic Triangle" }

// Instructions describes how to play.
func (g *Game) Instructions() string {
	return "Place all six numbers on the triangle so every side adds up to the target.\n" +
		"Enter them in slot order: top, right edge, bottom right, bottom edge,\n" +
		"bottom left, left edge."
}

// Generate searches [lo, hi] for a solvable set of six distinct numbers.
// Ranges narrower than six values are widened. When random search fails
// the classic 1..6 arrangement shifted into the range is used.
func (g *Game) Generate(rng *rand.Rand, lo, hi int) puzzle.Instance {
	lo, hi = puzzle.Bounds(lo, hi, 1, Slots)

	slots, ok := search(rng, lo, hi)
	if !ok {
		slots = classic(lo)
	}
	target := slots[0] + slots[1] + slots[2]

	offered := append([]int(nil), slots...)
	sort.Ints(offered)

	return puzzle.Instance{
		Kind:     puzzle.KindPlace,
		Prompt:   fmt.Sprintf("Make every side add up to %d", target),
		Cells:    offered,
		Target:   target,
		Solution: slots,
		Validate: func(answer []int) bool { return Valid(offered, target, answer) },
	}
}

// search picks three corners and a side sum, then derives the edges:
// with corners x, y, z the edge between x and y is target-x-y.
func search(rng *rand.Rand, lo, hi int) ([]int, bool) {
	for i := 0; i < maxAttempts; i++ {
		c := puzzle.Distinct(rng, lo, hi, 3)
		pair := []int{c[0] + c[1], c[1] + c[2], c[2] + c[0]}
		low := max(pair[0], pair[1], pair[2]) + lo
		high := min(pair[0], pair[1], pair[2]) + hi
		if low > high {
			continue
		}
		target := puzzle.Intn(rng, low, high)
		slots := []int{c[0], target - pair[0], c[1], target - pair[1], c[2], target - pair[2]}
		if distinct(slots) {
			return slots, true
		}
	}
	return nil, false
}

// classic is corners lo, lo+1, lo+2 with edges lo+5, lo+3, lo+4; every
// side sums to 3*lo+6.
func classic(lo int) []int {
	return []int{lo, lo + 5, lo + 1, lo + 3, lo + 2, lo + 4}
}

// Valid reports whether answer places exactly the offered numbers with
// all sides summing to target.
func Valid(offered []int, target int, answer []int) bool {
	if len(answer) != Slots || len(offered) != Slots {
		return false
	}
	got := append([]int(nil), answer...)
	sort.Ints(got)
	want := append([]int(nil), offered...)
	sort.Ints(want)
	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}
	for _, side := range Sides {
		if answer[side[0]]+answer[side[1]]+answer[side[2]] != target {
			return false
		}
	}
	return true
}

func distinct(vals []int) bool {
	seen := make(map[int]bool, len(vals))
	for _, v := range vals {
		if seen[v] {
			return false
		}
		seen[v] = true
	}
	return true
}
