// Package matchcards implements the card-pairing game: every expression
// card has exactly one value card showing its result.
package matchcards

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/math-arcade/internal/puzzle"
	"github.com/vovakirdan/math-arcade/internal/registry"
)

const (
	basePairs = 3
	widePairs = 4
	wideRange = 20
)

// Game deals expression and value cards face up.
type Game struct{}

// New creates a matching-cards game.
func New() *Game { return &Game{} }

func init() {
	registry.Register("matching_cards", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string { return "matching_cards" }

// Title returns the display name.
func (g *Game) Title() string { return "Matching Cards" }

// Instructions describes how to play.
func (g *Game) Instructions() string {
	return "Pair every expression with the card showing its value.\n" +
		"Enter the pairs as card numbers, e.g. 1 4 2 6 3 5."
}

// Generate deals one expression card and one value card per distinct
// value. Labels hold the card faces; Cells hold each card's value.
func (g *Game) Generate(rng *rand.Rand, lo, hi int) puzzle.Instance {
	pairs := basePairs
	if hi-lo+1 >= wideRange {
		pairs = widePairs
	}
	lo, hi = puzzle.Bounds(lo, hi, 2, pairs)
	values := puzzle.Distinct(rng, lo, hi, pairs)

	type card struct {
		face  string
		value int
	}
	cards := make([]card, 0, 2*pairs)
	for _, v := range values {
		cards = append(cards, card{face: expression(rng, v), value: v}, card{face: fmt.Sprint(v), value: v})
	}
	rng.Shuffle(len(cards), func(i, j int) { cards[i], cards[j] = cards[j], cards[i] })

	labels := make([]string, len(cards))
	cells := make([]int, len(cards))
	first := make(map[int]int, pairs)
	solution := make([]int, 0, len(cards))
	for i, c := range cards {
		labels[i] = c.face
		cells[i] = c.value
		if j, ok := first[c.value]; ok {
			solution = append(solution, j, i)
		} else {
			first[c.value] = i
		}
	}

	return puzzle.Instance{
		Kind:     puzzle.KindPairs,
		Prompt:   "Match each expression with its value",
		Labels:   labels,
		Cells:    cells,
		Target:   pairs,
		Solution: solution,
		Validate: func(answer []int) bool { return validPairs(cells, answer) },
	}
}

// expression renders a sum or product equal to v. v is at least 2.
func expression(rng *rand.Rand, v int) string {
	if rng.Intn(2) == 0 {
		var factors []int
		for f := 2; f*f <= v; f++ {
			if v%f == 0 {
				factors = append(factors, f)
			}
		}
		if len(factors) > 0 {
			f := factors[rng.Intn(len(factors))]
			return puzzle.Display(f, puzzle.OpMul, v/f)
		}
	}
	a := puzzle.Intn(rng, 1, v-1)
	return puzzle.Display(a, puzzle.OpAdd, v-a)
}

// validPairs accepts any grouping that covers every card once and pairs
// cards of equal value. Values are distinct per pair, so equal value
// means expression and result.
func validPairs(cells, answer []int) bool {
	if len(answer) != len(cells) {
		return false
	}
	used := make([]bool, len(cells))
	for i := 0; i < len(answer); i += 2 {
		a, b := answer[i], answer[i+1]
		if a < 0 || b < 0 || a >= len(cells) || b >= len(cells) || a == b || used[a] || used[b] {
			return false
		}
		if cells[a] != cells[b] {
			return false
		}
		used[a], used[b] = true, true
	}
	return true
}
