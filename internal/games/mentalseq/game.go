// Package mentalseq implements the memory game: a chain of operations is
// shown for a few seconds, then hidden, and the player gives the result.
package mentalseq

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/vovakirdan/math-arcade/internal/puzzle"
	"github.com/vovakirdan/math-arcade/internal/registry"
)

const (
	minSteps    = 3
	maxSteps    = 5
	maxStep     = 20
	revealStep  = 1500 * time.Millisecond
	revealFixed = time.Second
)

// Game shows a sequence to memorize.
type Game struct{}

// New creates a mental-sequence game.
func New() *Game { return &Game{} }

func init() {
	registry.Register("mental_sequence", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string { return "mental_sequence" }

// Title returns the display name.
func (g *Game) Title() string { return "Mental Sequence" }

// Instructions describes how to play.
func (g *Game) Instructions() string {
	return "Memorize the starting number and each step while they are shown.\n" +
		"When they disappear, type the final result."
}

// Generate builds a chain of additions and subtractions that never drops
// below zero.
func (g *Game) Generate(rng *rand.Rand, lo, hi int) puzzle.Instance {
	lo, hi = puzzle.Bounds(lo, hi, 1, 1)
	steps := puzzle.Intn(rng, minSteps, maxSteps)
	stepHi := max(1, min(hi, maxStep))

	value := puzzle.Intn(rng, lo, hi)
	memo := []string{fmt.Sprintf("Start with %d", value)}
	expr := []string{fmt.Sprint(value)}

	for i := 0; i < steps; i++ {
		k := puzzle.Intn(rng, 1, stepHi)
		op := puzzle.OpAdd
		if rng.Intn(2) == 0 && k <= value {
			op = puzzle.OpSub
		}
		value, _ = op.Apply(value, k)
		memo = append(memo, fmt.Sprintf("%s %d", op.Symbol(), k))
		expr = append(expr, op.Token(), fmt.Sprint(k))
	}

	return puzzle.Instance{
		Kind:     puzzle.KindInput,
		Prompt:   "What is the result?",
		Memo:     memo,
		Reveal:   revealFixed + time.Duration(steps)*revealStep,
		Solution: []int{puzzle.MustEval(strings.Join(expr, " "))},
	}
}
