// Package puzzle defines the question instances produced by game generators
// and the helpers generators share: bounded random numbers, distinct
// multiple-choice options and expression evaluation.
package puzzle

import (
	"math/rand"
	"time"
)

// Kind describes how a player answers an instance.
type Kind int

const (
	// KindInput expects a single typed number.
	KindInput Kind = iota
	// KindChoice expects the value of one entry in Options.
	KindChoice
	// KindSelect expects a set of indices into Cells.
	KindSelect
	// KindPlace expects Cells rearranged into slot order.
	KindPlace
	// KindFill expects values for the Hidden cells, in Hidden order.
	KindFill
	// KindPairs expects card indices grouped two by two.
	KindPairs
)

// String returns the lowercase kind name.
func (k Kind) String() string {
	switch k {
	case KindInput:
		return "input"
	case KindChoice:
		return "choice"
	case KindSelect:
		return "select"
	case KindPlace:
		return "place"
	case KindFill:
		return "fill"
	case KindPairs:
		return "pairs"
	default:
		return "unknown"
	}
}

// Instance is one generated question. Instances are immutable once
// returned by a generator.
type Instance struct {
	Kind   Kind
	Prompt string

	// Memo lines are shown only while the reveal window is open.
	Memo   []string
	Reveal time.Duration

	// Options holds multiple-choice values. Labels, when set, replaces
	// their textual rendering (operators, card faces).
	Options []int
	Labels  []string

	Cells  []int
	Hidden []int
	Target int

	// Solution is one accepted answer.
	Solution []int

	// Validate overrides the default equality check against Solution
	// for puzzles with several valid answers.
	Validate func(answer []int) bool
}

// Check reports whether answer solves the instance.
func (p Instance) Check(answer []int) bool {
	if p.Validate != nil {
		return p.Validate(answer)
	}
	return equalInts(answer, p.Solution)
}

// Generator produces instances for a numeric range.
type Generator interface {
	Generate(rng *rand.Rand, min, max int) Instance
}

// GeneratorFunc adapts a plain function to Generator.
type GeneratorFunc func(rng *rand.Rand, min, max int) Instance

// Generate calls f.
func (f GeneratorFunc) Generate(rng *rand.Rand, min, max int) Instance {
	return f(rng, min, max)
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
