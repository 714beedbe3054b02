package puzzle

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/Knetic/govaluate"
)

// MaxOperand caps the numbers generators draw so answers stay readable.
const MaxOperand = 999

// Bounds normalizes a tier range: swapped ends are reordered, the floor
// is at least floor and the width is at least minWidth values.
func Bounds(min, max, floor, minWidth int) (int, int) {
	if max < min {
		min, max = max, min
	}
	if min < floor {
		min = floor
	}
	if max > MaxOperand {
		max = MaxOperand
	}
	if max < min+minWidth-1 {
		max = min + minWidth - 1
	}
	return min, max
}

// Intn returns a uniform integer in [lo, hi].
func Intn(rng *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.Intn(hi-lo+1)
}

// Distinct draws n different integers from [lo, hi]. The range must hold
// at least n values.
func Distinct(rng *rand.Rand, lo, hi, n int) []int {
	if hi-lo+1 < n {
		panic(fmt.Sprintf("puzzle: range [%d,%d] cannot hold %d distinct values", lo, hi, n))
	}
	seen := make(map[int]bool, n)
	out := make([]int, 0, n)
	for len(out) < n {
		v := Intn(rng, lo, hi)
		if seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}

// Eval evaluates an integer arithmetic expression such as "12 * 3 - 4".
func Eval(expr string) (int, error) {
	e, err := govaluate.NewEvaluableExpression(expr)
	if err != nil {
		return 0, fmt.Errorf("puzzle: parse %q: %w", expr, err)
	}
	v, err := e.Evaluate(nil)
	if err != nil {
		return 0, fmt.Errorf("puzzle: evaluate %q: %w", expr, err)
	}
	f, ok := v.(float64)
	if !ok {
		return 0, fmt.Errorf("puzzle: %q is not numeric", expr)
	}
	if math.IsInf(f, 0) || math.IsNaN(f) || f != math.Trunc(f) {
		return 0, fmt.Errorf("puzzle: %q is not an integer (%v)", expr, f)
	}
	return int(f), nil
}

// MustEval is Eval for expressions a generator built itself. A failure is
// a generator bug and panics.
func MustEval(expr string) int {
	v, err := Eval(expr)
	if err != nil {
		panic(err)
	}
	return v
}
