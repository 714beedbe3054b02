package triangle

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeneratedTrianglesAreSolvable(t *testing.T) {
	g := New()
	rng := rand.New(rand.NewSource(2024))

	for lo := 1; lo <= 30; lo++ {
		for hi := lo; hi <= lo+40; hi += 3 {
			p := g.Generate(rng, lo, hi)
			require.Len(t, p.Solution, Slots)

			for _, side := range Sides {
				sum := p.Solution[side[0]] + p.Solution[side[1]] + p.Solution[side[2]]
				assert.Equal(t, p.Target, sum, "range [%d,%d] slots %v", lo, hi, p.Solution)
			}
			assert.True(t, distinct(p.Solution))
			assert.ElementsMatch(t, p.Cells, p.Solution)
			if hi-lo+1 >= Slots {
				for _, v := range p.Solution {
					assert.GreaterOrEqual(t, v, lo)
					assert.LessOrEqual(t, v, hi)
				}
			}
		}
	}
}

func TestClassicArrangement(t *testing.T) {
	for _, lo := range []int{1, 7, 100} {
		slots := classic(lo)
		assert.True(t, Valid(slots, 3*lo+6, slots))
	}
}

func TestValidAcceptsAlternativeSolutions(t *testing.T) {
	offered := []int{1, 2, 3, 4, 5, 6}
	// Corners 1, 2, 3 and corners 4, 5, 6 both give magic triangles.
	assert.True(t, Valid(offered, 9, []int{1, 6, 2, 4, 3, 5}))
	assert.True(t, Valid(offered, 12, []int{4, 3, 5, 1, 6, 2}))

	assert.False(t, Valid(offered, 9, []int{1, 6, 2, 4, 3}))
	assert.False(t, Valid(offered, 9, []int{1, 6, 2, 4, 3, 3}))
	assert.False(t, Valid(offered, 9, []int{1, 2, 3, 4, 5, 6}))
}
