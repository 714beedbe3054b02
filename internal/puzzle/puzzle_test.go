package puzzle

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChoicesDistinctWithSingleCorrect(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 500; i++ {
		correct := Intn(rng, 0, 50)
		opts, idx := Choices(rng, correct, 4, 3, 0)

		require.Len(t, opts, 4)
		assert.Equal(t, correct, opts[idx])

		seen := map[int]int{}
		for _, v := range opts {
			seen[v]++
			assert.GreaterOrEqual(t, v, 0)
		}
		assert.Len(t, seen, 4, "options must be distinct: %v", opts)
		assert.Equal(t, 1, seen[correct])
	}
}

func TestChoicesRespectsFloor(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	opts, idx := Choices(rng, 1, 4, 2, 1)
	assert.Equal(t, 1, opts[idx])
	for _, v := range opts {
		assert.GreaterOrEqual(t, v, 1)
	}
}

func TestEval(t *testing.T) {
	v, err := Eval("12 * 3 - 4")
	require.NoError(t, err)
	assert.Equal(t, 32, v)

	v, err = Eval("(7 + 5) / 4")
	require.NoError(t, err)
	assert.Equal(t, 3, v)

	_, err = Eval("7 / 2")
	assert.Error(t, err)

	_, err = Eval("7 +")
	assert.Error(t, err)
}

func TestBounds(t *testing.T) {
	lo, hi := Bounds(10, 1, 1, 1)
	assert.Equal(t, 1, lo)
	assert.Equal(t, 10, hi)

	lo, hi = Bounds(-5, 2, 1, 6)
	assert.Equal(t, 1, lo)
	assert.Equal(t, 6, hi)

	_, hi = Bounds(1, 100000, 1, 1)
	assert.Equal(t, MaxOperand, hi)
}

func TestDistinct(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	vals := Distinct(rng, 1, 6, 6)
	assert.ElementsMatch(t, []int{1, 2, 3, 4, 5, 6}, vals)
	assert.Panics(t, func() { Distinct(rng, 1, 3, 4) })
}

func TestCheckDefaultsToSolution(t *testing.T) {
	p := Instance{Solution: []int{4}}
	assert.True(t, p.Check([]int{4}))
	assert.False(t, p.Check([]int{5}))
	assert.False(t, p.Check(nil))

	p.Validate = func(a []int) bool { return len(a) == 1 && a[0]%2 == 0 }
	assert.True(t, p.Check([]int{8}))
}
