package mathgrid

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidSelection(t *testing.T) {
	cells := []int{1, 2, 3, 4, 5, 6, 7, 8, 9}
	assert.True(t, validSelection(cells, 10, []int{0, 8}))
	assert.True(t, validSelection(cells, 10, []int{1, 2, 4}))
	assert.False(t, validSelection(cells, 10, []int{4, 4}))
	assert.False(t, validSelection(cells, 10, []int{9}))
	assert.False(t, validSelection(cells, 10, nil))
}
