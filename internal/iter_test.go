package internal

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIterSeqConcat(t *testing.T) {
	assert := assert.New(t)

	seq := IterSeqConcat(slices.Values([]int{1, 2}), slices.Values([]int{}), slices.Values([]int{3}))
	assert.Equal([]int{1, 2, 3}, slices.Collect(seq))

	var first []int
	for val := range seq {
		first = append(first, val)
		break
	}
	assert.Equal([]int{1}, first)
}

func TestIterProduct(t *testing.T) {
	assert := assert.New(t)

	got := slices.Collect(IterProduct([]int{1, 2}, []int{10, 20, 30}))
	assert.Equal([][]int{
		{1, 10}, {1, 20}, {1, 30},
		{2, 10}, {2, 20}, {2, 30},
	}, got)

	assert.Empty(slices.Collect(IterProduct([]int{1, 2}, []int{})))
	assert.Equal([][]int{{}}, slices.Collect(IterProduct[int]()))
}

func TestIterLimit(t *testing.T) {
	assert := assert.New(t)

	seq := slices.Values([]int{1, 2, 3, 4})
	assert.Equal([]int{1, 2}, slices.Collect(IterLimit(seq, 2)))
	assert.Equal([]int{1, 2, 3, 4}, slices.Collect(IterLimit(seq, 0)))
}
