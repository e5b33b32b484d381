package types

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIterate(t *testing.T) {
	t.Run("is lazy", func(t *testing.T) {
		calls := 0
		seq := Iterate(1, func(n int) int {
			calls++
			return n * 2
		})
		assert.Equal(t, 0, calls)

		assert.Equal(t, []int{1, 2, 4, 8}, slices.Collect(Take(seq, 4)))
		assert.Equal(t, 3, calls)
	})

	t.Run("restarts from the seed", func(t *testing.T) {
		seq := Iterate(0, func(n int) int { return n + 1 })

		assert.Equal(t, []int{0, 1}, slices.Collect(Take(seq, 2)))
		assert.Equal(t, []int{0, 1, 2}, slices.Collect(Take(seq, 3)))
	})
}

func TestFilter(t *testing.T) {
	even := func(n int) bool { return n%2 == 0 }
	naturals := Iterate(1, func(n int) int { return n + 1 })

	assert.Equal(t, []int{2, 4, 6}, slices.Collect(Take(Filter(naturals, even), 3)))
	assert.Empty(t, slices.Collect(Filter(slices.Values([]int{1, 3}), even)))
}

func TestFirst(t *testing.T) {
	t.Run("takes the first value of an unbounded sequence", func(t *testing.T) {
		steps := 0
		naturals := Iterate(1, func(n int) int {
			steps++
			return n + 1
		})

		first := First(Filter(naturals, func(n int) bool { return n > 4 }))

		assert.Equal(t, Success[Unit](5), first)
		assert.Equal(t, 4, steps)
	})

	t.Run("fails on an empty sequence", func(t *testing.T) {
		assert.Equal(t, Failure[Unit, int](UnitValue), First(slices.Values([]int{})))
	})
}

func TestTake(t *testing.T) {
	values := slices.Values([]int{1, 2, 3})

	assert.Empty(t, slices.Collect(Take(values, 0)))
	assert.Equal(t, []int{1, 2, 3}, slices.Collect(Take(values, 10)))
}

func BenchmarkFirst(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = First(Filter(Iterate(0, func(n int) int { return n + 1 }), func(n int) bool { return n == 100 }))
	}
}
