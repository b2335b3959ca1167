package seqs_test

import (
	"math"
	"pseudoseq/seqs"
	"slices"
	"testing"

	"github.com/go-softwarelab/common/pkg/is"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForAll(t *testing.T) {
	t.Run("Integers", func(t *testing.T) {
		cases := []struct {
			input []int
			want  bool
		}{
			{[]int{2, 77, 43, 12, 0, 20, 31}, true},
			{[]int{1, 333, 4, 55, -1, 89, 1}, false},
			{[]int{math.MaxInt, 0, 3, 4, 0, 999999, 123, math.MaxInt}, true},
			{[]int{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, -1}, false},
			{[]int{0, 0, 0, -1}, false},
		}
		for _, tc := range cases {
			got, err := seqs.ForAll(slices.Values(tc.input), is.GreaterOrEqualTo(0))
			require.NoError(t, err)
			assert.Equal(t, tc.want, got, "%v", tc.input)
		}
	})

	t.Run("Strings", func(t *testing.T) {
		lengthSix := func(s string) bool { return len(s) == 6 }

		got, err := seqs.ForAll(slices.Values([]string{"six", "google", "cSharp", "notsix", ""}), lengthSix)
		require.NoError(t, err)
		assert.False(t, got)

		got, err = seqs.ForAll(slices.Values([]string{"123456", "google", "cSharp", "notsix", "string"}), lengthSix)
		require.NoError(t, err)
		assert.True(t, got)
	})

	t.Run("EmptyIsTrue", func(t *testing.T) {
		got, err := seqs.ForAll(slices.Values([]int(nil)), func(int) bool { return false })
		require.NoError(t, err)
		assert.True(t, got)
	})

	t.Run("ShortCircuits", func(t *testing.T) {
		var calls int
		got, err := seqs.ForAll(slices.Values([]int{1, 2, -3, 4, 5}), func(x int) bool {
			calls++
			return x > 0
		})
		require.NoError(t, err)
		assert.False(t, got)
		assert.Equal(t, 3, calls)
	})

	t.Run("InfiniteSourceStopsAtFirstFailure", func(t *testing.T) {
		var pulled int
		got, err := seqs.ForAll(naturals(&pulled), is.LessThan(10))
		require.NoError(t, err)
		assert.False(t, got)
		assert.Equal(t, 11, pulled)
	})

	t.Run("NilArguments", func(t *testing.T) {
		var calls int
		_, err := seqs.ForAll(nil, func(int) bool { calls++; return true })
		assert.ErrorIs(t, err, seqs.ErrInvalidArgument)

		_, err = seqs.ForAll[int](slices.Values([]int{1}), nil)
		assert.ErrorIs(t, err, seqs.ErrInvalidArgument)
		assert.Zero(t, calls)
	})
}

func TestAny(t *testing.T) {
	got, err := seqs.Any(slices.Values([]int{1, 3, 4, 5}), isEven)
	require.NoError(t, err)
	assert.True(t, got)

	got, err = seqs.Any(slices.Values([]int{}), isEven)
	require.NoError(t, err)
	assert.False(t, got)

	var pulled int
	got, err = seqs.Any(naturals(&pulled), is.GreaterThan(2))
	require.NoError(t, err)
	assert.True(t, got)
	assert.Equal(t, 4, pulled)

	_, err = seqs.Any[int](nil, isEven)
	assert.ErrorIs(t, err, seqs.ErrInvalidArgument)
}

func TestFirstAndCount(t *testing.T) {
	v, ok, err := seqs.First(slices.Values([]string{"a", "b"}))
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "a", v)

	_, ok, err = seqs.First(slices.Values([]string{}))
	require.NoError(t, err)
	assert.False(t, ok)

	n, err := seqs.Count(seqs.Must(seqs.Filter(slices.Values([]int{2, 77, 43, -12, 0, 20, -31}), isEven)))
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	_, _, err = seqs.First[int](nil)
	assert.ErrorIs(t, err, seqs.ErrInvalidArgument)
	_, err = seqs.Count[int](nil)
	assert.ErrorIs(t, err, seqs.ErrInvalidArgument)
}
