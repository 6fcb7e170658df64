package seq

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ib-77/adt/pkg/adt/option"
	"github.com/ib-77/adt/pkg/adt/pair"
)

func TestFirstLast(t *testing.T) {
	require.Equal(t, option.Some(1), First([]int{1, 2, 3}))
	require.Equal(t, option.None[int](), First([]int{}))
	require.Equal(t, option.Some(3), Last([]int{1, 2, 3}))
	require.Equal(t, option.None[int](), Last[int](nil))
}

func TestFind(t *testing.T) {
	even := func(i int) bool { return i%2 == 0 }

	require.Equal(t, option.Some(4), Find(even, []int{1, 3, 4, 6}))
	require.Equal(t, option.None[int](), Find(even, []int{1, 3, 5}))
	require.Equal(
		t, option.Some(pair.New(2, 4)), FindIdx(even, []int{1, 3, 4, 6}),
	)
}

func TestHead(t *testing.T) {
	ctx := context.Background()

	ch := make(chan int, 1)
	ch <- 42
	require.Equal(t, option.Some(42), Head(ctx, ch))

	closed := make(chan int)
	close(closed)
	require.Equal(t, option.None[int](), Head(ctx, closed))

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	require.Equal(t, option.None[int](), Head(cancelled, make(chan int)))
}

func TestAllAny(t *testing.T) {
	pos := func(i int) bool { return i > 0 }

	require.True(t, All(pos, []int{1, 2, 3}))
	require.False(t, All(pos, []int{1, -2, 3}))
	require.True(t, Any(pos, []int{-1, 2}))
	require.False(t, Any(pos, []int{-1, -2}))
}

func TestMapFilterFold(t *testing.T) {
	dbl := func(i int) int { return i * 2 }
	even := func(i int) bool { return i%2 == 0 }

	require.Equal(t, []int{2, 4, 6}, Map(dbl, []int{1, 2, 3}))
	require.Equal(t, []int{2, 4}, Filter(even, []int{1, 2, 3, 4}))
	require.Equal(
		t, 10, Foldl(func(acc, v int) int { return acc + v }, 0, []int{1, 2, 3, 4}),
	)
}

func TestSum(t *testing.T) {
	require.Equal(t, 6, Sum([]int{1, 2, 3}))
	require.Equal(t, 1.5, Sum([]float64{0.5, 1.0}))
	require.Equal(t, 0, Sum[int](nil))
}
