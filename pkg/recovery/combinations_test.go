package recovery

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func collect(n, k int) [][]int {
	var out [][]int
	c := NewCombinations(n, k)
	for c.Next() {
		out = append(out, append([]int(nil), c.Indices()...))
	}
	return out
}

func TestCombinationsOrder(t *testing.T) {
	require.Equal(t, [][]int{
		{0, 1, 2},
		{0, 1, 3},
		{0, 2, 3},
		{1, 2, 3},
	}, collect(4, 3))

	require.Equal(t, [][]int{{0}, {1}, {2}}, collect(3, 1))
	require.Equal(t, [][]int{{0, 1, 2}}, collect(3, 3))
}

func TestCombinationsCount(t *testing.T) {
	for n := 0; n <= 12; n++ {
		for k := 0; k <= n+2; k++ {
			got := len(collect(n, k))
			require.Equal(t, Binomial(n, k).Int64(), int64(got), "C(%d, %d)", n, k)
		}
	}
}

func TestCombinationsEdges(t *testing.T) {
	require.Empty(t, collect(2, 3))
	require.Empty(t, collect(3, -1))
	require.Len(t, collect(0, 0), 1)

	c := NewCombinations(2, 2)
	require.True(t, c.Next())
	require.False(t, c.Next())
	require.False(t, c.Next())
}

func TestBinomial(t *testing.T) {
	require.Equal(t, int64(4), Binomial(4, 3).Int64())
	require.Equal(t, int64(184756), Binomial(20, 10).Int64())
	require.Equal(t, int64(0), Binomial(3, 4).Int64())
	require.Equal(t, int64(0), Binomial(3, -1).Int64())
	require.Equal(t, int64(1), Binomial(5, 0).Int64())
}
