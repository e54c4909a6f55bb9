package recovery

import "math/big"

// Combinations lazily enumerates the size-k index subsets of [0, n) in
// lexicographic order, the same order as a choose-k backtracking search.
type Combinations struct {
	n, k    int
	idx     []int
	started bool
	done    bool
}

func NewCombinations(n, k int) *Combinations {
	return &Combinations{
		n:    n,
		k:    k,
		idx:  make([]int, max(k, 0)),
		done: k < 0 || k > n,
	}
}

// Next advances to the next subset and reports whether one exists.
func (c *Combinations) Next() bool {
	if c.done {
		return false
	}

	if !c.started {
		c.started = true
		for i := range c.idx {
			c.idx[i] = i
		}
		return true
	}

	i := c.k - 1
	for i >= 0 && c.idx[i] == c.n-c.k+i {
		i--
	}
	if i < 0 {
		c.done = true
		return false
	}

	c.idx[i]++
	for j := i + 1; j < c.k; j++ {
		c.idx[j] = c.idx[j-1] + 1
	}
	return true
}

// Indices returns the current subset. The slice is reused by Next.
func (c *Combinations) Indices() []int {
	return c.idx
}

// Binomial returns C(n, k), zero when k is out of range.
func Binomial(n, k int) *big.Int {
	if k < 0 || n < 0 || k > n {
		return new(big.Int)
	}
	return new(big.Int).Binomial(int64(n), int64(k))
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
