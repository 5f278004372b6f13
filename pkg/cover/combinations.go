package cover

// Combinations lazily enumerates all r-element subsets of {0, ..., n-1} in
// lexicographic order. Only the current combination is held in memory.
//
//	c := NewCombinations(4, 2)
//	for c.Next() {
//		fmt.Println(c.Indices()) // [0 1] [0 2] [0 3] [1 2] [1 3] [2 3]
//	}
type Combinations struct {
	n       int
	r       int
	indices []int
	started bool
	done    bool
}

func NewCombinations(n, r int) *Combinations {
	c := &Combinations{n: n, r: r}
	if r < 0 || r > n {
		c.done = true
		return c
	}
	c.indices = make([]int, r)
	return c
}

// Next advances to the next combination and reports whether there is one.
func (c *Combinations) Next() bool {
	if c.done {
		return false
	}
	if !c.started {
		c.started = true
		for i := range c.indices {
			c.indices[i] = i
		}
		return true
	}

	// rightmost position which has not reached its maximum yet
	i := c.r - 1
	for i >= 0 && c.indices[i] == c.n-c.r+i {
		i--
	}
	if i < 0 {
		c.done = true
		return false
	}
	c.indices[i]++
	for j := i + 1; j < c.r; j++ {
		c.indices[j] = c.indices[j-1] + 1
	}
	return true
}

// Indices returns the current combination. The slice is reused by Next, so
// callers which keep it must copy it.
func (c *Combinations) Indices() []int {
	return c.indices
}

// Reset rewinds the generator to the first combination.
func (c *Combinations) Reset() {
	c.started = false
	c.done = c.r < 0 || c.r > c.n
}
