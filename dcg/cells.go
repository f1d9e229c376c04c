package dcg

// Cells is a growable sequence indexed by tape cell. External indices may be
// negative (cells left of the literal input hold certificate and blank
// regions); internally a base offset translates them into a dense backing
// slice, so growth in either direction is O(Δ) amortized.
//
// Out-of-range access through At materializes every cell between the old
// boundary and the requested index with the maker function, exactly once per
// cell; a nil maker yields zero values.
type Cells[T any] struct {
	base  int
	items []T
	mk    func(index int) T
}

// NewCells returns an empty container whose missing cells are produced by
// mk. mk may be nil for zero-valued cells.
func NewCells[T any](mk func(index int) T) *Cells[T] {
	return &Cells[T]{mk: mk}
}

// Base returns the lowest materialized external index.
func (c *Cells[T]) Base() int { return c.base }

// Len returns the number of materialized cells.
func (c *Cells[T]) Len() int { return len(c.items) }

// Defined reports whether index i has been materialized.
func (c *Cells[T]) Defined(i int) bool {
	return c.base <= i && i < c.base+len(c.items)
}

func (c *Cells[T]) newCell(i int) T {
	if c.mk == nil {
		var zero T
		return zero
	}
	return c.mk(i)
}

// At returns the cell at external index i, expanding the container toward i
// when necessary.
func (c *Cells[T]) At(i int) T {
	if c.Defined(i) {
		return c.items[i-c.base]
	}
	if len(c.items) == 0 {
		c.base = i
		c.items = append(c.items, c.newCell(i))
		return c.items[0]
	}
	for j := c.base + len(c.items); j <= i; j++ {
		c.items = append(c.items, c.newCell(j))
	}
	for j := c.base - 1; j >= i; j-- {
		c.items = append([]T{c.newCell(j)}, c.items...)
		c.base--
	}
	return c.items[i-c.base]
}

// Set stores v at external index i, expanding toward i when necessary.
func (c *Cells[T]) Set(i int, v T) {
	c.At(i)
	c.items[i-c.base] = v
}

// Clone returns a shallow copy: the backing slice is duplicated, the cell
// values are shared.
func (c *Cells[T]) Clone() *Cells[T] {
	d := &Cells[T]{base: c.base, mk: c.mk}
	d.items = append(d.items, c.items...)
	return d
}

// Each calls fn for every materialized cell in ascending index order.
func (c *Cells[T]) Each(fn func(index int, v T)) {
	for j, v := range c.items {
		fn(c.base+j, v)
	}
}
