package core

import (
	"fmt"
	"strings"
)

// Core is a validated reactor core footprint.
type Core struct {
	name          string
	size          int
	elementsByRow []int
}

// New validates the footprint and returns a Core. The first violated
// invariant is reported as a *ValidationError; later checks are not run.
func New(name string, size int, elementsByRow []int) (*Core, error) {
	if strings.TrimSpace(name) == "" {
		return nil, Invalid(RuleName, "name must not be empty")
	}
	if err := validateFootprint(size, elementsByRow); err != nil {
		return nil, err
	}
	return &Core{
		name:          name,
		size:          size,
		elementsByRow: append([]int(nil), elementsByRow...),
	}, nil
}

// MustNew is New for footprints known to be valid at compile time.
func MustNew(name string, size int, elementsByRow []int) *Core {
	c, err := New(name, size, elementsByRow)
	if err != nil {
		panic(err)
	}
	return c
}

func validateFootprint(size int, rows []int) error {
	if size <= 0 {
		return Invalid(RuleSizePositive, "size must be greater than 0")
	}

	maxRow, minRow := 0, 0
	for i, n := range rows {
		if i == 0 || n > maxRow {
			maxRow = n
		}
		if i == 0 || n < minRow {
			minRow = n
		}
	}
	if size != maxRow {
		return Invalid(RuleMaxRow, "max(elements_by_row) must be equal to the core size")
	}
	if size != len(rows) {
		return Invalid(RuleRowCount, "len(elements_by_row) must be equal to the core size")
	}

	var even, odd bool
	for _, n := range rows {
		if n%2 == 0 {
			even = true
		} else {
			odd = true
		}
	}
	if even && odd {
		return Invalid(RuleParity, "elements_by_row must all be even or all odd numbers")
	}
	if minRow < 1 {
		return Invalid(RuleRowPositive, "elements_by_row must all be greater than 0")
	}
	for i := range rows {
		if rows[i] != rows[len(rows)-1-i] {
			return Invalid(RuleSymmetric, "elements_by_row must be reverse-symmetric")
		}
	}
	for i := 0; i < size/2; i++ {
		if rows[i] > rows[i+1] {
			return Invalid(RuleMonotonic, "elements_by_row must be monotonically increasing until the middle")
		}
	}
	return nil
}

// Name returns the core identifier.
func (c *Core) Name() string { return c.name }

// Size returns the side length of the bounding grid.
func (c *Core) Size() int { return c.size }

// ElementsByRow returns a copy of the occupied-cell count of each row.
func (c *Core) ElementsByRow() []int { return append([]int(nil), c.elementsByRow...) }

// RowSpan returns the half-open column range [lo, hi) occupied in row i.
// i must be in [0, Size).
func (c *Core) RowSpan(i int) (lo, hi int) {
	n := c.elementsByRow[i]
	return (c.size - n) / 2, (c.size + n) / 2
}

// PointIsWithinCore reports whether (i, j) lies inside the footprint.
func (c *Core) PointIsWithinCore(i, j int) (bool, error) {
	if i < 0 || i >= c.size || j < 0 || j >= c.size {
		return false, Invalid(RulePointRange, fmt.Sprintf(
			"Invalid point (i,j)=(%d,%d) (allowed range for i, j is 0-%d)", i, j, c.size-1))
	}
	lo, hi := c.RowSpan(i)
	return j >= lo && j < hi, nil
}

// AssemblyCount returns the number of occupied cells.
func (c *Core) AssemblyCount() int {
	n := 0
	for _, r := range c.elementsByRow {
		n += r
	}
	return n
}

// MembershipMap returns PointIsWithinCore for every cell of the grid.
func (c *Core) MembershipMap() [][]bool {
	out := make([][]bool, c.size)
	for i := range out {
		out[i] = make([]bool, c.size)
		lo, hi := c.RowSpan(i)
		for j := lo; j < hi; j++ {
			out[i][j] = true
		}
	}
	return out
}

// IndexMap numbers the occupied cells 0..AssemblyCount()-1 in row-major
// order and sets every other cell to empty.
func (c *Core) IndexMap(empty int) [][]int {
	idx := make([]int, c.AssemblyCount())
	for k := range idx {
		idx[k] = k
	}
	out, _ := Expand(c, idx, empty)
	return out
}

// Expand places fill onto the occupied cells of c in row-major order and
// sets every other cell to empty. len(fill) must equal c.AssemblyCount().
func Expand[T any](c *Core, fill []T, empty T) ([][]T, error) {
	if len(fill) != c.AssemblyCount() {
		return nil, Invalid(RuleFillLength, fmt.Sprintf(
			"fill has %d values, core %q has %d assemblies", len(fill), c.name, c.AssemblyCount()))
	}
	out := make([][]T, c.size)
	k := 0
	for i := range out {
		row := make([]T, c.size)
		lo, hi := c.RowSpan(i)
		for j := range row {
			if j >= lo && j < hi {
				row[j] = fill[k]
				k++
			} else {
				row[j] = empty
			}
		}
		out[i] = row
	}
	return out, nil
}

// Flatten collects the occupied cells of grid in row-major order. It is the
// inverse of Expand.
func Flatten[T any](c *Core, grid [][]T) ([]T, error) {
	if len(grid) != c.size {
		return nil, Invalid(RuleMapSize, fmt.Sprintf(
			"map has %d rows, core size is %d", len(grid), c.size))
	}
	out := make([]T, 0, c.AssemblyCount())
	for i, row := range grid {
		if len(row) != c.size {
			return nil, Invalid(RuleMapSize, fmt.Sprintf(
				"map row %d has %d columns, core size is %d", i, len(row), c.size))
		}
		lo, hi := c.RowSpan(i)
		out = append(out, row[lo:hi]...)
	}
	return out, nil
}

// String renders the membership map with '#' for occupied cells.
func (c *Core) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s (%dx%d, %d assemblies)\n", c.name, c.size, c.size, c.AssemblyCount())
	for _, row := range c.MembershipMap() {
		for j, in := range row {
			if j > 0 {
				b.WriteByte(' ')
			}
			if in {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
