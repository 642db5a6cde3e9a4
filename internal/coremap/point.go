package coremap

import (
	"fmt"

	"nucore/internal/core"
)

// Point addresses a radial cell.
type Point struct{ I, J int }

// Point3 addresses layer K of a radial cell.
type Point3 struct{ I, J, K int }

// checkWithinCore validates p against c's footprint.
func checkWithinCore(p Point, c *core.Core) error {
	in, err := c.PointIsWithinCore(p.I, p.J)
	if err != nil {
		return err
	}
	if !in {
		return core.Invalid(core.RulePointOutside,
			fmt.Sprintf("Point (i,j)=(%d,%d) is not within the core", p.I, p.J))
	}
	return nil
}

func invalidK(k int) error {
	return core.Invalid(core.RuleIndexK, fmt.Sprintf("Invalid k index: %d", k))
}

// assertSize checks rows x cols against the core size.
func assertSize(rows int, cols func(i int) int, c *core.Core) error {
	if rows != c.Size() {
		return core.Invalid(core.RuleMapSize,
			fmt.Sprintf("map has %d rows, core size is %d", rows, c.Size()))
	}
	for i := 0; i < rows; i++ {
		if n := cols(i); n != c.Size() {
			return core.Invalid(core.RuleMapSize,
				fmt.Sprintf("map row %d has %d columns, core size is %d", i, n, c.Size()))
		}
	}
	return nil
}

func outOfGrid(p Point) error {
	return core.Invalid(core.RuleMapSize,
		fmt.Sprintf("Point (i,j)=(%d,%d) is outside the map; run AssertMapSize against this core", p.I, p.J))
}
