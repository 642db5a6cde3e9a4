package coremap

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"nucore/internal/core"
)

// ListMap holds an ordered list of optional values per radial cell.
type ListMap[T Scalar] struct {
	values [][][]Cell[T]
}

// NewListMap validates raw, a list of rows of lists of T-or-nil leaves.
func NewListMap[T Scalar](raw any) (*ListMap[T], error) {
	rows, ok := raw.([]any)
	if !ok {
		return nil, core.Invalid(core.RuleShape, "values must be of type list")
	}
	for _, r := range rows {
		if _, ok := r.([]any); !ok {
			return nil, core.Invalid(core.RuleShape, "values must be of type list[list]")
		}
	}
	for _, r := range rows {
		for _, c := range r.([]any) {
			if _, ok := c.([]any); !ok {
				return nil, core.Invalid(core.RuleShape, "values must be of type list[list[list]]")
			}
		}
	}

	values := make([][][]Cell[T], len(rows))
	for i, r := range rows {
		row := r.([]any)
		values[i] = make([][]Cell[T], len(row))
		for j, c := range row {
			list := c.([]any)
			cells := make([]Cell[T], len(list))
			for k, v := range list {
				cell, ok := cellFromRaw[T](v)
				if !ok {
					return nil, core.Invalid(core.RuleElementType,
						fmt.Sprintf("values must be of type list[list[list[%s | None]]]", KindOf[T]()))
				}
				cells[k] = cell
			}
			values[i][j] = cells
		}
	}
	return &ListMap[T]{values: values}, nil
}

// ListMapOf builds a ListMap from cells. The slices are copied.
func ListMapOf[T Scalar](cells [][][]Cell[T]) *ListMap[T] {
	values := make([][][]Cell[T], len(cells))
	for i, row := range cells {
		values[i] = make([][]Cell[T], len(row))
		for j, list := range row {
			values[i][j] = append([]Cell[T](nil), list...)
		}
	}
	return &ListMap[T]{values: values}
}

// Kind returns the element type tag.
func (m *ListMap[T]) Kind() Kind { return KindOf[T]() }

// Rows returns the number of rows.
func (m *ListMap[T]) Rows() int { return len(m.values) }

// AssertMapSize checks that the radial grid is c.Size() x c.Size().
func (m *ListMap[T]) AssertMapSize(c *core.Core) error {
	return assertSize(len(m.values), func(i int) int { return len(m.values[i]) }, c)
}

// GetItemByIJ returns a copy of the list at p, which must lie inside c's footprint.
func (m *ListMap[T]) GetItemByIJ(p Point, c *core.Core) ([]Cell[T], error) {
	if err := checkWithinCore(p, c); err != nil {
		return nil, err
	}
	if p.I >= len(m.values) || p.J >= len(m.values[p.I]) {
		return nil, outOfGrid(p)
	}
	return append([]Cell[T](nil), m.values[p.I][p.J]...), nil
}

// GetItemByIJK returns layer p.K of the list at (p.I, p.J). The footprint
// check runs before the layer index check.
func (m *ListMap[T]) GetItemByIJK(p Point3, c *core.Core) (Cell[T], error) {
	ij := Point{I: p.I, J: p.J}
	if err := checkWithinCore(ij, c); err != nil {
		return Cell[T]{}, err
	}
	if p.I >= len(m.values) || p.J >= len(m.values[p.I]) {
		return Cell[T]{}, outOfGrid(ij)
	}
	list := m.values[p.I][p.J]
	if p.K < 0 || p.K >= len(list) {
		return Cell[T]{}, invalidK(p.K)
	}
	return list[p.K], nil
}

// Populated returns the number of present leaves.
func (m *ListMap[T]) Populated() int {
	n := 0
	for _, row := range m.values {
		for _, list := range row {
			for _, v := range list {
				if !v.IsAbsent() {
					n++
				}
			}
		}
	}
	return n
}

// Layer returns a Map of layer k. Cells whose list is shorter than k+1 are absent.
func (m *ListMap[T]) Layer(k int) *Map[T] {
	values := make([][]Cell[T], len(m.values))
	for i, row := range m.values {
		values[i] = make([]Cell[T], len(row))
		for j, list := range row {
			if k >= 0 && k < len(list) {
				values[i][j] = list[k]
			}
		}
	}
	return &Map[T]{values: values}
}

// MarshalYAML implements yaml.Marshaler.
func (m *ListMap[T]) MarshalYAML() (any, error) {
	return document[[][][]Cell[T]]{Values: m.values}, nil
}

// UnmarshalYAML implements yaml.Unmarshaler and validates every leaf.
func (m *ListMap[T]) UnmarshalYAML(node *yaml.Node) error {
	raw, err := valuesFromYAML(node)
	if err != nil {
		return err
	}
	dec, err := NewListMap[T](raw)
	if err != nil {
		return err
	}
	*m = *dec
	return nil
}

// MarshalJSON implements json.Marshaler.
func (m *ListMap[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(document[[][][]Cell[T]]{Values: m.values})
}

// UnmarshalJSON implements json.Unmarshaler and validates every leaf.
func (m *ListMap[T]) UnmarshalJSON(b []byte) error {
	raw, err := valuesFromJSON(b)
	if err != nil {
		return err
	}
	dec, err := NewListMap[T](raw)
	if err != nil {
		return err
	}
	*m = *dec
	return nil
}
