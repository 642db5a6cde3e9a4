package coremap

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"nucore/internal/core"
)

// Map holds one optional value per radial cell.
type Map[T Scalar] struct {
	values [][]Cell[T]
}

// NewMap validates raw, a list of rows of T-or-nil leaves, and builds a Map.
// Integer leaves are accepted in a float map because YAML and JSON encoders
// write a whole float such as 1.0 as 1.
func NewMap[T Scalar](raw any) (*Map[T], error) {
	rows, ok := raw.([]any)
	if !ok {
		return nil, core.Invalid(core.RuleShape, "values must be of type list")
	}
	for _, r := range rows {
		if _, ok := r.([]any); !ok {
			return nil, core.Invalid(core.RuleShape, "values must be of type list[list]")
		}
	}
	values := make([][]Cell[T], len(rows))
	for i, r := range rows {
		row := r.([]any)
		values[i] = make([]Cell[T], len(row))
		for j, v := range row {
			cell, ok := cellFromRaw[T](v)
			if !ok {
				return nil, core.Invalid(core.RuleElementType,
					fmt.Sprintf("values must be of type list[list[%s | None]]", KindOf[T]()))
			}
			values[i][j] = cell
		}
	}
	return &Map[T]{values: values}, nil
}

// MapOf builds a Map from cells. The slices are copied.
func MapOf[T Scalar](cells [][]Cell[T]) *Map[T] {
	values := make([][]Cell[T], len(cells))
	for i, row := range cells {
		values[i] = append([]Cell[T](nil), row...)
	}
	return &Map[T]{values: values}
}

// Filled builds a Map from plain values, treating every cell as present.
func Filled[T Scalar](grid [][]T) *Map[T] {
	values := make([][]Cell[T], len(grid))
	for i, row := range grid {
		values[i] = make([]Cell[T], len(row))
		for j, v := range row {
			values[i][j] = Some(v)
		}
	}
	return &Map[T]{values: values}
}

// FromCore builds a size x size Map holding fill on every occupied cell of c
// and absent cells elsewhere.
func FromCore[T Scalar](c *core.Core, fill T) *Map[T] {
	values := make([][]Cell[T], c.Size())
	for i := range values {
		values[i] = make([]Cell[T], c.Size())
		lo, hi := c.RowSpan(i)
		for j := lo; j < hi; j++ {
			values[i][j] = Some(fill)
		}
	}
	return &Map[T]{values: values}
}

// Kind returns the element type tag.
func (m *Map[T]) Kind() Kind { return KindOf[T]() }

// Rows returns the number of rows.
func (m *Map[T]) Rows() int { return len(m.values) }

// AssertMapSize checks that the map is c.Size() x c.Size().
func (m *Map[T]) AssertMapSize(c *core.Core) error {
	return assertSize(len(m.values), func(i int) int { return len(m.values[i]) }, c)
}

// GetItemByIJ returns the cell at p, which must lie inside c's footprint.
func (m *Map[T]) GetItemByIJ(p Point, c *core.Core) (Cell[T], error) {
	if err := checkWithinCore(p, c); err != nil {
		return Cell[T]{}, err
	}
	if p.I >= len(m.values) || p.J >= len(m.values[p.I]) {
		return Cell[T]{}, outOfGrid(p)
	}
	return m.values[p.I][p.J], nil
}

// Populated returns the number of present cells.
func (m *Map[T]) Populated() int {
	n := 0
	for _, row := range m.values {
		for _, v := range row {
			if !v.IsAbsent() {
				n++
			}
		}
	}
	return n
}

// Dense returns the grid with absent cells replaced by absent.
func (m *Map[T]) Dense(absent T) [][]T {
	out := make([][]T, len(m.values))
	for i, row := range m.values {
		out[i] = make([]T, len(row))
		for j, v := range row {
			out[i][j] = v.Or(absent)
		}
	}
	return out
}

// Equal reports whether both maps hold the same cells.
func (m *Map[T]) Equal(o *Map[T]) bool {
	if len(m.values) != len(o.values) {
		return false
	}
	for i := range m.values {
		if len(m.values[i]) != len(o.values[i]) {
			return false
		}
		for j := range m.values[i] {
			if m.values[i][j] != o.values[i][j] {
				return false
			}
		}
	}
	return true
}

// MarshalYAML implements yaml.Marshaler.
func (m *Map[T]) MarshalYAML() (any, error) { return document[[][]Cell[T]]{Values: m.values}, nil }

// UnmarshalYAML implements yaml.Unmarshaler and validates every leaf.
func (m *Map[T]) UnmarshalYAML(node *yaml.Node) error {
	raw, err := valuesFromYAML(node)
	if err != nil {
		return err
	}
	dec, err := NewMap[T](raw)
	if err != nil {
		return err
	}
	*m = *dec
	return nil
}

// MarshalJSON implements json.Marshaler.
func (m *Map[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(document[[][]Cell[T]]{Values: m.values})
}

// UnmarshalJSON implements json.Unmarshaler and validates every leaf.
func (m *Map[T]) UnmarshalJSON(b []byte) error {
	raw, err := valuesFromJSON(b)
	if err != nil {
		return err
	}
	dec, err := NewMap[T](raw)
	if err != nil {
		return err
	}
	*m = *dec
	return nil
}
