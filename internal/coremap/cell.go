package coremap

import "encoding/json"

// Cell is a value of type T or absent.
type Cell[T Scalar] struct {
	value   T
	present bool
}

// Some returns a present cell holding v.
func Some[T Scalar](v T) Cell[T] { return Cell[T]{value: v, present: true} }

// Absent returns an empty cell.
func Absent[T Scalar]() Cell[T] { return Cell[T]{} }

// Get returns the value and whether the cell is present.
func (c Cell[T]) Get() (T, bool) { return c.value, c.present }

// IsAbsent reports whether the cell holds no value.
func (c Cell[T]) IsAbsent() bool { return !c.present }

// Or returns the value, or def when the cell is absent.
func (c Cell[T]) Or(def T) T {
	if !c.present {
		return def
	}
	return c.value
}

// MarshalYAML writes absent cells as null.
func (c Cell[T]) MarshalYAML() (any, error) {
	if !c.present {
		return nil, nil
	}
	return c.value, nil
}

// MarshalJSON writes absent cells as null.
func (c Cell[T]) MarshalJSON() ([]byte, error) {
	if !c.present {
		return []byte("null"), nil
	}
	return json.Marshal(c.value)
}

func cellFromRaw[T Scalar](v any) (Cell[T], bool) {
	if v == nil {
		return Absent[T](), true
	}
	x, ok := convert[T](v)
	if !ok {
		return Cell[T]{}, false
	}
	return Some(x), true
}
