package coremap

import "nucore/internal/core"

// Overlay is the kind-independent view of a Map or ListMap.
type Overlay interface {
	Kind() Kind
	Rows() int
	Populated() int
	AssertMapSize(c *core.Core) error
}

var (
	_ Overlay = (*Map[float64])(nil)
	_ Overlay = (*ListMap[int])(nil)
)

// DecodeOverlay builds a Map (or a ListMap when list is set) of the given kind
// from raw values, given either bare or under a values key.
func DecodeOverlay(kind Kind, list bool, raw any) (Overlay, error) {
	raw = unwrapValues(raw)
	switch kind {
	case KindFloat:
		return decodeAs[float64](list, raw)
	case KindInt:
		return decodeAs[int](list, raw)
	case KindString:
		return decodeAs[string](list, raw)
	default:
		return decodeAs[bool](list, raw)
	}
}

func decodeAs[T Scalar](list bool, raw any) (Overlay, error) {
	if list {
		m, err := NewListMap[T](raw)
		if err != nil {
			return nil, err
		}
		return m, nil
	}
	m, err := NewMap[T](raw)
	if err != nil {
		return nil, err
	}
	return m, nil
}

// DecodeAxialLen validates raw as an Axial of the given kind and returns its length.
func DecodeAxialLen(kind Kind, raw any) (int, error) {
	raw = unwrapValues(raw)
	switch kind {
	case KindFloat:
		return axialLen[float64](raw)
	case KindInt:
		return axialLen[int](raw)
	case KindString:
		return axialLen[string](raw)
	default:
		return axialLen[bool](raw)
	}
}

func axialLen[T Scalar](raw any) (int, error) {
	a, err := NewAxial[T](raw)
	if err != nil {
		return 0, err
	}
	return a.Len(), nil
}
