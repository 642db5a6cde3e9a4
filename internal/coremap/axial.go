package coremap

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"nucore/internal/core"
)

// Axial holds one value per axial layer.
type Axial[T Scalar] struct {
	values []T
}

// NewAxial validates raw, a flat list of T leaves. Absent values are not allowed.
func NewAxial[T Scalar](raw any) (*Axial[T], error) {
	list, ok := raw.([]any)
	if !ok {
		return nil, core.Invalid(core.RuleShape, "values must be of type list")
	}
	values := make([]T, len(list))
	for k, v := range list {
		x, ok := convert[T](v)
		if !ok {
			return nil, core.Invalid(core.RuleElementType,
				fmt.Sprintf("values must be of type list[%s]", KindOf[T]()))
		}
		values[k] = x
	}
	return &Axial[T]{values: values}, nil
}

// AxialOf builds an Axial from values. The slice is copied.
func AxialOf[T Scalar](values []T) *Axial[T] {
	return &Axial[T]{values: append([]T(nil), values...)}
}

// Kind returns the element type tag.
func (a *Axial[T]) Kind() Kind { return KindOf[T]() }

// Len returns the number of layers.
func (a *Axial[T]) Len() int { return len(a.values) }

// GetItemByK returns the value of layer k.
func (a *Axial[T]) GetItemByK(k int) (T, error) {
	if k < 0 || k >= len(a.values) {
		var zero T
		return zero, invalidK(k)
	}
	return a.values[k], nil
}

// Values returns a copy of the layer values.
func (a *Axial[T]) Values() []T { return append([]T(nil), a.values...) }

// MarshalYAML implements yaml.Marshaler.
func (a *Axial[T]) MarshalYAML() (any, error) { return document[[]T]{Values: a.values}, nil }

// UnmarshalYAML implements yaml.Unmarshaler and validates every value.
func (a *Axial[T]) UnmarshalYAML(node *yaml.Node) error {
	raw, err := valuesFromYAML(node)
	if err != nil {
		return err
	}
	dec, err := NewAxial[T](raw)
	if err != nil {
		return err
	}
	*a = *dec
	return nil
}

// MarshalJSON implements json.Marshaler.
func (a *Axial[T]) MarshalJSON() ([]byte, error) { return json.Marshal(document[[]T]{Values: a.values}) }

// UnmarshalJSON implements json.Unmarshaler and validates every value.
func (a *Axial[T]) UnmarshalJSON(b []byte) error {
	raw, err := valuesFromJSON(b)
	if err != nil {
		return err
	}
	dec, err := NewAxial[T](raw)
	if err != nil {
		return err
	}
	*a = *dec
	return nil
}
