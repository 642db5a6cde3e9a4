package coremap

import (
	"fmt"

	"nucore/internal/core"
)

// Scalar is the set of element types an overlay can hold.
type Scalar interface {
	float64 | int | string | bool
}

// Kind is the runtime tag of an overlay's element type.
type Kind int

const (
	KindFloat Kind = iota
	KindInt
	KindString
	KindBool
)

func (k Kind) String() string {
	switch k {
	case KindFloat:
		return "float"
	case KindInt:
		return "int"
	case KindString:
		return "str"
	case KindBool:
		return "bool"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind maps "float", "int", "str" (or "string") and "bool" to a Kind.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "float":
		return KindFloat, nil
	case "int":
		return KindInt, nil
	case "str", "string":
		return KindString, nil
	case "bool":
		return KindBool, nil
	}
	return 0, fmt.Errorf("unknown element kind %q (want float, int, str or bool)", s)
}

// KindOf returns the Kind of T.
func KindOf[T Scalar]() Kind {
	var zero T
	switch any(zero).(type) {
	case float64:
		return KindFloat
	case int:
		return KindInt
	case string:
		return KindString
	default:
		return KindBool
	}
}

// convert checks a decoded leaf against T. Integers widen to float64;
// floats never narrow to int.
func convert[T Scalar](v any) (T, bool) {
	var out T
	var ok bool
	switch p := any(&out).(type) {
	case *float64:
		*p, ok = core.RawFloat(v)
	case *int:
		*p, ok = core.RawInt(v)
	case *string:
		*p, ok = v.(string)
	case *bool:
		*p, ok = v.(bool)
	}
	return out, ok
}
