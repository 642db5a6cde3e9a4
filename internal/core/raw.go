package core

import (
	"bytes"
	"encoding/json"
	"math"
	"strings"
)

// RawInt reports whether v, a value produced by a YAML or JSON decoder,
// holds an integer, and returns it. Floats never qualify, even when whole.
func RawInt(v any) (int, bool) {
	switch x := v.(type) {
	case int:
		return x, true
	case int64:
		if x > math.MaxInt || x < math.MinInt {
			return 0, false
		}
		return int(x), true
	case int32:
		return int(x), true
	case uint64:
		if x > math.MaxInt {
			return 0, false
		}
		return int(x), true
	case json.Number:
		if strings.ContainsAny(x.String(), ".eE") {
			return 0, false
		}
		n, err := x.Int64()
		if err != nil {
			return 0, false
		}
		return RawInt(n)
	}
	return 0, false
}

// RawFloat reports whether v holds a number and returns it as float64.
// Integers are widened.
func RawFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case json.Number:
		f, err := x.Float64()
		if err != nil {
			return 0, false
		}
		return f, true
	}
	if n, ok := RawInt(v); ok {
		return float64(n), true
	}
	return 0, false
}

// DecodeJSON unmarshals b into a generic value, keeping numbers as
// json.Number so integers and floats stay distinguishable.
func DecodeJSON(b []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	var raw any
	if err := dec.Decode(&raw); err != nil {
		return nil, err
	}
	return raw, nil
}
