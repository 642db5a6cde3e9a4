package coremap

import (
	"gopkg.in/yaml.v3"

	"nucore/internal/core"
)

// document is the persisted form of every overlay: a mapping with a single
// values key.
type document[V any] struct {
	Values V `yaml:"values" json:"values"`
}

func valuesFromYAML(node *yaml.Node) (any, error) {
	var raw any
	if err := node.Decode(&raw); err != nil {
		return nil, err
	}
	return unwrapValues(raw), nil
}

func valuesFromJSON(b []byte) (any, error) {
	raw, err := core.DecodeJSON(b)
	if err != nil {
		return nil, err
	}
	return unwrapValues(raw), nil
}

// unwrapValues accepts both {values: [...]} and a bare nested list.
func unwrapValues(raw any) any {
	if m, ok := raw.(map[string]any); ok {
		return m["values"]
	}
	return raw
}
