package core

import (
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// document is the persisted form of a Core.
type document struct {
	Name          string `yaml:"name" json:"name"`
	Size          int    `yaml:"size" json:"size"`
	ElementsByRow []int  `yaml:"elements_by_row" json:"elements_by_row"`
}

// Decode builds a Core from a decoded YAML/JSON mapping with the keys name,
// size and elements_by_row. Field types are checked before the footprint
// invariants.
func Decode(raw any) (*Core, error) {
	m, ok := raw.(map[string]any)
	if !ok {
		return nil, Invalid(RuleShape, "core must be a mapping with name, size and elements_by_row")
	}
	name, _ := m["name"].(string)

	size, ok := RawInt(m["size"])
	if !ok {
		return nil, Invalid(RuleSizeType, "size must be of type int")
	}
	list, ok := m["elements_by_row"].([]any)
	if !ok {
		return nil, Invalid(RuleRowsType, "elements_by_row must be of type list")
	}
	rows := make([]int, len(list))
	for i, v := range list {
		n, ok := RawInt(v)
		if !ok {
			return nil, Invalid(RuleRowsElemType, "elements_by_row must be of type list[int]")
		}
		rows[i] = n
	}
	return New(name, size, rows)
}

// UnmarshalYAML implements yaml.Unmarshaler and validates the footprint.
func (c *Core) UnmarshalYAML(node *yaml.Node) error {
	var raw any
	if err := node.Decode(&raw); err != nil {
		return err
	}
	dec, err := Decode(raw)
	if err != nil {
		return err
	}
	*c = *dec
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (c *Core) MarshalYAML() (any, error) { return c.document(), nil }

// UnmarshalJSON implements json.Unmarshaler and validates the footprint.
func (c *Core) UnmarshalJSON(b []byte) error {
	raw, err := DecodeJSON(b)
	if err != nil {
		return err
	}
	dec, err := Decode(raw)
	if err != nil {
		return err
	}
	*c = *dec
	return nil
}

// MarshalJSON implements json.Marshaler.
func (c *Core) MarshalJSON() ([]byte, error) { return json.Marshal(c.document()) }

func (c *Core) document() document {
	return document{Name: c.name, Size: c.size, ElementsByRow: c.ElementsByRow()}
}
