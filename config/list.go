package config

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// FloatList is a cosmology parameter that holds one value per model in the
// sweep. It decodes from a number, an array of numbers, or a string such as
// "0.27, 0.31".
//
// YAML decode failures keep ErrBadList in the error chain. BurntSushi/toml
// flattens Unmarshaler errors into a toml.ParseError, so for TOML only the
// message carries it.
type FloatList []float64

// ParseFloatList parses "v" or "v1, v2, ...".
func ParseFloatList(s string) (FloatList, error) {
	parts := strings.Split(s, ",")
	out := make(FloatList, 0, len(parts))
	for _, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrBadList, s)
		}
		out = append(out, v)
	}

	return out, nil
}

// UnmarshalTOML implements toml.Unmarshaler.
func (l *FloatList) UnmarshalTOML(v any) error {
	switch x := v.(type) {
	case []any:
		out := make(FloatList, 0, len(x))
		for _, item := range x {
			f, ok := number(item)
			if !ok {
				return fmt.Errorf("%w: element %v", ErrBadList, item)
			}
			out = append(out, f)
		}
		*l = out
	case string:
		out, err := ParseFloatList(x)
		if err != nil {
			return err
		}
		*l = out
	default:
		f, ok := number(x)
		if !ok {
			return fmt.Errorf("%w: %v", ErrBadList, v)
		}
		*l = FloatList{f}
	}

	return nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (l *FloatList) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.SequenceNode:
		var out []float64
		if err := node.Decode(&out); err != nil {
			return fmt.Errorf("%w: %w", ErrBadList, err)
		}
		*l = out
	case yaml.ScalarNode:
		out, err := ParseFloatList(node.Value)
		if err != nil {
			return err
		}
		*l = out
	default:
		return fmt.Errorf("%w: line %d", ErrBadList, node.Line)
	}

	return nil
}

func number(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case int64:
		return float64(x), true
	}

	return 0, false
}
