package convert

import (
	"github.com/typecellar/sdk/converr"
)

// NullStrategy selects how SerializeAttributes post-processes null
// values in a destructured record.
type NullStrategy int

const (
	// DropNull removes keys whose value is null.
	DropNull NullStrategy = iota

	// ReplaceNullLiteral replaces null values with the literal string
	// "null".
	ReplaceNullLiteral
)

// SerializeAttributes destructures v and applies the null-handling
// strategy to the resulting record. The destructured form must be a
// record; anything else is a conversion error.
func (c *Converter) SerializeAttributes(v any, strategy NullStrategy) (map[string]any, error) {
	des, err := c.Unstructure(v)
	if err != nil {
		return nil, err
	}

	record, ok := des.(map[string]any)
	if !ok {
		return nil, converr.NewConversion(des, "map[string]any")
	}

	switch strategy {
	case ReplaceNullLiteral:
		return replaceNullLiteral(record), nil
	default:
		return dropNull(record), nil
	}
}

func dropNull(record map[string]any) map[string]any {
	out := make(map[string]any, len(record))
	for k, v := range record {
		if v == nil {
			continue
		}
		out[k] = v
	}
	return out
}

func replaceNullLiteral(record map[string]any) map[string]any {
	out := make(map[string]any, len(record))
	for k, v := range record {
		if v == nil {
			out[k] = "null"
			continue
		}
		out[k] = v
	}
	return out
}
