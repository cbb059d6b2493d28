package convert

import (
	"encoding/json"
	"reflect"

	"github.com/typecellar/sdk/converr"
)

// JSONMap is a string-keyed record that travels as a JSON *string* on
// the wire, for contexts where a payload field has to be a string even
// when it carries structure.
type JSONMap map[string]any

func unstructureJSONMap(_ *Converter, v any) (any, error) {
	m, ok := v.(JSONMap)
	if !ok {
		return nil, converr.NewConversion(v, "convert.JSONMap")
	}
	b, err := json.Marshal(map[string]any(m))
	if err != nil {
		return nil, converr.NewConversion(v, "convert.JSONMap").WithCause(err)
	}
	return string(b), nil
}

func structureJSONMap(_ *Converter, v any, _ reflect.Type) (any, error) {
	switch vv := v.(type) {
	case JSONMap:
		return vv, nil
	case string:
		var parsed map[string]any
		if err := json.Unmarshal([]byte(vv), &parsed); err != nil {
			return nil, converr.NewConversion(v, "convert.JSONMap").WithCause(err)
		}
		return JSONMap(parsed), nil
	case map[string]any:
		return JSONMap(vv), nil
	default:
		return nil, converr.NewConversion(v, "convert.JSONMap")
	}
}

// RegisterJSONHooks registers hooks for JSONMap.
func RegisterJSONHooks(c *Converter) {
	t := reflect.TypeFor[JSONMap]()
	c.RegisterUnstructureHook(t, unstructureJSONMap)
	c.RegisterStructureHook(t, structureJSONMap)
}
