package convert

import (
	"reflect"
	"strings"

	"github.com/typecellar/sdk/converr"
)

// structureOptionalString reconstructs strings that were converted to
// a null placeholder on the wire: "null", blank, and "omitted" all map
// to absence.
func structureOptionalString(_ *Converter, v any, _ reflect.Type) (any, error) {
	switch vv := v.(type) {
	case nil:
		return (*string)(nil), nil
	case *string:
		return vv, nil
	case string:
		if strings.EqualFold(vv, "null") || strings.TrimSpace(vv) == "" || vv == "omitted" {
			return (*string)(nil), nil
		}
		return &vv, nil
	default:
		return nil, converr.NewConversion(v, "*string")
	}
}

func unstructureOptionalString(_ *Converter, v any) (any, error) {
	s, ok := v.(*string)
	if !ok {
		return nil, converr.NewConversion(v, "*string")
	}
	if s == nil {
		return nil, nil
	}
	return *s, nil
}

// RegisterOptionalStringHooks registers the *string hooks.
func RegisterOptionalStringHooks(c *Converter) {
	t := reflect.TypeFor[*string]()
	c.RegisterStructureHook(t, structureOptionalString)
	c.RegisterUnstructureHook(t, unstructureOptionalString)
}
