package convert

import (
	"reflect"
	"strings"

	"github.com/typecellar/sdk/converr"
	"github.com/typecellar/sdk/sentinel"
)

func unstructureSentinel(_ *Converter, v any) (any, error) {
	s, ok := v.(sentinel.Sentinel)
	if !ok {
		return nil, converr.NewConversion(v, "sentinel.Sentinel")
	}
	return s.Label(), nil
}

func structureSentinel(_ *Converter, v any, _ reflect.Type) (any, error) {
	switch vv := v.(type) {
	case sentinel.Sentinel:
		return vv, nil
	case string:
		if s, ok := sentinel.ForLabel(vv); ok {
			return s, nil
		}
		return nil, converr.NewConversion(v, "sentinel.Sentinel")
	default:
		return nil, converr.NewConversion(v, "sentinel.Sentinel")
	}
}

// structureOptionalSentinel handles the *sentinel.Sentinel target: in
// addition to the label and instance forms, nil and the literal
// strings "null" and "none" map to absence.
func structureOptionalSentinel(_ *Converter, v any, _ reflect.Type) (any, error) {
	switch vv := v.(type) {
	case nil:
		return (*sentinel.Sentinel)(nil), nil
	case *sentinel.Sentinel:
		return vv, nil
	case sentinel.Sentinel:
		return &vv, nil
	case string:
		lower := strings.ToLower(vv)
		if lower == "null" || lower == "none" {
			return (*sentinel.Sentinel)(nil), nil
		}
		if s, ok := sentinel.ForLabel(vv); ok {
			return &s, nil
		}
		return nil, converr.NewConversion(v, "*sentinel.Sentinel")
	default:
		return nil, converr.NewConversion(v, "*sentinel.Sentinel")
	}
}

func unstructureOptionalSentinel(_ *Converter, v any) (any, error) {
	s, ok := v.(*sentinel.Sentinel)
	if !ok {
		return nil, converr.NewConversion(v, "*sentinel.Sentinel")
	}
	if s == nil {
		return nil, nil
	}
	return s.Label(), nil
}

// RegisterSentinelHooks registers the sentinel hooks: label strings on
// the wire, with an optional variant mapping null-like inputs to
// absence. The optional hooks are registered after the general ones;
// both predicates would match a sentinel-shaped type, and the later
// registration must win for the optional behavior to apply.
func RegisterSentinelHooks(c *Converter) {
	sentinelType := reflect.TypeFor[sentinel.Sentinel]()
	optionalType := reflect.TypeFor[*sentinel.Sentinel]()

	c.RegisterUnstructureHookFunc(func(t reflect.Type) bool {
		return t == sentinelType || t == optionalType
	}, unstructureSentinel)
	c.RegisterStructureHookFunc(func(t reflect.Type) bool {
		return t == sentinelType || t == optionalType
	}, structureSentinel)

	c.RegisterUnstructureHookFunc(func(t reflect.Type) bool {
		return t == optionalType
	}, unstructureOptionalSentinel)
	c.RegisterStructureHookFunc(func(t reflect.Type) bool {
		return t == optionalType
	}, structureOptionalSentinel)
}
