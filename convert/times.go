package convert

import (
	"reflect"
	"time"

	"github.com/typecellar/sdk/converr"
)

// timeLayouts are the accepted wire layouts for timestamps, tried in
// order. RFC 3339 covers zoned ISO-8601; the bare layouts cover
// timestamps serialized without an offset.
var timeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
}

func unstructureTime(_ *Converter, v any) (any, error) {
	t, ok := v.(time.Time)
	if !ok {
		return nil, converr.NewConversion(v, "time.Time")
	}
	return t.Format(time.RFC3339Nano), nil
}

func structureTime(_ *Converter, v any, _ reflect.Type) (any, error) {
	switch vv := v.(type) {
	case time.Time:
		return vv, nil
	case string:
		for _, layout := range timeLayouts {
			if t, err := time.Parse(layout, vv); err == nil {
				return t, nil
			}
		}
		return nil, converr.NewConversion(v, "time.Time")
	default:
		return nil, converr.NewConversion(v, "time.Time")
	}
}

// RegisterTimeHooks registers structure and unstructure hooks for
// time.Time: ISO-8601 strings on the wire, pass-through when the value
// is already in domain form.
func RegisterTimeHooks(c *Converter) {
	c.RegisterUnstructureHook(reflect.TypeFor[time.Time](), unstructureTime)
	c.RegisterStructureHook(reflect.TypeFor[time.Time](), structureTime)
}
