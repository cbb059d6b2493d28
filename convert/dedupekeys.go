package convert

import (
	"reflect"
	"strings"

	"github.com/typecellar/sdk/converr"
	"github.com/typecellar/sdk/dedupe"
)

func unstructureDedupeKey(_ *Converter, v any) (any, error) {
	k, ok := v.(dedupe.Key)
	if !ok {
		return nil, converr.NewConversion(v, "dedupe.Key")
	}
	// The rendered form keeps the prefix; parsing strips it again.
	return k.String(), nil
}

func structureDedupeKey(_ *Converter, v any, _ reflect.Type) (any, error) {
	switch vv := v.(type) {
	case dedupe.Key:
		return vv, nil
	case string:
		return dedupe.Parse(kindForRendered(vv), vv), nil
	default:
		return nil, converr.NewConversion(v, "dedupe.Key")
	}
}

// kindForRendered recovers the kind from a rendered key's prefix,
// defaulting to KindDedupe for bare natural keys.
func kindForRendered(s string) dedupe.Kind {
	if i := strings.Index(s, ":"); i >= 0 {
		switch dedupe.Kind(s[:i]) {
		case dedupe.KindAlert:
			return dedupe.KindAlert
		case dedupe.KindDedupe:
			return dedupe.KindDedupe
		}
	}
	return dedupe.KindDedupe
}

// RegisterDedupeHooks registers structure and unstructure hooks for
// dedupe keys: rendered "prefix:key" strings on the wire.
func RegisterDedupeHooks(c *Converter) {
	keyType := reflect.TypeFor[dedupe.Key]()
	c.RegisterUnstructureHook(keyType, unstructureDedupeKey)
	c.RegisterStructureHook(keyType, structureDedupeKey)
}
