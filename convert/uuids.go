package convert

import (
	"reflect"

	"github.com/google/uuid"

	"github.com/typecellar/sdk/converr"
)

func unstructureUUID(_ *Converter, v any) (any, error) {
	u, ok := v.(uuid.UUID)
	if !ok {
		return nil, converr.NewConversion(v, "uuid.UUID")
	}
	return u.String(), nil
}

func structureUUID(_ *Converter, v any, _ reflect.Type) (any, error) {
	switch vv := v.(type) {
	case uuid.UUID:
		return vv, nil
	case string:
		u, err := uuid.Parse(vv)
		if err != nil {
			return nil, converr.NewConversion(v, "uuid.UUID").WithCause(err)
		}
		return u, nil
	default:
		return nil, converr.NewConversion(v, "uuid.UUID")
	}
}

// RegisterUUIDHooks registers structure and unstructure hooks for
// uuid.UUID: canonical hyphenated strings on the wire, native handles
// passed through.
func RegisterUUIDHooks(c *Converter) {
	c.RegisterUnstructureHook(reflect.TypeFor[uuid.UUID](), unstructureUUID)
	c.RegisterStructureHook(reflect.TypeFor[uuid.UUID](), structureUUID)
}
