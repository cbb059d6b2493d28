package convert

import (
	"math"
	"reflect"
	"strconv"

	"github.com/typecellar/sdk/converr"
)

// isEnumLike matches named types whose underlying kind is string or an
// integer: the Go rendering of an enumerated status. Plain string and
// the numeric builtins are excluded; they are already wire scalars.
func isEnumLike(t reflect.Type) bool {
	if t.Name() == "" || t.PkgPath() == "" {
		return false
	}
	return t.Kind() == reflect.String || isNumericKind(t.Kind()) && t.Kind() != reflect.Float32 && t.Kind() != reflect.Float64
}

// unstructureEnum destructures an enum-like value to its underlying
// value coerced to string.
func unstructureEnum(_ *Converter, v any) (any, error) {
	rv := reflect.ValueOf(v)
	switch {
	case rv.Kind() == reflect.String:
		return rv.String(), nil
	case rv.CanInt():
		return strconv.FormatInt(rv.Int(), 10), nil
	case rv.CanUint():
		return strconv.FormatUint(rv.Uint(), 10), nil
	default:
		return nil, converr.NewConversion(v, "enum-like")
	}
}

// structureEnum rebuilds an enum-like value from its string or numeric
// wire form.
func structureEnum(_ *Converter, v any, target reflect.Type) (any, error) {
	if v == nil {
		return nil, nil
	}
	out := reflect.New(target).Elem()

	switch target.Kind() {
	case reflect.String:
		s, ok := v.(string)
		if !ok {
			return nil, converr.NewConversion(v, target.String())
		}
		out.SetString(s)
		return out.Interface(), nil

	default:
		if rv := reflect.ValueOf(v); rv.Type() == target {
			return v, nil
		}
		if out.CanUint() {
			n, err := enumUint(v, target)
			if err != nil {
				return nil, err
			}
			if out.OverflowUint(n) {
				return nil, converr.NewConversion(v, target.String())
			}
			out.SetUint(n)
			return out.Interface(), nil
		}
		n, err := enumInt(v, target)
		if err != nil {
			return nil, err
		}
		if out.OverflowInt(n) {
			return nil, converr.NewConversion(v, target.String())
		}
		out.SetInt(n)
		return out.Interface(), nil
	}
}

// enumInt extracts the integer wire form for a signed enum target.
// Fractional floats are rejected, never truncated.
func enumInt(v any, target reflect.Type) (int64, error) {
	switch vv := v.(type) {
	case string:
		n, err := strconv.ParseInt(vv, 10, 64)
		if err != nil {
			return 0, converr.NewConversion(v, target.String()).WithCause(err)
		}
		return n, nil
	case int:
		return int64(vv), nil
	case int64:
		return vv, nil
	case float64:
		if vv != math.Trunc(vv) {
			return 0, converr.NewConversion(v, target.String())
		}
		return int64(vv), nil
	default:
		return 0, converr.NewConversion(v, target.String())
	}
}

// enumUint extracts the integer wire form for an unsigned enum target.
// Negative inputs and fractional floats are rejected.
func enumUint(v any, target reflect.Type) (uint64, error) {
	switch vv := v.(type) {
	case string:
		n, err := strconv.ParseUint(vv, 10, 64)
		if err != nil {
			return 0, converr.NewConversion(v, target.String()).WithCause(err)
		}
		return n, nil
	case int:
		if vv < 0 {
			return 0, converr.NewConversion(v, target.String())
		}
		return uint64(vv), nil
	case int64:
		if vv < 0 {
			return 0, converr.NewConversion(v, target.String())
		}
		return uint64(vv), nil
	case float64:
		if vv < 0 || vv != math.Trunc(vv) {
			return 0, converr.NewConversion(v, target.String())
		}
		return uint64(vv), nil
	default:
		return 0, converr.NewConversion(v, target.String())
	}
}

// RegisterEnumHooks registers predicate hooks for enum-like named
// types. Registered early so narrower registrations (dedupe kinds,
// specific statuses) can override them.
func RegisterEnumHooks(c *Converter) {
	c.RegisterUnstructureHookFunc(isEnumLike, unstructureEnum)
	c.RegisterStructureHookFunc(isEnumLike, structureEnum)
}
