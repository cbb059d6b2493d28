package convert

import (
	"reflect"
	"strings"
	"sync"

	"github.com/typecellar/sdk/converr"
	"github.com/typecellar/sdk/sentinel"
)

// StructureFunc converts a wire value into a domain value of the
// target type. Hooks for composite types delegate back into the
// converter for their parts.
type StructureFunc func(c *Converter, v any, target reflect.Type) (any, error)

// UnstructureFunc converts a domain value into its wire-safe
// representation.
type UnstructureFunc func(c *Converter, v any) (any, error)

// Predicate reports whether a hook applies to a type.
type Predicate func(t reflect.Type) bool

type predStructure struct {
	pred Predicate
	fn   StructureFunc
}

type predUnstructure struct {
	pred Predicate
	fn   UnstructureFunc
}

// Converter is the central dispatch table for structure and
// unstructure hooks. The zero value is not usable; use New for a bare
// converter or NewConverter for one with the default hook set.
type Converter struct {
	mu sync.RWMutex

	structureExact   map[reflect.Type]StructureFunc
	structurePreds   []predStructure
	unstructureExact map[reflect.Type]UnstructureFunc
	unstructurePreds []predUnstructure
}

// New returns a bare Converter with no hooks registered. Unknown types
// resolve through the generic fallback only.
func New() *Converter {
	return &Converter{
		structureExact:   make(map[reflect.Type]StructureFunc),
		unstructureExact: make(map[reflect.Type]UnstructureFunc),
	}
}

// RegisterStructureHook registers fn for the exact target type.
// Exact registrations take precedence over predicate registrations.
// Re-registering a type replaces the previous hook.
func (c *Converter) RegisterStructureHook(target reflect.Type, fn StructureFunc) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.structureExact[target] = fn
}

// RegisterStructureHookFunc registers fn for every target type
// matching pred. Among predicate registrations the most recently
// registered match wins, so narrower predicates should be registered
// after broader ones they are meant to override.
func (c *Converter) RegisterStructureHookFunc(pred Predicate, fn StructureFunc) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.structurePreds = append(c.structurePreds, predStructure{pred: pred, fn: fn})
}

// RegisterUnstructureHook registers fn for values of the exact type.
func (c *Converter) RegisterUnstructureHook(t reflect.Type, fn UnstructureFunc) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.unstructureExact[t] = fn
}

// RegisterUnstructureHookFunc registers fn for every value type
// matching pred, with the same last-registered-wins ordering as
// RegisterStructureHookFunc.
func (c *Converter) RegisterUnstructureHookFunc(pred Predicate, fn UnstructureFunc) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.unstructurePreds = append(c.unstructurePreds, predUnstructure{pred: pred, fn: fn})
}

// Structure converts a wire value into a domain value of the target
// type, resolving the applicable hook per the package ordering rules.
func (c *Converter) Structure(v any, target reflect.Type) (any, error) {
	if fn := c.resolveStructure(target); fn != nil {
		return fn(c, v, target)
	}
	return c.fallbackStructure(v, target)
}

// As structures v into T. It is a convenience wrapper around Structure
// for callers with a statically known target.
func As[T any](c *Converter, v any) (T, error) {
	var zero T
	out, err := c.Structure(v, reflect.TypeFor[T]())
	if err != nil {
		return zero, err
	}
	if out == nil {
		return zero, nil
	}
	typed, ok := out.(T)
	if !ok {
		return zero, converr.NewConversion(out, reflect.TypeFor[T]().String())
	}
	return typed, nil
}

// Unstructure converts a domain value into its wire-safe
// representation, resolving on the value's runtime type.
func (c *Converter) Unstructure(v any) (any, error) {
	if v == nil {
		return nil, nil
	}
	if fn := c.resolveUnstructure(reflect.TypeOf(v)); fn != nil {
		return fn(c, v)
	}
	return c.fallbackUnstructure(v)
}

func (c *Converter) resolveStructure(target reflect.Type) StructureFunc {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if fn, ok := c.structureExact[target]; ok {
		return fn
	}
	for i := len(c.structurePreds) - 1; i >= 0; i-- {
		if c.structurePreds[i].pred(target) {
			return c.structurePreds[i].fn
		}
	}
	return nil
}

func (c *Converter) resolveUnstructure(t reflect.Type) UnstructureFunc {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if fn, ok := c.unstructureExact[t]; ok {
		return fn
	}
	for i := len(c.unstructurePreds) - 1; i >= 0; i-- {
		if c.unstructurePreds[i].pred(t) {
			return c.unstructurePreds[i].fn
		}
	}
	return nil
}

// fallbackStructure is the generic catch-all for targets without a
// hook: the literal string "null" maps to nil, otherwise the value
// passes through when it fits the target, with limited numeric
// widening. Anything else is a conversion error.
func (c *Converter) fallbackStructure(v any, target reflect.Type) (any, error) {
	if v == nil {
		return nil, nil
	}
	if s, ok := v.(string); ok && strings.EqualFold(s, "null") && target.Kind() != reflect.String {
		return nil, nil
	}

	vt := reflect.TypeOf(v)
	if vt == target || vt.AssignableTo(target) {
		return v, nil
	}
	if convertibleKinds(vt, target) {
		return reflect.ValueOf(v).Convert(target).Interface(), nil
	}

	// Containers recurse element-wise so hooks apply at the leaves.
	switch target.Kind() {
	case reflect.Slice:
		if items, ok := v.([]any); ok {
			out := reflect.MakeSlice(target, len(items), len(items))
			for i, item := range items {
				structured, err := c.Structure(item, target.Elem())
				if err != nil {
					return nil, err
				}
				if structured != nil {
					out.Index(i).Set(reflect.ValueOf(structured))
				}
			}
			return out.Interface(), nil
		}
	case reflect.Map:
		if record, ok := v.(map[string]any); ok && target.Key().Kind() == reflect.String {
			out := reflect.MakeMapWithSize(target, len(record))
			for k, item := range record {
				structured, err := c.Structure(item, target.Elem())
				if err != nil {
					return nil, err
				}
				key := reflect.ValueOf(k).Convert(target.Key())
				if structured == nil {
					out.SetMapIndex(key, reflect.Zero(target.Elem()))
					continue
				}
				out.SetMapIndex(key, reflect.ValueOf(structured))
			}
			return out.Interface(), nil
		}
	}

	return nil, converr.NewConversion(v, target.String())
}

// fallbackUnstructure is the generic catch-all for values without a
// hook. Sentinels destructure to their label, errors to a debug repr,
// the literal "null" to nil; maps and slices recurse; everything else
// passes through unchanged.
func (c *Converter) fallbackUnstructure(v any) (any, error) {
	switch vv := v.(type) {
	case sentinel.Sentinel:
		return vv.Label(), nil
	case error:
		return errorRepr(vv), nil
	case string:
		if strings.EqualFold(vv, "null") {
			return nil, nil
		}
		return vv, nil
	case map[string]any:
		out := make(map[string]any, len(vv))
		for k, item := range vv {
			conv, err := c.Unstructure(item)
			if err != nil {
				return nil, err
			}
			out[k] = conv
		}
		return out, nil
	case []any:
		out := make([]any, len(vv))
		for i, item := range vv {
			conv, err := c.Unstructure(item)
			if err != nil {
				return nil, err
			}
			out[i] = conv
		}
		return out, nil
	default:
		return v, nil
	}
}

// convertibleKinds restricts reflect conversion in the fallback to
// numeric widening and named-string conversions. Unrestricted
// Convert would also permit int-to-string rune conversion, which is
// never what a wire payload means.
func convertibleKinds(from, to reflect.Type) bool {
	if !from.ConvertibleTo(to) {
		return false
	}
	if isNumericKind(from.Kind()) && isNumericKind(to.Kind()) {
		return true
	}
	if from.Kind() == reflect.String && to.Kind() == reflect.String {
		return true
	}
	return false
}

func isNumericKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}
