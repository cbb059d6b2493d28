package convert

import (
	"reflect"
	"strings"

	"github.com/typecellar/sdk/converr"
)

// fieldSpec is the declaration metadata for one struct field, parsed
// from the `cellar` tag with the wire name falling back to the `json`
// tag and then the Go field name.
//
//	Field string `cellar:"field_name"`
//	Skip  string `cellar:"-"` or `cellar:",omit"`
//	Sparse string `cellar:",omitdefault"`
type fieldSpec struct {
	index       int
	name        string
	omit        bool
	omitDefault bool
}

func parseFields(t reflect.Type) []fieldSpec {
	specs := make([]fieldSpec, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}

		spec := fieldSpec{index: i, name: f.Name}

		if jsonTag, ok := f.Tag.Lookup("json"); ok {
			if name, _, _ := strings.Cut(jsonTag, ","); name != "" && name != "-" {
				spec.name = name
			}
		}

		if tag, ok := f.Tag.Lookup("cellar"); ok {
			name, opts, _ := strings.Cut(tag, ",")
			if name == "-" {
				spec.omit = true
			} else if name != "" {
				spec.name = name
			}
			for _, opt := range strings.Split(opts, ",") {
				switch opt {
				case "omit":
					spec.omit = true
				case "omitdefault":
					spec.omitDefault = true
				}
			}
		}

		specs = append(specs, spec)
	}
	return specs
}

// unstructureRecord destructures a struct field by field, delegating
// each value back into the converter. Fields flagged omit are skipped;
// fields flagged omitdefault are skipped when they hold their zero
// value.
func unstructureRecord(c *Converter, v any) (any, error) {
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return nil, nil
		}
		rv = rv.Elem()
	}

	out := make(map[string]any)
	for _, spec := range parseFields(rv.Type()) {
		if spec.omit {
			continue
		}
		fv := rv.Field(spec.index)
		if spec.omitDefault && fv.IsZero() {
			continue
		}
		conv, err := c.Unstructure(fv.Interface())
		if err != nil {
			return nil, err
		}
		out[spec.name] = conv
	}
	return out, nil
}

// structureRecord rebuilds a struct from a wire record, delegating
// each present field back into the converter. Missing fields keep
// their zero value, the Go rendering of a declared default.
func structureRecord(c *Converter, v any, target reflect.Type) (any, error) {
	if v == nil {
		return nil, nil
	}

	// Already in domain form.
	if reflect.TypeOf(v) == target {
		return v, nil
	}

	// Optional record: structure the element and return its address.
	if target.Kind() == reflect.Ptr {
		structured, err := structureRecord(c, v, target.Elem())
		if err != nil || structured == nil {
			return nil, err
		}
		out := reflect.New(target.Elem())
		out.Elem().Set(reflect.ValueOf(structured))
		return out.Interface(), nil
	}

	record, ok := v.(map[string]any)
	if !ok {
		return nil, converr.NewConversion(v, target.String())
	}

	out := reflect.New(target).Elem()
	for _, spec := range parseFields(target) {
		raw, present := record[spec.name]
		if !present {
			continue
		}

		structured, err := c.Structure(raw, target.Field(spec.index).Type)
		if err != nil {
			return nil, err
		}
		if structured == nil {
			continue
		}

		fv := out.Field(spec.index)
		sv := reflect.ValueOf(structured)
		switch {
		case sv.Type().AssignableTo(fv.Type()):
			fv.Set(sv)
		case convertibleKinds(sv.Type(), fv.Type()):
			fv.Set(sv.Convert(fv.Type()))
		default:
			return nil, converr.NewConversion(raw, fv.Type().String())
		}
	}
	return out.Interface(), nil
}

// isRecord matches struct types and pointers to them. Registered
// first in the default set, so every narrower predicate and exact hook
// overrides it.
func isRecord(t reflect.Type) bool {
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Kind() == reflect.Struct
}

// RegisterRecordHooks registers the generic structured-record hooks.
func RegisterRecordHooks(c *Converter) {
	c.RegisterUnstructureHookFunc(isRecord, unstructureRecord)
	c.RegisterStructureHookFunc(isRecord, structureRecord)
}
