package convert

import (
	"fmt"
	"reflect"

	"github.com/typecellar/sdk/converr"
)

// errorType is the error interface type, for predicate matching.
var errorType = reflect.TypeFor[error]()

// errorRepr renders an error value as a self-describing debug string,
// e.g. `*fs.PathError("open /x: no such file")`.
func errorRepr(err error) string {
	return fmt.Sprintf("%T(%q)", err, err.Error())
}

// unstructureError destructures an error instance to its debug repr,
// and an error type (a reflect.Type implementing error) to its bare
// type name. Errors are write-only: no structure hook is registered,
// so structuring back into an error type fails.
func unstructureError(_ *Converter, v any) (any, error) {
	if t, isType := v.(reflect.Type); isType {
		if t.Implements(errorType) {
			name := t.Name()
			if name == "" && t.Kind() == reflect.Ptr {
				name = t.Elem().Name()
			}
			return name, nil
		}
		return nil, converr.NewConversion(v, "error")
	}
	if err, ok := v.(error); ok {
		return errorRepr(err), nil
	}
	return nil, converr.NewConversion(v, "error")
}

// RegisterErrorHooks registers the write-only unstructure hook for
// error values and error types.
func RegisterErrorHooks(c *Converter) {
	c.RegisterUnstructureHookFunc(func(t reflect.Type) bool {
		return t.Implements(errorType)
	}, unstructureError)

	// reflect.Type values themselves (the "class" form).
	c.RegisterUnstructureHookFunc(func(t reflect.Type) bool {
		return t.Implements(reflect.TypeFor[reflect.Type]())
	}, unstructureError)
}
