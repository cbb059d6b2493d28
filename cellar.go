package cellar

import (
	"reflect"
	"sync"

	"github.com/typecellar/sdk/convert"
	"github.com/typecellar/sdk/wire"
)

var (
	defaultOnce      sync.Once
	defaultConverter *convert.Converter
)

// Default returns the process-wide converter with the full default
// hook set. It is built once on first use; registering additional
// hooks on it is safe at any point.
func Default() *convert.Converter {
	defaultOnce.Do(func() {
		defaultConverter = convert.NewConverter()
	})
	return defaultConverter
}

// Structure converts a wire value into the target type using the
// default converter.
func Structure(v wire.Value, target reflect.Type) (any, error) {
	return Default().Structure(v, target)
}

// Unstructure converts a domain value into its wire shape using the
// default converter.
func Unstructure(v any) (wire.Value, error) {
	return Default().Unstructure(v)
}

// As structures a wire value into T using the default converter.
func As[T any](v wire.Value) (T, error) {
	return convert.As[T](Default(), v)
}
