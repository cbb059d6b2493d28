// Package cellar provides typed value conversion between wire data and
// domain values.
//
// The library sits between untyped wire payloads (decoded JSON or YAML,
// HTTP bodies, queue messages) and the typed values application code
// works with. Conversion runs through a hook registry: exact-type hooks
// and predicate hooks that structure wire values into domain values and
// destructure domain values back into wire shape.
//
// # Core Concepts
//
//   - Converter: the hook registry; Structure turns wire values into
//     domain values, Unstructure does the reverse (package convert)
//   - Wire values: the untyped shapes JSON decoding produces, with
//     canonical encoding and hashing (package wire)
//   - Dedupe keys: deterministic "prefix:key" identifiers derived from
//     canonicalized attributes (package dedupe)
//   - Stamped table names: version- and staging-suffixed table names
//     validated by a round-trip law at construction (package tablename)
//   - Sentinels: zero-payload markers for omitted, unimplemented, and
//     failed values (package sentinel)
//   - Byte wrappers and HTTP shapes: format-tagged payloads and
//     normalized request/response views (packages bytewrap, httpshape)
//
// # Getting Started
//
// Most callers use the process-wide default converter:
//
//	import cellar "github.com/typecellar/sdk"
//
//	attrs, err := cellar.As[JobAttrs](record)
//	if err != nil {
//		log.Fatal(err)
//	}
//
// Custom hook sets start from convert.New or convert.NewConverter and
// register hooks directly.
//
// # Error Handling
//
// Failures are loud: every conversion error is a *converr.Error
// carrying the offending value, its runtime type, and the target. The
// package-level sentinel errors here match by code with errors.Is:
//
//	if errors.Is(err, cellar.ErrConversion) {
//		// the value could not be structured
//	}
//
// The single exception is best-effort JSON extraction on HTTP shapes,
// which returns nil and logs at debug level.
package cellar
