// Package wire defines the wire-safe value shape that every conversion
// in the SDK ultimately produces or consumes, along with the canonical
// encoding and hashing primitives built on top of it.
//
// A wire value is one of:
//
//   - string
//   - a numeric type (float64 or int64 after decoding)
//   - bool
//   - nil
//   - map[string]any with wire values
//   - []any with wire values
//
// This is the shape encoding/json produces when unmarshaling into any,
// and the shape every unstructure hook in package convert must emit.
//
// Canonicalization (CanonicalizeRecord) produces a unique byte
// representation of a record that does not depend on insertion or
// iteration order. Downstream deduplication keys are hashes over this
// encoding, so order independence here is a correctness requirement,
// not an optimization.
package wire
