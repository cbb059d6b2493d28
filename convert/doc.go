// Package convert implements the type-directed conversion registry.
//
// A Converter maps value types to pairs of transformation functions:
// structure hooks turn wire values into domain values, unstructure
// hooks turn domain values into wire values. Hooks are registered
// either for an exact type or for a predicate over types.
//
// Resolution order is deterministic and load-bearing:
//
//  1. An exact-type registration always wins.
//  2. Among predicate registrations, the most recently registered
//     matching predicate wins. Predicates may overlap (a general
//     "is a struct" predicate and a narrower one for a specific
//     struct); registering the narrow one later overrides the
//     general one for the types it matches.
//  3. With no hook, a generic fallback applies: sentinel values,
//     error values, and the literal string "null" are recognized
//     specially, everything else passes through unchanged.
//
// The hook table is written only during a setup phase and read-mostly
// afterwards; a readers-writer lock keeps concurrent registration and
// lookup safe without penalizing the lookup path.
//
// NewConverter returns a Converter with the full default hook set:
// timestamps, enum-like named types, UUIDs, errors, sentinels, dedupe
// keys, JSON map strings, optional strings, and reflection-driven
// structured records.
package convert
