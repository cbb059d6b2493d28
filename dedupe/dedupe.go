// Package dedupe derives deterministic deduplication keys.
//
// A key is a namespaced string "prefix:key" where the key part is
// either a caller-supplied natural key used verbatim, or a SHA-256
// digest over a canonicalized record of salient attributes. Consumers
// (message-queue deduplication, log correlation) treat the rendered
// string as opaque; only the prefix is human-informative.
//
// The derivation is order-independent over attribute insertion and
// deterministic across calls with equal inputs. That determinism is
// the load-bearing property: it lets at-least-once message delivery
// collapse to effectively-once processing downstream.
package dedupe

import (
	"strings"

	"github.com/typecellar/sdk/wire"
)

// Kind selects a key namespace. The kind determines only the rendered
// prefix, never the derivation.
type Kind string

const (
	// KindDedupe is the general-purpose deduplication namespace.
	KindDedupe Kind = "dedupe"

	// KindAlert is the namespace for alert correlation keys.
	KindAlert Kind = "alert"
)

// Prefix returns the rendered prefix for the kind.
func (k Kind) Prefix() string { return string(k) }

// Attributes are the salient inputs to key derivation.
//
// NaturalKey, when non-empty, overrides every other field: the key is
// the natural key verbatim (minus any "prefix:" segment from a
// previously rendered key) and Data, TraceID, and RequestID are
// ignored. Two logically different payloads sharing a natural key
// therefore collapse to the same dedupe key. This is deliberate: once
// rendered, the wire form is authoritative, and parsing a rendered key
// back must reproduce the same key without re-deriving a hash.
type Attributes struct {
	// NaturalKey is a caller-chosen identifier used verbatim.
	NaturalKey string

	// Data is the raw payload; it participates in derivation as its
	// SHA-256 digest, never as raw bytes.
	Data []byte

	// TraceID is an auxiliary correlation field.
	TraceID string

	// RequestID is an auxiliary correlation field.
	RequestID string
}

// Key is an immutable deduplication key. Two keys are equal when their
// key strings are equal; the kind prefix never participates in
// equality. Use Equal, not ==, for the semantic comparison.
type Key struct {
	kind Kind
	key  string
}

// New derives a Key of the given kind from attrs.
//
// If attrs.NaturalKey is non-empty it is used verbatim (after
// stripping any existing "prefix:" segment). Otherwise the key is the
// hex SHA-256 digest of the canonicalized salient record: the payload
// digest under "payload_hash" when Data is present, merged with the
// non-empty auxiliary fields.
func New(kind Kind, attrs Attributes) Key {
	if attrs.NaturalKey != "" {
		return Key{kind: kind, key: Underlying(attrs.NaturalKey)}
	}

	record := make(map[string]any, 3)
	if len(attrs.Data) > 0 {
		record["payload_hash"] = wire.HashBytes(attrs.Data)
	}
	if attrs.TraceID != "" {
		record["trace_id"] = attrs.TraceID
	}
	if attrs.RequestID != "" {
		record["request_id"] = attrs.RequestID
	}

	// The record holds only strings; canonicalization cannot fail.
	canonical, _ := wire.CanonicalizeRecord(record)
	return Key{kind: kind, key: wire.HashBytes(canonical)}
}

// Parse reconstructs a Key of the given kind from its rendered wire
// form. The prefix (everything up to and including the first colon) is
// stripped and the remainder is treated as a natural key; the hash is
// never re-derived. Parse(kind, k.String()) reproduces k for any key
// of that kind.
func Parse(kind Kind, s string) Key {
	return Key{kind: kind, key: Underlying(s)}
}

// Underlying strips a "prefix:" segment from a rendered key, returning
// the key part. Strings without a colon are returned unchanged.
func Underlying(s string) string {
	if i := strings.Index(s, ":"); i >= 0 {
		return s[i+1:]
	}
	return s
}

// Kind returns the key's namespace.
func (k Key) Kind() Kind { return k.kind }

// Key returns the key part without the prefix.
func (k Key) Key() string { return k.key }

// String renders the key in its wire form "prefix:key".
func (k Key) String() string {
	return k.kind.Prefix() + ":" + k.key
}

// Equal reports whether two keys carry the same key string. The prefix
// is excluded: a KindDedupe key and a KindAlert key derived from the
// same natural key compare equal.
func (k Key) Equal(other Key) bool {
	return k.key == other.key
}
