package wire

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// HashBytes returns the lowercase hex SHA-256 digest of b.
func HashBytes(b []byte) string {
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:])
}

// CanonicalizeRecord serializes record to a stable byte encoding:
// compact JSON with keys sorted lexicographically. Two records with the
// same key/value set produce identical bytes regardless of how or in
// what order they were assembled.
//
// Returns an error if a value in the record is not representable as
// JSON (e.g. a channel or a function).
func CanonicalizeRecord(record map[string]any) ([]byte, error) {
	// encoding/json sorts map keys and emits no incidental whitespace.
	b, err := json.Marshal(record)
	if err != nil {
		return nil, fmt.Errorf("canonicalize record: %w", err)
	}
	return b, nil
}

// HashRecord canonicalizes record and returns the lowercase hex SHA-256
// digest of the canonical bytes.
func HashRecord(record map[string]any) (string, error) {
	b, err := CanonicalizeRecord(record)
	if err != nil {
		return "", err
	}
	return HashBytes(b), nil
}
