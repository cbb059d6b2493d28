// Package sentinel provides zero-information marker values used to
// represent out-of-band conditions: a field that was omitted, or a
// capability that is not implemented. Sentinels carry no payload; two
// sentinels are equal exactly when they are the same kind, and every
// sentinel is falsy.
package sentinel

// Sentinel is a marker value identified solely by its kind. The zero
// value is not a valid sentinel; use the package-level constants.
type Sentinel struct {
	kind kind
}

type kind uint8

const (
	kindInvalid kind = iota
	kindOmitted
	kindNotImplemented
	kindFailedOp
)

// The process-wide sentinel values. Equality is structural: any two
// Sentinel values of the same kind compare equal.
var (
	// Omitted marks a value that was deliberately left out.
	Omitted = Sentinel{kind: kindOmitted}

	// NotImplemented marks a capability that is not implemented.
	NotImplemented = Sentinel{kind: kindNotImplemented}

	// FailedOp marks an operation that produced no usable result,
	// for callers that need a distinguished non-error failed marker.
	FailedOp = Sentinel{kind: kindFailedOp}
)

// labels are the fixed wire representations, indexed by kind.
var labels = map[kind]string{
	kindOmitted:        "OMITTED",
	kindNotImplemented: "NOT-IMPLEMENTED",
	kindFailedOp:       "FAILED_OP",
}

// String returns the sentinel's fixed label.
func (s Sentinel) String() string {
	if l, ok := labels[s.kind]; ok {
		return l
	}
	return "INVALID-SENTINEL"
}

// Label returns the sentinel's fixed label. Alias of String for call
// sites where the stringer convention reads poorly.
func (s Sentinel) Label() string { return s.String() }

// Bool returns false. Sentinels are always falsy: they mark the
// absence of information, never its presence.
func (s Sentinel) Bool() bool { return false }

// IsValid reports whether s is one of the package-level sentinels
// rather than a zero value.
func (s Sentinel) IsValid() bool {
	_, ok := labels[s.kind]
	return ok
}

// ForLabel resolves a label string back to its sentinel. The second
// return is false if the label does not name a known sentinel.
func ForLabel(label string) (Sentinel, bool) {
	for k, l := range labels {
		if l == label {
			return Sentinel{kind: k}, true
		}
	}
	return Sentinel{}, false
}
