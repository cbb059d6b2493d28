package tablename

import (
	"fmt"

	"github.com/typecellar/sdk/converr"
	"github.com/typecellar/sdk/sentinel"
)

// Name is a version-stamped table name whose round-trip invariant
// unstamp(stamp(raw)) == raw was verified at construction. The zero
// value is not valid; obtain Names from New or NewFromInput.
type Name struct {
	info      Info
	raw       string
	stamped   string
	unstamped string
}

// New builds a validated Name by stamping info's fully-qualified
// identifier with stamper.
//
// Construction is two-phase: raw, stamped, and unstamped are computed
// as plain values first, then the invariant is checked on the fully
// formed result. On any failure the returned error carries all three
// of raw, stamped, and unstamped (with the FAILED_OP placeholder where
// a computation produced no usable value), and no partially valid Name
// is ever returned.
func New(info Info, stamper Stamper) (Name, error) {
	raw := info.FullTableID()

	stamped := stamper.Stamp(raw)

	unstamped, ok := stamper.Unstamp(stamped)
	if !ok {
		return Name{}, roundTripError(raw, stamped, sentinel.FailedOp.String())
	}

	if unstamped != raw {
		return Name{}, roundTripError(raw, stamped, unstamped)
	}

	return Name{info: info, raw: raw, stamped: stamped, unstamped: unstamped}, nil
}

// NewFromInput resolves the table identity from in and builds a
// validated Name. Resolution failures surface as table-identifier
// errors; stamping failures as round-trip errors.
func NewFromInput(in Input, stamper Stamper) (Name, error) {
	info, err := Resolve(in)
	if err != nil {
		return Name{}, err
	}
	return New(info, stamper)
}

// Info returns the table identity.
func (n Name) Info() Info { return n.info }

// Raw returns the unstamped base form "project.dataset.table".
func (n Name) Raw() string { return n.raw }

// Stamped returns the stamped form, computed once at construction.
func (n Name) Stamped() string { return n.stamped }

// Unstamped returns unstamp(stamped), computed once at construction.
// For a valid Name this always equals Raw.
func (n Name) Unstamped() string { return n.unstamped }

// String renders the base fully-qualified identifier.
func (n Name) String() string { return n.raw }

func roundTripError(raw, stamped, unstamped string) error {
	return converr.New("stamp", converr.CodeRoundTrip,
		fmt.Sprintf("failed to reconstruct name: raw=%q, stamped=%q, unstamped=%q",
			raw, stamped, unstamped)).
		WithDetails(map[string]any{
			"raw":       raw,
			"stamped":   stamped,
			"unstamped": unstamped,
		})
}
