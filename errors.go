package cellar

import "github.com/typecellar/sdk/converr"

// Sentinel errors for the conversion error taxonomy.
// Each matches any *converr.Error carrying the same code, so
// errors.Is(err, cellar.ErrConversion) holds for every conversion
// failure regardless of which operation produced it.
var (
	// ErrConversion matches failures to structure or unstructure a
	// value.
	ErrConversion error = &converr.Error{Code: converr.CodeConversion}

	// ErrRoundTrip matches stamped-name constructions whose
	// unstamp(stamp(raw)) did not reproduce raw.
	ErrRoundTrip error = &converr.Error{Code: converr.CodeRoundTrip}

	// ErrTableIdentifier matches failures to resolve a qualified table
	// identifier from the accepted input forms.
	ErrTableIdentifier error = &converr.Error{Code: converr.CodeTableIdentifier}

	// ErrShapeMismatch matches eager length and shape mismatches, such
	// as a header/value count difference.
	ErrShapeMismatch error = &converr.Error{Code: converr.CodeShapeMismatch}
)

// Error kinds categorize conversion errors by code.
const (
	// KindConversion represents value-shape failures.
	KindConversion = converr.CodeConversion

	// KindRoundTrip represents stamped-name round-trip failures.
	KindRoundTrip = converr.CodeRoundTrip

	// KindTableIdentifier represents table-identifier resolution
	// failures.
	KindTableIdentifier = converr.CodeTableIdentifier

	// KindShapeMismatch represents eager shape validation failures.
	KindShapeMismatch = converr.CodeShapeMismatch
)
