package wire

// Value is a wire-safe value: string, number, bool, nil, a string-keyed
// map of Values, or a slice of Values. It is deliberately declared as
// any; the type exists to document intent at API boundaries.
type Value = any

// IsScalar reports whether v is a wire scalar (string, number, bool, or
// nil) as opposed to a mapping or sequence.
func IsScalar(v Value) bool {
	switch v.(type) {
	case nil, string, bool,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return true
	default:
		return false
	}
}

// Valid reports whether v is representable on the wire: scalars,
// string-keyed maps of valid values, and slices of valid values.
func Valid(v Value) bool {
	if IsScalar(v) {
		return true
	}
	switch vv := v.(type) {
	case map[string]any:
		for _, item := range vv {
			if !Valid(item) {
				return false
			}
		}
		return true
	case []any:
		for _, item := range vv {
			if !Valid(item) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// Clone returns a deep copy of v. Scalars are returned as-is; maps and
// slices are copied recursively so mutating the copy cannot affect the
// original.
func Clone(v Value) Value {
	switch vv := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(vv))
		for k, item := range vv {
			out[k] = Clone(item)
		}
		return out
	case []any:
		out := make([]any, len(vv))
		for i, item := range vv {
			out[i] = Clone(item)
		}
		return out
	default:
		return vv
	}
}
