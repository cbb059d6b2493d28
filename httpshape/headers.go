package httpshape

import (
	"net/textproto"
	"strings"

	"github.com/typecellar/sdk/converr"
)

// canonicalToken uppercases and trims a header-adjacent token.
func canonicalToken(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// CanonicalHeaders rewrites the header map with canonical MIME header
// keys ("content-type" becomes "Content-Type"). Later duplicates win.
func CanonicalHeaders(headers map[string]string) map[string]string {
	out := make(map[string]string, len(headers))
	for k, v := range headers {
		out[textproto.CanonicalMIMEHeaderKey(k)] = v
	}
	return out
}

// PairHeaders zips parallel name and value slices into a canonical
// header map. The two slices must have the same length; a mismatch is
// a shape error, caught eagerly rather than silently truncated.
func PairHeaders(names, values []string) (map[string]string, error) {
	if len(names) != len(values) {
		return nil, converr.New("pair_headers", converr.CodeShapeMismatch,
			"length mismatch between header names and values").
			WithDetails(map[string]any{
				"names":  len(names),
				"values": len(values),
			})
	}

	out := make(map[string]string, len(names))
	for i, name := range names {
		out[textproto.CanonicalMIMEHeaderKey(name)] = values[i]
	}
	return out, nil
}

// ContentType returns the request's Content-Type header, tolerating
// non-canonical keys in the map.
func ContentType(headers map[string]string) string {
	if ct, ok := headers["Content-Type"]; ok {
		return ct
	}
	for k, v := range headers {
		if textproto.CanonicalMIMEHeaderKey(k) == "Content-Type" {
			return v
		}
	}
	return ""
}
