// Package bytewrap tags raw byte payloads with their serial format.
//
// A Bytes value carries the payload exactly as received together with
// the format implied by its content type. Downstream code dispatches on
// the format instead of sniffing bytes, and Wire decodes the formats
// that have a structured wire shape (JSON and YAML).
package bytewrap

import "strings"

// Format identifies the serial format of a byte payload.
type Format string

const (
	// FormatJSON is an application/json payload.
	FormatJSON Format = "json"

	// FormatXML is an application/xml payload.
	FormatXML Format = "xml"

	// FormatHTML is a text/html payload.
	FormatHTML Format = "html"

	// FormatYAML is an application/yaml payload.
	FormatYAML Format = "yaml"

	// FormatText is a text/plain payload.
	FormatText Format = "text"

	// FormatBinary is an opaque payload with no structured decoding.
	FormatBinary Format = "binary"
)

// contentTypes maps each format to its canonical content-type string.
var contentTypes = map[Format]string{
	FormatJSON:   "application/json",
	FormatXML:    "application/xml",
	FormatHTML:   "text/html",
	FormatYAML:   "application/yaml",
	FormatText:   "text/plain",
	FormatBinary: "application/octet-stream",
}

// byContentType also admits the common aliases seen in the wild.
var byContentType = map[string]Format{
	"application/json":         FormatJSON,
	"application/xml":          FormatXML,
	"text/xml":                 FormatXML,
	"text/html":                FormatHTML,
	"application/yaml":         FormatYAML,
	"text/yaml":                FormatYAML,
	"application/x-yaml":       FormatYAML,
	"text/plain":               FormatText,
	"application/octet-stream": FormatBinary,
}

// IsValid returns true if the format is one of the known formats.
func (f Format) IsValid() bool {
	_, ok := contentTypes[f]
	return ok
}

// ContentType returns the canonical content-type string for the
// format. Returns the binary content type for unknown formats.
func (f Format) ContentType() string {
	if ct, ok := contentTypes[f]; ok {
		return ct
	}
	return contentTypes[FormatBinary]
}

// String returns the string representation of the format.
func (f Format) String() string {
	return string(f)
}

// FormatForContentType maps a Content-Type header value to a Format.
// Media-type parameters (charset and friends) are stripped before the
// lookup. Unrecognized content types map to FormatBinary.
func FormatForContentType(contentType string) Format {
	mediaType, _, _ := strings.Cut(contentType, ";")
	mediaType = strings.ToLower(strings.TrimSpace(mediaType))
	if f, ok := byContentType[mediaType]; ok {
		return f
	}
	return FormatBinary
}
