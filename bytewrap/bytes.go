package bytewrap

import (
	"encoding/json"

	"gopkg.in/yaml.v3"

	"github.com/typecellar/sdk/converr"
	"github.com/typecellar/sdk/wire"
)

// Bytes is a raw payload tagged with its serial format. The payload is
// kept exactly as received; decoding happens on demand via Wire.
type Bytes struct {
	Raw    []byte
	Format Format
}

// JSON wraps raw bytes as an application/json payload.
func JSON(raw []byte) Bytes { return Bytes{Raw: raw, Format: FormatJSON} }

// XML wraps raw bytes as an application/xml payload.
func XML(raw []byte) Bytes { return Bytes{Raw: raw, Format: FormatXML} }

// HTML wraps raw bytes as a text/html payload.
func HTML(raw []byte) Bytes { return Bytes{Raw: raw, Format: FormatHTML} }

// YAML wraps raw bytes as an application/yaml payload.
func YAML(raw []byte) Bytes { return Bytes{Raw: raw, Format: FormatYAML} }

// Text wraps raw bytes as a text/plain payload.
func Text(raw []byte) Bytes { return Bytes{Raw: raw, Format: FormatText} }

// Other wraps raw bytes with an explicit format tag.
func Other(raw []byte, format Format) Bytes { return Bytes{Raw: raw, Format: format} }

// ForContentType wraps raw bytes with the format implied by the
// Content-Type header value.
func ForContentType(raw []byte, contentType string) Bytes {
	return Bytes{Raw: raw, Format: FormatForContentType(contentType)}
}

// ContentType returns the canonical content-type string for the
// payload's format.
func (b Bytes) ContentType() string {
	return b.Format.ContentType()
}

// Wire decodes the payload into its wire-value shape. JSON and YAML
// payloads decode structurally; every other format is a conversion
// error because it has no canonical wire shape.
func (b Bytes) Wire() (wire.Value, error) {
	switch b.Format {
	case FormatJSON:
		var v wire.Value
		if err := json.Unmarshal(b.Raw, &v); err != nil {
			return nil, converr.New("decode", converr.CodeConversion, "invalid JSON payload").WithCause(err)
		}
		return v, nil
	case FormatYAML:
		var v wire.Value
		if err := yaml.Unmarshal(b.Raw, &v); err != nil {
			return nil, converr.New("decode", converr.CodeConversion, "invalid YAML payload").WithCause(err)
		}
		return v, nil
	default:
		return nil, converr.NewConversion(b.Format.String(), "wire.Value")
	}
}
