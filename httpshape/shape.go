// Package httpshape provides normalized request and response shapes.
//
// The shapes are framework-agnostic: values produced from net/http
// types, test fixtures, or hand-built literals all look the same to
// downstream conversion code. Bodies are carried as format-tagged raw
// bytes (bytewrap.Bytes); nothing is decoded until asked for.
package httpshape

import (
	"log/slog"

	"github.com/typecellar/sdk/bytewrap"
	"github.com/typecellar/sdk/wire"
)

// Method is a normalized HTTP method.
type Method string

const (
	MethodGet     Method = "GET"
	MethodPost    Method = "POST"
	MethodPut     Method = "PUT"
	MethodPatch   Method = "PATCH"
	MethodDelete  Method = "DELETE"
	MethodHead    Method = "HEAD"
	MethodOptions Method = "OPTIONS"

	// MethodUnknown absorbs anything that is not a recognized method.
	MethodUnknown Method = "UNKNOWN"
)

var knownMethods = map[Method]struct{}{
	MethodGet:     {},
	MethodPost:    {},
	MethodPut:     {},
	MethodPatch:   {},
	MethodDelete:  {},
	MethodHead:    {},
	MethodOptions: {},
}

// IsValid returns true if the method is a recognized HTTP method.
func (m Method) IsValid() bool {
	_, ok := knownMethods[m]
	return ok
}

// String returns the string representation of the method.
func (m Method) String() string {
	return string(m)
}

// ParseMethod normalizes a method string. Unrecognized methods coerce
// to MethodUnknown rather than failing; a request with a weird verb is
// still a request.
func ParseMethod(s string) Method {
	m := Method(canonicalToken(s))
	if m.IsValid() {
		return m
	}
	return MethodUnknown
}

// Request is a normalized view over an HTTP request.
type Request struct {
	Method     Method
	URL        string
	Path       string
	Headers    map[string]string
	Args       map[string]string
	Cookies    map[string]string
	RemoteAddr string
	Body       bytewrap.Bytes

	// Logger receives debug records for best-effort operations.
	// nil means slog.Default().
	Logger *slog.Logger
}

// Raw returns the raw request body bytes.
func (r *Request) Raw() []byte {
	return r.Body.Raw
}

// GetJSON decodes the body as a wire value on a best-effort basis:
// it returns nil when the body is not decodable instead of an error.
// This is the one place in the module where a failure is swallowed;
// the failure is still visible at debug level.
func (r *Request) GetJSON() wire.Value {
	return bestEffortWire(r.Body, r.Logger)
}

// Response is a normalized view over an HTTP response.
type Response struct {
	StatusCode int
	Headers    map[string]string
	Body       bytewrap.Bytes

	// Logger receives debug records for best-effort operations.
	// nil means slog.Default().
	Logger *slog.Logger
}

// Raw returns the raw response body bytes.
func (r *Response) Raw() []byte {
	return r.Body.Raw
}

// GetJSON decodes the body as a wire value on a best-effort basis,
// returning nil when the body is not decodable.
func (r *Response) GetJSON() wire.Value {
	return bestEffortWire(r.Body, r.Logger)
}

func bestEffortWire(b bytewrap.Bytes, logger *slog.Logger) wire.Value {
	v, err := b.Wire()
	if err != nil {
		if logger == nil {
			logger = slog.Default()
		}
		logger.Debug("body not decodable as wire value",
			"format", b.Format.String(),
			"error", err)
		return nil
	}
	return v
}
