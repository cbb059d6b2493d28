package httpshape

import (
	"bytes"
	"fmt"
	"io"
	"net/http"

	"github.com/typecellar/sdk/bytewrap"
)

// FromHTTPRequest builds a normalized Request from a net/http request.
// The body is read fully and restored, so the original request remains
// usable by the caller.
func FromHTTPRequest(req *http.Request) (*Request, error) {
	raw, err := drainBody(req.Body)
	if err != nil {
		return nil, fmt.Errorf("reading request body: %w", err)
	}
	req.Body = io.NopCloser(bytes.NewReader(raw))

	headers := flattenHeader(req.Header)

	cookies := make(map[string]string)
	for _, c := range req.Cookies() {
		cookies[c.Name] = c.Value
	}

	args := make(map[string]string)
	for k, vs := range req.URL.Query() {
		if len(vs) > 0 {
			args[k] = vs[0]
		}
	}

	return &Request{
		Method:     ParseMethod(req.Method),
		URL:        req.URL.String(),
		Path:       req.URL.Path,
		Headers:    headers,
		Args:       args,
		Cookies:    cookies,
		RemoteAddr: req.RemoteAddr,
		Body:       bytewrap.ForContentType(raw, ContentType(headers)),
	}, nil
}

// FromHTTPResponse builds a normalized Response from a net/http
// response. The body is read fully and restored.
func FromHTTPResponse(resp *http.Response) (*Response, error) {
	raw, err := drainBody(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}
	resp.Body = io.NopCloser(bytes.NewReader(raw))

	headers := flattenHeader(resp.Header)

	return &Response{
		StatusCode: resp.StatusCode,
		Headers:    headers,
		Body:       bytewrap.ForContentType(raw, ContentType(headers)),
	}, nil
}

func drainBody(body io.ReadCloser) ([]byte, error) {
	if body == nil {
		return nil, nil
	}
	defer body.Close()
	return io.ReadAll(body)
}

// flattenHeader keeps the first value of each header; the shapes carry
// single-valued header maps.
func flattenHeader(h http.Header) map[string]string {
	out := make(map[string]string, len(h))
	for k, vs := range h {
		if len(vs) > 0 {
			out[k] = vs[0]
		}
	}
	return out
}
