// Package adaptertest provides canned responses and transport failures for
// testing code that adapts call outcomes.
package adaptertest

import (
	"bytes"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"sync/atomic"
)

// JSONResponse creates a response with a JSON encoded body.
// A nil body gives an empty one.
func JSONResponse(statusCode int, body any) *http.Response {
	var data []byte
	if body != nil {
		var err error
		data, err = json.Marshal(body)
		if err != nil {
			data = []byte(`{"error":"marshal failed"}`)
		}
	}
	return RawResponse(statusCode, "application/json", data)
}

// ErrorResponse creates a JSON error response of the form {"error": message}.
func ErrorResponse(statusCode int, message string) *http.Response {
	return JSONResponse(statusCode, map[string]string{"error": message})
}

// RawResponse creates a response with the given content type and body.
func RawResponse(statusCode int, contentType string, body []byte) *http.Response {
	header := http.Header{}
	if contentType != "" {
		header.Set("Content-Type", contentType)
	}
	return &http.Response{
		StatusCode: statusCode,
		Status:     http.StatusText(statusCode),
		Header:     header,
		Body:       io.NopCloser(bytes.NewReader(body)),
	}
}

// TrackedBody is a response body that records whether it was closed.
type TrackedBody struct {
	io.Reader
	closed atomic.Bool
}

// NewTrackedBody wraps data in a TrackedBody.
func NewTrackedBody(data []byte) *TrackedBody {
	return &TrackedBody{Reader: bytes.NewReader(data)}
}

// Close implements io.Closer.
func (b *TrackedBody) Close() error {
	b.closed.Store(true)
	return nil
}

// Closed reports whether Close was called.
func (b *TrackedBody) Closed() bool {
	return b.closed.Load()
}

// FailingBody is a response body whose reads always fail with Err.
type FailingBody struct {
	Err error
}

// Read implements io.Reader.
func (b FailingBody) Read([]byte) (int, error) { return 0, b.Err }

// Close implements io.Closer.
func (b FailingBody) Close() error { return nil }

// networkError is a transport failure that satisfies net.Error.
type networkError struct {
	message string
	timeout bool
}

func (e *networkError) Error() string { return e.message }
func (e *networkError) Timeout() bool { return e.timeout }
func (e *networkError) Temporary() bool { return e.timeout }

// NetworkError creates a transport failure.
func NetworkError(message string) net.Error {
	return &networkError{message: message}
}

// TimeoutError creates a transport failure that reports a timeout.
func TimeoutError(message string) net.Error {
	return &networkError{message: message, timeout: true}
}
