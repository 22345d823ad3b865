package adapter

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

// DefaultRequestIDHeader is the response header consulted for a request ID
// when the context carries none.
const DefaultRequestIDHeader = "X-Request-ID"

// requestIDKey is the context key for request IDs.
type requestIDKey struct{}

// WithRequestID adds a request ID to the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// GetRequestID retrieves the request ID from the context.
func GetRequestID(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey{}).(string); ok {
		return id
	}
	return ""
}

// resolveRequestID picks the context ID, then the response header, then a
// fresh UUID.
func resolveRequestID(ctx context.Context, headers http.Header, headerName string) string {
	if id := GetRequestID(ctx); id != "" {
		return id
	}
	if headerName != "" {
		if id := headers.Get(headerName); id != "" {
			return id
		}
	}
	return uuid.NewString()
}
