// Package networkresult models the outcome of a network call as a closed set
// of result variants: a parsed success, a server-rejected response, a
// transport failure, or anything else.
//
// Values are built once by the layer that executed the call and are never
// mutated afterwards, so they are safe to share between goroutines.
package networkresult

import (
	"fmt"
	"net"
	"net/http"
)

// Kind identifies which variant a Result holds.
type Kind int

const (
	KindInvalid Kind = iota
	KindSuccess
	KindServerError
	KindNetworkError
	KindUnknownError
)

// String returns the variant name.
func (k Kind) String() string {
	switch k {
	case KindSuccess:
		return "success"
	case KindServerError:
		return "server_error"
	case KindNetworkError:
		return "network_error"
	case KindUnknownError:
		return "unknown_error"
	default:
		return "invalid"
	}
}

// Variant is implemented by every shape a Result can hold. The set is closed:
// Success, the ServerError family, NetworkError and UnknownError.
type Variant interface {
	Kind() Kind
	variant()
}

// Error is the capability shared by every failed outcome. A ServerError
// always has a non-nil Cause. NetworkError and UnknownError return the cause
// they were built with, which is non-nil unless the caller passed nil.
type Error interface {
	error
	Variant
	Cause() error
}

// Success is a 2xx outcome with a parsed body.
type Success[T any] struct {
	body    T
	headers http.Header
	code    int
}

// NewSuccess creates a Success. The code is trusted as given.
func NewSuccess[T any](body T, headers http.Header, code int) Success[T] {
	return Success[T]{body: body, headers: headers, code: code}
}

// Body returns the parsed response body.
func (s Success[T]) Body() T { return s.body }

// Headers returns the response headers, nil when none were attached.
func (s Success[T]) Headers() http.Header { return s.headers }

// Code returns the status code.
func (s Success[T]) Code() int { return s.code }

// Kind implements Variant.
func (Success[T]) Kind() Kind { return KindSuccess }

func (Success[T]) variant() {}

// NetworkError is an outcome where no response was obtained.
type NetworkError struct {
	cause net.Error
}

// NewNetworkError creates a NetworkError from a transport failure. Passing a
// nil cause is a caller bug; the result reports a nil Cause.
func NewNetworkError(cause net.Error) NetworkError {
	return NetworkError{cause: cause}
}

// Transport returns the transport failure.
func (e NetworkError) Transport() net.Error { return e.cause }

// Cause implements Error.
func (e NetworkError) Cause() error { return e.cause }

// Error implements the error interface.
func (e NetworkError) Error() string {
	if e.cause == nil {
		return "network error"
	}
	return "network error: " + e.cause.Error()
}

// Unwrap returns the transport failure.
func (e NetworkError) Unwrap() error { return e.Cause() }

// Kind implements Variant.
func (NetworkError) Kind() Kind { return KindNetworkError }

func (NetworkError) variant() {}

// UnknownError is any failure that is neither a server rejection nor a
// transport failure, such as a body that could not be decoded.
type UnknownError struct {
	cause   error
	code    int
	hasCode bool
	headers http.Header
}

// UnknownOption configures an UnknownError.
type UnknownOption func(*UnknownError)

// WithStatusCode records the status code, when one was received.
func WithStatusCode(code int) UnknownOption {
	return func(e *UnknownError) {
		e.code = code
		e.hasCode = true
	}
}

// WithHeaders records the response headers, when they were received.
func WithHeaders(headers http.Header) UnknownOption {
	return func(e *UnknownError) {
		e.headers = headers
	}
}

// NewUnknownError creates an UnknownError wrapping cause. Passing a nil
// cause is a caller bug; the result reports a nil Cause.
func NewUnknownError(cause error, opts ...UnknownOption) UnknownError {
	e := UnknownError{cause: cause}
	for _, opt := range opts {
		opt(&e)
	}
	return e
}

// Code returns the status code and whether one was recorded.
func (e UnknownError) Code() (int, bool) { return e.code, e.hasCode }

// Headers returns the response headers, nil when none were recorded.
func (e UnknownError) Headers() http.Header { return e.headers }

// Cause implements Error.
func (e UnknownError) Cause() error { return e.cause }

// Error implements the error interface.
func (e UnknownError) Error() string {
	msg := "unknown error"
	if e.hasCode {
		msg = fmt.Sprintf("unknown error (status %d)", e.code)
	}
	if e.cause != nil {
		return msg + ": " + e.cause.Error()
	}
	return msg
}

// Unwrap returns the underlying failure.
func (e UnknownError) Unwrap() error { return e.cause }

// Kind implements Variant.
func (UnknownError) Kind() Kind { return KindUnknownError }

func (UnknownError) variant() {}

// Result holds exactly one outcome of a call returning a T on success and a
// U as the error body. The zero value holds nothing and reports KindInvalid.
type Result[T, U any] struct {
	kind    Kind
	success Success[T]
	server  ServerError[U]
	network NetworkError
	unknown UnknownError
}

// OK wraps a success outcome.
func OK[T, U any](body T, headers http.Header, code int) Result[T, U] {
	return Result[T, U]{kind: KindSuccess, success: NewSuccess(body, headers, code)}
}

// FromSuccess wraps an existing Success.
func FromSuccess[T, U any](s Success[T]) Result[T, U] {
	return Result[T, U]{kind: KindSuccess, success: s}
}

// FromServerError wraps a server error outcome. A nil e yields the zero Result.
func FromServerError[T, U any](e ServerError[U]) Result[T, U] {
	if e == nil {
		return Result[T, U]{}
	}
	return Result[T, U]{kind: KindServerError, server: e}
}

// Failed classifies code and wraps the matching server error.
func Failed[T, U any](code int, body *U, headers http.Header) Result[T, U] {
	return FromServerError[T](Classify(code, body, headers))
}

// Network wraps a transport failure. cause must be non-nil.
func Network[T, U any](cause net.Error) Result[T, U] {
	return Result[T, U]{kind: KindNetworkError, network: NewNetworkError(cause)}
}

// Unknown wraps an unclassifiable failure. cause must be non-nil.
func Unknown[T, U any](cause error, opts ...UnknownOption) Result[T, U] {
	return Result[T, U]{kind: KindUnknownError, unknown: NewUnknownError(cause, opts...)}
}

// Kind reports the held variant.
func (r Result[T, U]) Kind() Kind { return r.kind }

// IsSuccess reports whether r holds a Success.
func (r Result[T, U]) IsSuccess() bool { return r.kind == KindSuccess }

// Success returns the success variant, if held.
func (r Result[T, U]) Success() (Success[T], bool) {
	if r.kind != KindSuccess {
		return Success[T]{}, false
	}
	return r.success, true
}

// ServerError returns the server error variant, if held.
func (r Result[T, U]) ServerError() (ServerError[U], bool) {
	if r.kind != KindServerError {
		return nil, false
	}
	return r.server, true
}

// NetworkError returns the network error variant, if held.
func (r Result[T, U]) NetworkError() (NetworkError, bool) {
	if r.kind != KindNetworkError {
		return NetworkError{}, false
	}
	return r.network, true
}

// UnknownError returns the unknown error variant, if held.
func (r Result[T, U]) UnknownError() (UnknownError, bool) {
	if r.kind != KindUnknownError {
		return UnknownError{}, false
	}
	return r.unknown, true
}

// Err returns the failure as an Error, or nil for Success and the zero Result.
func (r Result[T, U]) Err() Error {
	switch r.kind {
	case KindServerError:
		return r.server
	case KindNetworkError:
		return r.network
	case KindUnknownError:
		return r.unknown
	default:
		return nil
	}
}

// Variant returns the held variant for use in a type switch, or nil for the
// zero Result.
func (r Result[T, U]) Variant() Variant {
	switch r.kind {
	case KindSuccess:
		return r.success
	case KindServerError:
		return r.server
	case KindNetworkError:
		return r.network
	case KindUnknownError:
		return r.unknown
	default:
		return nil
	}
}

// String describes the held variant.
func (r Result[T, U]) String() string {
	if r.kind == KindSuccess {
		return fmt.Sprintf("success (status %d)", r.success.code)
	}
	if err := r.Err(); err != nil {
		return err.Error()
	}
	return KindInvalid.String()
}

// Cases holds one handler per variant for Match.
type Cases[T, U, R any] struct {
	Success      func(Success[T]) R
	ServerError  func(ServerError[U]) R
	NetworkError func(NetworkError) R
	UnknownError func(UnknownError) R
}

// Match calls the handler for the held variant. It panics if that handler is
// nil or r is the zero Result.
func Match[T, U, R any](r Result[T, U], c Cases[T, U, R]) R {
	switch r.kind {
	case KindSuccess:
		if c.Success != nil {
			return c.Success(r.success)
		}
	case KindServerError:
		if c.ServerError != nil {
			return c.ServerError(r.server)
		}
	case KindNetworkError:
		if c.NetworkError != nil {
			return c.NetworkError(r.network)
		}
	case KindUnknownError:
		if c.UnknownError != nil {
			return c.UnknownError(r.unknown)
		}
	default:
		panic("networkresult: Match on zero Result")
	}
	panic(fmt.Sprintf("networkresult: no case for %s", r.kind))
}
