package networkresult

import (
	"net/http"
)

// ServerError is a response with a non-success status code. The family is
// closed: the eleven named variants below plus UnrecognizedHTTPError.
//
// Cause is derived from Code and Body on every call; it is never stored.
type ServerError[U any] interface {
	Error
	Code() int
	Body() (U, bool)
	Headers() http.Header
	serverError()
}

// response is the body and headers shared by every ServerError variant.
type response[U any] struct {
	body    U
	hasBody bool
	headers http.Header
}

func newResponse[U any](body *U, headers http.Header) response[U] {
	r := response[U]{headers: headers}
	if body != nil {
		r.body = *body
		r.hasBody = true
	}
	return r
}

// Body returns the decoded error body and whether one was present.
func (r response[U]) Body() (U, bool) { return r.body, r.hasBody }

// Headers returns the response headers, nil when none were attached.
func (r response[U]) Headers() http.Header { return r.headers }

// Kind implements Variant.
func (response[U]) Kind() Kind { return KindServerError }

func (response[U]) variant() {}
func (response[U]) serverError() {}

func (r response[U]) cause(code int) *StatusError {
	return newStatusError(code, r.body, r.hasBody)
}

// BadRequest is a 400 response.
type BadRequest[U any] struct{ response[U] }

// NewBadRequest creates a BadRequest.
func NewBadRequest[U any](body *U, headers http.Header) BadRequest[U] {
	return BadRequest[U]{newResponse(body, headers)}
}

func (BadRequest[U]) Code() int { return http.StatusBadRequest }
func (e BadRequest[U]) Cause() error { return e.cause(e.Code()) }
func (e BadRequest[U]) Error() string { return e.cause(e.Code()).Error() }
func (e BadRequest[U]) Unwrap() error { return e.Cause() }

// Unauthorized is a 401 response.
type Unauthorized[U any] struct{ response[U] }

// NewUnauthorized creates an Unauthorized.
func NewUnauthorized[U any](body *U, headers http.Header) Unauthorized[U] {
	return Unauthorized[U]{newResponse(body, headers)}
}

func (Unauthorized[U]) Code() int { return http.StatusUnauthorized }
func (e Unauthorized[U]) Cause() error { return e.cause(e.Code()) }
func (e Unauthorized[U]) Error() string { return e.cause(e.Code()).Error() }
func (e Unauthorized[U]) Unwrap() error { return e.Cause() }

// Forbidden is a 403 response.
type Forbidden[U any] struct{ response[U] }

// NewForbidden creates a Forbidden.
func NewForbidden[U any](body *U, headers http.Header) Forbidden[U] {
	return Forbidden[U]{newResponse(body, headers)}
}

func (Forbidden[U]) Code() int { return http.StatusForbidden }
func (e Forbidden[U]) Cause() error { return e.cause(e.Code()) }
func (e Forbidden[U]) Error() string { return e.cause(e.Code()).Error() }
func (e Forbidden[U]) Unwrap() error { return e.Cause() }

// NotFound is a 404 response.
type NotFound[U any] struct{ response[U] }

// NewNotFound creates a NotFound.
func NewNotFound[U any](body *U, headers http.Header) NotFound[U] {
	return NotFound[U]{newResponse(body, headers)}
}

func (NotFound[U]) Code() int { return http.StatusNotFound }
func (e NotFound[U]) Cause() error { return e.cause(e.Code()) }
func (e NotFound[U]) Error() string { return e.cause(e.Code()).Error() }
func (e NotFound[U]) Unwrap() error { return e.Cause() }

// Conflict is a 409 response.
type Conflict[U any] struct{ response[U] }

// NewConflict creates a Conflict.
func NewConflict[U any](body *U, headers http.Header) Conflict[U] {
	return Conflict[U]{newResponse(body, headers)}
}

func (Conflict[U]) Code() int { return http.StatusConflict }
func (e Conflict[U]) Cause() error { return e.cause(e.Code()) }
func (e Conflict[U]) Error() string { return e.cause(e.Code()).Error() }
func (e Conflict[U]) Unwrap() error { return e.Cause() }

// InternalServerError is a 500 response.
type InternalServerError[U any] struct{ response[U] }

// NewInternalServerError creates an InternalServerError.
func NewInternalServerError[U any](body *U, headers http.Header) InternalServerError[U] {
	return InternalServerError[U]{newResponse(body, headers)}
}

func (InternalServerError[U]) Code() int { return http.StatusInternalServerError }
func (e InternalServerError[U]) Cause() error { return e.cause(e.Code()) }
func (e InternalServerError[U]) Error() string { return e.cause(e.Code()).Error() }
func (e InternalServerError[U]) Unwrap() error { return e.Cause() }

// NotImplemented is a 501 response.
type NotImplemented[U any] struct{ response[U] }

// NewNotImplemented creates a NotImplemented.
func NewNotImplemented[U any](body *U, headers http.Header) NotImplemented[U] {
	return NotImplemented[U]{newResponse(body, headers)}
}

func (NotImplemented[U]) Code() int { return http.StatusNotImplemented }
func (e NotImplemented[U]) Cause() error { return e.cause(e.Code()) }
func (e NotImplemented[U]) Error() string { return e.cause(e.Code()).Error() }
func (e NotImplemented[U]) Unwrap() error { return e.Cause() }

// BadGateway is a 502 response.
type BadGateway[U any] struct{ response[U] }

// NewBadGateway creates a BadGateway.
func NewBadGateway[U any](body *U, headers http.Header) BadGateway[U] {
	return BadGateway[U]{newResponse(body, headers)}
}

func (BadGateway[U]) Code() int { return http.StatusBadGateway }
func (e BadGateway[U]) Cause() error { return e.cause(e.Code()) }
func (e BadGateway[U]) Error() string { return e.cause(e.Code()).Error() }
func (e BadGateway[U]) Unwrap() error { return e.Cause() }

// ServiceUnavailable is a 503 response.
type ServiceUnavailable[U any] struct{ response[U] }

// NewServiceUnavailable creates a ServiceUnavailable.
func NewServiceUnavailable[U any](body *U, headers http.Header) ServiceUnavailable[U] {
	return ServiceUnavailable[U]{newResponse(body, headers)}
}

func (ServiceUnavailable[U]) Code() int { return http.StatusServiceUnavailable }
func (e ServiceUnavailable[U]) Cause() error { return e.cause(e.Code()) }
func (e ServiceUnavailable[U]) Error() string { return e.cause(e.Code()).Error() }
func (e ServiceUnavailable[U]) Unwrap() error { return e.Cause() }

// GatewayTimeout is a 504 response.
type GatewayTimeout[U any] struct{ response[U] }

// NewGatewayTimeout creates a GatewayTimeout.
func NewGatewayTimeout[U any](body *U, headers http.Header) GatewayTimeout[U] {
	return GatewayTimeout[U]{newResponse(body, headers)}
}

func (GatewayTimeout[U]) Code() int { return http.StatusGatewayTimeout }
func (e GatewayTimeout[U]) Cause() error { return e.cause(e.Code()) }
func (e GatewayTimeout[U]) Error() string { return e.cause(e.Code()).Error() }
func (e GatewayTimeout[U]) Unwrap() error { return e.Cause() }

// HTTPVersionNotSupported is a 505 response.
type HTTPVersionNotSupported[U any] struct{ response[U] }

// NewHTTPVersionNotSupported creates an HTTPVersionNotSupported.
func NewHTTPVersionNotSupported[U any](body *U, headers http.Header) HTTPVersionNotSupported[U] {
	return HTTPVersionNotSupported[U]{newResponse(body, headers)}
}

func (HTTPVersionNotSupported[U]) Code() int { return http.StatusHTTPVersionNotSupported }
func (e HTTPVersionNotSupported[U]) Cause() error { return e.cause(e.Code()) }
func (e HTTPVersionNotSupported[U]) Error() string { return e.cause(e.Code()).Error() }
func (e HTTPVersionNotSupported[U]) Unwrap() error { return e.Cause() }

// UnrecognizedHTTPError is any status code without a named variant. It is
// the only ServerError whose code is stored rather than fixed.
type UnrecognizedHTTPError[U any] struct {
	response[U]
	code int
}

// NewUnrecognizedHTTPError creates an UnrecognizedHTTPError for code.
func NewUnrecognizedHTTPError[U any](code int, body *U, headers http.Header) UnrecognizedHTTPError[U] {
	return UnrecognizedHTTPError[U]{response: newResponse(body, headers), code: code}
}

func (e UnrecognizedHTTPError[U]) Code() int { return e.code }
func (e UnrecognizedHTTPError[U]) Cause() error { return e.cause(e.code) }
func (e UnrecognizedHTTPError[U]) Error() string { return e.cause(e.code).Error() }
func (e UnrecognizedHTTPError[U]) Unwrap() error { return e.Cause() }

var (
	_ ServerError[any] = BadRequest[any]{}
	_ ServerError[any] = Unauthorized[any]{}
	_ ServerError[any] = Forbidden[any]{}
	_ ServerError[any] = NotFound[any]{}
	_ ServerError[any] = Conflict[any]{}
	_ ServerError[any] = InternalServerError[any]{}
	_ ServerError[any] = NotImplemented[any]{}
	_ ServerError[any] = BadGateway[any]{}
	_ ServerError[any] = ServiceUnavailable[any]{}
	_ ServerError[any] = GatewayTimeout[any]{}
	_ ServerError[any] = HTTPVersionNotSupported[any]{}
	_ ServerError[any] = UnrecognizedHTTPError[any]{}
)
