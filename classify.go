package networkresult

import "net/http"

// Classify maps a status code to its ServerError variant. Codes without a
// named variant, including success codes, give an UnrecognizedHTTPError
// carrying code unchanged. body and headers are passed through as-is.
//
// Classify is total and pure, and safe for concurrent use.
func Classify[U any](code int, body *U, headers http.Header) ServerError[U] {
	switch code {
	case http.StatusBadRequest:
		return NewBadRequest(body, headers)
	case http.StatusUnauthorized:
		return NewUnauthorized(body, headers)
	case http.StatusForbidden:
		return NewForbidden(body, headers)
	case http.StatusNotFound:
		return NewNotFound(body, headers)
	case http.StatusConflict:
		return NewConflict(body, headers)
	case http.StatusInternalServerError:
		return NewInternalServerError(body, headers)
	case http.StatusNotImplemented:
		return NewNotImplemented(body, headers)
	case http.StatusBadGateway:
		return NewBadGateway(body, headers)
	case http.StatusServiceUnavailable:
		return NewServiceUnavailable(body, headers)
	case http.StatusGatewayTimeout:
		return NewGatewayTimeout(body, headers)
	case http.StatusHTTPVersionNotSupported:
		return NewHTTPVersionNotSupported(body, headers)
	default:
		return NewUnrecognizedHTTPError(code, body, headers)
	}
}

// KnownStatusCodes returns the status codes that have a named ServerError
// variant, in ascending order.
func KnownStatusCodes() []int {
	return []int{
		http.StatusBadRequest,
		http.StatusUnauthorized,
		http.StatusForbidden,
		http.StatusNotFound,
		http.StatusConflict,
		http.StatusInternalServerError,
		http.StatusNotImplemented,
		http.StatusBadGateway,
		http.StatusServiceUnavailable,
		http.StatusGatewayTimeout,
		http.StatusHTTPVersionNotSupported,
	}
}
