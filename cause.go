package networkresult

import (
	"fmt"
	"net/http"

	"sendify/networkresult/internal"
)

// StatusError is the cause derived from a ServerError's code and body.
// A new value is built on each Cause call.
type StatusError struct {
	Code    int
	Body    string
	HasBody bool
}

func newStatusError(code int, body any, hasBody bool) *StatusError {
	e := &StatusError{Code: code, HasBody: hasBody}
	if hasBody {
		e.Body = internal.BodyText(body)
	}
	return e
}

// Error implements the error interface.
func (e *StatusError) Error() string {
	msg := fmt.Sprintf("server error: %d", e.Code)
	if text := http.StatusText(e.Code); text != "" {
		msg += " " + text
	}
	if e.HasBody {
		msg += ": " + e.Body
	}
	return msg
}
