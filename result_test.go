package networkresult

import (
	"errors"
	"fmt"
	"net"
	"net/http"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type user struct {
	ID int `json:"id"`
}

type apiError struct {
	Message string `json:"msg"`
}

func connectionReset() *net.OpError {
	return &net.OpError{Op: "read", Net: "tcp", Err: syscall.ECONNRESET}
}

func TestKind(t *testing.T) {
	t.Run("has expected values", func(t *testing.T) {
		assert.Equal(t, Kind(0), KindInvalid)
		assert.Equal(t, Kind(1), KindSuccess)
		assert.Equal(t, Kind(2), KindServerError)
		assert.Equal(t, Kind(3), KindNetworkError)
		assert.Equal(t, Kind(4), KindUnknownError)
	})

	t.Run("has names", func(t *testing.T) {
		assert.Equal(t, "invalid", KindInvalid.String())
		assert.Equal(t, "success", KindSuccess.String())
		assert.Equal(t, "server_error", KindServerError.String())
		assert.Equal(t, "network_error", KindNetworkError.String())
		assert.Equal(t, "unknown_error", KindUnknownError.String())
		assert.Equal(t, "invalid", Kind(42).String())
	})
}

func TestSuccess(t *testing.T) {
	t.Run("carries body headers and code", func(t *testing.T) {
		headers := http.Header{"Content-Type": []string{"application/json"}}
		s := NewSuccess(user{ID: 1}, headers, http.StatusOK)

		assert.Equal(t, user{ID: 1}, s.Body())
		assert.Equal(t, headers, s.Headers())
		assert.Equal(t, http.StatusOK, s.Code())
		assert.Equal(t, KindSuccess, s.Kind())
	})

	t.Run("does not validate the code", func(t *testing.T) {
		s := NewSuccess("ok", nil, http.StatusTeapot)

		assert.Equal(t, http.StatusTeapot, s.Code())
		assert.Nil(t, s.Headers())
	})
}

func TestNetworkError(t *testing.T) {
	t.Run("keeps the same failure", func(t *testing.T) {
		reset := connectionReset()
		e := NewNetworkError(reset)

		assert.Same(t, reset, e.Cause())
		assert.Same(t, reset, e.Transport())
		assert.Equal(t, KindNetworkError, e.Kind())
	})

	t.Run("unwraps to the failure", func(t *testing.T) {
		e := NewNetworkError(connectionReset())

		assert.True(t, errors.Is(e, syscall.ECONNRESET))

		var opErr *net.OpError
		require.True(t, errors.As(e, &opErr))
		assert.Equal(t, "read", opErr.Op)
	})

	t.Run("formats message", func(t *testing.T) {
		e := NewNetworkError(connectionReset())

		assert.Equal(t, "network error: read tcp: "+syscall.ECONNRESET.Error(), e.Error())
		assert.Equal(t, "network error", NetworkError{}.Error())
	})

	t.Run("nil cause stays nil", func(t *testing.T) {
		e := NewNetworkError(nil)

		assert.Nil(t, e.Cause())
		assert.Nil(t, e.Transport())
		assert.Equal(t, "network error", e.Error())
	})
}

func TestUnknownError(t *testing.T) {
	cause := errors.New("invalid character 'x' looking for beginning of value")

	t.Run("carries only the cause by default", func(t *testing.T) {
		e := NewUnknownError(cause)

		code, ok := e.Code()
		assert.False(t, ok)
		assert.Zero(t, code)
		assert.Nil(t, e.Headers())
		assert.Equal(t, cause, e.Cause())
		assert.Equal(t, "unknown error: "+cause.Error(), e.Error())
	})

	t.Run("records code and headers", func(t *testing.T) {
		headers := http.Header{}
		e := NewUnknownError(cause, WithStatusCode(http.StatusOK), WithHeaders(headers))

		code, ok := e.Code()
		assert.True(t, ok)
		assert.Equal(t, http.StatusOK, code)
		assert.NotNil(t, e.Headers())
		assert.Empty(t, e.Headers())
		assert.Equal(t, "unknown error (status 200): "+cause.Error(), e.Error())
	})

	t.Run("records a zero code as present", func(t *testing.T) {
		code, ok := NewUnknownError(cause, WithStatusCode(0)).Code()

		assert.True(t, ok)
		assert.Zero(t, code)
	})

	t.Run("works with errors.Is", func(t *testing.T) {
		assert.True(t, errors.Is(NewUnknownError(cause), cause))
	})

	t.Run("nil cause stays nil", func(t *testing.T) {
		e := NewUnknownError(nil, WithStatusCode(http.StatusOK))

		assert.Nil(t, e.Cause())
		assert.Equal(t, "unknown error (status 200)", e.Error())
	})
}

func TestResult_Success(t *testing.T) {
	r := OK[user, apiError](user{ID: 1}, nil, http.StatusOK)

	assert.Equal(t, KindSuccess, r.Kind())
	assert.True(t, r.IsSuccess())
	assert.Nil(t, r.Err())

	s, ok := r.Success()
	require.True(t, ok)
	assert.Equal(t, user{ID: 1}, s.Body())

	_, ok = r.ServerError()
	assert.False(t, ok)
	_, ok = r.NetworkError()
	assert.False(t, ok)
	_, ok = r.UnknownError()
	assert.False(t, ok)
}

func TestResult_ServerError(t *testing.T) {
	body := apiError{Message: "missing"}
	r := Failed[user](http.StatusNotFound, &body, nil)

	assert.Equal(t, KindServerError, r.Kind())
	assert.False(t, r.IsSuccess())

	e, ok := r.ServerError()
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, e.Code())
	assert.IsType(t, NotFound[apiError]{}, e)

	require.NotNil(t, r.Err())
	assert.Equal(t, e, r.Err())

	_, ok = r.Success()
	assert.False(t, ok)
	_, ok = r.NetworkError()
	assert.False(t, ok)
	_, ok = r.UnknownError()
	assert.False(t, ok)
}

func TestResult_NetworkError(t *testing.T) {
	reset := connectionReset()
	r := Network[user, apiError](reset)

	assert.Equal(t, KindNetworkError, r.Kind())

	e, ok := r.NetworkError()
	require.True(t, ok)
	assert.Same(t, reset, e.Cause())
	assert.Same(t, reset, r.Err().Cause())

	_, ok = r.Success()
	assert.False(t, ok)
	_, ok = r.ServerError()
	assert.False(t, ok)
	_, ok = r.UnknownError()
	assert.False(t, ok)
}

func TestResult_UnknownError(t *testing.T) {
	cause := errors.New("decode failed")
	r := Unknown[user, apiError](cause, WithStatusCode(http.StatusOK))

	assert.Equal(t, KindUnknownError, r.Kind())

	e, ok := r.UnknownError()
	require.True(t, ok)
	assert.Equal(t, cause, e.Cause())
	assert.Equal(t, cause, r.Err().Cause())

	_, ok = r.Success()
	assert.False(t, ok)
	_, ok = r.ServerError()
	assert.False(t, ok)
	_, ok = r.NetworkError()
	assert.False(t, ok)
}

func TestResult_Zero(t *testing.T) {
	var r Result[user, apiError]

	assert.Equal(t, KindInvalid, r.Kind())
	assert.False(t, r.IsSuccess())
	assert.Nil(t, r.Err())
	assert.Nil(t, r.Variant())
	assert.Equal(t, "invalid", r.String())

	assert.Equal(t, KindInvalid, FromServerError[user, apiError](nil).Kind())
}

func TestResult_String(t *testing.T) {
	assert.Equal(t, "success (status 201)", OK[string, string]("x", nil, http.StatusCreated).String())
	assert.Equal(t, "server error: 404 Not Found", Failed[string, string](http.StatusNotFound, nil, nil).String())
}

func TestResult_Variant(t *testing.T) {
	describe := func(r Result[user, apiError]) string {
		switch v := r.Variant().(type) {
		case Success[user]:
			return fmt.Sprintf("user %d", v.Body().ID)
		case NotFound[apiError]:
			return "not found"
		case ServerError[apiError]:
			return fmt.Sprintf("server %d", v.Code())
		case NetworkError:
			return "offline"
		case UnknownError:
			return "unknown"
		default:
			return "none"
		}
	}

	tests := []struct {
		name     string
		result   Result[user, apiError]
		expected string
	}{
		{"success", OK[user, apiError](user{ID: 7}, nil, http.StatusOK), "user 7"},
		{"named server error", Failed[user, apiError](http.StatusNotFound, nil, nil), "not found"},
		{"other server error", Failed[user, apiError](http.StatusTeapot, nil, nil), "server 418"},
		{"network error", Network[user, apiError](connectionReset()), "offline"},
		{"unknown error", Unknown[user, apiError](errors.New("boom")), "unknown"},
		{"zero", Result[user, apiError]{}, "none"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, describe(tt.result))
		})
	}
}

func TestMatch(t *testing.T) {
	cases := Cases[user, apiError, string]{
		Success:      func(s Success[user]) string { return fmt.Sprintf("user %d", s.Body().ID) },
		ServerError:  func(e ServerError[apiError]) string { return fmt.Sprintf("status %d", e.Code()) },
		NetworkError: func(NetworkError) string { return "offline" },
		UnknownError: func(UnknownError) string { return "unknown" },
	}

	t.Run("calls the handler for the held variant", func(t *testing.T) {
		assert.Equal(t, "user 1", Match(OK[user, apiError](user{ID: 1}, nil, 200), cases))
		assert.Equal(t, "status 503", Match(Failed[user, apiError](503, nil, nil), cases))
		assert.Equal(t, "offline", Match(Network[user, apiError](connectionReset()), cases))
		assert.Equal(t, "unknown", Match(Unknown[user, apiError](errors.New("x")), cases))
	})

	t.Run("panics on a missing handler", func(t *testing.T) {
		partial := Cases[user, apiError, string]{Success: cases.Success}

		assert.PanicsWithValue(t, "networkresult: no case for network_error", func() {
			Match(Network[user, apiError](connectionReset()), partial)
		})
	})

	t.Run("panics on the zero result", func(t *testing.T) {
		assert.Panics(t, func() {
			Match(Result[user, apiError]{}, cases)
		})
	})
}

func TestError_Interface(t *testing.T) {
	var _ Error = NetworkError{}
	var _ Error = UnknownError{}
	var _ Error = NotFound[string]{}
	var _ Error = UnrecognizedHTTPError[string]{}

	var _ Variant = Success[int]{}
}

func TestError_UniformCause(t *testing.T) {
	failures := []Error{
		Classify[string](http.StatusBadRequest, nil, nil),
		Classify[string](599, nil, nil),
		NewNetworkError(connectionReset()),
		NewUnknownError(errors.New("boom")),
	}

	for _, f := range failures {
		t.Run(f.Kind().String(), func(t *testing.T) {
			assert.NotNil(t, f.Cause())
			assert.NotEmpty(t, f.Error())
		})
	}
}
