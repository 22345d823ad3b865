// Package adapter turns the raw outcome of an HTTP call into a
// networkresult.Result. It does not send requests, retry or time out; it
// only maps what the caller's transport already produced.
package adapter

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"

	"sendify/networkresult"
)

// ErrNilResponse is the cause reported when a call returned neither a
// response nor an error.
var ErrNilResponse = errors.New("adapter: nil response without error")

// Option configures an Adapter.
type Option func(*options) error

type options struct {
	logger          Logger
	logBodyConfig   LogBodyConfig
	requestIDHeader string
	isSuccess       func(code int) bool
}

// WithLogger sets the logger for adapted outcomes. Nil disables logging.
func WithLogger(logger Logger) Option {
	return func(o *options) error {
		o.logger = logger
		return nil
	}
}

// WithLogBodyConfig sets body truncation limits for logging.
func WithLogBodyConfig(cfg LogBodyConfig) Option {
	return func(o *options) error {
		if cfg.MaxBodySize <= 0 {
			return errors.New("max body size must be positive")
		}
		if cfg.MaxStringValue <= 0 {
			return errors.New("max string value must be positive")
		}
		o.logBodyConfig = cfg
		return nil
	}
}

// WithRequestIDHeader sets the response header read for a request ID when
// the context has none.
func WithRequestIDHeader(name string) Option {
	return func(o *options) error {
		if name == "" {
			return errors.New("request ID header cannot be empty")
		}
		o.requestIDHeader = name
		return nil
	}
}

// WithSuccessStatus overrides which status codes count as success.
// The default accepts 2xx.
func WithSuccessStatus(fn func(code int) bool) Option {
	return func(o *options) error {
		if fn == nil {
			return errors.New("success status func cannot be nil")
		}
		o.isSuccess = fn
		return nil
	}
}

// Adapter maps call outcomes to results with a T success body and a U error
// body. It is immutable and safe for concurrent use.
type Adapter[T, U any] struct {
	success Decoder[T]
	failure Decoder[U]
	opts    options
}

// New creates an Adapter using the given body decoders.
func New[T, U any](success Decoder[T], failure Decoder[U], opts ...Option) (*Adapter[T, U], error) {
	if success == nil {
		return nil, errors.New("success decoder cannot be nil")
	}
	if failure == nil {
		return nil, errors.New("failure decoder cannot be nil")
	}

	a := &Adapter[T, U]{
		success: success,
		failure: failure,
		opts: options{
			logger:          newDefaultLogger(),
			logBodyConfig:   DefaultLogBodyConfig(),
			requestIDHeader: DefaultRequestIDHeader,
			isSuccess:       networkresult.IsSuccessStatus,
		},
	}

	for _, opt := range opts {
		if err := opt(&a.opts); err != nil {
			return nil, err
		}
	}

	return a, nil
}

// Adapt maps the return values of an http.Client call. The response body is
// read fully and closed.
func (a *Adapter[T, U]) Adapt(ctx context.Context, resp *http.Response, err error) networkresult.Result[T, U] {
	if err != nil {
		if resp != nil && resp.Body != nil {
			resp.Body.Close()
		}
		return a.AdaptError(ctx, err)
	}
	if resp == nil {
		return a.AdaptError(ctx, ErrNilResponse)
	}

	var body []byte
	if resp.Body != nil {
		body, err = io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			return a.AdaptError(ctx, err,
				networkresult.WithStatusCode(resp.StatusCode),
				networkresult.WithHeaders(resp.Header))
		}
	}

	return a.AdaptBytes(ctx, resp.StatusCode, resp.Header, body)
}

// AdaptError maps a failure that happened before a body could be decoded.
// Transport failures (a *url.Error, or any other net.Error that is not a
// context error) become a NetworkError; anything else, including a bare
// context.Canceled or context.DeadlineExceeded, becomes an UnknownError
// carrying opts.
func (a *Adapter[T, U]) AdaptError(ctx context.Context, err error, opts ...networkresult.UnknownOption) networkresult.Result[T, U] {
	var r networkresult.Result[T, U]
	if ne, ok := transportError(err); ok {
		r = networkresult.Network[T, U](ne)
	} else {
		r = networkresult.Unknown[T, U](err, opts...)
	}
	var headers http.Header
	if e, ok := r.UnknownError(); ok {
		headers = e.Headers()
	}
	a.log(ctx, r, headers, nil)
	return r
}

// AdaptBytes maps a response whose body was already read.
func (a *Adapter[T, U]) AdaptBytes(ctx context.Context, code int, headers http.Header, body []byte) networkresult.Result[T, U] {
	contentType := headers.Get("Content-Type")

	var r networkresult.Result[T, U]
	switch {
	case a.opts.isSuccess(code):
		v, err := a.success(body, contentType)
		if err != nil {
			r = networkresult.Unknown[T, U](fmt.Errorf("decode success body: %w", err),
				networkresult.WithStatusCode(code),
				networkresult.WithHeaders(headers))
			break
		}
		r = networkresult.OK[T, U](v, headers, code)
	case len(body) == 0:
		r = networkresult.Failed[T, U](code, nil, headers)
	default:
		v, err := a.failure(body, contentType)
		if err != nil {
			r = networkresult.Unknown[T, U](fmt.Errorf("decode error body: %w", err),
				networkresult.WithStatusCode(code),
				networkresult.WithHeaders(headers))
			break
		}
		r = networkresult.Failed[T](code, &v, headers)
	}

	a.log(ctx, r, headers, body)
	return r
}

// transportError reports whether err is a failure of the transport itself.
// http.Client wraps every such failure, its own timeouts included, in a
// *url.Error. Otherwise the first net.Error in the chain counts, unless it is
// a context error, since context.DeadlineExceeded satisfies net.Error too.
func transportError(err error) (net.Error, bool) {
	var ue *url.Error
	if errors.As(err, &ue) {
		return ue, true
	}
	var ne net.Error
	if !errors.As(err, &ne) || isContextError(ne) {
		return nil, false
	}
	return ne, true
}

func isContextError(err error) bool {
	return errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled)
}
