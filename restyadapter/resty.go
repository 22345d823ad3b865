// Package restyadapter maps go-resty outcomes to results through an
// adapter.Adapter.
package restyadapter

import (
	"context"

	"github.com/go-resty/resty/v2"

	"sendify/networkresult"
	"sendify/networkresult/adapter"
)

// Adapt maps the return values of an executed resty request. Requests must
// not use SetDoNotParseResponse, since the body is taken from resp.Body().
func Adapt[T, U any](ctx context.Context, a *adapter.Adapter[T, U], resp *resty.Response, err error) networkresult.Result[T, U] {
	if err != nil {
		if received(resp) {
			return a.AdaptError(ctx, err,
				networkresult.WithStatusCode(resp.StatusCode()),
				networkresult.WithHeaders(resp.Header()))
		}
		return a.AdaptError(ctx, err)
	}
	if !received(resp) {
		return a.AdaptError(ctx, adapter.ErrNilResponse)
	}
	return a.AdaptBytes(ctx, resp.StatusCode(), resp.Header(), resp.Body())
}

func received(resp *resty.Response) bool {
	return resp != nil && resp.RawResponse != nil
}
