package coopbus

import (
	"context"

	"github.com/coopbus/coopbus/flags"
)

// Client is how a request's issuer receives its response. Implement
// it directly, or use FuncClient / NewFuture for the common cases.
type Client interface {
	Respond(topic TopicPath, resp Response)
}

// ResponseFunc is a callback-based Client, the Go equivalent of
// pleb::client's response_function.
type ResponseFunc func(Response)

// FuncClient adapts a ResponseFunc to Client.
type FuncClient struct {
	Receiver
	fn ResponseFunc
}

// NewFuncClient wraps fn as a Client. Clients ignore nothing by
// default (flags.DefaultClientIgnore is zero).
func NewFuncClient(fn ResponseFunc, handling flags.Handling) *FuncClient {
	return &FuncClient{
		Receiver: Receiver{Ignore: flags.DefaultClientIgnore, Handling: handling},
		fn:       fn,
	}
}

func (c *FuncClient) Respond(topic TopicPath, resp Response) {
	if c.fn != nil {
		c.fn(resp)
	}
}

// futureResult is what arrives on a Future's channel.
type futureResult[T any] struct {
	value T
	err   error
}

// Future is the channel-based analogue of pleb's client_promise /
// std::future adapter: exactly one response ever arrives on it.
//
// Unless T is Response, a non-successful status surfaces as a
// *StatusError from Await rather than as a value; a payload whose
// dynamic type doesn't match T surfaces as an
// *IncompatibleContentError, the Go analogue of the source's
// std::bad_any_cast.
type Future[T any] struct {
	ch chan futureResult[T]
}

// NewFuture returns a Client to hand to Request.Issue, and the Future
// that will receive its eventual response. The client declares
// flags.Realtime, matching the source's futures/async/await adapter.
func NewFuture[T any]() (Client, *Future[T]) {
	ch := make(chan futureResult[T], 1)
	var zeroT T
	_, wantsRawResponse := any(zeroT).(Response)

	client := NewFuncClient(func(resp Response) {
		var result futureResult[T]
		switch {
		case wantsRawResponse:
			v, _ := any(resp).(T)
			result.value = v
		case !resp.Status().IsSuccessful():
			result.err = &StatusError{Status: resp.Status(), Value: resp.Content.Value()}
		default:
			result.value, result.err = MoveAs[T](resp.Content)
		}
		select {
		case ch <- result:
		default:
		}
	}, flags.Realtime)

	return client, &Future[T]{ch: ch}
}

// Await blocks until the response arrives or ctx is done.
func (f *Future[T]) Await(ctx context.Context) (T, error) {
	select {
	case r := <-f.ch:
		return r.value, r.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}
