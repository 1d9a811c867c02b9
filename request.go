package coopbus

import (
	"context"

	"github.com/coopbus/coopbus/flags"
	"github.com/coopbus/coopbus/method"
	"github.com/coopbus/coopbus/status"
)

// Request is a message directed at a single service, optionally
// carrying a Client the service can use to reply.
type Request struct {
	Message
	client Client
}

// Method returns the request's method.
func (r *Request) Method() method.Method { return method.Method(r.Code) }

// Push issues the request without accepting any response -- cheaper
// than a respondable request since there is no client to notify.
func (r *Request) Push() { r.client = nil; r.dispatch() }

// Issue sets client, then (re)issues the request. This may be called
// repeatedly.
func (r *Request) Issue(client Client) {
	r.client = client
	r.dispatch()
}

// Reissue dispatches the request again using its current client.
func (r *Request) Reissue() { r.dispatch() }

func (r *Request) dispatch() { issueRequest(r) }

// Async issues a new request against t and returns a Future for its
// response, the generic form behind Topic.Get/Post/Put/Patch/Delete.
// Unlike those convenience methods, Async lets the caller pick T (any
// payload type, or Response itself for the raw envelope) and the
// filtering/handling flags.
func Async[T any](t Topic, m method.Method, value any, filtering flags.Filtering, handling flags.Handling) *Future[T] {
	client, future := NewFuture[T]()
	t.Issue(m, value, client, filtering, handling)
	return future
}

// Await issues a request against t and blocks for its response. This
// may block indefinitely if the service never responds; pass a
// bounded ctx via AwaitContext when that matters.
func Await[T any](t Topic, m method.Method, value any, filtering flags.Filtering, handling flags.Handling) (T, error) {
	return AwaitContext[T](context.Background(), t, m, value, filtering, handling)
}

// AwaitContext is Await with a caller-supplied context.
func AwaitContext[T any](ctx context.Context, t Topic, m method.Method, value any, filtering flags.Filtering, handling flags.Handling) (T, error) {
	return Async[T](t, m, value, filtering, handling).Await(ctx)
}

// Respond replies to the request through its client, if any. It is
// usually called from within the serving ServiceFunc.
func (r *Request) Respond(st status.Status, value any) {
	r.Features |= flags.DidRespond
	if r.client != nil {
		theMetrics.responsesSent.Add(1)
		r.client.Respond(r.Topic, NewResponse(r.Topic, st, value, flags.DefaultMessageFiltering, flags.NoSpecialHandling))
	}
}

func (r *Request) RespondOK(value any)                   { r.Respond(status.OK, value) }
func (r *Request) RespondCreated(value any)               { r.Respond(status.Created, value) }
func (r *Request) RespondNotFound(value any)              { r.Respond(status.NotFound, value) }
func (r *Request) RespondMethodNotAllowed(value any)      { r.Respond(status.MethodNotAllowed, value) }
func (r *Request) RespondGone(value any)                  { r.Respond(status.Gone, value) }
func (r *Request) RespondUnsupportedMediaType(value any)  { r.Respond(status.UnsupportedMediaType, value) }
func (r *Request) RespondInternalServerError(value any)   { r.Respond(status.InternalServerError, value) }
func (r *Request) RespondNotImplemented(value any)        { r.Respond(status.NotImplemented, value) }
