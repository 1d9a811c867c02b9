package coopbus

import (
	"context"

	"github.com/coopbus/coopbus/flags"
	"github.com/coopbus/coopbus/internal/logs"
	"github.com/coopbus/coopbus/internal/trie"
	"github.com/coopbus/coopbus/method"
	"github.com/coopbus/coopbus/status"
)

// Topic is an eager handle on a trie node: constructing one, or
// calling Child on one, creates any missing node immediately. Use
// TopicPath when you want resolution to stay lazy.
//
// The zero Topic is "null" -- what asking the bus root for its parent
// returns: every method on it other than IsNull panics with
// *NullTopicError.
type Topic struct {
	node *node
}

// RootTopic returns the bus's single global root topic.
func RootTopic() Topic { return Topic{node: globalRoot()} }

// NewTopic resolves path against the root, creating any node along
// the way that doesn't exist yet.
func NewTopic(path string) Topic {
	return RootTopic().Child(path)
}

func (t Topic) mustValid() {
	if t.node == nil {
		panic(&NullTopicError{})
	}
}

// IsNull reports whether t is the null topic.
func (t Topic) IsNull() bool { return t.node == nil }

func (t Topic) ID() string {
	t.mustValid()
	return t.node.ID()
}

func (t Topic) Path() string {
	t.mustValid()
	return t.node.Path()
}

func (t Topic) Separator() byte {
	t.mustValid()
	return t.node.Separator()
}

// Parent returns t's parent, or the null Topic if t is the root.
func (t Topic) Parent() Topic {
	t.mustValid()
	p := t.node.Parent()
	if p == nil {
		return Topic{}
	}
	return Topic{node: p}
}

// Child resolves sub relative to t, creating any missing node.
func (t Topic) Child(sub string) Topic {
	t.mustValid()
	return Topic{node: t.node.Get(trie.NewPathView(sub, t.node.Separator()))}
}

// IsAncestorOf reports whether t is an ancestor of other, or equal to
// it.
func (t Topic) IsAncestorOf(other Topic) bool {
	t.mustValid()
	other.mustValid()
	for n := other.node; n != nil; n = n.Parent() {
		if n == t.node {
			return true
		}
	}
	return false
}

// ToPath converts t to a fully resolved TopicPath.
func (t Topic) ToPath() TopicPath {
	t.mustValid()
	return TopicPath{nearest: t.node, path: t.node.Path()}
}

// CurrentService returns the service currently installed on t, or
// nil.
func (t Topic) CurrentService() *Service {
	t.mustValid()
	return t.node.Data.service.Lock()
}

// Subscribe installs fn as a new subscriber of t. Creating a
// subscription auto-publishes a Created event carrying it, filtered
// SubscriptionStatus|Recursive, which DiscoverSubscriptions combines
// with an initial scan.
func (t Topic) Subscribe(fn SubscriberFunc, ignore flags.Filtering, handling flags.Handling) *Subscription {
	t.mustValid()
	sub := newSubscription(t, fn, ignore, handling)
	ptr := t.node.Data.subs.Emplace(*sub)
	announceSubscription(ptr)
	return ptr
}

// SubscribeDefault installs fn with the bus's default subscriber
// filtering (accepts recursive events, ignores the bus's own status
// events) and no special handling requirements.
func (t Topic) SubscribeDefault(fn SubscriberFunc) *Subscription {
	return t.Subscribe(fn, flags.DefaultSubscriberIgnore, flags.NoSpecialHandling)
}

// Serve installs fn as t's service. It fails if a service is already
// installed. Creating a service auto-publishes a Created event
// carrying it, filtered ServiceStatus|Recursive.
func (t Topic) Serve(fn ServiceFunc, ignore flags.Filtering, handling flags.Handling) (*Service, error) {
	t.mustValid()
	svc := newService(t.node, fn, ignore, handling)
	ptr := t.node.Data.service.Emplace(*svc)
	if ptr == nil {
		logs.Warning.Printf("service slot race lost on %s", t.Path())
		return nil, &ServiceExistsError{Path: t.Path()}
	}
	announceService(ptr)
	return ptr, nil
}

// ServeDefault installs fn with the bus's default service filtering
// (ignores recursive requests meant for sub-resources) and no special
// handling requirements.
func (t Topic) ServeDefault(fn ServiceFunc) (*Service, error) {
	return t.Serve(fn, flags.DefaultServiceIgnore, flags.NoSpecialHandling)
}

// Publish broadcasts an event to t's subscribers (and, if filtering
// carries flags.Recursive, every ancestor's subscribers).
func (t Topic) Publish(st status.Status, value any, filtering flags.Filtering, handling flags.Handling) {
	t.mustValid()
	e := NewEvent(t.ToPath(), st, value, filtering, handling)
	e.Publish()
}

// PublishDefault broadcasts with the bus's default message filtering.
func (t Topic) PublishDefault(st status.Status, value any) {
	t.Publish(st, value, flags.DefaultMessageFiltering, flags.NoSpecialHandling)
}

// Issue constructs and dispatches a request to t. If no service
// accepts it (at t, or an ancestor if filtering carries
// flags.Recursive), Issue panics with *ServiceNotFoundError -- a
// missing service, unlike a missing subscriber, is never silently
// swallowed.
func (t Topic) Issue(m method.Method, value any, client Client, filtering flags.Filtering, handling flags.Handling) *Request {
	t.mustValid()
	req := &Request{
		Message: NewMessage(t.ToPath(), int(m), value, filtering, handling),
		client:  client,
	}
	req.dispatch()
	return req
}

// request issues m against t, awaiting the response synchronously
// through a Future[Response].
func (t Topic) request(m method.Method, value any) (Response, error) {
	client, future := NewFuture[Response]()
	t.Issue(m, value, client, flags.DefaultMessageFiltering, flags.NoSpecialHandling)
	return future.Await(context.Background())
}

// Get, Post, Put, Patch and Delete are immediate convenience methods
// replacing the source library's destructor-fired auto_request: Go
// has no destructors, so issuing synchronously and awaiting the
// result is the idiomatic equivalent.
func (t Topic) Get(value any) (Response, error)    { return t.request(method.GET, value) }
func (t Topic) Post(value any) (Response, error)   { return t.request(method.POST, value) }
func (t Topic) Put(value any) (Response, error)    { return t.request(method.PUT, value) }
func (t Topic) Patch(value any) (Response, error)  { return t.request(method.PATCH, value) }
func (t Topic) Delete(value any) (Response, error) { return t.request(method.DELETE, value) }
