package coopbus

import (
	"github.com/coopbus/coopbus/flags"
	"github.com/coopbus/coopbus/internal/logs"
	"github.com/coopbus/coopbus/status"
)

// handlingInterceptor, if set, is consulted whenever a message
// carries a handling requirement its destination receiver hasn't
// declared support for. It returns true to let delivery proceed
// anyway. With no interceptor installed, an unhandled requirement
// raises *HandlingUnavailableError instead.
var handlingInterceptor func(r Receiver, unhandled flags.Handling) bool

// SetHandlingInterceptor installs fn as the bus's handling-capability
// interceptor, replacing the default refuse-on-mismatch policy. Pass
// nil to restore the default.
func SetHandlingInterceptor(fn func(r Receiver, unhandled flags.Handling) bool) {
	handlingInterceptor = fn
}

func checkHandling(r Receiver, requirements flags.Handling) {
	unhandled := r.UnhandledRequirements(requirements)
	if unhandled == 0 {
		return
	}
	if handlingInterceptor != nil && handlingInterceptor(r, unhandled) {
		return
	}
	panic(&HandlingUnavailableError{Unhandled: unhandled})
}

// publishEvent walks e's topic outward (leaf first), delivering it to
// every live subscription at each level that accepts it, then -- if
// e.Filtering carries flags.Recursive -- moving to the parent topic
// and repeating. Recursive is stripped from the filtering checked
// against the resolved (destination) node: a subscriber that ignores
// Recursive is opting out of bubbled events from its descendants, not
// out of events published directly to it. The bit is re-added once
// the walk climbs to a parent, where it's exactly what's being
// checked for.
func publishEvent(e *Event) {
	theMetrics.eventsPublished.Add(1)
	n := e.Topic.resolve().nearest
	filtering := e.Filtering &^ flags.Recursive
	for n != nil {
		deliverToSubscribers(n, e, filtering)
		if e.Filtering&flags.Recursive == 0 {
			return
		}
		filtering = e.Filtering
		n = n.Parent()
	}
}

func deliverToSubscribers(n *node, e *Event, filtering flags.Filtering) {
	for sub := range n.Data.subs.All() {
		if !sub.Receiver.Accepts(filtering) {
			continue
		}
		dispatchToSubscriber(n, sub, e)
	}
}

func dispatchToSubscriber(n *node, sub *Subscription, e *Event) {
	checkHandling(sub.Receiver, e.Requirements)
	runSubscriber(n, sub, e)
}

func runSubscriber(n *node, sub *Subscription, e *Event) {
	defer func() {
		if r := recover(); r != nil {
			theMetrics.subscriberPanics.Add(1)
			reportSubscriberException(n, e, r)
		}
	}()
	sub.fn(e)
}

// reportSubscriberException republishes a panic raised by a subscriber
// as a non-recursive SubscriberException event. It republishes on n
// itself, the normal case -- unless e already carries the
// SubscriberException flag, meaning this panic happened while handling
// a previous exception report; in that case it moves one level up to
// n's parent instead, so a chain of misbehaving exception handlers
// can't loop on the same topic forever.
func reportSubscriberException(n *node, e *Event, cause any) {
	logs.Warning.Printf("subscriber panic on %s: %v", n.Path(), cause)
	target := n
	if e.Filtering&flags.SubscriberException != 0 {
		target = n.Parent()
		if target == nil {
			return
		}
	}
	exc := NewEvent(TopicPath{nearest: target, path: target.Path()}, status.InternalServerError, cause,
		flags.SubscriberException, flags.NoSpecialHandling)
	deliverToSubscribers(target, &exc, exc.Filtering)
}

// issueRequest resolves req's destination service -- at its own topic,
// then at ancestors in turn if req.Filtering carries flags.Recursive --
// and runs the first one that accepts it. If none do, it panics with
// *ServiceNotFoundError: unlike a request with no subscriber, a
// request with no service can never be silently swallowed. A service's
// panic with a *status.Exception is caught and turned into a response
// with that status; any other panic propagates to the caller.
func issueRequest(req *Request) {
	theMetrics.requestsIssued.Add(1)
	n := req.Topic.resolve().nearest
	if svc := n.Data.service.Lock(); svc != nil && svc.Receiver.Accepts(req.Filtering&^flags.Recursive) {
		runService(svc, req)
		return
	}
	if req.Filtering&flags.Recursive != 0 {
		for n = n.Parent(); n != nil; n = n.Parent() {
			if svc := n.Data.service.Lock(); svc != nil && svc.Receiver.Accepts(req.Filtering) {
				runService(svc, req)
				return
			}
		}
	}
	theMetrics.servicesNotFound.Add(1)
	panic(&ServiceNotFoundError{Path: req.Topic.Path()})
}

func runService(svc *Service, req *Request) {
	checkHandling(svc.Receiver, req.Requirements)
	defer func() {
		if r := recover(); r != nil {
			if exc, ok := r.(*status.Exception); ok {
				req.Features |= flags.DidSend
				req.Respond(exc.Status, nil)
				return
			}
			panic(r)
		}
	}()
	svc.fn(req)
	req.Features |= flags.DidSend
	if req.Features&flags.DidRespond == 0 {
		req.Respond(status.NoContent, nil)
	}
}

// announceService auto-publishes a Created event carrying svc on svc's
// own topic, filtered ServiceStatus|Recursive. DiscoverServices
// combines this with an initial scan to pick up services installed
// before the discovery subscription existed.
func announceService(svc *Service) {
	if svc == nil {
		return
	}
	e := NewEvent(svc.Topic().ToPath(), status.Created, svc, flags.ServiceStatus|flags.Recursive, flags.NoSpecialHandling)
	e.Publish()
}

// announceSubscription is announceService's counterpart for
// subscriptions, filtered SubscriptionStatus|Recursive.
func announceSubscription(sub *Subscription) {
	if sub == nil {
		return
	}
	e := NewEvent(sub.Topic().ToPath(), status.Created, sub, flags.SubscriptionStatus|flags.Recursive, flags.NoSpecialHandling)
	e.Publish()
}
