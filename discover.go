package coopbus

import (
	"github.com/coopbus/coopbus/flags"
)

// DefaultRecursionDepth is the recursion_depth the source library
// defaults its visit_* family to: effectively unbounded for any trie
// actually built by hand.
const DefaultRecursionDepth = 255

// VisitResources calls fn for t itself and, for up to depth
// generations of descendants, every resource beneath it. Descending
// into a child happens regardless of whether that child currently
// carries a service or subscriptions, same as the source library.
func (t Topic) VisitResources(fn func(Topic), depth int) {
	t.mustValid()
	fn(t)
	visitChildResources(t.node, fn, depth)
}

func visitChildResources(n *node, fn func(Topic), depth int) {
	if depth <= 0 {
		return
	}
	for _, child := range n.VisitChildren() {
		fn(Topic{node: child})
		visitChildResources(child, fn, depth-1)
	}
}

// VisitServices calls fn for the live service, if any, at t and each
// of its descendants up to depth generations deep.
func (t Topic) VisitServices(fn func(*Service), depth int) {
	t.VisitResources(func(rc Topic) {
		if svc := rc.CurrentService(); svc != nil {
			fn(svc)
		}
	}, depth)
}

// VisitSubscriptions calls fn for every live subscription at t and
// each of its descendants up to depth generations deep.
func (t Topic) VisitSubscriptions(fn func(*Subscription), depth int) {
	t.VisitResources(func(rc Topic) {
		for sub := range rc.node.Data.subs.All() {
			fn(sub)
		}
	}, depth)
}

// DiscoverServices calls fn once for every service currently
// installed beneath root, and again for every service installed
// afterwards, until the returned subscription is discarded. Callers
// must retain the returned subscription -- once it is no longer
// reachable, delivery stops.
//
// A service that comes into existence while the initial scan is
// still running may reach fn twice; fn should tolerate that.
func DiscoverServices(fn func(*Service), root Topic, handling flags.Handling) *Subscription {
	watch := root.Subscribe(func(e *Event) {
		if e.Filtering&flags.ServiceStatus == 0 {
			return
		}
		if svc, ok := As[*Service](e.Content); ok {
			fn(svc)
		}
	}, flags.DefaultReceiverIgnore&^flags.ServiceStatus, handling)
	root.VisitServices(fn, DefaultRecursionDepth)
	return watch
}

// DiscoverSubscriptions is DiscoverServices' counterpart for
// subscriptions.
func DiscoverSubscriptions(fn func(*Subscription), root Topic, handling flags.Handling) *Subscription {
	watch := root.Subscribe(func(e *Event) {
		if e.Filtering&flags.SubscriptionStatus == 0 {
			return
		}
		if sub, ok := As[*Subscription](e.Content); ok {
			fn(sub)
		}
	}, flags.DefaultReceiverIgnore&^flags.SubscriptionStatus, handling)
	root.VisitSubscriptions(fn, DefaultRecursionDepth)
	return watch
}
