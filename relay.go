package coopbus

import (
	"fmt"

	"github.com/coopbus/coopbus/flags"
	"github.com/coopbus/coopbus/method"
)

// recursiveLoopError reports that a relay's destination is a
// recursive descendant of its source, which would let a recursive
// delivery at the source loop back through the relay forever.
type recursiveLoopError struct {
	source, destination string
}

func (e *recursiveLoopError) Error() string {
	return fmt.Sprintf("coopbus: relay destination %s is a recursive descendant of source %s", e.destination, e.source)
}

// NewEventRelay subscribes to source and republishes every accepted
// event onto destination, preserving status, filtering and handling
// requirements. Construction fails if destination is source or a
// descendant of source, since a recursive event published at source
// would otherwise arrive back at source through the relay and loop
// forever.
func NewEventRelay(source, destination Topic, ignore flags.Filtering, handling flags.Handling) (*Subscription, error) {
	if source.IsAncestorOf(destination) {
		return nil, &recursiveLoopError{source: source.Path(), destination: destination.Path()}
	}
	return source.Subscribe(func(e *Event) {
		destination.Publish(e.Status(), e.Content.Value(), e.Filtering, e.Requirements)
	}, ignore, handling), nil
}

// ServiceRelay is a service installed on a source topic that rewrites
// each request's destination to a new topic and reissues it there,
// forwarding the downstream response back to the original client.
type ServiceRelay struct {
	source, destination Topic
}

// NewServiceRelay installs a service on source that reissues every
// request it receives against destination. As with NewEventRelay,
// construction fails if destination is a descendant of source.
func NewServiceRelay(source, destination Topic, ignore flags.Filtering, handling flags.Handling) (*Service, error) {
	if source.IsAncestorOf(destination) {
		return nil, &recursiveLoopError{source: source.Path(), destination: destination.Path()}
	}
	relay := &ServiceRelay{source: source, destination: destination}
	return source.Serve(relay.serve, ignore, handling)
}

func (r *ServiceRelay) serve(req *Request) {
	var client Client
	if req.client != nil {
		client = req.client
	}
	forwarded := r.destination.Issue(method.Method(req.Code), req.Content.Value(), client, req.Filtering, req.Requirements)
	if forwarded.Features&flags.DidRespond != 0 {
		req.Features |= flags.DidRespond
	}
}
