package coopbus

import (
	"github.com/coopbus/coopbus/flags"
	"github.com/coopbus/coopbus/internal/handleid"
)

// SubscriberFunc handles an event published to the topic it is
// installed on, or to one of its descendants if the event is
// recursive.
type SubscriberFunc func(*Event)

// Subscription is one receiver installed on a topic to receive
// events. Any number of subscriptions may coexist on the same topic.
type Subscription struct {
	Receiver
	topic  Topic
	fn     SubscriberFunc
	handle uint64
}

// Handle returns the subscription's per-process diagnostic id.
func (s *Subscription) Handle() uint64 { return s.handle }

// Topic returns the topic this subscription was installed on.
func (s *Subscription) Topic() Topic { return s.topic }

func newSubscription(t Topic, fn SubscriberFunc, ignore flags.Filtering, handling flags.Handling) *Subscription {
	return &Subscription{
		Receiver: Receiver{Ignore: ignore, Handling: handling},
		topic:    t,
		fn:       fn,
		handle:   handleid.Next(),
	}
}
