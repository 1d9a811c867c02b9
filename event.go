package coopbus

import (
	"github.com/coopbus/coopbus/flags"
	"github.com/coopbus/coopbus/status"
)

// Event is a message broadcast to a topic's subscribers, carrying a
// status in its code field the way a request carries a method.
type Event struct {
	Message
}

// NewEvent constructs an event destined for topic. filtering defaults
// to flags.DefaultMessageFiltering when zero.
func NewEvent(topic TopicPath, st status.Status, value any, filtering flags.Filtering, handling flags.Handling) Event {
	if filtering == 0 {
		filtering = flags.DefaultMessageFiltering
	}
	return Event{Message: NewMessage(topic, int(st), value, filtering, handling)}
}

// Status returns the event's status.
func (e *Event) Status() status.Status { return status.Status(e.Code) }

// Publish delivers the event to every subscriber of its topic and,
// if Filtering carries flags.Recursive, to every ancestor's
// subscribers too. Publish may be called repeatedly.
func (e *Event) Publish() { publishEvent(e) }
