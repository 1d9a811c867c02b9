package coopbus

import (
	"github.com/coopbus/coopbus/flags"
	"github.com/coopbus/coopbus/status"
)

// Response is a reply to a request, delivered to the request's
// client and addressed to the request's own topic -- never the
// service's topic, since a recursive request may have been answered
// by a service higher up the tree than where it was issued.
type Response struct {
	Message
}

// NewResponse constructs a response destined for topic (the
// originating request's topic, not the responding service's).
func NewResponse(topic TopicPath, st status.Status, value any, filtering flags.Filtering, handling flags.Handling) Response {
	if filtering == 0 {
		filtering = flags.DefaultMessageFiltering
	}
	return Response{Message: NewMessage(topic, int(st), value, filtering, handling)}
}

// Status returns the response's status.
func (r *Response) Status() status.Status { return status.Status(r.Code) }
