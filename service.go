package coopbus

import (
	"github.com/coopbus/coopbus/flags"
	"github.com/coopbus/coopbus/internal/handleid"
)

// ServiceFunc handles a request issued to the topic it is installed
// on.
type ServiceFunc func(*Request)

// Service is the single receiver installed on a topic to answer
// requests. At most one Service can be live on a given topic at a
// time; Topic.Serve fails if one is already there.
type Service struct {
	Receiver
	node   *node
	fn     ServiceFunc
	handle uint64
}

// Handle returns the service's per-process diagnostic id.
func (s *Service) Handle() uint64 { return s.handle }

// Topic returns the topic this service answers requests on.
func (s *Service) Topic() Topic { return Topic{node: s.node} }

func newService(n *node, fn ServiceFunc, ignore flags.Filtering, handling flags.Handling) *Service {
	return &Service{
		Receiver: Receiver{Ignore: ignore, Handling: handling},
		node:     n,
		fn:       fn,
		handle:   handleid.Next(),
	}
}
