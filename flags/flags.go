// Package flags holds the three bitmask vocabularies that drive
// message routing: Filtering (what a message is), Handling (what a
// message requires of its receiver) and Features (what has already
// happened to a message). They mirror pleb's flags.hpp bit for bit.
package flags

// Features records bus-internal bookkeeping about a message, such as
// whether it has already been sent or responded to.
type Features uint16

const (
	DidSend    Features = 1 << 8
	DidRespond Features = 1 << 9
	NoFeatures Features = 0
)

// Filtering describes what kind of message this is, for the purpose
// of deciding whether a given receiver should see it. Bits 14..8
// cause messages to be ignored by every receiver by default; bit 15
// (Recursive) is ignored by default only by services. Bits 23..16
// (unused here) would invoke a helper by default in the source library.
type Filtering uint16

const (
	// Recursive messages climb the resource tree. A recursive request
	// stops at the first service that accepts it; a recursive event
	// always continues to the root. Services ignore the Recursive bit
	// itself by default (subscribers and clients accept it), but that
	// only suppresses recursive delivery arriving from sub-resources --
	// it never blocks a message sent directly to them.
	Recursive Filtering = 1 << 15

	// ServiceStatus and SubscriptionStatus mark the auto-published
	// Created events the bus itself emits when a receiver is installed.
	// No event is emitted when a receiver is torn down.
	ServiceStatus      Filtering = 1 << 14
	SubscriptionStatus Filtering = 1 << 13

	// SubscriberException marks the event republished when a subscriber
	// panics while handling a prior event.
	SubscriberException Filtering = 1 << 12

	// Logging, Internal and Remote are suggested-use application flags
	// with no special bus behavior beyond their default ignore policy.
	Logging  Filtering = 1 << 8
	Internal Filtering = 1 << 7
	Remote   Filtering = 1 << 6

	// Regular is set on ordinary application messages and accepted by
	// every receiver by default.
	Regular Filtering = 1

	DefaultMessageFiltering = Regular | Recursive

	DefaultReceiverIgnore   = Filtering(0x7F00)
	DefaultSubscriberIgnore = DefaultReceiverIgnore
	DefaultServiceIgnore    = DefaultReceiverIgnore | Recursive
	DefaultClientIgnore     = Filtering(0)
)

// Handling describes special requirements a message places on its
// receiver. A receiver that hasn't declared a requirement a message
// carries is expected to refuse or otherwise intervene.
type Handling uint16

const (
	NoCopying Handling = 1 << 15
	NoMoving  Handling = 1 << 14

	// Immediate means the response cannot be deferred.
	Immediate Handling = 1 << 11
	// Realtime means the receiver must work within a strict, application
	// defined time limit; supported by the channel-based future adapter.
	Realtime Handling = 1 << 10

	NoSpecialHandling Handling = 0
)
