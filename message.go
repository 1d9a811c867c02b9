package coopbus

import "github.com/coopbus/coopbus/flags"

// MessageBase carries the fields common to every message, event,
// request and response: a receiver-specific code (a status or a
// method, depending on the message kind), bus bookkeeping flags, the
// filtering classification, handling requirements, and the topic the
// message is destined for.
//
// Topic is stored lazily as a TopicPath, as in the source library:
// constructing a message never forces trie nodes into existence.
type MessageBase struct {
	ID           uint64
	Code         int
	Features     flags.Features
	Filtering    flags.Filtering
	Requirements flags.Handling
	Topic        TopicPath
}

// Message adds an arbitrary payload to MessageBase.
type Message struct {
	MessageBase
	Content
}

// NewMessage constructs a message destined for topic.
func NewMessage(topic TopicPath, code int, value any, filtering flags.Filtering, handling flags.Handling) Message {
	return Message{
		MessageBase: MessageBase{
			ID:           nextMessageID(),
			Code:         code,
			Filtering:    filtering,
			Requirements: handling,
			Topic:        topic,
		},
		Content: NewContent(value),
	}
}
