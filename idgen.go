package coopbus

import "sync/atomic"

// messageIDCounter hands out the monotonically increasing per-process
// id stamped on every message. It exists only to let a retrying
// caller recognize a duplicate delivery -- it carries no ordering
// guarantee, since two messages published concurrently may be
// delivered to a given subscriber in either order regardless of which
// id is lower.
var messageIDCounter atomic.Uint64

// nextMessageID returns the next message id. It starts at 1, so 0
// stays available as "no id assigned".
func nextMessageID() uint64 { return messageIDCounter.Add(1) }
