package coopbus

import (
	"github.com/coopbus/coopbus/internal/coop"
	"github.com/coopbus/coopbus/internal/trie"
)

// resourceData is the payload every trie node carries: at most one
// live service, and a pool of live subscriptions. It mirrors the
// source library's resource_data.
type resourceData struct {
	service *coop.Slot[Service]
	subs    *coop.Pool[Subscription]
}

func newResourceData() *resourceData {
	return &resourceData{
		service: coop.NewSlot[Service](),
		subs:    coop.NewPool[Subscription](),
	}
}

// node is the concrete trie node type the whole bus is built on.
type node = trie.Node[*resourceData]

const defaultSeparator = '/'

var theRoot = trie.NewRoot[*resourceData]("", defaultSeparator, func() *resourceData { return newResourceData() })

// globalRoot returns the bus's single global resource trie root.
func globalRoot() *node { return theRoot }
