package coopbus

import (
	"strings"

	"github.com/coopbus/coopbus/flags"
	"github.com/coopbus/coopbus/internal/trie"
	"github.com/coopbus/coopbus/method"
	"github.com/coopbus/coopbus/status"
)

// TopicPath is a lazy handle on a place in the resource trie: it
// holds the deepest node that already exists along its path, plus the
// canonical path string of where it is ultimately headed. Resolution
// never creates a node on its own; call Realize (or ToTopic) when you
// actually need the node to exist.
type TopicPath struct {
	nearest *node
	path    string
}

// RootPath returns the lazy handle on the bus root.
func RootPath() TopicPath { return TopicPath{nearest: globalRoot(), path: globalRoot().Path()} }

func canonicalize(path string) string {
	segs := trie.NewPathView(path, defaultSeparator).Segments()
	return strings.Join(segs, string(defaultSeparator))
}

// NewTopicPath resolves path against the root as far as existing
// nodes allow, without creating anything.
func NewTopicPath(path string) TopicPath {
	tp := TopicPath{nearest: globalRoot(), path: canonicalize(path)}
	return tp.resolve()
}

func (tp TopicPath) isResolved() bool {
	return len(tp.nearest.Path()) >= len(tp.path)
}

func (tp TopicPath) unresolved() string {
	if tp.isResolved() {
		return ""
	}
	nearestPath := tp.nearest.Path()
	if len(nearestPath) == 0 {
		return tp.path
	}
	return tp.path[len(nearestPath)+1:]
}

func (tp TopicPath) resolve() TopicPath {
	view := trie.NewPathView(tp.unresolved(), tp.nearest.Separator())
	tp.nearest = tp.nearest.Nearest(view)
	return tp
}

// Realize creates any remaining missing node along the path and
// returns the now fully-resolved TopicPath.
func (tp TopicPath) Realize() TopicPath {
	view := trie.NewPathView(tp.unresolved(), tp.nearest.Separator())
	tp.nearest = tp.nearest.Get(view)
	return tp
}

// ToTopic forces resolution and returns the eager Topic handle.
func (tp TopicPath) ToTopic() Topic { return Topic{node: tp.Realize().nearest} }

func (tp TopicPath) Path() string { return tp.path }

func (tp TopicPath) ID() string {
	return trie.NewPathView(tp.path, defaultSeparator).LastID()
}

// Parent returns the path one segment up. For the root path, Parent
// returns the root itself rather than a null handle -- the root has
// no segment to remove.
func (tp TopicPath) Parent() TopicPath {
	parentStr := canonicalize(trie.NewPathView(tp.path, defaultSeparator).Parent())
	if parentStr == tp.path {
		return tp
	}
	nearest := tp.nearest
	for len(nearest.Path()) > len(parentStr) {
		nearest = nearest.Parent()
	}
	return TopicPath{nearest: nearest, path: parentStr}
}

func (tp TopicPath) Subscribe(fn SubscriberFunc, ignore flags.Filtering, handling flags.Handling) *Subscription {
	return tp.ToTopic().Subscribe(fn, ignore, handling)
}

func (tp TopicPath) Serve(fn ServiceFunc, ignore flags.Filtering, handling flags.Handling) (*Service, error) {
	return tp.ToTopic().Serve(fn, ignore, handling)
}

func (tp TopicPath) Publish(st status.Status, value any, filtering flags.Filtering, handling flags.Handling) {
	tp.ToTopic().Publish(st, value, filtering, handling)
}

func (tp TopicPath) Issue(m method.Method, value any, client Client, filtering flags.Filtering, handling flags.Handling) *Request {
	return tp.ToTopic().Issue(m, value, client, filtering, handling)
}
