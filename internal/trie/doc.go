// Package trie implements the concurrent, path-keyed resource tree
// that the bus is built on. Every Node owns a strong reference to its
// parent (children keep their ancestors alive, not the reverse) and a
// weak-keyed table of children (coop.Table), so a subtree with no
// remaining strong references outside the trie simply stops existing
// the next time anyone looks for it.
package trie
