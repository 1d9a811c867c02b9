// Package coopbus implements an in-process message bus built on a
// concurrent, path-addressed resource trie. Topics publish events to
// subscribers and issue requests to services; both routing styles
// walk the same trie, and a topic's identity is nothing more than its
// place in that trie.
//
// The bus is a library, not a service: it owns no goroutines, no
// scheduler and no transport. Callers drive everything by calling
// into a Topic or TopicPath from whatever goroutines they already
// have.
package coopbus
