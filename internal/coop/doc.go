// Package coop implements cooperative containers: containers that are
// owned by their members rather than the reverse. A member publishes
// itself into a container as a weak reference; the container disappears
// from a reader's perspective the instant the member's last strong
// reference is dropped, with no finalizer and no notification back to
// the container.
//
// Guard is the wait-free state machine that arbitrates between readers
// visiting a slot and the rare writer replacing it. Slot and Pool build
// on it to give single-item and multi-item cooperative storage. Table
// is the weak-keyed equivalent for map-shaped containers such as a
// trie's child set.
package coop
