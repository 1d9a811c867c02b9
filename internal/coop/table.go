package coop

import (
	"fmt"
	"sync"
	"weak"

	"golang.org/x/sync/singleflight"
)

// Table is a weak-keyed hash map: a cooperative container shaped like
// the source library's locking_weak_table. Values are held as
// weak.Pointer so an entry disappears on its own once the caller's
// strong reference is dropped, without Table ever being told.
//
// A sync.RWMutex guards the map itself. Find, Set, Remove and TryInsert
// hold it for one map lookup or write; FindOrCreate runs its create
// callback under the write lock, and Visit holds the read lock while
// the caller's loop body runs. FindOrCreate adds a
// singleflight.Group so concurrent misses on the same key collapse
// into a single construction instead of racing separate constructors
// against each other, which is the idiomatic Go replacement for the
// source's "shared-lock probe, then unique-lock construct" pattern.
//
// FindOrCreate keys singleflight by fmt.Sprintf("%v", key); callers
// should use Table only with keys whose %v form is unique, which
// holds for every current use (string topic segment identifiers).
type Table[K comparable, V any] struct {
	mu    sync.RWMutex
	m     map[K]weak.Pointer[V]
	group singleflight.Group
}

// NewTable returns an empty weak-keyed table.
func NewTable[K comparable, V any]() *Table[K, V] {
	return &Table[K, V]{m: make(map[K]weak.Pointer[V])}
}

// Find returns the live value for key, or nil if absent or expired.
func (t *Table[K, V]) Find(key K) *V {
	t.mu.RLock()
	w, ok := t.m[key]
	t.mu.RUnlock()
	if !ok {
		return nil
	}
	return w.Value()
}

// Set installs value under key unconditionally, replacing any prior
// entry. Reports whether the key was previously absent.
func (t *Table[K, V]) Set(key K, value *V) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	_, existed := t.m[key]
	t.m[key] = weak.Make(value)
	return !existed
}

// Remove deletes key, reporting whether it was present.
func (t *Table[K, V]) Remove(key K) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.m[key]; ok {
		delete(t.m, key)
		return true
	}
	return false
}

// TryInsert installs value under key only if the key is absent or its
// previous occupant has expired.
func (t *Table[K, V]) TryInsert(key K, value *V) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if w, ok := t.m[key]; ok && w.Value() != nil {
		return false
	}
	t.m[key] = weak.Make(value)
	return true
}

// FindOrCreate returns the live value for key, calling create exactly
// once across all concurrent callers racing to fill the same missing
// key.
func (t *Table[K, V]) FindOrCreate(key K, create func() *V) *V {
	if v := t.Find(key); v != nil {
		return v
	}

	result, _, _ := t.group.Do(fmt.Sprintf("%v", key), func() (any, error) {
		t.mu.Lock()
		defer t.mu.Unlock()
		if w, ok := t.m[key]; ok {
			if v := w.Value(); v != nil {
				return v, nil
			}
		}
		created := create()
		t.m[key] = weak.Make(created)
		return created, nil
	})
	return result.(*V)
}

// Visit ranges over every live entry, key and value. The table's read
// lock is held for the duration of the callback: mutating the table
// (Set, Remove, FindOrCreate, or a caller into a child that does the
// same) from inside the callback will deadlock.
func (t *Table[K, V]) Visit() func(yield func(K, *V) bool) {
	return func(yield func(K, *V) bool) {
		t.mu.RLock()
		defer t.mu.RUnlock()
		for k, w := range t.m {
			if v := w.Value(); v != nil {
				if !yield(k, v) {
					return
				}
			}
		}
	}
}

// Len counts live entries. O(n) and intended for diagnostics.
func (t *Table[K, V]) Len() int {
	n := 0
	for range t.Visit() {
		n++
	}
	return n
}
