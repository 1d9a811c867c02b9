package coop

import "weak"

// Slot is a single-item cooperative container. The container never
// owns the item: a successful Emplace returns the sole strong
// reference, and the slot keeps only a weak.Pointer. A reader that
// calls Lock sees the item for exactly as long as someone else keeps
// it alive; once the last strong reference is dropped the slot reads
// back empty without any action on the slot's part.
//
// This is the Go-native replacement for the source library's
// placement-new buffer plus weak_ptr: Go's GC and the weak package
// already give wait-free, finalizer-free weak publication, so the
// slot only needs a Guard to serialize the rare Emplace race.
type Slot[T any] struct {
	guard Guard
	ptr   weak.Pointer[T]
}

// NewSlot returns an empty, open slot.
func NewSlot[T any]() *Slot[T] {
	s := &Slot[T]{}
	s.guard.Reopen()
	return s
}

// Lock returns the current occupant, or nil if the slot is empty,
// expired, or momentarily locked by a concurrent Emplace.
func (s *Slot[T]) Lock() *T {
	if !s.guard.Enter() {
		return nil
	}
	defer s.guard.Leave()
	return s.ptr.Value()
}

// Expired reports whether the slot currently holds no live occupant.
func (s *Slot[T]) Expired() bool {
	return s.Lock() == nil
}

// Emplace installs value as the slot's new occupant and returns a
// strong pointer to it, the slot's sole caller-visible reference.
// Emplace fails and returns nil if the slot is already occupied.
func (s *Slot[T]) Emplace(value T) *T {
	if !s.Expired() {
		return nil
	}
	s.guard.Close()
	locked := s.guard.TryLock()
	if !locked {
		s.guard.Reopen()
		return nil
	}
	defer func() {
		s.guard.Unlock()
		s.guard.Reopen()
	}()

	if s.ptr.Value() != nil {
		return nil
	}
	ptr := new(T)
	*ptr = value
	s.ptr = weak.Make(ptr)
	return ptr
}

// Clear drops the slot's weak reference, regardless of whether the
// occupant is still alive elsewhere.
func (s *Slot[T]) Clear() {
	s.guard.Close()
	for !s.guard.TryLock() {
	}
	s.ptr = weak.Pointer[T]{}
	s.guard.Unlock()
	s.guard.Reopen()
}
