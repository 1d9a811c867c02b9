package coop

import "sync/atomic"

// Guard arbitrates between visitors reading a cooperative container's
// slot and an exclusive writer replacing it in place. It never blocks
// on an OS lock; every state transition is a single atomic add or a
// short CAS loop.
//
// The state word packs three things into one int32:
//   - a high "open" bit, set while the slot accepts ordinary visits
//   - a pair of high bits ("locked"), set while a writer owns the slot
//     exclusively; as a signed int32 this makes the word negative
//   - the remaining bits count active visitors/joiners
//
// The zero value starts closed with no visitors. Call Reopen to admit
// visitors; this is done once by Slot/Pool when a slot is constructed.
type Guard struct {
	x atomic.Int32
}

const (
	flagOpen   int32 = 1 << 30
	flagLocked int32 = -1 << 30
)

// Visit registers as a visitor only if the guard is open. Call Leave
// when done. Visit is the hot path: no visitor ever blocks on another.
func (g *Guard) Visit() bool {
	if g.x.Add(1) >= flagOpen+1 {
		return true
	}
	g.Leave()
	return false
}

// Join registers as a visitor if the guard already has at least one
// other visitor, open or closed. Used to piggyback on an in-flight
// visit without racing a concurrent close.
func (g *Guard) Join() bool {
	if g.x.Add(1)&^flagOpen >= 2 {
		return true
	}
	g.Leave()
	return false
}

// Enter registers as a visitor unless the guard is locked. Unlike
// Visit, it succeeds even when the guard is merely closed.
func (g *Guard) Enter() bool {
	if g.x.Add(1) >= 1 {
		return true
	}
	g.Leave()
	return false
}

// Leave releases a visit registered by Visit, Join or Enter.
func (g *Guard) Leave() { g.x.Add(-1) }

// Close stops the guard from admitting new Visit calls. Existing
// visitors are unaffected.
func (g *Guard) Close() {
	for {
		old := g.x.Load()
		next := old &^ flagOpen
		if g.x.CompareAndSwap(old, next) {
			return
		}
	}
}

// Reopen resumes admitting Visit calls. Returns true if the guard had
// at least one visitor at the moment it reopened.
func (g *Guard) Reopen() bool {
	for {
		old := g.x.Load()
		next := old | flagOpen
		if g.x.CompareAndSwap(old, next) {
			return old&^flagOpen > 0
		}
	}
}

// TryLock acquires exclusive ownership of the guard. It only succeeds
// when the guard is closed and has zero visitors; callers typically
// Close, drain, then TryLock.
func (g *Guard) TryLock() bool {
	return g.x.CompareAndSwap(0, flagLocked)
}

// Unlock releases exclusive ownership acquired by TryLock.
func (g *Guard) Unlock() {
	for {
		old := g.x.Load()
		next := old &^ flagLocked
		if g.x.CompareAndSwap(old, next) {
			return
		}
	}
}

func (g *Guard) IsOpen() bool   { return g.x.Load() >= flagOpen }
func (g *Guard) IsLocked() bool { return g.x.Load() < 0 }

// Visitors reports the current visitor count, ignoring the open bit.
func (g *Guard) Visitors() int32 { return g.x.Load() &^ flagOpen }
