package handle

import (
	"sync/atomic"
)

// cell is the shared control block: payload, live count, finalizer.
type cell[T any] struct {
	count    atomic.Int64
	val      T
	finalize func(T)
}

// Shared is a reference-counted handle. Clone hands out additional
// handles to the same payload; each handle may release at most once,
// and the finalizer runs exactly once when the last handle releases.
type Shared[T any] struct {
	released atomic.Uintptr
	c        *cell[T]
}

// NewShared creates the first handle for v with a use count of 1.
// finalize, if non-nil, runs when the last handle is released.
func NewShared[T any](v T, finalize func(T)) *Shared[T] {
	c := &cell[T]{val: v, finalize: finalize}
	c.count.Store(1)
	return &Shared[T]{c: c}
}

// Clone returns a new handle to the same payload and increments the
// use count. Cloning a released handle yields a released handle.
func (s *Shared[T]) Clone() *Shared[T] {
	if s.released.Load() != 0 {
		out := &Shared[T]{c: s.c}
		out.released.Store(1)
		return out
	}
	s.c.count.Add(1)
	return &Shared[T]{c: s.c}
}

// Get borrows the payload. Returns (zero, false) once this handle has
// been released.
func (s *Shared[T]) Get() (T, bool) {
	if s.released.Load() != 0 {
		var zero T
		return zero, false
	}
	return s.c.val, true
}

// UseCount returns the number of live handles to the payload.
func (s *Shared[T]) UseCount() int {
	return int(s.c.count.Load())
}

// Release drops this handle's reference. Releasing the same handle
// twice is a no-op. Returns true when this release was the last one
// and the finalizer (if any) ran.
func (s *Shared[T]) Release() bool {
	if s.released.Add(1) != 1 {
		return false
	}
	if s.c.count.Add(-1) != 0 {
		return false
	}
	if s.c.finalize != nil {
		s.c.finalize(s.c.val)
	}
	return true
}

// Promote converts a Unique handle into the first Shared handle for
// the same payload, emptying the Unique. Returns ErrMoved when the
// Unique no longer owns its payload.
func Promote[T any](u *Unique[T], finalize func(T)) (*Shared[T], error) {
	v, ok := u.Release()
	if !ok {
		return nil, ErrMoved
	}
	return NewShared(v, finalize), nil
}
