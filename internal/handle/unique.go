package handle

import (
	"errors"
	"sync/atomic"
)

// ErrMoved is returned when an operation requires a handle that still
// owns its payload but the ownership has already moved away.
var ErrMoved = errors.New("handle: ownership has moved away")

// Unique is a single-owner handle. Exactly one live Unique owns the
// payload at any time; Move and Release empty the handle they are
// called on, and an emptied handle reports false from Get.
//
// Unique must not be copied by value; pass *Unique.
type Unique[T any] struct {
	moved atomic.Uintptr
	val   T
}

// NewUnique creates an owning handle for v.
func NewUnique[T any](v T) *Unique[T] {
	return &Unique[T]{val: v}
}

// Get borrows the payload without transferring ownership.
// Returns (zero, false) if ownership has moved away.
func (u *Unique[T]) Get() (T, bool) {
	if u.moved.Load() != 0 {
		var zero T
		return zero, false
	}
	return u.val, true
}

// Valid reports whether the handle still owns its payload.
func (u *Unique[T]) Valid() bool {
	return u.moved.Load() == 0
}

// Move transfers ownership to a fresh handle and empties u.
// Moving an already-empty handle yields an empty handle.
func (u *Unique[T]) Move() *Unique[T] {
	v, ok := u.Release()
	if !ok {
		out := &Unique[T]{}
		out.moved.Store(1)
		return out
	}
	return NewUnique(v)
}

// Release gives up ownership and returns the payload. Returns
// (zero, false) if ownership had already moved away. At most one
// Release per handle ever succeeds.
func (u *Unique[T]) Release() (T, bool) {
	if u.moved.Add(1) != 1 {
		var zero T
		return zero, false
	}
	v := u.val
	var zero T
	u.val = zero
	return v, true
}

// TakeOwnership consumes the handle and invokes f with the payload.
// Returns ErrMoved if the handle was already empty; f is not called.
func TakeOwnership[T any](u *Unique[T], f func(T)) error {
	v, ok := u.Release()
	if !ok {
		return ErrMoved
	}
	f(v)
	return nil
}
