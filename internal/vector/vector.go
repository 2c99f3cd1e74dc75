package vector

import (
	"fmt"
	"strings"
)

// Number constrains the element types a Vector can hold.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Vector is a fixed-dimension numeric vector with value semantics.
// The dimension is set at construction and is immutable for the
// lifetime of the value. The zero Vector has dimension 0.
type Vector[T Number] struct {
	elems []T
}

// Zero returns a vector of the given dimension with all elements
// zero-valued. Panics if dim is negative (a programmer error, like a
// negative length passed to make).
func Zero[T Number](dim int) Vector[T] {
	if dim < 0 {
		panic(fmt.Sprintf("vector: negative dimension %d", dim))
	}
	return Vector[T]{elems: make([]T, dim)}
}

// FromSlice constructs a vector of the declared dimension from elems.
// Fails with SizeMismatch when len(elems) != dim. The input slice is
// copied; the returned vector never aliases it.
func FromSlice[T Number](dim int, elems []T) (Vector[T], error) {
	if dim < 0 {
		return Vector[T]{}, sizeMismatch("from_slice", dim, len(elems))
	}
	if len(elems) != dim {
		return Vector[T]{}, sizeMismatch("from_slice", dim, len(elems))
	}
	out := make([]T, dim)
	copy(out, elems)
	return Vector[T]{elems: out}, nil
}

// Of constructs a vector whose dimension is the number of literal
// elements supplied. It cannot fail: the dimension is inferred.
func Of[T Number](elems ...T) Vector[T] {
	out := make([]T, len(elems))
	copy(out, elems)
	return Vector[T]{elems: out}
}

// Dim returns the vector's dimension.
func (v Vector[T]) Dim() int { return len(v.elems) }

// At returns the i-th element. Fails with OutOfRange when i is outside
// [0, Dim()).
func (v Vector[T]) At(i int) (T, error) {
	if i < 0 || i >= len(v.elems) {
		var zero T
		return zero, outOfRange("at", i, len(v.elems))
	}
	return v.elems[i], nil
}

// MustAt returns the i-th element and panics when i is out of range.
// Intended for code that has already validated its indices.
func (v Vector[T]) MustAt(i int) T {
	e, err := v.At(i)
	if err != nil {
		panic(err)
	}
	return e
}

// Set replaces the i-th element. Fails with OutOfRange when i is
// outside [0, Dim()). The dimension never changes.
func (v Vector[T]) Set(i int, val T) error {
	if i < 0 || i >= len(v.elems) {
		return outOfRange("set", i, len(v.elems))
	}
	v.elems[i] = val
	return nil
}

// Clone returns an independent copy. Mutating the clone via Set never
// affects the original.
func (v Vector[T]) Clone() Vector[T] {
	out := make([]T, len(v.elems))
	copy(out, v.elems)
	return Vector[T]{elems: out}
}

// Elems returns a copy of the element slice.
func (v Vector[T]) Elems() []T {
	out := make([]T, len(v.elems))
	copy(out, v.elems)
	return out
}

// Add returns the element-wise sum of v and other. Both operands must
// have the same dimension; otherwise Add fails with SizeMismatch and
// no partial result is produced. Neither operand is mutated.
func (v Vector[T]) Add(other Vector[T]) (Vector[T], error) {
	if len(v.elems) != len(other.elems) {
		return Vector[T]{}, sizeMismatch("add", len(v.elems), len(other.elems))
	}
	out := make([]T, len(v.elems))
	for i := range v.elems {
		out[i] = v.elems[i] + other.elems[i]
	}
	return Vector[T]{elems: out}, nil
}

// Hadamard returns the element-wise product of v and other. No
// dot-product reduction is performed: the result is a vector of the
// same dimension, not a scalar. The dimension contract is the same
// as Add's.
func (v Vector[T]) Hadamard(other Vector[T]) (Vector[T], error) {
	if len(v.elems) != len(other.elems) {
		return Vector[T]{}, sizeMismatch("hadamard", len(v.elems), len(other.elems))
	}
	out := make([]T, len(v.elems))
	for i := range v.elems {
		out[i] = v.elems[i] * other.elems[i]
	}
	return Vector[T]{elems: out}, nil
}

// Equal reports exact element-wise equality. Vectors of different
// dimension are never equal.
func (v Vector[T]) Equal(other Vector[T]) bool {
	if len(v.elems) != len(other.elems) {
		return false
	}
	for i := range v.elems {
		if v.elems[i] != other.elems[i] {
			return false
		}
	}
	return true
}

// ApproxEqual reports element-wise equality of two float64 vectors
// within eps. Vectors of different dimension are never equal.
func ApproxEqual(a, b Vector[float64], eps float64) bool {
	if a.Dim() != b.Dim() {
		return false
	}
	for i := range a.elems {
		d := a.elems[i] - b.elems[i]
		if d < 0 {
			d = -d
		}
		if d > eps {
			return false
		}
	}
	return true
}

// String renders the vector as "[e0, e1, ..., eN-1]". Elements use
// fmt's %v convention, so floats take the shortest form that
// round-trips. A zero-dimension vector renders "[]".
func (v Vector[T]) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, e := range v.elems {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%v", e)
	}
	b.WriteByte(']')
	return b.String()
}
