// Package vector implements a fixed-size, value-semantic numeric vector
// with element-wise arithmetic and strict dimension checking.
//
// A Vector's dimension is fixed at construction and never changes. All
// arithmetic is pure: operands are never mutated and every operation
// either returns a fully-formed result vector or a *DimError - there is
// no partial result.
//
// # Dimension Checking
//
// Dimensions are recorded at construction and checked at each call site.
// Combining vectors of unequal dimension fails with code SizeMismatch;
// constructing from a slice whose length disagrees with the declared
// dimension fails the same way.
//
// # Element Access
//
// At and Set are checked accessors: an index outside [0, Dim()) fails
// with code OutOfRange rather than panicking. MustAt is the documented
// panicking convenience for code that has already validated its indices.
//
// # Rendering
//
// String renders "[e0, e1, ..., eN-1]" with comma-and-space separators.
// Floats use the shortest representation that round-trips, so
// Of(0.1, 0.2, 0.3).String() is exactly "[0.1, 0.2, 0.3]". A
// zero-dimension vector renders "[]".
package vector
