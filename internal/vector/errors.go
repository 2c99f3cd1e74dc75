package vector

import (
	"errors"
	"fmt"
)

// ErrCode categorizes vector errors.
type ErrCode string

const (
	// SizeMismatch indicates two vectors of unequal dimension were
	// combined, or a literal's length disagreed with the declared
	// dimension.
	SizeMismatch ErrCode = "SIZE_MISMATCH"

	// OutOfRange indicates an element index outside [0, Dim()).
	OutOfRange ErrCode = "OUT_OF_RANGE"

	// BadLiteral indicates a vector literal that could not be parsed.
	BadLiteral ErrCode = "BAD_LITERAL"
)

// DimError is the single error type produced by this package.
// It carries structured fields for diagnostics; match with errors.As
// or the IsSizeMismatch / IsOutOfRange helpers.
type DimError struct {
	// Code identifies the error category.
	Code ErrCode

	// Op names the failing operation ("add", "hadamard", "from_slice", ...).
	Op string

	// Want and Got are the conflicting dimensions (SizeMismatch).
	Want int
	Got  int

	// Index is the offending index (OutOfRange).
	Index int

	// Detail is additional context (BadLiteral).
	Detail string
}

// Error implements the error interface.
func (e *DimError) Error() string {
	switch e.Code {
	case SizeMismatch:
		return fmt.Sprintf("%s: %s: dimension mismatch (want %d, got %d)", e.Code, e.Op, e.Want, e.Got)
	case OutOfRange:
		return fmt.Sprintf("%s: %s: index %d outside [0, %d)", e.Code, e.Op, e.Index, e.Want)
	case BadLiteral:
		return fmt.Sprintf("%s: %s: %s", e.Code, e.Op, e.Detail)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Op)
}

func sizeMismatch(op string, want, got int) *DimError {
	return &DimError{Code: SizeMismatch, Op: op, Want: want, Got: got}
}

func outOfRange(op string, index, dim int) *DimError {
	return &DimError{Code: OutOfRange, Op: op, Index: index, Want: dim}
}

func badLiteral(op, detail string) *DimError {
	return &DimError{Code: BadLiteral, Op: op, Detail: detail}
}

// IsSizeMismatch reports whether err is a *DimError with code SizeMismatch.
func IsSizeMismatch(err error) bool {
	var de *DimError
	return errors.As(err, &de) && de.Code == SizeMismatch
}

// IsOutOfRange reports whether err is a *DimError with code OutOfRange.
func IsOutOfRange(err error) bool {
	var de *DimError
	return errors.As(err, &de) && de.Code == OutOfRange
}
