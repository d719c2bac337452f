// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level errors used across the matrix package.
// All kernels MUST return these sentinels (optionally wrapped with an operation
// tag) and tests MUST check them via errors.Is / errors.As. No public function
// panics on user-triggered error conditions.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Context is attached at the detection site with
// fmt.Errorf("<op>: %w", ErrX); callers still use errors.Is to match.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil -> dimensions -> shape/index -> numeric policy.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are negative.
	// Zero rows or zero columns are legal (0×0, 0×k, k×0).
	ErrInvalidDimensions = errors.New("matrix: dimensions must be >= 0")

	// ErrBadShape is returned when input data cannot form a rectangular matrix
	// (ragged nested rows, flat data whose length != rows*cols, or an external
	// array of the wrong dimensionality).
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., Add/Sub different shapes, Mul where a.Cols != b.Rows, or vectors
	// of different length.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrLengthMismatch is the vector flavour of ErrDimensionMismatch.
	// It is only ever returned inside a *LengthMismatchError.
	ErrLengthMismatch = errors.New("matrix: vector length mismatch")

	// ErrNaNInf signals a NaN or ±Inf value was encountered where finite values
	// are required by the numeric policy (construction, Set, Scale).
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrAsymmetry signals that a matrix expected to be symmetric violated
	// symmetry beyond the given tolerance.
	ErrAsymmetry = errors.New("matrix: matrix is not symmetric within tolerance")

	// ErrSingular is returned when a zero pivot is met during LU or Inverse.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrEigenFailed indicates the Jacobi eigen solver did not converge
	// within its iteration cap.
	ErrEigenFailed = errors.New("matrix: eigen decomposition failed")
)

// ErrIndexOutOfBounds historically named the same condition as ErrOutOfRange.
// Keep it as an alias so errors.Is(err, ErrIndexOutOfBounds) remains true.
var ErrIndexOutOfBounds = ErrOutOfRange // Deprecated: use ErrOutOfRange.

// LengthMismatchError reports two vectors of different length.
//
// It matches both ErrLengthMismatch and ErrDimensionMismatch under errors.Is,
// so callers that only care about "operands do not line up" keep working.
type LengthMismatchError struct {
	Expected int // length of the left operand
	Actual   int // length of the right operand
}

// Error implements error.
func (e *LengthMismatchError) Error() string {
	return fmt.Sprintf("%s: expected %d, got %d", ErrLengthMismatch.Error(), e.Expected, e.Actual)
}

// Is reports whether target is one of the sentinels this error specializes.
func (e *LengthMismatchError) Is(target error) bool {
	return target == ErrLengthMismatch || target == ErrDimensionMismatch
}

// newLengthMismatch builds a *LengthMismatchError for lengths a and b.
func newLengthMismatch(a, b int) error {
	return &LengthMismatchError{Expected: a, Actual: b}
}
