// SPDX-License-Identifier: MIT

// Package matrix: convenience constructors and thin facades over the kernels.
// Nothing here adds semantics; every function forwards to one kernel.
package matrix

// NewZeros is an explicit alias of NewDense for readability at call sites.
func NewZeros(rows, cols int, opts ...Option) (*Dense, error) {
	return NewDense(rows, cols, opts...)
}

// NewIdentity returns the n×n identity matrix.
// Errors: ErrInvalidDimensions for n < 0.
func NewIdentity(n int, opts ...Option) (*Dense, error) {
	m, err := NewDense(n, n, opts...)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}

	return m, nil
}

// CloneMatrix returns a deep copy of m, or nil if m is nil.
func CloneMatrix(m Matrix) Matrix {
	if ValidateNotNil(m) != nil {
		return nil
	}

	return m.Clone()
}

// ZerosLike allocates a zero matrix with the same shape (and policy) as m.
func ZerosLike(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, err
	}

	return newDense(m.Rows(), m.Cols(), policyOf(m)), nil
}

// Sum is a readable alias for Add.
func Sum(a, b Matrix) (*Dense, error) { return Add(a, b) }

// Diff is a readable alias for Sub.
func Diff(a, b Matrix) (*Dense, error) { return Sub(a, b) }

// Product is a readable alias for Mul.
func Product(a, b Matrix) (*Dense, error) { return Mul(a, b) }

// ScaleBy is a readable alias for Scale.
func ScaleBy(m Matrix, alpha float64) (*Dense, error) { return Scale(m, alpha) }

// T is a short alias for Transpose.
func T(m Matrix) (*Dense, error) { return Transpose(m) }
