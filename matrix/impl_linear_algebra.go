// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on any Matrix implementation,
// including element-wise addition, subtraction, Hadamard product, scalar
// scaling, transpose, matrix multiplication and matrix-vector product.
// All functions perform strict fail-fast validation and return clear errors
// on dimension mismatches.
//
// Notes:
//   - Every kernel allocates a fresh *Dense result; operands are never mutated.
//   - Results inherit the numeric policy of the left (or only) operand when it
//     is a *Dense, else the package default.

package matrix

import "fmt"

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opMul       = "Mul"
	opTranspose = "Transpose"
	opScale     = "Scale"
	opHadamard  = "Hadamard"
	opMatVec    = "MatVec"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
//
// Complexity:
//   - Time O(1), Space O(1).
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// policyOf returns the numeric policy a result computed from m should carry.
func policyOf(m Matrix) bool {
	if d, ok := m.(*Dense); ok {
		return d.validateNaNInf
	}

	return DefaultValidateNaNInf
}

// elementwise computes out[i,j] = f(a[i,j], b[i,j]) for same-shaped operands.
// Shared by Add/Sub/Hadamard so validation, allocation and the fast path live
// in one place.
//
// Implementation:
//   - Stage 1: ValidateBinarySameShape(a, b). Allocate result Dense(rows, cols).
//   - Stage 2: Fast-path if both are *Dense - single flat loop 0..n-1.
//     Otherwise, fallback At with fixed i→j order.
//   - Stage 3: enforce the numeric policy of the result on every write.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrNaNInf (policy on, overflow).
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the new result.
func elementwise(a, b Matrix, opTag string, f func(x, y float64) float64) (*Dense, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	rows, cols := a.Rows(), a.Cols()
	res := newDense(rows, cols, policyOf(a))

	// Fast path: *Dense with *Dense → single flat loop.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for idx := range res.data {
				res.data[idx] = f(da.data[idx], db.data[idx])
			}

			return res.finish(opTag)
		}
	}

	// Fallback: interface path with fixed i→j order.
	var i, j int
	var av, bv float64
	var err error
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if av, err = a.At(i, j); err != nil {
				return nil, matrixErrorf(opTag, err)
			}
			if bv, err = b.At(i, j); err != nil {
				return nil, matrixErrorf(opTag, err)
			}
			res.data[i*cols+j] = f(av, bv)
		}
	}

	return res.finish(opTag)
}

// checkFinite scans the buffer when the finite-only policy is on.
// A non-empty buffer implies c > 0, so the offset split below is safe.
func (m *Dense) checkFinite(opTag string) error {
	if !m.validateNaNInf {
		return nil
	}
	for k, v := range m.data {
		if isNonFinite(v) {
			return matrixErrorf(opTag, denseErrorf(ctxSet, k/m.c, k%m.c, ErrNaNInf))
		}
	}

	return nil
}

// finish returns m, or nil and the policy error when m holds a non-finite value.
func (m *Dense) finish(opTag string) (*Dense, error) {
	if err := m.checkFinite(opTag); err != nil {
		return nil, err
	}

	return m, nil
}

// Add computes the element-wise sum C = A + B and returns a fresh Dense result.
//
// Behavior highlights:
//   - Strictly dimension-checked: shapes are never padded or truncated.
//   - Inputs are never mutated.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Add(a, b Matrix) (*Dense, error) {
	return elementwise(a, b, opAdd, func(x, y float64) float64 { return x + y })
}

// Sub computes the element-wise difference C = A - B and returns a fresh Dense result.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Sub(a, b Matrix) (*Dense, error) {
	return elementwise(a, b, opSub, func(x, y float64) float64 { return x - y })
}

// Hadamard computes the elementwise product (a ⊙ b) with a fresh Dense result.
// Hadamard ≠ matrix multiplication; use Mul for A×B.
func Hadamard(a, b Matrix) (*Dense, error) {
	return elementwise(a, b, opHadamard, func(x, y float64) float64 { return x * y })
}

// Scale computes alpha*M and returns a fresh Dense result.
//
// Implementation:
//   - Stage 1: ValidateNotNil(m); under the numeric policy also reject a
//     non-finite alpha.
//   - Stage 2: fast path over the flat buffer for *Dense, else At with i→j.
//
// Behavior highlights:
//   - Total over every shape: a 0×0 input yields another 0×0 Dense.
//   - alpha = 0 yields an explicit zero matrix with the same shape.
//
// Errors:
//   - ErrNilMatrix; ErrNaNInf only when the input carries the finite-only policy.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Scale(m Matrix, alpha float64) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	policy := policyOf(m)
	if policy {
		if err := ValidateFinite(alpha); err != nil {
			return nil, matrixErrorf(opScale, err)
		}
	}

	rows, cols := m.Rows(), m.Cols()
	res := newDense(rows, cols, policy)

	if dm, ok := m.(*Dense); ok {
		for idx, v := range dm.data {
			res.data[idx] = v * alpha
		}

		return res.finish(opScale)
	}

	var i, j int
	var v float64
	var err error
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opScale, err)
			}
			res.data[i*cols+j] = v * alpha
		}
	}

	return res.finish(opScale)
}

// Transpose returns Mᵀ as a fresh Dense with shape (cols × rows).
// Complexity: Time O(r*c), Space O(r*c).
func Transpose(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	rows, cols := m.Rows(), m.Cols()
	res := newDense(cols, rows, policyOf(m))

	if dm, ok := m.(*Dense); ok {
		for i := 0; i < rows; i++ {
			base := i * cols
			for j := 0; j < cols; j++ {
				res.data[j*rows+i] = dm.data[base+j]
			}
		}

		return res, nil
	}

	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opTranspose, err)
			}
			res.data[j*rows+i] = v
		}
	}

	return res, nil
}

// Mul performs standard matrix multiplication C = A × B (no aliasing).
//
// Implementation:
//   - Stage 1: ValidateMulCompatible (A.Cols == B.Rows).
//   - Stage 2: *Dense fast path uses i→k→j with row-major strides and skips
//     zero A[i,k]; otherwise i→j→k through At.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b Matrix) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	r, n, c := a.Rows(), a.Cols(), b.Cols()
	res := newDense(r, c, policyOf(a))

	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			var i, k, j int
			var aik float64
			for i = 0; i < r; i++ {
				rowOut := res.data[i*c : (i+1)*c]
				for k = 0; k < n; k++ {
					aik = da.data[i*n+k]
					if aik == 0 {
						continue
					}
					rowB := db.data[k*c : (k+1)*c]
					for j = 0; j < c; j++ {
						rowOut[j] += aik * rowB[j]
					}
				}
			}

			return res.finish(opMul)
		}
	}

	var i, j, k int
	var sum, av, bv float64
	var err error
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			sum = 0
			for k = 0; k < n; k++ {
				if av, err = a.At(i, k); err != nil {
					return nil, matrixErrorf(opMul, err)
				}
				if av == 0 {
					continue
				}
				if bv, err = b.At(k, j); err != nil {
					return nil, matrixErrorf(opMul, err)
				}
				sum += av * bv
			}
			res.data[i*c+j] = sum
		}
	}

	return res.finish(opMul)
}

// MatVec computes y = M·x for a vector x of length M.Cols().
//
// Errors:
//   - ErrNilMatrix; *LengthMismatchError when len(x) != M.Cols().
//
// Complexity:
//   - Time O(r*c), Space O(r).
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	rows, cols := m.Rows(), m.Cols()
	if err := ValidateVecLen(x, cols); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	y := make([]float64, rows)

	if dm, ok := m.(*Dense); ok {
		for i := 0; i < rows; i++ {
			y[i] = dot(dm.data[i*cols:(i+1)*cols], x)
		}

		return y, nil
	}

	for i := 0; i < rows; i++ {
		var sum float64
		for j := 0; j < cols; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opMatVec, err)
			}
			sum += v * x[j]
		}
		y[i] = sum
	}

	return y, nil
}
