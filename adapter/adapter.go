// SPDX-License-Identifier: MIT

package adapter

import (
	"fmt"

	"github.com/katalvlaran/lvnum/matrix"
)

// Operation tags used in error wrappers.
const (
	opNormalize       = "Normalize"
	opMatrixFromArray = "MatrixFromArray"
	opDistance        = "EuclideanDistance"
	opAddVectors      = "AddVectors"
	opDot             = "Dot"
	opNorm            = "Norm"
)

// adapterErrorf wraps err with the adapter prefix and an operation tag.
func adapterErrorf(op string, err error) error {
	return fmt.Errorf("adapter: %s: %w", op, err)
}

// requireDims fails with matrix.ErrBadShape unless a is non-nil and has want dimensions.
func requireDims(a Array, want int) error {
	if a == nil {
		return fmt.Errorf("nil array: %w", matrix.ErrBadShape)
	}
	if d := a.Dims(); d != want {
		return fmt.Errorf("got %d-D array, want %d-D: %w", d, want, matrix.ErrBadShape)
	}

	return nil
}

// Normalize scales a 1-D array to unit Euclidean length.
//
// Behavior highlights:
//   - Zero-vector policy: when the norm is exactly 0 the input is returned
//     unchanged (the very same value), never divided and never an error.
//   - Otherwise the result is a fresh Vec v/‖v‖ with ‖result‖ == 1 within
//     floating-point tolerance.
//
// Errors:
//   - matrix.ErrBadShape when v is nil or not 1-D.
//
// Complexity:
//   - Time O(n), Space O(n).
func Normalize(v Array) (Array, error) {
	if err := requireDims(v, 1); err != nil {
		return nil, adapterErrorf(opNormalize, err)
	}
	u, n := matrix.NormalizeVector(v.Values())
	if n == 0 {
		return v, nil
	}

	return Vec(u), nil
}

// MatrixFromArray converts an exactly 2-D array into a *matrix.Dense.
//
// Implementation:
//   - Stage 1: require Dims() == 2.
//   - Stage 2: if the array is a RowLister hand its rows to
//     matrix.NewDenseFromRows; otherwise rebuild nested rows from
//     Shape()/Values() and do the same.
//
// Errors:
//   - matrix.ErrBadShape when the array is not 2-D, is ragged, or reports
//     a shape inconsistent with its values.
func MatrixFromArray(a Array) (*matrix.Dense, error) {
	if err := requireDims(a, 2); err != nil {
		return nil, adapterErrorf(opMatrixFromArray, err)
	}

	var rows [][]float64
	if rl, ok := a.(RowLister); ok {
		rows = rl.RowSlices()
	} else {
		shape := a.Shape()
		vals := a.Values()
		if len(shape) != 2 || len(vals) != shape[0]*shape[1] {
			return nil, adapterErrorf(opMatrixFromArray,
				fmt.Errorf("shape %v with %d values: %w", shape, len(vals), matrix.ErrBadShape))
		}
		rows = make([][]float64, shape[0])
		for i := range rows {
			rows[i] = vals[i*shape[1] : (i+1)*shape[1]]
		}
	}

	m, err := matrix.NewDenseFromRows(rows)
	if err != nil {
		return nil, adapterErrorf(opMatrixFromArray, err)
	}

	return m, nil
}

// MatrixToGrid converts a dense matrix back to the plain nested Grid form.
func MatrixToGrid(m *matrix.Dense) Grid {
	return Grid(m.ToRows())
}

// EuclideanDistance returns ‖v1 - v2‖ for two 1-D arrays of equal length.
// The difference is computed by the arrays themselves (Array.Sub) and the
// norm by the core.
//
// Errors:
//   - matrix.ErrBadShape when either input is not 1-D.
//   - *matrix.LengthMismatchError (matches matrix.ErrLengthMismatch and
//     matrix.ErrDimensionMismatch) on unequal lengths.
func EuclideanDistance(v1, v2 Array) (float64, error) {
	if err := requireDims(v1, 1); err != nil {
		return 0, adapterErrorf(opDistance, err)
	}
	if err := requireDims(v2, 1); err != nil {
		return 0, adapterErrorf(opDistance, err)
	}
	if v1.Len() != v2.Len() {
		return 0, adapterErrorf(opDistance, &matrix.LengthMismatchError{Expected: v1.Len(), Actual: v2.Len()})
	}
	diff, err := v1.Sub(v2)
	if err != nil {
		return 0, adapterErrorf(opDistance, err)
	}

	return matrix.Norm(diff.Values()), nil
}

// AddVectors adds two 1-D arrays elementwise through the core.
func AddVectors(a, b Array) (Vec, error) {
	if err := requireDims(a, 1); err != nil {
		return nil, adapterErrorf(opAddVectors, err)
	}
	if err := requireDims(b, 1); err != nil {
		return nil, adapterErrorf(opAddVectors, err)
	}
	sum, err := matrix.AddVectors(a.Values(), b.Values())
	if err != nil {
		return nil, adapterErrorf(opAddVectors, err)
	}

	return Vec(sum), nil
}

// Dot returns the inner product of two 1-D arrays.
func Dot(a, b Array) (float64, error) {
	if err := requireDims(a, 1); err != nil {
		return 0, adapterErrorf(opDot, err)
	}
	if err := requireDims(b, 1); err != nil {
		return 0, adapterErrorf(opDot, err)
	}
	d, err := matrix.Dot(a.Values(), b.Values())
	if err != nil {
		return 0, adapterErrorf(opDot, err)
	}

	return d, nil
}

// Norm returns the Euclidean norm of a 1-D array.
func Norm(v Array) (float64, error) {
	if err := requireDims(v, 1); err != nil {
		return 0, adapterErrorf(opNorm, err)
	}

	return matrix.Norm(v.Values()), nil
}
