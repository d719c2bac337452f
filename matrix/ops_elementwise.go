// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Broadcast micro-kernels shared by the statistics transforms.
//   - One deterministic i→j pass each; *Dense fast path, At fallback.
//   - Results are fresh *Dense values; inputs are never modified.

package matrix

import "fmt"

const (
	opEwSubCols   = "ewBroadcastSubCols"
	opEwScaleRows = "ewScaleRows"
)

// ewBroadcastSubCols returns X[i,j] - v[j]. len(v) must equal X.Cols().
// Complexity: O(r*c).
func ewBroadcastSubCols(X Matrix, v []float64) (*Dense, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf(opEwSubCols, err)
	}
	r, c := X.Rows(), X.Cols()
	if err := ValidateVecLen(v, c); err != nil {
		return nil, matrixErrorf(opEwSubCols, err)
	}
	out := newDense(r, c, policyOf(X))

	if d, ok := X.(*Dense); ok {
		for i := 0; i < r; i++ {
			base := i * c
			for j := 0; j < c; j++ {
				out.data[base+j] = d.data[base+j] - v[j]
			}
		}

		return out.finish(opEwSubCols)
	}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			x, err := X.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opEwSubCols, err)
			}
			out.data[i*c+j] = x - v[j]
		}
	}

	return out.finish(opEwSubCols)
}

// ewScaleRows returns X[i,j] * s[i]. len(s) must equal X.Rows().
// Complexity: O(r*c).
func ewScaleRows(X Matrix, s []float64) (*Dense, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf(opEwScaleRows, err)
	}
	r, c := X.Rows(), X.Cols()
	if len(s) != r {
		return nil, matrixErrorf(opEwScaleRows,
			fmt.Errorf("%d scales for %d rows: %w", len(s), r, ErrDimensionMismatch))
	}
	out := newDense(r, c, policyOf(X))

	if d, ok := X.(*Dense); ok {
		for i := 0; i < r; i++ {
			base := i * c
			for j := 0; j < c; j++ {
				out.data[base+j] = d.data[base+j] * s[i]
			}
		}

		return out.finish(opEwScaleRows)
	}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			x, err := X.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opEwScaleRows, err)
			}
			out.data[i*c+j] = x * s[i]
		}
	}

	return out.finish(opEwScaleRows)
}
