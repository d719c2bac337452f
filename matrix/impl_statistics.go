// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Small statistical transforms composed over the ew* micro-kernels.
//
// Exposed API:
//   - Mean(v)            -> arithmetic mean, 0 for an empty vector
//   - ColumnMeans(X)     -> per-column means
//   - CenterColumns(X)   -> (Xc, means)  // subtract per-column mean
//   - NormalizeRowsL2(X) -> (Y, norms)   // unit rows; zero rows unchanged
//
// Zero-size matrices (0×N or N×0) yield empty-shaped results, never errors.

package matrix

const (
	opColumnMeans     = "ColumnMeans"
	opCenterColumns   = "CenterColumns"
	opNormalizeRowsL2 = "NormalizeRowsL2"
)

// Mean returns the arithmetic mean of v. An empty vector has mean 0.
func Mean(v []float64) float64 {
	if len(v) == 0 {
		return 0
	}
	var s float64
	for _, x := range v {
		s += x
	}

	return s / float64(len(v))
}

// ColumnMeans returns Σ_i X[i,j] / r for every column j.
// A matrix with zero rows has all-zero means.
//
// Errors: ErrNilMatrix.
// Complexity: O(r*c).
func ColumnMeans(X Matrix) ([]float64, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf(opColumnMeans, err)
	}
	r, c := X.Rows(), X.Cols()
	means := make([]float64, c)
	if r == 0 || c == 0 {
		return means, nil
	}

	if d, ok := X.(*Dense); ok {
		for i := 0; i < r; i++ {
			base := i * c
			for j := 0; j < c; j++ {
				means[j] += d.data[base+j]
			}
		}
	} else {
		for i := 0; i < r; i++ {
			for j := 0; j < c; j++ {
				x, err := X.At(i, j)
				if err != nil {
					return nil, matrixErrorf(opColumnMeans, err)
				}
				means[j] += x
			}
		}
	}
	inv := 1.0 / float64(r)
	for j := range means {
		means[j] *= inv
	}

	return means, nil
}

// CenterColumns subtracts each column's mean, returning the centered copy and
// the means so callers can undo it.
//
// Errors: ErrNilMatrix.
// Complexity: Time O(r*c), Space O(r*c).
func CenterColumns(X Matrix) (*Dense, []float64, error) {
	means, err := ColumnMeans(X)
	if err != nil {
		return nil, nil, matrixErrorf(opCenterColumns, err)
	}
	Xc, err := ewBroadcastSubCols(X, means)
	if err != nil {
		return nil, nil, matrixErrorf(opCenterColumns, err)
	}

	return Xc, means, nil
}

// NormalizeRowsL2 scales every row to unit Euclidean length and returns the
// original row norms. Rows whose norm is exactly 0 are copied unchanged,
// the same zero policy adapter.Normalize applies to single vectors.
//
// Errors: ErrNilMatrix.
// Complexity: Time O(r*c), Space O(r*c).
func NormalizeRowsL2(X Matrix) (*Dense, []float64, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, nil, matrixErrorf(opNormalizeRowsL2, err)
	}
	r, c := X.Rows(), X.Cols()
	norms := make([]float64, r)

	if d, ok := X.(*Dense); ok {
		for i := 0; i < r; i++ {
			norms[i] = Norm(d.data[i*c : (i+1)*c])
		}
	} else {
		row := make([]float64, c)
		for i := 0; i < r; i++ {
			for j := 0; j < c; j++ {
				x, err := X.At(i, j)
				if err != nil {
					return nil, nil, matrixErrorf(opNormalizeRowsL2, err)
				}
				row[j] = x
			}
			norms[i] = Norm(row)
		}
	}

	// 1/norm for normal rows; 1 leaves degenerate rows as they are.
	scale := make([]float64, r)
	for i, n := range norms {
		if n > 0 {
			scale[i] = 1 / n
		} else {
			scale[i] = 1
		}
	}
	Y, err := ewScaleRows(X, scale)
	if err != nil {
		return nil, nil, matrixErrorf(opNormalizeRowsL2, err)
	}

	return Y, norms, nil
}
