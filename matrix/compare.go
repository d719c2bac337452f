// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math"
)

const opAllClose = "AllClose"

// Equal reports whether a and b have the same shape and bitwise-equal
// elements (NaN never equals NaN). Nil matrices are equal only to each other.
//
// Complexity: O(r*c).
func Equal(a, b Matrix) bool {
	aNil, bNil := ValidateNotNil(a) != nil, ValidateNotNil(b) != nil
	if aNil || bNil {
		return aNil && bNil
	}
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return false
	}
	if da, ok := a.(*Dense); ok {
		if db, ok := b.(*Dense); ok {
			for k := range da.data {
				if da.data[k] != db.data[k] {
					return false
				}
			}

			return true
		}
	}
	for i := 0; i < a.Rows(); i++ {
		for j := 0; j < a.Cols(); j++ {
			av, errA := a.At(i, j)
			bv, errB := b.At(i, j)
			if errA != nil || errB != nil || av != bv {
				return false
			}
		}
	}

	return true
}

// AllClose reports whether |a[i,j]-b[i,j]| <= atol + rtol*|b[i,j]| for every
// element. It mirrors numpy.allclose semantics.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch; ErrNaNInf for non-finite or negative tolerances.
//
// Complexity: O(r*c).
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	if isNonFinite(rtol) || isNonFinite(atol) || rtol < 0 || atol < 0 {
		return false, matrixErrorf(opAllClose, fmt.Errorf("rtol=%g atol=%g: %w", rtol, atol, ErrNaNInf))
	}
	for i := 0; i < a.Rows(); i++ {
		for j := 0; j < a.Cols(); j++ {
			av, err := a.At(i, j)
			if err != nil {
				return false, matrixErrorf(opAllClose, err)
			}
			bv, err := b.At(i, j)
			if err != nil {
				return false, matrixErrorf(opAllClose, err)
			}
			if math.Abs(av-bv) > atol+rtol*math.Abs(bv) {
				return false, nil
			}
		}
	}

	return true, nil
}

// AllCloseDefault is AllClose with rtol=0 and atol taken from opts
// (DefaultEpsilon unless WithEpsilon is given).
func AllCloseDefault(a, b Matrix, opts ...Option) (bool, error) {
	o := gatherOptions(opts...)

	return AllClose(a, b, 0, o.eps)
}
