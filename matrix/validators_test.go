// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvnum/matrix"
	"github.com/stretchr/testify/require"
)

func TestValidateNotNil(t *testing.T) {
	require.ErrorIs(t, matrix.ValidateNotNil(nil), matrix.ErrNilMatrix)
	var typedNil *matrix.Dense
	require.ErrorIs(t, matrix.ValidateNotNil(typedNil), matrix.ErrNilMatrix)
	require.NoError(t, matrix.ValidateNotNil(MustDense(t, 0, 0)))
}

func TestValidateSameShape(t *testing.T) {
	require.NoError(t, matrix.ValidateSameShape(MustDense(t, 2, 3), MustDense(t, 2, 3)))
	require.ErrorIs(t, matrix.ValidateSameShape(MustDense(t, 2, 3), MustDense(t, 3, 3)), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateSameShape(MustDense(t, 2, 3), MustDense(t, 2, 2)), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateBinarySameShape(nil, MustDense(t, 1, 1)), matrix.ErrNilMatrix)
}

func TestValidateMulCompatible(t *testing.T) {
	require.NoError(t, matrix.ValidateMulCompatible(MustDense(t, 2, 3), MustDense(t, 3, 1)))
	require.ErrorIs(t, matrix.ValidateMulCompatible(MustDense(t, 2, 3), MustDense(t, 2, 3)), matrix.ErrDimensionMismatch)
}

func TestValidateVectors(t *testing.T) {
	require.NoError(t, matrix.ValidateVecLen([]float64{1, 2}, 2))
	require.ErrorIs(t, matrix.ValidateVecLen([]float64{1}, 2), matrix.ErrLengthMismatch)
	require.NoError(t, matrix.ValidateSameLen(nil, []float64{}))
	require.ErrorIs(t, matrix.ValidateSameLen([]float64{1}, nil), matrix.ErrDimensionMismatch)
}

func TestValidateRectangular(t *testing.T) {
	require.NoError(t, matrix.ValidateRectangular(nil))
	require.NoError(t, matrix.ValidateRectangular([][]float64{{1, 2}, {3, 4}}))
	err := matrix.ValidateRectangular([][]float64{{1, 2}, {3, 4}, {5}})
	require.ErrorIs(t, err, matrix.ErrBadShape)
	require.Contains(t, err.Error(), "row 2")
}

func TestValidateFinite(t *testing.T) {
	require.NoError(t, matrix.ValidateFinite(1))
	require.ErrorIs(t, matrix.ValidateFinite(math.NaN()), matrix.ErrNaNInf)
	require.ErrorIs(t, matrix.ValidateFinite(math.Inf(-1)), matrix.ErrNaNInf)
}

func TestValidateSquare(t *testing.T) {
	require.NoError(t, matrix.ValidateSquare(MustDense(t, 0, 0)))
	require.NoError(t, matrix.ValidateSquare(MustDense(t, 3, 3)))
	require.ErrorIs(t, matrix.ValidateSquare(nil), matrix.ErrNilMatrix)
	err := matrix.ValidateSquare(MustDense(t, 2, 3))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	require.Contains(t, err.Error(), "2x3")
}

func TestValidateSymmetric(t *testing.T) {
	near := MustRows(t, [][]float64{{1, 2}, {2 + 1e-13, 1}})
	require.NoError(t, matrix.ValidateSymmetric(near, 1e-12))
	require.NoError(t, matrix.ValidateSymmetric(near, -1e-12))
	require.NoError(t, matrix.ValidateSymmetric(hide{near}, 1e-12))

	err := matrix.ValidateSymmetric(near, 0)
	require.ErrorIs(t, err, matrix.ErrAsymmetry)
	require.Contains(t, err.Error(), "(0,1)")

	require.ErrorIs(t, matrix.ValidateSymmetric(near, math.Inf(1)), matrix.ErrNaNInf)
	require.ErrorIs(t, matrix.ValidateSymmetric(MustDense(t, 1, 2), 0), matrix.ErrDimensionMismatch)
}
