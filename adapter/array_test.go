// SPDX-License-Identifier: MIT

package adapter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvnum/adapter"
	"github.com/katalvlaran/lvnum/matrix"
)

func TestVec_Introspection(t *testing.T) {
	v := adapter.Vec{1, 2, 3}
	assert.Equal(t, 1, v.Dims())
	assert.Equal(t, 3, v.Len())
	assert.Equal(t, []int{3}, v.Shape())

	vals := v.Values()
	vals[0] = 99
	assert.Equal(t, 1.0, v[0], "Values must return a copy")
}

func TestVec_Sub(t *testing.T) {
	d, err := adapter.Vec{5, 7}.Sub(adapter.Vec{1, 2})
	require.NoError(t, err)
	assert.Equal(t, adapter.Vec{4, 5}, d)

	_, err = adapter.Vec{1}.Sub(adapter.Vec{1, 2})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = adapter.Vec{1}.Sub(adapter.Grid{{1}})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestGrid_Introspection(t *testing.T) {
	g := adapter.Grid{{1, 2, 3}, {4, 5, 6}}
	assert.Equal(t, 2, g.Dims())
	assert.Equal(t, 2, g.Len())
	assert.Equal(t, []int{2, 3}, g.Shape())
	assert.Equal(t, []float64{1, 2, 3, 4, 5, 6}, g.Values())

	assert.Equal(t, []int{0, 0}, adapter.Grid{}.Shape())
	assert.Equal(t, []float64{}, adapter.Grid{}.Values())
}

func TestGrid_Sub(t *testing.T) {
	d, err := adapter.Grid{{5, 5}, {5, 5}}.Sub(adapter.Grid{{1, 2}, {3, 4}})
	require.NoError(t, err)
	assert.Equal(t, adapter.Grid{{4, 3}, {2, 1}}, d)

	_, err = adapter.Grid{{1, 2}}.Sub(adapter.Grid{{1}, {2}})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = adapter.Grid{{1, 2}, {3}}.Sub(adapter.Grid{{1, 2}, {3, 4}})
	assert.ErrorIs(t, err, matrix.ErrBadShape)

	_, err = adapter.Grid{{1}}.Sub(adapter.Vec{1})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}
