// SPDX-License-Identifier: MIT

package gonumarray

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvnum/adapter"
	"github.com/katalvlaran/lvnum/matrix"
)

// Vector is a 1-D adapter.Array backed by a *mat.VecDense.
// The zero Vector is the empty vector.
type Vector struct {
	v *mat.VecDense // nil when empty
}

// Matrix is a 2-D adapter.Array backed by a *mat.Dense.
// gonum cannot hold a zero-sized Dense, so empty shapes are tracked
// in rows/cols with m left nil.
type Matrix struct {
	m          *mat.Dense
	rows, cols int
}

// Compile-time assertions.
var (
	_ adapter.Array = Vector{}
	_ adapter.Array = Matrix{}
)

// NewVector copies data into a new gonum-backed vector.
func NewVector(data []float64) Vector {
	if len(data) == 0 {
		return Vector{}
	}
	cp := make([]float64, len(data))
	copy(cp, data)

	return Vector{v: mat.NewVecDense(len(cp), cp)}
}

// WrapVector adopts v without copying. A nil v yields the empty vector.
func WrapVector(v *mat.VecDense) Vector {
	if v == nil || v.Len() == 0 {
		return Vector{}
	}

	return Vector{v: v}
}

// Raw exposes the underlying *mat.VecDense (nil when empty).
func (a Vector) Raw() *mat.VecDense { return a.v }

// Dims implements adapter.Array.
func (a Vector) Dims() int { return 1 }

// Len implements adapter.Array.
func (a Vector) Len() int {
	if a.v == nil {
		return 0
	}

	return a.v.Len()
}

// Shape implements adapter.Array.
func (a Vector) Shape() []int { return []int{a.Len()} }

// Values implements adapter.Array.
func (a Vector) Values() []float64 {
	n := a.Len()
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		out[i] = a.v.AtVec(i)
	}

	return out
}

// Sub implements adapter.Array. Lengths are checked up front because
// gonum panics on mismatch.
func (a Vector) Sub(other adapter.Array) (adapter.Array, error) {
	if other == nil || other.Dims() != 1 {
		return nil, fmt.Errorf("gonumarray: Vector.Sub: want 1-D operand: %w", matrix.ErrDimensionMismatch)
	}
	if a.Len() != other.Len() {
		return nil, fmt.Errorf("gonumarray: Vector.Sub: %w",
			&matrix.LengthMismatchError{Expected: a.Len(), Actual: other.Len()})
	}
	if a.Len() == 0 {
		return Vector{}, nil
	}

	var rhs mat.Vector
	if ov, ok := other.(Vector); ok {
		rhs = ov.v
	} else {
		rhs = mat.NewVecDense(other.Len(), other.Values())
	}
	out := mat.NewVecDense(a.Len(), nil)
	out.SubVec(a.v, rhs)

	return Vector{v: out}, nil
}

// FromRows builds a gonum-backed matrix from nested rows.
// Ragged input fails with matrix.ErrBadShape.
func FromRows(rows [][]float64) (Matrix, error) {
	if err := matrix.ValidateRectangular(rows); err != nil {
		return Matrix{}, fmt.Errorf("gonumarray: FromRows: %w", err)
	}
	r := len(rows)
	c := 0
	if r > 0 {
		c = len(rows[0])
	}
	if r == 0 || c == 0 {
		return Matrix{rows: r, cols: c}, nil
	}

	// flatten to row order
	data := make([]float64, 0, r*c)
	for _, row := range rows {
		data = append(data, row...)
	}

	return Matrix{m: mat.NewDense(r, c, data), rows: r, cols: c}, nil
}

// WrapMatrix adopts m without copying. A nil or empty m yields a 0×0 Matrix.
func WrapMatrix(m *mat.Dense) Matrix {
	if m == nil || m.IsEmpty() {
		return Matrix{}
	}
	r, c := m.Dims()

	return Matrix{m: m, rows: r, cols: c}
}

// Raw exposes the underlying *mat.Dense (nil when empty).
func (a Matrix) Raw() *mat.Dense { return a.m }

// Dims implements adapter.Array.
func (a Matrix) Dims() int { return 2 }

// Len implements adapter.Array.
func (a Matrix) Len() int { return a.rows }

// Shape implements adapter.Array.
func (a Matrix) Shape() []int { return []int{a.rows, a.cols} }

// Values implements adapter.Array (row-major copy, stride aware).
func (a Matrix) Values() []float64 {
	out := make([]float64, 0, a.rows*a.cols)
	if a.m == nil {
		return out
	}
	for i := 0; i < a.rows; i++ {
		out = append(out, mat.Row(nil, i, a.m)...)
	}

	return out
}

// Sub implements adapter.Array. Shapes are checked up front because
// gonum panics on mismatch. A foreign operand goes through
// adapter.MatrixFromArray first, so ragged input fails with
// matrix.ErrBadShape instead of being reshaped.
func (a Matrix) Sub(other adapter.Array) (adapter.Array, error) {
	if other == nil || other.Dims() != 2 {
		return nil, fmt.Errorf("gonumarray: Matrix.Sub: want 2-D operand: %w", matrix.ErrDimensionMismatch)
	}

	var (
		rhs        mat.Matrix
		rows, cols int
	)
	if om, ok := other.(Matrix); ok {
		rhs, rows, cols = om.m, om.rows, om.cols
	} else {
		d, err := adapter.MatrixFromArray(other)
		if err != nil {
			return nil, fmt.Errorf("gonumarray: Matrix.Sub: %w", err)
		}
		rows, cols = d.Shape()
		if d.Len() > 0 {
			rhs = ToGonum(d)
		}
	}
	if rows != a.rows || cols != a.cols {
		return nil, fmt.Errorf("gonumarray: Matrix.Sub: %dx%d vs %dx%d: %w",
			a.rows, a.cols, rows, cols, matrix.ErrDimensionMismatch)
	}
	if a.m == nil {
		return Matrix{rows: a.rows, cols: a.cols}, nil
	}

	var out mat.Dense
	out.Sub(a.m, rhs)

	return Matrix{m: &out, rows: a.rows, cols: a.cols}, nil
}

// ToGonum copies a core matrix into a new *mat.Dense.
// Empty matrices map to the zero-value mat.Dense.
func ToGonum(d *matrix.Dense) *mat.Dense {
	if d == nil || d.Len() == 0 {
		return &mat.Dense{}
	}

	return mat.NewDense(d.Rows(), d.Cols(), d.RawRowMajor())
}

// FromGonum copies any gonum matrix into a new core *matrix.Dense.
// A zero-value mat.Dense reports 0×0 and converts to an empty matrix.
func FromGonum(m mat.Matrix, opts ...matrix.Option) (*matrix.Dense, error) {
	if m == nil {
		return nil, fmt.Errorf("gonumarray: FromGonum: %w", matrix.ErrNilMatrix)
	}
	r, c := m.Dims()
	data := make([]float64, 0, r*c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			data = append(data, m.At(i, j))
		}
	}

	d, err := matrix.NewDenseFromData(r, c, data, opts...)
	if err != nil {
		return nil, fmt.Errorf("gonumarray: FromGonum: %w", err)
	}

	return d, nil
}
