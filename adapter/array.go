// SPDX-License-Identifier: MIT

package adapter

import (
	"fmt"

	"github.com/katalvlaran/lvnum/matrix"
)

// Array is the minimal capability set the adapter needs from an external
// numeric array: shape introspection and elementwise subtraction.
//
// Implementations must not expose their internal storage through Values;
// the adapter treats the returned slice as its own.
type Array interface {
	// Dims returns the number of dimensions (1 for vectors, 2 for matrices).
	Dims() int

	// Len returns the length of the first axis.
	Len() int

	// Shape returns the length of every axis, len(Shape()) == Dims().
	Shape() []int

	// Values returns a row-major copy of the contents.
	Values() []float64

	// Sub returns the elementwise difference receiver - other.
	// Mismatched shapes fail with an error matching matrix.ErrDimensionMismatch.
	Sub(other Array) (Array, error)
}

// RowLister is implemented by 2-D arrays that can hand out nested rows
// directly. MatrixFromArray prefers it, so ragged data reaches the core
// constructor as-is and fails there with matrix.ErrBadShape.
type RowLister interface {
	RowSlices() [][]float64
}

// Vec is a plain 1-D array backed by a []float64.
type Vec []float64

// Compile-time assertion.
var _ Array = Vec(nil)

// Dims implements Array.
func (v Vec) Dims() int { return 1 }

// Len implements Array.
func (v Vec) Len() int { return len(v) }

// Shape implements Array.
func (v Vec) Shape() []int { return []int{len(v)} }

// Values implements Array.
func (v Vec) Values() []float64 {
	out := make([]float64, len(v))
	copy(out, v)

	return out
}

// Sub implements Array. other must be 1-D with the same length.
func (v Vec) Sub(other Array) (Array, error) {
	if other == nil || other.Dims() != 1 {
		return nil, fmt.Errorf("Vec.Sub: want 1-D operand: %w", matrix.ErrDimensionMismatch)
	}
	diff, err := matrix.SubVectors(v, other.Values())
	if err != nil {
		return nil, fmt.Errorf("Vec.Sub: %w", err)
	}

	return Vec(diff), nil
}

// Grid is a plain 2-D array backed by nested rows. It may be ragged; shape
// checks happen when it is converted or subtracted.
type Grid [][]float64

// Compile-time assertions.
var (
	_ Array     = Grid(nil)
	_ RowLister = Grid(nil)
)

// Dims implements Array.
func (g Grid) Dims() int { return 2 }

// Len implements Array.
func (g Grid) Len() int { return len(g) }

// Shape implements Array. The column count is taken from the first row.
func (g Grid) Shape() []int {
	cols := 0
	if len(g) > 0 {
		cols = len(g[0])
	}

	return []int{len(g), cols}
}

// Values implements Array (row-major flatten).
func (g Grid) Values() []float64 {
	var out []float64
	for _, row := range g {
		out = append(out, row...)
	}
	if out == nil {
		out = []float64{}
	}

	return out
}

// RowSlices implements RowLister.
func (g Grid) RowSlices() [][]float64 { return g }

// Sub implements Array through the dense core, so both operands must be
// rectangular and of the same shape.
func (g Grid) Sub(other Array) (Array, error) {
	if other == nil || other.Dims() != 2 {
		return nil, fmt.Errorf("Grid.Sub: want 2-D operand: %w", matrix.ErrDimensionMismatch)
	}
	a, err := matrix.NewDenseFromRows(g)
	if err != nil {
		return nil, fmt.Errorf("Grid.Sub: %w", err)
	}
	b, err := MatrixFromArray(other)
	if err != nil {
		return nil, fmt.Errorf("Grid.Sub: %w", err)
	}
	d, err := matrix.Sub(a, b)
	if err != nil {
		return nil, fmt.Errorf("Grid.Sub: %w", err)
	}

	return Grid(d.ToRows()), nil
}
