// Package matrix is the dense numeric core of lvnum.
//
// The matrix package provides:
//
//   - Dense, a row-major rows×cols matrix of float64 backed by a single flat
//     slice (element (i,j) lives at offset i*cols+j).
//   - Two constructors: NewDense(rows, cols) for a zero matrix and
//     NewDenseFromRows(nested) for a literal; ragged literals fail with
//     ErrBadShape.
//   - Bounds-checked At/Set returning ErrOutOfRange instead of panicking.
//   - Kernels Add, Sub, Hadamard, Scale, Transpose, Mul, MatVec. Binary
//     elementwise kernels are strictly dimension-checked (ErrDimensionMismatch);
//     shapes are never padded or truncated. Every kernel allocates a fresh result.
//   - Vector primitives AddVectors, SubVectors, Dot, Norm, NormalizeVector,
//     ScaleVector over []float64; unequal lengths fail with
//     *LengthMismatchError. Norm uses a scaled sum of squares, so it stays
//     finite and non-zero across the whole float64 range.
//   - Square factorizations Eigen (symmetric, Jacobi), LU, QR and Inverse,
//     all without pivoting.
//   - ToRows / RawRowMajor for lossless interop with external array types.
//
// The package has no third-party dependencies. Conversions to and from
// external array libraries live in package adapter.
//
// Quick example:
//
//	m, _ := matrix.NewDenseFromRows([][]float64{{1, 2}, {3, 4}})
//	s, _ := matrix.Add(m, m)     // [[2 4] [6 8]]
//	h, _ := matrix.Scale(s, 0.5) // back to m
//	fmt.Print(h)
package matrix
