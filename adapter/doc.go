// Package adapter bridges external numeric-array representations and the
// dense core in package matrix.
//
// The adapter never depends on a concrete array library. Everything it needs
// is expressed by the small Array interface (dimensionality, length, shape,
// values, elementwise subtraction). Two dependency-free implementations ship
// here, Vec (1-D) and Grid (2-D); package adapter/gonumarray binds gonum.
//
// Operations:
//
//   - Normalize: v/‖v‖, returning the input unchanged for the zero vector.
//   - MatrixFromArray: exactly 2-D input → *matrix.Dense (else ErrBadShape).
//   - EuclideanDistance: ‖v1 - v2‖, unequal lengths → *LengthMismatchError.
//   - AddVectors, Dot, Norm: the core vector primitives over Array inputs.
//
// The adapter does no numerics of its own beyond composition and shape checks.
package adapter
