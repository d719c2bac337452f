// Package lvnum is a small dense linear-algebra toolkit: a row-major float64
// matrix core, vector primitives, and an adapter that accepts external
// numeric arrays.
//
// Layout:
//
//	matrix/              Dense matrix, Add/Scale/Sub/Mul/Transpose/MatVec,
//	                     Eigen/LU/QR/Inverse, vector AddVectors/Dot/Norm,
//	                     validators, options
//	adapter/             Array capability interface, Vec/Grid, Normalize,
//	                     MatrixFromArray, EuclideanDistance
//	adapter/gonumarray/  gonum mat.VecDense / mat.Dense as adapter.Array
//	batch/               parallel AddAll/ScaleAll/NormalizeAll (errgroup)
//	matrixio/            YAML / JSON / text encoding
//	config/              CLI configuration (YAML file + LVNUM_* env)
//	cmd/lvnum/           command-line front end (cobra, zerolog)
//
// Errors are sentinel values in package matrix (ErrBadShape,
// ErrDimensionMismatch, ErrOutOfRange, ErrInvalidDimensions) plus the typed
// *matrix.LengthMismatchError; every layer wraps them with %w, so callers
// match with errors.Is and errors.As.
package lvnum
