// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Free-function vector primitives over []float64 (add, sub, dot, norm, scale).
//   - A vector is treated as an ordered sequence; no hidden padding or truncation.
//
// Determinism:
//   - Fixed 0..n-1 loops, so results are bit-for-bit reproducible for the
//     same input. Norm accumulates a scaled sum of squares and never squares
//     a raw component, so it neither overflows nor underflows for finite
//     inputs whose norm is representable.

package matrix

import "math"

const (
	opAddVectors  = "AddVectors"
	opSubVectors  = "SubVectors"
	opDot         = "Dot"
	opScaleVector = "ScaleVector"
)

// AddVectors returns a fresh slice with out[i] = a[i] + b[i].
//
// Errors:
//   - *LengthMismatchError (matches ErrDimensionMismatch) when len(a) != len(b).
//
// Complexity:
//   - Time O(n), Space O(n).
func AddVectors(a, b []float64) ([]float64, error) {
	if err := ValidateSameLen(a, b); err != nil {
		return nil, matrixErrorf(opAddVectors, err)
	}
	out := make([]float64, len(a))
	for i := range a {
		out[i] = a[i] + b[i]
	}

	return out, nil
}

// SubVectors returns a fresh slice with out[i] = a[i] - b[i].
//
// Errors:
//   - *LengthMismatchError when len(a) != len(b).
func SubVectors(a, b []float64) ([]float64, error) {
	if err := ValidateSameLen(a, b); err != nil {
		return nil, matrixErrorf(opSubVectors, err)
	}
	out := make([]float64, len(a))
	for i := range a {
		out[i] = a[i] - b[i]
	}

	return out, nil
}

// Dot returns Σ a[i]*b[i]. Empty vectors give 0.
//
// Errors:
//   - *LengthMismatchError when len(a) != len(b).
func Dot(a, b []float64) (float64, error) {
	if err := ValidateSameLen(a, b); err != nil {
		return 0, matrixErrorf(opDot, err)
	}

	return dot(a, b), nil
}

// dot is the unchecked kernel; callers guarantee len(a) == len(b).
func dot(a, b []float64) float64 {
	var sum float64
	for i := range a {
		sum += a[i] * b[i]
	}

	return sum
}

// Norm returns the Euclidean norm sqrt(Σ v[i]²). The empty vector has norm 0.
//
// Implementation:
//   - Running pair (scale, ssq) with norm = scale*sqrt(ssq), where scale is
//     the largest |v[i]| seen so far and ssq ≥ 1 the sum of (|v[i]|/scale)².
//   - A NaN component gives NaN; otherwise any ±Inf component gives +Inf.
//
// Complexity: O(n).
func Norm(v []float64) float64 {
	var (
		scale = 0.0
		ssq   = 1.0
		inf   bool
		ax, r float64
	)
	for _, x := range v {
		if x == 0 {
			continue
		}
		if math.IsNaN(x) {
			return math.NaN()
		}
		ax = math.Abs(x)
		if math.IsInf(ax, 1) {
			inf = true
			continue
		}
		if scale < ax {
			r = scale / ax
			ssq = 1 + ssq*r*r
			scale = ax
		} else {
			r = ax / scale
			ssq += r * r
		}
	}
	if inf {
		return math.Inf(1)
	}

	return scale * math.Sqrt(ssq)
}

// NormalizeVector returns a fresh slice v/‖v‖ together with ‖v‖.
// When the norm is exactly 0 the copy is returned undivided.
// Every unit-length view of a vector in this module goes through here.
//
// Complexity: Time O(n), Space O(n).
func NormalizeVector(v []float64) ([]float64, float64) {
	out := make([]float64, len(v))
	copy(out, v)
	n := Norm(v)
	if n == 0 {
		return out, 0
	}
	for i := range out {
		out[i] /= n
	}

	return out, n
}

// ScaleVector returns a fresh slice with out[i] = v[i] * alpha.
// Total for every input, including the empty vector.
func ScaleVector(v []float64, alpha float64) []float64 {
	out := make([]float64, len(v))
	for i, x := range v {
		out[i] = x * alpha
	}

	return out
}
