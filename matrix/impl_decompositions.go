// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Square-matrix factorizations over any Matrix: symmetric eigen
//     decomposition (Jacobi), Doolittle LU, Householder QR and the inverse.
//
// Contract:
//   - Inputs are read once into a private *Dense working copy and never
//     mutated; every factor is a fresh *Dense carrying the input's policy.
//   - No pivoting anywhere: identical input gives identical output.
//
// Complexity:
//   - All routines are O(n³) time and O(n²) space.

package matrix

import (
	"fmt"
	"math"
	"sort"
)

const (
	opEigen   = "Eigen"
	opLU      = "LU"
	opQR      = "QR"
	opInverse = "Inverse"
)

// workingCopy returns a private *Dense with the contents of m.
// *Dense inputs are cloned; anything else is read through At in i→j order.
func workingCopy(m Matrix, opTag string) (*Dense, error) {
	if d, ok := m.(*Dense); ok {
		return d.clone(), nil
	}
	r, c := m.Rows(), m.Cols()
	w := newDense(r, c, policyOf(m))
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opTag, err)
			}
			w.data[i*c+j] = v
		}
	}

	return w, nil
}

// maxOffDiagonal returns max |A[i,j]| over i<j and its position.
// Ties keep the first hit in i→j order.
func maxOffDiagonal(a *Dense) (maxOff float64, p, q int) {
	n := a.r
	for i := 0; i < n; i++ {
		base := i * n
		for j := i + 1; j < n; j++ {
			if off := math.Abs(a.data[base+j]); off > maxOff {
				maxOff, p, q = off, i, j
			}
		}
	}

	return maxOff, p, q
}

// Eigen computes the eigenvalues and eigenvectors of a symmetric matrix by
// classical Jacobi rotations.
//
// Implementation:
//   - Stage 1: ValidateSymmetric(m, tol); copy A, set Q = I.
//   - Stage 2: while max |A[p,q]| ≥ tol and fewer than maxIter rotations,
//     zero A[p,q] with a Jacobi rotation and accumulate it into Q.
//   - Stage 3: read eigenvalues off diag(A) and sort them in descending
//     order, permuting the columns of Q to match.
//
// Returns:
//   - values: eigenvalues, largest first.
//   - vectors: n×n matrix whose column k is the unit eigenvector of values[k].
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (non-square), ErrNaNInf (tol),
//     ErrAsymmetry, ErrEigenFailed (off-diagonal still ≥ tol after maxIter).
//
// Notes:
//   - tol ≈ 1e-10..1e-12 and maxIter ≈ 100..300 suit n ≤ 128.
func Eigen(m Matrix, tol float64, maxIter int) ([]float64, *Dense, error) {
	if err := ValidateSymmetric(m, tol); err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}
	tol = math.Abs(tol)
	a, err := workingCopy(m, opEigen)
	if err != nil {
		return nil, nil, err
	}
	n := a.r
	q := newDense(n, n, a.validateNaNInf)
	for i := 0; i < n; i++ {
		q.data[i*n+i] = 1
	}

	var (
		maxOff             float64
		p, r               int // pivot (p,r), p < r
		app, arr, apr      float64
		theta, t, c, s     float64
		aip, air, qip, qir float64
	)
	for iter := 0; iter < maxIter; iter++ {
		if maxOff, p, r = maxOffDiagonal(a); maxOff < tol || maxOff == 0 {
			break
		}
		app = a.data[p*n+p]
		arr = a.data[r*n+r]
		apr = a.data[p*n+r]

		// t = sign(θ)/(|θ|+√(θ²+1)) is the smaller root, so |rotation| ≤ π/4.
		theta = (arr - app) / (2 * apr)
		t = math.Copysign(1/(math.Abs(theta)+math.Hypot(theta, 1)), theta)
		c = 1 / math.Sqrt(t*t+1)
		s = t * c

		for i := 0; i < n; i++ {
			if i == p || i == r {
				continue
			}
			aip = a.data[i*n+p]
			air = a.data[i*n+r]
			a.data[i*n+p] = c*aip - s*air
			a.data[p*n+i] = a.data[i*n+p]
			a.data[i*n+r] = s*aip + c*air
			a.data[r*n+i] = a.data[i*n+r]
		}
		a.data[p*n+p] = c*c*app - 2*c*s*apr + s*s*arr
		a.data[r*n+r] = s*s*app + 2*c*s*apr + c*c*arr
		a.data[p*n+r], a.data[r*n+p] = 0, 0

		for i := 0; i < n; i++ {
			qip = q.data[i*n+p]
			qir = q.data[i*n+r]
			q.data[i*n+p] = c*qip - s*qir
			q.data[i*n+r] = s*qip + c*qir
		}
	}
	if maxOff, _, _ = maxOffDiagonal(a); maxOff >= tol && maxOff > 0 {
		return nil, nil, matrixErrorf(opEigen,
			fmt.Errorf("max off-diagonal %g after %d rotations: %w", maxOff, maxIter, ErrEigenFailed))
	}

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(x, y int) bool {
		return a.data[order[x]*n+order[x]] > a.data[order[y]*n+order[y]]
	})

	values := make([]float64, n)
	vectors := newDense(n, n, q.validateNaNInf)
	for k, src := range order {
		values[k] = a.data[src*n+src]
		for i := 0; i < n; i++ {
			vectors.data[i*n+k] = q.data[i*n+src]
		}
	}

	return values, vectors, nil
}

// LU computes the Doolittle factorization A = L*U, L unit lower triangular
// and U upper triangular, without pivoting.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrSingular (U[i,i] == 0).
func LU(m Matrix) (*Dense, *Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}
	a, err := workingCopy(m, opLU)
	if err != nil {
		return nil, nil, err
	}
	n := a.r
	l := newDense(n, n, a.validateNaNInf)
	u := newDense(n, n, a.validateNaNInf)
	for i := 0; i < n; i++ {
		l.data[i*n+i] = 1
	}

	var sum float64
	for i := 0; i < n; i++ {
		// Row i of U.
		for j := i; j < n; j++ {
			sum = 0
			for k := 0; k < i; k++ {
				sum += l.data[i*n+k] * u.data[k*n+j]
			}
			u.data[i*n+j] = a.data[i*n+j] - sum
		}
		pivot := u.data[i*n+i]
		if pivot == 0 {
			return nil, nil, matrixErrorf(opLU, fmt.Errorf("zero pivot at %d: %w", i, ErrSingular))
		}
		// Column i of L.
		for j := i + 1; j < n; j++ {
			sum = 0
			for k := 0; k < i; k++ {
				sum += l.data[j*n+k] * u.data[k*n+i]
			}
			l.data[j*n+i] = (a.data[j*n+i] - sum) / pivot
		}
	}

	if _, err := l.finish(opLU); err != nil {
		return nil, nil, err
	}
	if _, err := u.finish(opLU); err != nil {
		return nil, nil, err
	}

	return l, u, nil
}

// Inverse computes A⁻¹ from the LU factors by solving L*U*x = e_col for
// every basis column.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrSingular,
//     ErrNaNInf (policy on and the inverse overflowed).
//
// Notes:
//   - Without pivoting a tiny U[i,i] amplifies rounding; solve with LU
//     directly when only A⁻¹*b is needed.
func Inverse(m Matrix) (*Dense, error) {
	l, u, err := LU(m)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	n := l.r
	inv := newDense(n, n, l.validateNaNInf)
	y := make([]float64, n)
	x := make([]float64, n)

	var sum float64
	for col := 0; col < n; col++ {
		// Forward: L*y = e_col.
		for i := 0; i < n; i++ {
			sum = 0
			for k := 0; k < i; k++ {
				sum += l.data[i*n+k] * y[k]
			}
			if i == col {
				y[i] = 1 - sum
			} else {
				y[i] = -sum
			}
		}
		// Backward: U*x = y. LU already rejected zero pivots.
		for i := n - 1; i >= 0; i-- {
			sum = 0
			for k := i + 1; k < n; k++ {
				sum += u.data[i*n+k] * x[k]
			}
			x[i] = (y[i] - sum) / u.data[i*n+i]
		}
		for i := 0; i < n; i++ {
			inv.data[i*n+col] = x[i]
		}
	}

	return inv.finish(opInverse)
}

// QR computes a Householder factorization A = Q*R with Q orthogonal and R
// upper triangular. Diagonal signs of R are not canonicalized.
//
// Implementation:
//   - Stage 1: copy A into R, H = I.
//   - Stage 2: for each column k build the reflector v that zeroes R[k+1:,k]
//     and apply I - 2vvᵀ/vᵀv to R and H, so R = H*A.
//   - Stage 3: Q = Hᵀ.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
func QR(m Matrix) (*Dense, *Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, nil, matrixErrorf(opQR, err)
	}
	r, err := workingCopy(m, opQR)
	if err != nil {
		return nil, nil, err
	}
	n := r.r
	h := newDense(n, n, r.validateNaNInf)
	for i := 0; i < n; i++ {
		h.data[i*n+i] = 1
	}

	v := make([]float64, n)
	var alpha, beta, tau, sum float64
	for k := 0; k < n; k++ {
		for i := 0; i < n; i++ {
			v[i] = 0
		}
		for i := k; i < n; i++ {
			v[i] = r.data[i*n+k]
		}
		norm := Norm(v[k:])
		if norm == 0 {
			continue
		}
		alpha = -math.Copysign(norm, r.data[k*n+k])
		v[k] -= alpha

		beta = dot(v[k:], v[k:])
		if beta == 0 {
			continue
		}
		tau = 2 / beta

		for j := k; j < n; j++ {
			sum = 0
			for i := k; i < n; i++ {
				sum += v[i] * r.data[i*n+j]
			}
			for i := k; i < n; i++ {
				r.data[i*n+j] -= tau * v[i] * sum
			}
		}
		for j := 0; j < n; j++ {
			sum = 0
			for i := k; i < n; i++ {
				sum += v[i] * h.data[i*n+j]
			}
			for i := k; i < n; i++ {
				h.data[i*n+j] -= tau * v[i] * sum
			}
		}
	}

	q, err := Transpose(h)
	if err != nil {
		return nil, nil, matrixErrorf(opQR, err)
	}

	return q, r, nil
}
