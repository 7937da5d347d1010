// Package matrix: symmetric eigensolver. Classical Jacobi rotations with a
// deterministic pivot scan; used to verify positive semi-definiteness of
// propagated covariance matrices.

package matrix

import (
	"fmt"
	"math"
)

// Default parameters for Eigen; adequate for the small covariance matrices
// this package targets (n up to a few hundred).
const (
	// DefaultEigenTol is the convergence threshold on the largest
	// off-diagonal magnitude.
	DefaultEigenTol = 1e-12

	// DefaultEigenMaxIter caps the number of Jacobi rotations.
	DefaultEigenMaxIter = 10000
)

const opEigen = "Eigen"

// Eigen computes eigenvalues and eigenvectors of a symmetric matrix via
// classical Jacobi rotations.
//
// The pivot (p,q) with the largest |A[p,q]| is selected in a fixed i→j scan
// and annihilated by a plane rotation; the loop stops once the largest
// off-diagonal magnitude drops below tol, or fails with ErrEigenFailed
// after maxIter rotations. tol <= 0 and maxIter <= 0 select the defaults.
//
// Returns the eigenvalues (diagonal of the rotated matrix, unsorted) and
// the orthogonal matrix whose columns are the matching eigenvectors.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch (non-square), ErrAsymmetry
// (input not symmetric within tol), ErrEigenFailed (no convergence).
// Complexity: Time O(iter * n²), Space O(n²).
func Eigen(m *Dense, tol float64, maxIter int) ([]float64, *Dense, error) {
	if tol <= 0 {
		tol = DefaultEigenTol
	}
	if maxIter <= 0 {
		maxIter = DefaultEigenMaxIter
	}
	if err := ValidateSymmetric(m, tol); err != nil {
		return nil, nil, opErrorf(opEigen, err)
	}

	// Work on a copy; accumulate rotations into vecs starting from identity.
	n := m.r
	a := m.Clone()
	vecs, err := Identity(n)
	if err != nil {
		return nil, nil, opErrorf(opEigen, err)
	}

	var (
		p, q        int     // pivot indices (row p < column q)
		off, maxOff float64 // off-diagonal magnitudes
		app, aqq    float64 // diagonal entries at the pivot
		apq         float64 // pivot entry A[p,q]
		theta, t    float64 // rotation parameters
		c, s        float64 // cosine and sine of the rotation
		aip, aiq    float64 // temporaries for row/column updates
		vip, viq    float64
	)
	for iter := 0; iter < maxIter; iter++ {
		// Find the pivot maximizing |A[p,q]| over the strict upper triangle.
		maxOff = 0
		for i := 0; i < n; i++ {
			base := i * n
			for j := i + 1; j < n; j++ {
				off = math.Abs(a.data[base+j])
				if off > maxOff {
					maxOff, p, q = off, i, j
				}
			}
		}
		if maxOff < tol {
			break // converged
		}

		// Rotation parameters from A[p,p], A[q,q], A[p,q].
		app = a.data[p*n+p]
		aqq = a.data[q*n+q]
		apq = a.data[p*n+q]
		theta = (aqq - app) / (2 * apq)
		t = math.Copysign(1.0/(math.Abs(theta)+math.Hypot(theta, 1)), theta)
		c = 1.0 / math.Sqrt(t*t+1)
		s = t * c

		// Apply the rotation to rows/columns p and q of A, keeping symmetry.
		for i := 0; i < n; i++ {
			if i == p || i == q {
				continue
			}
			aip = a.data[i*n+p]
			aiq = a.data[i*n+q]
			a.data[i*n+p], a.data[p*n+i] = c*aip-s*aiq, c*aip-s*aiq
			a.data[i*n+q], a.data[q*n+i] = s*aip+c*aiq, s*aip+c*aiq
		}
		a.data[p*n+p] = c*c*app - 2*c*s*apq + s*s*aqq
		a.data[q*n+q] = s*s*app + 2*c*s*apq + c*c*aqq
		a.data[p*n+q], a.data[q*n+p] = 0, 0

		// Accumulate the rotation into the eigenvector matrix.
		for i := 0; i < n; i++ {
			vip = vecs.data[i*n+p]
			viq = vecs.data[i*n+q]
			vecs.data[i*n+p] = c*vip - s*viq
			vecs.data[i*n+q] = s*vip + c*viq
		}
	}

	// Final convergence check.
	maxOff = 0
	for i := 0; i < n; i++ {
		base := i * n
		for j := i + 1; j < n; j++ {
			off = math.Abs(a.data[base+j])
			if off > maxOff {
				maxOff = off
			}
		}
	}
	if maxOff >= tol {
		return nil, nil, opErrorf(opEigen, fmt.Errorf("after %d rotations: %w", maxIter, ErrEigenFailed))
	}

	// Eigenvalues sit on the diagonal of the rotated matrix.
	eigs := make([]float64, n)
	for i := 0; i < n; i++ {
		eigs[i] = a.data[i*n+i]
	}

	return eigs, vecs, nil
}

// IsPositiveSemiDefinite reports whether the symmetric matrix m has all
// eigenvalues >= -tol. tol absorbs the floating-point noise a congruence
// transform introduces around zero eigenvalues; tol <= 0 selects
// DefaultEigenTol.
//
// Errors: as Eigen (nil, non-square, asymmetric, non-convergence).
// Complexity: dominated by Eigen.
func IsPositiveSemiDefinite(m *Dense, tol float64) (bool, error) {
	if tol <= 0 {
		tol = DefaultEigenTol
	}

	eigs, _, err := Eigen(m, 0, 0)
	if err != nil {
		return false, err
	}
	for _, ev := range eigs {
		if ev < -tol {
			return false, nil
		}
	}

	return true, nil
}
