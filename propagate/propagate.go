package propagate

import "github.com/katalvlaran/errorprop/matrix"

// Propagate applies the first-order covariance transform
//
//	Σy = J · Σx · Jᵀ
//
// using true matrix multiplication (two matrix products, transpose on the
// right factor). This is the delta method: J linearizes the transformation
// near the evaluation point, and the congruence transform carries the
// covariance through the linearization. If Σx is symmetric PSD, Σy is
// symmetric PSD up to floating-point rounding.
//
// jac may be rectangular (m×n) for a general linearized map; cov must be
// n×n. For the normalization Jacobian both are n×n.
//
// Errors: ErrDimensionMismatch (cov non-square or jac.Cols != cov.Rows),
// matrix.ErrNilMatrix.
// Complexity: Time O(m·n² + m²·n), Space O(m·n).
func Propagate(jac, cov *matrix.Dense) (*matrix.Dense, error) {
	out, err := matrix.Sandwich(jac, cov)
	if err != nil {
		return nil, opErrorf("Propagate", err)
	}

	return out, nil
}

// PropagateElementwise computes the ELEMENTWISE chain jac ⊙ cov ⊙ jacᵀ.
//
// This is NOT the delta method: the documented formula Σy = J·Σx·Jᵀ calls
// for matrix multiplication, and the two operations produce different
// numbers (e.g. for a diagonal Σx the elementwise chain zeroes every
// off-diagonal and drops the cross terms from the variances). It exists
// solely to reproduce, and compare against, legacy scripts that used the
// elementwise product by mistake. New code should call Propagate.
//
// Requires square jac and cov of identical shape (the elementwise chain is
// undefined otherwise).
//
// Errors: ErrDimensionMismatch, matrix.ErrNilMatrix.
// Complexity: Time O(n²), Space O(n²).
func PropagateElementwise(jac, cov *matrix.Dense) (*matrix.Dense, error) {
	const tag = "PropagateElementwise"

	jc, err := matrix.Hadamard(jac, cov)
	if err != nil {
		return nil, opErrorf(tag, err)
	}
	jt, err := matrix.Transpose(jac)
	if err != nil {
		return nil, opErrorf(tag, err)
	}
	out, err := matrix.Hadamard(jc, jt)
	if err != nil {
		return nil, opErrorf(tag, err)
	}

	return out, nil
}

// NormalizedCovariance runs the full pipeline for normalized counts:
// y = Normalize(x), J = Jacobian(x), Σy = Propagate(J, cov). It validates
// once that cov is square with dimension len(x) before any computation.
//
// Returns the fraction vector y and its covariance Σy.
//
// Errors: ErrEmptyVector, ErrDegenerateSum, ErrDimensionMismatch,
// matrix.ErrNilMatrix.
// Complexity: Time O(n³), Space O(n²).
func NormalizedCovariance(x []float64, cov *matrix.Dense, opts *Options) ([]float64, *matrix.Dense, error) {
	const tag = "NormalizedCovariance"

	if err := matrix.ValidateSquare(cov); err != nil {
		return nil, nil, opErrorf(tag, err)
	}
	if err := matrix.ValidateVecLen(x, cov.Rows()); err != nil {
		return nil, nil, opErrorf(tag, err)
	}

	y, err := Normalize(x, opts)
	if err != nil {
		return nil, nil, opErrorf(tag, err)
	}
	jac, err := Jacobian(x, opts)
	if err != nil {
		return nil, nil, opErrorf(tag, err)
	}
	covY, err := Propagate(jac, cov)
	if err != nil {
		return nil, nil, opErrorf(tag, err)
	}

	return y, covY, nil
}
