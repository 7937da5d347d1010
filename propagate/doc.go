// Package propagate computes the covariance of a normalized count vector
// via first-order (delta-method) error propagation.
//
// 🚀 What is the delta method?
//
//	Given counts x with covariance Σx, the normalized fractions
//	y_i = x_i / N with N = Σ_k x_k are a nonlinear function of x. Near the
//	observed point the map is well approximated by its Jacobian J, and the
//	covariance of y follows as
//
//		Σy ≈ J · Σx · Jᵀ
//
//	The Jacobian of normalization has the closed form
//
//		J[i][i] = 1/N − x_i/N²
//		J[i][j] =     − x_i/N²   (i ≠ j)
//
//	Although the entries of y are linearly dependent (they sum to 1), the
//	propagated Σy for a diagonal, non-degenerate Σx retains full correlation
//	structure rather than collapsing to a degenerate matrix.
//
// ✨ Key features:
//   - arbitrary dimension n — nothing is hard-coded to a fixed length
//   - analytic Jacobian (closed form, never finite differences)
//   - fail-fast sentinel errors: degenerate sums never leak NaN/Inf
//   - RelativeUncertainty for quick dx/x vs dy/y diagnostics
//   - PropagateElementwise to reproduce legacy scripts that used the
//     elementwise product where the formula calls for a matrix product
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/errorprop/propagate"
//
//	x := []float64{100, 100, 400}
//	covX, _ := matrix.NewDiagonal([]float64{1, 1, 4})
//
//	y, covY, err := propagate.NormalizedCovariance(x, covX, nil)
//	if err != nil {
//	  // handle ErrDegenerateSum or ErrDimensionMismatch
//	}
//
// All functions are pure: no shared state, no mutation of inputs, no I/O.
package propagate
