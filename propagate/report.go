package propagate

import (
	"math"

	"github.com/katalvlaran/errorprop/matrix"
)

// RelativeUncertainty computes the elementwise relative errors
//
//	out_i = sqrt(cov[i][i]) / x_i
//
// the familiar dx/x (or dy/y) diagnostic: standard deviation from the
// covariance diagonal, divided by the central value. It is a thin derived
// quantity for display and for eyeballing how normalization reshapes the
// per-element uncertainty.
//
// A zero x_i yields ±Inf in that slot (a faithful "infinite relative
// error", diagnostic only); a negative diagonal entry is rejected, since a
// variance cannot be negative.
//
// Errors: ErrDimensionMismatch (len(x) != cov dimension, cov non-square),
// ErrNegativeVariance, matrix.ErrNilMatrix.
// Complexity: Time O(n), Space O(n).
func RelativeUncertainty(x []float64, cov *matrix.Dense) ([]float64, error) {
	const tag = "RelativeUncertainty"

	if err := matrix.ValidateSquare(cov); err != nil {
		return nil, opErrorf(tag, err)
	}
	if err := matrix.ValidateVecLen(x, cov.Rows()); err != nil {
		return nil, opErrorf(tag, err)
	}

	diag := cov.Diagonal()
	out := make([]float64, len(x))
	for i, variance := range diag {
		if variance < 0 {
			return nil, opErrorf(tag, ErrNegativeVariance)
		}
		out[i] = math.Sqrt(variance) / x[i]
	}

	return out, nil
}
