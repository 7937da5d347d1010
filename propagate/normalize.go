package propagate

import (
	"fmt"
	"math"
)

// opErrorf wraps err with an operation tag, preserving the sentinel for
// errors.Is. Call only with err != nil.
func opErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// sum returns Σx_i in fixed left-to-right order for determinism.
func sum(x []float64) float64 {
	var total float64
	for _, v := range x {
		total += v
	}

	return total
}

// checkedSum validates x and returns its total, or the matching sentinel.
// Shared precondition for Normalize and Jacobian: both are undefined for an
// empty vector or a (near-)zero total.
func checkedSum(tag string, x []float64, opts *Options) (float64, error) {
	if len(x) == 0 {
		return 0, opErrorf(tag, ErrEmptyVector)
	}

	total := sum(x)
	if math.Abs(total) <= opts.eps() {
		return 0, opErrorf(tag, ErrDegenerateSum)
	}

	return total, nil
}

// Normalize maps x to the fraction vector y with y_i = x_i / Σ_k x_k.
//
// The result is freshly allocated and sums to 1 up to floating-point
// rounding. Negative entries are permitted (mathematically well-defined);
// only a degenerate total is rejected, explicitly, so callers never see
// silent NaN/Inf fractions. Normalize is scale-invariant:
// Normalize(k·x) == Normalize(x) for any k > 0.
//
// Errors: ErrEmptyVector, ErrDegenerateSum (|Σx_i| ≤ opts.Eps; nil opts
// selects the defaults).
// Complexity: Time O(n), Space O(n).
func Normalize(x []float64, opts *Options) ([]float64, error) {
	total, err := checkedSum("Normalize", x, opts)
	if err != nil {
		return nil, err
	}

	y := make([]float64, len(x))
	for i, v := range x {
		y[i] = v / total
	}

	return y, nil
}
