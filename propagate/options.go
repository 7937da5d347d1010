// Package propagate: options for the normalization routines.

package propagate

// DefaultEps is the default degenerate-sum threshold: exact zero. Counts
// are typically integers, so only a literal zero total is degenerate;
// callers working with noisy float totals can widen it.
const DefaultEps = 0.0

// Options configures Normalize, Jacobian and NormalizedCovariance.
//
// Fields:
//   - Eps — degenerate-sum threshold: |Σx_i| ≤ Eps raises ErrDegenerateSum.
//     Must be ≥ 0; the default (0) rejects only an exact zero sum.
//
// Example:
//
//	opts := propagate.DefaultOptions()
//	opts.Eps = 1e-12 // treat near-zero float totals as degenerate too
//
//	y, err := propagate.Normalize(x, &opts)
type Options struct {
	Eps float64
}

// DefaultOptions returns the canonical defaults. Functions in this package
// also accept a nil *Options and apply the same defaults.
func DefaultOptions() Options {
	return Options{Eps: DefaultEps}
}

// eps resolves the threshold from a possibly-nil options pointer.
func (o *Options) eps() float64 {
	if o == nil {
		return DefaultEps
	}
	if o.Eps < 0 {
		return -o.Eps
	}

	return o.Eps
}
