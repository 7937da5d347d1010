// Package propagate: sentinel error set. All operations return these
// sentinels (wrapped once with an operation tag) and tests check them via
// errors.Is. No operation panics on user-triggered error conditions.

package propagate

import (
	"errors"

	"github.com/katalvlaran/errorprop/matrix"
)

var (
	// ErrEmptyVector indicates a zero-length input vector; normalization of
	// nothing is undefined.
	ErrEmptyVector = errors.New("propagate: input vector must be non-empty")

	// ErrDegenerateSum indicates Σx_i ≈ 0 (within Options.Eps), making the
	// normalization y = x/Σx undefined. This is raised explicitly instead of
	// silently producing NaN/Inf entries.
	ErrDegenerateSum = errors.New("propagate: vector sum is degenerate (division by zero)")

	// ErrNegativeVariance indicates a negative entry on a covariance
	// diagonal where a variance (σ² ≥ 0) was required.
	ErrNegativeVariance = errors.New("propagate: negative variance on covariance diagonal")
)

// ErrDimensionMismatch re-exports the kernel's sentinel so callers of this
// package match shape violations (x vs Σx length, non-square Σx) without
// importing matrix. Semantically identical; errors.Is works with either.
var ErrDimensionMismatch = matrix.ErrDimensionMismatch
