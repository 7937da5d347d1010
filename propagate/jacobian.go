package propagate

import "github.com/katalvlaran/errorprop/matrix"

// Jacobian returns the n×n matrix of partial derivatives ∂y_i/∂x_j of the
// normalization y = x/N, N = Σ_k x_k, evaluated analytically at x:
//
//	J[i][i] = 1/N − x_i/N²
//	J[i][j] =     − x_i/N²   (i ≠ j)
//
// which follows from differentiating y_i = x_i/N with ∂N/∂x_j = 1 for all
// j. The closed form is exact — no finite differences — so propagation
// results are reproducible bit-for-bit.
//
// Two identities pin the structure down: each column of J sums to zero
// (the fractions sum to 1 identically, so perturbing any single count
// cannot change Σ_i y_i), and J·x = 0 (scaling every count by the same
// factor leaves the fractions unchanged).
//
// Errors: ErrEmptyVector, ErrDegenerateSum (same precondition as
// Normalize; nil opts selects the defaults).
// Complexity: Time O(n²), Space O(n²).
func Jacobian(x []float64, opts *Options) (*matrix.Dense, error) {
	const tag = "Jacobian"

	total, err := checkedSum(tag, x, opts)
	if err != nil {
		return nil, err
	}

	n := len(x)
	jac, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, opErrorf(tag, err)
	}

	// Row i is the constant −x_i/N² plus 1/N on the diagonal.
	invN := 1.0 / total
	invN2 := invN * invN
	var offDiag float64
	for i := 0; i < n; i++ {
		offDiag = -x[i] * invN2
		for j := 0; j < n; j++ {
			if err = jac.Set(i, j, offDiag); err != nil {
				return nil, opErrorf(tag, err)
			}
		}
		if err = jac.Set(i, i, offDiag+invN); err != nil {
			return nil, opErrorf(tag, err)
		}
	}

	return jac, nil
}
