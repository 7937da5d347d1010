package propagate_test

import (
	"testing"

	"github.com/katalvlaran/errorprop/matrix"
	"github.com/katalvlaran/errorprop/propagate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestJacobian_ReferenceValues pins the worked scenario's Jacobian:
// x = [100, 100, 400], N = 600.
func TestJacobian_ReferenceValues(t *testing.T) {
	jac, err := propagate.Jacobian([]float64{100, 100, 400}, nil)
	require.NoError(t, err)

	want := [][]float64{
		{0.00138889, -0.00027778, -0.00027778},
		{-0.00027778, 0.00138889, -0.00027778},
		{-0.00111111, -0.00111111, 0.00055556},
	}
	for i := range want {
		for j := range want[i] {
			v, err := jac.At(i, j)
			require.NoError(t, err)
			assert.InDelta(t, want[i][j], v, 1e-7, "J[%d][%d]", i, j)
		}
	}
}

// TestJacobian_ColumnSumsZero verifies the structural invariant
// Σ_i J[i][j] == 0 for every column j: the fractions sum to 1 identically,
// so perturbing any single count cannot move Σ_i y_i.
func TestJacobian_ColumnSumsZero(t *testing.T) {
	inputs := [][]float64{
		{100, 100, 400},
		{1, 2, 3, 4, 5},
		{0.1, 0.9},
		{7, -2, 6}, // negative entry, still valid
	}

	for _, x := range inputs {
		jac, err := propagate.Jacobian(x, nil)
		require.NoError(t, err, "input %v", x)

		for j := 0; j < jac.Cols(); j++ {
			var colSum float64
			for i := 0; i < jac.Rows(); i++ {
				v, err := jac.At(i, j)
				require.NoError(t, err)
				colSum += v
			}
			assert.InDelta(t, 0.0, colSum, 1e-15, "column %d of J(%v)", j, x)
		}
	}
}

// TestJacobian_AnnihilatesX verifies scale invariance in derivative form:
// J·x == 0, since Normalize(k·x) is constant in k.
func TestJacobian_AnnihilatesX(t *testing.T) {
	inputs := [][]float64{
		{100, 100, 400},
		{1, 2, 3, 4, 5},
		{0.25, 0.75},
	}

	for _, x := range inputs {
		jac, err := propagate.Jacobian(x, nil)
		require.NoError(t, err, "input %v", x)

		jx, err := matrix.MatVec(jac, x)
		require.NoError(t, err)
		for i, v := range jx {
			assert.InDelta(t, 0.0, v, 1e-15, "(J·x)[%d] for %v", i, x)
		}
	}
}

// TestJacobian_MatchesFiniteDifferences cross-checks the closed form
// against central finite differences of y = x/Σx.
func TestJacobian_MatchesFiniteDifferences(t *testing.T) {
	x := []float64{100, 100, 400}
	const h = 1e-3

	jac, err := propagate.Jacobian(x, nil)
	require.NoError(t, err)

	n := len(x)
	for j := 0; j < n; j++ {
		// Perturb coordinate j both ways and normalize.
		plus := make([]float64, n)
		minus := make([]float64, n)
		copy(plus, x)
		copy(minus, x)
		plus[j] += h
		minus[j] -= h

		yPlus, err := propagate.Normalize(plus, nil)
		require.NoError(t, err)
		yMinus, err := propagate.Normalize(minus, nil)
		require.NoError(t, err)

		for i := 0; i < n; i++ {
			numeric := (yPlus[i] - yMinus[i]) / (2 * h)
			analytic, err := jac.At(i, j)
			require.NoError(t, err)
			assert.InDelta(t, analytic, numeric, 1e-9, "∂y_%d/∂x_%d", i, j)
		}
	}
}

// TestJacobian_DegenerateAndEmpty verifies the shared preconditions with
// Normalize.
func TestJacobian_DegenerateAndEmpty(t *testing.T) {
	_, err := propagate.Jacobian([]float64{0, 0, 0}, nil)
	assert.ErrorIs(t, err, propagate.ErrDegenerateSum)

	_, err = propagate.Jacobian(nil, nil)
	assert.ErrorIs(t, err, propagate.ErrEmptyVector)
}

// TestJacobian_ArbitraryDimension verifies nothing is hard-coded to n=3.
func TestJacobian_ArbitraryDimension(t *testing.T) {
	x := []float64{1, 2, 3, 4, 5, 6, 7}

	jac, err := propagate.Jacobian(x, nil)
	require.NoError(t, err)
	assert.Equal(t, 7, jac.Rows())
	assert.Equal(t, 7, jac.Cols())

	// Spot-check the closed form at N = 28: J[2][5] = -3/784.
	v, err := jac.At(2, 5)
	require.NoError(t, err)
	assert.InDelta(t, -3.0/784.0, v, 1e-15)

	// And a diagonal entry: J[4][4] = 1/28 - 5/784 = 23/784.
	v, err = jac.At(4, 4)
	require.NoError(t, err)
	assert.InDelta(t, 23.0/784.0, v, 1e-15)
}
