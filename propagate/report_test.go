package propagate_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/errorprop/matrix"
	"github.com/katalvlaran/errorprop/propagate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRelativeUncertainty_InputSide verifies dx/x for the worked scenario:
// sqrt(diag(Σx))/x = [1/100, 1/100, 2/400].
func TestRelativeUncertainty_InputSide(t *testing.T) {
	x, covX := referenceScenario(t)

	dxOverX, err := propagate.RelativeUncertainty(x, covX)
	require.NoError(t, err)

	assert.InDelta(t, 0.01, dxOverX[0], 1e-15)
	assert.InDelta(t, 0.01, dxOverX[1], 1e-15)
	assert.InDelta(t, 0.005, dxOverX[2], 1e-15)
}

// TestRelativeUncertainty_OutputSide verifies dy/y after propagation.
// Exact values: dy0/y0 = 6·sqrt(1/432000) = sqrt(1/12000),
// dy2/y2 = 1.5·sqrt(1/270000) = sqrt(1/120000).
func TestRelativeUncertainty_OutputSide(t *testing.T) {
	x, covX := referenceScenario(t)

	y, covY, err := propagate.NormalizedCovariance(x, covX, nil)
	require.NoError(t, err)

	dyOverY, err := propagate.RelativeUncertainty(y, covY)
	require.NoError(t, err)

	assert.InDelta(t, math.Sqrt(1.0/12000), dyOverY[0], 1e-12)
	assert.InDelta(t, math.Sqrt(1.0/12000), dyOverY[1], 1e-12)
	assert.InDelta(t, math.Sqrt(1.0/120000), dyOverY[2], 1e-12)
}

// TestRelativeUncertainty_ZeroCenter verifies the documented ±Inf behavior
// for a zero central value.
func TestRelativeUncertainty_ZeroCenter(t *testing.T) {
	cov, err := matrix.NewDiagonal([]float64{4, 9})
	require.NoError(t, err)

	out, err := propagate.RelativeUncertainty([]float64{0, 3}, cov)
	require.NoError(t, err)
	assert.True(t, math.IsInf(out[0], 1), "zero center must yield +Inf")
	assert.InDelta(t, 1.0, out[1], 1e-15)
}

// TestRelativeUncertainty_Validation verifies the sentinels.
func TestRelativeUncertainty_Validation(t *testing.T) {
	cov, err := matrix.NewDiagonal([]float64{1, 1})
	require.NoError(t, err)

	_, err = propagate.RelativeUncertainty([]float64{1, 2, 3}, cov)
	assert.ErrorIs(t, err, propagate.ErrDimensionMismatch)

	negCov, err := matrix.NewDiagonal([]float64{1, -1})
	require.NoError(t, err)
	_, err = propagate.RelativeUncertainty([]float64{1, 2}, negCov)
	assert.ErrorIs(t, err, propagate.ErrNegativeVariance)

	_, err = propagate.RelativeUncertainty([]float64{1, 2}, nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}
