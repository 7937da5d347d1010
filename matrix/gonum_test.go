package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/errorprop/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// randomDense builds a deterministic r×c matrix from a seeded uniform fill.
func randomDense(t *testing.T, r, c int, seed int64) *matrix.Dense {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))

	rows := make([][]float64, r)
	for i := range rows {
		rows[i] = make([]float64, c)
		for j := range rows[i] {
			rows[i][j] = rng.Float64()*2 - 1
		}
	}
	m, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)

	return m
}

// TestToGonum_RoundTrip verifies that ToGonum and FromGonum are inverse
// up to exact copies.
func TestToGonum_RoundTrip(t *testing.T) {
	src := randomDense(t, 3, 4, 11)

	g, err := matrix.ToGonum(src)
	require.NoError(t, err)
	back, err := matrix.FromGonum(g)
	require.NoError(t, err)

	assertMatrixEqual(t, src, back, 0)

	_, err = matrix.ToGonum(nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.FromGonum(nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestToGonumSym_ValidatesSymmetry verifies symmetric export and the
// asymmetry sentinel.
func TestToGonumSym_ValidatesSymmetry(t *testing.T) {
	symSrc := mustDense(t, [][]float64{{2, 1}, {1, 3}})
	sym, err := matrix.ToGonumSym(symSrc, 1e-12)
	require.NoError(t, err)
	assert.Equal(t, 2, sym.SymmetricDim())
	assert.Equal(t, 1.0, sym.At(1, 0))

	_, err = matrix.ToGonumSym(mustDense(t, [][]float64{{1, 2}, {3, 4}}), 1e-12)
	assert.ErrorIs(t, err, matrix.ErrAsymmetry)
}

// TestMul_CrossCheckGonum verifies the in-package product against gonum's
// on random operands.
func TestMul_CrossCheckGonum(t *testing.T) {
	a := randomDense(t, 4, 6, 21)
	b := randomDense(t, 6, 5, 22)

	got, err := matrix.Mul(a, b)
	require.NoError(t, err)

	ga, err := matrix.ToGonum(a)
	require.NoError(t, err)
	gb, err := matrix.ToGonum(b)
	require.NoError(t, err)
	var gw mat.Dense
	gw.Mul(ga, gb)
	want, err := matrix.FromGonum(&gw)
	require.NoError(t, err)

	assertMatrixEqual(t, want, got, 1e-12)
}

// TestSandwich_CrossCheckGonum verifies A·B·Aᵀ against gonum products.
func TestSandwich_CrossCheckGonum(t *testing.T) {
	a := randomDense(t, 3, 5, 31)
	b := randomPSD(t, 5, 32)

	got, err := matrix.Sandwich(a, b)
	require.NoError(t, err)

	ga, err := matrix.ToGonum(a)
	require.NoError(t, err)
	gb, err := matrix.ToGonum(b)
	require.NoError(t, err)
	var ab, want mat.Dense
	ab.Mul(ga, gb)
	want.Mul(&ab, ga.T())
	wantDense, err := matrix.FromGonum(&want)
	require.NoError(t, err)

	assertMatrixEqual(t, wantDense, got, 1e-12)
}
