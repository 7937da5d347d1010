// Package matrix: lightweight converters for exporting Dense values to
// gonum.org/v1/gonum/mat and importing results back. They let callers hand
// propagated covariances to gonum factorizations, statistics, or plotting
// without re-implementing those routines here.

package matrix

import (
	"gonum.org/v1/gonum/mat"
)

const (
	opToGonum    = "ToGonum"
	opToGonumSym = "ToGonumSym"
	opFromGonum  = "FromGonum"
)

// ToGonum converts m into a freshly allocated *mat.Dense.
// Errors: ErrNilMatrix. Complexity: O(r*c).
func ToGonum(m *Dense) (*mat.Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, opErrorf(opToGonum, err)
	}

	data := make([]float64, len(m.data))
	copy(data, m.data)

	return mat.NewDense(m.r, m.c, data), nil
}

// ToGonumSym converts a symmetric m into a *mat.SymDense, validating
// symmetry within tol first (gonum's SymDense only reads the upper
// triangle, so an asymmetric input would be silently truncated otherwise).
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrNaNInf, ErrAsymmetry.
// Complexity: O(n²).
func ToGonumSym(m *Dense, tol float64) (*mat.SymDense, error) {
	if err := ValidateSymmetric(m, tol); err != nil {
		return nil, opErrorf(opToGonumSym, err)
	}

	n := m.r
	sym := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			sym.SetSym(i, j, m.data[i*n+j])
		}
	}

	return sym, nil
}

// FromGonum copies any mat.Matrix into a fresh Dense.
// Errors: ErrNilMatrix (nil src), ErrInvalidDimensions (empty src).
// Complexity: O(r*c).
func FromGonum(src mat.Matrix) (*Dense, error) {
	if src == nil {
		return nil, opErrorf(opFromGonum, ErrNilMatrix)
	}

	rows, cols := src.Dims()
	dst, err := NewDense(rows, cols)
	if err != nil {
		return nil, opErrorf(opFromGonum, err)
	}
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			dst.data[i*cols+j] = src.At(i, j)
		}
	}

	return dst, nil
}
