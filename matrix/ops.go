// Package matrix: elementary kernels. Every function validates through the
// central validators, allocates a fresh result, iterates in a fixed order,
// and never mutates its operands.

package matrix

import "fmt"

// Operation name constants for unified error wrapping.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opScale     = "Scale"
	opMul       = "Mul"
	opTranspose = "Transpose"
	opHadamard  = "Hadamard"
	opMatVec    = "MatVec"
	opSandwich  = "Sandwich"
)

// opErrorf wraps err with an operation tag, preserving the sentinel for
// errors.Is. Call only with err != nil.
func opErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// addSub computes elementwise out = a + sign*b for sign ∈ {+1, -1}.
// Shared validation and loop for Add/Sub. Time O(r*c), space O(r*c).
func addSub(a, b *Dense, sign float64, tag string) (*Dense, error) {
	if err := ValidateSameShape(a, b); err != nil {
		return nil, opErrorf(tag, err)
	}

	res := &Dense{r: a.r, c: a.c, data: make([]float64, len(a.data))}
	for idx := range a.data { // deterministic 0..n-1
		res.data[idx] = a.data[idx] + sign*b.data[idx]
	}

	return res, nil
}

// Add returns the elementwise sum C = A + B.
// Errors: ErrNilMatrix, ErrDimensionMismatch. Time O(r*c).
func Add(a, b *Dense) (*Dense, error) { return addSub(a, b, +1, opAdd) }

// Sub returns the elementwise difference C = A - B.
// Errors: ErrNilMatrix, ErrDimensionMismatch. Time O(r*c).
func Sub(a, b *Dense) (*Dense, error) { return addSub(a, b, -1, opSub) }

// Scale returns alpha * m as a fresh Dense. NaN/Inf alpha propagates into
// the result (no numeric policy on scalars).
// Errors: ErrNilMatrix. Time O(r*c).
func Scale(m *Dense, alpha float64) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, opErrorf(opScale, err)
	}

	res := &Dense{r: m.r, c: m.c, data: make([]float64, len(m.data))}
	for idx := range m.data {
		res.data[idx] = alpha * m.data[idx]
	}

	return res, nil
}

// Mul performs standard matrix multiplication C = A × B.
// This is the true matrix product (row-by-column dot products), not the
// elementwise product; see Hadamard for the latter.
// Loop order is i→k→j over flat row-major slices; zero A[i,k] entries are
// skipped.
// Errors: ErrNilMatrix, ErrDimensionMismatch (a.Cols != b.Rows).
// Complexity: Time O(r*n*c), Space O(r*c).
func Mul(a, b *Dense) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, opErrorf(opMul, err)
	}

	res := &Dense{r: a.r, c: b.c, data: make([]float64, a.r*b.c)}
	var av float64
	var rowA, rowB, rowR int
	for i := 0; i < a.r; i++ {
		rowA = i * a.c
		rowR = i * b.c
		for k := 0; k < a.c; k++ {
			av = a.data[rowA+k]
			if av == 0 {
				continue // skip zero for performance
			}
			rowB = k * b.c
			for j := 0; j < b.c; j++ {
				res.data[rowR+j] += av * b.data[rowB+j]
			}
		}
	}

	return res, nil
}

// Transpose returns mᵀ as a fresh Dense.
// Errors: ErrNilMatrix. Time O(r*c).
func Transpose(m *Dense) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, opErrorf(opTranspose, err)
	}

	res := &Dense{r: m.c, c: m.r, data: make([]float64, len(m.data))}
	for i := 0; i < m.r; i++ {
		base := i * m.c
		for j := 0; j < m.c; j++ {
			res.data[j*m.r+i] = m.data[base+j]
		}
	}

	return res, nil
}

// Hadamard computes the elementwise product a ⊙ b.
// Hadamard ≠ matrix multiplication; use Mul for A×B. It exists here so the
// literal computation of legacy scripts that confuse the two can still be
// reproduced and compared against the true product.
// Errors: ErrNilMatrix, ErrDimensionMismatch. Time O(r*c).
func Hadamard(a, b *Dense) (*Dense, error) {
	if err := ValidateSameShape(a, b); err != nil {
		return nil, opErrorf(opHadamard, err)
	}

	res := &Dense{r: a.r, c: a.c, data: make([]float64, len(a.data))}
	for idx := range a.data {
		res.data[idx] = a.data[idx] * b.data[idx]
	}

	return res, nil
}

// MatVec computes y = m * x for a column vector x.
// Errors: ErrNilMatrix, ErrDimensionMismatch (len(x) != m.Cols).
// Complexity: Time O(r*c), Space O(r).
func MatVec(m *Dense, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, opErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.c); err != nil {
		return nil, opErrorf(opMatVec, err)
	}

	y := make([]float64, m.r)
	var acc float64
	for i := 0; i < m.r; i++ {
		acc = 0
		base := i * m.c
		for j := 0; j < m.c; j++ {
			acc += m.data[base+j] * x[j]
		}
		y[i] = acc
	}

	return y, nil
}

// Sandwich computes the congruence transform C = A · B · Aᵀ in one pass
// pair, the core step of first-order covariance propagation (B plays the
// covariance, A the Jacobian). Equivalent to Mul(Mul(a, b), Transpose(a))
// but avoids materializing the transpose.
//
// Shapes: A is r×n, B is n×n, C is r×r. If B is symmetric, C is symmetric
// up to floating-point rounding.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch (B non-square or
// a.Cols != b.Rows).
// Complexity: Time O(r*n² + r²*n), Space O(r*n) for the intermediate.
func Sandwich(a, b *Dense) (*Dense, error) {
	if err := ValidateSquare(b); err != nil {
		return nil, opErrorf(opSandwich, err)
	}
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, opErrorf(opSandwich, err)
	}

	// tmp = A · B (r×n).
	tmp, err := Mul(a, b)
	if err != nil {
		return nil, opErrorf(opSandwich, err)
	}

	// C[i][j] = Σ_k tmp[i][k] * A[j][k], i.e. tmp · Aᵀ without forming Aᵀ.
	res := &Dense{r: a.r, c: a.r, data: make([]float64, a.r*a.r)}
	var acc float64
	var rowT, rowA int
	for i := 0; i < a.r; i++ {
		rowT = i * a.c
		for j := 0; j < a.r; j++ {
			rowA = j * a.c
			acc = 0
			for k := 0; k < a.c; k++ {
				acc += tmp.data[rowT+k] * a.data[rowA+k]
			}
			res.data[i*a.r+j] = acc
		}
	}

	return res, nil
}
