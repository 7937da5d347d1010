// Package matrix provides the dense linear-algebra primitives used by
// covariance propagation: a row-major Dense type, elementary kernels
// (Add, Sub, Scale, Mul, Transpose, Hadamard, MatVec), the congruence
// transform Sandwich (A·B·Aᵀ), and a symmetric Jacobi eigensolver for
// positive-semi-definiteness checks.
//
// Design rules shared by every kernel:
//
//   - Pure functions: operands are never mutated, results are freshly
//     allocated Dense values.
//   - Fail-fast validation: all shape/nil checks go through the central
//     validators and surface package sentinel errors (errors.Is friendly).
//   - Deterministic loops: fixed iteration orders, so identical inputs
//     yield bit-identical outputs across runs.
//
// Matrices are small and dense by assumption (covariance matrices of a
// handful of observables), so O(n²) memory and O(n³) multiplication are
// acceptable everywhere.
//
// The conversions in gonum.go export Dense values to gonum.org/v1/gonum/mat
// when callers need factorizations or statistics beyond this kernel.
package matrix
