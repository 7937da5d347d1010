// Package errorprop propagates measurement uncertainty through vector
// normalization using first-order (delta-method) linearization.
//
// 🚀 What is errorprop?
//
//	A small, pure-Go library answering one recurring question in counting
//	experiments: given raw counts x and their covariance Σx, what is the
//	covariance of the normalized fractions y = x / Σ_k x_k?
//		• propagate/ — Normalize, closed-form Jacobian, Σy = J·Σx·Jᵀ
//		• matrix/    — compact dense kernel: Mul, Transpose, Sandwich,
//		               Hadamard, symmetric Jacobi eigensolver
//
// ✨ Why choose errorprop?
//
//   - Beginner-friendly – three pure functions, clear naming, no setup
//   - Honest numerics – degenerate sums fail fast instead of leaking NaN
//   - Arbitrary dimension – nothing is hard-coded to a fixed vector length
//   - Interoperable – converters to/from gonum.org/v1/gonum/mat
//
// Quick sketch:
//
//	x  = [100, 100, 400]      counts with Poisson-like errors
//	Σx = diag(1, 1, 4)        independent variances
//	y  = [1/6, 1/6, 2/3]      normalized fractions
//	Σy = J·Σx·Jᵀ              correlated, still non-singular
//
// Dive into propagate/doc.go for the math and examples/ for a full
// worked scenario.
//
//	go get github.com/katalvlaran/errorprop
package errorprop
