// Package matrix offers the dense linear-algebra layer of lvica.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with bounds-checked At/Set and an
//     optional finite-value policy.
//   - Kernels returning fresh *Dense values: Add, Sub, Mul, MulTrans,
//     Transpose, Scale, row broadcasts and row/column scalings, Map.
//   - Reductions for iterative solvers: SumSquares, FrobeniusInner, MaxAbs,
//     HasNaN, RowSums, AllClose.
//   - Row statistics for signal matrices: CenterRows, RowCovariance,
//     CrossCorrelation.
//   - SVD, PseudoInverse and Rank backed by gonum.
//
// Errors are package sentinels (ErrDimensionMismatch, ErrNaNInf, ...) wrapped
// with an operation tag; match them with errors.Is.
package matrix
