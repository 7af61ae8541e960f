// Package whiten reduces an observations×variables matrix to a small number
// of orthonormal components via the singular value decomposition.
//
// 🚀 What is whitening?
//
//	Whitening is a linear transform that makes components uncorrelated with
//	unit variance. It is the standard preconditioning step for ICA: after
//	whitening, the remaining unmixing problem is (close to) a rotation.
//
// ✨ Outputs of Whiten(X, ncomp):
//   - Data    (ncomp×n): the retained right singular vectors, as rows.
//   - White   (ncomp×m): diag(1/(σ+ε))·Uᵀ, so White·X ≈ Data.
//   - Dewhite (m×ncomp): U·diag(σ), so Dewhite·Data ≈ X on the retained subspace.
//   - Values, Rank and RetainedVariance for diagnostics.
//
// ⚙️ Usage:
//
//	res, err := whiten.Whiten(X, 4, whiten.WithVerbose(true))
//	if err != nil {
//	  // handle whiten.ErrComponents, matrix.ErrNaNInf, ...
//	}
//
// Performance:
//
//   - Time:   O(m·n·min(m,n)) for the SVD, plus O((m+n)·ncomp) to assemble.
//   - Memory: O(m·n).
package whiten
