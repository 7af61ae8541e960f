// Package ica runs the full Independent Component Analysis pipeline:
// PCA whitening followed by logistic Infomax.
//
// 🚀 What does it do?
//
//	Decompose(X, ncomp) factors an observations×variables matrix X into a
//	mixing matrix A (m×ncomp) and sources S (ncomp×n) with X ≈ A·S, where
//	the rows of S are as independent as Infomax can make them. With time
//	points as rows and voxels as columns this is spatial ICA.
//
// ✨ Helpers:
//   - Reconstruct(res) recomputes A·S.
//   - MatchSources(S, truth) scores a separation against known sources,
//     ignoring order, sign and scale.
//
// ⚙️ Usage:
//
//	res, err := ica.Decompose(X, 4, ica.WithSeed(1))
//	if errors.Is(err, ica.ErrRankDeficient) {
//	  // ask for fewer components
//	}
//	maps := res.Sources
//
// Decompose logs progress through zerolog by default; pass WithVerbose(false)
// to silence it or WithLogger to redirect it.
package ica
