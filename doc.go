// Package lvica separates mixed signals into independent components with
// Infomax ICA, after PCA whitening.
//
// 🚀 What is lvica?
//
//	A pure-Go Independent Component Analysis toolkit that brings together:
//		• Dense matrices: row-major storage, kernels, statistics, SVD via gonum
//		• Whitening: PCA reduction to orthonormal, unit-variance components
//		• Infomax: natural-gradient training with blow-up recovery and annealing
//		• Pipeline: X ≈ A·S in one call, plus scoring against known sources
//
// ✨ Why choose lvica?
//
//   - Explicit errors - rank deficiency and collapse are distinct sentinels
//   - Reproducible - every random permutation comes from a seedable source
//   - Observable - structured progress logs via zerolog, silent on request
//   - Configurable - all constants in one Config, loadable from YAML
//
// Under the hood, everything is organized under four subpackages:
//
//	matrix/  - Dense type, linear algebra, reductions, SVD / pinv / rank
//	whiten/  - PCA whitening (Whiten)
//	infomax/ - the Infomax optimizer (Sweep, Optimize, Config)
//	ica/     - the full pipeline (Decompose, Reconstruct, MatchSources)
//
// Quick start:
//
//	res, err := ica.Decompose(X, 4, ica.WithSeed(1))
//	if err != nil {
//	    // ica.ErrRankDeficient, ica.ErrNonInvertible, ...
//	}
//	A, S := res.Mixing, res.Sources
//
// See examples/ for runnable demos.
//
//	go get github.com/katalvlaran/lvica
package lvica
