// Package infomax implements the logistic Infomax algorithm of Bell and
// Sejnowski with the natural-gradient update, as used for spatial ICA.
//
// 🚀 What does it do?
//
//	Given whitened data x (ncomp×nvox), Optimize learns a square unmixing
//	matrix W such that the rows of W·x are as statistically independent as
//	a logistic output nonlinearity can make them. It suits super-Gaussian
//	(sparse, heavy-tailed) sources.
//
// ✨ Training schedule:
//   - Mini-batches of ⌊√(nvox/3)⌋ columns, drawn from a fresh permutation
//     on every sweep (see BlockSize, Blocks).
//   - Blow-up guard: a NaN in W or max|W| > 1e8 anneals the learning rate
//     by 0.9 and restarts from the identity.
//   - Angle annealing: when successive weight changes turn by more than 60°,
//     the learning rate is annealed by 0.9.
//   - Stop when ‖ΔW‖² < 1e-6 or after 500 steps.
//
// All constants live in Config and can be read from YAML with DecodeConfig.
//
// ⚙️ Usage:
//
//	res, err := infomax.Optimize(xw, infomax.WithSeed(42), infomax.WithVerbose(true))
//	switch {
//	case errors.Is(err, infomax.ErrRankDeficient):
//	  // too many components for the data
//	case errors.Is(err, infomax.ErrNonInvertible):
//	  // the rate collapsed; try fewer components
//	}
//	sources := res.Sources // = res.W · xw
//
// Determinism: with a fixed seed (or a caller-owned *rand.Rand) two runs on
// the same data produce identical results.
//
// Performance:
//
//   - Time:   O(ncomp²·nvox) per sweep.
//   - Memory: O(ncomp·(nvox + ncomp)).
package infomax
