package ica

import (
	"fmt"

	"github.com/katalvlaran/lvica/infomax"
	"github.com/katalvlaran/lvica/matrix"
	"github.com/katalvlaran/lvica/whiten"
)

const (
	opDecompose    = "ica.Decompose"
	opReconstruct  = "ica.Reconstruct"
	opMatchSources = "ica.MatchSources"
)

// Result is the outcome of Decompose: X ≈ Mixing·Sources.
type Result struct {
	// Mixing is A = Dewhite·pinv(W) (m×ncomp).
	Mixing *matrix.Dense

	// Sources is S = W·Data (ncomp×n); one independent component per row.
	Sources *matrix.Dense

	// Unmixing is W (ncomp×ncomp), acting on whitened data.
	Unmixing *matrix.Dense

	// Whitening holds the PCA stage, including the singular spectrum.
	Whitening *whiten.Result

	// Steps is the index of the last successful Infomax step.
	Steps int

	// Sweeps counts every sweep over the data, including ones that blew up.
	Sweeps int

	// Restarts counts blow-ups that reset the weights.
	Restarts int

	// Converged is true when the weight change fell below the stop threshold
	// and false when training ran into the step cap.
	Converged bool

	// LearningRate is the rate when training ended.
	LearningRate float64

	// Change is the last squared weight-change norm.
	Change float64
}

// Decompose factors X (m observations × n variables) into ncomp components.
//
// Implementation:
//   - Stage 1: whiten X to ncomp components.
//   - Stage 2: reject ncomp above the numerical rank of X.
//   - Stage 3: Infomax on the whitened data, told the rank up front.
//   - Stage 4: A = Dewhite·pinv(W).
//
// Errors: whiten.ErrComponents, ErrRankDeficient, ErrNonInvertible,
// ErrTooFewComponents, ErrTooFewSamples and the matrix input sentinels.
// On error the result is nil.
func Decompose(X matrix.Matrix, ncomp int, opts ...Option) (*Result, error) {
	o := gatherOptions(opts...)
	lg := o.stageLogger()

	lg.Info().Msg("Whitening data...")
	w, err := whiten.Whiten(X, ncomp, o.whitenOptions()...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opDecompose, err)
	}
	if w.Rank < ncomp {
		return nil, fmt.Errorf("%s: rank %d < %d components: %w", opDecompose, w.Rank, ncomp, ErrRankDeficient)
	}

	lg.Info().Msg("Running INFOMAX-ICA ...")
	im, err := infomax.Optimize(w.Data, o.infomaxOptions(w.Rank)...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opDecompose, err)
	}
	lg.Info().
		Int("steps", im.Steps).
		Int("restarts", im.Restarts).
		Bool("converged", im.Converged).
		Msg("Done.")
	a, err := matrix.Mul(w.Dewhite, im.Mixing)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opDecompose, err)
	}

	return &Result{
		Mixing:       a,
		Sources:      im.Sources,
		Unmixing:     im.W,
		Whitening:    w,
		Steps:        im.Steps,
		Sweeps:       im.Sweeps,
		Restarts:     im.Restarts,
		Converged:    im.Converged,
		LearningRate: im.LearningRate,
		Change:       im.Change,
	}, nil
}

// Reconstruct returns Mixing·Sources, the projection of X onto the retained
// components.
func Reconstruct(res *Result) (*matrix.Dense, error) {
	if res == nil {
		return nil, fmt.Errorf("%s: %w", opReconstruct, matrix.ErrNilMatrix)
	}
	x, err := matrix.Mul(res.Mixing, res.Sources)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opReconstruct, err)
	}

	return x, nil
}

// Match pairs a reference source with its best recovered component.
type Match struct {
	Index int     // row of the recovered sources
	R     float64 // |Pearson r|, in [0, 1]
}

// MatchSources returns, for every row of truth, the recovered row of S with
// the highest absolute correlation. ICA fixes sources only up to order, sign
// and scale, so this is how a separation is scored.
func MatchSources(S, truth matrix.Matrix) ([]Match, error) {
	r, err := matrix.CrossCorrelation(S, truth)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opMatchSources, err)
	}
	rows, cols := r.Shape()
	out := make([]Match, cols)
	var i, j int
	var v float64
	for j = 0; j < cols; j++ {
		out[j].Index = -1
		for i = 0; i < rows; i++ {
			if v, err = r.At(i, j); err != nil {
				return nil, fmt.Errorf("%s: %w", opMatchSources, err)
			}
			if v < 0 {
				v = -v
			}
			if out[j].Index < 0 || v > out[j].R {
				out[j] = Match{Index: i, R: v}
			}
		}
	}

	return out, nil
}
