package infomax

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/lvica/matrix"
)

const (
	opNewState    = "infomax.NewState"
	opSweep       = "infomax.Sweep"
	opOptimize    = "infomax.Optimize"
	opChangeAngle = "infomax.ChangeAngle"
)

// Optimizer runs logistic Infomax on whitened data. It owns a random source
// and is therefore not safe for concurrent use.
type Optimizer struct {
	cfg  Config
	rng  *rand.Rand
	rank int
	log  zerolog.Logger
}

// New builds an Optimizer from the given options.
func New(opts ...Option) *Optimizer {
	o := gatherOptions(opts...)

	return &Optimizer{cfg: o.cfg, rng: o.rng, rank: o.rank, log: o.logger}
}

// Config returns the constants in effect.
func (o *Optimizer) Config() Config { return o.cfg }

// Result is the outcome of Optimize.
type Result struct {
	// W is the learned unmixing matrix (ncomp×ncomp).
	W *matrix.Dense

	// Mixing is pinv(W).
	Mixing *matrix.Dense

	// Sources is W·x (ncomp×nvox).
	Sources *matrix.Dense

	// Steps is the index of the last successful step.
	Steps int

	// Sweeps counts every sweep, including ones that blew up.
	Sweeps int

	// Restarts counts blow-ups.
	Restarts int

	// Converged is true when the weight change fell below Config.WeightStop.
	Converged bool

	// LearningRate is the rate at termination.
	LearningRate float64

	// Change is the last squared weight-change norm.
	Change float64
}

// Sweep runs one pass over a fresh permutation of the columns of x, updating
// st in place block by block:
//
//	U    = W·X_b + bias
//	Y    = 1/(1+e^(−U))
//	W   += lr·(b·I + (1−2Y)·Uᵀ)·W
//	bias += lr·Σ_cols(1−2Y)
//
// where b is the block length. After each block, W is checked for NaN or
// max|W| > Config.MaxWeight. On a blow-up the rate is annealed, W and Bias are
// reset and the sweep ends early with restarted=true.
//
// Errors (fatal, st is left in its reset form):
//   - ErrRankDeficient when the rate is still above the floor and
//     rank(x) < ncomp.
//   - ErrNonInvertible when the annealed rate falls below the floor.
func (o *Optimizer) Sweep(x *matrix.Dense, st *State) (restarted bool, err error) {
	if err = matrix.ValidateNotNil(x); err != nil {
		return false, fmt.Errorf("%s: %w", opSweep, err)
	}
	ncomp, nvox := x.Shape()
	size := BlockSize(nvox)
	if size == 0 {
		return false, fmt.Errorf("%s: nvox=%d: %w", opSweep, nvox, ErrTooFewSamples)
	}
	eye, err := matrix.NewIdentity(ncomp)
	if err != nil {
		return false, fmt.Errorf("%s: %w", opSweep, err)
	}

	for _, idx := range Blocks(permRange(nvox, o.rng), size) {
		if err = updateBlock(x, st, idx, eye); err != nil {
			return false, fmt.Errorf("%s: %w", opSweep, err)
		}
		if !o.blownUp(st.W) {
			continue
		}

		st.LearningRate *= o.cfg.Anneal
		st.reset()
		o.log.Warn().
			Float64("lrate", st.LearningRate).
			Msg("Numeric error! restarting with lower learning rate")

		if st.LearningRate > o.cfg.MinLearningRate {
			rank, rerr := st.signalRank(x)
			if rerr != nil {
				return false, fmt.Errorf("%s: %w", opSweep, rerr)
			}
			if rank < ncomp {
				o.log.Error().Int("rank", rank).Int("components", ncomp).
					Msg("Data is rank deficient; reduce the number of components")
				return false, fmt.Errorf("%s: rank %d < %d components: %w", opSweep, rank, ncomp, ErrRankDeficient)
			}
		}
		if st.LearningRate < o.cfg.MinLearningRate {
			o.log.Error().Float64("lrate", st.LearningRate).
				Msg("Weight matrix may not be invertible")
			return false, fmt.Errorf("%s: lrate %.3g: %w", opSweep, st.LearningRate, ErrNonInvertible)
		}

		return true, nil
	}

	return false, nil
}

// updateBlock applies one natural-gradient step on the columns idx of x.
func updateBlock(x *matrix.Dense, st *State, idx []int, eye *matrix.Dense) error {
	xb, err := x.SelectColumns(idx)
	if err != nil {
		return err
	}
	u, err := matrix.Mul(st.W, xb)
	if err != nil {
		return err
	}
	if u, err = matrix.BroadcastAddRows(u, st.Bias); err != nil {
		return err
	}
	g, err := matrix.Map(u, func(v float64) float64 { return 1 - 2/(1+math.Exp(-v)) })
	if err != nil {
		return err
	}
	grad, err := matrix.MulTrans(g, u)
	if err != nil {
		return err
	}
	if err = matrix.AxpyInPlace(grad, float64(len(idx)), eye); err != nil {
		return err
	}
	step, err := matrix.Mul(grad, st.W)
	if err != nil {
		return err
	}
	if err = matrix.AxpyInPlace(st.W, st.LearningRate, step); err != nil {
		return err
	}
	sums, err := matrix.RowSums(g)
	if err != nil {
		return err
	}
	for i, s := range sums {
		st.Bias[i] += st.LearningRate * s
	}

	return nil
}

func (o *Optimizer) blownUp(w *matrix.Dense) bool {
	if matrix.HasNaN(w) {
		return true
	}
	m, err := matrix.MaxAbs(w)

	return err != nil || m > o.cfg.MaxWeight
}

// Optimize trains an unmixing matrix for x (ncomp×nvox, typically whitened).
//
// Implementation:
//   - Stage 1: W = I, bias = 0, lr = Config.InitialLearningRate(ncomp).
//   - Stage 2: repeat Sweep while step < Config.MaxSteps. A restarted sweep
//     resets the step counter to 1 and nothing else.
//   - Stage 3: after each clean sweep, Δ = W − W_prev. From step 3 on, the
//     angle between Δ and a reference change is measured; above
//     Config.AnnealAngle the rate is annealed and Δ becomes the reference.
//     ‖Δ‖² < Config.WeightStop ends training.
//   - Stage 4: Mixing = pinv(W), Sources = W·x.
//
// x is copied; the caller's matrix is never modified.
func (o *Optimizer) Optimize(x matrix.Matrix) (*Result, error) {
	xd, err := matrix.ToDense(x)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opOptimize, err)
	}
	if err = matrix.ValidateFinite(xd); err != nil {
		return nil, fmt.Errorf("%s: %w", opOptimize, err)
	}
	ncomp, nvox := xd.Shape()
	if BlockSize(nvox) == 0 {
		return nil, fmt.Errorf("%s: nvox=%d: %w", opOptimize, nvox, ErrTooFewSamples)
	}
	st, err := o.NewState(ncomp)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opOptimize, err)
	}

	o.log.Info().
		Int("components", ncomp).
		Int("samples", nvox).
		Float64("lrate", st.LearningRate).
		Msg("Beginning ICA training...")

	var (
		res   Result
		tr    tracker
		oldW  = st.W.Copy()
		step  = 1
		angle float64
	)
	for step < o.cfg.MaxSteps {
		restarted, serr := o.Sweep(xd, st)
		res.Sweeps++
		if serr != nil {
			return nil, fmt.Errorf("%s: %w", opOptimize, serr)
		}
		if restarted {
			res.Restarts++
			step = 1
			continue
		}

		change, derr := matrix.Sub(st.W, oldW)
		if derr != nil {
			return nil, fmt.Errorf("%s: %w", opOptimize, derr)
		}
		oldW = st.W.Copy()
		mag, merr := matrix.SumSquares(change)
		if merr != nil {
			return nil, fmt.Errorf("%s: %w", opOptimize, merr)
		}
		res.Change, res.Steps = mag, step

		if step == 1 {
			tr.seed(change, mag)
		}
		if step > 2 {
			if angle, err = tr.angle(change, mag, o.cfg.Epsilon); err != nil {
				return nil, fmt.Errorf("%s: %w", opOptimize, err)
			}
			if angle > o.cfg.AnnealAngle {
				st.LearningRate *= o.cfg.Anneal
				tr.seed(change, mag)
			}
			if step%o.cfg.LogEvery == 0 || mag < o.cfg.WeightStop {
				o.log.Info().
					Int("step", step).
					Float64("lrate", st.LearningRate).
					Float64("wchange", mag).
					Float64("angle", angle).
					Msgf("Step %d: Lrate %.1e, Wchange %.1e, Angle %.2f", step, st.LearningRate, mag, angle)
			}
			if mag < o.cfg.WeightStop {
				res.Converged = true
				break
			}
		}
		step++
	}

	res.W = st.W
	res.LearningRate = st.LearningRate
	if res.Mixing, err = matrix.PseudoInverse(st.W); err != nil {
		return nil, fmt.Errorf("%s: %w", opOptimize, err)
	}
	if res.Sources, err = matrix.Mul(st.W, xd); err != nil {
		return nil, fmt.Errorf("%s: %w", opOptimize, err)
	}

	return &res, nil
}

// Optimize is shorthand for New(opts...).Optimize(x).
func Optimize(x matrix.Matrix, opts ...Option) (*Result, error) {
	return New(opts...).Optimize(x)
}
