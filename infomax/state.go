package infomax

import (
	"fmt"

	"github.com/katalvlaran/lvica/matrix"
)

// rankUnknown marks a signal rank that has not been measured yet.
const rankUnknown = -1

// State is the mutable training state shared by consecutive sweeps.
// W and Bias are updated in place; StartW is never modified.
type State struct {
	// W is the current unmixing matrix (ncomp×ncomp).
	W *matrix.Dense

	// Bias is the per-component bias (len ncomp).
	Bias []float64

	// LearningRate is the current step size.
	LearningRate float64

	// StartW is the matrix W is reset to after a blow-up.
	StartW *matrix.Dense

	rank int
}

// NewState returns the initial state for ncomp components: W = StartW = I,
// zero bias and the rate Config.InitialLearningRate(ncomp).
func (o *Optimizer) NewState(ncomp int) (*State, error) {
	if ncomp < 2 {
		return nil, fmt.Errorf("%s: ncomp=%d: %w", opNewState, ncomp, ErrTooFewComponents)
	}
	w, err := matrix.NewIdentity(ncomp)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opNewState, err)
	}

	return &State{
		W:            w,
		Bias:         make([]float64, ncomp),
		LearningRate: o.cfg.InitialLearningRate(ncomp),
		StartW:       w.Copy(),
		rank:         o.rank,
	}, nil
}

// reset restores W and Bias after a blow-up. The learning rate is left to the caller.
func (st *State) reset() {
	st.W = st.StartW.Copy()
	for i := range st.Bias {
		st.Bias[i] = 0
	}
}

// signalRank returns the rank of x, computing it on first use only.
func (st *State) signalRank(x *matrix.Dense) (int, error) {
	if st.rank != rankUnknown {
		return st.rank, nil
	}
	r, err := matrix.Rank(x)
	if err != nil {
		return 0, err
	}
	st.rank = r

	return r, nil
}
