package infomax_test

import (
	"bytes"
	"math"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvica/infomax"
	"github.com/katalvlaran/lvica/matrix"
)

// explosive makes the first block of any sweep blow up: with a rate of
// about 1.44 and a 31-column block, W grows by ~45× against a cap of 10.
func explosive() infomax.Config {
	cfg := infomax.DefaultConfig()
	cfg.LearningRateScale = 1
	cfg.MaxWeight = 10

	return cfg
}

func TestNewState(t *testing.T) {
	o := infomax.New()
	_, err := o.NewState(1)
	require.ErrorIs(t, err, infomax.ErrTooFewComponents)

	st, err := o.NewState(3)
	require.NoError(t, err)
	id, err := matrix.NewIdentity(3)
	require.NoError(t, err)
	require.Equal(t, id.Data(), st.W.Data())
	require.Equal(t, id.Data(), st.StartW.Data())
	require.Equal(t, []float64{0, 0, 0}, st.Bias)
	require.InDelta(t, 0.005/math.Log(3), st.LearningRate, 1e-15)
}

func TestSweep_BlowUpRestarts(t *testing.T) {
	x, _ := whitened(t, 3000)
	o := infomax.New(infomax.WithConfig(explosive()))
	st, err := o.NewState(2)
	require.NoError(t, err)
	lr := st.LearningRate

	restarted, err := o.Sweep(x, st)
	require.NoError(t, err)
	require.True(t, restarted)
	require.InDelta(t, 0.9*lr, st.LearningRate, 1e-12)
	require.Equal(t, st.StartW.Data(), st.W.Data())
	require.Equal(t, []float64{0, 0}, st.Bias)
}

func TestSweep_RankDeficient(t *testing.T) {
	x, _ := whitened(t, 3000)
	row, err := x.Row(0)
	require.NoError(t, err)
	dup, err := matrix.NewFromRows([][]float64{row, row})
	require.NoError(t, err)

	o := infomax.New(infomax.WithConfig(explosive()))
	st, err := o.NewState(2)
	require.NoError(t, err)
	_, err = o.Sweep(dup, st)
	require.ErrorIs(t, err, infomax.ErrRankDeficient)
}

func TestOptimize_SignalRankHint(t *testing.T) {
	x, _ := whitened(t, 3000)
	_, err := infomax.Optimize(x, infomax.WithConfig(explosive()), infomax.WithSignalRank(1))
	require.ErrorIs(t, err, infomax.ErrRankDeficient)
}

func TestOptimize_NonInvertible(t *testing.T) {
	x, _ := whitened(t, 3000)
	cfg := explosive()
	cfg.MinLearningRate = 1.4
	_, err := infomax.Optimize(x, infomax.WithConfig(cfg))
	require.ErrorIs(t, err, infomax.ErrNonInvertible)
}

func TestOptimize_InputErrors(t *testing.T) {
	_, err := infomax.Optimize(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	small, err := matrix.NewFromRows([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)
	_, err = infomax.Optimize(small)
	require.ErrorIs(t, err, infomax.ErrTooFewSamples)

	row, err := matrix.NewFromRows([][]float64{{1, 2, 3, 4, 5, 6}})
	require.NoError(t, err)
	_, err = infomax.Optimize(row)
	require.ErrorIs(t, err, infomax.ErrTooFewComponents)

	bad, err := matrix.NewDenseWith(2, 6, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)
	require.NoError(t, bad.Set(1, 3, math.NaN()))
	_, err = infomax.Optimize(bad)
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

func TestOptimize_Deterministic(t *testing.T) {
	x, _ := whitened(t, 1200)
	cfg := infomax.DefaultConfig()
	cfg.MaxSteps = 40

	a, err := infomax.Optimize(x, infomax.WithConfig(cfg), infomax.WithSeed(7))
	require.NoError(t, err)
	b, err := infomax.Optimize(x, infomax.WithConfig(cfg), infomax.WithSeed(7))
	require.NoError(t, err)
	require.Equal(t, a.W.Data(), b.W.Data())
	require.Equal(t, a.Steps, b.Steps)
}

func TestOptimize_StepLimit(t *testing.T) {
	x, _ := whitened(t, 3000)
	cfg := infomax.DefaultConfig()
	cfg.MaxSteps = 3

	res, err := infomax.Optimize(x, infomax.WithConfig(cfg), infomax.WithSeed(3))
	require.NoError(t, err, "hitting the step cap is not an error")
	require.False(t, res.Converged)
	require.Equal(t, 2, res.Steps)
	require.Zero(t, res.Restarts)
	require.NotNil(t, res.W)
	require.NotNil(t, res.Mixing)
	require.NotNil(t, res.Sources)
	require.Equal(t, []int{2, 3000}, []int{res.Sources.Rows(), res.Sources.Cols()})
}

func TestOptimize_RecoversSources(t *testing.T) {
	x, s := whitened(t, 3000)
	before := x.Data()

	cfg := infomax.DefaultConfig()

	res, err := infomax.Optimize(x, infomax.WithConfig(cfg), infomax.WithSeed(3))
	require.NoError(t, err)
	require.Equal(t, before, x.Data(), "input must not be modified")
	require.False(t, matrix.HasNaN(res.W))
	require.Positive(t, res.Steps)
	require.GreaterOrEqual(t, res.Sweeps, res.Steps)

	// A clean run stops on the weight-change rule, well before the cap,
	// and the angle rule has annealed the rate along the way.
	require.True(t, res.Converged)
	require.Less(t, res.Steps, cfg.MaxSteps)
	require.Less(t, res.Change, cfg.WeightStop)
	require.Zero(t, res.Restarts)
	require.Less(t, res.LearningRate, cfg.InitialLearningRate(2))

	requireRecovered(t, res.Sources, s, 0.9)

	// Mixing is the inverse of W.
	prod, err := matrix.Mul(res.Mixing, res.W)
	require.NoError(t, err)
	id, err := matrix.NewIdentity(2)
	require.NoError(t, err)
	ok, err := matrix.AllClose(prod, id, 1e-8, 1e-8)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestOptimize_VerboseLogging(t *testing.T) {
	x, _ := whitened(t, 600)
	cfg := infomax.DefaultConfig()
	cfg.MaxSteps = 12
	cfg.LogEvery = 5

	var buf bytes.Buffer
	_, err := infomax.Optimize(x,
		infomax.WithConfig(cfg),
		infomax.WithVerbose(true),
		infomax.WithLogger(zerolog.New(&buf)),
	)
	require.NoError(t, err)
	require.Contains(t, buf.String(), "Beginning ICA training...")
	require.Contains(t, buf.String(), `"step":5`)

	buf.Reset()
	_, err = infomax.Optimize(x, infomax.WithConfig(cfg), infomax.WithLogger(zerolog.New(&buf)))
	require.NoError(t, err)
	require.Empty(t, buf.String())
}
