package infomax_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvica/matrix"
	"github.com/katalvlaran/lvica/whiten"
)

// laplacian returns a k×n matrix of independent unit-scale Laplacian samples.
func laplacian(t testing.TB, r *rand.Rand, k, n int) *matrix.Dense {
	t.Helper()
	s, err := matrix.NewDense(k, n)
	require.NoError(t, err)
	for i := 0; i < k; i++ {
		for j := 0; j < n; j++ {
			v := r.ExpFloat64()
			if r.Intn(2) == 0 {
				v = -v
			}
			require.NoError(t, s.Set(i, j, v))
		}
	}

	return s
}

// mixed returns (A·S, S) for a fixed 4×2 mixing matrix and Laplacian S.
func mixed(t testing.TB, n int) (*matrix.Dense, *matrix.Dense) {
	t.Helper()
	s := laplacian(t, rand.New(rand.NewSource(11)), 2, n)
	a, err := matrix.NewFromRows([][]float64{
		{1.0, 0.6},
		{0.4, 1.0},
		{0.7, -0.3},
		{-0.2, 0.9},
	})
	require.NoError(t, err)
	x, err := matrix.Mul(a, s)
	require.NoError(t, err)

	return x, s
}

// whitened returns the 2-component whitened form of mixed(n).
func whitened(t testing.TB, n int) (*matrix.Dense, *matrix.Dense) {
	t.Helper()
	x, s := mixed(t, n)
	w, err := whiten.Whiten(x, 2)
	require.NoError(t, err)

	return w.Data, s
}

// requireRecovered checks every true source has an estimate with |r| > minAbs.
func requireRecovered(t *testing.T, est, truth *matrix.Dense, minAbs float64) {
	t.Helper()
	r, err := matrix.CrossCorrelation(est, truth)
	require.NoError(t, err)
	for j := 0; j < truth.Rows(); j++ {
		best := 0.0
		for i := 0; i < est.Rows(); i++ {
			v, err := r.At(i, j)
			require.NoError(t, err)
			if v < 0 {
				v = -v
			}
			if v > best {
				best = v
			}
		}
		require.Greaterf(t, best, minAbs, "source %d not recovered", j)
	}
}
