// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvica/matrix"
)

// --- row broadcasts -----------------------------------------------------------

func TestBroadcastRows_FastAndFallback_Match(t *testing.T) {
	t.Parallel()

	X := mustRows(t, []float64{1, 2, 3}, []float64{10, 20, 30})
	v := []float64{1, -10}

	for _, in := range []matrix.Matrix{X, hide{X}} {
		add, err := matrix.BroadcastAddRows(in, v)
		require.NoError(t, err)
		require.Equal(t, []float64{2, 3, 4, 0, 10, 20}, add.Data())

		sub, err := matrix.BroadcastSubRows(in, v)
		require.NoError(t, err)
		require.Equal(t, []float64{0, 1, 2, 20, 30, 40}, sub.Data())
	}

	_, err := matrix.BroadcastAddRows(X, []float64{1})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.BroadcastSubRows(X, nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// --- diagonal scalings --------------------------------------------------------

func TestScaleRowsCols(t *testing.T) {
	t.Parallel()

	X := mustRows(t, []float64{1, 2}, []float64{3, 4})

	rows, err := matrix.ScaleRows(X, []float64{2, -1})
	require.NoError(t, err)
	require.Equal(t, []float64{2, 4, -3, -4}, rows.Data())

	cols, err := matrix.ScaleCols(X, []float64{2, -1})
	require.NoError(t, err)
	require.Equal(t, []float64{2, -2, 6, -4}, cols.Data())

	_, err = matrix.ScaleCols(X, []float64{1, 2, 3})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// --- Map ----------------------------------------------------------------------

func TestMap_KeepsNonFinite(t *testing.T) {
	t.Parallel()

	X := mustRows(t, []float64{-1, 0, 1})
	out, err := matrix.Map(X, func(v float64) float64 { return 1 / v })
	require.NoError(t, err)
	require.True(t, math.IsInf(mustAt(t, out, 0, 1), 1))
	require.Equal(t, -1.0, mustAt(t, X, 0, 0), "input untouched")
}

// --- AllClose -----------------------------------------------------------------

func TestAllClose(t *testing.T) {
	t.Parallel()

	a := mustRows(t, []float64{1, 2})
	b := mustRows(t, []float64{1 + 1e-10, 2})
	ok, err := matrix.AllClose(a, b, 0, 1e-9)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = matrix.AllClose(a, b, 0, 1e-12)
	require.NoError(t, err)
	require.False(t, ok)

	nan, err := matrix.NewDenseFrom(1, 2, []float64{math.NaN(), 2}, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)
	ok, err = matrix.AllClose(nan, nan, 1, 1)
	require.NoError(t, err)
	require.False(t, ok)

	_, err = matrix.AllClose(a, mustDense(t, 2, 1), 0, 0)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}
