// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvica/matrix"
)

// TestOptions_Panics checks that nonsensical option values are rejected eagerly.
func TestOptions_Panics(t *testing.T) {
	t.Parallel()

	require.Panics(t, func() { matrix.WithRcond(-1) })
	require.Panics(t, func() { matrix.WithRcond(math.NaN()) })
	require.Panics(t, func() { matrix.WithRcond(math.Inf(1)) })
	require.NotPanics(t, func() { matrix.WithRcond(0) })
}

// TestWithRcond_Cutoff shows that a large rcond drops small singular values.
func TestWithRcond_Cutoff(t *testing.T) {
	t.Parallel()

	A := mustRows(t, []float64{1, 0}, []float64{0, 1e-3})

	p, err := matrix.PseudoInverse(A)
	require.NoError(t, err)
	require.InDelta(t, 1e3, mustAt(t, p, 1, 1), 1e-9)

	p, err = matrix.PseudoInverse(A, matrix.WithRcond(1e-2))
	require.NoError(t, err)
	require.InDelta(t, 0, mustAt(t, p, 1, 1), 1e-12)
	require.InDelta(t, 1, mustAt(t, p, 0, 0), 1e-12)
}

// TestPolicyOptions_LastWriterWins checks the NaN policy toggles in order.
func TestPolicyOptions_LastWriterWins(t *testing.T) {
	t.Parallel()

	m, err := matrix.NewDenseWith(1, 1, matrix.WithNoValidateNaNInf(), matrix.WithValidateNaNInf())
	require.NoError(t, err)
	require.ErrorIs(t, m.Set(0, 0, math.NaN()), matrix.ErrNaNInf)

	m, err = matrix.NewDenseWith(1, 1, matrix.WithValidateNaNInf(), matrix.WithNoValidateNaNInf())
	require.NoError(t, err)
	require.NoError(t, m.Set(0, 0, math.NaN()))
}
