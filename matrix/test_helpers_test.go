// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   - Provide small, deterministic fixtures and utilities for kernels.
//   - Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvica/matrix"
)

// hide wraps any Matrix to hide its concrete type from type assertions,
// forcing kernels through their generic (non-*Dense) materialization path.
type hide struct{ matrix.Matrix }

// mustDense allocates an r×c zero *Dense or fails the test.
func mustDense(tb testing.TB, r, c int) *matrix.Dense {
	tb.Helper()
	m, err := matrix.NewDense(r, c)
	require.NoError(tb, err)

	return m
}

// mustRows builds a *Dense from literal rows or fails the test.
func mustRows(tb testing.TB, rows ...[]float64) *matrix.Dense {
	tb.Helper()
	m, err := matrix.NewFromRows(rows)
	require.NoError(tb, err)

	return m
}

// mustAt reads m[i,j] or fails the test.
func mustAt(tb testing.TB, m matrix.Matrix, i, j int) float64 {
	tb.Helper()
	v, err := m.At(i, j)
	require.NoError(tb, err)

	return v
}

// fillDenseRand fills m with uniform values in [-1, 1) from a fixed seed.
func fillDenseRand(tb testing.TB, m *matrix.Dense, seed int64) {
	tb.Helper()
	r := rand.New(rand.NewSource(seed))
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			require.NoError(tb, m.Set(i, j, 2*r.Float64()-1))
		}
	}
}

// randDense returns a fresh r×c matrix filled by fillDenseRand.
func randDense(tb testing.TB, r, c int, seed int64) *matrix.Dense {
	tb.Helper()
	m := mustDense(tb, r, c)
	fillDenseRand(tb, m, seed)

	return m
}

// requireClose asserts element-wise |got-want| <= tol.
func requireClose(tb testing.TB, want, got matrix.Matrix, tol float64) {
	tb.Helper()
	ok, err := matrix.AllClose(got, want, 0, tol)
	require.NoError(tb, err)
	require.Truef(tb, ok, "want\n%v\ngot\n%v", want, got)
}
