// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Element-wise and broadcast kernels shared by statistics, whitening and
//     the Infomax update (row broadcasts of a bias, diagonal scalings).
//   - Keep all loops deterministic over flat row-major buffers.
//
// Determinism & Performance:
//   - Fixed loop orders (i→j or flat 0..n-1).
//   - No hidden allocations beyond the output Dense; O(r*c) time and space.

package matrix

import "math"

// BroadcastAddRows computes out[i,j] = X[i,j] + v[i] (len(v) == Rows(X)).
// Used to add a per-row bias across every column of a block.
func BroadcastAddRows(X Matrix, v []float64) (*Dense, error) {
	return broadcastRows(X, v, +1, "BroadcastAddRows")
}

// BroadcastSubRows computes out[i,j] = X[i,j] - v[i] (len(v) == Rows(X)).
func BroadcastSubRows(X Matrix, v []float64) (*Dense, error) {
	return broadcastRows(X, v, -1, "BroadcastSubRows")
}

func broadcastRows(X Matrix, v []float64, sign float64, tag string) (*Dense, error) {
	d, err := asDense(X)
	if err != nil {
		return nil, matrixErrorf(tag, err)
	}
	if err = ValidateVecLen(v, d.r); err != nil {
		return nil, matrixErrorf(tag, err)
	}
	out := d.copyDense()
	var i, j, base int
	for i = 0; i < d.r; i++ {
		base = i * d.c
		for j = 0; j < d.c; j++ {
			out.data[base+j] += sign * v[i]
		}
	}

	return out, nil
}

// ScaleRows computes diag(s)·X, i.e. out[i,j] = s[i]·X[i,j].
func ScaleRows(X Matrix, s []float64) (*Dense, error) {
	d, err := asDense(X)
	if err != nil {
		return nil, matrixErrorf("ScaleRows", err)
	}
	if err = ValidateVecLen(s, d.r); err != nil {
		return nil, matrixErrorf("ScaleRows", err)
	}
	out := d.copyDense()
	var i, j, base int
	for i = 0; i < d.r; i++ {
		base = i * d.c
		for j = 0; j < d.c; j++ {
			out.data[base+j] *= s[i]
		}
	}

	return out, nil
}

// ScaleCols computes X·diag(s), i.e. out[i,j] = X[i,j]·s[j].
func ScaleCols(X Matrix, s []float64) (*Dense, error) {
	d, err := asDense(X)
	if err != nil {
		return nil, matrixErrorf("ScaleCols", err)
	}
	if err = ValidateVecLen(s, d.c); err != nil {
		return nil, matrixErrorf("ScaleCols", err)
	}
	out := d.copyDense()
	var i, j, base int
	for i = 0; i < d.r; i++ {
		base = i * d.c
		for j = 0; j < d.c; j++ {
			out.data[base+j] *= s[j]
		}
	}

	return out, nil
}

// Map returns a copy of X with f applied to every element.
// Unlike Dense.Apply it never consults the numeric policy; non-finite results
// are kept so that callers can detect them.
func Map(X Matrix, f func(v float64) float64) (*Dense, error) {
	d, err := asDense(X)
	if err != nil {
		return nil, matrixErrorf("Map", err)
	}
	out := d.copyDense()
	for idx, v := range out.data {
		out.data[idx] = f(v)
	}

	return out, nil
}

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
// NaN != anything; +Inf equals +Inf; -Inf equals -Inf.
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf("AllClose", err)
	}
	da, err := asDense(a)
	if err != nil {
		return false, matrixErrorf("AllClose", err)
	}
	db, err := asDense(b)
	if err != nil {
		return false, matrixErrorf("AllClose", err)
	}
	var x, y float64
	for idx := range da.data {
		x, y = da.data[idx], db.data[idx]
		if math.IsNaN(x) || math.IsNaN(y) {
			return false, nil
		}
		if math.IsInf(x, 0) || math.IsInf(y, 0) {
			if x != y {
				return false, nil
			}
			continue
		}
		if math.Abs(x-y) > atol+rtol*math.Abs(y) {
			return false, nil
		}
	}

	return true, nil
}
