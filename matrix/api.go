// SPDX-License-Identifier: MIT
// Package matrix - public constructors and reductions.
//
// Purpose:
//   - Intention-revealing constructors (zeros, identity).
//   - Whole-matrix reductions used by iterative solvers: sums of squares,
//     Frobenius inner products, max-abs and NaN scans.
//
// Determinism & Policy:
//   - Reductions walk the flat buffer in a fixed 0..n-1 order, so results are
//     bitwise reproducible for the same input.
package matrix

import "math"

// NewZeros returns a new zero-initialized *Dense of size rows×cols.
// It is a thin alias of NewDense with an intention-revealing name.
func NewZeros(rows, cols int) (*Dense, error) { return NewDense(rows, cols) }

// NewIdentity returns I_n (n×n identity).
// Errors: ErrInvalidDimensions when n<=0.
func NewIdentity(n int) (*Dense, error) {
	m, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}

	return m, nil
}

// RowSums returns r where r[i] = Σ_j m[i,j].
// Complexity: O(rc).
func RowSums(m Matrix) ([]float64, error) {
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf("RowSums", err)
	}
	out := make([]float64, d.r)
	var i, j, base int
	for i = 0; i < d.r; i++ {
		base = i * d.c
		for j = 0; j < d.c; j++ {
			out[i] += d.data[base+j]
		}
	}

	return out, nil
}

// SumSquares returns Σ m[i,j]², the squared Frobenius norm.
func SumSquares(m Matrix) (float64, error) {
	d, err := asDense(m)
	if err != nil {
		return 0, matrixErrorf("SumSquares", err)
	}
	var s float64
	for _, v := range d.data {
		s += v * v
	}

	return s, nil
}

// FrobeniusInner returns Σ a[i,j]·b[i,j] for equally shaped a and b.
func FrobeniusInner(a, b Matrix) (float64, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return 0, matrixErrorf("FrobeniusInner", err)
	}
	da, err := asDense(a)
	if err != nil {
		return 0, matrixErrorf("FrobeniusInner", err)
	}
	db, err := asDense(b)
	if err != nil {
		return 0, matrixErrorf("FrobeniusInner", err)
	}
	var s float64
	for idx := range da.data {
		s += da.data[idx] * db.data[idx]
	}

	return s, nil
}

// MaxAbs returns max |m[i,j]|. NaN entries are skipped; use HasNaN to detect them.
func MaxAbs(m Matrix) (float64, error) {
	d, err := asDense(m)
	if err != nil {
		return 0, matrixErrorf("MaxAbs", err)
	}
	var best float64
	for _, v := range d.data {
		if a := math.Abs(v); a > best {
			best = a
		}
	}

	return best, nil
}

// HasNaN reports whether any entry of m is NaN. A nil matrix has no NaN.
func HasNaN(m Matrix) bool {
	d, err := asDense(m)
	if err != nil {
		return false
	}
	for _, v := range d.data {
		if math.IsNaN(v) {
			return true
		}
	}

	return false
}
