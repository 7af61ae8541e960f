// SPDX-License-Identifier: MIT

// Package matrix - spectral decompositions backed by gonum.
//
// Purpose:
//   - Thin singular value decomposition (SVD) with singular values in
//     descending order.
//   - Moore–Penrose pseudo-inverse and numerical rank derived from the SVD.
//
// Design:
//   - LAPACK-grade factorizations are delegated to gonum.org/v1/gonum/mat; this
//     file only converts between *Dense and *mat.Dense and applies the cutoffs.
//   - Inputs are copied on the way in, so callers' matrices are never touched.
//
// Complexity quicksheet:
//   - SVD / PseudoInverse / Rank: O(m·n·min(m,n)).
package matrix

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

const (
	opSVD   = "SVD"
	opPinv  = "PseudoInverse"
	opRank  = "Rank"
	noValue = 0.0
)

// SVDResult holds a thin factorization A = U·diag(Values)·VT.
//   - U is m×k with orthonormal columns, k = min(m,n).
//   - Values holds the k singular values, sorted in descending order.
//   - VT is k×n with orthonormal rows (the right singular vectors as rows).
type SVDResult struct {
	U      *Dense
	Values []float64
	VT     *Dense
}

// SVD computes the thin singular value decomposition of m.
// Implementation:
//   - Stage 1: validate non-nil and finite input.
//   - Stage 2: factorize with gonum (mat.SVDThin).
//   - Stage 3: copy U, Σ and Vᵀ back into Dense values.
//
// Errors:
//   - ErrNilMatrix, ErrNaNInf, ErrSVDFailed.
func SVD(m Matrix) (*SVDResult, error) {
	if err := ValidateFinite(m); err != nil {
		return nil, matrixErrorf(opSVD, err)
	}
	a, err := toGonum(m)
	if err != nil {
		return nil, matrixErrorf(opSVD, err)
	}

	var svd mat.SVD
	if ok := svd.Factorize(a, mat.SVDThin); !ok {
		return nil, matrixErrorf(opSVD, ErrSVDFailed)
	}

	var u, v mat.Dense
	svd.UTo(&u)
	svd.VTo(&v)

	U, err := fromGonum(&u)
	if err != nil {
		return nil, matrixErrorf(opSVD, err)
	}
	V, err := fromGonum(&v)
	if err != nil {
		return nil, matrixErrorf(opSVD, err)
	}
	VT, err := Transpose(V)
	if err != nil {
		return nil, matrixErrorf(opSVD, err)
	}

	return &SVDResult{U: U, Values: svd.Values(nil), VT: VT}, nil
}

// PseudoInverse returns the Moore–Penrose pseudo-inverse A⁺ (n×m for an m×n A).
// Singular values at or below rcond·σmax are treated as zero (see WithRcond).
//
// Errors:
//   - Propagated from SVD.
func PseudoInverse(m Matrix, opts ...Option) (*Dense, error) {
	o := gatherOptions(opts...)
	f, err := SVD(m)
	if err != nil {
		return nil, matrixErrorf(opPinv, err)
	}

	cutoff := o.rcond * maxValue(f.Values)
	inv := make([]float64, len(f.Values))
	for i, s := range f.Values {
		if s > cutoff {
			inv[i] = 1 / s
		}
	}

	// A⁺ = V·diag(1/σ)·Uᵀ = (diag(1/σ)·VT)ᵀ·Uᵀ.
	scaled, err := ScaleRows(f.VT, inv)
	if err != nil {
		return nil, matrixErrorf(opPinv, err)
	}
	left, err := Transpose(scaled)
	if err != nil {
		return nil, matrixErrorf(opPinv, err)
	}
	out, err := MulTrans(left, f.U)
	if err != nil {
		return nil, matrixErrorf(opPinv, err)
	}

	return out, nil
}

// Rank returns the numerical rank of m: the count of singular values above the
// tolerance σmax·max(r,c)·MachineEpsilon.
func Rank(m Matrix) (int, error) {
	if err := ValidateFinite(m); err != nil {
		return 0, matrixErrorf(opRank, err)
	}
	a, err := toGonum(m)
	if err != nil {
		return 0, matrixErrorf(opRank, err)
	}
	var svd mat.SVD
	if ok := svd.Factorize(a, mat.SVDNone); !ok {
		return 0, matrixErrorf(opRank, ErrSVDFailed)
	}
	r, c := a.Dims()

	return RankFromValues(svd.Values(nil), r, c, DefaultRankTol), nil
}

// RankFromValues counts singular values strictly above tol. A tol of zero
// selects the automatic tolerance σmax·max(rows,cols)·MachineEpsilon.
func RankFromValues(values []float64, rows, cols int, tol float64) int {
	if tol == noValue {
		tol = maxValue(values) * float64(max(rows, cols)) * MachineEpsilon
	}
	rank := 0
	for _, s := range values {
		if s > tol {
			rank++
		}
	}

	return rank
}

func maxValue(values []float64) float64 {
	best := math.Inf(-1)
	for _, v := range values {
		if v > best {
			best = v
		}
	}
	if math.IsInf(best, -1) {
		return noValue
	}

	return best
}

// toGonum copies m into a freshly allocated *mat.Dense.
func toGonum(m Matrix) (*mat.Dense, error) {
	d, err := asDense(m)
	if err != nil {
		return nil, err
	}

	return mat.NewDense(d.r, d.c, d.Data()), nil
}

// fromGonum copies g (honoring its stride) into a new *Dense.
func fromGonum(g *mat.Dense) (*Dense, error) {
	r, c := g.Dims()
	out, err := NewDense(r, c)
	if err != nil {
		return nil, fmt.Errorf("fromGonum(%dx%d): %w", r, c, err)
	}
	raw := g.RawMatrix()
	for i := 0; i < r; i++ {
		copy(out.data[i*c:(i+1)*c], raw.Data[i*raw.Stride:i*raw.Stride+c])
	}

	return out, nil
}
