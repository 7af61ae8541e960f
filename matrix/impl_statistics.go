// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Row-oriented statistics for signal matrices, where every row is one
//     signal and every column one sample (the layout used by whitening and ICA).
//   - Compose canonical kernels (MulTrans/Scale/BroadcastSubRows) instead of
//     duplicating tight loops.
//
// Exposed API:
//   - RowMeans(X)            -> means
//   - CenterRows(X)          -> (Xc, means)   // subtract per-row mean
//   - RowCovariance(X)       -> (Cov, means)  // (Xc Xcᵀ)/(c-1)
//   - CrossCorrelation(A, B) -> Corr          // Pearson r between rows of A and rows of B
//
// Determinism & Performance:
//   - Fixed i→j traversal for all explicit loops.

package matrix

import "math"

const (
	opRowMeans     = "RowMeans"
	opCenterRows   = "CenterRows"
	opRowCov       = "RowCovariance"
	opCrossCorrel  = "CrossCorrelation"
	degenerateNorm = 0.0
)

// RowMeans returns the mean of every row.
func RowMeans(X Matrix) ([]float64, error) {
	sums, err := RowSums(X)
	if err != nil {
		return nil, matrixErrorf(opRowMeans, err)
	}
	c := float64(X.Cols())
	for i := range sums {
		sums[i] /= c
	}

	return sums, nil
}

// CenterRows returns a centered copy Xc[i,*] = X[i,*] − mean(X[i,*]) and the row means.
// Complexity: O(r*c).
func CenterRows(X Matrix) (*Dense, []float64, error) {
	means, err := RowMeans(X)
	if err != nil {
		return nil, nil, matrixErrorf(opCenterRows, err)
	}
	Xc, err := BroadcastSubRows(X, means)
	if err != nil {
		return nil, nil, matrixErrorf(opCenterRows, err)
	}

	return Xc, means, nil
}

// RowCovariance computes the sample covariance between rows: Cov = (Xc·Xcᵀ)/(c−1).
// Implementation:
//   - Stage 1: require c>=2 samples (sample denominator).
//   - Stage 2: center rows once; Stage 3: MulTrans then Scale.
//
// Behavior highlights:
//   - Symmetric r×r output; diagonal holds the per-row sample variances.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (c<2).
//
// Complexity:
//   - Time O(r²·c), Space O(r² + r·c).
func RowCovariance(X Matrix) (*Dense, []float64, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, nil, matrixErrorf(opRowCov, err)
	}
	c := X.Cols()
	if c < 2 {
		return nil, nil, matrixErrorf(opRowCov, ErrDimensionMismatch)
	}
	Xc, means, err := CenterRows(X)
	if err != nil {
		return nil, nil, matrixErrorf(opRowCov, err)
	}
	G, err := MulTrans(Xc, Xc)
	if err != nil {
		return nil, nil, matrixErrorf(opRowCov, err)
	}
	Cov, err := Scale(G, 1.0/float64(c-1))
	if err != nil {
		return nil, nil, matrixErrorf(opRowCov, err)
	}

	return Cov, means, nil
}

// CrossCorrelation returns the Pearson correlation between every row of A and
// every row of B: Corr[i,j] = r(A[i,*], B[j,*]). Both inputs need the same
// number of columns. Rows with zero variance correlate as 0 with everything.
//
// Complexity:
//   - Time O((ra+rb)·c + ra·rb·c), Space O(ra·rb + (ra+rb)·c).
func CrossCorrelation(A, B Matrix) (*Dense, error) {
	if err := ValidateNotNil(A); err != nil {
		return nil, matrixErrorf(opCrossCorrel, err)
	}
	if err := ValidateNotNil(B); err != nil {
		return nil, matrixErrorf(opCrossCorrel, err)
	}
	if A.Cols() != B.Cols() || A.Cols() < 2 {
		return nil, matrixErrorf(opCrossCorrel, ErrDimensionMismatch)
	}
	za, err := zscoreRows(A)
	if err != nil {
		return nil, matrixErrorf(opCrossCorrel, err)
	}
	zb, err := zscoreRows(B)
	if err != nil {
		return nil, matrixErrorf(opCrossCorrel, err)
	}
	corr, err := MulTrans(za, zb)
	if err != nil {
		return nil, matrixErrorf(opCrossCorrel, err)
	}

	return corr, nil
}

// zscoreRows centers every row and scales it to unit Euclidean norm, so that
// a dot product of two rows equals their Pearson correlation.
func zscoreRows(X Matrix) (*Dense, error) {
	Xc, _, err := CenterRows(X)
	if err != nil {
		return nil, err
	}
	var i, j, base int
	var norm float64
	for i = 0; i < Xc.r; i++ {
		base = i * Xc.c
		norm = 0
		for j = 0; j < Xc.c; j++ {
			norm += Xc.data[base+j] * Xc.data[base+j]
		}
		norm = math.Sqrt(norm)
		if norm == degenerateNorm {
			continue // zero row stays zero
		}
		for j = 0; j < Xc.c; j++ {
			Xc.data[base+j] /= norm
		}
	}

	return Xc, nil
}
