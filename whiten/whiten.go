package whiten

import (
	"fmt"

	"github.com/katalvlaran/lvica/matrix"
)

const opWhiten = "whiten.Whiten"

// Result is the outcome of PCA whitening. All matrices are owned by the caller.
type Result struct {
	// Data is the whitened data (ncomp×n): the retained right singular
	// vectors as rows. Rows are orthonormal.
	Data *matrix.Dense

	// White is the whitening matrix (ncomp×m): White·X ≈ Data.
	White *matrix.Dense

	// Dewhite is the dewhitening matrix (m×ncomp): Dewhite·Data ≈ X
	// restricted to the retained subspace.
	Dewhite *matrix.Dense

	// Values holds every singular value of X in descending order.
	Values []float64

	// Rank is the numerical rank of X (tolerance σmax·max(m,n)·ε).
	Rank int

	// RetainedVariance is 100·Σσ_retained / Σσ_all.
	RetainedVariance float64
}

// Whiten reduces X (m observations × n variables) to ncomp whitened components.
//
// Algorithm:
//  1. X = U·Σ·Vᵀ (thin SVD, Σ descending).
//  2. Keep the leading ncomp singular triplets (Ur, Σr, Vrᵀ).
//  3. White = diag(1/(Σr+ε))·Urᵀ, Dewhite = Ur·diag(Σr), Data = Vrᵀ.
//
// Data is taken directly from Vrᵀ rather than computed as White·X; by the SVD
// identity both agree up to the ε regularizer.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrNaNInf, matrix.ErrSVDFailed.
//   - ErrComponents when ncomp < 1 or ncomp > min(m, n).
//
// Near-zero retained singular values are not an error here; Rank exposes them.
func Whiten(X matrix.Matrix, ncomp int, opts ...Option) (*Result, error) {
	o := gatherOptions(opts...)
	if err := matrix.ValidateNotNil(X); err != nil {
		return nil, fmt.Errorf("%s: %w", opWhiten, err)
	}
	m, n := X.Rows(), X.Cols()
	if ncomp < 1 || ncomp > min(m, n) {
		return nil, fmt.Errorf("%s: ncomp=%d for %dx%d input: %w", opWhiten, ncomp, m, n, ErrComponents)
	}

	f, err := matrix.SVD(X)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opWhiten, err)
	}

	u, err := f.U.SelectCols(ncomp)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opWhiten, err)
	}
	s := f.Values[:ncomp]
	inv := make([]float64, ncomp)
	for i, v := range s {
		inv[i] = 1 / (v + o.eps)
	}

	ut, err := matrix.Transpose(u)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opWhiten, err)
	}
	white, err := matrix.ScaleRows(ut, inv)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opWhiten, err)
	}
	dewhite, err := matrix.ScaleCols(u, s)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opWhiten, err)
	}
	data, err := f.VT.SelectRows(ncomp)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opWhiten, err)
	}

	res := &Result{
		Data:             data,
		White:            white,
		Dewhite:          dewhite,
		Values:           f.Values,
		Rank:             matrix.RankFromValues(f.Values, m, n, matrix.DefaultRankTol),
		RetainedVariance: retainedVariance(f.Values, ncomp),
	}

	o.logger.Info().
		Int("components", ncomp).
		Int("rank", res.Rank).
		Float64("retained_pct", res.RetainedVariance).
		Msgf("PCA whitening: %.2f%% retained variance", res.RetainedVariance)

	return res, nil
}

// retainedVariance returns 100·Σ values[:k] / Σ values, or 0 for an all-zero spectrum.
func retainedVariance(values []float64, k int) float64 {
	var kept, total float64
	for i, v := range values {
		if i < k {
			kept += v
		}
		total += v
	}
	if total == 0 {
		return 0
	}

	return 100 * kept / total
}
