// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on any Matrix implementation:
// element-wise addition and subtraction, matrix products, transpose, scaling
// and an in-place axpy. All functions validate up front and return
// wrapped sentinels on dimension mismatches.
//
// Notes:
//   - Every kernel materializes its operands once via asDense and then runs
//     fixed-order loops over flat row-major buffers.
//   - Results are always fresh *Dense values; operands are never mutated,
//     except by the explicit *InPlace kernels.

package matrix

import "fmt"

// Operation name constants for unified error wrapping.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opMul       = "Mul"
	opMulT      = "MulTrans"
	opTranspose = "Transpose"
	opScale     = "Scale"
	opAxpy      = "AxpyInPlace"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// addSub computes elementwise out = a + sign*b for sign ∈ {+1, -1}.
// Internal helper for Add/Sub to share validation, allocation, and the flat loop.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the new result.
func addSub(a, b Matrix, sign float64, opTag string) (*Dense, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	da, err := asDense(a)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	db, err := asDense(b)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	res, err := NewDense(da.r, da.c)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	for idx := range res.data {
		res.data[idx] = da.data[idx] + sign*db.data[idx]
	}

	return res, nil
}

// Add computes the element-wise sum C = A + B.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func Add(a, b Matrix) (*Dense, error) { return addSub(a, b, +1, opAdd) }

// Sub computes the element-wise difference C = A - B.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func Sub(a, b Matrix) (*Dense, error) { return addSub(a, b, -1, opSub) }

// Mul performs standard matrix multiplication C = A × B.
// Implementation:
//   - Stage 1: Validate A,B (not nil) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: i→k→j loop over row-major strides, skipping zero A[i,k].
//
// Behavior highlights:
//   - Deterministic triple loop; no temporary tiles; one allocation for C.
//   - Zero-skipping drops 0·NaN terms, so a NaN in B does not always reach C;
//     callers that need NaN propagation must check B directly (see HasNaN).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b Matrix) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	da, err := asDense(a)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	db, err := asDense(b)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	res, err := NewDense(da.r, db.c)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	var i, j, k int
	var av float64
	var offA, offB, offR int
	for i = 0; i < da.r; i++ {
		offA = i * da.c
		offR = i * db.c
		for k = 0; k < da.c; k++ {
			av = da.data[offA+k]
			if av == 0 {
				continue
			}
			offB = k * db.c
			for j = 0; j < db.c; j++ {
				res.data[offR+j] += av * db.data[offB+j]
			}
		}
	}

	return res, nil
}

// MulTrans computes C = A × Bᵀ without materializing Bᵀ.
// Both operands must have the same number of columns.
//
// Complexity:
//   - Time O(r_a*r_b*c), Space O(r_a*r_b).
func MulTrans(a, b Matrix) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opMulT, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(opMulT, err)
	}
	if a.Cols() != b.Cols() {
		return nil, matrixErrorf(opMulT, ErrDimensionMismatch)
	}
	da, err := asDense(a)
	if err != nil {
		return nil, matrixErrorf(opMulT, err)
	}
	db, err := asDense(b)
	if err != nil {
		return nil, matrixErrorf(opMulT, err)
	}
	res, err := NewDense(da.r, db.r)
	if err != nil {
		return nil, matrixErrorf(opMulT, err)
	}

	var i, j, k int
	var acc float64
	var rowA, rowB []float64
	for i = 0; i < da.r; i++ {
		rowA = da.data[i*da.c : (i+1)*da.c]
		for j = 0; j < db.r; j++ {
			rowB = db.data[j*db.c : (j+1)*db.c]
			acc = 0
			for k = 0; k < da.c; k++ {
				acc += rowA[k] * rowB[k]
			}
			res.data[i*db.r+j] = acc
		}
	}

	return res, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// Complexity: O(r*c).
func Transpose(m Matrix) (*Dense, error) {
	dm, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	res, err := NewDense(dm.c, dm.r)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	var i, j, base int
	for i = 0; i < dm.r; i++ {
		base = i * dm.c
		for j = 0; j < dm.c; j++ {
			res.data[j*dm.r+i] = dm.data[base+j]
		}
	}

	return res, nil
}

// Scale returns a new matrix whose elements are alpha * m[i,j].
func Scale(m Matrix, alpha float64) (*Dense, error) {
	dm, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	res := dm.copyDense()
	for idx := range res.data {
		res.data[idx] *= alpha
	}

	return res, nil
}

// AxpyInPlace performs dst ← dst + alpha·x without allocating.
// dst must be a non-nil *Dense with the same shape as x. The numeric policy of
// dst is not consulted: this is an arithmetic kernel, like Mul.
func AxpyInPlace(dst *Dense, alpha float64, x Matrix) error {
	if dst == nil {
		return matrixErrorf(opAxpy, ErrNilMatrix)
	}
	if err := ValidateBinarySameShape(dst, x); err != nil {
		return matrixErrorf(opAxpy, err)
	}
	dx, err := asDense(x)
	if err != nil {
		return matrixErrorf(opAxpy, err)
	}
	for idx := range dst.data {
		dst.data[idx] += alpha * dx.data[idx]
	}

	return nil
}
