// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on any Matrix implementation:
// matrix multiplication, transpose, subtraction and matrix-vector
// products. All functions perform strict fail-fast validation
// and return clear errors on dimension mismatches.
//
// Purpose:
//   - Canonical linear-algebra kernels used by the qr package.
//   - Operation tags and shared constants for determinism and error reporting.
//
// Notes:
//   - All kernels use central validators and wrap sentinels via matrixErrorf.
//   - Every kernel allocates a fresh *Dense; operands are never mutated.

package matrix

import "fmt"

// NormZero is the additive identity for norm and accumulation operations.
const NormZero = 0.0

// ZeroSum is the initial value of every inner-product accumulator.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opSub              = "Sub"
	opMul              = "Mul"
	opTranspose        = "Transpose"
	opMatVec           = "MatVec"
	opNormalizeColumns = "NormalizeColumns"
	opIdentityLike     = "IdentityLike"
	opAllClose         = "AllClose"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
//
// AI-Hints:
//   - Always gate calls with `if err != nil { return nil, matrixErrorf(tag, err) }`.
//   - Keep `tag` to the canonical constants to simplify log/search pipelines.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Mul performs standard matrix multiplication C = A × B (no aliasing).
// Implementation:
//   - Stage 1: Validate A,B (not nil) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: For every (i,j) accumulate the full inner product Σ_k A[i,k]·B[k,j]
//     in ascending k. *Dense operands read the flat buffers directly; other
//     implementations go through At with the same loop order.
//
// Behavior highlights:
//   - No zero-skipping and no blocked/Strassen variants: each entry is the
//     complete sum, so NaN/Inf propagate exactly as the arithmetic dictates.
//   - Both paths visit (i,j,k) in the same order and produce identical bits.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (inner mismatch).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b Matrix) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res, err := NewDense(aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	var (
		i, j, k int
		av, bv  float64
		sum     float64
	)

	// Fast-path for two Dense matrices (row-major offsets).
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			var rowOffsetA int
			for i = 0; i < aRows; i++ {
				rowOffsetA = i * aCols
				for j = 0; j < bCols; j++ {
					sum = ZeroSum
					for k = 0; k < aCols; k++ {
						sum += da.data[rowOffsetA+k] * db.data[k*bCols+j]
					}
					res.data[i*bCols+j] = sum
				}
			}

			return res, nil
		}
	}

	// Fallback: generic interface triple-loop (i-j-k)
	for i = 0; i < aRows; i++ {
		for j = 0; j < bCols; j++ {
			sum = ZeroSum
			for k = 0; k < aCols; k++ {
				if av, err = a.At(i, k); err != nil {
					return nil, matrixErrorf(opMul, err)
				}
				if bv, err = b.At(k, j); err != nil {
					return nil, matrixErrorf(opMul, err)
				}
				sum += av * bv
			}
			res.data[i*bCols+j] = sum
		}
	}

	return res, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// Works for any r×c input; a 1×n row becomes an n×1 column and vice versa.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the returned matrix.
func Transpose(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(cols, rows) // dims flipped
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	var i, j int
	if dm, ok := m.(*Dense); ok {
		// data[i*cols + j] → res.data[j*rows + i]
		res.validateNaNInf = dm.validateNaNInf
		var baseSrc int
		for i = 0; i < rows; i++ {
			baseSrc = i * cols
			for j = 0; j < cols; j++ {
				res.data[j*rows+i] = dm.data[baseSrc+j]
			}
		}

		return res, nil
	}

	// Fallback: generic interface loop
	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opTranspose, err)
			}
			res.data[j*rows+i] = v
		}
	}

	return res, nil
}

// Sub computes the element-wise difference C = A − B into a fresh Dense.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(r*c).
func Sub(a, b Matrix) (*Dense, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opSub, err)
	}
	res, err := denseCopy(a)
	if err != nil {
		return nil, matrixErrorf(opSub, err)
	}
	var bv float64
	for i := 0; i < res.r; i++ {
		for j := 0; j < res.c; j++ {
			if bv, err = b.At(i, j); err != nil {
				return nil, matrixErrorf(opSub, err)
			}
			res.data[i*res.c+j] -= bv
		}
	}

	return res, nil
}

// MatVec computes y = m·x where len(x) == m.Cols().
// Each y[i] is Dot(row_i, x).
//
// Errors:
//   - ErrNilMatrix (nil m or x), ErrDimensionMismatch (len(x) != Cols).
//
// Complexity:
//   - Time O(r*c), Space O(r).
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	d, err := denseCopy(m)
	if err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}

	y := make([]float64, d.r)
	for i := 0; i < d.r; i++ {
		if y[i], err = Dot(d.data[i*d.c:(i+1)*d.c], x); err != nil {
			return nil, matrixErrorf(opMatVec, err)
		}
	}

	return y, nil
}

// denseCopy materializes any Matrix as an independent *Dense.
// *Dense inputs take the Clone fast path; others are copied via At.
func denseCopy(m Matrix) (*Dense, error) {
	if d, ok := m.(*Dense); ok {
		return d.Clone().(*Dense), nil
	}
	res, err := NewDense(m.Rows(), m.Cols())
	if err != nil {
		return nil, err
	}
	var v float64
	for i := 0; i < res.r; i++ {
		for j := 0; j < res.c; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, err
			}
			res.data[i*res.c+j] = v
		}
	}

	return res, nil
}

// AsDense returns an independent *Dense copy of m, whatever its concrete type.
// Errors: ErrNilMatrix.
func AsDense(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, err
	}

	return denseCopy(m)
}
