// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating shape/nil/symmetry checks here.
//  - Offer read-only structural checks (triangularity, sub-diagonal mass) used
//    by factorization tests and eigen diagnostics.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.
//
// Note:
//  - Each composite validator follows a fixed sequence (e.g. NotNil → Shape).

package matrix

import (
	"fmt"
	"math"
)

// zeroTol is the lower bound for user tolerances; negatives are flipped.
const zeroTol = 0.0

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Returns ErrNilMatrix if m == nil or m is a nil *Dense wrapped in the
// interface. Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix) // single source of truth for "nil argument"
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix) // typed nil
	}

	return nil
}

// ValidateSameShape ensures matrices a and b have equal dimensions.
// Assumes a and b are not nil (caller must ensure).
func ValidateSameShape(a, b Matrix) error {
	if a.Rows() != b.Rows() {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSquare checks that m is square (Rows == Cols).
// Assumes m is not nil. Errors: ErrDimensionMismatch.
func ValidateSquare(m Matrix) error {
	if m.Rows() != m.Cols() {
		return validatorErrorf(fmt.Sprintf("ValidateSquare(%dx%d)", m.Rows(), m.Cols()), ErrDimensionMismatch)
	}

	return nil
}

// ValidateVecLen ensures the vector length matches the required size n.
func ValidateVecLen(x []float64, n int) error {
	// Disallow nil vectors to avoid subtle bugs in MatVec-like routines.
	if x == nil {
		return validatorErrorf("ValidateVecLen", ErrNilMatrix) // reuse the "nil argument" sentinel
	}
	if len(x) != n {
		return validatorErrorf("ValidateVecLen", ErrDimensionMismatch)
	}

	return nil
}

// ValidateBinarySameShape – Composite: NotNil(a) → NotNil(b) → SameShape.
func ValidateBinarySameShape(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}

	return nil
}

// ValidateSquareNonNil – Composite: NotNil → Square.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// AI-Hints: Use before any factorization or spectral method.
func ValidateSquareNonNil(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateSquareNonNil", err)
	}
	if err := ValidateSquare(m); err != nil {
		return validatorErrorf("ValidateSquareNonNil", err)
	}

	return nil
}

// ValidateMulCompatible – Ensures a.Cols == b.Rows, inputs non-nil.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func ValidateMulCompatible(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if a.Cols() != b.Rows() {
		return validatorErrorf(
			fmt.Sprintf("ValidateMulCompatible(%dx%d · %dx%d)", a.Rows(), a.Cols(), b.Rows(), b.Cols()),
			ErrDimensionMismatch,
		)
	}

	return nil
}

// normalizeTol rejects NaN/Inf tolerances and flips negatives.
func normalizeTol(tol float64) (float64, error) {
	if math.IsNaN(tol) || math.IsInf(tol, 0) {
		return 0, ErrNaNInf
	}
	if tol < zeroTol {
		tol = -tol
	}

	return tol, nil
}

// ValidateSymmetric checks A is symmetric within tolerance tol:
// |A[i,j] - A[j,i]| ≤ tol for all i<j.
//
// Complexity: O(n^2) where n = Rows(A). Space: O(1).
// Returns ErrNilMatrix/ErrDimensionMismatch on structural issues, ErrNaNInf on bad tol,
// ErrAsymmetry on violation.
func ValidateSymmetric(m Matrix, tol float64) error {
	if err := ValidateSquareNonNil(m); err != nil {
		return validatorErrorf("ValidateSymmetric", err)
	}
	tol, err := normalizeTol(tol)
	if err != nil {
		return validatorErrorf("ValidateSymmetric", err)
	}

	n := m.Rows()
	var (
		i, j     int
		aij, aji float64
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ { // scan only upper triangle
			aij, _ = m.At(i, j) // errors are not expected after shape validation
			aji, _ = m.At(j, i)
			if math.Abs(aij-aji) > tol {
				return validatorErrorf("ValidateSymmetric", ErrAsymmetry)
			}
		}
	}

	return nil
}

// IsUpperTriangular reports whether every entry strictly below the main
// diagonal satisfies |A[i,j]| ≤ tol. Rectangular inputs are accepted.
// Errors: ErrNilMatrix, ErrNaNInf (bad tol).
// Complexity: O(r*c).
func IsUpperTriangular(m Matrix, tol float64) (bool, error) {
	if err := ValidateNotNil(m); err != nil {
		return false, validatorErrorf("IsUpperTriangular", err)
	}
	tol, err := normalizeTol(tol)
	if err != nil {
		return false, validatorErrorf("IsUpperTriangular", err)
	}

	sub, err := SubDiagonalMax(m)
	if err != nil {
		return false, validatorErrorf("IsUpperTriangular", err)
	}

	return sub <= tol, nil
}

// SubDiagonalMax returns max_{i>j} |A[i,j]|, or 0 for a single row.
// For an eigen iterate this is the distance from (quasi-)triangular form;
// it is a diagnostic, never a stopping rule.
// Complexity: O(r*c).
func SubDiagonalMax(m Matrix) (float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, validatorErrorf("SubDiagonalMax", err)
	}

	var maxAbs float64
	if d, ok := m.(*Dense); ok {
		d.Do(func(i, j int, v float64) bool {
			if i > j && math.Abs(v) > maxAbs {
				maxAbs = math.Abs(v)
			}
			return true
		})

		return maxAbs, nil
	}

	var (
		i, j int
		v    float64
		err  error
	)
	for i = 1; i < m.Rows(); i++ {
		for j = 0; j < i && j < m.Cols(); j++ {
			v, err = m.At(i, j)
			if err != nil {
				return 0, validatorErrorf("SubDiagonalMax", err)
			}
			if math.Abs(v) > maxAbs {
				maxAbs = math.Abs(v)
			}
		}
	}

	return maxAbs, nil
}
