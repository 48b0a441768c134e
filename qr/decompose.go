// SPDX-License-Identifier: MIT

package qr

import "github.com/katalvlaran/qreigen/matrix"

// Decompose computes A = Q·R with Q orthogonal and R upper triangular.
//
// Implementation:
//   - Stage 1: validate A (non-nil, square); R := copy(A); acc := I.
//   - Stage 2: for column = 0..n-2 in increasing order:
//     Q_i := Reflector(R, column); acc := Q_i·acc; R := Q_i·R.
//   - Stage 3: return (accᵀ, R).
//
// Behavior highlights:
//   - Each reflector acts on the partially triangularized R, so the column
//     order is significant.
//   - acc ends as Q_{n-2}···Q_1·Q_0 = Qᵀ; the single final transpose restores
//     Q. This accumulated-transpose step is part of the contract, not an
//     implementation detail.
//   - No pivoting and no rank handling: a (near-)zero active column degrades
//     accuracy silently instead of failing.
//   - A 1×1 input returns (I, copy(A)).
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (non-square).
//
// Complexity:
//   - Time O(n⁴) (n-1 dense n×n products per factor), Space O(n²).
func Decompose(a matrix.Matrix) (q, r *matrix.Dense, err error) {
	if err = matrix.ValidateSquareNonNil(a); err != nil {
		return nil, nil, qrErrorf(opDecompose, err)
	}
	n := a.Rows()

	if r, err = matrix.AsDense(a); err != nil {
		return nil, nil, qrErrorf(opDecompose, err)
	}
	acc, err := matrix.NewIdentity(n)
	if err != nil {
		return nil, nil, qrErrorf(opDecompose, err)
	}

	var qi *matrix.Dense
	for column := 0; column < n-1; column++ {
		if qi, err = Reflector(r, column); err != nil {
			return nil, nil, qrErrorf(opDecompose, err)
		}
		if acc, err = matrix.Mul(qi, acc); err != nil {
			return nil, nil, qrErrorf(opDecompose, err)
		}
		if r, err = matrix.Mul(qi, r); err != nil {
			return nil, nil, qrErrorf(opDecompose, err)
		}
	}

	if q, err = matrix.Transpose(acc); err != nil {
		return nil, nil, qrErrorf(opDecompose, err)
	}

	return q, r, nil
}

// QRDecompose is an alias for Decompose: returns (Q, R) via Householder reflections.
func QRDecompose(a matrix.Matrix) (*matrix.Dense, *matrix.Dense, error) { return Decompose(a) }
