// SPDX-License-Identifier: MIT

package qr

import (
	"fmt"

	"github.com/katalvlaran/qreigen/matrix"
)

// Reflector builds the n×n Householder reflector that zeroes the entries of
// r's column `column` below the diagonal.
//
// Implementation:
//   - Stage 1: a = r[column:, column]; e = first basis vector of the same length.
//   - Stage 2: delta = -Sign(a[0], 0); an exactly-zero pivot takes delta = -1
//     so a column like (0, x, ...) is still mapped onto ‖a‖·e.
//   - Stage 3: v = Normalize(a + delta·‖a‖·e).
//   - Stage 4: block = I − 2·v·vᵀ, embedded at [column:, column:] in I_n.
//
// Behavior highlights:
//   - The result is symmetric and orthogonal, and equals the identity on
//     rows/columns before `column`.
//   - An all-zero sub-column gives v = 0, which Normalize passes through, so
//     the reflector degenerates to the identity. The same happens when the
//     sub-column is already a positive multiple of e, and for column == n-1.
//   - For a[0] > 0 the reflected pivot is +‖a‖; for a[0] < 0 it is −‖a‖.
//   - Zero pivot: this departs from the plain sign rule, which yields
//     delta = 0, maps a onto −a and leaves R non-triangular. With delta = −1
//     the pivot becomes +‖a‖ and the column below it is zeroed.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (non-square), ErrOutOfRange (column ∉ [0,n)).
//
// Complexity:
//   - Time O(n²) (dominated by the identity embedding), Space O(n²).
func Reflector(r matrix.Matrix, column int) (*matrix.Dense, error) {
	if err := matrix.ValidateSquareNonNil(r); err != nil {
		return nil, qrErrorf(opReflector, err)
	}
	n := r.Rows()
	if column < 0 || column >= n {
		return nil, qrErrorf(opReflector, fmt.Errorf("column %d of %d: %w", column, n, matrix.ErrOutOfRange))
	}

	// Stage 1: truncated column and basis vector.
	m := n - column
	a := make([]float64, m)
	e := make([]float64, m)
	e[0] = 1
	var err error
	for i := 0; i < m; i++ {
		if a[i], err = r.At(column+i, column); err != nil {
			return nil, qrErrorf(opReflector, err)
		}
	}

	// Stage 2: sign selection.
	delta := float64(-matrix.Sign(a[0], 0))
	if delta == 0 {
		delta = -1 // zero pivot, see Behavior highlights
	}

	// Stage 3: Householder direction.
	norm := matrix.Norm(a)
	v := make([]float64, m)
	for i := 0; i < m; i++ {
		v[i] = a[i] + delta*norm*e[i]
	}
	v = matrix.Normalize(v)

	// Stage 4: I − 2vvᵀ embedded into the identity.
	q, err := matrix.NewIdentity(n)
	if err != nil {
		return nil, qrErrorf(opReflector, err)
	}
	var kron float64
	for i := 0; i < m; i++ {
		for j := 0; j < m; j++ {
			kron = 0
			if i == j {
				kron = 1
			}
			if err = q.Set(column+i, column+j, kron-2*v[i]*v[j]); err != nil {
				return nil, qrErrorf(opReflector, err)
			}
		}
	}

	return q, nil
}
