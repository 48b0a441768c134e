// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the matrix validators.
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qreigen/matrix"
)

// TestValidateBinarySameShape covers nil inputs, matching and mismatched dimensions.
func TestValidateBinarySameShape(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		a, b    matrix.Matrix
		wantErr error
	}{
		{"both nil", nil, nil, matrix.ErrNilMatrix},
		{"first nil", nil, MustDense(t, 2, 2), matrix.ErrNilMatrix},
		{"second nil", MustDense(t, 2, 2), nil, matrix.ErrNilMatrix},
		{"row mismatch", MustDense(t, 2, 2), MustDense(t, 3, 2), matrix.ErrDimensionMismatch},
		{"col mismatch", MustDense(t, 2, 2), MustDense(t, 2, 3), matrix.ErrDimensionMismatch},
		{"match", MustDense(t, 2, 3), MustDense(t, 2, 3), nil},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			err := matrix.ValidateBinarySameShape(tc.a, tc.b)
			if tc.wantErr == nil {
				require.NoError(t, err)
				return
			}
			AssertErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestValidateSquareNonNil(t *testing.T) {
	t.Parallel()

	var typedNil *matrix.Dense
	require.ErrorIs(t, matrix.ValidateNotNil(typedNil), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateSquareNonNil(typedNil), matrix.ErrNilMatrix)

	require.NoError(t, matrix.ValidateSquareNonNil(MustDense(t, 3, 3)))
	require.ErrorIs(t, matrix.ValidateSquareNonNil(nil), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateSquareNonNil(MustDense(t, 2, 3)), matrix.ErrDimensionMismatch)
}

func TestValidateMulCompatible(t *testing.T) {
	t.Parallel()

	require.NoError(t, matrix.ValidateMulCompatible(MustDense(t, 2, 3), MustDense(t, 3, 5)))
	require.ErrorIs(t, matrix.ValidateMulCompatible(MustDense(t, 2, 3), MustDense(t, 2, 2)), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateMulCompatible(MustDense(t, 2, 3), nil), matrix.ErrNilMatrix)
}

func TestValidateVecLen(t *testing.T) {
	t.Parallel()

	require.NoError(t, matrix.ValidateVecLen([]float64{1, 2}, 2))
	require.ErrorIs(t, matrix.ValidateVecLen([]float64{1}, 2), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateVecLen(nil, 0), matrix.ErrNilMatrix)
}

func TestValidateSymmetric(t *testing.T) {
	t.Parallel()

	sym := NewFilledDense(t, 3, 3, []float64{
		2, 1, 0,
		1, 2, 1,
		0, 1, 2,
	})
	require.NoError(t, matrix.ValidateSymmetric(sym, 0))
	require.NoError(t, matrix.ValidateSymmetric(hide{sym}, 0))

	MustSet(t, sym, 0, 1, 1+1e-9)
	require.NoError(t, matrix.ValidateSymmetric(sym, 1e-6))
	require.NoError(t, matrix.ValidateSymmetric(sym, -1e-6)) // negative tol is flipped
	require.ErrorIs(t, matrix.ValidateSymmetric(sym, 1e-12), matrix.ErrAsymmetry)

	require.ErrorIs(t, matrix.ValidateSymmetric(sym, math.NaN()), matrix.ErrNaNInf)
	require.ErrorIs(t, matrix.ValidateSymmetric(MustDense(t, 2, 3), 0), matrix.ErrDimensionMismatch)
}

func TestTriangularShape(t *testing.T) {
	t.Parallel()

	upper := NewFilledDense(t, 3, 3, []float64{
		1, 2, 3,
		0, 4, 5,
		0, 0, 6,
	})
	ok, err := matrix.IsUpperTriangular(upper, 0)
	require.NoError(t, err)
	require.True(t, ok)

	sub, err := matrix.SubDiagonalMax(upper)
	require.NoError(t, err)
	require.Equal(t, 0.0, sub)

	MustSet(t, upper, 2, 0, -1e-3)
	MustSet(t, upper, 1, 0, 5e-4)

	sub, err = matrix.SubDiagonalMax(upper)
	require.NoError(t, err)
	require.Equal(t, 1e-3, sub) // absolute value of the largest entry

	sub, err = matrix.SubDiagonalMax(hide{upper})
	require.NoError(t, err)
	require.Equal(t, 1e-3, sub)

	ok, err = matrix.IsUpperTriangular(upper, 1e-4)
	require.NoError(t, err)
	require.False(t, ok)

	ok, err = matrix.IsUpperTriangular(upper, 1e-2)
	require.NoError(t, err)
	require.True(t, ok)

	sub, err = matrix.SubDiagonalMax(NewFilledDense(t, 1, 3, []float64{9, 9, 9}))
	require.NoError(t, err)
	require.Equal(t, 0.0, sub)

	_, err = matrix.IsUpperTriangular(nil, 0)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}
