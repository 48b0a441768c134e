// SPDX-License-Identifier: MIT
package qr_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qreigen/matrix"
	"github.com/katalvlaran/qreigen/qr"
)

// TestReflector_ZeroesColumn verifies Q·R has zeros below the pivot of the
// target column, Q is symmetric and orthogonal, and rows/cols before the
// column are untouched.
func TestReflector_ZeroesColumn(t *testing.T) {
	t.Parallel()

	r := randSquare(t, 5, 11)
	for column := 0; column < 5; column++ {
		q, err := qr.Reflector(r, column)
		require.NoError(t, err)

		requireOrthogonal(t, q, 1e-12)
		require.NoError(t, matrix.ValidateSymmetric(q, 1e-15))

		for i := 0; i < column; i++ {
			for j := 0; j < 5; j++ {
				want := 0.0
				if i == j {
					want = 1
				}
				require.Equal(t, want, mustAt(t, q, i, j), "identity block at [%d,%d]", i, j)
				require.Equal(t, want, mustAt(t, q, j, i), "identity block at [%d,%d]", j, i)
			}
		}

		qa, err := matrix.Mul(q, r)
		require.NoError(t, err)
		for i := column + 1; i < 5; i++ {
			require.InDelta(t, 0, mustAt(t, qa, i, column), 1e-12, "column %d row %d", column, i)
		}
	}
}

// TestReflector_PivotSign checks the reflected pivot takes the sign of a[0].
func TestReflector_PivotSign(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		rows  [][]float64
		pivot float64
	}{
		{"positive", [][]float64{{3, 1}, {4, 1}}, 5},
		{"negative", [][]float64{{-3, 1}, {4, 1}}, -5},
		{"zero pivot", [][]float64{{0, 1}, {2, 1}}, 2},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			r := mustFrom(t, tc.rows)
			q, err := qr.Reflector(r, 0)
			require.NoError(t, err)
			qa, err := matrix.Mul(q, r)
			require.NoError(t, err)
			require.InDelta(t, tc.pivot, mustAt(t, qa, 0, 0), 1e-12)
			require.InDelta(t, 0, mustAt(t, qa, 1, 0), 1e-12)
		})
	}
}

// TestReflector_DegenerateIsIdentity covers the cases where v collapses to 0.
func TestReflector_DegenerateIsIdentity(t *testing.T) {
	t.Parallel()

	I := func(n int) *matrix.Dense {
		m, err := matrix.NewIdentity(n)
		require.NoError(t, err)
		return m
	}

	// all-zero sub-column
	zeroCol := mustFrom(t, [][]float64{{0, 1, 2}, {0, 3, 4}, {0, 5, 6}})
	q, err := qr.Reflector(zeroCol, 0)
	require.NoError(t, err)
	requireClose(t, I(3), q, 0)

	// already a positive multiple of e
	aligned := mustFrom(t, [][]float64{{2, 1}, {0, 3}})
	q, err = qr.Reflector(aligned, 0)
	require.NoError(t, err)
	requireClose(t, I(2), q, 0)

	// last column: a single entry is always a multiple of e
	q, err = qr.Reflector(randSquare(t, 4, 5), 3)
	require.NoError(t, err)
	requireClose(t, I(4), q, 0)
}

func TestReflector_Errors(t *testing.T) {
	t.Parallel()

	r := randSquare(t, 3, 1)

	_, err := qr.Reflector(r, 3)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = qr.Reflector(r, -1)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = qr.Reflector(nil, 0)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	rect, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	_, err = qr.Reflector(rect, 0)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}
