// SPDX-License-Identifier: MIT
package qr_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qreigen/matrix"
)

// hide WRAPS any Matrix to hide its concrete type and force generic paths.
type hide struct{ matrix.Matrix }

func mustFrom(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFrom(rows)
	require.NoError(t, err)

	return m
}

func mustAt(t *testing.T, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// randSquare RETURNS an n×n matrix with entries uniform in [-1, 1).
func randSquare(t *testing.T, n int, seed int64) *matrix.Dense {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, n)
		for j := range rows[i] {
			rows[i][j] = 2*rng.Float64() - 1
		}
	}

	return mustFrom(t, rows)
}

// requireClose fails unless a and b agree element-wise within atol.
func requireClose(t *testing.T, a, b matrix.Matrix, atol float64) {
	t.Helper()
	ok, err := matrix.AllClose(a, b, 0, atol)
	require.NoError(t, err)
	require.True(t, ok, "matrices differ beyond %g:\n%v\nvs\n%v", atol, a, b)
}

// requireOrthogonal checks QᵀQ ≈ I.
func requireOrthogonal(t *testing.T, q matrix.Matrix, atol float64) {
	t.Helper()
	qt, err := matrix.Transpose(q)
	require.NoError(t, err)
	qtq, err := matrix.Mul(qt, q)
	require.NoError(t, err)
	I, err := matrix.IdentityLike(q)
	require.NoError(t, err)
	requireClose(t, I, qtq, atol)
}

// requireUpperTriangular checks every sub-diagonal entry is within atol of zero.
func requireUpperTriangular(t *testing.T, r matrix.Matrix, atol float64) {
	t.Helper()
	ok, err := matrix.IsUpperTriangular(r, atol)
	require.NoError(t, err)
	if !ok {
		sub, _ := matrix.SubDiagonalMax(r)
		t.Fatalf("upper triangular: want sub-diagonal ≤ %g, got: %g\n%v", atol, sub, r)
	}
}

// residual RETURNS ‖A·v − λ·v‖∞ for column j of vecs.
func residual(t *testing.T, a, vecs matrix.Matrix, lambda float64, j int) float64 {
	t.Helper()
	n := a.Rows()
	v := make([]float64, n)
	for i := 0; i < n; i++ {
		v[i] = mustAt(t, vecs, i, j)
	}
	av, err := matrix.MatVec(a, v)
	require.NoError(t, err)

	var worst float64
	for i := range av {
		worst = math.Max(worst, math.Abs(av[i]-lambda*v[i]))
	}

	return worst
}
