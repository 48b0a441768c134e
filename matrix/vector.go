// SPDX-License-Identifier: MIT

// Package matrix - vector helpers over []float64 and column normalization.
//
// Degenerate inputs are absorbed, not reported: normalizing a zero vector
// returns it unchanged, and a zero column stays zero in NormalizeColumns.

package matrix

import (
	"fmt"
	"math"
)

// Norm returns the Euclidean norm of v: sqrt(Σ v[i]²).
// Plain sum of squares; no scaling against overflow. Norm(nil) == 0.
func Norm(v []float64) float64 {
	sum := NormZero
	for _, x := range v {
		sum += x * x
	}

	return math.Sqrt(sum)
}

// Normalize returns a new slice holding v/Norm(v).
// When Norm(v) is exactly zero the result is an unchanged copy of v.
// v itself is never modified.
func Normalize(v []float64) []float64 {
	out := make([]float64, len(v))
	copy(out, v)

	n := Norm(v)
	if n == NormZero {
		return out // zero vector passes through
	}
	for i := range out {
		out[i] /= n
	}

	return out
}

// Dot returns Σ u[i]·v[i].
// Errors: ErrDimensionMismatch when the lengths differ.
func Dot(u, v []float64) (float64, error) {
	if len(u) != len(v) {
		return 0, fmt.Errorf("Dot(len %d, len %d): %w", len(u), len(v), ErrDimensionMismatch)
	}
	sum := ZeroSum
	for i := range u {
		sum += u[i] * v[i]
	}

	return sum, nil
}

// Sign returns -1, 0 or +1 according to the three-way comparison of a and b.
// Sign(x, 0) is the sign of x with 0 mapping to 0. NaN compares as equal (0).
func Sign(a, b float64) int {
	switch {
	case a > b:
		return 1
	case a < b:
		return -1
	default:
		return 0
	}
}

// NormalizeColumns returns a copy of m whose columns have unit Euclidean norm.
// Implementation:
//   - Stage 1: transpose m so every original column becomes a row.
//   - Stage 2: Normalize each row (zero rows pass through unchanged).
//   - Stage 3: transpose back.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NormalizeColumns(m Matrix) (*Dense, error) {
	t, err := Transpose(m)
	if err != nil {
		return nil, matrixErrorf(opNormalizeColumns, err)
	}

	var row []float64
	for i := 0; i < t.r; i++ {
		row = Normalize(t.data[i*t.c : (i+1)*t.c])
		copy(t.data[i*t.c:(i+1)*t.c], row)
	}

	out, err := Transpose(t)
	if err != nil {
		return nil, matrixErrorf(opNormalizeColumns, err)
	}

	return out, nil
}
