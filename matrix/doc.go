// Package matrix provides the dense linear-algebra primitives underneath the
// qr package.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with bounds-checked At/Set and an
//     optional finite-only numeric policy.
//   - Constructors (NewDense, NewDenseFrom, NewZeros, NewIdentity) and the
//     kernels Mul, Transpose, Sub and MatVec.
//   - Vector helpers (Norm, Normalize, Dot, Sign) and NormalizeColumns.
//   - Central validators and structural checks (IsUpperTriangular,
//     SubDiagonalMax) plus AllClose for tolerance comparisons.
//
// Every kernel allocates its result; inputs are never mutated. Errors are
// package sentinels (ErrDimensionMismatch, ErrNilMatrix, ...) wrapped with the
// operation name, so callers match them with errors.Is.
package matrix
