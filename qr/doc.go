// Package qr factors real square matrices with Householder reflections and
// approximates eigenvalues and eigenvectors with the unshifted QR algorithm.
//
// Pipeline (leaves first):
//
//	Reflector           - n×n Householder reflector zeroing one sub-column
//	Decompose           - A = Q·R built from reflectors for columns 0..n-2
//	EigenvaluesApprox   - X ← R·Q repeated a fixed number of times
//	EigenvectorsApprox  - same trajectory, accumulating V ← V·Q, columns normalized
//	Eigen               - both results from a single trajectory
//
// The iteration count is always chosen by the caller. There is no residual
// test, no shift and no deflation: after exactly n iterations the iterate is
// returned whatever its state. For real, well-separated spectra the diagonal
// converges to the eigenvalues (ordered by decreasing magnitude); for complex
// conjugate pairs the corresponding 2×2 block never becomes triangular.
//
// Accumulated-transpose invariant: Decompose composes reflectors as
// Q_i·Q_running, which yields Qᵀ, and transposes once before returning.
// Changing either the composition order or the final transpose silently
// breaks A = Q·R.
//
// All functions clone their inputs; callers' matrices are never mutated.
// Errors are the matrix sentinels (ErrNilMatrix, ErrDimensionMismatch,
// ErrOutOfRange) plus ErrInvalidIterations, wrapped with the operation name.
package qr
