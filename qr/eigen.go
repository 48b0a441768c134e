// SPDX-License-Identifier: MIT

package qr

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/qreigen/matrix"
)

// symmetryTol is the tolerance used to flag a symmetric input in Spectrum.
const symmetryTol = 1e-12

// Spectrum is the outcome of one unshifted QR-algorithm run.
type Spectrum struct {
	// Values is the diagonal of Iterate: approximate eigenvalues, in the
	// order the iteration produced them (decreasing magnitude under convergence).
	Values []float64

	// Vectors holds the column-normalized product of every iteration's Q.
	// For symmetric input its columns approximate unit eigenvectors matching
	// Values; signs are not canonicalized.
	Vectors *matrix.Dense

	// Iterate is the final X.
	Iterate *matrix.Dense

	// Iterations is the number of QR steps performed.
	Iterations int

	// SubDiagonal is max |Iterate[i][j]| over i > j, measured after the run.
	// It reports how far X is from triangular; nothing stops on it.
	SubDiagonal float64

	// Symmetric reports whether the input was symmetric (within 1e-12).
	Symmetric bool
}

// EigenvaluesApprox runs the unshifted QR algorithm for exactly `iterations`
// steps and returns the final iterate X, whose diagonal approximates the
// eigenvalues of a.
//
// Implementation:
//   - X := copy(A); repeat `iterations` times: (Q, R) := Decompose(X); X := R·Q.
//
// Behavior highlights:
//   - No convergence check: X is returned whatever its residual.
//   - Callers choose `iterations`; 20 is enough for well-separated spectra.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (non-square), ErrInvalidIterations (< 1).
//
// Complexity:
//   - Time O(iterations·n⁴), Space O(n²).
func EigenvaluesApprox(a matrix.Matrix, iterations int, opts ...Option) (*matrix.Dense, error) {
	x, _, err := iterate(a, iterations, false, gatherOptions(opts...))
	if err != nil {
		return nil, qrErrorf(opEigenvalues, err)
	}

	return x, nil
}

// EigenvectorsApprox runs the same trajectory as EigenvaluesApprox while
// accumulating V := V·Q from V := I, and returns NormalizeColumns(V).
//
// Behavior highlights:
//   - Column j pairs with diagonal entry j of EigenvaluesApprox(a, iterations).
//   - Columns are unit length; sign and order are left as produced.
//   - For non-symmetric input the columns are Schur vectors rather than
//     eigenvectors.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (non-square), ErrInvalidIterations (< 1).
func EigenvectorsApprox(a matrix.Matrix, iterations int, opts ...Option) (*matrix.Dense, error) {
	_, v, err := iterate(a, iterations, true, gatherOptions(opts...))
	if err != nil {
		return nil, qrErrorf(opEigenvectors, err)
	}

	return v, nil
}

// Eigen performs one trajectory and returns both the iterate and the
// normalized accumulator, plus post-run diagnostics.
// Values and Vectors are bit-identical to separate EigenvaluesApprox /
// EigenvectorsApprox calls with the same iteration count.
func Eigen(a matrix.Matrix, iterations int, opts ...Option) (*Spectrum, error) {
	x, v, err := iterate(a, iterations, true, gatherOptions(opts...))
	if err != nil {
		return nil, qrErrorf(opEigen, err)
	}

	values, err := matrix.Diagonal(x)
	if err != nil {
		return nil, qrErrorf(opEigen, err)
	}
	sub, err := matrix.SubDiagonalMax(x)
	if err != nil {
		return nil, qrErrorf(opEigen, err)
	}

	return &Spectrum{
		Values:      values,
		Vectors:     v,
		Iterate:     x,
		Iterations:  iterations,
		SubDiagonal: sub,
		Symmetric:   matrix.ValidateSymmetric(a, symmetryTol) == nil,
	}, nil
}

// Residuals returns ‖A·v_j − λ_j·v_j‖₂ for every column v_j of s.Vectors,
// with λ_j = s.Values[j]. A small residual means (λ_j, v_j) is close to an
// eigenpair of a; for non-symmetric input the residuals stay large because
// the columns are Schur vectors.
//
// Implementation:
//   - E := A·V − V·Λ with Λ = diag(Values); column j of E is the j-th residual.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (a does not match the spectrum).
func (s *Spectrum) Residuals(a matrix.Matrix) ([]float64, error) {
	av, err := matrix.Mul(a, s.Vectors)
	if err != nil {
		return nil, qrErrorf(opResiduals, err)
	}

	n := len(s.Values)
	lambda, err := matrix.NewZeros(n, n)
	if err != nil {
		return nil, qrErrorf(opResiduals, err)
	}
	for j, l := range s.Values {
		if err = lambda.Set(j, j, l); err != nil {
			return nil, qrErrorf(opResiduals, err)
		}
	}
	vl, err := matrix.Mul(s.Vectors, lambda)
	if err != nil {
		return nil, qrErrorf(opResiduals, err)
	}
	diff, err := matrix.Sub(av, vl)
	if err != nil {
		return nil, qrErrorf(opResiduals, err)
	}

	out := make([]float64, n)
	var col []float64
	for j := range out {
		if col, err = diff.Col(j); err != nil {
			return nil, qrErrorf(opResiduals, err)
		}
		out[j] = matrix.Norm(col)
	}

	return out, nil
}

// RayleighQuotients recomputes v_jᵀ·A·v_j from every unit column v_j of
// s.Vectors alone. V is the accumulated orthogonal basis with Vᵀ·A·V = X, so
// the quotients agree with Values up to rounding; a gap between them means
// the accumulated product has drifted from orthogonality.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func (s *Spectrum) RayleighQuotients(a matrix.Matrix) ([]float64, error) {
	if err := matrix.ValidateSquareNonNil(a); err != nil {
		return nil, qrErrorf(opRayleigh, err)
	}

	out := make([]float64, len(s.Values))
	var (
		v, av []float64
		err   error
	)
	for j := range out {
		if v, err = s.Vectors.Col(j); err != nil {
			return nil, qrErrorf(opRayleigh, err)
		}
		if av, err = matrix.MatVec(a, v); err != nil {
			return nil, qrErrorf(opRayleigh, err)
		}
		if out[j], err = matrix.Dot(v, av); err != nil {
			return nil, qrErrorf(opRayleigh, err)
		}
	}

	return out, nil
}

// iterate is the shared trajectory. X and V are loop-carried locals rebound
// every step; when accumulate is false V stays nil.
func iterate(a matrix.Matrix, iterations int, accumulate bool, o Options) (x, v *matrix.Dense, err error) {
	if err = matrix.ValidateSquareNonNil(a); err != nil {
		return nil, nil, err
	}
	if iterations < 1 {
		return nil, nil, fmt.Errorf("iterations=%d: %w", iterations, ErrInvalidIterations)
	}

	if x, err = matrix.AsDense(a); err != nil {
		return nil, nil, err
	}
	if accumulate {
		if v, err = matrix.NewIdentity(a.Rows()); err != nil {
			return nil, nil, err
		}
	}

	ctx := context.Background()
	debug := o.Logger.Enabled(ctx, slog.LevelDebug)

	var q, r *matrix.Dense
	for k := 1; k <= iterations; k++ {
		if q, r, err = Decompose(x); err != nil {
			return nil, nil, err
		}
		if x, err = matrix.Mul(r, q); err != nil {
			return nil, nil, err
		}
		if accumulate {
			if v, err = matrix.Mul(v, q); err != nil {
				return nil, nil, err
			}
		}

		if debug {
			sub, _ := matrix.SubDiagonalMax(x) // x is non-nil here
			o.Logger.LogAttrs(ctx, slog.LevelDebug, "qr iteration",
				slog.Int("iteration", k),
				slog.Float64("sub_diagonal", sub),
			)
		}
		o.OnIteration(k, x.Clone())
	}

	if accumulate {
		if v, err = matrix.NormalizeColumns(v); err != nil {
			return nil, nil, err
		}
	}
	o.Logger.LogAttrs(ctx, slog.LevelDebug, "qr run finished",
		slog.Int("n", a.Rows()),
		slog.Int("iterations", iterations),
		slog.Bool("vectors", accumulate),
	)

	return x, v, nil
}
