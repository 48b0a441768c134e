// SPDX-License-Identifier: MIT

// Package qr provides tunable options and error definitions for the
// eigen iterators.
package qr

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/katalvlaran/qreigen/matrix"
)

// Sentinel errors for the eigen iterators.
var (
	// ErrInvalidIterations is returned when the iteration count is < 1.
	ErrInvalidIterations = errors.New("qr: iterations must be >= 1")
)

// Operation name constants for unified error wrapping.
const (
	opReflector    = "Reflector"
	opDecompose    = "Decompose"
	opEigenvalues  = "EigenvaluesApprox"
	opEigenvectors = "EigenvectorsApprox"
	opEigen        = "Eigen"
	opResiduals    = "Residuals"
	opRayleigh     = "RayleighQuotients"
)

// qrErrorf wraps err with an operation tag, preserving it for errors.Is.
func qrErrorf(tag string, err error) error {
	return fmt.Errorf("qr.%s: %w", tag, err)
}

// Option configures the eigen iterators via functional arguments.
// Options never change the numeric trajectory or the iteration count.
type Option func(*Options)

// Options holds the observers attached to an iteration run.
type Options struct {
	// Logger receives one debug record per iteration and one at the end.
	// The default handler discards everything.
	Logger *slog.Logger

	// OnIteration is called after every iteration with the 1-based
	// iteration index and a private copy of the current iterate X.
	OnIteration func(iteration int, x matrix.Matrix)
}

// DefaultOptions returns Options with a discarding logger and a no-op hook.
func DefaultOptions() Options {
	return Options{
		Logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		OnIteration: func(int, matrix.Matrix) {},
	}
}

// WithLogger routes per-iteration diagnostics to l. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithOnIteration installs fn as the per-iteration hook. A nil fn is ignored.
func WithOnIteration(fn func(iteration int, x matrix.Matrix)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnIteration = fn
		}
	}
}

func gatherOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
