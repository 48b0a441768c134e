// SPDX-License-Identifier: MIT

// Package report renders matrices produced by the qr package for humans.
//
// It bridges to gonum's mat package for fixed-precision, column-aligned
// output (mat.Formatted) and offers lossless conversion both ways, so results
// can be cross-checked against gonum's own factorizations.
package report

import (
	"errors"
	"fmt"
	"io"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/qreigen/matrix"
)

// ErrBadPrecision is returned when a negative number of decimals is requested.
var ErrBadPrecision = errors.New("report: precision must be >= 0")

// ToGonum copies m into a new *mat.Dense.
// Errors: matrix.ErrNilMatrix.
func ToGonum(m matrix.Matrix) (*mat.Dense, error) {
	d, err := matrix.AsDense(m)
	if err != nil {
		return nil, fmt.Errorf("report.ToGonum: %w", err)
	}
	r, c := d.Shape()
	out := mat.NewDense(r, c, nil)
	var row []float64
	for i := 0; i < r; i++ {
		if row, err = d.Row(i); err != nil {
			return nil, fmt.Errorf("report.ToGonum: %w", err)
		}
		out.SetRow(i, row)
	}

	return out, nil
}

// FromGonum copies a gonum matrix into a new *matrix.Dense.
// Errors: matrix.ErrNilMatrix for a nil input, matrix.ErrInvalidDimensions
// for an empty one, matrix.ErrNaNInf for non-finite entries.
func FromGonum(g mat.Matrix) (*matrix.Dense, error) {
	if g == nil {
		return nil, fmt.Errorf("report.FromGonum: %w", matrix.ErrNilMatrix)
	}
	r, c := g.Dims()
	rows := make([][]float64, r)
	for i := 0; i < r; i++ {
		rows[i] = make([]float64, c)
		for j := 0; j < c; j++ {
			rows[i][j] = g.At(i, j)
		}
	}
	d, err := matrix.NewDenseFrom(rows)
	if err != nil {
		return nil, fmt.Errorf("report.FromGonum: %w", err)
	}

	return d, nil
}

// Format renders m with exactly `precision` decimals per entry, using
// gonum's bracketed layout with per-column widths (mat.Squeeze).
// Errors: ErrBadPrecision, matrix.ErrNilMatrix.
func Format(m matrix.Matrix, precision int) (string, error) {
	if precision < 0 {
		return "", fmt.Errorf("report.Format(%d): %w", precision, ErrBadPrecision)
	}
	g, err := ToGonum(m)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%.*f", precision, mat.Formatted(g, mat.Squeeze())), nil
}

// Write prints a titled matrix block followed by a blank line:
//
//	title:
//	⎡...⎤
//	⎣...⎦
func Write(w io.Writer, title string, m matrix.Matrix, precision int) error {
	s, err := Format(m, precision)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%s:\n%s\n\n", title, s)

	return err
}

// WriteValues prints a titled vector (e.g., approximate eigenvalues) with the
// same precision rules as Format.
func WriteValues(w io.Writer, title string, values []float64, precision int) error {
	if precision < 0 {
		return fmt.Errorf("report.WriteValues(%d): %w", precision, ErrBadPrecision)
	}
	if len(values) == 0 {
		_, err := fmt.Fprintf(w, "%s: []\n\n", title)
		return err
	}
	row := mat.NewDense(1, len(values), append([]float64(nil), values...))
	_, err := fmt.Fprintf(w, "%s:\n%.*f\n\n", title, precision, mat.Formatted(row, mat.Squeeze()))

	return err
}
