// Command qreigen factors a square matrix read as JSON and approximates its
// eigenvalues/eigenvectors with the unshifted QR algorithm.
//
// Usage:
//
//	echo '[[3,4],[4,3]]' | qreigen --mode all --iterations 20 --precision 6
//	qreigen -i matrix.json -m qr
//	qreigen -i matrix.json --json
//
// Modes: qr, eigenvalues, eigenvectors, all. Diagnostics go to stderr.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	json "github.com/goccy/go-json"
	"github.com/jessevdk/go-flags"
	"github.com/lmittmann/tint"

	"github.com/katalvlaran/qreigen/matrix"
	"github.com/katalvlaran/qreigen/qr"
	"github.com/katalvlaran/qreigen/report"
)

const (
	modeQR           = "qr"
	modeEigenvalues  = "eigenvalues"
	modeEigenvectors = "eigenvectors"
	modeAll          = "all"
)

var errUnknownMode = errors.New("unknown mode")

// options is the command line, parsed by go-flags.
type options struct {
	In         string `short:"i" long:"in" default:"-" description:"JSON matrix file ([[...],[...]]); - reads stdin"`
	Mode       string `short:"m" long:"mode" default:"all" choice:"qr" choice:"eigenvalues" choice:"eigenvectors" choice:"all" description:"what to compute"`
	Iterations int    `short:"n" long:"iterations" default:"20" description:"number of QR iterations"`
	Precision  int    `short:"p" long:"precision" default:"6" description:"decimal digits in formatted output"`
	JSON       bool   `long:"json" description:"write one JSON document with full precision instead of formatted blocks"`
	Verbose    bool   `short:"v" long:"verbose" description:"log every iteration"`
}

func main() {
	opts, err := parseOptions(os.Args[1:])
	if err != nil {
		var fe *flags.Error
		if errors.As(err, &fe) && fe.Type == flags.ErrHelp {
			fmt.Fprintln(os.Stdout, fe.Message)
			os.Exit(0)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	level := slog.LevelInfo
	if opts.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
	}))

	if err = run(opts, os.Stdin, os.Stdout, logger); err != nil {
		logger.Error("qreigen failed", "err", err)
		os.Exit(1)
	}
}

// parseOptions resolves args against the defaults in the options tags.
// An unknown --mode fails here with flags.ErrInvalidChoice.
func parseOptions(args []string) (options, error) {
	var opts options
	p := flags.NewParser(&opts, flags.HelpFlag)
	p.Name = "qreigen"
	if _, err := p.ParseArgs(args); err != nil {
		return options{}, err
	}

	return opts, nil
}

// result collects whatever the selected mode produced; nil fields are skipped
// on output.
type result struct {
	a, q, r, iterate, vectors   *matrix.Dense
	values, residuals, rayleigh []float64
}

// run validates the mode, reads the matrix, computes and writes the report.
// Nothing is read or written when the mode is unknown.
func run(opts options, stdin io.Reader, stdout io.Writer, logger *slog.Logger) error {
	switch opts.Mode {
	case modeQR, modeEigenvalues, modeEigenvectors, modeAll:
	default:
		return fmt.Errorf("mode %q: %w", opts.Mode, errUnknownMode)
	}

	src := stdin
	if opts.In != "-" {
		f, err := os.Open(opts.In)
		if err != nil {
			return fmt.Errorf("open input: %w", err)
		}
		defer f.Close()
		src = f
	}

	a, err := readMatrix(src)
	if err != nil {
		return err
	}
	logger.Info("matrix loaded", "rows", a.Rows(), "cols", a.Cols(), "mode", opts.Mode)

	res, err := compute(a, opts, logger)
	if err != nil {
		return err
	}
	if opts.JSON {
		return writeJSON(stdout, res)
	}

	return writeText(stdout, res, opts.Precision)
}

func readMatrix(r io.Reader) (*matrix.Dense, error) {
	var rows [][]float64
	if err := json.NewDecoder(r).Decode(&rows); err != nil {
		return nil, fmt.Errorf("decode matrix: %w", err)
	}

	return matrix.NewDenseFrom(rows)
}

func compute(a *matrix.Dense, opts options, logger *slog.Logger) (*result, error) {
	res := &result{a: a}
	var err error

	if opts.Mode == modeQR || opts.Mode == modeAll {
		if res.q, res.r, err = qr.Decompose(a); err != nil {
			return nil, err
		}
	}

	switch opts.Mode {
	case modeEigenvalues:
		if res.iterate, err = qr.EigenvaluesApprox(a, opts.Iterations, qr.WithLogger(logger)); err != nil {
			return nil, err
		}
	case modeEigenvectors:
		if res.vectors, err = qr.EigenvectorsApprox(a, opts.Iterations, qr.WithLogger(logger)); err != nil {
			return nil, err
		}
	case modeAll:
		s, err := qr.Eigen(a, opts.Iterations, qr.WithLogger(logger))
		if err != nil {
			return nil, err
		}
		res.iterate, res.values, res.vectors = s.Iterate, s.Values, s.Vectors
		if res.residuals, err = s.Residuals(a); err != nil {
			return nil, err
		}
		if s.Symmetric {
			if res.rayleigh, err = s.RayleighQuotients(a); err != nil {
				return nil, err
			}
		}
		logger.Info("qr algorithm finished",
			"iterations", s.Iterations,
			"sub_diagonal", s.SubDiagonal,
			"symmetric", s.Symmetric,
		)
	}

	return res, nil
}

func writeText(w io.Writer, res *result, precision int) error {
	blocks := []struct {
		title string
		m     *matrix.Dense
	}{
		{"A", res.a},
		{"Q", res.q},
		{"R", res.r},
		{"eigenvalues (diagonal)", res.iterate},
		{"eigenvectors (columns)", res.vectors},
	}
	for _, b := range blocks {
		if b.m == nil {
			continue
		}
		if err := report.Write(w, b.title, b.m, precision); err != nil {
			return err
		}
	}

	values := []struct {
		title string
		v     []float64
	}{
		{"eigenvalues", res.values},
		{"residuals", res.residuals},
		{"rayleigh quotients", res.rayleigh},
	}
	for _, v := range values {
		if v.v == nil {
			continue
		}
		if err := report.WriteValues(w, v.title, v.v, precision); err != nil {
			return err
		}
	}

	return nil
}

// jsonResult is the --json document; absent parts are omitted.
type jsonResult struct {
	A         [][]float64 `json:"a"`
	Q         [][]float64 `json:"q,omitempty"`
	R         [][]float64 `json:"r,omitempty"`
	Iterate   [][]float64 `json:"iterate,omitempty"`
	Values    []float64   `json:"values,omitempty"`
	Vectors   [][]float64 `json:"vectors,omitempty"`
	Residuals []float64   `json:"residuals,omitempty"`
	Rayleigh  []float64   `json:"rayleigh,omitempty"`
}

func writeJSON(w io.Writer, res *result) error {
	rows := func(m *matrix.Dense) [][]float64 {
		if m == nil {
			return nil
		}
		return m.RawRows()
	}
	doc := jsonResult{
		A:         rows(res.a),
		Q:         rows(res.q),
		R:         rows(res.r),
		Iterate:   rows(res.iterate),
		Values:    res.values,
		Vectors:   rows(res.vectors),
		Residuals: res.residuals,
		Rayleigh:  res.rayleigh,
	}
	if err := json.NewEncoder(w).Encode(doc); err != nil {
		return fmt.Errorf("encode result: %w", err)
	}

	return nil
}
