// Package qreigen is a small dense linear-algebra toolkit for Householder QR
// factorization and QR-iteration eigen-analysis of square real matrices.
//
// What is inside?
//
//	• Dense storage with strict shape and finite-value validation
//	• Vector helpers: norm, normalization, sign, column normalization
//	• Householder reflectors and a full QR decomposition A = Q·R
//	• Unshifted QR iteration: approximate eigenvalues and eigenvectors
//	• Fixed-precision reporting and a bridge to gonum/mat
//
// Everything is organized under three subpackages plus a command:
//
//	matrix/      - Dense type, validators, products, vector helpers
//	qr/          - Reflector, Decompose, EigenvaluesApprox, EigenvectorsApprox, Eigen
//	report/      - formatted output and gonum conversion
//	cmd/qreigen/ - CLI: reads a JSON matrix and prints the factors/spectrum
//
// Quick example:
//
//	a, _ := matrix.NewDenseFrom([][]float64{{3, 4}, {4, 3}})
//	x, _ := qr.EigenvaluesApprox(a, 20) // diag(x) ≈ [7, -1]
//	v, _ := qr.EigenvectorsApprox(a, 20) // columns ≈ (1,1)/√2, (-1,1)/√2
//
// The iteration is unshifted and runs a fixed number of steps: it suits
// small matrices with real eigenvalues of distinct magnitude. Complex pairs
// stay as coupled 2×2 blocks on the diagonal.
//
//	go get github.com/katalvlaran/qreigen
package qreigen
