// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All methods return these sentinels (wrapped with call-site context); tests
// MUST check them via errors.Is. Nothing here panics on user-supplied data.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for grep-ability. Detection
// sites wrap with fmt.Errorf("Dense.Op(...): %w", ErrX).
//
// ERROR PRIORITY: dimensions -> index range -> numeric policy -> shape agreement.

var (
	// ErrInvalidDimensions is returned for negative row or column counts, or a
	// backing slice whose length is not rows*cols.
	ErrInvalidDimensions = errors.New("matrix: invalid dimensions")

	// ErrOutOfRange indicates a row/column index, or a slice bound, outside the matrix.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates that a source does not match the target region's shape.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNaNInf is returned when the finite-only policy rejects a value.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")
)
