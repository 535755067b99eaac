// SPDX-License-Identifier: MIT
// Package slicing: sentinel error set.
// All entry points return these sentinels (possibly wrapped with call-site
// context); tests MUST check them via errors.Is. Nothing in this package
// panics on caller-supplied data.

package slicing

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "slicing: ..." for grep-ability. Detection
// sites wrap with fmt.Errorf("Op: ...: %w", ErrX) so errors.Is keeps working.
//
// ERROR PRIORITY (checked in this order, before any element is copied):
// nil descriptor -> direction -> rank mismatch -> bad shape/step ->
// REGULAR consistency -> index table -> addresses.

var (
	// ErrNilDescriptor is returned when a nil *Basic or *Fancy is passed in.
	ErrNilDescriptor = errors.New("slicing: nil descriptor")

	// ErrRankMismatch indicates that per-dimension sequences disagree in length,
	// or that a dimension's slice spec implies a different iteration count than shape[d].
	ErrRankMismatch = errors.New("slicing: rank mismatch")

	// ErrBadShape is returned when an extent in Shape or ShapeX is negative, or
	// when the element count of a shape overflows int.
	ErrBadShape = errors.New("slicing: invalid shape")

	// ErrZeroStep is returned for a REGULAR triplet whose step is zero.
	ErrZeroStep = errors.New("slicing: zero step")

	// ErrInconsistent is returned when a Fancy REGULAR dimension's OffsetX or
	// StrideX disagrees with its triplet.
	ErrInconsistent = errors.New("slicing: offset or stride disagrees with triplet")

	// ErrDirection is returned for a Direction other than Get or Set.
	ErrDirection = errors.New("slicing: unknown direction")

	// ErrOutOfBounds indicates an address, table position or coordinate outside
	// the backing buffer, the index table, or a dimension's extent.
	ErrOutOfBounds = errors.New("slicing: out of bounds")
)

// Operand names used in BoundsError.
const (
	OperandX     = "x"
	OperandY     = "y"
	OperandIndex = "index"
)

// BoundsError describes one rejected coordinate or address.
// Dim is -1 when the violation concerns a flat buffer address rather than a
// single dimension. An address that overflows int is reported with Index
// math.MaxInt. It unwraps to ErrOutOfBounds.
type BoundsError struct {
	Operand string // OperandX, OperandY or OperandIndex
	Dim     int    // dimension, or -1 for a flat address
	Index   int    // offending coordinate/address
	Extent  int    // valid range is [0, Extent)
}

func (e *BoundsError) Error() string {
	if e.Dim < 0 {
		return fmt.Sprintf("slicing: %s address %d out of bounds for buffer of length %d",
			e.Operand, e.Index, e.Extent)
	}

	return fmt.Sprintf("slicing: index %d out of bounds for dimension %d of size %d",
		e.Index, e.Dim, e.Extent)
}

// Unwrap lets errors.Is(err, ErrOutOfBounds) match.
func (e *BoundsError) Unwrap() error { return ErrOutOfBounds }

// sliceErrorf wraps err with the public operation name.
func sliceErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// rankErrorf reports which sequence disagreed with the rank.
func rankErrorf(field string, got, rank int) error {
	return fmt.Errorf("%s has length %d, rank is %d: %w", field, got, rank, ErrRankMismatch)
}
