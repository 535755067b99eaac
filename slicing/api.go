// SPDX-License-Identifier: MIT

// Package slicing - public entry points.
//
// Get (x is the source, y the destination) and Set (y is written into x) share
// one code path; only the Direction differs. Every entry point validates the
// whole descriptor first: on error neither buffer has been touched.
package slicing

import "fmt"

// Context tags used in error wrappers.
const (
	ctxCopy          = "Copy"
	ctxSliceGet      = "SliceGet"
	ctxSliceSet      = "SliceSet"
	ctxFancyCopy     = "FancyCopy"
	ctxFancySliceGet = "FancySliceGet"
	ctxFancySliceSet = "FancySliceSet"
)

// Copy moves elements between x and y as addressed by b.
// With dir == Get the addressed elements of x are copied into y; with dir == Set
// the elements of y are written into the addressed positions of x.
//
// Errors:
//   - ErrNilDescriptor, ErrDirection, ErrRankMismatch, ErrBadShape,
//     ErrOutOfBounds (as *BoundsError).
//
// Complexity:
//   - Time O(∏ Shape), Space O(rank).
func Copy[T any](dir Direction, x, y []T, b *Basic, opts ...Option) error {
	return copyBasic(ctxCopy, dir, x, y, b, opts)
}

// SliceGet copies the region of x addressed by b into y.
func SliceGet[T any](x, y []T, b *Basic, opts ...Option) error {
	return copyBasic(ctxSliceGet, Get, x, y, b, opts)
}

// SliceSet writes y into the region of x addressed by b.
func SliceSet[T any](x, y []T, b *Basic, opts ...Option) error {
	return copyBasic(ctxSliceSet, Set, x, y, b, opts)
}

// FancyCopy is Copy for descriptors that mix REGULAR and INDEXED dimensions.
//
// Errors:
//   - As Copy, plus ErrZeroStep; index values outside ShapeX report the
//     offending dimension through *BoundsError.
//
// Complexity:
//   - Time O(∏ Shape + Σ index ranges), Space O(rank).
func FancyCopy[T any](dir Direction, x, y []T, f *Fancy, opts ...Option) error {
	return copyFancy(ctxFancyCopy, dir, x, y, f, opts)
}

// FancySliceGet copies the fancy-addressed region of x into y.
func FancySliceGet[T any](x, y []T, f *Fancy, opts ...Option) error {
	return copyFancy(ctxFancySliceGet, Get, x, y, f, opts)
}

// FancySliceSet writes y into the fancy-addressed region of x.
func FancySliceSet[T any](x, y []T, f *Fancy, opts ...Option) error {
	return copyFancy(ctxFancySliceSet, Set, x, y, f, opts)
}

func copyBasic[T any](op string, dir Direction, x, y []T, b *Basic, opts []Option) error {
	o := gatherOptions(opts)
	if err := checkDirection(dir); err != nil {
		return o.reject(op, err)
	}
	if err := validateBasic(b, len(x), len(y)); err != nil {
		return o.reject(op, err)
	}

	w := newWalker(dir, x, y, b.Shape, b.OffsetX, b.StrideX, b.OffsetY, b.StrideY, o.bulk)
	w.run(b.BaseX, b.BaseY)

	return nil
}

func copyFancy[T any](op string, dir Direction, x, y []T, f *Fancy, opts []Option) error {
	o := gatherOptions(opts)
	if err := checkDirection(dir); err != nil {
		return o.reject(op, err)
	}
	natx, err := validateFancy(f, len(x), len(y))
	if err != nil {
		return o.reject(op, err)
	}

	w := newWalker(dir, x, y, f.Shape, f.OffsetX, f.StrideX, f.OffsetY, f.StrideY, o.bulk)
	w.spec, w.index, w.natx = f.Spec, f.Index, natx
	w.run(f.BaseX, f.BaseY)

	return nil
}

func checkDirection(dir Direction) error {
	if dir != Get && dir != Set {
		return fmt.Errorf("direction %d: %w", dir, ErrDirection)
	}

	return nil
}

// reject tags err with the operation and logs it when a logger is configured.
func (o options) reject(op string, err error) error {
	err = sliceErrorf(op, err)
	if o.log != nil {
		o.log.Debug("slice rejected", "op", op, "error", err)
	}

	return err
}
