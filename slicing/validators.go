// SPDX-License-Identifier: MIT
// Package: slicing
//
// Purpose:
//  - Single source of truth for descriptor checks. Every check runs before the
//    first element moves, so a rejected call leaves both buffers untouched.
//  - Return sentinels (or *BoundsError) unwrapped by operation name; the entry
//    points in api.go add the operation tag.
//
// Determinism & Performance:
//  - O(rank) for Basic; O(rank + Σ|index ranges|) for Fancy. No allocation
//    besides the natural-stride slice of Fancy.

package slicing

import "fmt"

// validateRank checks that every per-dimension sequence matches rank.
func validateRank(rank int, fields []string, seqs ...[]int) error {
	for k, s := range seqs {
		if len(s) != rank {
			return rankErrorf(fields[k], len(s), rank)
		}
	}

	return nil
}

var basicFields = []string{"OffsetX", "StrideX", "OffsetY", "StrideY"}

// validateBasic checks b against buffers of length lenX and lenY.
// Complexity: O(rank).
func validateBasic(b *Basic, lenX, lenY int) error {
	if b == nil {
		return ErrNilDescriptor
	}
	rank := len(b.Shape)
	if err := validateRank(rank, basicFields, b.OffsetX, b.StrideX, b.OffsetY, b.StrideY); err != nil {
		return err
	}
	if err := validateShape("Shape", b.Shape); err != nil {
		return err
	}
	if isEmpty(b.Shape) {
		return nil // nothing will be addressed
	}

	sx := span{lo: b.BaseX, hi: b.BaseX}
	sy := span{lo: b.BaseY, hi: b.BaseY}
	var okx, oky bool
	for d := 0; d < rank; d++ {
		if sx, okx = sx.extend(b.OffsetX[d], b.StrideX[d], b.Shape[d]); !okx {
			return overflowError(OperandX, lenX)
		}
		if sy, oky = sy.extend(b.OffsetY[d], b.StrideY[d], b.Shape[d]); !oky {
			return overflowError(OperandY, lenY)
		}
	}
	if err := sx.check(OperandX, lenX); err != nil {
		return err
	}

	return sy.check(OperandY, lenY)
}

var fancyFields = []string{"ShapeX", "OffsetX", "StrideX", "OffsetY", "StrideY"}

// validateFancy checks f against buffers of length lenX and lenY and returns
// x's natural row-major strides for use by the walker.
// Complexity: O(rank + number of index-table entries referenced).
func validateFancy(f *Fancy, lenX, lenY int) ([]int, error) {
	if f == nil {
		return nil, ErrNilDescriptor
	}
	rank := len(f.Shape)
	if len(f.Spec) != rank {
		return nil, rankErrorf("Spec", len(f.Spec), rank)
	}
	if err := validateRank(rank, fancyFields, f.ShapeX, f.OffsetX, f.StrideX, f.OffsetY, f.StrideY); err != nil {
		return nil, err
	}
	if err := validateShape("Shape", f.Shape); err != nil {
		return nil, err
	}
	if err := validateShape("ShapeX", f.ShapeX); err != nil {
		return nil, err
	}

	// Per-dimension spec consistency, coordinates and index table.
	natx := RowMajorStrides(f.ShapeX)
	sx := span{lo: f.BaseX, hi: f.BaseX}
	sy := span{lo: f.BaseY, hi: f.BaseY}
	// an overflow only matters when something is visited
	var ok bool
	var spanErr error
	for d := 0; d < rank; d++ {
		ds := f.Spec[d]
		if ds.kind == KindRegular && ds.trip.step == 0 {
			return nil, fmt.Errorf("dimension %d: %w", d, ErrZeroStep)
		}
		n := ds.Count()
		if n != f.Shape[d] {
			return nil, fmt.Errorf("dimension %d: spec yields %d iterations, shape is %d: %w",
				d, n, f.Shape[d], ErrRankMismatch)
		}
		if n == 0 {
			continue
		}

		if ds.kind == KindRegular {
			if err := checkCoord(d, ds.trip.start, f.ShapeX[d]); err != nil {
				return nil, err
			}
			last, _ := ds.trip.Last()
			if err := checkCoord(d, last, f.ShapeX[d]); err != nil {
				return nil, err
			}
			if err := checkRegular(d, ds.trip, n, natx[d], f.OffsetX[d], f.StrideX[d]); err != nil {
				return nil, err
			}
			if sx, ok = sx.extend(f.OffsetX[d], f.StrideX[d], n); !ok && spanErr == nil {
				spanErr = overflowError(OperandX, lenX)
			}
		} else {
			lo, hi, err := checkTable(d, ds, f.Index, f.ShapeX[d])
			if err != nil {
				return nil, err
			}
			// coordinates are below ShapeX[d], so the products fit
			if sx, ok = sx.shift(lo*natx[d], hi*natx[d]); !ok && spanErr == nil {
				spanErr = overflowError(OperandX, lenX)
			}
		}
		if sy, ok = sy.extend(f.OffsetY[d], f.StrideY[d], n); !ok && spanErr == nil {
			spanErr = overflowError(OperandY, lenY)
		}
	}
	if isEmpty(f.Shape) {
		return natx, nil
	}
	if spanErr != nil {
		return nil, spanErr
	}
	if err := sx.check(OperandX, lenX); err != nil {
		return nil, err
	}
	if err := sy.check(OperandY, lenY); err != nil {
		return nil, err
	}

	return natx, nil
}

// checkRegular verifies that a REGULAR dimension's x offset and stride are the
// triplet scaled by the natural stride nat. The stride of a single-iteration
// dimension is never applied and is not checked.
func checkRegular(d int, t Triplet, n, nat, offset, stride int) error {
	if offset != t.start*nat {
		return fmt.Errorf("dimension %d: OffsetX %d, triplet %v implies %d: %w",
			d, offset, t, t.start*nat, ErrInconsistent)
	}
	if n > 1 && stride != t.step*nat {
		return fmt.Errorf("dimension %d: StrideX %d, triplet %v implies %d: %w",
			d, stride, t, t.step*nat, ErrInconsistent)
	}

	return nil
}

// checkCoord verifies 0 <= c < extent for dimension d of x.
func checkCoord(d, c, extent int) error {
	if c < 0 || c >= extent {
		return &BoundsError{Operand: OperandX, Dim: d, Index: c, Extent: extent}
	}

	return nil
}

// checkTable verifies that the non-empty inclusive range of ds lies inside
// index and that every referenced coordinate is within extent. It returns the
// smallest and largest referenced coordinate.
func checkTable(d int, ds DimSpec, index []int, extent int) (lo, hi int, err error) {
	if ds.lo < 0 {
		return 0, 0, &BoundsError{Operand: OperandIndex, Dim: -1, Index: ds.lo, Extent: len(index)}
	}
	if ds.hi >= len(index) {
		return 0, 0, &BoundsError{Operand: OperandIndex, Dim: -1, Index: ds.hi, Extent: len(index)}
	}

	lo, hi = index[ds.lo], index[ds.lo]
	for _, c := range index[ds.lo : ds.hi+1] {
		if err = checkCoord(d, c, extent); err != nil {
			return 0, 0, err
		}
		lo = min(lo, c)
		hi = max(hi, c)
	}

	return lo, hi, nil
}
