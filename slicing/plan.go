// SPDX-License-Identifier: MIT

// Package slicing - planners for the common row-major case.
//
// Purpose:
//   - Turn per-dimension triplets / index lists over a row-major x of shape
//     shapeX into a descriptor whose y is a fresh compact row-major array.
//   - Offer Extract/Assign helpers that allocate y (Extract) or accept it
//     (Assign) for callers that do not keep descriptors around.
//
// AI-Hints:
//   - Build a descriptor once with PlanBasic/PlanFancy and reuse it for many
//     buffers of the same layout; the engines never mutate descriptors.
package slicing

import "fmt"

// PlanBasic derives the Basic descriptor selecting spec out of a row-major x
// of shape shapeX into a compact row-major y of shape (spec[d].Count()).
//
// Errors:
//   - ErrRankMismatch when len(spec) != len(shapeX).
//   - ErrBadShape for negative extents, ErrZeroStep for zero steps.
//   - ErrOutOfBounds when a non-empty triplet leaves [0, shapeX[d]).
//
// Complexity:
//   - Time O(rank), Space O(rank).
func PlanBasic(shapeX []int, spec []Triplet) (*Basic, error) {
	rank := len(shapeX)
	if len(spec) != rank {
		return nil, rankErrorf("spec", len(spec), rank)
	}
	if err := validateShape("shapeX", shapeX); err != nil {
		return nil, err
	}

	natx := RowMajorStrides(shapeX)
	b := &Basic{
		Shape:   make([]int, rank),
		OffsetX: make([]int, rank),
		StrideX: make([]int, rank),
		OffsetY: make([]int, rank),
	}
	for d, t := range spec {
		if err := checkTriplet(d, t, shapeX[d]); err != nil {
			return nil, err
		}
		b.Shape[d] = t.Count()
		b.OffsetX[d] = t.start * natx[d]
		b.StrideX[d] = scaledStep(t, natx[d])
	}
	b.StrideY = RowMajorStrides(b.Shape)

	return b, nil
}

// PlanFancy derives the Fancy descriptor for spec over a row-major x of shape
// shapeX into a compact row-major y. Index-table ranges and values are
// checked when the descriptor is used.
//
// Errors:
//   - As PlanBasic for REGULAR dimensions.
//
// Complexity:
//   - Time O(rank), Space O(rank).
func PlanFancy(shapeX []int, spec []DimSpec, index []int) (*Fancy, error) {
	rank := len(shapeX)
	if len(spec) != rank {
		return nil, rankErrorf("spec", len(spec), rank)
	}
	if err := validateShape("shapeX", shapeX); err != nil {
		return nil, err
	}

	natx := RowMajorStrides(shapeX)
	f := &Fancy{
		Shape:   make([]int, rank),
		ShapeX:  shapeX,
		Spec:    spec,
		Index:   index,
		OffsetX: make([]int, rank),
		StrideX: make([]int, rank),
		OffsetY: make([]int, rank),
	}
	for d, ds := range spec {
		if t, ok := ds.Triplet(); ok {
			if err := checkTriplet(d, t, shapeX[d]); err != nil {
				return nil, err
			}
			f.OffsetX[d] = t.start * natx[d]
			f.StrideX[d] = scaledStep(t, natx[d])
		} else {
			f.StrideX[d] = natx[d]
		}
		f.Shape[d] = ds.Count()
	}
	f.StrideY = RowMajorStrides(f.Shape)

	return f, nil
}

// checkTriplet validates a triplet against one dimension's extent.
func checkTriplet(d int, t Triplet, extent int) error {
	if t.step == 0 {
		return fmt.Errorf("dimension %d: %w", d, ErrZeroStep)
	}
	last, ok := t.Last()
	if !ok {
		return nil // empty selection touches nothing
	}
	if err := checkCoord(d, t.start, extent); err != nil {
		return err
	}

	return checkCoord(d, last, extent)
}

// Extract returns a new compact array holding the region spec of the
// row-major x (shape shapeX), together with its shape.
func Extract[T any](x []T, shapeX []int, spec []Triplet, opts ...Option) ([]T, []int, error) {
	b, err := PlanBasic(shapeX, spec)
	if err != nil {
		return nil, nil, sliceErrorf("Extract", err)
	}
	y := make([]T, Numel(b.Shape))
	if err = SliceGet(x, y, b, opts...); err != nil {
		return nil, nil, err
	}

	return y, b.Shape, nil
}

// Assign writes the compact array y into the region spec of x.
// len(y) must equal the region's element count.
func Assign[T any](x []T, shapeX []int, spec []Triplet, y []T, opts ...Option) error {
	b, err := PlanBasic(shapeX, spec)
	if err != nil {
		return sliceErrorf("Assign", err)
	}
	if n := Numel(b.Shape); len(y) != n {
		return sliceErrorf("Assign", fmt.Errorf("source has %d elements, region has %d: %w",
			len(y), n, ErrRankMismatch))
	}

	return SliceSet(x, y, b, opts...)
}

// FancyExtract is Extract for mixed REGULAR/INDEXED specs.
func FancyExtract[T any](x []T, shapeX []int, spec []DimSpec, index []int, opts ...Option) ([]T, []int, error) {
	f, err := PlanFancy(shapeX, spec, index)
	if err != nil {
		return nil, nil, sliceErrorf("FancyExtract", err)
	}
	y := make([]T, Numel(f.Shape))
	if err = FancySliceGet(x, y, f, opts...); err != nil {
		return nil, nil, err
	}

	return y, f.Shape, nil
}

// FancyAssign is Assign for mixed REGULAR/INDEXED specs.
func FancyAssign[T any](x []T, shapeX []int, spec []DimSpec, index []int, y []T, opts ...Option) error {
	f, err := PlanFancy(shapeX, spec, index)
	if err != nil {
		return sliceErrorf("FancyAssign", err)
	}
	if n := Numel(f.Shape); len(y) != n {
		return sliceErrorf("FancyAssign", fmt.Errorf("source has %d elements, region has %d: %w",
			len(y), n, ErrRankMismatch))
	}

	return FancySliceSet(x, y, f, opts...)
}

// scaledStep returns t's step in elements of a dimension with natural stride
// nat. A step too large to scale can only belong to a triplet with at most
// one iteration, whose stride is never applied, so 0 is returned for it.
func scaledStep(t Triplet, nat int) int {
	st, ok := mulInt(t.step, nat)
	if !ok {
		return 0
	}

	return st
}
