// SPDX-License-Identifier: MIT

// Package slicing - descriptor types consumed by the Basic and Fancy engines.
//
// Purpose:
//   - Describe an already-normalized copy between two flat row-major buffers.
//   - Keep the REGULAR/INDEXED distinction as an explicit tag (DimSpec), never
//     as a magic negative start.
//
// Complexity quicksheet:
//   - All constructors and accessors are O(1); Count is O(1).
package slicing

import "fmt"

// Direction selects which buffer of a copy is written.
type Direction uint8

const (
	// Get reads the addressed region of x into y.
	Get Direction = iota
	// Set writes y into the addressed region of x.
	Set
)

// String implements fmt.Stringer.
func (d Direction) String() string {
	switch d {
	case Get:
		return "get"
	case Set:
		return "set"
	default:
		return "unknown"
	}
}

// Triplet is a normalized (start, stop, step) slice of one dimension.
// stop is exclusive and step is non-zero; a negative step walks backwards
// (start > stop). Triplet satisfies gorgonia's tensor.Slice interface.
type Triplet struct {
	start, stop, step int
}

// S builds a Triplet. The step defaults to 1 when omitted; extra arguments are ignored.
func S(start, stop int, step ...int) Triplet {
	st := 1
	if len(step) > 0 {
		st = step[0]
	}

	return Triplet{start: start, stop: stop, step: st}
}

// Start returns the first coordinate.
func (t Triplet) Start() int { return t.start }

// End returns the exclusive stop coordinate.
func (t Triplet) End() int { return t.stop }

// Step returns the per-iteration displacement in coordinates.
func (t Triplet) Step() int { return t.step }

// String renders the triplet as start:stop:step.
func (t Triplet) String() string { return fmt.Sprintf("%d:%d:%d", t.start, t.stop, t.step) }

// Count returns how many coordinates the triplet visits (0 for step == 0).
// Complexity: O(1).
func (t Triplet) Count() int {
	switch {
	// unsigned differences stay exact for any pair of ints
	case t.step > 0 && t.stop > t.start:
		return int((uint(t.stop)-uint(t.start)-1)/uint(t.step) + 1)
	case t.step < 0 && t.start > t.stop:
		return int((uint(t.start)-uint(t.stop)-1)/(-uint(t.step)) + 1)
	default:
		return 0
	}
}

// Last returns the final visited coordinate; ok is false when Count() == 0.
func (t Triplet) Last() (last int, ok bool) {
	n := t.Count()
	if n == 0 {
		return 0, false
	}

	return t.start + (n-1)*t.step, true
}

// DimKind tags a DimSpec.
type DimKind uint8

const (
	// KindRegular marks a (start, stop, step) dimension.
	KindRegular DimKind = iota
	// KindIndexed marks a dimension addressed through the flat index table.
	KindIndexed
)

// DimSpec is the per-dimension slice description of a fancy copy:
// either Regular(Triplet) or Indexed(tableStart, tableEnd).
type DimSpec struct {
	kind   DimKind
	trip   Triplet // KindRegular only
	lo, hi int     // KindIndexed only; inclusive range into Fancy.Index
}

// Regular tags t as a REGULAR dimension.
func Regular(t Triplet) DimSpec { return DimSpec{kind: KindRegular, trip: t} }

// Indexed tags a dimension whose coordinates are index[tableStart..tableEnd]
// (both inclusive). tableEnd < tableStart denotes an empty selection.
func Indexed(tableStart, tableEnd int) DimSpec {
	return DimSpec{kind: KindIndexed, lo: tableStart, hi: tableEnd}
}

// Kind reports the tag.
func (d DimSpec) Kind() DimKind { return d.kind }

// Triplet returns the triplet of a REGULAR dimension.
func (d DimSpec) Triplet() (Triplet, bool) { return d.trip, d.kind == KindRegular }

// Range returns the inclusive index-table range of an INDEXED dimension.
func (d DimSpec) Range() (tableStart, tableEnd int, ok bool) {
	return d.lo, d.hi, d.kind == KindIndexed
}

// Count returns the number of iterations this DimSpec implies for its dimension.
func (d DimSpec) Count() int {
	if d.kind == KindRegular {
		return d.trip.Count()
	}
	if d.hi < d.lo {
		return 0
	}

	return d.hi - d.lo + 1
}

// Basic describes a copy addressed by offset/stride pairs only.
// Offsets and strides are in elements, already scaled by each buffer's
// natural per-dimension stride. All slices have length rank == len(Shape).
type Basic struct {
	Shape   []int // iterations per dimension (y's extent)
	OffsetX []int // x: start contribution per dimension
	StrideX []int // x: displacement per iteration
	OffsetY []int // y: start contribution per dimension
	StrideY []int // y: displacement per iteration
	BaseX   int   // initial x cursor
	BaseY   int   // initial y cursor
}

// Rank returns len(Shape).
func (b *Basic) Rank() int { return len(b.Shape) }

// Fancy describes a copy where each dimension is REGULAR or INDEXED.
// For REGULAR dims OffsetX/StrideX apply exactly as in Basic. For INDEXED dims
// they are ignored and x's contribution is Index[tableStart+i] times the
// natural row-major stride derived from ShapeX. The y side always uses
// OffsetY/StrideY.
type Fancy struct {
	Shape   []int     // iterations per dimension (y's extent)
	ShapeX  []int     // x's physical row-major shape
	Spec    []DimSpec // per-dimension tag
	Index   []int     // flat index table shared by all INDEXED dims
	OffsetX []int
	StrideX []int
	OffsetY []int
	StrideY []int
	BaseX   int
	BaseY   int
}

// Rank returns len(Shape).
func (f *Fancy) Rank() int { return len(f.Shape) }
