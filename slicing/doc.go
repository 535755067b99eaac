// Package slicing copies strided and index-selected regions between dense,
// flat, row-major buffers of any rank.
//
// The slicing package provides:
//
//   - The Basic engine (SliceGet, SliceSet, Copy): every dimension is addressed
//     by an offset + stride pair derived from a (start, stop, step) triplet.
//   - The Fancy engine (FancySliceGet, FancySliceSet, FancyCopy): every
//     dimension is either Regular(Triplet) or Indexed(a, b), where Indexed takes
//     its coordinates from Index[a..b] of one flat index table.
//   - Planners (PlanBasic, PlanFancy) and helpers (Extract, Assign,
//     FancyExtract, FancyAssign) for the common "x row-major, y compact" case.
//
// Both engines share a single traversal: a depth-first walk, dimension 0
// outermost, kept on an explicit per-level stack rather than the call stack.
// Get and Set are the same walk with the copy direction flipped.
//
// All bounds are checked before the first element moves, so a failed call
// leaves both buffers unmodified. Traversal state is local to each call:
// concurrent Gets from one source are safe as long as nothing writes to it.
//
// Quick example (rows 0 and 2, every column, of a 3×4 array):
//
//	y, shape, err := slicing.Extract(x, []int{3, 4},
//		[]slicing.Triplet{slicing.S(0, 3, 2), slicing.S(0, 4)})
//	// shape == [2 4]
package slicing
