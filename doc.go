// Package ndslice copies strided and index-selected regions between flat,
// row-major buffers of any rank, and keeps sparse matrices behind opaque
// handles.
//
// 🚀 What is ndslice?
//
//	A small set of packages that bring together:
//		• slicing: the Basic engine (offset + stride per dimension) and the
//		  Fancy engine (each dimension a regular range or an index list)
//		• matrix: a row-major Dense whose Slice/SetSlice/Induced run on the engines
//		• sparse: column-oriented sparse matrices addressed by UUID handles,
//		  with compressed and uncompressed storage
//
// ✨ Guarantees
//
//   - Every bounds check runs before the first element moves: a failed call
//     leaves both buffers untouched.
//   - Traversal state is per call, so concurrent Gets from one source are safe.
//   - Rank is limited by memory, not by the call stack.
//
// Layout:
//
//	slicing/         descriptors, planners, Basic & Fancy engines
//	matrix/          Dense (row-major) built on slicing
//	sparse/          handle Engine, storage modes, gonum & Dense interop
//	cmd/ndslice/     CLI: slice an iota array, benchmark the engines
//	internal/        logging (logutil) and environment settings (envconfig)
//
// Quick ASCII example, rows 0 and 2 of a 3×4 array:
//
//	 0  1  2  3        0  1  2  3
//	 4  5  6  7   →    8  9 10 11
//	 8  9 10 11
//
//	go get github.com/katalvlaran/ndslice/slicing
package ndslice
