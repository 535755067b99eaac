// Package matrix offers a row-major dense float64 matrix whose region copies
// run on the slicing engines.
//
// The matrix package provides:
//
//   - Dense with bounds-checked At/Set, Clone and a row-wise String dump.
//   - Slice and SetSlice: copy a strided (rows × cols) region out of or into
//     a Dense; negative steps reverse an axis.
//   - Induced: gather arbitrary row and column index sets, in order.
//   - A finite-only numeric policy (on by default) applied to every write.
//
// See the examples in this package for usage patterns.
package matrix
