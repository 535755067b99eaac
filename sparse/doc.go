// Package sparse keeps column-oriented sparse float64 matrices behind opaque
// handles.
//
// An Engine owns every matrix it creates. Callers hold a Handle, a UUID that
// the Engine resolves on each call, and never see the storage. Each Create is
// paired with exactly one Destroy; a second Destroy reports ErrDoubleRelease
// and any other use of a destroyed handle reports ErrReleased. With scopes a
// handle to a callback, and Close releases whatever is still alive.
//
// A matrix is stored in one of two modes:
//
//   - compressed: compressed sparse column arrays (outer offsets, inner row
//     indices, values), searched by binary search;
//   - uncompressed: one ordered tree per column, cheap to insert into.
//
// New matrices start compressed. Updating an entry that is already stored
// keeps the mode; inserting a new entry switches to uncompressed. Compress and
// Uncompress convert explicitly.
//
// Quick example:
//
//	eng := sparse.NewEngine()
//	defer eng.Close()
//	err := eng.With(3, 4, func(h sparse.Handle) error {
//		return eng.Set(h, 2, 1, 0.5)
//	})
package sparse
