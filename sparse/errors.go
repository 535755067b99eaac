// SPDX-License-Identifier: MIT
// Package sparse: sentinel error set.
// Every error leaving an Engine wraps one of these with the operation name and
// handle id, e.g. "sparse.Get(<id>,2,9): sparse: index out of bounds".

package sparse

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidDimensions is returned for negative dimensions, a reshape that
	// changes the element count, or a shape another library cannot represent.
	ErrInvalidDimensions = errors.New("sparse: invalid dimensions")

	// ErrOutOfBounds indicates a row or column outside the matrix.
	ErrOutOfBounds = errors.New("sparse: index out of bounds")

	// ErrDoubleRelease is returned by the second Destroy of a handle.
	ErrDoubleRelease = errors.New("sparse: handle already destroyed")

	// ErrReleased is returned when a destroyed handle is used.
	ErrReleased = errors.New("sparse: use of destroyed handle")

	// ErrUnknownHandle is returned for handles this Engine never issued.
	ErrUnknownHandle = errors.New("sparse: unknown handle")
)

// handleErrorf formats "sparse.<op>(<id>,args...): err".
func handleErrorf(op string, h Handle, err error, args ...any) error {
	var b strings.Builder
	b.WriteString(h.String())
	for _, a := range args {
		fmt.Fprintf(&b, ",%v", a)
	}

	return fmt.Errorf("sparse.%s(%s): %w", op, b.String(), err)
}
