// SPDX-License-Identifier: MIT

// Package sparse - per-handle operations.
//
// Every method resolves the handle first (ErrUnknownHandle, ErrReleased),
// then validates its arguments; a rejected call leaves the matrix unchanged.
package sparse

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
)

// Rows returns the row count of h.
func (e *Engine) Rows(h Handle) (int32, error) {
	m, err := e.lookup(ctxRows, h)
	if err != nil {
		return 0, err
	}

	return m.rows, nil
}

// Cols returns the column count of h.
func (e *Engine) Cols(h Handle) (int32, error) {
	m, err := e.lookup(ctxCols, h)
	if err != nil {
		return 0, err
	}

	return m.cols, nil
}

// Get returns the coefficient at (i, j); entries never stored read as 0.
//
// Errors:
//   - ErrOutOfBounds outside rows×cols.
func (e *Engine) Get(h Handle, i, j int32) (float64, error) {
	m, err := e.lookup(ctxGet, h, i, j)
	if err != nil {
		return 0, err
	}
	if !m.inBounds(i, j) {
		return 0, handleErrorf(ctxGet, h, ErrOutOfBounds, i, j)
	}

	return m.get(i, j), nil
}

// Set stores v at (i, j). Updating a stored entry keeps the storage mode;
// inserting a new one leaves the matrix uncompressed.
//
// Errors:
//   - ErrOutOfBounds outside rows×cols.
func (e *Engine) Set(h Handle, i, j int32, v float64) error {
	m, err := e.lookup(ctxSet, h, i, j)
	if err != nil {
		return err
	}
	if !m.inBounds(i, j) {
		return handleErrorf(ctxSet, h, ErrOutOfBounds, i, j)
	}
	m.set(i, j, v)

	return nil
}

// Reset drops every stored entry, keeping the shape and storage mode.
func (e *Engine) Reset(h Handle) error {
	m, err := e.lookup(ctxReset, h)
	if err != nil {
		return err
	}
	m.reset()

	return nil
}

// IsCompressed reports whether h is in compressed column mode.
func (e *Engine) IsCompressed(h Handle) (bool, error) {
	m, err := e.lookup(ctxIsCompressed, h)
	if err != nil {
		return false, err
	}

	return m.compressed, nil
}

// Compress converts h to compressed column arrays. No-op when already compressed.
func (e *Engine) Compress(h Handle) error {
	m, err := e.lookup(ctxCompress, h)
	if err != nil {
		return err
	}
	m.compress()

	return nil
}

// Uncompress converts h to per-column trees. No-op when already uncompressed.
func (e *Engine) Uncompress(h Handle) error {
	m, err := e.lookup(ctxUncompress, h)
	if err != nil {
		return err
	}
	m.uncompress()

	return nil
}

// Reshape reinterprets h as rows×cols. Entries keep their column-major
// linear position; the storage mode is kept.
//
// Errors:
//   - ErrInvalidDimensions for negative dims or rows*cols != Rows*Cols.
func (e *Engine) Reshape(h Handle, rows, cols int32) error {
	m, err := e.lookup(ctxReshape, h, rows, cols)
	if err != nil {
		return err
	}
	if rows < 0 || cols < 0 || int64(rows)*int64(cols) != int64(m.rows)*int64(m.cols) {
		return handleErrorf(ctxReshape, h,
			fmt.Errorf("%dx%d to %dx%d: %w", m.rows, m.cols, rows, cols, ErrInvalidDimensions), rows, cols)
	}
	m.reshape(rows, cols)

	return nil
}

// Clone returns a new handle holding a deep copy of h.
func (e *Engine) Clone(h Handle) (Handle, error) {
	m, err := e.lookup(ctxClone, h)
	if err != nil {
		return Handle{}, err
	}

	return e.register(m.clone(e.compressOnClone), "sparse matrix cloned", "parent", h), nil
}

// NNZ returns the number of stored entries, explicit zeros included.
func (e *Engine) NNZ(h Handle) (int, error) {
	m, err := e.lookup(ctxNNZ, h)
	if err != nil {
		return 0, err
	}

	return m.nnz(), nil
}

// Print writes the stored entries of h to w as a (row, col, value) table,
// column-major, followed by a "RxC, N stored, compressed=B" line.
func (e *Engine) Print(w io.Writer, h Handle) error {
	m, err := e.lookup(ctxPrint, h)
	if err != nil {
		return err
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"row", "col", "value"})
	m.each(func(i, j int32, v float64) {
		table.Append([]string{
			strconv.Itoa(int(i)),
			strconv.Itoa(int(j)),
			strconv.FormatFloat(v, 'g', -1, 64),
		})
	})
	table.Render()

	// written by hand: tablewriter wraps long captions
	_, err = fmt.Fprintf(w, "%dx%d, %d stored, compressed=%t\n", m.rows, m.cols, m.nnz(), m.compressed)

	return err
}
