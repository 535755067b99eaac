// SPDX-License-Identifier: MIT

// Package matrix - region copies backed by the slicing engines.
//
// Purpose:
//   - Slice/SetSlice move a strided (rows × cols) region through the Basic engine.
//   - Induced gathers arbitrary row/column index sets through the Fancy engine.
//
// All three are copies: the result never aliases the receiver.
//
// Complexity quicksheet:
//   - Slice/SetSlice: O(r'*c'); Induced: O(r'*c' + len(rowsIdx) + len(colsIdx)).
package matrix

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/ndslice/slicing"
)

// Slice copies the region selected by the row and column triplets into a new
// Dense. Negative steps reverse the corresponding axis.
//
// Errors:
//   - ErrOutOfRange when a triplet has a zero step or leaves the matrix.
func (m *Dense) Slice(rows, cols slicing.Triplet) (*Dense, error) {
	y, shape, err := slicing.Extract(m.data, []int{m.r, m.c}, []slicing.Triplet{rows, cols})
	if err != nil {
		return nil, regionErrorf(ctxSlice, rows, cols, err)
	}

	return &Dense{r: shape[0], c: shape[1], data: y, validateNaNInf: m.validateNaNInf}, nil
}

// SetSlice writes src into the region selected by rows and cols.
// src must have exactly rows.Count() × cols.Count() elements in that shape.
//
// Errors:
//   - ErrOutOfRange as Slice; ErrDimensionMismatch for a wrongly shaped src;
//     ErrNaNInf when the receiver's finite-only policy rejects a value of src.
//     The receiver is unchanged on any error.
func (m *Dense) SetSlice(rows, cols slicing.Triplet, src *Dense) error {
	if src.r != rows.Count() || src.c != cols.Count() {
		return fmt.Errorf("Dense.%s(%v,%v): source is %dx%d, region is %dx%d: %w",
			ctxSetSlice, rows, cols, src.r, src.c, rows.Count(), cols.Count(), ErrDimensionMismatch)
	}
	if m.validateNaNInf {
		if k := firstNonFinite(src.data); k >= 0 {
			return denseErrorf(ctxSetSlice, k/src.c, k%src.c, ErrNaNInf)
		}
	}
	if err := slicing.Assign(m.data, []int{m.r, m.c}, []slicing.Triplet{rows, cols}, src.data); err != nil {
		return regionErrorf(ctxSetSlice, rows, cols, err)
	}

	return nil
}

// Induced materializes the submatrix at rowsIdx × colsIdx (in the given
// order, repeats allowed) as a copy.
//
// Errors:
//   - ErrOutOfRange when any index falls outside the matrix.
func (m *Dense) Induced(rowsIdx, colsIdx []int) (*Dense, error) {
	nr, nc := len(rowsIdx), len(colsIdx)
	index := make([]int, 0, nr+nc)
	index = append(append(index, rowsIdx...), colsIdx...)
	spec := []slicing.DimSpec{
		slicing.Indexed(0, nr-1),
		slicing.Indexed(nr, nr+nc-1),
	}

	y, shape, err := slicing.FancyExtract(m.data, []int{m.r, m.c}, spec, index)
	if err != nil {
		var be *slicing.BoundsError
		if errors.As(err, &be) && be.Dim >= 0 {
			axis := "row"
			if be.Dim == 1 {
				axis = "col"
			}
			return nil, fmt.Errorf("Dense.%s: %s index %d: %w", ctxInduce, axis, be.Index, ErrOutOfRange)
		}
		return nil, fmt.Errorf("Dense.%s: %w: %w", ctxInduce, ErrOutOfRange, err)
	}

	return &Dense{r: shape[0], c: shape[1], data: y, validateNaNInf: m.validateNaNInf}, nil
}

// regionErrorf maps a slicing failure onto ErrOutOfRange while keeping the
// engine's error in the chain.
func regionErrorf(method string, rows, cols slicing.Triplet, err error) error {
	return fmt.Errorf("Dense.%s(%v,%v): %w: %w", method, rows, cols, ErrOutOfRange, err)
}
