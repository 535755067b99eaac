// SPDX-License-Identifier: MIT

package slicing

import (
	"fmt"
	"math"
)

// RowMajorStrides returns the natural element strides of a C-order array:
// the last dimension has stride 1 and each outer stride is the product of all
// inner extents. A rank-0 shape yields an empty slice.
// Complexity: O(rank).
func RowMajorStrides(shape []int) []int {
	st := make([]int, len(shape))
	acc := 1
	for d := len(shape) - 1; d >= 0; d-- {
		st[d] = acc
		acc *= shape[d]
	}

	return st
}

// Numel returns the number of elements of shape (1 for rank 0).
func Numel(shape []int) int {
	n := 1
	for _, e := range shape {
		n *= e
	}

	return n
}

// validateShape rejects negative extents and shapes whose non-zero extents
// multiply past math.MaxInt. After it passes, RowMajorStrides and Numel of
// shape cannot overflow.
func validateShape(field string, shape []int) error {
	for d, e := range shape {
		if e < 0 {
			return fmt.Errorf("%s[%d] = %d: %w", field, d, e, ErrBadShape)
		}
	}
	n := 1
	for _, e := range shape {
		if e == 0 {
			continue
		}
		var ok bool
		if n, ok = mulInt(n, e); !ok {
			return fmt.Errorf("%s %v: element count overflows int: %w", field, shape, ErrBadShape)
		}
	}

	return nil
}

// addInt returns a+b and whether the sum fits in an int.
func addInt(a, b int) (int, bool) {
	c := a + b
	if (c > a) != (b > 0) {
		return 0, false
	}

	return c, true
}

// mulInt returns a*b and whether the product fits in an int.
func mulInt(a, b int) (int, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if (a == -1 && b == math.MinInt) || (b == -1 && a == math.MinInt) {
		return 0, false
	}
	c := a * b
	if c/b != a {
		return 0, false
	}

	return c, true
}

// isEmpty reports whether any extent is zero (nothing will be visited).
func isEmpty(shape []int) bool {
	for _, e := range shape {
		if e == 0 {
			return true
		}
	}

	return false
}

// span is the closed range of flat addresses a traversal may touch.
type span struct{ lo, hi int }

// extend widens s by the contribution of one dimension: first is the
// displacement of iteration 0 and step the per-iteration displacement over
// n>0 iterations. ok is false when an address does not fit in an int.
func (s span) extend(first, step, n int) (span, bool) {
	reach, ok := mulInt(n-1, step)
	if !ok {
		return s, false
	}
	last, ok := addInt(first, reach)
	if !ok {
		return s, false
	}
	if last < first {
		first, last = last, first
	}

	return s.shift(first, last)
}

// shift adds lo and hi to the span's bounds.
func (s span) shift(lo, hi int) (span, bool) {
	nlo, ok1 := addInt(s.lo, lo)
	nhi, ok2 := addInt(s.hi, hi)
	if !ok1 || !ok2 {
		return s, false
	}

	return span{lo: nlo, hi: nhi}, true
}

// overflowError reports an address that cannot be represented at all.
func overflowError(operand string, size int) error {
	return &BoundsError{Operand: operand, Dim: -1, Index: math.MaxInt, Extent: size}
}

// check verifies the span fits a buffer of length size.
func (s span) check(operand string, size int) error {
	if s.lo < 0 {
		return &BoundsError{Operand: operand, Dim: -1, Index: s.lo, Extent: size}
	}
	if s.hi >= size {
		return &BoundsError{Operand: operand, Dim: -1, Index: s.hi, Extent: size}
	}

	return nil
}
