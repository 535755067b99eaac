// SPDX-License-Identifier: MIT

// Package slicing - shared traversal used by the Basic and Fancy engines.
//
// Purpose:
//   - Walk the iteration space depth-first, dimension 0 outermost, accumulating
//     one flat cursor into x and one into y.
//   - Replace call recursion with an explicit per-level stack (odometer), so the
//     memory used is O(rank) and independent of call-stack limits.
//
// Implementation:
//   - Stage 1: enter() initialises every outer level at iteration 0.
//   - Stage 2: inner() runs the whole innermost dimension (bulk copy when both
//     strides are 1 and bulk copying is enabled).
//   - Stage 3: advance() carries the odometer, re-entering deeper levels.
//
// Determinism:
//   - Fixed row-major visiting order; identical for Get and Set.
//
// Complexity quicksheet:
//   - O(∏ shape) element moves, O(rank) extra words of state.
package slicing

// walker is the per-call traversal state. It is created by one entry point,
// used once, and dropped; it only borrows x and y.
type walker[T any] struct {
	dir  Direction
	x, y []T
	bulk bool

	shape      []int
	ofsx, incx []int
	ofsy, incy []int

	// fancy only; spec == nil means every dimension is REGULAR
	spec  []DimSpec
	index []int
	natx  []int

	// explicit stack, one slot per outer level
	it   []int // iteration counter
	posx []int // x cursor including level d's contribution
	posy []int // y cursor including level d's contribution
}

// newWalker sizes the explicit stack for the descriptor's rank.
func newWalker[T any](dir Direction, x, y []T, shape, ofsx, incx, ofsy, incy []int, bulk bool) *walker[T] {
	rank := len(shape)
	stack := make([]int, 3*rank)

	return &walker[T]{
		dir:   dir,
		x:     x,
		y:     y,
		bulk:  bulk,
		shape: shape,
		ofsx:  ofsx,
		incx:  incx,
		ofsy:  ofsy,
		incy:  incy,
		it:    stack[:rank:rank],
		posx:  stack[rank : 2*rank : 2*rank],
		posy:  stack[2*rank:],
	}
}

// indexed reports whether dimension d takes x coordinates from the index table.
func (w *walker[T]) indexed(d int) bool {
	return w.spec != nil && w.spec[d].kind == KindIndexed
}

// firstX is x's contribution of dimension d at iteration 0.
func (w *walker[T]) firstX(d int) int {
	if w.indexed(d) {
		return w.index[w.spec[d].lo] * w.natx[d]
	}

	return w.ofsx[d]
}

// move copies one element in the configured direction.
func (w *walker[T]) move(ix, iy int) {
	if w.dir == Get {
		w.y[iy] = w.x[ix]
	} else {
		w.x[ix] = w.y[iy]
	}
}

// run performs the full traversal starting at the base cursors.
// The descriptor must already be validated.
func (w *walker[T]) run(baseX, baseY int) {
	rank := len(w.shape)
	if rank == 0 {
		w.move(baseX, baseY) // scalar: the base case fires immediately
		return
	}
	if isEmpty(w.shape) {
		return
	}

	last := rank - 1
	px, py := w.enter(0, baseX, baseY)
	for {
		w.inner(px, py)

		d := w.advance(last - 1)
		if d < 0 {
			return
		}
		px, py = w.enter(d+1, w.posx[d], w.posy[d])
	}
}

// enter resets levels from..rank-2 to iteration 0 below the parent cursors
// (px, py) and returns the parent cursors of the innermost level.
func (w *walker[T]) enter(from, px, py int) (int, int) {
	last := len(w.shape) - 1
	for d := from; d < last; d++ {
		w.it[d] = 0
		px += w.firstX(d)
		py += w.ofsy[d]
		w.posx[d] = px
		w.posy[d] = py
	}

	return px, py
}

// advance steps the deepest outer level that still has iterations left,
// starting at level d and carrying outwards. It returns that level, or -1
// when the whole space has been visited.
func (w *walker[T]) advance(d int) int {
	for ; d >= 0; d-- {
		i := w.it[d] + 1
		if i == w.shape[d] {
			continue
		}
		w.it[d] = i
		if w.indexed(d) {
			lo := w.spec[d].lo
			w.posx[d] += (w.index[lo+i] - w.index[lo+i-1]) * w.natx[d]
		} else {
			w.posx[d] += w.incx[d]
		}
		w.posy[d] += w.incy[d]

		return d
	}

	return -1
}

// inner runs the innermost dimension below parent cursors (px, py).
func (w *walker[T]) inner(px, py int) {
	d := len(w.shape) - 1
	n := w.shape[d]
	sy := py + w.ofsy[d]
	incy := w.incy[d]

	if w.indexed(d) {
		lo := w.spec[d].lo
		nat := w.natx[d]
		for i := 0; i < n; i++ {
			w.move(px+w.index[lo+i]*nat, sy)
			sy += incy
		}
		return
	}

	sx := px + w.ofsx[d]
	incx := w.incx[d]
	if w.bulk && incx == 1 && incy == 1 {
		if w.dir == Get {
			copy(w.y[sy:sy+n], w.x[sx:sx+n])
		} else {
			copy(w.x[sx:sx+n], w.y[sy:sy+n])
		}
		return
	}
	for i := 0; i < n; i++ {
		w.move(sx, sy)
		sx += incx
		sy += incy
	}
}
