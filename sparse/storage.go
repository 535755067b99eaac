// SPDX-License-Identifier: MIT

// Package sparse - matrix storage in its two modes.
//
// Purpose:
//   - Compressed: CSC arrays. outer has cols+1 offsets; the entries of column j
//     are inner[outer[j]:outer[j+1]] (ascending rows) and the matching values.
//   - Uncompressed: one ordered tree per column keyed by row.
//
// Invariants:
//   - Exactly one representation is populated; the other is nil.
//   - Entries are always visited column-major, rows ascending.
//
// Complexity quicksheet:
//   - get: O(log nnz(col)) in either mode.
//   - set on a stored entry: O(log nnz(col)); new entry while compressed: O(nnz) (uncompress).
//   - compress/uncompress/clone/reshape: O(nnz log nnz) worst case.
package sparse

import (
	"slices"

	"github.com/emirpasic/gods/v2/maps/treemap"
)

// entry is one stored coefficient.
type entry struct {
	i, j int32
	v    float64
}

type spmat struct {
	rows, cols int32
	compressed bool

	outer  []int32
	inner  []int32
	values []float64

	trees []*treemap.Map[int32, float64]
}

// newSpmat returns an empty compressed rows×cols matrix.
func newSpmat(rows, cols int32) *spmat {
	return &spmat{rows: rows, cols: cols, compressed: true, outer: make([]int32, int(cols)+1)}
}

// fromColumnMajor builds a compressed matrix from entries already sorted
// column-major with ascending rows and no duplicates.
func fromColumnMajor(rows, cols int32, es []entry) *spmat {
	m := newSpmat(rows, cols)
	m.inner = make([]int32, len(es))
	m.values = make([]float64, len(es))
	for k, e := range es {
		m.outer[e.j+1]++
		m.inner[k] = e.i
		m.values[k] = e.v
	}
	for j := int32(0); j < cols; j++ {
		m.outer[j+1] += m.outer[j]
	}

	return m
}

func (m *spmat) inBounds(i, j int32) bool {
	return i >= 0 && i < m.rows && j >= 0 && j < m.cols
}

// find locates (i, j) in the compressed arrays.
func (m *spmat) find(i, j int32) (int, bool) {
	lo, hi := int(m.outer[j]), int(m.outer[j+1])
	k, ok := slices.BinarySearch(m.inner[lo:hi], i)

	return lo + k, ok
}

func (m *spmat) get(i, j int32) float64 {
	if m.compressed {
		if k, ok := m.find(i, j); ok {
			return m.values[k]
		}
		return 0
	}
	v, _ := m.trees[j].Get(i)

	return v
}

// set stores v at (i, j). Zeros are stored explicitly, as any other value.
func (m *spmat) set(i, j int32, v float64) {
	if m.compressed {
		if k, ok := m.find(i, j); ok {
			m.values[k] = v
			return
		}
		m.uncompress()
	}
	m.trees[j].Put(i, v)
}

func (m *spmat) nnz() int {
	if m.compressed {
		return len(m.values)
	}
	n := 0
	for _, t := range m.trees {
		n += t.Size()
	}

	return n
}

// each visits every stored entry column-major.
func (m *spmat) each(fn func(i, j int32, v float64)) {
	for j := int32(0); j < m.cols; j++ {
		if m.compressed {
			for k := m.outer[j]; k < m.outer[j+1]; k++ {
				fn(m.inner[k], j, m.values[k])
			}
			continue
		}
		it := m.trees[j].Iterator()
		for it.Next() {
			fn(it.Key(), j, it.Value())
		}
	}
}

func (m *spmat) entries() []entry {
	es := make([]entry, 0, m.nnz())
	m.each(func(i, j int32, v float64) { es = append(es, entry{i, j, v}) })

	return es
}

func (m *spmat) compress() {
	if m.compressed {
		return
	}
	*m = *fromColumnMajor(m.rows, m.cols, m.entries())
}

func (m *spmat) uncompress() {
	if !m.compressed {
		return
	}
	trees := make([]*treemap.Map[int32, float64], m.cols)
	for j := range trees {
		trees[j] = treemap.New[int32, float64]()
	}
	m.each(func(i, j int32, v float64) { trees[j].Put(i, v) })

	m.compressed = false
	m.outer, m.inner, m.values = nil, nil, nil
	m.trees = trees
}

// reset drops every entry and keeps the shape and mode.
func (m *spmat) reset() {
	if m.compressed {
		clear(m.outer)
		m.inner, m.values = m.inner[:0], m.values[:0]
		return
	}
	for _, t := range m.trees {
		t.Clear()
	}
}

// reshape reinterprets the matrix as rows×cols, keeping each entry at the
// same column-major linear position. The caller checks the element count.
func (m *spmat) reshape(rows, cols int32) {
	es := m.entries()
	for k := range es {
		lin := int64(es[k].j)*int64(m.rows) + int64(es[k].i)
		es[k].i, es[k].j = int32(lin%int64(rows)), int32(lin/int64(rows))
	}
	wasCompressed := m.compressed
	*m = *fromColumnMajor(rows, cols, es)
	if !wasCompressed {
		m.uncompress()
	}
}

// clone returns a deep copy, compressed when compress is set, else in m's mode.
func (m *spmat) clone(compress bool) *spmat {
	c := fromColumnMajor(m.rows, m.cols, m.entries())
	if !m.compressed && !compress {
		c.uncompress()
	}

	return c
}
