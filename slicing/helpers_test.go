// SPDX-License-Identifier: MIT
// Package slicing_test contains test helpers
//
// Purpose:
//   • Deterministic fixtures (iota and seeded random buffers).
//   • A naive coordinate-by-coordinate reference used to cross-check engines.

package slicing_test

import (
	"testing"

	"github.com/katalvlaran/ndslice/slicing"
	"golang.org/x/exp/rand"
)

// seq returns [0, 1, ..., n-1] as float64.
func seq(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(i)
	}

	return out
}

// filled returns n copies of v.
func filled(n int, v float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = v
	}

	return out
}

// unravel converts a flat row-major offset into coordinates of shape.
func unravel(k int, shape []int) []int {
	c := make([]int, len(shape))
	for d := len(shape) - 1; d >= 0; d-- {
		if shape[d] == 0 {
			return c
		}
		c[d] = k % shape[d]
		k /= shape[d]
	}

	return c
}

// ravel converts coordinates into a flat row-major offset of shape.
func ravel(c, shape []int) int {
	off := 0
	for d := range shape {
		off = off*shape[d] + c[d]
	}

	return off
}

// naiveGather evaluates a mixed spec the slow way: for every destination
// coordinate it maps each dimension to its source coordinate independently.
func naiveGather(x []float64, shapeX []int, spec []slicing.DimSpec, index []int) ([]float64, []int) {
	shape := make([]int, len(spec))
	for d, ds := range spec {
		shape[d] = ds.Count()
	}
	out := make([]float64, slicing.Numel(shape))
	src := make([]int, len(shapeX))
	for k := range out {
		c := unravel(k, shape)
		for d, ds := range spec {
			if t, ok := ds.Triplet(); ok {
				src[d] = t.Start() + c[d]*t.Step()
			} else {
				lo, _, _ := ds.Range()
				src[d] = index[lo+c[d]]
			}
		}
		out[k] = x[ravel(src, shapeX)]
	}

	return out, shape
}

// regular lifts triplets into an all-REGULAR fancy spec.
func regular(ts ...slicing.Triplet) []slicing.DimSpec {
	out := make([]slicing.DimSpec, len(ts))
	for d, t := range ts {
		out[d] = slicing.Regular(t)
	}

	return out
}

// randomTriplet draws a valid non-empty triplet over [0, extent), with a
// negative step half of the time.
func randomTriplet(r *rand.Rand, extent int) slicing.Triplet {
	a, b := r.Intn(extent), r.Intn(extent)
	step := 1 + r.Intn(3)
	if a > b {
		a, b = b, a
	}
	if r.Intn(2) == 0 {
		return slicing.S(b, a-1, -step) // b down to a, inclusive
	}

	return slicing.S(a, b+1, step)
}

// mustPlanBasic plans or aborts the test.
func mustPlanBasic(t testing.TB, shapeX []int, spec ...slicing.Triplet) *slicing.Basic {
	t.Helper()
	b, err := slicing.PlanBasic(shapeX, spec)
	if err != nil {
		t.Fatalf("PlanBasic(%v): %v", shapeX, err)
	}

	return b
}
