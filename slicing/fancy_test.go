// Package slicing_test contains unit tests for the Fancy engine.
package slicing_test

import (
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/ndslice/slicing"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

// TestFancyMixedDimensions: REGULAR(0,2,1) × INDEXED{3,1,4} × REGULAR(0,1,1)
// over a (3,5,2) source yields (2,3,1) with r[i,k,0] == s[i, idx[k], 0].
func TestFancyMixedDimensions(t *testing.T) {
	shapeX := []int{3, 5, 2}
	x := seq(slicing.Numel(shapeX))
	idx := []int{3, 1, 4}
	spec := []slicing.DimSpec{
		slicing.Regular(slicing.S(0, 2, 1)),
		slicing.Indexed(0, 2),
		slicing.Regular(slicing.S(0, 1, 1)),
	}

	y, shape, err := slicing.FancyExtract(x, shapeX, spec, idx)
	require.NoError(t, err)
	require.Equal(t, []int{2, 3, 1}, shape)
	for i := 0; i < 2; i++ {
		for k := 0; k < 3; k++ {
			require.Equal(t, x[ravel([]int{i, idx[k], 0}, shapeX)], y[ravel([]int{i, k, 0}, shape)])
		}
	}
}

// TestFancyIndexEqualToExtent rejects an index equal to the dimension size,
// names the dimension, and leaves the destination untouched.
func TestFancyIndexEqualToExtent(t *testing.T) {
	shapeX := []int{2, 5}
	x := seq(10)
	f, err := slicing.PlanFancy(shapeX, []slicing.DimSpec{
		slicing.Regular(slicing.S(0, 2)),
		slicing.Indexed(0, 1),
	}, []int{4, 5})
	require.NoError(t, err)

	y := filled(4, -1)
	err = slicing.FancySliceGet(x, y, f)
	require.ErrorIs(t, err, slicing.ErrOutOfBounds)
	var be *slicing.BoundsError
	require.True(t, errors.As(err, &be))
	require.Equal(t, 1, be.Dim)
	require.Equal(t, 5, be.Index)
	require.Equal(t, 5, be.Extent)
	require.Contains(t, err.Error(), "index 5 out of bounds for dimension 1 of size 5")
	require.Equal(t, filled(4, -1), y)

	err = slicing.FancySliceSet(x, y, f)
	require.ErrorIs(t, err, slicing.ErrOutOfBounds)
	require.Equal(t, seq(10), x)

	// negative coordinates are rejected the same way
	f.Index = []int{-1, 0}
	require.ErrorIs(t, slicing.FancySliceGet(x, y, f), slicing.ErrOutOfBounds)
}

// TestFancyEmptyIndexedRange: tableEnd < tableStart means zero iterations and
// no deeper level is visited.
func TestFancyEmptyIndexedRange(t *testing.T) {
	shapeX := []int{3, 4, 2}
	x := seq(24)
	spec := []slicing.DimSpec{
		slicing.Regular(slicing.S(0, 3)),
		slicing.Indexed(5, 4),
		slicing.Regular(slicing.S(0, 2)),
	}
	f, err := slicing.PlanFancy(shapeX, spec, nil)
	require.NoError(t, err)
	require.Equal(t, []int{3, 0, 2}, f.Shape)

	require.NoError(t, slicing.FancySliceGet(x, nil, f))
	require.NoError(t, slicing.FancySliceSet(x, nil, f))
	require.Equal(t, seq(24), x)
}

// TestFancyShapeDisagreement treats iteration-count mismatch as ErrRankMismatch.
func TestFancyShapeDisagreement(t *testing.T) {
	shapeX := []int{4, 4}
	x := seq(16)
	f, err := slicing.PlanFancy(shapeX, []slicing.DimSpec{
		slicing.Indexed(0, 2),
		slicing.Regular(slicing.S(0, 4, 2)),
	}, []int{0, 1, 2})
	require.NoError(t, err)

	f.Shape = []int{2, 2} // index range holds 3 entries
	y := make([]float64, 6)
	require.ErrorIs(t, slicing.FancySliceGet(x, y, f), slicing.ErrRankMismatch)

	f.Shape = []int{3, 3} // triplet visits 2 coordinates
	require.ErrorIs(t, slicing.FancySliceGet(x, y, f), slicing.ErrRankMismatch)

	f.Shape = []int{3, 2}
	f.Spec = f.Spec[:1]
	require.ErrorIs(t, slicing.FancySliceGet(x, y, f), slicing.ErrRankMismatch)
}

// TestFancyTableRange rejects ranges that leave the index table.
func TestFancyTableRange(t *testing.T) {
	shapeX := []int{4}
	x := seq(4)
	f, err := slicing.PlanFancy(shapeX, []slicing.DimSpec{slicing.Indexed(1, 3)}, []int{0, 1, 2})
	require.NoError(t, err)

	err = slicing.FancySliceGet(x, make([]float64, 3), f)
	require.ErrorIs(t, err, slicing.ErrOutOfBounds)
	var be *slicing.BoundsError
	require.True(t, errors.As(err, &be))
	require.Equal(t, slicing.OperandIndex, be.Operand)
}

// TestFancyRegularOnlyMatchesBasic: an all-REGULAR fancy spec equals the Basic engine.
func TestFancyRegularOnlyMatchesBasic(t *testing.T) {
	r := rand.New(rand.NewSource(4242))
	shapeX := []int{5, 4, 3}
	x := seq(slicing.Numel(shapeX))

	for trial := 0; trial < 30; trial++ {
		spec := make([]slicing.Triplet, len(shapeX))
		for d, e := range shapeX {
			spec[d] = randomTriplet(r, e)
		}
		basic, _, err := slicing.Extract(x, shapeX, spec)
		require.NoError(t, err)
		fancy, _, err := slicing.FancyExtract(x, shapeX, regular(spec...), nil)
		require.NoError(t, err)
		require.Equal(t, basic, fancy)
	}
}

// TestFancyRandomMixed cross-checks random mixed specs against the naive gather
// and verifies the Set direction restores the source.
func TestFancyRandomMixed(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	shapeX := []int{3, 6, 4, 5}
	src := seq(slicing.Numel(shapeX))

	for trial := 0; trial < 40; trial++ {
		var index []int
		spec := make([]slicing.DimSpec, len(shapeX))
		for d, e := range shapeX {
			if r.Intn(2) == 0 {
				spec[d] = slicing.Regular(randomTriplet(r, e))
				continue
			}
			n := 1 + r.Intn(e)
			lo := len(index)
			index = append(index, r.Perm(e)[:n]...) // distinct coordinates
			spec[d] = slicing.Indexed(lo, lo+n-1)
		}

		got, shape, err := slicing.FancyExtract(src, shapeX, spec, index)
		require.NoError(t, err)
		want, wantShape := naiveGather(src, shapeX, spec, index)
		require.Equal(t, wantShape, shape)
		require.Equal(t, want, got, "trial %d", trial)

		elementwise := make([]float64, len(got))
		f, err := slicing.PlanFancy(shapeX, spec, index)
		require.NoError(t, err)
		require.NoError(t, slicing.FancySliceGet(src, elementwise, f, slicing.WithBulkCopy(false)))
		require.Equal(t, got, elementwise)

		cp := append([]float64(nil), src...)
		require.NoError(t, slicing.FancyAssign(cp, shapeX, spec, index, got))
		require.Equal(t, src, cp)
	}
}

// TestFancyScatter writes through an INDEXED innermost dimension.
func TestFancyScatter(t *testing.T) {
	shapeX := []int{2, 4}
	x := make([]float64, 8)
	spec := []slicing.DimSpec{slicing.Regular(slicing.S(1, 2)), slicing.Indexed(0, 1)}
	require.NoError(t, slicing.FancyAssign(x, shapeX, spec, []int{3, 0}, []float64{9, 8}))
	require.Equal(t, []float64{0, 0, 0, 0, 8, 0, 0, 9}, x)

	err := slicing.FancyAssign(x, shapeX, spec, []int{3, 0}, []float64{1})
	require.ErrorIs(t, err, slicing.ErrRankMismatch)
}

// TestFancyZeroStep rejects a REGULAR triplet with step 0.
func TestFancyZeroStep(t *testing.T) {
	f := &slicing.Fancy{
		Shape:   []int{0},
		ShapeX:  []int{3},
		Spec:    []slicing.DimSpec{slicing.Regular(slicing.S(0, 3, 0))},
		OffsetX: []int{0}, StrideX: []int{0},
		OffsetY: []int{0}, StrideY: []int{1},
	}
	require.ErrorIs(t, slicing.FancySliceGet(seq(3), nil, f), slicing.ErrZeroStep)
	require.ErrorIs(t, slicing.FancySliceGet[float64](nil, nil, nil), slicing.ErrNilDescriptor)
}

// TestFancyRankZero copies one scalar like the Basic engine.
func TestFancyRankZero(t *testing.T) {
	y := []float64{0}
	require.NoError(t, slicing.FancySliceGet([]float64{3.5}, y, &slicing.Fancy{}))
	require.Equal(t, 3.5, y[0])
}

// TestFancyAddressOverflow rejects y strides whose reach overflows.
func TestFancyAddressOverflow(t *testing.T) {
	f, err := slicing.PlanFancy([]int{2, 2}, []slicing.DimSpec{
		slicing.Indexed(0, 1),
		slicing.Regular(slicing.S(0, 2)),
	}, []int{1, 0})
	require.NoError(t, err)
	f.StrideY = []int{1 << 62, 1 << 62}

	require.NotPanics(t, func() {
		err := slicing.FancySliceGet(seq(4), make([]float64, 4), f)
		var be *slicing.BoundsError
		require.True(t, errors.As(err, &be))
		require.Equal(t, slicing.OperandY, be.Operand)
	})

	f.StrideY = []int{2, 1}
	f.BaseX = math.MaxInt
	require.NotPanics(t, func() {
		require.ErrorIs(t, slicing.FancySliceGet(seq(4), make([]float64, 4), f), slicing.ErrOutOfBounds)
	})
}

// TestFancyRegularConsistency rejects REGULAR dims whose OffsetX or StrideX
// disagree with the triplet.
func TestFancyRegularConsistency(t *testing.T) {
	shapeX := []int{3, 4}
	f, err := slicing.PlanFancy(shapeX, regular(slicing.S(0, 3, 2), slicing.S(1, 4)), nil)
	require.NoError(t, err)
	y := make([]float64, 6)
	require.NoError(t, slicing.FancySliceGet(seq(12), y, f))

	f.OffsetX[1] = 0
	require.ErrorIs(t, slicing.FancySliceGet(seq(12), y, f), slicing.ErrInconsistent)

	f.OffsetX[1] = 1
	f.StrideX[0] = 4
	err = slicing.FancySliceGet(seq(12), y, f)
	require.ErrorIs(t, err, slicing.ErrInconsistent)
	require.Contains(t, err.Error(), "StrideX")
}
