// SPDX-License-Identifier: MIT

package slicing

import (
	"gorgonia.org/tensor"
)

// Triplet can be handed to gorgonia's (*tensor.Dense).Slice directly.
var _ tensor.Slice = Triplet{}

// FromTensorSlices converts gorgonia slice specs over an array of shape
// shapeX into Triplets. A nil entry, or a missing trailing entry, selects the
// whole dimension, as tensor.Dense.Slice does.
func FromTensorSlices(shapeX []int, ss ...tensor.Slice) ([]Triplet, error) {
	if len(ss) > len(shapeX) {
		return nil, rankErrorf("slices", len(ss), len(shapeX))
	}

	out := make([]Triplet, len(shapeX))
	for d, extent := range shapeX {
		if d >= len(ss) || ss[d] == nil {
			out[d] = S(0, extent)
			continue
		}
		out[d] = S(ss[d].Start(), ss[d].End(), ss[d].Step())
	}

	return out, nil
}
