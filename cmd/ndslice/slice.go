// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/ndslice/slicing"
	"github.com/spf13/cobra"
)

var errSyntax = errors.New("invalid dimension spec")

func newSliceCmd() *cobra.Command {
	var shape []int
	cmd := &cobra.Command{
		Use:   "slice DIM...",
		Short: "Slice an iota-filled array and print the result",
		Long: `Slice fills an array of --shape with 0, 1, 2, ... and prints the region
selected by one DIM per dimension:

  start:stop[:step]   regular range, stop exclusive, empty parts default
  i                   the single coordinate i
  i,j,k               the listed coordinates, in order (a trailing comma
                      selects a single listed coordinate)`,
		Example: "  ndslice slice --shape 3,5,2 0:2 3,1,4 :",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSlice(cmd.OutOrStdout(), shape, args)
		},
	}
	cmd.Flags().IntSliceVar(&shape, "shape", []int{3, 4}, "source array shape")

	return cmd
}

func runSlice(out io.Writer, shape []int, args []string) error {
	if len(args) != len(shape) {
		return fmt.Errorf("got %d dimension specs for rank %d", len(args), len(shape))
	}

	spec := make([]slicing.DimSpec, len(shape))
	var index []int
	for d, tok := range args {
		ds, coords, err := parseDim(tok, shape[d], len(index))
		if err != nil {
			return fmt.Errorf("dimension %d: %w", d, err)
		}
		spec[d] = ds
		index = append(index, coords...)
	}

	x := make([]float64, slicing.Numel(shape))
	for i := range x {
		x[i] = float64(i)
	}
	y, yshape, err := slicing.FancyExtract(x, shape, spec, index)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "shape %v\n", yshape)
	printRows(out, y, yshape)

	return nil
}

// parseDim turns one DIM token into a DimSpec. Listed coordinates are
// returned for appending to the shared index table at position base.
func parseDim(tok string, extent, base int) (slicing.DimSpec, []int, error) {
	switch {
	case strings.Contains(tok, ","):
		var coords []int
		for _, f := range strings.Split(strings.TrimSuffix(tok, ","), ",") {
			c, err := strconv.Atoi(strings.TrimSpace(f))
			if err != nil {
				return slicing.DimSpec{}, nil, fmt.Errorf("%q: %w", tok, errSyntax)
			}
			coords = append(coords, c)
		}
		return slicing.Indexed(base, base+len(coords)-1), coords, nil

	case strings.Contains(tok, ":"):
		t, err := parseTriplet(tok, extent)
		if err != nil {
			return slicing.DimSpec{}, nil, err
		}
		return slicing.Regular(t), nil, nil

	default:
		c, err := strconv.Atoi(tok)
		if err != nil {
			return slicing.DimSpec{}, nil, fmt.Errorf("%q: %w", tok, errSyntax)
		}
		return slicing.Regular(slicing.S(c, c+1)), nil, nil
	}
}

// parseTriplet reads start:stop[:step]. Empty parts default to the whole
// dimension in the step's direction.
func parseTriplet(tok string, extent int) (slicing.Triplet, error) {
	parts := strings.Split(tok, ":")
	if len(parts) > 3 {
		return slicing.Triplet{}, fmt.Errorf("%q: %w", tok, errSyntax)
	}

	vals := make([]*int, 3)
	for k, p := range parts {
		if p = strings.TrimSpace(p); p == "" {
			continue
		}
		v, err := strconv.Atoi(p)
		if err != nil {
			return slicing.Triplet{}, fmt.Errorf("%q: %w", tok, errSyntax)
		}
		vals[k] = &v
	}

	step := 1
	if vals[2] != nil {
		step = *vals[2]
	}
	start, stop := 0, extent
	if step < 0 {
		start, stop = extent-1, -1
	}
	if vals[0] != nil {
		start = *vals[0]
	}
	if vals[1] != nil {
		stop = *vals[1]
	}

	return slicing.S(start, stop, step), nil
}

// printRows prints y with its last dimension across the columns, one row per
// combination of the leading coordinates.
func printRows(out io.Writer, y []float64, shape []int) {
	width := 1
	if len(shape) > 0 {
		width = shape[len(shape)-1]
	}
	if width == 0 || len(y) == 0 {
		return
	}

	table := newTable(out)
	lead := shape
	if len(lead) > 0 {
		lead = lead[:len(lead)-1]
	}
	for r := 0; r*width < len(y); r++ {
		row := []string{fmt.Sprint(unravel(r, lead))}
		for _, v := range y[r*width : (r+1)*width] {
			row = append(row, strconv.FormatFloat(v, 'g', -1, 64))
		}
		table.Append(row)
	}
	table.Render()
}

func unravel(k int, shape []int) []int {
	c := make([]int, len(shape))
	for d := len(shape) - 1; d >= 0; d-- {
		c[d] = k % shape[d]
		k /= shape[d]
	}

	return c
}
