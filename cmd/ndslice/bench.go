// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"time"

	"github.com/katalvlaran/ndslice/internal/envconfig"
	"github.com/katalvlaran/ndslice/slicing"
	"github.com/spf13/cobra"
	"golang.org/x/exp/rand"
	"golang.org/x/sync/errgroup"
)

type benchOptions struct {
	shape    []int
	step     int
	repeat   int
	parallel int
	seed     uint64
}

type benchResult struct {
	name     string
	elements int
	total    time.Duration
	repeats  int
}

// perOp is the mean wall time of one copy.
func (r benchResult) perOp() time.Duration {
	if r.repeats == 0 {
		return 0
	}
	return r.total / time.Duration(r.repeats)
}

// throughput reports copied elements per second.
func (r benchResult) throughput() float64 {
	if r.total <= 0 {
		return 0
	}
	return float64(r.elements) * float64(r.repeats) / r.total.Seconds()
}

// benchCase prepares a copy and returns a function performing it into a
// caller-owned destination of the returned length.
type benchCase struct {
	name  string
	setup func(x []float64, o benchOptions) (n int, run func(y []float64) error, err error)
}

var benchCases = []benchCase{
	{"basic", setupBasic(true)},
	{"basic-no-bulk", setupBasic(false)},
	{"fancy", setupFancy},
}

func newBenchCmd() *cobra.Command {
	var o benchOptions
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Time basic and fancy gets on a random array",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			results, err := runBench(cmd.Context(), o)
			if err != nil {
				return err
			}
			printResults(cmd.OutOrStdout(), results)
			return nil
		},
	}
	cmd.Flags().IntSliceVar(&o.shape, "shape", []int{64, 64, 64}, "source array shape")
	cmd.Flags().IntVar(&o.step, "step", 2, "step of every regular dimension except the innermost")
	cmd.Flags().IntVar(&o.repeat, "repeat", 20, "copies per case")
	cmd.Flags().IntVar(&o.parallel, "parallel", envconfig.Parallel(), "concurrent copies (NDSLICE_PARALLEL)")
	cmd.Flags().Uint64Var(&o.seed, "seed", 1337, "fill seed")

	return cmd
}

func runBench(ctx context.Context, o benchOptions) ([]benchResult, error) {
	if len(o.shape) == 0 || o.step <= 0 || o.repeat <= 0 || o.parallel <= 0 {
		return nil, errors.New("bench: shape must be non-empty, step, repeat and parallel positive")
	}
	n := slicing.Numel(o.shape)
	if n <= 0 {
		return nil, fmt.Errorf("bench: shape %v holds no elements", o.shape)
	}

	r := rand.New(rand.NewSource(o.seed))
	x := make([]float64, n)
	for i := range x {
		x[i] = r.Float64()
	}
	slog.Debug("bench source ready", "shape", o.shape, "elements", n, "parallel", o.parallel)

	results := make([]benchResult, 0, len(benchCases))
	for _, c := range benchCases {
		res, err := runCase(ctx, c, x, o)
		if err != nil {
			return nil, fmt.Errorf("bench %s: %w", c.name, err)
		}
		slog.Debug("bench case done", "case", c.name, "per_op", res.perOp())
		results = append(results, res)
	}

	return results, nil
}

func runCase(ctx context.Context, c benchCase, x []float64, o benchOptions) (benchResult, error) {
	elems, run, err := c.setup(x, o)
	if err != nil {
		return benchResult{}, err
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(o.parallel)
	start := time.Now()
	for i := 0; i < o.repeat; i++ {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return run(make([]float64, elems))
		})
	}
	if err := g.Wait(); err != nil {
		return benchResult{}, err
	}

	return benchResult{name: c.name, elements: elems, total: time.Since(start), repeats: o.repeat}, nil
}

// outerSpec selects every step-th coordinate of the outer dimensions and the
// whole innermost one, so the innermost run stays contiguous.
func outerSpec(shape []int, step int) []slicing.Triplet {
	spec := make([]slicing.Triplet, len(shape))
	for d, e := range shape {
		spec[d] = slicing.S(0, e, step)
	}
	spec[len(spec)-1] = slicing.S(0, shape[len(shape)-1])

	return spec
}

func setupBasic(bulk bool) func([]float64, benchOptions) (int, func([]float64) error, error) {
	return func(x []float64, o benchOptions) (int, func([]float64) error, error) {
		b, err := slicing.PlanBasic(o.shape, outerSpec(o.shape, o.step))
		if err != nil {
			return 0, nil, err
		}
		return slicing.Numel(b.Shape), func(y []float64) error {
			return slicing.SliceGet(x, y, b, slicing.WithBulkCopy(bulk))
		}, nil
	}
}

// setupFancy replaces dimension 0 by an index list visiting every step-th
// coordinate in reverse.
func setupFancy(x []float64, o benchOptions) (int, func([]float64) error, error) {
	var index []int
	for c := o.shape[0] - 1; c >= 0; c -= o.step {
		index = append(index, c)
	}
	spec := make([]slicing.DimSpec, len(o.shape))
	for d, t := range outerSpec(o.shape, o.step) {
		spec[d] = slicing.Regular(t)
	}
	spec[0] = slicing.Indexed(0, len(index)-1)

	f, err := slicing.PlanFancy(o.shape, spec, index)
	if err != nil {
		return 0, nil, err
	}

	return slicing.Numel(f.Shape), func(y []float64) error {
		return slicing.FancySliceGet(x, y, f)
	}, nil
}

func printResults(out io.Writer, results []benchResult) {
	table := newTable(out)
	table.SetHeader([]string{"CASE", "ELEMENTS", "REPEATS", "PER OP", "ELEMENTS/S"})
	for _, r := range results {
		table.Append([]string{
			r.name,
			strconv.Itoa(r.elements),
			strconv.Itoa(r.repeats),
			r.perOp().String(),
			strconv.FormatFloat(r.throughput(), 'e', 3, 64),
		})
	}
	table.Render()
}
