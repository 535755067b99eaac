// SPDX-License-Identifier: MIT

// Package sparse - conversions to and from dense representations.
//
// Dense sources are scanned column-major and only non-zero coefficients are
// stored; the resulting matrix is compressed.
package sparse

import (
	"fmt"
	"math"

	"github.com/katalvlaran/ndslice/matrix"
	"gonum.org/v1/gonum/mat"
)

// ToGonum materializes h as a gonum dense matrix.
//
// Errors:
//   - ErrInvalidDimensions when h has no rows or no columns (gonum cannot
//     represent an empty matrix).
func (e *Engine) ToGonum(h Handle) (*mat.Dense, error) {
	m, err := e.lookup(ctxToGonum, h)
	if err != nil {
		return nil, err
	}
	if m.rows == 0 || m.cols == 0 {
		return nil, handleErrorf(ctxToGonum, h,
			fmt.Errorf("empty %dx%d: %w", m.rows, m.cols, ErrInvalidDimensions))
	}

	d := mat.NewDense(int(m.rows), int(m.cols), nil)
	m.each(func(i, j int32, v float64) { d.Set(int(i), int(j), v) })

	return d, nil
}

// FromGonum creates a compressed matrix holding the non-zero coefficients of src.
func (e *Engine) FromGonum(src mat.Matrix) (Handle, error) {
	r, c := src.Dims()
	if err := checkFits(r, c); err != nil {
		return Handle{}, err
	}

	var es []entry
	for j := 0; j < c; j++ {
		for i := 0; i < r; i++ {
			if v := src.At(i, j); v != 0 {
				es = append(es, entry{int32(i), int32(j), v})
			}
		}
	}

	return e.register(fromColumnMajor(int32(r), int32(c), es), "sparse matrix imported", "from", "gonum"), nil
}

// ToDense materializes h as a row-major matrix.Dense with the default
// numeric policy.
//
// Errors:
//   - matrix.ErrNaNInf when h stores NaN or Inf.
func (e *Engine) ToDense(h Handle) (*matrix.Dense, error) {
	m, err := e.lookup(ctxToDense, h)
	if err != nil {
		return nil, err
	}

	data := make([]float64, int(m.rows)*int(m.cols))
	m.each(func(i, j int32, v float64) { data[int(i)*int(m.cols)+int(j)] = v })

	d, err := matrix.NewDenseFrom(int(m.rows), int(m.cols), data)
	if err != nil {
		return nil, handleErrorf(ctxToDense, h, err)
	}

	return d, nil
}

// FromMatrix creates a compressed matrix holding the non-zero coefficients of src.
func (e *Engine) FromMatrix(src matrix.Matrix) (Handle, error) {
	r, c := src.Rows(), src.Cols()
	if err := checkFits(r, c); err != nil {
		return Handle{}, err
	}

	var es []entry
	for j := 0; j < c; j++ {
		for i := 0; i < r; i++ {
			v, err := src.At(i, j)
			if err != nil {
				return Handle{}, fmt.Errorf("sparse.FromMatrix: %w", err)
			}
			if v != 0 {
				es = append(es, entry{int32(i), int32(j), v})
			}
		}
	}

	return e.register(fromColumnMajor(int32(r), int32(c), es), "sparse matrix imported", "from", "matrix"), nil
}

func checkFits(r, c int) error {
	if r < 0 || c < 0 || r > math.MaxInt32 || c > math.MaxInt32 {
		return fmt.Errorf("sparse: %dx%d: %w", r, c, ErrInvalidDimensions)
	}

	return nil
}
