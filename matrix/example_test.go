package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/ndslice/matrix"
	"github.com/katalvlaran/ndslice/slicing"
)

// ExampleDense_Slice takes every other row with the columns reversed.
func ExampleDense_Slice() {
	m, _ := matrix.NewDenseFrom(3, 3, []float64{
		1, 2, 3,
		4, 5, 6,
		7, 8, 9,
	})
	s, _ := m.Slice(slicing.S(0, 3, 2), slicing.S(2, -1, -1))
	fmt.Print(s)
	// Output:
	// [3, 2, 1]
	// [9, 8, 7]
}

// ExampleDense_Induced gathers rows and columns in an arbitrary order.
func ExampleDense_Induced() {
	m, _ := matrix.NewDenseFrom(2, 3, []float64{
		1, 2, 3,
		4, 5, 6,
	})
	sub, _ := m.Induced([]int{1, 0}, []int{2, 0})
	fmt.Print(sub)
	// Output:
	// [6, 4]
	// [3, 1]
}
