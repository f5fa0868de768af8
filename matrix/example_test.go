package matrix_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/vecmat/matrix"
)

// ExampleMatrix_Mul multiplies the 3×3 reference matrix by itself.
func ExampleMatrix_Mul() {
	a := matrix.New([][]int{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}})

	c, err := a.Mul(a)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Print(c)

	_, err = matrix.New([][]int{{1, 2}}).Mul(a)
	fmt.Println(errors.Is(err, matrix.ErrDimensionMismatch))
	// Output:
	// [30, 36, 42]
	// [66, 81, 96]
	// [102, 126, 150]
	// true
}

// ExampleMatrix_Col extracts a row and a column.
func ExampleMatrix_Col() {
	m := matrix.New([][]int{{1, 2}, {3, 4}})

	r, c := m.Shape()
	row, _ := m.Row(0)
	col, _ := m.Col(1)
	fmt.Println(r, c, row, col)
	// Output:
	// 2 2 [1, 2] [2, 4]
}
