package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/diim/matrix"
)

// ExampleSolve solves a small linear system with one pivoted
// factorization.
func ExampleSolve() {
	a, _ := matrix.NewDenseFromRows([][]float64{
		{1, -0.3},
		{-0.2, 1},
	})
	x, _ := matrix.Solve(a, []float64{0.5, 0.1})
	fmt.Printf("x = [%.4f %.4f]\n", x[0], x[1])
	// Output:
	// x = [0.5319 0.1064]
}

// ExampleInverse inverts a 2x2 matrix.
func ExampleInverse() {
	a, _ := matrix.NewDenseFromRows([][]float64{
		{4, 7},
		{2, 6},
	})
	inv, _ := matrix.Inverse(a)
	v00, _ := inv.At(0, 0)
	v11, _ := inv.At(1, 1)
	fmt.Printf("inv[0,0]=%.1f inv[1,1]=%.1f\n", v00, v11)
	// Output:
	// inv[0,0]=0.6 inv[1,1]=0.4
}
