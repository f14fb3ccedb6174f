// File: spiral/example_test.go
package spiral_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/routecipher/spiral"
)

////////////////////////////////////////////////////////////////////////////////
// Example: Traversal
////////////////////////////////////////////////////////////////////////////////

// ExampleTraversal walks a 4×3 grid.
// Scenario:
//
//   - Start at the top-right corner (3,0) heading Down.
//   - Turn clockwise at each corner, shrinking inward.
//   - Expect all 12 cells, ending at (1,1).
func ExampleTraversal() {
	tr := spiral.New(4, 3)
	var cells []string
	for p := range tr.All() {
		cells = append(cells, p.String())
	}
	fmt.Println(strings.Join(cells, " "))
	fmt.Println(tr.Phase())

	// Output:
	// (3,0) (3,1) (3,2) (2,2) (1,2) (0,2) (0,1) (0,0) (1,0) (2,0) (2,1) (1,1)
	// Finished
}

// ExampleOrder prints the visiting index of every cell of a 5×4 grid.
func ExampleOrder() {
	const w, h = 5, 4
	idx := make([][]int, h)
	for y := range idx {
		idx[y] = make([]int, w)
	}
	order, _ := spiral.Order(w, h)
	for i, p := range order {
		idx[p.Y][p.X] = i
	}
	for _, row := range idx {
		for _, v := range row {
			fmt.Printf("%3d", v)
		}
		fmt.Println()
	}

	// Output:
	//  10 11 12 13  0
	//   9 18 19 14  1
	//   8 17 16 15  2
	//   7  6  5  4  3
}
