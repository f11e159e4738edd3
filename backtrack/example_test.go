package backtrack_test

import (
	"fmt"

	"github.com/katalvlaran/dsa/backtrack"
)

func ExampleNQueens() {
	for _, row := range backtrack.NQueens(4)[0] {
		fmt.Println(row)
	}
	// Output:
	// .Q..
	// ...Q
	// Q...
	// ..Q.
}

func ExampleCombinations() {
	fmt.Println(backtrack.Combinations(4, 2))
	// Output: [[1 2] [1 3] [1 4] [2 3] [2 4] [3 4]]
}
