package sorting_test

import (
	"fmt"

	"github.com/katalvlaran/dsa/sorting"
)

func ExampleQuickSort() {
	in := []int{3, 6, 1, 8, 1, 9}
	out := sorting.QuickSort(in)
	fmt.Println(out, in)
	// Output: [1 1 3 6 8 9] [3 6 1 8 1 9]
}
