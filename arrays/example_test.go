package arrays_test

import (
	"fmt"

	"github.com/katalvlaran/dsa/arrays"
)

func ExampleMinWindow() {
	fmt.Println(arrays.MinWindow("ADOBECODEBANC", "ABC"))
	// Output: BANC
}

func ExampleSparseTable_Min() {
	st := arrays.NewSparseTable([]int{5, 2, 4, 7, 1, 3})
	lo, _ := st.Min(0, 3)
	all, _ := st.Min(0, 5)
	fmt.Println(lo, all)
	// Output: 2 1
}
