package huffman_test

import (
	"fmt"

	"github.com/katalvlaran/dsa/huffman"
)

func ExampleBuild() {
	tr, _ := huffman.Build("aaabbc")
	codes := tr.Codes()
	fmt.Println(codes['a'], codes['b'], codes['c'])

	enc, _ := tr.Encode("abc")
	dec, _ := tr.Decode(enc)
	fmt.Println(enc, dec)
	// Output:
	// 0 11 10
	// 01110 abc
}
