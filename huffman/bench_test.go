package huffman_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/dsa/huffman"
)

var benchText = strings.Repeat("it was the best of times, it was the worst of times. ", 200)

func BenchmarkBuild(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = huffman.Build(benchText)
	}
}

func BenchmarkEncodeDecode(b *testing.B) {
	tr, _ := huffman.Build(benchText)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		enc, _ := tr.Encode(benchText)
		_, _ = tr.Decode(enc)
	}
}
