package strmatch_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/dsa/strmatch"
)

var (
	benchText    = strings.Repeat("a", 10000) + "b"
	benchPattern = strings.Repeat("a", 50) + "b"
)

func BenchmarkKMP(b *testing.B) {
	for i := 0; i < b.N; i++ {
		strmatch.KMP(benchText, benchPattern)
	}
}

func BenchmarkBruteForce(b *testing.B) {
	for i := 0; i < b.N; i++ {
		strmatch.BruteForce(benchText, benchPattern)
	}
}
