// SPDX-License-Identifier: MIT

package strmatch

// LPS returns, for each prefix pattern[:i+1], the length of its longest
// proper prefix that is also a suffix.
//
// Complexity: O(m) for m runes. Memory: O(m).
func LPS(pattern string) []int {
	return lps([]rune(pattern))
}

func lps(p []rune) []int {
	table := make([]int, len(p))
	k := 0
	for i := 1; i < len(p); i++ {
		for k > 0 && p[i] != p[k] {
			k = table[k-1]
		}
		if p[i] == p[k] {
			k++
		}
		table[i] = k
	}

	return table
}

// KMP returns the rune index of every occurrence of pattern in text.
//
// Complexity:
//
//	Time:   O(n + m); the text is never re-scanned.
//	Memory: O(n + m) for the rune slices and the LPS table.
func KMP(text, pattern string) []int {
	p := []rune(pattern)
	if len(p) == 0 {
		return nil
	}
	table := lps(p)

	var out []int
	k, i := 0, 0 // k runes of p matched so far; i is the rune index in text
	for _, r := range text {
		for k > 0 && r != p[k] {
			k = table[k-1]
		}
		if r == p[k] {
			k++
		}
		if k == len(p) {
			out = append(out, i-len(p)+1)
			k = table[k-1]
		}
		i++
	}

	return out
}

// BruteForce returns the same matches as KMP by trying every alignment.
//
// Complexity: O(n·m).
func BruteForce(text, pattern string) []int {
	t, p := []rune(text), []rune(pattern)
	if len(p) == 0 {
		return nil
	}
	var out []int
	for i := 0; i+len(p) <= len(t); i++ {
		j := 0
		for j < len(p) && t[i+j] == p[j] {
			j++
		}
		if j == len(p) {
			out = append(out, i)
		}
	}

	return out
}
