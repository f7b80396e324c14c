// Fuzz tests comparing gsearch behavior against the standard library.
//
// bytes.Index is the oracle for first-occurrence search and a naive
// quadratic scan is the oracle for all-occurrence search. Any
// divergence is a bug in the scanner or the decomposer.
//
// Run with:
//
//	go test -fuzz=FuzzFindStdlib -fuzztime=30s
//	go test -fuzz=FuzzFindAllNaive -fuzztime=30s
package gsearch

import (
	"bytes"
	"strings"
	"testing"
)

// seedPairs feeds both fuzz targets: documented scenarios, periodic
// stress inputs and a few plain-prose pairs.
var seedPairs = [][2]string{
	{"aabaab", "aab"},
	{"aaaaaaa", "aaaa"},
	{"xxabcabcabdyy", "abcabcabd"},
	{"", ""},
	{"", "x"},
	{"cccccc", "ab"},
	{"ababa", "aba"},
	{"aa\x00\x00a", "aaaa"},
	{"anananananananananananabcabc", "anananananananananan"},
	{"hello world", "world"},
	{strings.Repeat("aaab", 25) + "bbb", "aaabaaabaaabaabbbb"},
	{strings.Repeat("ab", 30), "abab"},
	{strings.Repeat("a", 60) + "b", strings.Repeat("a", 20) + "b"},
}

func FuzzFindStdlib(f *testing.F) {
	for _, p := range seedPairs {
		f.Add([]byte(p[0]), []byte(p[1]))
	}

	f.Fuzz(func(t *testing.T, text, pattern []byte) {
		got := Find(text, pattern)
		want := bytes.Index(text, pattern)
		if got != want {
			t.Errorf("Find(%q, %q) = %d, bytes.Index = %d", text, pattern, got, want)
		}

		if (got >= 0) != Contains(text, pattern) {
			t.Errorf("Contains(%q, %q) disagrees with Find", text, pattern)
		}
		if got != Index(text, pattern) {
			t.Errorf("Index(%q, %q) disagrees with Find", text, pattern)
		}
	})
}

func FuzzFindAllNaive(f *testing.F) {
	for _, p := range seedPairs {
		f.Add([]byte(p[0]), []byte(p[1]))
	}

	f.Fuzz(func(t *testing.T, text, pattern []byte) {
		got := FindAll(text, pattern)
		want := naiveAll(string(text), string(pattern))
		if !equalPositions(got, want) {
			t.Errorf("FindAll(%q, %q) = %v, want %v", text, pattern, got, want)
		}
	})
}
