// Package gsearch implements exact substring search in O(n) time and
// O(1) extra space for alphabets that support only equality comparison
// (the Galil-Seiferas algorithm).
//
// Unlike KMP, Boyer-Moore or Two-Way matchers, gsearch needs no O(m)
// precomputed table and no ordering or hashing on the alphabet: the
// entire preprocessing result is a three-integer factorization of the
// pattern. The trade-off is a worst case of 4n element comparisons
// instead of 2n. Use this matcher when the element type has no usable
// total order, when overlapping occurrences are needed, or when the
// per-pattern memory of table-based matchers is unacceptable; for
// ordered alphabets such as plain bytes, Two-Way style matchers
// (bytes.Index) are usually faster.
//
// Basic usage:
//
//	// One-shot search
//	i := gsearch.Find([]byte("substrinstring"), []byte("string"))
//	// i == 8
//
//	// Compile once, search many texts
//	p := gsearch.New([]rune("needle"))
//	for _, text := range texts {
//	    for _, i := range p.FindAll(text) {
//	        ...
//	    }
//	}
//
// The element type is any Go comparable type: bytes, runes, ints,
// token structs. NewFunc accepts an explicit equality function for
// everything else.
//
// Occurrence conventions, fixed and tested:
//   - All occurrences are reported, including overlapping ones, in
//     strictly increasing order of start position.
//   - An empty pattern matches at every position 0 through len(text)
//     inclusive; Find returns 0.
//   - A pattern longer than the text never matches. There are no error
//     conditions: every input produces a well-defined result.
package gsearch

import (
	"github.com/coregx/gsearch/factor"
)

// Pattern is a compiled search pattern: the pattern elements paired
// with their factorization. Compiling is O(len(pattern)) and
// allocation-free beyond the Pattern itself; a Pattern is immutable and
// safe to share across goroutines searching different texts.
//
// A Pattern keeps a reference to the slice it was built from. The
// caller must not modify that slice while the Pattern is in use.
type Pattern[E any] struct {
	pattern []E
	dec     factor.Decomposition
	eq      func(E, E) bool
}

// New compiles pattern for repeated searching.
//
// Example:
//
//	p := gsearch.New([]byte("aab"))
//	p.FindAll([]byte("aabaab")) // [0 3]
func New[E comparable](pattern []E) *Pattern[E] {
	return NewFunc(pattern, equal[E])
}

// NewFunc compiles pattern under a caller-supplied equality relation.
// eq must be a true equivalence relation; the same eq is used for all
// searches with the returned Pattern.
//
// Example (case-insensitive bytes):
//
//	fold := func(a, b byte) bool { return a|0x20 == b|0x20 }
//	p := gsearch.NewFunc([]byte("abc"), fold)
//	p.Find([]byte("xxABCyy")) // 2
func NewFunc[E any](pattern []E, eq func(E, E) bool) *Pattern[E] {
	return &Pattern[E]{
		pattern: pattern,
		dec:     factor.DecomposeFunc(pattern, eq),
		eq:      eq,
	}
}

// Len returns the pattern length in elements.
func (p *Pattern[E]) Len() int {
	return len(p.pattern)
}

// Decomposition returns the pattern's factorization.
func (p *Pattern[E]) Decomposition() factor.Decomposition {
	return p.dec
}

// Find returns the index of the first occurrence of the pattern in
// text, or -1 if the pattern does not occur.
func (p *Pattern[E]) Find(text []E) int {
	s := Searcher[E]{text: text, pattern: p.pattern, dec: p.dec, eq: p.eq}
	if i, ok := s.Next(); ok {
		return i
	}
	return -1
}

// Match reports whether the pattern occurs in text.
func (p *Pattern[E]) Match(text []E) bool {
	return p.Find(text) >= 0
}

// FindAll returns the start positions of every occurrence of the
// pattern in text, overlapping occurrences included, in strictly
// increasing order. It returns nil if there are none.
//
// Note that this differs from regexp-style FindAll semantics, which
// skip past each match: FindAll([]byte("aaaa"), []byte("aa")) here is
// [0 1 2].
func (p *Pattern[E]) FindAll(text []E) []int {
	var out []int
	s := Searcher[E]{text: text, pattern: p.pattern, dec: p.dec, eq: p.eq}
	for {
		i, ok := s.Next()
		if !ok {
			return out
		}
		out = append(out, i)
	}
}

// Iter returns a lazy iterator over the occurrences of the pattern in
// text. The iterator is single-pass; obtain a fresh one to rescan.
func (p *Pattern[E]) Iter(text []E) *Searcher[E] {
	return &Searcher[E]{text: text, pattern: p.pattern, dec: p.dec, eq: p.eq}
}

// Find returns the index of the first occurrence of pattern in text,
// or -1 if pattern does not occur. The factorization is computed on
// the fly; compile with New to amortize it over many searches.
func Find[E comparable](text, pattern []E) int {
	s := Searcher[E]{
		text:    text,
		pattern: pattern,
		dec:     factor.Decompose(pattern),
		eq:      equal[E],
	}
	if i, ok := s.Next(); ok {
		return i
	}
	return -1
}

// FindAll returns the start positions of every occurrence of pattern
// in text, overlapping occurrences included, in strictly increasing
// order, or nil if there are none.
func FindAll[E comparable](text, pattern []E) []int {
	var out []int
	s := Searcher[E]{
		text:    text,
		pattern: pattern,
		dec:     factor.Decompose(pattern),
		eq:      equal[E],
	}
	for {
		i, ok := s.Next()
		if !ok {
			return out
		}
		out = append(out, i)
	}
}

// Contains reports whether pattern occurs in text.
func Contains[E comparable](text, pattern []E) bool {
	return Find(text, pattern) >= 0
}

// Search returns a lazy iterator over the occurrences of pattern in
// text, driven by a previously computed decomposition.
//
// This is the low-level entry point for callers that manage
// decompositions themselves. dec must have been computed by
// factor.Decompose from exactly this pattern; pairing it with any
// other pattern violates the contract and yields unspecified positions
// (it is not a checked error). New and Find keep the pairing correct
// automatically and are preferred.
func Search[E comparable](text, pattern []E, dec factor.Decomposition) *Searcher[E] {
	return &Searcher[E]{text: text, pattern: pattern, dec: dec, eq: equal[E]}
}

func equal[E comparable](a, b E) bool { return a == b }
