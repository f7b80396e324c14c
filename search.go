// search.go contains the scanning half of the algorithm: a single
// left-to-right pass over the text driven by the pattern's
// factorization. The scanner searches for v = pattern[Split:] using
// the HRP scope for periodic shifts, and verifies the short prefix
// u = pattern[:Split] naively behind each occurrence of v.

package gsearch

import (
	"github.com/coregx/gsearch/factor"
)

// Searcher enumerates the occurrences of one pattern in one text
// lazily, in strictly increasing order of start position. The zero
// Searcher is not valid; obtain one from Pattern.Iter or Search.
//
// A Searcher holds two integers of mutable state and performs no
// allocation. It is single-pass and must not be shared between
// goroutines; the Pattern or decomposition behind it may be.
type Searcher[E any] struct {
	text    []E
	pattern []E
	dec     factor.Decomposition
	eq      func(E, E) bool

	// pos is the candidate alignment of the full pattern in the text;
	// j is the number of elements of v already verified at pos+Split.
	// pos never decreases, and a conservative shift discards at most
	// K times the distance it advances, which is what amortizes the
	// scan to at most 4n comparisons.
	pos int
	j   int

	// next position to report for the empty pattern
	empty int

	done bool
}

// Next returns the start position of the next occurrence. The second
// result is false when the scan is exhausted; after that every call
// returns (-1, false). Abandoning a Searcher early needs no cleanup.
func (s *Searcher[E]) Next() (int, bool) {
	if s.done {
		return -1, false
	}

	m := len(s.pattern)
	n := len(s.text)

	// An empty pattern matches at every position 0..n inclusive.
	if m == 0 {
		if s.empty > n {
			s.done = true
			return -1, false
		}
		i := s.empty
		s.empty++
		return i, true
	}
	if m > n {
		s.done = true
		return -1, false
	}

	v := s.pattern[s.dec.Split:]
	sub := s.text[s.dec.Split:]

	// Scan sub for v. An occurrence of v at sub[pos] means v occurs at
	// text[pos+Split], so a full match starts at text[pos] iff u
	// occurs right there.
	for s.pos+len(v) <= len(sub) {
		for s.j < len(v) && s.eq(v[s.j], sub[s.pos+s.j]) {
			s.j++
		}
		if s.j == len(v) {
			start := s.pos
			s.shift()
			if s.hasPrefix(s.text[start:], s.pattern[:s.dec.Split]) {
				return start, true
			}
			continue
		}
		s.shift()
	}
	s.done = true
	return -1, false
}

// shift advances the candidate alignment after a mismatch at offset j,
// or past a full match of v (j == len(v)).
//
// Inside the HRP scope the matched prefix of v is known periodic, so
// the alignment moves by one period and keeps the rest of the match.
// Outside it the simplicity of v guarantees no occurrence starts
// within j/K of the current alignment, so the scan shifts past those
// positions and restarts the match from scratch.
func (s *Searcher[E]) shift() {
	if s.dec.InScope(s.j) {
		s.pos += s.dec.Period
		s.j -= s.dec.Period
	} else {
		s.pos += s.j/factor.K + 1
		s.j = 0
	}
}

// hasPrefix reports whether text begins with prefix under the
// searcher's equality. len(text) >= len(prefix) is the caller's
// responsibility.
func (s *Searcher[E]) hasPrefix(text, prefix []E) bool {
	for i := range prefix {
		if !s.eq(text[i], prefix[i]) {
			return false
		}
	}
	return true
}
