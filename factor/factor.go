// Package factor implements the pattern-preprocessing half of the
// Galil-Seiferas search algorithm: perfect factorization of a pattern
// into a short prefix u and a "simple" remainder v.
//
// The factorization replaces the O(m) shift tables of KMP- or
// Boyer-Moore-style matchers with a constant-size summary of the
// pattern's self-repetition structure, computed in O(m) time and O(1)
// space with equality comparisons only.
//
// Key concepts (after Crochemore and Rytter, "Squares, Cubes, and
// Time-Space Efficient String Searching", Algorithmica 1995):
//
//   - A highly repeating prefix (HRP) of a word is a prefix consisting
//     of at least K repetitions of some period. With K = 3 this is a
//     "cube prefix".
//   - The scope of an HRP with period p and prefix length z is the
//     offset interval [2p, z]. A partial match whose length falls in
//     the scope may be shifted by p without missing an occurrence.
//   - A word is simple if it has at most one HRP. For K >= 3 every
//     word factors as u·v where u is short and v is simple; this is
//     the perfect factorization.
//
// The scanner in the parent package searches for v using the single
// HRP's scope for periodic shifts and verifies u naively behind each
// candidate, which is what bounds the whole search to 4n comparisons.
package factor

// K is the repetition threshold for a highly repeating prefix.
// K = 3 ("cube" prefixes) is the smallest value for which the perfect
// factorization theorem holds; larger values weaken the shift rule.
const K = 3

// HRP describes a highly repeating prefix: the prefix of length Len is
// Period-periodic and Len >= K*Period.
//
// Example (K = 3):
//
//	pattern: a a a a b b b        HRP{Period: 1, Len: 4}
//	pattern: a b a b a b a b c    HRP{Period: 2, Len: 8}
type HRP struct {
	// Period is the repeating unit length.
	Period int

	// Len is the length of the repeating prefix.
	Len int
}

// Decomposition is the constant-size summary of a pattern's repetition
// structure: everything the scanner needs to search in O(1) space.
//
// It records the perfect factorization pattern = u·v together with the
// scope of v's single HRP, if v has one. The fields are derived
// integers only; a Decomposition does not retain the pattern and may be
// shared read-only across any number of concurrent searches.
type Decomposition struct {
	// Split is the length of the short prefix u. Equivalently it is
	// the critical offset of the factorization: candidate alignments
	// are driven by v = pattern[Split:], and u is re-verified naively
	// behind each occurrence of v.
	Split int

	// Period is the period of v's HRP when HasHRP is true. Otherwise
	// it is len(v), the degenerate "no repetition" period (0 for an
	// empty pattern).
	Period int

	// Reach is the length of the v-prefix known to be Period-periodic
	// (the upper end of the HRP's scope). Zero when HasHRP is false.
	Reach int

	// HasHRP reports whether v has a highly repeating prefix at all.
	// When false the scanner never uses the periodic shift.
	HasHRP bool
}

// InScope reports whether a partial match of length j of v falls in
// the scope of v's HRP, meaning the text alignment may advance by
// Period while keeping the first j-Period matched elements.
func (d Decomposition) InScope(j int) bool {
	return d.HasHRP && j >= 2*d.Period && j <= d.Reach
}

// Decompose computes the perfect factorization of pattern.
//
// It runs in O(len(pattern)) time, performs no allocation, and needs
// only equality comparisons on the elements. The result is immutable
// and valid for as long as the pattern it was computed from is not
// modified.
//
// Degenerate inputs are well defined: an empty pattern yields the zero
// Decomposition, and a single-element pattern yields {Split: 0,
// Period: 1}.
//
// Example:
//
//	d := factor.Decompose([]byte("aaaa"))
//	// d.Split == 0, d.Period == 1, d.Reach == 4, d.HasHRP == true
func Decompose[E comparable](pattern []E) Decomposition {
	return DecomposeFunc(pattern, equal[E])
}

// DecomposeFunc is like Decompose but uses eq as the element equality
// relation. eq must be a true equivalence relation (reflexive,
// symmetric, transitive); the factorization theorems do not hold for
// arbitrary predicates.
//
// This is the entry point for element types without built-in equality
// and for equality under a projection, e.g. case-insensitive bytes.
// A searcher over the same text must use the same eq.
func DecomposeFunc[E any](pattern []E, eq func(E, E) bool) Decomposition {
	split := 0
	h1, ok1 := findHRP(K, 1, pattern, eq)
	var h2 HRP
	ok2 := false
	if ok1 {
		h2, ok2 = findSecondHRP(K, h1, pattern, eq)
	}

	// While the remainder has a second HRP it is not yet simple:
	// advance the split past the next special position and recompute.
	// The special position jumps are what keep the total work linear;
	// each one permanently discards a block of candidate splits.
	for ok1 && ok2 {
		split += specialPosition(h1, h2)
		h1, ok1 = findHRP(K, h1.Period, pattern[split:], eq)
		if ok1 {
			h2, ok2 = findSecondHRP(K, h1, pattern[split:], eq)
		} else {
			ok2 = false
		}
	}

	d := Decomposition{Split: split}
	if ok1 {
		d.HasHRP = true
		d.Period = h1.Period
		d.Reach = h1.Len
	} else {
		// No repetition worth exploiting: the sentinel period is the
		// full remainder length.
		d.Period = len(pattern) - split
	}
	return d
}

// FindHRP returns the first highly repeating prefix of pattern with
// period >= minPeriod and at least k repetitions, and whether one
// exists. Exposed for inspection and testing; Decompose is the normal
// entry point.
func FindHRP[E comparable](k, minPeriod int, pattern []E) (HRP, bool) {
	return findHRP(k, minPeriod, pattern, equal[E])
}

// findHRP scans candidate periods in increasing order. On a mismatch
// at offset j the candidates period+1 .. period+j/k are ruled out, so
// the next candidate is period + j/k + 1; this amortizes the whole
// scan to O(len(pattern)) comparisons.
func findHRP[E any](k, period int, pattern []E, eq func(E, E) bool) (HRP, bool) {
	m := len(pattern)
	j := 0
	for period+j < m {
		for period+j < m && eq(pattern[j], pattern[period+j]) {
			j++
		}
		if period <= (period+j)/k {
			return HRP{Period: period, Len: period + j}, true
		}
		period += j/k + 1
		j = 0
	}
	return HRP{}, false
}

// findSecondHRP looks for a second HRP of pattern given its first one.
// A prefix period must be a basic word (not itself a power of a shorter
// word), so candidate periods that are multiples of h1.Period inside
// h1's periodic prefix are skipped without comparisons: those prefixes
// are powers of the first period word. Skipping them is also what
// keeps preprocessing linear on single-letter runs, where every length
// up to the run is a non-basic period.
func findSecondHRP[E any](k int, h1 HRP, pattern []E, eq func(E, E) bool) (HRP, bool) {
	m := len(pattern)
	period := 2 * h1.Period
	j := 0
	for period+j < m {
		if period <= h1.Len && period%h1.Period == 0 {
			period++
			continue
		}
		for period+j < m && eq(pattern[j], pattern[period+j]) {
			j++
		}
		if period <= (period+j)/k {
			return HRP{Period: period, Len: period + j}, true
		}
		period += j/k + 1
		j = 0
	}
	return HRP{}, false
}

// specialPosition is the split advance dictated by a pair of HRPs:
// the largest multiple of h1's period below h2's period. The remainder
// past this position has the same HRP structure with the short HRP
// stripped of its leading repetitions.
func specialPosition(h1, h2 HRP) int {
	max := h2.Period - 1
	return max - max%h1.Period
}

func equal[E comparable](a, b E) bool { return a == b }
