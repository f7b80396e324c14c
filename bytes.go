// bytes.go contains the byte and string convenience surface. These are
// thin wrappers over the generic matcher; the only specialization is
// dispatching single-byte needles to the SWAR primitive.

package gsearch

import (
	"github.com/coregx/gsearch/simd"
)

// Index returns the index of the first instance of needle in haystack,
// or -1 if needle is not present. An empty needle yields 0, matching
// bytes.Index.
//
// Single-byte needles are dispatched to simd.Memchr; longer needles
// run the equality-only matcher. For plain byte search bytes.Index is
// usually faster (it may exploit byte ordering); Index exists so byte
// callers get the same occurrence conventions and comparison bound as
// the generic API.
func Index(haystack, needle []byte) int {
	switch len(needle) {
	case 0:
		return 0
	case 1:
		return simd.Memchr(haystack, needle[0])
	}
	return Find(haystack, needle)
}

// IndexString is Index for strings.
func IndexString(haystack, needle string) int {
	return Index([]byte(haystack), []byte(needle))
}

// ContainsBytes reports whether needle occurs in haystack.
func ContainsBytes(haystack, needle []byte) bool {
	return Index(haystack, needle) >= 0
}
