// Package baseline provides the naive, stdlib-delegating search used as a
// comparison point in benchmarks: if SignedHash isn't meaningfully faster
// than this for a given pattern/input shape, that shape doesn't belong on
// the fast path.
package baseline

import "bytes"

// Index returns the first occurrence of needle in haystack using the
// standard library's substring search, or -1.
func Index(haystack, needle []byte) int {
	return bytes.Index(haystack, needle)
}

// LastIndex returns the last occurrence of needle in haystack, or -1.
func LastIndex(haystack, needle []byte) int {
	return bytes.LastIndex(haystack, needle)
}
