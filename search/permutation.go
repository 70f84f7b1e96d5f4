package search

// qgramClasses holds the four accepted-byte sets for the positions that
// make up one q-gram, most significant (earliest in the pattern) first.
type qgramClasses [Q][]byte

// numPermutations returns the number of distinct byte q-grams the classes
// enumerate: the product of their cardinalities.
func numPermutations(c qgramClasses) int {
	n := 1
	for _, cls := range c {
		n *= len(cls)
	}
	return n
}

// forEachQGram calls fn once for every byte combination the four classes
// permit. It is an explicit nested walk over four cursors rather than a
// recursive enumerator, with a fast path for the common case where only the
// trailing position carries more than one accepted byte: the leading three
// bytes are fixed and only the last cursor advances.
func forEachQGram(c qgramClasses, fn func(b0, b1, b2, b3 byte)) {
	if len(c[0]) == 1 && len(c[1]) == 1 && len(c[2]) == 1 {
		b0, b1, b2 := c[0][0], c[1][0], c[2][0]
		for _, b3 := range c[3] {
			fn(b0, b1, b2, b3)
		}
		return
	}
	for _, b0 := range c[0] {
		for _, b1 := range c[1] {
			for _, b2 := range c[2] {
				for _, b3 := range c[3] {
					fn(b0, b1, b2, b3)
				}
			}
		}
	}
}
