// Package search finds occurrences of a sequence.Sequence pattern in a
// byte array or windowed stream using the SignedHash q-gram algorithm,
// falling back transparently to a generalized Shift-Or scan when the
// pattern is too short, or too irregular, for the shift table to help.
package search
