package search

import (
	"errors"

	"github.com/pinkonio/qgram/sequence"
)

var (
	// ErrHashSizeOutOfRange is returned when a hash-size hint's magnitude
	// exceeds MaxPowerTwoSize.
	ErrHashSizeOutOfRange = errors.New("search: hash size hint out of range")
	// ErrFromAfterTo describes an empty or inverted [from, to] range. The
	// search methods do not return it: they report such a range as no
	// match (-1).
	ErrFromAfterTo = errors.New("search: from position is after to position")
	// ErrEmptySequence is returned by NewFromSequence when seq is nil or
	// has zero length. It is an alias for sequence.ErrEmptySequence so
	// callers can check either package's error value with errors.Is.
	ErrEmptySequence = sequence.ErrEmptySequence
)
