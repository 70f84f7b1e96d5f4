package sequence

import "errors"

var (
	// ErrEmptySequence is returned when a Sequence would have zero length.
	ErrEmptySequence = errors.New("sequence: length must be at least 1")
)
