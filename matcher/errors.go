package matcher

import "errors"

// Sentinel errors returned by the constructor functions in this package.
var (
	// ErrEmptyAccept is returned when a requested matcher would accept no
	// byte at all. A matcher accepting nothing can never participate in a
	// match, so construction fails rather than producing a matcher that
	// would silently make every sequence unmatchable.
	ErrEmptyAccept = errors.New("matcher: accepted set is empty")
	// ErrInvalidRange is returned when a range's low bound exceeds its high bound.
	ErrInvalidRange = errors.New("matcher: low bound exceeds high bound")
)
