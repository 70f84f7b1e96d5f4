// Package sequence composes matcher.Matcher values into an ordered pattern
// that can be checked against a byte slice or against a window.Reader.
package sequence

import (
	"github.com/pinkonio/qgram/matcher"
	"github.com/pinkonio/qgram/window"
)

// Sequence is an ordered, fixed-length pattern of byte matchers.
type Sequence struct {
	matchers []matcher.Matcher
}

// New builds a Sequence from an explicit list of matchers. It fails if
// matchers is empty.
func New(matchers ...matcher.Matcher) (*Sequence, error) {
	if len(matchers) == 0 {
		return nil, ErrEmptySequence
	}
	cp := make([]matcher.Matcher, len(matchers))
	copy(cp, matchers)
	return &Sequence{matchers: cp}, nil
}

// FromBytes builds a Sequence where every position is a single-byte
// matcher. It fails if pattern is empty.
func FromBytes(pattern []byte) (*Sequence, error) {
	if len(pattern) == 0 {
		return nil, ErrEmptySequence
	}
	ms := make([]matcher.Matcher, len(pattern))
	for i, b := range pattern {
		ms[i] = matcher.Single(b)
	}
	return &Sequence{matchers: ms}, nil
}

// Len returns the number of positions in the sequence.
func (s *Sequence) Len() int { return len(s.matchers) }

// At returns the matcher at position i.
func (s *Sequence) At(i int) matcher.Matcher { return s.matchers[i] }

// NumBytesAt returns the cardinality of the accepted set at position i.
func (s *Sequence) NumBytesAt(i int) int { return s.matchers[i].Len() }

// Matches reports whether the sequence matches data starting at offset,
// returning false (rather than panicking) if the sequence would run past
// the end of data or offset is negative.
func (s *Sequence) Matches(data []byte, offset int) bool {
	if offset < 0 || offset+len(s.matchers) > len(data) {
		return false
	}
	return s.MatchesUnchecked(data, offset)
}

// MatchesUnchecked is Matches without the bounds check. The caller must
// have already established that offset+s.Len() <= len(data) and offset >= 0.
func (s *Sequence) MatchesUnchecked(data []byte, offset int) bool {
	for i, m := range s.matchers {
		if !m.Matches(data[offset+i]) {
			return false
		}
	}
	return true
}

// MatchesReader is the windowed-stream equivalent of Matches: it verifies a
// candidate position by pulling bytes through r one at a time, so that a
// match spanning a window boundary can still be checked without
// materializing the whole span into a slice.
func (s *Sequence) MatchesReader(r window.Reader, offset int64) (bool, error) {
	for i, m := range s.matchers {
		b, err := r.ReadByte(offset + int64(i))
		if err != nil {
			return false, err
		}
		if b == window.NoByte || !m.Matches(byte(b)) {
			return false, nil
		}
	}
	return true, nil
}
