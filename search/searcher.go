// Package search implements the SignedHash q-gram search algorithm, with an
// automatic ShiftOr fallback for patterns too short or too irregular for
// the shift table to pay for itself.
package search

import (
	"sync"

	"github.com/pinkonio/qgram/sequence"
)

// Searcher finds occurrences of a sequence.Sequence in a byte array or a
// windowed stream. Pre-processing for each direction is performed lazily,
// at most once, the first time that direction is needed; a prepared
// Searcher is safe for concurrent read-only use.
type Searcher struct {
	seq *sequence.Sequence
	cfg config

	fallback *shiftOr

	forwardOnce sync.Once
	forwardInfo *SearchInfo

	backwardOnce sync.Once
	backwardInfo *SearchInfo
}

// NewFromSequence builds a Searcher over seq. It fails with
// ErrEmptySequence if seq is nil or has zero length, and with
// ErrHashSizeOutOfRange if a WithHashSizeHint option's magnitude exceeds
// MaxPowerTwoSize.
func NewFromSequence(seq *sequence.Sequence, opts ...Option) (*Searcher, error) {
	if seq == nil || seq.Len() == 0 {
		return nil, sequence.ErrEmptySequence
	}
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if abs(cfg.hashSizeHint) > MaxPowerTwoSize {
		return nil, ErrHashSizeOutOfRange
	}
	return &Searcher{
		seq:      seq,
		cfg:      cfg,
		fallback: newShiftOr(seq),
	}, nil
}

// NewFromBytes is a convenience wrapper that builds a literal-byte
// sequence.Sequence and a Searcher over it.
func NewFromBytes(pattern []byte, opts ...Option) (*Searcher, error) {
	seq, err := sequence.FromBytes(pattern)
	if err != nil {
		return nil, err
	}
	return NewFromSequence(seq, opts...)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// PrepareForward forces forward pre-processing, if it hasn't run yet.
func (s *Searcher) PrepareForward() { s.forwardSearchInfo() }

// PrepareBackward forces backward pre-processing, if it hasn't run yet.
func (s *Searcher) PrepareBackward() { s.backwardSearchInfo() }

func (s *Searcher) forwardSearchInfo() *SearchInfo {
	s.forwardOnce.Do(func() {
		s.forwardInfo = buildForwardSearchInfo(s.seq, s.cfg.hashSizeHint)
		s.cfg.logger.Debug("forward search info built",
			"pattern_length", s.seq.Len(),
			"usable", s.forwardInfo != nil)
	})
	return s.forwardInfo
}

func (s *Searcher) backwardSearchInfo() *SearchInfo {
	s.backwardOnce.Do(func() {
		s.backwardInfo = buildBackwardSearchInfo(s.seq, s.cfg.hashSizeHint)
		s.cfg.logger.Debug("backward search info built",
			"pattern_length", s.seq.Len(),
			"usable", s.backwardInfo != nil)
	})
	return s.backwardInfo
}

// Len returns the length of the underlying pattern.
func (s *Searcher) Len() int { return s.seq.Len() }
