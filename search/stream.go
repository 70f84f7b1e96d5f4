package search

import (
	"context"

	"github.com/pinkonio/qgram/window"
)

// SearchForwardStream is the windowed-stream equivalent of
// SearchForwardArray. It reads bytes through r rather than an in-memory
// slice, resolving q-grams that straddle a window boundary by falling back
// to individual ReadByte calls. ctx, if non-nil, is honored as a
// cancellation signal between window fetches.
func (s *Searcher) SearchForwardStream(ctx context.Context, r window.Reader, from, to int64) (int64, error) {
	if ctx != nil {
		r = window.WithContext(ctx, r)
	}
	info := s.forwardSearchInfo()
	if info == nil {
		return s.fallback.searchForwardStream(r, from, to)
	}

	L := int64(s.seq.Len())
	lastPatternPos := L - 1

	start := from
	if start < 0 {
		start = 0
	}
	searchEnd := to + lastPatternPos

	i := start + lastPatternPos
	for i <= searchEnd {
		win, err := r.WindowFor(i)
		if err != nil {
			return -1, err
		}
		if win == nil {
			return -1, nil
		}
		offset := r.OffsetInWindow(i)

		var b0, b1, b2, b3 byte
		if offset >= Q-1 {
			b0 = win.Array[offset-3]
			b1 = win.Array[offset-2]
			b2 = win.Array[offset-1]
			b3 = win.Array[offset]
		} else {
			v0, err := r.ReadByte(i - 3)
			if err != nil {
				return -1, err
			}
			v1, err := r.ReadByte(i - 2)
			if err != nil {
				return -1, err
			}
			v2, err := r.ReadByte(i - 1)
			if err != nil {
				return -1, err
			}
			if v0 == window.NoByte || v1 == window.NoByte || v2 == window.NoByte {
				return -1, nil
			}
			b0, b1, b2 = byte(v0), byte(v1), byte(v2)
			b3 = win.Array[offset]
		}

		qgram := packQgram(b0, b1, b2, b3)
		shift := info.shiftFor(qgram)
		if shift > 0 {
			i += int64(shift)
			continue
		}

		matchPos := i - lastPatternPos
		matched, err := s.seq.MatchesReader(r, matchPos)
		if err != nil {
			return -1, err
		}
		if matched {
			return matchPos, nil
		}
		i += int64(-shift)
	}
	return -1, nil
}

// SearchBackwardStream is the windowed-stream equivalent of
// SearchBackwardArray.
func (s *Searcher) SearchBackwardStream(ctx context.Context, r window.Reader, from, to int64) (int64, error) {
	if ctx != nil {
		r = window.WithContext(ctx, r)
	}
	info := s.backwardSearchInfo()
	if info == nil {
		return s.fallback.searchBackwardStream(r, from, to)
	}

	L := int64(s.seq.Len())

	length, err := r.Length()
	if err != nil {
		return -1, err
	}
	searchEnd := to
	if maxStart := length - L; searchEnd > maxStart {
		searchEnd = maxStart
	}
	searchStart := from
	if searchStart < 0 {
		searchStart = 0
	}
	if searchEnd < searchStart {
		return -1, nil
	}

	i := searchEnd
	for i >= searchStart {
		win, err := r.WindowFor(i)
		if err != nil {
			return -1, err
		}
		if win == nil {
			return -1, nil
		}
		offset := r.OffsetInWindow(i)

		var b0, b1, b2, b3 byte
		if offset+Q-1 < win.Length {
			b0 = win.Array[offset]
			b1 = win.Array[offset+1]
			b2 = win.Array[offset+2]
			b3 = win.Array[offset+3]
		} else {
			b0 = win.Array[offset]
			v1, err := r.ReadByte(i + 1)
			if err != nil {
				return -1, err
			}
			v2, err := r.ReadByte(i + 2)
			if err != nil {
				return -1, err
			}
			v3, err := r.ReadByte(i + 3)
			if err != nil {
				return -1, err
			}
			if v1 == window.NoByte || v2 == window.NoByte || v3 == window.NoByte {
				i--
				continue
			}
			b1, b2, b3 = byte(v1), byte(v2), byte(v3)
		}

		qgram := packQgram(b0, b1, b2, b3)
		shift := info.shiftFor(qgram)
		if shift > 0 {
			i -= int64(shift)
			continue
		}

		matched, err := s.seq.MatchesReader(r, i)
		if err != nil {
			return -1, err
		}
		if matched {
			return i, nil
		}
		i -= int64(-shift)
	}
	return -1, nil
}
