package search

// SearchForwardArray returns the first match position in
// [from, min(to, len(data)-L)], scanning left to right, or -1 if there is
// none. from and to are both start positions; to is inclusive.
func (s *Searcher) SearchForwardArray(data []byte, from, to int) int {
	info := s.forwardSearchInfo()
	if info == nil {
		return s.fallback.searchForward(data, from, to)
	}

	L := s.seq.Len()
	lastPatternPos := L - 1

	searchEnd := to + lastPatternPos
	if searchEnd > len(data)-1 {
		searchEnd = len(data) - 1
	}
	start := from
	if start < 0 {
		start = 0
	}

	i := start + lastPatternPos
	for i <= searchEnd {
		qgram := packQgram(data[i-3], data[i-2], data[i-1], data[i])
		shift := info.shiftFor(qgram)
		if shift > 0 {
			i += int(shift)
			continue
		}
		matchPos := i - lastPatternPos
		if s.seq.MatchesUnchecked(data, matchPos) {
			return matchPos
		}
		i += int(-shift)
	}
	return -1
}

// SearchBackwardArray returns the rightmost match position no greater than
// to and no less than from, scanning right to left, or -1 if there is none.
func (s *Searcher) SearchBackwardArray(data []byte, from, to int) int {
	info := s.backwardSearchInfo()
	if info == nil {
		return s.fallback.searchBackward(data, from, to)
	}

	L := s.seq.Len()

	searchEnd := to
	if maxStart := len(data) - L; searchEnd > maxStart {
		searchEnd = maxStart
	}
	searchStart := from
	if searchStart < 0 {
		searchStart = 0
	}

	i := searchEnd
	for i >= searchStart {
		qgram := packQgram(data[i], data[i+1], data[i+2], data[i+3])
		shift := info.shiftFor(qgram)
		if shift > 0 {
			i -= int(shift)
			continue
		}
		if s.seq.MatchesUnchecked(data, i) {
			return i
		}
		i -= int(-shift)
	}
	return -1
}
