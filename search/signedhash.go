package search

import "github.com/pinkonio/qgram/sequence"

// SearchInfo is the pre-computed shift table and hash parameters for one
// direction (forward or backward) of a SignedHash search. A nil *SearchInfo
// means the pattern is unsearchable by this algorithm and the caller must
// fall back to ShiftOr.
type SearchInfo struct {
	Shifts         []int32
	HashShift      uint
	MaxSearchShift int32
}

func (si *SearchInfo) shiftFor(qgram uint32) int32 {
	return si.Shifts[hashQgram(qgram, si.HashShift)]
}

func tableSizeFor(powerTwoSize int) (effectiveMax int, exact bool) {
	switch {
	case powerTwoSize > 0:
		return powerTwoSize, true
	case powerTwoSize == 0:
		return MaxPowerTwoSize, false
	default:
		m := -powerTwoSize
		if m > MaxPowerTwoSize {
			m = MaxPowerTwoSize
		}
		return m, false
	}
}

// classesAt returns the accepted-byte classes for the four pattern
// positions starting at start.
func classesAt(seq *sequence.Sequence, start int) qgramClasses {
	var c qgramClasses
	for i := 0; i < Q; i++ {
		c[i] = seq.At(start + i).AcceptedBytes()
	}
	return c
}

// buildForwardSearchInfo implements the forward pre-processing described in
// the component design: a qgram-start load-factor scan, automatic hash-size
// selection, a max-shift gate, a shift-table fill that lets the q-gram
// closest to the pattern's end win on collision, and a final pass that
// marks the terminal q-gram's buckets as verification points.
func buildForwardSearchInfo(seq *sequence.Sequence, powerTwoSize int) *SearchInfo {
	L := seq.Len()
	if L < Q {
		return nil
	}

	effectiveMax, exact := tableSizeFor(powerTwoSize)
	maxTableSize := int64(1) << uint(effectiveMax)

	qgramStart := 0
	totalQgrams := int64(0)
	for p := L - Q; p >= 0; p-- {
		totalQgrams += int64(seq.NumBytesAt(p)) * int64(seq.NumBytesAt(p+1)) *
			int64(seq.NumBytesAt(p+2)) * int64(seq.NumBytesAt(p+3))
		if (totalQgrams >> 2) >= maxTableSize {
			qgramStart = p + 1
			break
		}
		qgramStart = p
	}

	hashSize := effectiveMax
	if !exact {
		hashSize = clampInt(ceilLog2(totalQgrams), MinPowerTwoSize, effectiveMax)
	}

	maxSearchShift := L - Q - qgramStart + 1
	if maxSearchShift < 2 {
		return nil
	}

	hashShift := uint(64 - hashSize)
	shifts := make([]int32, int64(1)<<uint(hashSize))
	for i := range shifts {
		shifts[i] = int32(maxSearchShift)
	}

	for e := qgramStart + Q - 1; e <= L-2; e++ {
		currentShift := int32((L - 1) - e)
		classes := classesAt(seq, e-Q+1)
		forEachQGram(classes, func(b0, b1, b2, b3 byte) {
			h := hashQgram(packQgram(b0, b1, b2, b3), hashShift)
			shifts[h] = currentShift
		})
	}

	terminal := classesAt(seq, L-Q)
	forEachQGram(terminal, func(b0, b1, b2, b3 byte) {
		h := hashQgram(packQgram(b0, b1, b2, b3), hashShift)
		if shifts[h] > 0 {
			shifts[h] = -shifts[h]
		}
	})

	return &SearchInfo{Shifts: shifts, HashShift: hashShift, MaxSearchShift: int32(maxSearchShift)}
}

// buildBackwardSearchInfo is the independently-derived mirror of
// buildForwardSearchInfo: the qgram-start scan walks forward instead of
// backward, the terminal q-gram is the one at the pattern's start instead
// of its end, and fill order is reversed so that the q-gram closest to the
// pattern's start wins on collision.
func buildBackwardSearchInfo(seq *sequence.Sequence, powerTwoSize int) *SearchInfo {
	L := seq.Len()
	if L < Q {
		return nil
	}

	effectiveMax, exact := tableSizeFor(powerTwoSize)
	maxTableSize := int64(1) << uint(effectiveMax)

	qgramEndCutoff := L - Q
	totalQgrams := int64(0)
	for p := 0; p <= L-Q; p++ {
		totalQgrams += int64(seq.NumBytesAt(p)) * int64(seq.NumBytesAt(p+1)) *
			int64(seq.NumBytesAt(p+2)) * int64(seq.NumBytesAt(p+3))
		if (totalQgrams >> 2) >= maxTableSize {
			qgramEndCutoff = p - 1
			break
		}
		qgramEndCutoff = p
	}

	hashSize := effectiveMax
	if !exact {
		hashSize = clampInt(ceilLog2(totalQgrams), MinPowerTwoSize, effectiveMax)
	}

	maxSearchShift := qgramEndCutoff + 1
	if maxSearchShift < 2 {
		return nil
	}

	hashShift := uint(64 - hashSize)
	shifts := make([]int32, int64(1)<<uint(hashSize))
	for i := range shifts {
		shifts[i] = int32(maxSearchShift)
	}

	for s := qgramEndCutoff; s >= 1; s-- {
		currentShift := int32(s)
		classes := classesAt(seq, s)
		forEachQGram(classes, func(b0, b1, b2, b3 byte) {
			h := hashQgram(packQgram(b0, b1, b2, b3), hashShift)
			shifts[h] = currentShift
		})
	}

	terminal := classesAt(seq, 0)
	forEachQGram(terminal, func(b0, b1, b2, b3 byte) {
		h := hashQgram(packQgram(b0, b1, b2, b3), hashShift)
		if shifts[h] > 0 {
			shifts[h] = -shifts[h]
		}
	})

	return &SearchInfo{Shifts: shifts, HashShift: hashShift, MaxSearchShift: int32(maxSearchShift)}
}
