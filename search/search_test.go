package search

import (
	"bytes"
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pinkonio/qgram/internal/testutil"
	"github.com/pinkonio/qgram/matcher"
	"github.com/pinkonio/qgram/sequence"
	"github.com/pinkonio/qgram/window"
)

// bruteForceForward is the reference implementation every forward search
// result is checked against: a linear scan calling Sequence.Matches at
// every candidate offset in order.
func bruteForceForward(seq *sequence.Sequence, data []byte, from, to int) int {
	if from < 0 {
		from = 0
	}
	last := to
	if maxStart := len(data) - seq.Len(); last > maxStart {
		last = maxStart
	}
	for i := from; i <= last; i++ {
		if seq.Matches(data, i) {
			return i
		}
	}
	return -1
}

func bruteForceBackward(seq *sequence.Sequence, data []byte, from, to int) int {
	first := from
	if first < 0 {
		first = 0
	}
	last := to
	if maxStart := len(data) - seq.Len(); last > maxStart {
		last = maxStart
	}
	for i := last; i >= first; i-- {
		if seq.Matches(data, i) {
			return i
		}
	}
	return -1
}

func mustSearcher(t *testing.T, pattern []byte) *Searcher {
	t.Helper()
	s, err := NewFromBytes(pattern)
	require.NoError(t, err)
	return s
}

func TestForwardMatchesBruteForce(t *testing.T) {
	cases := []struct {
		name    string
		pattern string
		data    string
	}{
		{"short pattern below Q", "ab", "xxxxxabxxxxxabxxx"},
		{"exact Q length", "DEAD", "the quick DEADBEEF brown DEAD fox"},
		{"longer pattern", "needle", "haystack haystack needle haystack needle"},
		{"no match", "zzzz", "the quick brown fox jumps over the lazy dog"},
		{"pattern longer than data", "abcdefgh", "abc"},
		{"single byte data", "a", "a"},
		{"empty data", "abcd", ""},
		{"repeated qgram pathological", "aaaaaaaaaaaaaaaab", "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaab"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			seq, err := sequence.FromBytes([]byte(tc.pattern))
			require.NoError(t, err)
			s := mustSearcher(t, []byte(tc.pattern))
			data := []byte(tc.data)

			want := bruteForceForward(seq, data, 0, len(data))
			got := s.SearchForwardArray(data, 0, len(data))
			assert.Equal(t, want, got)
		})
	}
}

func TestBackwardMatchesBruteForce(t *testing.T) {
	cases := []struct {
		pattern, data string
	}{
		{"ab", "xxxxxabxxxxxabxxx"},
		{"DEAD", "the quick DEADBEEF brown DEAD fox"},
		{"needle", "haystack haystack needle haystack needle"},
		{"zzzz", "the quick brown fox jumps over the lazy dog"},
	}
	for _, tc := range cases {
		t.Run(tc.pattern, func(t *testing.T) {
			seq, err := sequence.FromBytes([]byte(tc.pattern))
			require.NoError(t, err)
			s := mustSearcher(t, []byte(tc.pattern))
			data := []byte(tc.data)

			want := bruteForceBackward(seq, data, 0, len(data))
			got := s.SearchBackwardArray(data, 0, len(data))
			assert.Equal(t, want, got)
		})
	}
}

func TestDirectionSymmetry(t *testing.T) {
	data := []byte("needle in a needle stack with many needles around")
	s := mustSearcher(t, []byte("needle"))

	var forwardMatches []int
	it := s.ForwardIterator(data, 0, len(data))
	for {
		m, ok := it.Next()
		if !ok {
			break
		}
		forwardMatches = append(forwardMatches, m)
	}

	var backwardMatches []int
	bit := s.BackwardIterator(data, 0, len(data))
	for {
		m, ok := bit.Next()
		if !ok {
			break
		}
		backwardMatches = append(backwardMatches, m)
	}
	// backwardMatches is produced in decreasing order; reverse to compare.
	for i, j := 0, len(backwardMatches)-1; i < j; i, j = i+1, j-1 {
		backwardMatches[i], backwardMatches[j] = backwardMatches[j], backwardMatches[i]
	}

	assert.Equal(t, forwardMatches, backwardMatches)
	assert.NotEmpty(t, forwardMatches)
}

func TestArrayStreamEquivalence(t *testing.T) {
	data := bytes.Repeat([]byte("0123456789abcdefDEADBEEFghijklmnop"), 40)
	pattern := []byte("DEADBEEF")
	s := mustSearcher(t, pattern)

	for _, windowSize := range []int{1, 3, 4, 5, 7, 64, 4096} {
		t.Run("", func(t *testing.T) {
			arrayResult := s.SearchForwardArray(data, 0, len(data))

			sr := window.NewStreamReader(bytes.NewReader(data), windowSize, int64(len(data)))
			defer sr.Close()
			streamResult, err := s.SearchForwardStream(context.Background(), sr, 0, int64(len(data)))
			require.NoError(t, err)
			assert.EqualValues(t, arrayResult, streamResult, "windowSize=%d", windowSize)

			backArray := s.SearchBackwardArray(data, 0, len(data))
			sr2 := window.NewStreamReader(bytes.NewReader(data), windowSize, int64(len(data)))
			defer sr2.Close()
			backStream, err := s.SearchBackwardStream(context.Background(), sr2, 0, int64(len(data)))
			require.NoError(t, err)
			assert.EqualValues(t, backArray, backStream, "windowSize=%d", windowSize)
		})
	}
}

func TestStreamStraddleBoundary(t *testing.T) {
	// A 10-byte pattern against a stream with a 7-byte window, so many
	// candidate q-grams straddle a window boundary.
	data := []byte("xxxPATTERNMATCHxxxxxxxPATTERNMATCHyy")
	pattern := []byte("PATTERNMAT")
	s := mustSearcher(t, pattern)

	sr := window.NewStreamReader(bytes.NewReader(data), 7, int64(len(data)))
	defer sr.Close()

	got, err := s.SearchForwardStream(context.Background(), sr, 0, int64(len(data)))
	require.NoError(t, err)
	assert.EqualValues(t, bytes.Index(data, pattern), got)
}

func TestByteClassPermutationScanning(t *testing.T) {
	digit, err := matcher.Range('0', '9')
	require.NoError(t, err)
	upper, err := matcher.Range('A', 'Z')
	require.NoError(t, err)

	seq, err := sequence.New(matcher.Single('X'), digit, digit, upper)
	require.NoError(t, err)
	s, err := NewFromSequence(seq)
	require.NoError(t, err)

	data := []byte("noise X12A noise X99Z noise")
	want := bruteForceForward(seq, data, 0, len(data))
	got := s.SearchForwardArray(data, 0, len(data))
	assert.Equal(t, want, got)

	// Every valid permutation must be discoverable via iteration.
	var all []int
	it := s.ForwardIterator(data, 0, len(data))
	for {
		m, ok := it.Next()
		if !ok {
			break
		}
		all = append(all, m)
	}
	assert.Len(t, all, 2)
}

func TestFullByteClassAtBoundaryPosition(t *testing.T) {
	seq, err := sequence.New(matcher.Any(), matcher.Single('B'), matcher.Single('C'), matcher.Single('D'))
	require.NoError(t, err)
	s, err := NewFromSequence(seq)
	require.NoError(t, err)

	data := []byte("xxZBCDxxABCDxx")
	want := bruteForceForward(seq, data, 0, len(data))
	got := s.SearchForwardArray(data, 0, len(data))
	assert.Equal(t, want, got)
}

func TestFromAfterTo(t *testing.T) {
	s := mustSearcher(t, []byte("needle"))
	data := []byte("a needle in a haystack")
	assert.Equal(t, -1, s.SearchForwardArray(data, 10, 2))
	assert.Equal(t, -1, s.SearchBackwardArray(data, 10, 2))
}

func TestNewFromSequenceRejectsEmpty(t *testing.T) {
	_, err := NewFromSequence(nil)
	assert.ErrorIs(t, err, ErrEmptySequence)

	empty := &sequence.Sequence{}
	_, err = NewFromSequence(empty)
	assert.ErrorIs(t, err, ErrEmptySequence)
}

func TestFallbackForShortPattern(t *testing.T) {
	s := mustSearcher(t, []byte("ab")) // shorter than Q=4, always falls back
	data := []byte("xxxxabxxxxabxxx")

	assert.Equal(t, 4, s.SearchForwardArray(data, 0, len(data)))
	assert.Equal(t, 10, s.SearchBackwardArray(data, 0, len(data)))
}

func TestRandomizedArrayVsBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	freq := testutil.BuildFrequencyTable([]byte(testutil.EnglishSample))

	for trial := 0; trial < 50; trial++ {
		n := 20 + rng.Intn(200)
		data := testutil.WeightedRandomText(rng, freq, n)
		patLen := 1 + rng.Intn(8)
		pattern := testutil.WeightedRandomText(rng, freq, patLen)

		seq, err := sequence.FromBytes(pattern)
		require.NoError(t, err)
		s := mustSearcher(t, pattern)

		want := bruteForceForward(seq, data, 0, len(data))
		got := s.SearchForwardArray(data, 0, len(data))
		require.Equal(t, want, got, "pattern=%q data=%q", pattern, data)
	}
}
