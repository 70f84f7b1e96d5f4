package window

import (
	"io"
)

// defaultWindowSize mirrors the chunk size a scanning reader pulls from the
// underlying source at a time; it is large enough that most q-grams land
// entirely inside one window, so the straddle path in the search loops is
// the exception rather than the rule.
const defaultWindowSize = 1 << 16

// maxCachedWindows bounds how many windows StreamReader keeps around at
// once. Forward and backward search only ever need the current window plus
// its immediate neighbor to resolve a straddling q-gram, but a small cache
// also makes repeated ReadByte calls at the edge of a window cheap.
const maxCachedWindows = 4

// StreamReader is a Reader over an io.ReaderAt, split into fixed-size
// windows fetched on demand and cached. It is the Reader used when the
// input is too large, or too expensive, to hold entirely in memory.
type StreamReader struct {
	src        io.ReaderAt
	windowSize int
	length     int64 // -1 if unknown

	cache    map[int64]*Window // keyed by window index
	lru      []int64
	closed   bool
	closeSrc io.Closer
}

// NewStreamReader returns a Reader that pulls fixed windowSize chunks from
// src on demand. length is the total number of bytes available from src, or
// -1 if unknown (in which case WindowFor/ReadByte discover the end via
// short reads).
func NewStreamReader(src io.ReaderAt, windowSize int, length int64) *StreamReader {
	if windowSize <= 0 {
		windowSize = defaultWindowSize
	}
	sr := &StreamReader{
		src:        src,
		windowSize: windowSize,
		length:     length,
		cache:      make(map[int64]*Window, maxCachedWindows),
	}
	if closer, ok := src.(io.Closer); ok {
		sr.closeSrc = closer
	}
	return sr
}

func (r *StreamReader) windowIndex(pos int64) int64 {
	return pos / int64(r.windowSize)
}

// fetch returns the window at idx. A nil Window with a nil error means idx
// is past the end of the source; a non-nil error means the underlying
// ReadAt failed for a reason other than reaching the end.
func (r *StreamReader) fetch(idx int64) (*Window, error) {
	if w, ok := r.cache[idx]; ok {
		return w, nil
	}
	start := idx * int64(r.windowSize)
	if r.length >= 0 && start >= r.length {
		return nil, nil
	}
	buf := make([]byte, r.windowSize)
	n, err := r.src.ReadAt(buf, start)
	if n == 0 {
		if err != nil && err != io.EOF {
			return nil, err
		}
		return nil, nil
	}
	w := &Window{Array: buf[:n], Start: start, Length: n}
	r.cache[idx] = w
	r.lru = append(r.lru, idx)
	if len(r.lru) > maxCachedWindows {
		evict := r.lru[0]
		r.lru = r.lru[1:]
		if evict != idx {
			delete(r.cache, evict)
		}
	}
	return w, nil
}

func (r *StreamReader) WindowFor(pos int64) (*Window, error) {
	if r.closed {
		return nil, ErrClosed
	}
	if pos < 0 {
		return nil, nil
	}
	w, err := r.fetch(r.windowIndex(pos))
	if err != nil {
		return nil, err
	}
	if w == nil || pos >= w.Start+int64(w.Length) {
		return nil, nil
	}
	return w, nil
}

func (r *StreamReader) OffsetInWindow(pos int64) int {
	return int(pos % int64(r.windowSize))
}

func (r *StreamReader) ReadByte(pos int64) (int16, error) {
	if r.closed {
		return 0, ErrClosed
	}
	w, err := r.WindowFor(pos)
	if err != nil {
		return NoByte, err
	}
	if w == nil {
		return NoByte, nil
	}
	return int16(w.At(pos)), nil
}

func (r *StreamReader) Length() (int64, error) {
	if r.closed {
		return 0, ErrClosed
	}
	if r.length >= 0 {
		return r.length, nil
	}
	// Unknown length: walk forward window by window until a short read
	// reveals the end. This is the rare path (callers normally supply a
	// known length from os.FileInfo or similar).
	var idx int64
	var total int64
	for {
		w, err := r.fetch(idx)
		if err != nil {
			return 0, err
		}
		if w == nil {
			break
		}
		total = w.Start + int64(w.Length)
		if w.Length < r.windowSize {
			break
		}
		idx++
	}
	r.length = total
	return total, nil
}

func (r *StreamReader) Close() error {
	r.closed = true
	r.cache = nil
	if r.closeSrc != nil {
		return r.closeSrc.Close()
	}
	return nil
}
