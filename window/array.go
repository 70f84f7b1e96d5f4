package window

// ArrayReader wraps a flat byte slice as a single all-encompassing window.
// It is the Reader used when the caller already has the full input in
// memory and wants to drive the stream search API without copying.
type ArrayReader struct {
	window Window
	closed bool
}

// NewArrayReader returns a Reader backed by data. data is not copied; the
// caller must not mutate it while the reader is in use.
func NewArrayReader(data []byte) *ArrayReader {
	return &ArrayReader{window: Window{Array: data, Start: 0, Length: len(data)}}
}

func (r *ArrayReader) WindowFor(pos int64) (*Window, error) {
	if r.closed {
		return nil, ErrClosed
	}
	if pos < 0 || pos >= int64(r.window.Length) {
		return nil, nil
	}
	return &r.window, nil
}

func (r *ArrayReader) OffsetInWindow(pos int64) int {
	return int(pos - r.window.Start)
}

func (r *ArrayReader) ReadByte(pos int64) (int16, error) {
	if r.closed {
		return 0, ErrClosed
	}
	if pos < 0 || pos >= int64(r.window.Length) {
		return NoByte, nil
	}
	return int16(r.window.Array[pos]), nil
}

func (r *ArrayReader) Length() (int64, error) {
	if r.closed {
		return 0, ErrClosed
	}
	return int64(r.window.Length), nil
}

func (r *ArrayReader) Close() error {
	r.closed = true
	return nil
}
