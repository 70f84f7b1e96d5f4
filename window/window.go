// Package window abstracts a byte source as a sequence of fixed windows,
// so that the search package can scan either an in-memory array or a large
// stream without duplicating its inner loops. A Reader hands out Windows on
// request; a q-gram that straddles two windows is read byte by byte through
// ReadByte rather than assembled from a single window's array.
package window

// NoByte is the sentinel value ReadByte returns (alongside a nil error) for
// any position at or past the end of the underlying source.
const NoByte int16 = -1

// Window is a borrowed view of bytes starting at an absolute position. Bytes
// outside [0, Length) of Array are not part of this window; callers must not
// mutate Array.
type Window struct {
	Array  []byte
	Start  int64
	Length int
}

// At returns the byte at absolute position pos, which must fall within this
// window (Start <= pos < Start+Length).
func (w *Window) At(pos int64) byte {
	return w.Array[pos-w.Start]
}

// Reader is a stateful source of Windows over a byte sequence of unknown or
// expensive-to-compute total length.
type Reader interface {
	// WindowFor returns the window containing the absolute position pos.
	// A nil Window with a nil error means pos is at or past the end of the
	// source, the same "no window here" outcome ReadByte reports as
	// NoByte. A non-nil error means the window could not be produced for
	// some other reason (the reader is closed, the underlying source
	// failed, or a wrapping reader's context was canceled) and must be
	// treated as a hard failure, not an ordinary end of input.
	WindowFor(pos int64) (*Window, error)
	// OffsetInWindow returns the offset of pos within the window that
	// WindowFor(pos) would return. Behavior is undefined if pos does not
	// fall within the reader's current or natural window boundaries.
	OffsetInWindow(pos int64) int
	// ReadByte returns the byte at absolute position pos, or NoByte if pos
	// is at or past the end of the source.
	ReadByte(pos int64) (int16, error)
	// Length returns the total length of the source, if known. Streams
	// backed by an unbounded reader may return an error here even though
	// ReadByte and WindowFor work correctly.
	Length() (int64, error)
	// Close releases any resources held by the reader.
	Close() error
}
