package window

import "errors"

var (
	// ErrClosed is returned by operations attempted on a closed Reader.
	ErrClosed = errors.New("window: reader is closed")
)
