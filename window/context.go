package window

import "context"

// WithContext wraps r so that WindowFor and ReadByte both surface ctx's
// cancellation as an error as soon as ctx is done, giving callers a way to
// cancel a long-running stream search without the core search loop needing
// to know about contexts. Both methods report cancellation the same way:
// a non-nil error, never a silent "past end of input".
func WithContext(ctx context.Context, r Reader) Reader {
	return &ctxReader{ctx: ctx, Reader: r}
}

type ctxReader struct {
	ctx context.Context
	Reader
}

func (c *ctxReader) WindowFor(pos int64) (*Window, error) {
	if err := c.ctx.Err(); err != nil {
		return nil, err
	}
	return c.Reader.WindowFor(pos)
}

func (c *ctxReader) ReadByte(pos int64) (int16, error) {
	if err := c.ctx.Err(); err != nil {
		return NoByte, err
	}
	return c.Reader.ReadByte(pos)
}
