package blocks

import (
	"fmt"
	"io"
)

// Cursor is a read position over a growable input buffer.
//
// Slices returned by Peek and Next alias the internal buffer and are only
// valid until the next call to Ensure (directly or through Peek/Next).
type Cursor struct {
	buf      []byte
	off      int
	consumed int64
	refiller Refiller
}

// NewBufferedCursor returns a cursor over input that is already fully
// resident. Ensure never refills; a shortage is an immediate overrun.
func NewBufferedCursor(b []byte) *Cursor {
	return &Cursor{buf: b}
}

// NewCursor returns an empty cursor that pulls its input from r.
func NewCursor(r Refiller) *Cursor {
	return &Cursor{refiller: r}
}

// Len returns the number of buffered bytes not consumed yet.
func (c *Cursor) Len() int {
	return len(c.buf) - c.off
}

// Offset returns the number of bytes consumed since the cursor was created.
func (c *Cursor) Offset() int64 {
	return c.consumed
}

// Buffered reports whether the cursor works without a refiller.
func (c *Cursor) Buffered() bool {
	return c.refiller == nil
}

// Ensure guarantees that at least n unconsumed bytes are buffered.
func (c *Cursor) Ensure(n int) error {
	if n < 0 {
		return &OverrunError{Need: n, Have: c.Len()}
	}

	for c.Len() < n {
		if c.refiller == nil {
			return &OverrunError{Need: n, Have: c.Len()}
		}

		c.compact()

		before := len(c.buf)
		buf, err := c.refiller.Refill(c.buf)

		if len(buf) < before {
			return &OverrunError{Need: n, Have: c.Len(), Err: errShrunk}
		}

		c.buf = buf

		if err != nil {
			if c.Len() >= n {
				return nil
			}

			return &OverrunError{Need: n, Have: c.Len(), Err: err}
		}

		// A refill that adds nothing ends the stream.
		if len(c.buf) == before {
			return &OverrunError{Need: n, Have: c.Len(), Err: io.ErrNoProgress}
		}
	}

	return nil
}

// Peek returns the next n bytes without consuming them.
func (c *Cursor) Peek(n int) ([]byte, error) {
	if err := c.Ensure(n); err != nil {
		return nil, err
	}

	return c.buf[c.off : c.off+n], nil
}

// Next returns the next n bytes and consumes them.
func (c *Cursor) Next(n int) ([]byte, error) {
	b, err := c.Peek(n)
	if err != nil {
		return nil, err
	}

	c.advance(n)

	return b, nil
}

// Skip consumes n bytes that are already buffered.
func (c *Cursor) Skip(n int) error {
	if n < 0 || n > c.Len() {
		return fmt.Errorf("blocks: skip %d bytes with %d buffered", n, c.Len())
	}

	c.advance(n)

	return nil
}

func (c *Cursor) advance(n int) {
	c.off += n
	c.consumed += int64(n)
}

// compact drops the consumed prefix.
func (c *Cursor) compact() {
	if c.off == 0 {
		return
	}

	n := copy(c.buf, c.buf[c.off:])
	c.buf = c.buf[:n]
	c.off = 0
}
