/*
The blocks package manages the compressed input of a block container while it
is being decoded.

A Cursor holds the bytes that have been buffered so far together with the
position of the next unconsumed byte. Before each parsing step the decoder asks
the cursor to Ensure that enough bytes are available. A fully buffered cursor
fails straight away when they are not; a cursor built around a Refiller pulls
more input on demand, which lets decoding start before the whole container is
resident in memory.
*/
package blocks

import (
	"errors"
	"fmt"
)

// ErrInputOverrun is matched (via errors.Is) by every error returned when
// a cursor cannot make the requested number of bytes available.
var ErrInputOverrun = errors.New("input overrun")

// OverrunError describes a failed Ensure.
type OverrunError struct {
	Need int
	Have int

	// Err is the refill failure that ended the input, if any.
	Err error
}

func (e *OverrunError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("input overrun: need %d bytes, have %d: %v", e.Need, e.Have, e.Err)
	}

	return fmt.Sprintf("input overrun: need %d bytes, have %d", e.Need, e.Have)
}

func (e *OverrunError) Is(target error) bool {
	return target == ErrInputOverrun
}

func (e *OverrunError) Unwrap() error {
	return e.Err
}
