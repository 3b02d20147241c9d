package lz4p

import (
	"github.com/customerio/lz4p/binary"
	"github.com/customerio/lz4p/blocks"
)

const maxInt = int(^uint(0) >> 1)

// readTable loads the compressed length of every block. The entries are
// checked later, when each block is decoded.
func readTable(c *blocks.Cursor, count uint32) ([]uint32, error) {
	size := 4 * uint64(count)

	if size > uint64(maxInt) {
		return nil, &Error{
			Kind:  TruncatedInput,
			Block: -1,
			Want:  int64(size),
			Got:   int64(c.Len()),
			Err:   &blocks.OverrunError{Need: maxInt, Have: c.Len()},
		}
	}

	b, err := c.Next(int(size))
	if err != nil {
		return nil, &Error{Kind: TruncatedInput, Block: -1, Want: int64(size), Got: int64(c.Len()), Err: err}
	}

	return binary.Uint32s(make([]uint32, count), b), nil
}
