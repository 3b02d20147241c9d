package lz4p

import (
	"fmt"

	"github.com/customerio/lz4p/binary"
	"github.com/customerio/lz4p/blocks"
)

// Header is the fixed record at the start of every container.
type Header struct {
	OriginalSize   uint32
	CompressedSize uint32
	BlockSize      uint32
	BlockCount     uint32

	// Reserved is carried along but never checked.
	Reserved [3]uint32
}

// ReadHeader buffers and parses the header at the cursor, then consumes it.
func ReadHeader(c *blocks.Cursor) (*Header, error) {
	b, err := c.Peek(HeaderSize)
	if err != nil {
		return nil, &Error{Kind: TruncatedInput, Block: -1, Want: HeaderSize, Got: int64(c.Len()), Err: err}
	}

	h, err := parseHeader(b)
	if err != nil {
		return nil, err
	}

	return h, c.Skip(HeaderSize)
}

// DecompressedSize returns the original size recorded in the header at the
// start of b, so the output buffer can be sized before decoding.
func DecompressedSize(b []byte) (uint32, error) {
	if len(b) < HeaderSize {
		return 0, &Error{
			Kind:  TruncatedInput,
			Block: -1,
			Want:  HeaderSize,
			Got:   int64(len(b)),
			Err:   &blocks.OverrunError{Need: HeaderSize, Have: len(b)},
		}
	}

	h, err := parseHeader(b)
	if err != nil {
		return 0, err
	}

	return h.OriginalSize, nil
}

func parseHeader(b []byte) (*Header, error) {
	if string(b[:len(Magic)]) != Magic {
		return nil, &Error{Kind: MalformedHeader, Block: -1, Err: fmt.Errorf("bad magic %q", b[:len(Magic)])}
	}

	h := &Header{
		OriginalSize:   binary.Uint32(b, 4),
		CompressedSize: binary.Uint32(b, 8),
		BlockSize:      binary.Uint32(b, 12),
		BlockCount:     binary.Uint32(b, 16),
	}

	for i := range h.Reserved {
		h.Reserved[i] = binary.Uint32(b, 20+4*i)
	}

	return h, nil
}

// MarshalBinary encodes the header, magic included.
func (h *Header) MarshalBinary() ([]byte, error) {
	b := make([]byte, HeaderSize)

	copy(b, Magic)
	binary.PutUint32(b, 4, h.OriginalSize)
	binary.PutUint32(b, 8, h.CompressedSize)
	binary.PutUint32(b, 12, h.BlockSize)
	binary.PutUint32(b, 16, h.BlockCount)

	for i, v := range h.Reserved {
		binary.PutUint32(b, 20+4*i, v)
	}

	return b, nil
}

// TableSize is the encoded size of the block size table.
func (h *Header) TableSize() int64 {
	return 4 * int64(h.BlockCount)
}
