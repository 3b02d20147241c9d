package lz4p

import (
	"fmt"

	"github.com/pierrec/lz4/v4"
)

// Codec decompresses individual blocks.
type Codec interface {
	// DecodeFast decodes src, which must expand to exactly len(dst) bytes,
	// and returns the number of source bytes consumed.
	DecodeFast(dst, src []byte) (int, error)

	// DecodeSafe decodes src into dst and returns the number of bytes
	// written. It must never write past len(dst), whatever src contains.
	DecodeSafe(dst, src []byte) (int, error)
}

// LZ4 is the block codec used by LZ4P containers.
var LZ4 Codec = lz4Codec{}

type lz4Codec struct{}

// DecodeFast always consumes the whole source: a block whose compressed
// length is wrong either fails to decode or expands to the wrong size.
func (lz4Codec) DecodeFast(dst, src []byte) (int, error) {
	n, err := lz4.UncompressBlock(src, dst)
	if err != nil {
		return 0, err
	}

	if n != len(dst) {
		return 0, fmt.Errorf("block expanded to %d bytes, want %d", n, len(dst))
	}

	return len(src), nil
}

func (lz4Codec) DecodeSafe(dst, src []byte) (int, error) {
	return lz4.UncompressBlock(src, dst)
}
