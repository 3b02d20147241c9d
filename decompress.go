package lz4p

import (
	"context"
	"io"

	"github.com/customerio/lz4p/blocks"
)

// Decompress decodes a container held entirely in memory.
func Decompress(src []byte) ([]byte, error) {
	return NewDecoder(blocks.NewBufferedCursor(src)).Decompress()
}

// DecompressReader decodes a container while it is being read from r.
// Cancelling ctx aborts the decode with an InputOverrun error.
func DecompressReader(ctx context.Context, r io.Reader) ([]byte, error) {
	refiller := blocks.NewFastRefiller(ctx, r, blocks.DefaultChunkSize)
	defer refiller.Close()

	return NewDecoder(blocks.NewCursor(refiller)).Decompress()
}
