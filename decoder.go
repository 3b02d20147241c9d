package lz4p

import (
	"errors"

	"github.com/customerio/lz4p/blocks"
	log "github.com/sirupsen/logrus"
)

var errDecoderUsed = errors.New("lz4p: decoder already used")

// Decoder walks the blocks of a single container.
//
// A Decoder owns its cursor for the duration of the decode and must not be
// shared between goroutines.
type Decoder struct {
	// Codec decodes the individual blocks. NewDecoder sets it to LZ4.
	Codec Codec

	// Blocks is the number of blocks decoded so far.
	Blocks int

	in     *blocks.Cursor
	header *Header
	used   bool
}

func NewDecoder(in *blocks.Cursor) *Decoder {
	return &Decoder{Codec: LZ4, in: in}
}

// Header parses the container header on first use and returns it.
func (d *Decoder) Header() (*Header, error) {
	if d.header != nil {
		return d.header, nil
	}

	h, err := ReadHeader(d.in)
	if err != nil {
		return nil, err
	}

	d.header = h

	return h, nil
}

// DecodeInto decodes every block into dst and returns the number of bytes
// written. dst should be Header().OriginalSize bytes long. On error nothing
// written to dst should be trusted.
func (d *Decoder) DecodeInto(dst []byte) (int, error) {
	if d.used {
		return 0, errDecoderUsed
	}

	d.used = true

	h, err := d.Header()
	if err != nil {
		return 0, err
	}

	table, err := readTable(d.in, h.BlockCount)
	if err != nil {
		return 0, err
	}

	blockSize := int(h.BlockSize)

	var total int

	for n, size := range table {
		src, err := d.in.Peek(int(size))
		if err != nil {
			return 0, &Error{Kind: InputOverrun, Block: n, Want: int64(size), Got: int64(d.in.Len()), Err: err}
		}

		if n < len(table)-1 {
			if len(dst)-total < blockSize {
				return 0, &Error{Kind: BlockDecodeError, Block: n, Want: int64(blockSize), Got: int64(len(dst) - total), Err: ErrShortOutput}
			}

			consumed, err := d.Codec.DecodeFast(dst[total:total+blockSize], src)
			if err != nil {
				return 0, &Error{Kind: BlockDecodeError, Block: n, Err: err}
			}

			if consumed != int(size) {
				return 0, &Error{Kind: BlockDecodeError, Block: n, Want: int64(size), Got: int64(consumed), Err: ErrLengthMismatch}
			}

			total += blockSize
		} else {
			capacity := blockSize
			if rest := len(dst) - total; rest < capacity {
				capacity = rest
			}

			written, err := d.Codec.DecodeSafe(dst[total:total+capacity], src)
			if err != nil {
				return 0, &Error{Kind: BlockDecodeError, Block: n, Err: err}
			}

			if written < 0 || written > capacity {
				return 0, &Error{Kind: BlockDecodeError, Block: n, Want: int64(capacity), Got: int64(written), Err: ErrShortOutput}
			}

			total += written
		}

		if err := d.in.Skip(int(size)); err != nil {
			return 0, &Error{Kind: InputOverrun, Block: n, Err: err}
		}

		d.Blocks++

		log.Debugf("lz4p: block %d/%d: %d -> %d bytes", n+1, len(table), size, total)
	}

	return total, nil
}

// Decompress allocates a buffer of the original size, decodes into it and
// checks that the whole original size was produced.
func (d *Decoder) Decompress() ([]byte, error) {
	h, err := d.Header()
	if err != nil {
		return nil, err
	}

	dst := make([]byte, h.OriginalSize)

	n, err := d.DecodeInto(dst)
	if err != nil {
		return nil, err
	}

	if n != len(dst) {
		return nil, &Error{
			Kind:  BlockDecodeError,
			Block: int(h.BlockCount) - 1,
			Want:  int64(len(dst)),
			Got:   int64(n),
			Err:   ErrSizeMismatch,
		}
	}

	return dst, nil
}
