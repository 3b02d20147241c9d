package blocks

import (
	"errors"
	"io"
)

const (
	// DefaultChunkSize is the amount of input requested per refill.
	DefaultChunkSize = 64 * 1024

	maxConsecutiveEmptyReads = 100
)

var errShrunk = errors.New("blocks: refill dropped buffered input")

// Refiller appends more input to buf and returns the extended slice.
//
// Returning without error and without appending anything means the input
// has ended. Bytes already in buf must be left untouched.
type Refiller interface {
	Refill(buf []byte) ([]byte, error)
}

// RefillFunc adapts an ordinary function to the Refiller interface.
type RefillFunc func(buf []byte) ([]byte, error)

func (f RefillFunc) Refill(buf []byte) ([]byte, error) {
	return f(buf)
}

// ReaderRefiller refills from an io.Reader, chunk bytes at a time.
type ReaderRefiller struct {
	reader io.Reader
	chunk  int
}

func NewReaderRefiller(r io.Reader, chunk int) *ReaderRefiller {
	if chunk <= 0 {
		chunk = DefaultChunkSize
	}

	return &ReaderRefiller{r, chunk}
}

// Refill reads at most one chunk. Readers that keep returning (0, nil) are
// retried a bounded number of times before io.ErrNoProgress is reported.
func (r *ReaderRefiller) Refill(buf []byte) ([]byte, error) {
	buf = grow(buf, r.chunk)
	start := len(buf)

	for i := 0; i < maxConsecutiveEmptyReads; i++ {
		n, err := r.reader.Read(buf[start : start+r.chunk])
		buf = buf[:start+n]

		if n > 0 {
			return buf, nil
		}

		if err != nil {
			return buf, err
		}
	}

	return buf, io.ErrNoProgress
}

// grow makes room for at least n more bytes past len(buf).
func grow(buf []byte, n int) []byte {
	if cap(buf)-len(buf) >= n {
		return buf
	}

	return append(buf, make([]byte, n)...)[:len(buf)]
}
