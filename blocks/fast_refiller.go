package blocks

import (
	"context"
	"io"
	"sync"
)

type read struct {
	bytes []byte
	err   error
}

// FastRefiller is a Refiller which reads ahead from the underlying reader
// in a separate goroutine, so input is usually already buffered by the time
// the cursor asks for it.
//
// Cancelling the context makes every following Refill fail, which is how a
// caller aborts a decode that is blocked on slow input.
type FastRefiller struct {
	ctx     context.Context
	reads   chan read
	readErr error
	done    chan struct{}
	once    sync.Once
	reader  io.Reader
	chunk   int
}

func NewFastRefiller(ctx context.Context, r io.Reader, chunk int) *FastRefiller {
	if chunk <= 0 {
		chunk = DefaultChunkSize
	}

	refiller := &FastRefiller{
		ctx:    ctx,
		reads:  make(chan read, 20),
		done:   make(chan struct{}),
		reader: r,
		chunk:  chunk,
	}

	go refiller.readAhead()

	return refiller
}

// Implements the Refiller interface.
func (r *FastRefiller) Refill(buf []byte) ([]byte, error) {
	// If we read with an error, keep returning it
	if r.readErr != nil {
		return buf, r.readErr
	}

	if err := r.ctx.Err(); err != nil {
		r.readErr = err
		return buf, err
	}

	select {
	case <-r.ctx.Done():
		r.readErr = r.ctx.Err()
		return buf, r.readErr

	case read, ok := <-r.reads:
		if !ok {
			r.readErr = io.EOF
			return buf, io.EOF
		}

		r.readErr = read.err

		if len(read.bytes) == 0 {
			return buf, read.err
		}

		return append(buf, read.bytes...), nil
	}
}

// Close stops the read ahead goroutine. It is safe to call more than once.
func (r *FastRefiller) Close() error {
	r.once.Do(func() {
		close(r.done)
	})

	return nil
}

func (r *FastRefiller) readAhead() {
	defer close(r.reads)

	var empty int

	for {
		bytes := make([]byte, r.chunk)
		n, err := r.reader.Read(bytes)

		if n == 0 && err == nil {
			if empty++; empty < maxConsecutiveEmptyReads {
				continue
			}

			err = io.ErrNoProgress
		}

		empty = 0

		select {
		case r.reads <- read{bytes[:n], err}:
		case <-r.done:
			return
		case <-r.ctx.Done():
			return
		}

		if err != nil {
			return
		}
	}
}
