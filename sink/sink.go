// Package sink stores decoded output, either as is or re-framed with a
// streaming compressor.
package sink

import (
	"bytes"
	"io"
	"strings"

	"github.com/golang/snappy"
	"github.com/klauspost/compress/zstd"
	"github.com/pkg/errors"
)

type Format int

const (
	// Raw writes the decoded bytes unchanged.
	Raw Format = iota

	// Snappy writes the snappy framing format.
	Snappy

	// Zstd writes a zstd frame.
	Zstd
)

// ErrBadFormat is returned for unknown format names.
var ErrBadFormat = errors.New("invalid output format")

var (
	formatToString = map[Format]string{
		Raw:    "raw",
		Snappy: "snappy",
		Zstd:   "zstd",
	}

	stringToFormat = map[string]Format{
		"raw":    Raw,
		"snappy": Snappy,
		"zstd":   Zstd,
	}
)

func (f Format) String() string {
	name, ok := formatToString[f]
	if !ok {
		return "unknown format"
	}

	return name
}

// ParseFormat converts a format name to a Format.
func ParseFormat(s string) (Format, error) {
	f, ok := stringToFormat[strings.ToLower(s)]
	if !ok {
		return 0, errors.Wrapf(ErrBadFormat, "%q", s)
	}

	return f, nil
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }

// NewWriter returns a writer storing everything written to it in format f.
// Close flushes the framing but leaves w open.
func NewWriter(w io.Writer, f Format) (io.WriteCloser, error) {
	switch f {
	case Raw:
		return nopCloser{w}, nil
	case Snappy:
		return snappy.NewBufferedWriter(w), nil
	case Zstd:
		enc, err := zstd.NewWriter(w)
		if err != nil {
			return nil, errors.Wrap(err, "zstd writer")
		}

		return enc, nil
	}

	return nil, errors.Wrapf(ErrBadFormat, "%d", int(f))
}

// NewReader undoes NewWriter.
func NewReader(r io.Reader, f Format) (io.ReadCloser, error) {
	switch f {
	case Raw:
		return io.NopCloser(r), nil
	case Snappy:
		return io.NopCloser(snappy.NewReader(r)), nil
	case Zstd:
		dec, err := zstd.NewReader(r)
		if err != nil {
			return nil, errors.Wrap(err, "zstd reader")
		}

		return dec.IOReadCloser(), nil
	}

	return nil, errors.Wrapf(ErrBadFormat, "%d", int(f))
}

// Write stores data in w using format f and returns the number of bytes
// that reached w.
func Write(w io.Writer, f Format, data []byte) (int64, error) {
	cw := &countingWriter{w: w}

	sw, err := NewWriter(cw, f)
	if err != nil {
		return 0, err
	}

	if _, err := io.Copy(sw, bytes.NewReader(data)); err != nil {
		sw.Close()
		return cw.n, errors.Wrapf(err, "write %s", f)
	}

	if err := sw.Close(); err != nil {
		return cw.n, errors.Wrapf(err, "flush %s", f)
	}

	return cw.n, nil
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
