// Package lz4ptest builds LZ4P containers for tests.
package lz4ptest

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/Pallinder/go-randomdata"
	"github.com/customerio/lz4p"
	"github.com/customerio/lz4p/binary"
	"github.com/pierrec/lz4/v4"
)

// Container is an unencoded container. Table is derived from Bodies when
// nil, and the header's CompressedSize from the bodies when zero.
type Container struct {
	Header lz4p.Header
	Table  []uint32
	Bodies [][]byte
}

// Bytes encodes the container.
func (c *Container) Bytes() []byte {
	h := c.Header
	table := c.Table

	if table == nil {
		table = make([]uint32, len(c.Bodies))
		for i, body := range c.Bodies {
			table[i] = uint32(len(body))
		}
	}

	if h.CompressedSize == 0 {
		for _, body := range c.Bodies {
			h.CompressedSize += uint32(len(body))
		}
	}

	head, _ := h.MarshalBinary()

	buf := bytes.NewBuffer(head)
	binary.WriteUint32s(buf, table)

	for _, body := range c.Bodies {
		buf.Write(body)
	}

	return buf.Bytes()
}

// Block compresses src as a single LZ4 block.
func Block(src []byte) ([]byte, error) {
	dst := make([]byte, lz4.CompressBlockBound(len(src)))

	n, err := lz4.CompressBlock(src, dst, nil)
	if err != nil {
		return nil, err
	}

	return dst[:n], nil
}

// Split compresses data in blockSize chunks.
func Split(data []byte, blockSize int) (*Container, error) {
	if blockSize <= 0 {
		return nil, fmt.Errorf("lz4ptest: invalid block size %d", blockSize)
	}

	c := &Container{
		Header: lz4p.Header{
			OriginalSize: uint32(len(data)),
			BlockSize:    uint32(blockSize),
		},
	}

	for len(data) > 0 {
		n := blockSize
		if n > len(data) {
			n = len(data)
		}

		body, err := Block(data[:n])
		if err != nil {
			return nil, err
		}

		c.Bodies = append(c.Bodies, body)
		data = data[n:]
	}

	c.Header.BlockCount = uint32(len(c.Bodies))

	return c, nil
}

// Pack encodes data as a container with the given block size.
func Pack(data []byte, blockSize int) ([]byte, error) {
	c, err := Split(data, blockSize)
	if err != nil {
		return nil, err
	}

	return c.Bytes(), nil
}

// Payload returns n bytes of random, mildly compressible text.
func Payload(n int) []byte {
	var b strings.Builder

	for b.Len() < n {
		b.WriteString(randomdata.Paragraph())
		b.WriteString(randomdata.Email())
		b.WriteByte('\n')
	}

	return []byte(b.String()[:n])
}
