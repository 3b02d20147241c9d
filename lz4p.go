/*
Package lz4p decodes LZ4P containers.

An LZ4P container is a 32 byte header, a table holding the compressed length
of every block, and the compressed blocks themselves:

	[4:"LZ4P"][uint32:original_size][uint32:compressed_size][uint32:block_size]
	[uint32:block_count][12:reserved]
	[uint32 * block_count:compressed lengths]
	[bytes:block 0][bytes:block 1]...

All integers are little-endian. Every block except the last one expands to
exactly block_size bytes; the last one expands to at most block_size.

Input is consumed through a blocks.Cursor, so a container can either be
decoded from memory or pulled incrementally from a Refiller.
*/
package lz4p

const (
	// Magic is the tag every container starts with.
	Magic = "LZ4P"

	// HeaderSize is the encoded size of Header.
	HeaderSize = 32
)
