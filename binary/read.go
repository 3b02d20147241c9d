package binary

import (
	"encoding/binary"
)

// Uint32 decodes the little-endian uint32 stored at b[offset:offset+4].
func Uint32(b []byte, offset int) uint32 {
	return binary.LittleEndian.Uint32(b[offset : offset+4])
}

// Uint32s decodes len(dst) consecutive little-endian uint32 values from b.
// b must hold at least 4*len(dst) bytes.
func Uint32s(dst []uint32, b []byte) []uint32 {
	_ = b[:4*len(dst)]

	for i := range dst {
		dst[i] = binary.LittleEndian.Uint32(b[4*i:])
	}

	return dst
}
