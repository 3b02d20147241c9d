package binary

import (
	"encoding/binary"
	"io"
)

// PutUint32 encodes num little-endian into b[offset:offset+4].
func PutUint32(b []byte, offset int, num uint32) {
	binary.LittleEndian.PutUint32(b[offset:offset+4], num)
}

func WriteUint32(w io.Writer, num uint32) error {
	return binary.Write(w, binary.LittleEndian, num)
}

func WriteUint32s(w io.Writer, nums []uint32) error {
	return binary.Write(w, binary.LittleEndian, nums)
}
