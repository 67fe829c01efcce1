package jsstr

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

const hashChunk = 256

// Hash returns the XXHash of the code units in little-endian order. Equal
// content hashes equally whatever its storage encoding.
func (v View) Hash() uint64 {
	d := xxhash.New()
	var buf [hashChunk]byte
	n := 0
	for u := range v.Units() {
		binary.LittleEndian.PutUint16(buf[n:], u)
		n += 2
		if n == len(buf) {
			_, _ = d.Write(buf[:n])
			n = 0
		}
	}
	_, _ = d.Write(buf[:n])
	return d.Sum64()
}

// Hash returns the XXHash of the code units of s.
func (s String) Hash() uint64 {
	return s.View().Hash()
}
