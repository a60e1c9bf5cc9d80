package pack

import (
	"encoding/hex"
	"fmt"
)

// Uint32Shift splits v into big-endian bytes with mask-and-shift arithmetic.
func Uint32Shift(v uint32) [4]byte {
	return [4]byte{
		byte((v & 0xff000000) >> 24),
		byte((v & 0x00ff0000) >> 16),
		byte((v & 0x0000ff00) >> 8),
		byte(v & 0x000000ff),
	}
}

// Uint32FromShift is the inverse of Uint32Shift.
func Uint32FromShift(b [4]byte) uint32 {
	return uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3])
}

// Uint32Hex produces the big-endian bytes of v by formatting it as eight
// zero-padded hex digits and decoding that string.
func Uint32Hex(v uint32) ([]byte, error) {
	b, err := hex.DecodeString(fmt.Sprintf("%08x", v))
	if err != nil {
		return nil, fmt.Errorf("pack: hex round trip: %w", err)
	}
	return b, nil
}
