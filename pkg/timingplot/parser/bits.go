package parser

import "fmt"

// PackBits packs bits into an unsigned integer, first element most
// significant. Only the low bit of each element is used.
func PackBits(bits []uint8) uint64 {
	var v uint64
	for _, b := range bits {
		v = v<<1 | uint64(b&1)
	}
	return v
}

// FormatHex formats v as a 0x-prefixed literal zero padded to one digit per
// four bits. A 48-bit pattern yields 14 characters.
func FormatHex(v uint64, bitCount int) string {
	digits := (bitCount + 3) / 4
	return fmt.Sprintf("0x%0*x", digits, v)
}
