// Package gf implements the bit-level primitives RFC 5297 builds on: XOR
// over byte strings, ISO/IEC 7816-4 padding to a single block, and doubling
// in GF(2^128) under the polynomial x^128 + x^7 + x^2 + x + 1.
package gf

// BlockSize is the width of a single GF(2^128) element, in bytes.
const BlockSize = 16

// XOR returns a ⊕ b, truncated to len(a). It requires len(a) <= len(b).
func XOR(a, b []byte) []byte {
	if len(a) > len(b) {
		panic("gf: XOR requires len(a) <= len(b)")
	}
	out := make([]byte, len(a))
	for i := range a {
		out[i] = a[i] ^ b[i]
	}
	return out
}

// XOREnd returns a copy of a with its trailing len(b) bytes XORed with b.
// It requires len(a) >= len(b).
func XOREnd(a, b []byte) []byte {
	if len(a) < len(b) {
		panic("gf: XOREnd requires len(a) >= len(b)")
	}
	out := make([]byte, len(a))
	copy(out, a)
	off := len(a) - len(b)
	for i := range b {
		out[off+i] ^= b[i]
	}
	return out
}

// Pad applies ISO/IEC 7816-4 padding: s followed by 0x80, followed by
// zero bytes up to BlockSize. It requires len(s) < BlockSize.
func Pad(s []byte) [BlockSize]byte {
	if len(s) >= BlockSize {
		panic("gf: Pad requires len(s) < BlockSize")
	}
	var out [BlockSize]byte
	copy(out[:], s)
	out[len(s)] = 0x80
	return out
}

// ShiftLeft1 performs a big-endian left shift by one bit across block,
// returning the bit shifted out of the most significant end.
func ShiftLeft1(block [BlockSize]byte) (shifted [BlockSize]byte, carryOut byte) {
	carry := byte(0)
	for i := BlockSize - 1; i >= 0; i-- {
		shifted[i] = (block[i] << 1) | carry
		carry = block[i] >> 7
	}
	return shifted, carry
}

// Double computes the GF(2^128) doubling used by CMAC subkey derivation and
// S2V chaining. The carry handling is constant-time: a mask derived from the
// carry bit via two's-complement negation is unconditionally XORed into the
// last byte, rather than branching on the carry.
func Double(block [BlockSize]byte) [BlockSize]byte {
	shifted, carry := ShiftLeft1(block)
	mask := byte(0 - carry) // 0xFF if carry == 1, 0x00 if carry == 0
	shifted[BlockSize-1] ^= 0x87 & mask
	return shifted
}
