// Package ctrstream generates the SIV keystream: RFC 5297 §2.5's variant of
// CTR mode, seeded by the synthetic IV with its two top bits cleared so a
// single message's counter never carries into the upper 64 bits.
package ctrstream

import (
	"encoding/binary"

	"github.com/emberforge/siv/internal/blockcipher"
	"github.com/emberforge/siv/internal/gf"
)

// Generate returns nb*16 bytes of keystream derived from iv under ctrKey.
// The caller truncates the result to the plaintext/ciphertext length.
func Generate(factory blockcipher.Factory, ctrKey []byte, iv [gf.BlockSize]byte, nb int) ([]byte, error) {
	if nb == 0 {
		return nil, nil
	}

	inst, err := factory.New(ctrKey)
	if err != nil {
		return nil, err
	}

	var q [gf.BlockSize]byte
	copy(q[:], iv[:])
	q[8] &= 0x7f
	q[12] &= 0x7f

	c0 := binary.BigEndian.Uint64(q[8:16])

	out := make([]byte, nb*gf.BlockSize)
	var block [gf.BlockSize]byte
	copy(block[:], q[:])
	for i := 0; i < nb; i++ {
		binary.BigEndian.PutUint64(block[8:16], c0+uint64(i))
		inst.Encrypt(out[i*gf.BlockSize:(i+1)*gf.BlockSize], block[:])
	}

	return out, nil
}
