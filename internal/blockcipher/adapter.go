package blockcipher

import "crypto/cipher"

// AsCipherBlock presents an Instance as a crypto/cipher.Block so it can feed
// an external CMAC engine, which is typed against the standard library
// interface. SIV never decrypts a single block directly (CTR mode only ever
// encrypts counter values), so Decrypt is unreachable in normal operation
// and panics rather than silently doing the wrong thing.
func AsCipherBlock(inst Instance) cipher.Block {
	return &blockAdapter{inst: inst}
}

type blockAdapter struct {
	inst Instance
}

func (b *blockAdapter) BlockSize() int { return b.inst.BlockSize() }

func (b *blockAdapter) Encrypt(dst, src []byte) { b.inst.Encrypt(dst, src) }

func (b *blockAdapter) Decrypt(dst, src []byte) {
	panic("blockcipher: Decrypt is not supported, SIV is encrypt-only at the block level")
}
