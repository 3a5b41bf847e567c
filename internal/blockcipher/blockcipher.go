// Package blockcipher defines the narrow single-block-encrypt contract that
// the SIV core consumes. It treats the underlying 128-bit block cipher as an
// external collaborator: the core never hardcodes a particular cipher, it
// only asks a Factory for a freshly keyed Instance.
package blockcipher

import "crypto/aes"

// BlockSize is the only block size the core accepts.
const BlockSize = 16

// Instance is a keyed, single-block encryptor. It carries key schedule
// state and therefore must not be shared between concurrent callers without
// synchronization; Reset clears any per-message state while retaining the
// key, so a caller may reuse an Instance across several single-block
// encryptions within one S2V or CTR phase.
type Instance interface {
	// BlockSize reports the cipher's block size in bytes.
	BlockSize() int

	// Encrypt writes the encryption of src into dst. len(src) and len(dst)
	// must equal BlockSize.
	Encrypt(dst, src []byte)

	// Reset clears any per-message state. The key schedule survives.
	Reset()
}

// Factory yields fresh Instances. Implementations are expected to be
// stateless and safe for concurrent use.
type Factory interface {
	// New returns an Instance keyed with key. It fails if key is not an
	// accepted length for the underlying cipher.
	New(key []byte) (Instance, error)

	// BlockSize reports the block size an Instance produced by this
	// Factory will report, without needing a key first.
	BlockSize() int
}

type aesInstance struct {
	block cipherBlock
}

// cipherBlock is the subset of crypto/cipher.Block this file needs; kept
// local so this file does not need to import crypto/cipher.
type cipherBlock interface {
	BlockSize() int
	Encrypt(dst, src []byte)
}

func (a *aesInstance) BlockSize() int { return a.block.BlockSize() }

func (a *aesInstance) Encrypt(dst, src []byte) { a.block.Encrypt(dst, src) }

// Reset is a no-op for AES: ECB-style single-block encryption under
// crypto/aes carries no mutable state beyond the key schedule, which Reset
// must not disturb.
func (a *aesInstance) Reset() {}

type aesFactory struct{}

// AES is the default Factory, backed by crypto/aes. The block cipher itself
// is explicitly out of the core's scope (spec-wise it is "typically AES"),
// and every crypto primitive in this codebase's lineage reaches for
// crypto/aes directly rather than an ecosystem AES package, so this default
// binding does the same.
func AES() Factory { return aesFactory{} }

func (aesFactory) BlockSize() int { return BlockSize }

func (aesFactory) New(key []byte) (Instance, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return &aesInstance{block: block}, nil
}
