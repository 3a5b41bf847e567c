package siv

import (
	"crypto/subtle"
	"math"

	"github.com/emberforge/siv/internal/blockcipher"
	"github.com/emberforge/siv/internal/ctrstream"
	"github.com/emberforge/siv/internal/gf"
	"github.com/emberforge/siv/internal/s2v"
)

// TagSize is the size of the synthetic IV / authentication tag, and the
// amount by which Seal always grows its input.
const TagSize = gf.BlockSize

// AES returns the default block-cipher Factory, backed by crypto/aes.
func AES() blockcipher.Factory { return blockcipher.AES() }

// SivContext is a configured SIV instance. It is safe for concurrent use:
// the only state it carries is the Factory it was built with, which must
// itself be stateless, and every Seal/Open call keys its own block-cipher
// instances rather than sharing one.
type SivContext struct {
	factory blockcipher.Factory
}

// New constructs a SivContext over factory. It fails at construction if
// factory's block size is not 16 bytes — RFC 5297's S2V and CTR components
// are only defined over a 128-bit block cipher.
func New(factory blockcipher.Factory) (*SivContext, error) {
	if factory.BlockSize() != gf.BlockSize {
		return nil, errInvalidBlockSize
	}
	return &SivContext{factory: factory}, nil
}

// Seal computes the synthetic IV over (macKey, plaintext, ad...) and
// encrypts plaintext under ctrKey in CTR mode seeded by that IV, returning
// iv‖ciphertext. ad is ordered and order-significant: Seal(k1, k2, pt, a, b)
// and Seal(k1, k2, pt, b, a) produce different output.
func (s *SivContext) Seal(ctrKey, macKey, plaintext []byte, ad ...[]byte) ([]byte, error) {
	if len(plaintext) > math.MaxInt-TagSize {
		return nil, invalidInputError("siv: plaintext too large")
	}

	iv, err := s2v.Compute(s.factory, macKey, plaintext, ad)
	if err != nil {
		return nil, translateComputeError(err)
	}

	nb := numBlocks(len(plaintext))
	ks, err := ctrstream.Generate(s.factory, ctrKey, iv, nb)
	if err != nil {
		return nil, invalidKeyError(err)
	}

	out := make([]byte, TagSize+len(plaintext))
	copy(out, iv[:])
	for i, p := range plaintext {
		out[TagSize+i] = p ^ ks[i]
	}

	return out, nil
}

// Open splits in into a tag and ciphertext, decrypts under ctrKey, and
// recomputes the tag over (macKey, recovered plaintext, ad...) to verify it
// against the tag carried in in, in constant time. It returns the plaintext
// only if the tag matches; on any failure it returns no plaintext bytes.
func (s *SivContext) Open(ctrKey, macKey, in []byte, ad ...[]byte) ([]byte, error) {
	if len(in) < TagSize {
		return nil, shortCiphertextError()
	}

	var iv [gf.BlockSize]byte
	copy(iv[:], in[:TagSize])
	ciphertext := in[TagSize:]

	nb := numBlocks(len(ciphertext))
	ks, err := ctrstream.Generate(s.factory, ctrKey, iv, nb)
	if err != nil {
		return nil, invalidKeyError(err)
	}

	plaintext := make([]byte, len(ciphertext))
	for i, c := range ciphertext {
		plaintext[i] = c ^ ks[i]
	}

	computed, err := s2v.Compute(s.factory, macKey, plaintext, ad)
	if err != nil {
		clearBytes(plaintext)
		return nil, translateComputeError(err)
	}

	if subtle.ConstantTimeCompare(iv[:], computed[:]) != 1 {
		clearBytes(plaintext)
		return nil, unauthenticError()
	}

	return plaintext, nil
}

func numBlocks(n int) int {
	if n == 0 {
		return 0
	}
	return (n + gf.BlockSize - 1) / gf.BlockSize
}

func clearBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

// translateComputeError maps internal/s2v's errors onto the public Kind
// taxonomy: a too-long AD vector is invalid-input, anything else bubbling
// up from the CMAC engine or block cipher is invalid-key.
func translateComputeError(err error) *Error {
	if err == s2v.ErrTooManyFields {
		return invalidInputError(err.Error())
	}
	return invalidKeyError(err)
}
