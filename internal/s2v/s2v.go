// Package s2v implements the String-to-Vector pseudorandom function from
// RFC 5297 §2.4: it folds an ordered vector of associated-data strings and
// a final plaintext string into a single 16-byte synthetic IV, using an
// external CMAC engine over a caller-supplied block cipher.
package s2v

import (
	"errors"

	"github.com/aead/cmac"

	"github.com/emberforge/siv/internal/blockcipher"
	"github.com/emberforge/siv/internal/gf"
)

// MaxAssociatedData is the largest number of associated-data fields S2V
// accepts. RFC 5297's security argument does not extend past this many
// dbl/CMAC folds.
const MaxAssociatedData = 126

// ErrTooManyFields is returned when the associated-data vector exceeds
// MaxAssociatedData elements.
var ErrTooManyFields = errors.New("s2v: associated data vector exceeds 126 elements")

// Compute returns CMAC-S2V(macKey, plaintext, ad...) as defined in
// RFC 5297 §2.4. factory supplies the block cipher keyed with macKey.
func Compute(factory blockcipher.Factory, macKey, plaintext []byte, ad [][]byte) ([gf.BlockSize]byte, error) {
	var zero [gf.BlockSize]byte

	if len(ad) > MaxAssociatedData {
		return zero, ErrTooManyFields
	}

	inst, err := factory.New(macKey)
	if err != nil {
		return zero, err
	}

	mac, err := cmac.New(blockcipher.AsCipherBlock(inst))
	if err != nil {
		return zero, err
	}

	d, err := sum(mac, zero[:])
	if err != nil {
		return zero, err
	}

	for _, a := range ad {
		d = gf.Double(d)
		adMAC, err := sum(mac, a)
		if err != nil {
			return zero, err
		}
		d = xorBlock(d, adMAC)
	}

	if len(plaintext) >= gf.BlockSize {
		t := gf.XOREnd(plaintext, d[:])
		tag, err := sum(mac, t)
		if err != nil {
			return zero, err
		}
		return tag, nil
	}

	d = gf.Double(d)
	padded := gf.Pad(plaintext)
	t := xorBlock(d, padded)
	tag, err := sum(mac, t[:])
	if err != nil {
		return zero, err
	}
	return tag, nil
}

// sum resets mac, writes message, and returns its 16-byte tag.
func sum(mac interface {
	Reset()
	Write(p []byte) (int, error)
	Sum(b []byte) []byte
}, message []byte) ([gf.BlockSize]byte, error) {
	var out [gf.BlockSize]byte
	mac.Reset()
	if _, err := mac.Write(message); err != nil {
		return out, err
	}
	copy(out[:], mac.Sum(nil))
	return out, nil
}

func xorBlock(a, b [gf.BlockSize]byte) [gf.BlockSize]byte {
	var out [gf.BlockSize]byte
	copy(out[:], gf.XOR(a[:], b[:]))
	return out
}
