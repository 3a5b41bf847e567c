package keyring

import (
	"fmt"

	"github.com/awnumar/memguard"

	"github.com/emberforge/siv"
)

// Guard holds a CTR/MAC key pair in memguard-locked buffers and exposes
// Seal/Open wrappers that copy the keys out for exactly the duration of one
// siv call and wipe the copy on every exit path, satisfying the contract
// spec'd for higher-level key containers: the core itself never retains key
// material past a call, and this is the layer responsible for making sure
// the bytes it hands the core don't linger afterward either.
type Guard struct {
	ctx    *siv.SivContext
	ctrBuf *memguard.LockedBuffer
	macBuf *memguard.LockedBuffer
}

// NewGuard locks ctrKey and macKey into protected memory and binds them to
// ctx. The caller's original slices are not retained by Guard:
// memguard.NewBufferFromBytes moves their contents into protected memory
// and wipes the source slices, so ctrKey and macKey read as zeros once
// NewGuard returns.
func NewGuard(ctx *siv.SivContext, ctrKey, macKey []byte) (*Guard, error) {
	if len(ctrKey) == 0 || len(macKey) == 0 {
		return nil, fmt.Errorf("keyring: ctrKey and macKey must be non-empty")
	}
	return &Guard{
		ctx:    ctx,
		ctrBuf: memguard.NewBufferFromBytes(ctrKey),
		macBuf: memguard.NewBufferFromBytes(macKey),
	}, nil
}

// Seal copies the guarded keys out, calls siv.Seal, and wipes the copies
// before returning, on both the success and error paths.
func (g *Guard) Seal(plaintext []byte, ad ...[]byte) ([]byte, error) {
	ctrKey := append([]byte(nil), g.ctrBuf.Bytes()...)
	macKey := append([]byte(nil), g.macBuf.Bytes()...)
	defer wipe(ctrKey, macKey)

	return g.ctx.Seal(ctrKey, macKey, plaintext, ad...)
}

// Open mirrors Seal for decryption.
func (g *Guard) Open(in []byte, ad ...[]byte) ([]byte, error) {
	ctrKey := append([]byte(nil), g.ctrBuf.Bytes()...)
	macKey := append([]byte(nil), g.macBuf.Bytes()...)
	defer wipe(ctrKey, macKey)

	return g.ctx.Open(ctrKey, macKey, in, ad...)
}

// Destroy wipes both guarded key buffers. Seal and Open must not be called
// afterward.
func (g *Guard) Destroy() {
	g.ctrBuf.Destroy()
	g.macBuf.Destroy()
}

func wipe(buffers ...[]byte) {
	for _, b := range buffers {
		for i := range b {
			b[i] = 0
		}
	}
}
