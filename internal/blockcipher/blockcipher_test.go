package blockcipher

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAESBlockSize(t *testing.T) {
	require.Equal(t, BlockSize, AES().BlockSize())
}

func TestAESRejectsBadKeyLength(t *testing.T) {
	_, err := AES().New(make([]byte, 7))
	require.Error(t, err)
}

func TestAESEncryptKnownVector(t *testing.T) {
	// FIPS-197 AES-128 test vector.
	key := []byte{
		0x00, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07,
		0x08, 0x09, 0x0a, 0x0b, 0x0c, 0x0d, 0x0e, 0x0f,
	}
	plaintext := []byte{
		0x00, 0x11, 0x22, 0x33, 0x44, 0x55, 0x66, 0x77,
		0x88, 0x99, 0xaa, 0xbb, 0xcc, 0xdd, 0xee, 0xff,
	}
	want := []byte{
		0x69, 0xc4, 0xe0, 0xd8, 0x6a, 0x7b, 0x04, 0x30,
		0xd8, 0xcd, 0xb7, 0x80, 0x70, 0xb4, 0xc5, 0x5a,
	}

	inst, err := AES().New(key)
	require.NoError(t, err)

	got := make([]byte, BlockSize)
	inst.Encrypt(got, plaintext)
	require.Equal(t, want, got)
}

func TestAsCipherBlockEncryptMatches(t *testing.T) {
	key := make([]byte, 16)
	inst, err := AES().New(key)
	require.NoError(t, err)

	block := AsCipherBlock(inst)
	require.Equal(t, BlockSize, block.BlockSize())

	src := make([]byte, BlockSize)
	direct := make([]byte, BlockSize)
	viaAdapter := make([]byte, BlockSize)
	inst.Encrypt(direct, src)
	block.Encrypt(viaAdapter, src)
	require.Equal(t, direct, viaAdapter)
}

func TestAsCipherBlockDecryptPanics(t *testing.T) {
	inst, err := AES().New(make([]byte, 16))
	require.NoError(t, err)
	block := AsCipherBlock(inst)

	require.Panics(t, func() {
		block.Decrypt(make([]byte, BlockSize), make([]byte, BlockSize))
	})
}
