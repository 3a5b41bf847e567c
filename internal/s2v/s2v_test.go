package s2v

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/emberforge/siv/internal/blockcipher"
)

func hexBytes(t *testing.T, s string) []byte {
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	return b
}

// S2V(macKey, pt, ad) followed by CTR encryption reproduces RFC 5297
// Appendix A.1's tag; verifying the tag alone here isolates component D.
func TestComputeRFC5297_A1Tag(t *testing.T) {
	macKey := hexBytes(t, "fffefdfcfbfaf9f8f7f6f5f4f3f2f1f0")
	ad := hexBytes(t, "101112131415161718191a1b1c1d1e1f2021222324252627")
	plaintext := hexBytes(t, "112233445566778899aabbccddee")
	wantTag := hexBytes(t, "85632d07c6e8f37f950acd320a2ecc93")

	got, err := Compute(blockcipher.AES(), macKey, plaintext, [][]byte{ad})
	require.NoError(t, err)
	require.Equal(t, wantTag, got[:])
}

func TestComputeRFC5297_A2Tag(t *testing.T) {
	macKey := hexBytes(t, "7f7e7d7c7b7a79787776757473727170")
	ad1 := hexBytes(t, "00112233445566778899aabbccddeeff"+
		"deaddadadeaddadaffeeddccbbaa9988"+
		"7766554433221100")
	ad2 := hexBytes(t, "102030405060708090a0")
	nonce := hexBytes(t, "09f911029d74e35bd84156c5635688c0")
	plaintext := hexBytes(t, "7468697320697320736f6d6520706c61"+
		"696e7465787420746f20656e63727970"+
		"74207573696e67205349562d414553")
	wantTag := hexBytes(t, "7bdb6e3b432667eb06f4d14bff2fbd0f")

	got, err := Compute(blockcipher.AES(), macKey, plaintext, [][]byte{ad1, ad2, nonce})
	require.NoError(t, err)
	require.Equal(t, wantTag, got[:])
}

func TestComputeEmptyPlaintextEmptyAD(t *testing.T) {
	macKey := hexBytes(t, "fffefdfcfbfaf9f8f7f6f5f4f3f2f1f0")
	wantTag := hexBytes(t, "f2007a5beb2b8900c588a7adf599f172")

	got, err := Compute(blockcipher.AES(), macKey, nil, nil)
	require.NoError(t, err)
	require.Equal(t, wantTag, got[:])
}

func TestComputeRejectsTooManyFields(t *testing.T) {
	macKey := make([]byte, 16)
	ad := make([][]byte, MaxAssociatedData+1)
	for i := range ad {
		ad[i] = []byte{byte(i)}
	}

	_, err := Compute(blockcipher.AES(), macKey, []byte("x"), ad)
	require.ErrorIs(t, err, ErrTooManyFields)
}

func TestComputeAcceptsMaxFields(t *testing.T) {
	macKey := make([]byte, 16)
	ad := make([][]byte, MaxAssociatedData)
	for i := range ad {
		ad[i] = []byte{byte(i)}
	}

	_, err := Compute(blockcipher.AES(), macKey, []byte("x"), ad)
	require.NoError(t, err)
}

func TestComputeOrderSensitive(t *testing.T) {
	macKey := make([]byte, 16)
	a := []byte("alpha")
	b := []byte("beta")

	forward, err := Compute(blockcipher.AES(), macKey, []byte("pt"), [][]byte{a, b})
	require.NoError(t, err)
	reverse, err := Compute(blockcipher.AES(), macKey, []byte("pt"), [][]byte{b, a})
	require.NoError(t, err)

	require.NotEqual(t, forward, reverse)
}

func TestComputeInvalidKeyLength(t *testing.T) {
	_, err := Compute(blockcipher.AES(), make([]byte, 7), []byte("pt"), nil)
	require.Error(t, err)
}
