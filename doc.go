/*
Package siv implements the Synthetic Initialization Vector (SIV) mode of
authenticated encryption defined in RFC 5297, over a pluggable 128-bit
block cipher.

SIV is deterministic: identical (key pair, plaintext, associated data)
always produces identical output, and it is misuse resistant — accidental
key or nonce reuse degrades to leaking only whether the same plaintext was
sealed under the same associated data, rather than breaking confidentiality
outright as nonce-based AEAD modes do under nonce reuse.

The construction has two phases. S2V, a CMAC-based pseudorandom function,
folds an ordered vector of associated-data fields and the plaintext into a
16-byte synthetic IV that doubles as the authentication tag. CTR mode, seeded
by that IV, generates the keystream that is XORed with the plaintext. Open
recomputes the IV from the decrypted plaintext and compares it against the
one carried in the ciphertext in constant time.

Basic usage:

	ctx, err := siv.New(siv.AES())
	if err != nil {
		panic(err)
	}

	ciphertext, err := ctx.Seal(ctrKey, macKey, plaintext, associatedData)
	if err != nil {
		panic(err)
	}

	plaintext, err := ctx.Open(ctrKey, macKey, ciphertext, associatedData)
	if err != nil {
		// err.(*siv.Error).Kind() distinguishes invalid-length from
		// unauthentic for logging; Error() itself does not.
	}

The ciphertext is always exactly 16 bytes longer than the plaintext: a
16-byte tag followed by the encrypted plaintext, with no other framing.

A SivContext is safe for concurrent use: it holds no mutable state beyond
the block-cipher Factory it was constructed with, and every Seal/Open call
keys its own block-cipher instances.
*/
package siv
