package crypto

// BlockCryptor encrypts and decrypts arbitrary byte sequences with AES-256 in independent-block mode.
// Implementations are immutable after construction and safe for concurrent use.
// NOTE: there is no IV, chaining or authentication; identical plaintext blocks produce identical ciphertext blocks.
type BlockCryptor interface {
	// Encrypt pads the plaintext and transforms every block in order.
	// The result length is always a multiple of BlockSize and at least BlockSize.
	Encrypt(plaintext []byte) []byte

	// Decrypt transforms every block back and strips the padding.
	// Returns ErrMalformedLength, ErrEmptyInput or a *PaddingError on invalid input.
	// An empty, nil-error result means the plaintext really was empty.
	Decrypt(ciphertext []byte) ([]byte, error)

	// BlockCount returns the number of blocks Encrypt produces for a plaintext of the given length.
	BlockCount(plaintextLen int) int
}

// BlockCipher is the single-block primitive a BlockCryptor is built on.
// It matches crypto/cipher.Block.
type BlockCipher interface {
	BlockSize() int
	Encrypt(dst, src []byte)
	Decrypt(dst, src []byte)
}
