// Package byteaes encrypts and decrypts byte sequences with AES-256, treating
// every 16-byte block independently.
//
// Plaintext is padded to a whole number of blocks before encryption: a
// remainder of r bytes is completed with 16-r bytes of value 16-r, and input
// that is already block aligned (including empty input) gains a full block of
// sixteen 0x10 bytes. Decryption reverses the transform and strips the padding.
//
// Identical plaintext blocks yield identical ciphertext blocks and there is no
// authentication. Padding bytes below 16 are not cross-checked, so corruption
// whose decrypted tail byte lands in 1..15 is not detected.
package byteaes

import (
	"github.com/xmh0511/byte-aes/internal/domain/crypto"
	"github.com/xmh0511/byte-aes/internal/infrastructure/cryptography"
	"github.com/xmh0511/byte-aes/internal/pkg/logger"
)

// BlockSize is the AES block size in bytes
const BlockSize = crypto.BlockSize

// KeySize is the AES-256 key size in bytes
const KeySize = crypto.KeySize

// Errors returned by the codec and the cryptor. Use errors.Is to match them.
var (
	ErrInvalidKeyLength = crypto.ErrInvalidKeyLength
	ErrMalformedLength  = crypto.ErrMalformedLength
	ErrEmptyInput       = crypto.ErrEmptyInput
	ErrInvalidPadding   = crypto.ErrInvalidPadding
)

type (
	// Block is a single 16-byte unit of padded data
	Block = crypto.Block
	// PaddingError carries the offending tail byte of a rejected plaintext
	PaddingError = crypto.PaddingError
)

// Option tunes a Cryptor
type Option func(*crypto.CryptorOptions)

// WithWorkers caps the number of goroutines transforming blocks in parallel.
// Zero picks GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(o *crypto.CryptorOptions) { o.Workers = n }
}

// WithParallelThreshold sets the block count from which blocks are transformed in parallel.
// Zero disables parallelism.
func WithParallelThreshold(blocks int) Option {
	return func(o *crypto.CryptorOptions) { o.ParallelThreshold = blocks }
}

// Cryptor holds an AES-256 key. It is immutable and safe for concurrent use.
type Cryptor struct {
	inner *cryptography.AES256Cryptor
}

// New builds a Cryptor from the UTF-8 bytes of key, which must be exactly 32 bytes long.
func New(key string, opts ...Option) (*Cryptor, error) {
	return NewFromBytes([]byte(key), opts...)
}

// NewFromBytes builds a Cryptor from raw key bytes, which must be exactly 32 bytes long.
func NewFromBytes(key []byte, opts ...Option) (*Cryptor, error) {
	k, err := crypto.NewKey(key)
	if err != nil {
		return nil, err
	}

	options := crypto.DefaultCryptorOptions()
	for _, opt := range opts {
		opt(&options)
	}

	inner, err := cryptography.NewAES256Cryptor(k, logger.NewNopLogger(), options)
	if err != nil {
		return nil, err
	}
	return &Cryptor{inner: inner}, nil
}

// Encrypt pads plaintext and encrypts each block. The result is never shorter than one block.
func (c *Cryptor) Encrypt(plaintext []byte) []byte {
	return c.inner.Encrypt(plaintext)
}

// EncryptString encrypts the UTF-8 bytes of s.
func (c *Cryptor) EncryptString(s string) []byte {
	return c.inner.Encrypt([]byte(s))
}

// Decrypt decrypts each block and strips the padding.
// It fails with ErrMalformedLength, ErrEmptyInput or ErrInvalidPadding; a nil
// error with an empty result means the plaintext was empty.
func (c *Cryptor) Decrypt(ciphertext []byte) ([]byte, error) {
	return c.inner.Decrypt(ciphertext)
}

// DecryptString decrypts ciphertext and returns the plaintext as a string.
func (c *Cryptor) DecryptString(ciphertext []byte) (string, error) {
	plaintext, err := c.inner.Decrypt(ciphertext)
	if err != nil {
		return "", err
	}
	return string(plaintext), nil
}

// Pad splits data into padded 16-byte blocks.
func Pad(data []byte) []Block {
	return cryptography.Pad(data)
}

// Unpad joins blocks and strips the padding.
func Unpad(blocks []Block) ([]byte, error) {
	return cryptography.Unpad(blocks)
}
