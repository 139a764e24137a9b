package cryptography

import (
	"crypto/aes"
	"fmt"
	"runtime"

	"github.com/xmh0511/byte-aes/internal/domain/crypto"
	"github.com/xmh0511/byte-aes/internal/pkg/logger"

	"golang.org/x/sync/errgroup"
)

// AES256Cryptor implements crypto.BlockCryptor with AES-256 in independent-block mode.
// The key and cipher are never mutated after construction, so one instance may be shared across goroutines.
type AES256Cryptor struct {
	key     crypto.Key
	cipher  crypto.BlockCipher
	options crypto.CryptorOptions
	logger  logger.Logger
}

var _ crypto.BlockCryptor = (*AES256Cryptor)(nil)

// NewAES256Cryptor creates an AES-256 cryptor for the given key.
func NewAES256Cryptor(key crypto.Key, logger logger.Logger, options crypto.CryptorOptions) (*AES256Cryptor, error) {
	block, err := aes.NewCipher(key[:])
	if err != nil {
		return nil, fmt.Errorf("failed to create AES cipher: %w", err)
	}
	return newBlockCryptor(key, block, logger, options)
}

// NewAES256CryptorFromString validates the raw string as key material and creates a cryptor.
func NewAES256CryptorFromString(keyMaterial string, logger logger.Logger, options crypto.CryptorOptions) (*AES256Cryptor, error) {
	key, err := crypto.ParseKey(keyMaterial)
	if err != nil {
		return nil, err
	}
	return NewAES256Cryptor(key, logger, options)
}

func newBlockCryptor(key crypto.Key, block crypto.BlockCipher, logger logger.Logger, options crypto.CryptorOptions) (*AES256Cryptor, error) {
	if block.BlockSize() != crypto.BlockSize {
		return nil, fmt.Errorf("unsupported cipher block size %d, expected %d", block.BlockSize(), crypto.BlockSize)
	}
	if err := options.Validate(); err != nil {
		return nil, fmt.Errorf("invalid cryptor options: %w", err)
	}
	return &AES256Cryptor{
		key:     key,
		cipher:  block,
		options: options,
		logger:  logger,
	}, nil
}

// Key returns a copy of the key material.
func (c *AES256Cryptor) Key() crypto.Key {
	return c.key
}

// BlockCount returns the number of blocks Encrypt produces for a plaintext of the given length.
func (c *AES256Cryptor) BlockCount(plaintextLen int) int {
	return plaintextLen/crypto.BlockSize + 1
}

// Encrypt pads the plaintext and encrypts every block independently.
func (c *AES256Cryptor) Encrypt(plaintext []byte) []byte {
	blocks := Pad(plaintext)
	c.transform(blocks, c.cipher.Encrypt)
	c.logger.Debug("Encrypted ", len(blocks), " blocks")
	return Join(blocks)
}

// Decrypt decrypts every block independently and strips the padding.
// A misaligned ciphertext is rejected before any cipher work is done.
func (c *AES256Cryptor) Decrypt(ciphertext []byte) ([]byte, error) {
	blocks, err := Split(ciphertext)
	if err != nil {
		return nil, err
	}

	c.transform(blocks, c.cipher.Decrypt)
	c.logger.Debug("Decrypted ", len(blocks), " blocks")

	plaintext, err := Unpad(blocks)
	if err != nil {
		return nil, err
	}
	return plaintext, nil
}

// transform applies fn to every block in place. Large inputs are cut into contiguous
// ranges handled by separate goroutines; each goroutine touches only its own range.
func (c *AES256Cryptor) transform(blocks []crypto.Block, fn func(dst, src []byte)) {
	workers := c.workerCount()
	if c.options.ParallelThreshold == 0 || len(blocks) < c.options.ParallelThreshold || workers < 2 {
		transformRange(blocks, fn)
		return
	}

	chunk := (len(blocks) + workers - 1) / workers

	var g errgroup.Group
	g.SetLimit(workers)
	for start := 0; start < len(blocks); start += chunk {
		part := blocks[start:min(start+chunk, len(blocks))]
		g.Go(func() error {
			transformRange(part, fn)
			return nil
		})
	}
	_ = g.Wait()
}

func (c *AES256Cryptor) workerCount() int {
	if c.options.Workers > 0 {
		return c.options.Workers
	}
	return runtime.GOMAXPROCS(0)
}

func transformRange(blocks []crypto.Block, fn func(dst, src []byte)) {
	for i := range blocks {
		fn(blocks[i][:], blocks[i][:])
	}
}
